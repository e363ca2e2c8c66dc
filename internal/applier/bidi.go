package applier

import "golang.org/x/text/unicode/bidi"

// containsRTL reports whether s contains any character whose bidi class
// marks it as part of a right-to-left script. Used to maintain a
// batch-level mightContainRTL flag, scanned only while the flag is still
// false for the batch.
func containsRTL(s string) bool {
	for _, r := range s {
		p, _ := bidi.Lookup([]byte(string(r)))
		switch p.Class() {
		case bidi.R, bidi.AL, bidi.RLE, bidi.RLO, bidi.RLI:
			return true
		}
	}
	return false
}
