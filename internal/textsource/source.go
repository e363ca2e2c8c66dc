package textsource

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"golang.org/x/text/unicode/bidi"
)

// Source is the boundary object a Tree is constructed from.
type Source struct {
	BOM          string
	EOL          string
	IsBasicASCII bool
	ContainsRTL  bool
	Text         string
	// LineStarts holds the absolute byte offset of every '\n' in Text.
	LineStarts []int
	// Length is the implied line count minus one, i.e. len(LineStarts).
	Length int
}

// Load parses a JSON document into a Source. Recognized fields are
// "bom", "eol", "text", "lineStarts", "isBasicASCII", and "containsRTL".
// "text" is required; "eol", "lineStarts", "isBasicASCII", and
// "containsRTL" are derived from "text" when absent.
func Load(data []byte) (Source, error) {
	if !gjson.ValidBytes(data) {
		return Source{}, fmt.Errorf("textsource: invalid JSON document")
	}
	root := gjson.ParseBytes(data)
	if !root.Get("text").Exists() {
		return Source{}, fmt.Errorf("textsource: JSON document has no \"text\" field")
	}

	text := root.Get("text").String()
	src := Source{
		BOM:  root.Get("bom").String(),
		EOL:  root.Get("eol").String(),
		Text: text,
	}
	if src.EOL == "" {
		src.EOL = DetectEOL(text)
	} else if src.EOL != "\n" && src.EOL != "\r\n" && src.EOL != "\r" {
		return Source{}, fmt.Errorf("textsource: invalid \"eol\" value %q", src.EOL)
	}

	if ls := root.Get("lineStarts"); ls.Exists() {
		for _, v := range ls.Array() {
			src.LineStarts = append(src.LineStarts, int(v.Int()))
		}
	} else {
		src.LineStarts = scanLineStarts(text)
	}
	src.Length = len(src.LineStarts)

	if f := root.Get("isBasicASCII"); f.Exists() {
		src.IsBasicASCII = f.Bool()
	} else {
		src.IsBasicASCII = isBasicASCIIText(text)
	}

	if f := root.Get("containsRTL"); f.Exists() {
		src.ContainsRTL = f.Bool()
	} else {
		src.ContainsRTL = containsRTLText(text)
	}

	return src, nil
}

// MarshalJSON encodes the source back to JSON, built incrementally with
// sjson rather than reflection-based marshaling.
func (s Source) MarshalJSON() ([]byte, error) {
	data := []byte("{}")
	var err error

	set := func(path string, value interface{}) {
		if err != nil {
			return
		}
		data, err = sjson.SetBytes(data, path, value)
	}

	set("bom", s.BOM)
	set("eol", s.EOL)
	set("text", s.Text)
	set("isBasicASCII", s.IsBasicASCII)
	set("containsRTL", s.ContainsRTL)

	lineStarts := make([]int64, len(s.LineStarts))
	for i, v := range s.LineStarts {
		lineStarts[i] = int64(v)
	}
	set("lineStarts", lineStarts)
	set("length", s.Length)

	return data, err
}

// DetectEOL scans text for the first line terminator and reports which
// convention it uses, defaulting to "\n" if none is found.
func DetectEOL(text string) string {
	i := strings.IndexAny(text, "\r\n")
	if i < 0 || text[i] == '\n' {
		return "\n"
	}
	if i+1 < len(text) && text[i+1] == '\n' {
		return "\r\n"
	}
	return "\r"
}

func scanLineStarts(text string) []int {
	var starts []int
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i)
		}
	}
	return starts
}

func isBasicASCIIText(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] >= 0x80 {
			return false
		}
	}
	return true
}

func containsRTLText(text string) bool {
	for _, r := range text {
		p, _ := bidi.Lookup([]byte(string(r)))
		switch p.Class() {
		case bidi.R, bidi.AL, bidi.RLE, bidi.RLO, bidi.RLI:
			return true
		}
	}
	return false
}
