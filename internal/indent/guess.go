package indent

// Reader is the narrow interface the guesser reads a document through:
// 1-based line numbers, same convention as the rest of the core.
type Reader interface {
	LineCount() int
	LineContent(lineNumber int) (string, error)
}

// Options supplies the fallback (insertSpaces, tabSize) used when the
// heuristic finds no clear signal.
type Options struct {
	DefaultInsertSpaces bool
	DefaultTabSize      int
}

// Result is the guessed indentation style.
type Result struct {
	InsertSpaces bool
	TabSize      int
}

const maxLinesScanned = 10000

var candidateSizes = [...]int{2, 4, 6, 8}

// Guess reads at most the first 10000 lines of r and picks an
// indentation style.
func Guess(r Reader, opts Options) (Result, error) {
	lineCount := r.LineCount()
	scanLines := lineCount
	if scanLines > maxLinesScanned {
		scanLines = maxLinesScanned
	}

	var buckets [9]int
	linesWithSpaces, linesWithTabs := 0, 0
	var prevLine string
	hasPrev := false

	for ln := 1; ln <= scanLines; ln++ {
		content, err := r.LineContent(ln)
		if err != nil {
			return Result{}, err
		}
		if isBlank(content) {
			continue
		}

		spaces, tabs := countLeadingWhitespace(content)
		switch {
		case spaces > 0 && tabs == 0:
			linesWithSpaces++
		case tabs > 0 && spaces == 0:
			linesWithTabs++
		}

		if hasPrev {
			if diff := spacesDiff(prevLine, content); diff >= 0 && diff < len(buckets) {
				buckets[diff]++
			}
		}
		prevLine = content
		hasPrev = true
	}

	result := Result{InsertSpaces: opts.DefaultInsertSpaces, TabSize: opts.DefaultTabSize}
	if linesWithSpaces != linesWithTabs {
		result.InsertSpaces = linesWithSpaces > linesWithTabs
	}

	threshold := 0.0
	if !result.InsertSpaces {
		threshold = 0.1 * float64(scanLines)
	}

	bestSize, bestCount := 0, 0
	for _, size := range candidateSizes {
		if float64(buckets[size]) > threshold && buckets[size] > bestCount {
			bestSize, bestCount = size, buckets[size]
		}
	}
	if bestSize > 0 {
		result.TabSize = bestSize
	}

	return result, nil
}

// spacesDiff compares the leading whitespace of two lines after their
// common prefix.
func spacesDiff(a, b string) int {
	i := 0
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}

	spacesA, tabsA := countLeadingWhitespace(a[i:])
	spacesB, tabsB := countLeadingWhitespace(b[i:])
	if (spacesA > 0 && tabsA > 0) || (spacesB > 0 && tabsB > 0) {
		return 0
	}

	t := abs(tabsA - tabsB)
	s := abs(spacesA - spacesB)
	if t == 0 {
		return s
	}
	if s%t == 0 {
		return s / t
	}
	return 0
}

func countLeadingWhitespace(s string) (spaces, tabs int) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ':
			spaces++
		case '\t':
			tabs++
		default:
			return spaces, tabs
		}
	}
	return spaces, tabs
}

func isBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return false
		}
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
