package buffer

// Option configures a Buffer at construction time.
type Option func(*Buffer)

// WithLineEnding records eol as the buffer's serialization convention
// ("\n", "\r\n", or "\r"). It is metadata only: the stored text is not
// converted to or from it (only ApplyEdits rewrites the line endings of
// the text it inserts to "\n", see internal/applier's EOL normalization);
// this value is what a caller should write back when persisting the
// document.
func WithLineEnding(eol string) Option {
	return func(b *Buffer) { b.eol = eol }
}

// WithBOM records a byte-order-mark string to be re-emitted when the
// buffer is serialized.
func WithBOM(bom string) Option {
	return func(b *Buffer) { b.bom = bom }
}

// WithDefaultIndent sets the fallback indentation style the indent
// guesser falls back to when it finds no clear signal in the document.
func WithDefaultIndent(insertSpaces bool, tabSize int) Option {
	return func(b *Buffer) {
		b.insertSpaces = insertSpaces
		b.tabSize = tabSize
	}
}

// DetectLineEnding scans text for its first line terminator.
func DetectLineEnding(text string) string {
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			if i > 0 && text[i-1] == '\r' {
				return "\r\n"
			}
			return "\n"
		}
		if text[i] == '\r' {
			if i+1 < len(text) && text[i+1] == '\n' {
				return "\r\n"
			}
			return "\r"
		}
	}
	return "\n"
}

// WithDetectedLineEnding scans text and applies WithLineEnding with
// whatever convention it finds.
func WithDetectedLineEnding(text string) Option {
	return WithLineEnding(DetectLineEnding(text))
}
