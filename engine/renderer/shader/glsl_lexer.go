// glsl_lexer.go implements the GLSL classifier used for syntax highlighting. It makes a single
// left-to-right pass over the immutable source and produces disjoint, contiguous spans, so a
// token is classified exactly once and markup is never re-scanned.
package shader

import (
	"regexp"
	"strings"
)

// numberRegex matches a numeric literal at the start of the input. With leftmost-first
// matching "1.5" is one literal and "1." before whitespace yields only "1".
var numberRegex = regexp.MustCompile(`^\d+\.?\d*\b`)

// Lexer classifies GLSL source into spans.
type Lexer struct {
	source string
	pos    int
	spans  []Span
}

// NewLexer creates a new lexer for the given source.
//
// Parameters:
//   - source: the GLSL text to classify
//
// Returns:
//   - *Lexer: a lexer positioned at the start of source
func NewLexer(source string) *Lexer {
	// Estimate ~1 span per 4 bytes of source.
	est := len(source) / 4
	if est < 16 {
		est = 16
	}
	return &Lexer{
		source: source,
		spans:  make([]Span, 0, est),
	}
}

// Tokenize classifies the whole source. The returned spans are ordered, never overlap,
// and their union is exactly [0, len(source)). Empty input yields no spans.
//
// Returns:
//   - []Span: the classified spans
func (l *Lexer) Tokenize() []Span {
	for l.pos < len(l.source) {
		l.scan()
	}
	return l.spans
}

// Tokenize is shorthand for NewLexer(source).Tokenize().
//
// Parameters:
//   - source: the GLSL text to classify
//
// Returns:
//   - []Span: the classified spans
func Tokenize(source string) []Span {
	return NewLexer(source).Tokenize()
}

func (l *Lexer) scan() {
	start := l.pos
	c := l.source[start]

	switch {
	case c == '/' && l.peek(1) == '/':
		end := strings.IndexAny(l.source[start:], "\r\n")
		if end < 0 {
			end = len(l.source)
		} else {
			end += start
		}
		l.emit(start, end, CategoryComment)

	case c == '/' && l.peek(1) == '*':
		// An unterminated block comment is not a comment; its opener falls through as plain text.
		closeAt := strings.Index(l.source[start+2:], "*/")
		if closeAt < 0 {
			l.emit(start, start+1, CategoryPlain)
			return
		}
		l.emit(start, start+2+closeAt+2, CategoryComment)

	case isDigit(c) && !l.prevIsWord():
		if loc := numberRegex.FindStringIndex(l.source[start:]); loc != nil {
			l.emit(start, start+loc[1], CategoryNumber)
			return
		}
		// Digits glued to letters ("2x") never form a literal, the whole run stays plain.
		l.emit(start, l.wordEnd(start), CategoryPlain)

	case isWordByte(c):
		end := l.wordEnd(start)
		l.emit(start, end, ClassifyWord(l.source[start:end]))

	default:
		l.emit(start, start+1, CategoryPlain)
	}
}

// emit appends a span and advances the cursor. Adjacent plain spans are merged.
func (l *Lexer) emit(start, end int, cat Category) {
	l.pos = end
	if n := len(l.spans); n > 0 && cat == CategoryPlain {
		last := &l.spans[n-1]
		if last.Category == CategoryPlain && last.End == start {
			last.End = end
			return
		}
	}
	l.spans = append(l.spans, Span{Start: start, End: end, Category: cat})
}

func (l *Lexer) peek(offset int) byte {
	if l.pos+offset >= len(l.source) {
		return 0
	}
	return l.source[l.pos+offset]
}

func (l *Lexer) prevIsWord() bool {
	return l.pos > 0 && isWordByte(l.source[l.pos-1])
}

// wordEnd returns the end of the maximal [A-Za-z0-9_] run starting at from.
func (l *Lexer) wordEnd(from int) int {
	end := from
	for end < len(l.source) && isWordByte(l.source[end]) {
		end++
	}
	return end
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isWordByte reports whether c is an ASCII word character. Non-ASCII bytes are never
// word characters, so multi-byte runes always land inside a single plain span.
func isWordByte(c byte) bool {
	return c == '_' || isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
