package shader

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/styles"
)

// chromaTokenTypes maps each category to the chroma token type used when rendering through chroma formatters.
var chromaTokenTypes = map[Category]chroma.TokenType{
	CategoryPlain:     chroma.Text,
	CategoryComment:   chroma.Comment,
	CategoryNumber:    chroma.LiteralNumber,
	CategoryKeyword:   chroma.Keyword,
	CategoryType:      chroma.KeywordType,
	CategoryBuiltin:   chroma.NameBuiltin,
	CategoryUniform:   chroma.KeywordDeclaration,
	CategoryAttribute: chroma.KeywordReserved,
	CategoryOutput:    chroma.NameVariableGlobal,
}

// RenderMarkup classifies source and wraps every recognized token in a
// `<span class="CLASS">` element. Plain text is left as is apart from HTML escaping,
// and line/column structure is preserved byte for byte.
//
// Parameters:
//   - source: the GLSL text to render
//
// Returns:
//   - string: the annotated markup
func RenderMarkup(source string) string {
	return RenderSpans(source, Tokenize(source))
}

// RenderSpans renders previously computed spans of source as class-span markup.
//
// Parameters:
//   - source: the text the spans were produced from
//   - spans: the spans returned by Tokenize for source
//
// Returns:
//   - string: the annotated markup
func RenderSpans(source string, spans []Span) string {
	var b strings.Builder
	b.Grow(len(source) * 2)
	for _, sp := range spans {
		text := html.EscapeString(sp.Text(source))
		if sp.Category == CategoryPlain {
			b.WriteString(text)
			continue
		}
		fmt.Fprintf(&b, `<span class="%s">%s</span>`, sp.Category.Class(), text)
	}
	return b.String()
}

// ChromaTokens converts the classified spans of source into chroma tokens so any chroma
// formatter can render them.
//
// Parameters:
//   - source: the GLSL text to convert
//
// Returns:
//   - []chroma.Token: one token per span, in source order
func ChromaTokens(source string) []chroma.Token {
	spans := Tokenize(source)
	toks := make([]chroma.Token, 0, len(spans))
	for _, sp := range spans {
		toks = append(toks, chroma.Token{Type: chromaTokenTypes[sp.Category], Value: sp.Text(source)})
	}
	return toks
}

// Highlight renders source through a named chroma formatter and style.
// Unknown formatter or style names fall back to chroma's defaults.
//
// Parameters:
//   - w: the destination writer
//   - source: the GLSL text to render
//   - formatterName: a chroma formatter name such as "html", "terminal256" or "terminal16m"
//   - styleName: a chroma style name such as "monokai" or "github"
//
// Returns:
//   - error: an error if the formatter fails to write
func Highlight(w io.Writer, source, formatterName, styleName string) error {
	f := formatters.Get(formatterName)
	st := styles.Get(styleName)
	if err := f.Format(w, st, chroma.Literator(ChromaTokens(source)...)); err != nil {
		return fmt.Errorf("highlight: %w", err)
	}
	return nil
}

// FormatterNames returns the registered chroma formatter names.
func FormatterNames() []string {
	return formatters.Names()
}

// StyleNames returns the registered chroma style names.
func StyleNames() []string {
	return styles.Names()
}
