package shader

import (
	"bytes"
	"html"
	"regexp"
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var markerRegex = regexp.MustCompile(`<span class="[a-z]+">|</span>`)

func TestRenderMarkup(t *testing.T) {
	got := RenderMarkup("uniform float u_time; // float")
	assert.Equal(t,
		`<span class="uniform">uniform</span> <span class="type">float</span> u_time; <span class="comment">// float</span>`,
		got)
}

func TestRenderMarkupDoesNotNest(t *testing.T) {
	// The category names themselves are vocabulary-free, and markup is never re-scanned.
	got := RenderMarkup("/* type keyword */ float")
	assert.Equal(t, `<span class="comment">/* type keyword */</span> <span class="type">float</span>`, got)
	assert.NotContains(t, got, `<span class="comment"><span`)
}

func TestRenderMarkupRoundTrip(t *testing.T) {
	sources := []string{
		DefaultFragmentSource(),
		"if (a < b && c > d) { gl_FragColor = vec4(1.0); } // <b>",
		"uniform float u_time;\n\n\tvoid   main ( ) { }",
	}
	for _, src := range sources {
		stripped := markerRegex.ReplaceAllString(RenderMarkup(src), "")
		assert.Equal(t, src, html.UnescapeString(stripped))
	}
}

func TestRenderMarkupPreservesLines(t *testing.T) {
	src := DefaultFragmentSource()
	stripped := markerRegex.ReplaceAllString(RenderMarkup(src), "")
	assert.Equal(t, strings.Count(src, "\n"), strings.Count(stripped, "\n"))
}

func TestChromaTokens(t *testing.T) {
	src := "uniform float x; // c"
	toks := ChromaTokens(src)
	require.NotEmpty(t, toks)
	assert.Equal(t, chroma.KeywordDeclaration, toks[0].Type)

	var b strings.Builder
	for _, tok := range toks {
		b.WriteString(tok.Value)
	}
	assert.Equal(t, src, b.String())
	assert.Equal(t, chroma.Comment, toks[len(toks)-1].Type)
}

func TestHighlight(t *testing.T) {
	src := DefaultFragmentSource()

	var out bytes.Buffer
	require.NoError(t, Highlight(&out, src, "html", "monokai"))
	assert.Contains(t, out.String(), "u_resolution")
	assert.Contains(t, out.String(), "<pre")

	// Unknown names fall back to chroma's no-op formatter which writes the raw text.
	out.Reset()
	require.NoError(t, Highlight(&out, src, "no-such-formatter", "no-such-style"))
	assert.Equal(t, src, out.String())
}
