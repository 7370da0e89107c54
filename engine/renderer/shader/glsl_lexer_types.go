package shader

// Category identifies the lexical class of a span of GLSL source for display markup.
type Category int

const (
	// CategoryPlain is everything that is not one of the recognized token classes:
	// identifiers, operators, punctuation and whitespace.
	CategoryPlain Category = iota

	// CategoryComment covers // line comments (newline excluded) and terminated /* */ block comments.
	CategoryComment

	// CategoryNumber covers integer and decimal literals such as 2, 0.5 and 10.0.
	CategoryNumber

	// CategoryKeyword covers control flow, precision qualifiers, void and main.
	CategoryKeyword

	// CategoryType covers the scalar, vector, matrix and sampler type names.
	CategoryType

	// CategoryBuiltin covers the builtin math and texture functions.
	CategoryBuiltin

	// CategoryUniform covers the uniform storage qualifier.
	CategoryUniform

	// CategoryAttribute covers the attribute and varying storage qualifiers.
	CategoryAttribute

	// CategoryOutput covers the builtin variables gl_FragColor, gl_Position and gl_FragCoord.
	CategoryOutput
)

// categoryNames is indexed by Category.
var categoryNames = [...]string{
	CategoryPlain:     "plain",
	CategoryComment:   "comment",
	CategoryNumber:    "number",
	CategoryKeyword:   "keyword",
	CategoryType:      "type",
	CategoryBuiltin:   "builtin",
	CategoryUniform:   "uniform",
	CategoryAttribute: "attribute",
	CategoryOutput:    "output",
}

// categoryClasses maps each category to the CSS class emitted by RenderMarkup.
// Builtin outputs use the "function" class of the editor stylesheet.
var categoryClasses = [...]string{
	CategoryPlain:     "",
	CategoryComment:   "comment",
	CategoryNumber:    "number",
	CategoryKeyword:   "keyword",
	CategoryType:      "type",
	CategoryBuiltin:   "builtin",
	CategoryUniform:   "uniform",
	CategoryAttribute: "attribute",
	CategoryOutput:    "function",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// Class returns the markup class name for the category, or an empty string for CategoryPlain.
//
// Returns:
//   - string: the class name used in `<span class="...">` wrappers
func (c Category) Class() string {
	if c < 0 || int(c) >= len(categoryClasses) {
		return ""
	}
	return categoryClasses[c]
}

// Span is a classified byte range [Start, End) of the source text.
// The spans returned by Tokenize never overlap and cover the whole text in order.
type Span struct {
	Start    int
	End      int
	Category Category
}

// Text returns the slice of source covered by the span.
//
// Parameters:
//   - source: the text the span was produced from
//
// Returns:
//   - string: source[Start:End]
func (s Span) Text(source string) string {
	return source[s.Start:s.End]
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// The vocabularies are closed: anything outside them is CategoryPlain.
var (
	glslKeywords = []string{
		"precision", "mediump", "highp", "lowp", "void", "main", "return",
		"if", "else", "for", "while", "do", "break", "continue", "discard",
	}

	glslTypes = []string{
		"float", "int", "bool", "vec2", "vec3", "vec4", "mat2", "mat3", "mat4",
		"sampler2D", "samplerCube", "ivec2", "ivec3", "ivec4", "bvec2", "bvec3", "bvec4",
	}

	glslBuiltins = []string{
		"sin", "cos", "tan", "asin", "acos", "atan", "pow", "exp", "log", "exp2", "log2",
		"sqrt", "inversesqrt", "abs", "sign", "floor", "ceil", "fract", "mod", "min", "max",
		"clamp", "mix", "step", "smoothstep", "length", "distance", "dot", "cross",
		"normalize", "reflect", "refract", "texture2D", "textureCube",
	}

	glslUniformQualifiers   = []string{"uniform"}
	glslAttributeQualifiers = []string{"attribute", "varying"}
	glslBuiltinOutputs      = []string{"gl_FragColor", "gl_Position", "gl_FragCoord"}
)

// vocabulary maps every recognized word to its category. Lists are registered in
// precedence order and a word keeps the first category it was registered under.
var vocabulary = buildVocabulary()

func buildVocabulary() map[string]Category {
	groups := []struct {
		words    []string
		category Category
	}{
		{glslKeywords, CategoryKeyword},
		{glslTypes, CategoryType},
		{glslBuiltins, CategoryBuiltin},
		{glslUniformQualifiers, CategoryUniform},
		{glslAttributeQualifiers, CategoryAttribute},
		{glslBuiltinOutputs, CategoryOutput},
	}
	v := make(map[string]Category)
	for _, g := range groups {
		for _, w := range g.words {
			if _, ok := v[w]; !ok {
				v[w] = g.category
			}
		}
	}
	return v
}

// ClassifyWord returns the category of a whole identifier. Words outside the vocabulary are CategoryPlain.
//
// Parameters:
//   - word: a complete identifier, without surrounding characters
//
// Returns:
//   - Category: the vocabulary category of the word, or CategoryPlain
func ClassifyWord(word string) Category {
	if c, ok := vocabulary[word]; ok {
		return c
	}
	return CategoryPlain
}
