package shader

import "regexp"

// NoUniformsSentinel is the display entry shown in place of an empty uniform list.
const NoUniformsSentinel = "No uniforms found."

// uniformDeclRegex matches `uniform <type> <name>;` statements, whitespace tolerant.
// It is a text scan, so declarations inside comments are listed too.
var uniformDeclRegex = regexp.MustCompile(`uniform\s+(\w+)\s+(\w+)\s*;`)

// Uniform is a uniform declaration found in shader source.
type Uniform struct {
	// Name is the declared variable name, e.g. "u_time".
	Name string
	// Type is the declared GLSL type name, e.g. "float".
	Type string
}

// ExtractUniforms scans source for uniform declarations. Results follow source order and
// repeated declarations of the same name are all returned.
//
// Parameters:
//   - source: the GLSL text to scan
//
// Returns:
//   - []Uniform: the declarations found, never nil
func ExtractUniforms(source string) []Uniform {
	matches := uniformDeclRegex.FindAllStringSubmatch(source, -1)
	out := make([]Uniform, 0, len(matches))
	for _, m := range matches {
		out = append(out, Uniform{Name: m[2], Type: m[1]})
	}
	return out
}

// ExtractUniformNames returns only the names of the uniform declarations in source, in order.
//
// Parameters:
//   - source: the GLSL text to scan
//
// Returns:
//   - []string: the declared names, never nil
func ExtractUniformNames(source string) []string {
	decls := ExtractUniforms(source)
	names := make([]string, len(decls))
	for i, d := range decls {
		names[i] = d.Name
	}
	return names
}

// UniformDisplayList returns names unchanged, or a single NoUniformsSentinel entry when names is empty.
//
// Parameters:
//   - names: the extracted uniform names
//
// Returns:
//   - []string: the list to display
func UniformDisplayList(names []string) []string {
	if len(names) == 0 {
		return []string{NoUniformsSentinel}
	}
	return names
}
