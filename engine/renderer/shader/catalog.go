package shader

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed sources/*.vert sources/*.frag
var sourceFS embed.FS

// exampleNames lists the bundled fragment shader examples in display order. The catalog is closed.
var exampleNames = []string{"gradient", "circle", "wave", "plasma"}

// VertexSource returns the fixed vertex stage source. It declares the a_position attribute
// and passes it through to gl_Position.
//
// Returns:
//   - string: the GLSL source of the vertex stage
func VertexSource() string {
	return mustReadSource("sources/vertex.vert")
}

// DefaultFragmentSource returns the fragment shader a session starts with and resets to.
//
// Returns:
//   - string: the GLSL source of the default fragment stage
func DefaultFragmentSource() string {
	return mustReadSource("sources/default.frag")
}

// ExampleNames returns the names of the bundled examples in display order.
//
// Returns:
//   - []string: a copy of the catalog names
func ExampleNames() []string {
	return append([]string(nil), exampleNames...)
}

// Example returns the fragment source of a bundled example.
//
// Parameters:
//   - name: the example name, e.g. "circle"
//
// Returns:
//   - string: the example source
//   - bool: false if the catalog has no example with that name
func Example(name string) (string, bool) {
	for _, n := range exampleNames {
		if n == name {
			return mustReadSource("sources/" + name + ".frag"), true
		}
	}
	return "", false
}

// mustReadSource reads an embedded source file. The files are compiled into the binary,
// so a read failure is a build defect and panics.
func mustReadSource(path string) string {
	data, err := sourceFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("shader: embedded source %q missing: %v", path, err))
	}
	return strings.TrimRight(string(data), "\n")
}
