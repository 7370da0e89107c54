package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer/shader"
)

// examplePrefix selects a bundled example instead of a file, e.g. "example:circle".
const examplePrefix = "example:"

// namedSource is a fragment source together with the name it is reported under.
type namedSource struct {
	name   string
	source string
	path   string
}

// readSource resolves a source argument: "-" reads stdin, "example:NAME" reads the bundled
// catalog and anything else is a file path.
func readSource(arg string, stdin io.Reader) (namedSource, error) {
	switch {
	case arg == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return namedSource{}, fmt.Errorf("read stdin: %w", err)
		}
		return namedSource{name: "<stdin>", source: string(data)}, nil
	case strings.HasPrefix(arg, examplePrefix):
		name := strings.TrimPrefix(arg, examplePrefix)
		src, ok := shader.Example(name)
		if !ok {
			return namedSource{}, fmt.Errorf("unknown example %q (have %s)", name, strings.Join(shader.ExampleNames(), ", "))
		}
		return namedSource{name: arg, source: src}, nil
	default:
		data, err := os.ReadFile(arg)
		if err != nil {
			return namedSource{}, err
		}
		return namedSource{name: arg, source: string(data), path: arg}, nil
	}
}
