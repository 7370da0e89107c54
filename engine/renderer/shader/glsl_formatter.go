package shader

import "strings"

// indentUnit is one level of indentation in reformatted output.
const indentUnit = "    "

// Format reflows GLSL source with a brace-depth state machine:
//  1. every whitespace run collapses to a single space
//  2. a line break goes after each '{', before each '}' and after each ';'
//  3. lines are trimmed and empty lines dropped
//  4. a line containing '}' dedents (never below zero) before it is written, and a line
//     containing '{' indents the lines after it
//
// The formatter is a structural heuristic, not a parser. Braces and semicolons inside
// comments are treated like any other, so a commented-out "}" shifts indentation and
// a "//" comment swallows the code joined onto its line.
//
// Parameters:
//   - source: the GLSL text to reformat
//
// Returns:
//   - string: the reformatted text, lines joined by "\n" without a trailing newline
func Format(source string) string {
	code := strings.Join(strings.Fields(source), " ")
	code = strings.ReplaceAll(code, "{", "{\n")
	code = strings.ReplaceAll(code, "}", "\n}")
	code = strings.ReplaceAll(code, ";", ";\n")

	lines := strings.Split(code, "\n")
	out := make([]string, 0, len(lines))
	level := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.Contains(line, "}") {
			level = max(0, level-1)
		}
		out = append(out, strings.Repeat(indentUnit, level)+line)
		if strings.Contains(line, "{") {
			level++
		}
	}
	return strings.Join(out, "\n")
}

// IsFormatted reports whether source is already in the form Format produces.
//
// Parameters:
//   - source: the GLSL text to check
//
// Returns:
//   - bool: true if Format(source) == source
func IsFormatted(source string) bool {
	return Format(source) == source
}
