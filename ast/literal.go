package ast

import "strconv"

// formatLiteral renders a literal value the way the `parse` CLI subcommand
// prints it: like stringification, except integral doubles keep their
// trailing ".0" instead of having it stripped. Stripping for `print`/REPL
// output is a separate concern, implemented by the interpreter's own
// stringify function.
func formatLiteral(value any) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if v == float64(int64(v)) && !containsDot(s) {
			s += ".0"
		}
		return s
	case string:
		return v
	default:
		return "nil"
	}
}

func containsDot(s string) bool {
	for _, c := range s {
		if c == '.' {
			return true
		}
	}
	return false
}
