package lexer

import "fmt"

// Token is a single lexical unit: its type, the literal source text it
// spans, an optional decoded literal value (numbers and strings only), and
// the 1-indexed source line it started on.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal any // float64 for NUMBER, string for STRING, nil otherwise
	Line    int
}

// String renders a token for debugging, not for the tokenize CLI output
// (see cmd/golox/cmd/tokenize.go for that format).
func (t Token) String() string {
	return fmt.Sprintf("%s %q %v", t.Type, t.Lexeme, t.Literal)
}
