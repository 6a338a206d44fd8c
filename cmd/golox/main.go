// Command golox is the tokenizer, parser, and tree-walking interpreter for
// the Lox language.
package main

import (
	"os"

	"github.com/golox-lang/golox/cmd/golox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
