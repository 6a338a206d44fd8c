package cmd

import (
	"fmt"
	"os"

	"github.com/golox-lang/golox/pkg/golox"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse an expression and print its AST",
	Long: `Parse a Lox expression and print a parenthesized prefix form of its
AST, e.g. "1 + 2 * 3" prints as "(+ 1.0 (* 2.0 3.0))".

Examples:
  golox parse script.lox
  golox parse   # starts an interactive prompt`,
	Args: cobra.MaximumNArgs(1),
	Run:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) {
	if len(args) == 1 {
		source := readSourceFile(args[0])
		engine := golox.New(os.Stdout, os.Stderr)
		printed, ok := engine.ParseExpression(source)
		if !ok {
			os.Exit(65)
		}
		fmt.Fprintln(os.Stdout, printed)
		return
	}

	repl(func(line string) {
		engine := golox.New(os.Stdout, os.Stderr)
		if printed, ok := engine.ParseExpression(line); ok {
			fmt.Fprintln(os.Stdout, printed)
		}
	})
}
