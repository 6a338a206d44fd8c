package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/golox-lang/golox/diagnostics"
	"github.com/golox-lang/golox/lexer"
	"github.com/spf13/cobra"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [file]",
	Short: "Scan source into tokens and print them",
	Long: `Scan a Lox program into tokens and print one per line.

Examples:
  golox tokenize script.lox
  golox tokenize   # starts an interactive prompt`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
}

func runTokenize(_ *cobra.Command, args []string) {
	if len(args) == 1 {
		source := readSourceFile(args[0])
		reporter := diagnostics.NewReporter(os.Stderr)
		printTokens(source, reporter)
		if reporter.HadError() {
			os.Exit(65)
		}
		return
	}

	repl(func(line string) {
		reporter := diagnostics.NewReporter(os.Stderr)
		printTokens(line, reporter)
	})
}

// printTokens implements the tokenize output format: one token per
// line, `<KIND_UPPERCASE> <lexeme> <literal>`, literal `null` when absent
// and numbers normalized to show a decimal.
func printTokens(source string, reporter *diagnostics.Reporter) {
	lx := lexer.New(source)
	tokens := lx.ScanTokens()
	for _, diag := range lx.Errors() {
		reporter.Report(diag.Line, diag.Message)
	}
	for _, tok := range tokens {
		fmt.Fprintln(os.Stdout, formatToken(tok))
	}
}

func formatToken(tok lexer.Token) string {
	literal := "null"
	switch v := tok.Literal.(type) {
	case float64:
		literal = formatTokenNumber(v)
	case string:
		literal = v
	}
	if tok.Type == lexer.EOF {
		return "EOF  null"
	}
	return fmt.Sprintf("%s %s %s", tok.Type, tok.Lexeme, literal)
}

// formatTokenNumber renders a NUMBER token's literal normalized to always
// show a decimal point (`1` -> `1.0`).
func formatTokenNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	for _, c := range s {
		if c == '.' {
			return s
		}
	}
	return s + ".0"
}
