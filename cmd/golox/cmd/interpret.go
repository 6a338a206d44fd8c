package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/golox-lang/golox/pkg/golox"
	"github.com/spf13/cobra"
)

var (
	dumpAST bool
	trace   bool
)

var interpretCmd = &cobra.Command{
	Use:   "interpret [file]",
	Short: "Run a Lox program",
	Long: `Run a Lox program from a file, or start an interactive REPL with no
file argument. In REPL mode, bare expression statements additionally echo
their value.

Examples:
  golox interpret script.lox
  golox interpret --dump-ast script.lox
  golox interpret   # starts an interactive prompt`,
	Args: cobra.MaximumNArgs(1),
	Run:  runInterpret,
}

func init() {
	rootCmd.AddCommand(interpretCmd)

	interpretCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed AST before running")
	interpretCmd.Flags().BoolVar(&trace, "trace", false, "print a line to stderr before each top-level statement runs")
}

func runInterpret(cmd *cobra.Command, args []string) {
	verbose, _ := cmd.Flags().GetBool("verbose")

	if len(args) == 1 {
		source := readSourceFile(args[0])
		engine := golox.New(os.Stdout, os.Stderr)
		start := time.Now()
		result := runProgram(engine, source)
		if verbose {
			fmt.Fprintf(os.Stderr, "[verbose] %s ran in %s\n", args[0], time.Since(start))
		}
		switch result {
		case pipelineCompileError:
			os.Exit(65)
		case pipelineRuntimeError:
			os.Exit(70)
		}
		return
	}

	// A runtime error in the REPL aborts only the current line; the
	// diagnostic channel's sticky flags are reset between lines so one bad
	// line doesn't poison the next.
	engine := golox.New(os.Stdout, os.Stderr)
	engine.SetREPLMode(true)
	repl(func(line string) {
		runProgram(engine, line)
		engine.Reporter.Reset()
	})
}

type pipelineResult int

const (
	pipelineOK pipelineResult = iota
	pipelineCompileError
	pipelineRuntimeError
)

func runProgram(engine *golox.Engine, source string) pipelineResult {
	stmts, ok := engine.Parse(source)
	if !ok {
		return pipelineCompileError
	}
	if !engine.Resolve(stmts) {
		return pipelineCompileError
	}

	if dumpAST {
		fmt.Fprint(os.Stderr, golox.DumpAST(stmts))
	}

	for _, stmt := range stmts {
		if trace {
			fmt.Fprintf(os.Stderr, "[trace] %s\n", stmt.TokenLiteral())
		}
		if !engine.RunStatement(stmt) {
			return pipelineRuntimeError
		}
	}
	return pipelineOK
}
