// Package golox is the public, CLI-independent entry point into the
// tokenizer, parser, resolver, and interpreter: an Engine usable as a
// library.
package golox

import (
	"io"

	"github.com/golox-lang/golox/ast"
	"github.com/golox-lang/golox/diagnostics"
	"github.com/golox-lang/golox/interp"
	"github.com/golox-lang/golox/lexer"
	"github.com/golox-lang/golox/parser"
	"github.com/golox-lang/golox/resolver"
)

// Engine bundles the diagnostic channel and interpreter state shared across
// a sequence of REPL lines or a single file run.
type Engine struct {
	Reporter    *diagnostics.Reporter
	interpreter *interp.Interpreter
}

// New creates an Engine that writes output to out and diagnostics to errOut.
func New(out, errOut io.Writer) *Engine {
	reporter := diagnostics.NewReporter(errOut)
	return &Engine{
		Reporter:    reporter,
		interpreter: interp.New(out, reporter),
	}
}

// SetREPLMode toggles bare-expression echoing.
func (e *Engine) SetREPLMode(repl bool) {
	e.interpreter.REPLMode = repl
}

// Tokenize scans source and returns the resulting tokens. Scan errors are
// reported through e.Reporter; HadError reflects them afterward.
func (e *Engine) Tokenize(source string) []lexer.Token {
	lx := lexer.New(source)
	tokens := lx.ScanTokens()
	for _, diag := range lx.Errors() {
		e.Reporter.Report(diag.Line, diag.Message)
	}
	return tokens
}

// ParseExpression tokenizes and parses source as a single expression,
// returning its parenthesized-prefix string form. ok is false if a scan or
// parse error was reported.
func (e *Engine) ParseExpression(source string) (string, bool) {
	tokens := e.Tokenize(source)
	if e.Reporter.HadError() {
		return "", false
	}
	expr, ok := parser.New(tokens, e.Reporter).ParseExpression()
	if !ok || e.Reporter.HadError() {
		return "", false
	}
	return expr.String(), true
}

// Parse tokenizes and parses source as a full program, returning its
// statements. ok is false if a scan or parse error was reported.
func (e *Engine) Parse(source string) ([]ast.Stmt, bool) {
	tokens := e.Tokenize(source)
	if e.Reporter.HadError() {
		return nil, false
	}
	stmts := parser.New(tokens, e.Reporter).Parse()
	if e.Reporter.HadError() {
		return nil, false
	}
	return stmts, true
}

// Resolve runs static scope resolution over stmts, wiring the result into
// this Engine's interpreter. ok is false if a resolution error was
// reported.
func (e *Engine) Resolve(stmts []ast.Stmt) bool {
	locals := resolver.New(e.Reporter).Resolve(stmts)
	if e.Reporter.HadError() {
		return false
	}
	e.interpreter.Resolve(locals)
	return true
}

// Run parses, resolves, and interprets a full program from source in one
// shot. ok is false if any pipeline stage failed; the caller can inspect
// e.Reporter to distinguish a compile-time failure (exit 65) from a runtime
// one (exit 70).
func (e *Engine) Run(source string) bool {
	stmts, ok := e.Parse(source)
	if !ok {
		return false
	}
	if !e.Resolve(stmts) {
		return false
	}
	return e.interpreter.Interpret(stmts)
}

// RunStatement interprets a single already-parsed-and-resolved statement,
// for REPL use where each line shares the Engine's environment. The caller
// must have resolved the statement's containing program first.
func (e *Engine) RunStatement(stmt ast.Stmt) bool {
	return e.interpreter.InterpretOne(stmt)
}

// DumpAST renders a parsed program's statements, one per line, using each
// statement's String() form (used by --dump-ast).
func DumpAST(stmts []ast.Stmt) string {
	program := &ast.Program{Statements: stmts}
	return program.String() + "\n"
}
