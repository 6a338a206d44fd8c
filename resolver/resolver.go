// Package resolver implements the static scope-resolution pass: a second
// walk over the AST, after parsing and before execution, that records for
// every variable-use expression the lexical "hop count" to its binding. It
// is also the sole site of several static errors (self-reference in
// initializer, duplicate local declaration, illegal return/this/super).
//
// The pass carries an explicit "current function kind" / "current class
// kind" state machine gating return/this/super validation.
package resolver

import (
	"github.com/golox-lang/golox/ast"
	"github.com/golox-lang/golox/diagnostics"
	"github.com/golox-lang/golox/lexer"
)

// functionKind gates `return` validation.
type functionKind int

const (
	fkNone functionKind = iota
	fkFunction
	fkMethod
	fkInitializer
)

// classKind gates `this`/`super` validation.
type classKind int

const (
	ckNone classKind = iota
	ckClass
	ckSubclass
)

// Resolver walks a parsed program and produces a Locals map keyed by
// expression pointer identity.
// Globals are never recorded: their absence from the map means "look up in
// globals".
type Resolver struct {
	reporter  *diagnostics.Reporter
	scopes    []map[string]bool // stack of scope maps; bool = "defined"
	locals    map[ast.Expr]int
	fnKind    functionKind
	clsKind   classKind
	loopDepth int
}

// New creates a Resolver that reports static errors through reporter.
func New(reporter *diagnostics.Reporter) *Resolver {
	return &Resolver{
		reporter: reporter,
		locals:   make(map[ast.Expr]int),
	}
}

// Resolve walks the whole program and returns the completed Locals map.
func (r *Resolver) Resolve(stmts []ast.Stmt) map[ast.Expr]int {
	r.resolveStmts(stmts)
	return r.locals
}

// --- scope stack ---

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, exists := scope[name.Lexeme]; exists {
		r.reporter.ReportAtToken(name.Line, name.Lexeme, false,
			"Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal walks the scope stack from innermost outward, recording the
// hop count to the first scope that declares name. No match leaves the
// expression unresolved (treated as global at execution).
func (r *Resolver) resolveLocal(expr ast.Expr, name lexer.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}
