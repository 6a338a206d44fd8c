// Package ast defines the tagged expression and statement node variants of
// the Lox grammar. Every node is a distinct pointer; the resolver's depth
// map (package resolver) is keyed on that pointer identity, not on
// structural equality — two Variable nodes spelling the same name at
// different source positions are always distinct keys.
package ast

import (
	"bytes"
	"strings"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	// TokenLiteral returns the literal text of the token most closely
	// associated with this node, for debugging.
	TokenLiteral() string
	// String renders the node for display: expressions in the
	// parenthesized prefix form the `parse` CLI subcommand prints,
	// statements in a compact source-like form.
	String() string
}

// Expr is any node that produces a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any node that performs an action without producing a value.
type Stmt interface {
	Node
	stmtNode()
}

// Program is the root of a parsed source file: the top-level statement
// list produced by Parser.Parse().
type Program struct {
	Statements []Stmt
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return strings.TrimRight(out.String(), "\n")
}
