package ast

import (
	"bytes"
	"fmt"

	"github.com/golox-lang/golox/lexer"
)

// LiteralExpr holds a constant value: a number (float64), a string, a
// bool, or nil.
type LiteralExpr struct {
	Value any
}

func (e *LiteralExpr) exprNode()            {}
func (e *LiteralExpr) TokenLiteral() string { return formatLiteral(e.Value) }
func (e *LiteralExpr) String() string       { return formatLiteral(e.Value) }

// GroupingExpr is a parenthesized sub-expression.
type GroupingExpr struct {
	Inner Expr
}

func (e *GroupingExpr) exprNode()            {}
func (e *GroupingExpr) TokenLiteral() string { return "(" }
func (e *GroupingExpr) String() string       { return fmt.Sprintf("(group %s)", e.Inner.String()) }

// UnaryExpr is a prefix operator (`-` or `!`) applied to one operand.
type UnaryExpr struct {
	Op      lexer.Token
	Operand Expr
}

func (e *UnaryExpr) exprNode()            {}
func (e *UnaryExpr) TokenLiteral() string { return e.Op.Lexeme }
func (e *UnaryExpr) String() string {
	return fmt.Sprintf("(%s %s)", e.Op.Lexeme, e.Operand.String())
}

// BinaryExpr is an arithmetic, comparison, or equality operator applied to
// two operands.
type BinaryExpr struct {
	Left  Expr
	Op    lexer.Token
	Right Expr
}

func (e *BinaryExpr) exprNode()            {}
func (e *BinaryExpr) TokenLiteral() string { return e.Op.Lexeme }
func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Op.Lexeme, e.Left.String(), e.Right.String())
}

// LogicalExpr is `and`/`or`, distinct from BinaryExpr because it
// short-circuits.
type LogicalExpr struct {
	Left  Expr
	Op    lexer.Token
	Right Expr
}

func (e *LogicalExpr) exprNode()            {}
func (e *LogicalExpr) TokenLiteral() string { return e.Op.Lexeme }
func (e *LogicalExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Op.Lexeme, e.Left.String(), e.Right.String())
}

// TernaryExpr is `cond ? then : else`.
type TernaryExpr struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (e *TernaryExpr) exprNode()            {}
func (e *TernaryExpr) TokenLiteral() string { return "?" }
func (e *TernaryExpr) String() string {
	return fmt.Sprintf("(? %s %s %s)", e.Cond.String(), e.Then.String(), e.Else.String())
}

// VariableExpr reads the value bound to an identifier.
type VariableExpr struct {
	Name lexer.Token
}

func (e *VariableExpr) exprNode()            {}
func (e *VariableExpr) TokenLiteral() string { return e.Name.Lexeme }
func (e *VariableExpr) String() string       { return e.Name.Lexeme }

// AssignExpr assigns a new value to an already-declared variable.
type AssignExpr struct {
	Name  lexer.Token
	Value Expr
}

func (e *AssignExpr) exprNode()            {}
func (e *AssignExpr) TokenLiteral() string { return e.Name.Lexeme }
func (e *AssignExpr) String() string {
	return fmt.Sprintf("(= %s %s)", e.Name.Lexeme, e.Value.String())
}

// CallExpr invokes a callable value with a left-to-right evaluated
// argument list. ClosingParen is kept (rather than the call's own token)
// because it is the token runtime errors about this call site are reported
// against.
type CallExpr struct {
	Callee       Expr
	ClosingParen lexer.Token
	Arguments    []Expr
}

func (e *CallExpr) exprNode()            {}
func (e *CallExpr) TokenLiteral() string { return "(" }
func (e *CallExpr) String() string {
	var out bytes.Buffer
	out.WriteString("(call ")
	out.WriteString(e.Callee.String())
	for _, a := range e.Arguments {
		out.WriteString(" ")
		out.WriteString(a.String())
	}
	out.WriteString(")")
	return out.String()
}

// GetExpr reads a property off an instance.
type GetExpr struct {
	Object Expr
	Name   lexer.Token
}

func (e *GetExpr) exprNode()            {}
func (e *GetExpr) TokenLiteral() string { return e.Name.Lexeme }
func (e *GetExpr) String() string {
	return fmt.Sprintf("(. %s %s)", e.Object.String(), e.Name.Lexeme)
}

// SetExpr writes a property on an instance.
type SetExpr struct {
	Object Expr
	Name   lexer.Token
	Value  Expr
}

func (e *SetExpr) exprNode()            {}
func (e *SetExpr) TokenLiteral() string { return e.Name.Lexeme }
func (e *SetExpr) String() string {
	return fmt.Sprintf("(= (. %s %s) %s)", e.Object.String(), e.Name.Lexeme, e.Value.String())
}

// ThisExpr refers to the receiver of the enclosing method.
type ThisExpr struct {
	Keyword lexer.Token
}

func (e *ThisExpr) exprNode()            {}
func (e *ThisExpr) TokenLiteral() string { return e.Keyword.Lexeme }
func (e *ThisExpr) String() string       { return "this" }

// SuperExpr resolves a method on the enclosing class's superclass, bound
// to the current `this`.
type SuperExpr struct {
	Keyword lexer.Token
	Method  lexer.Token
}

func (e *SuperExpr) exprNode()            {}
func (e *SuperExpr) TokenLiteral() string { return e.Keyword.Lexeme }
func (e *SuperExpr) String() string       { return fmt.Sprintf("(super.%s)", e.Method.Lexeme) }
