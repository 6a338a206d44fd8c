package ast

import (
	"bytes"
	"fmt"

	"github.com/golox-lang/golox/lexer"
)

// ExpressionStmt evaluates an expression and discards the result (except
// in REPL mode, where the interpreter additionally prints it).
type ExpressionStmt struct {
	Expression Expr
}

func (s *ExpressionStmt) stmtNode()            {}
func (s *ExpressionStmt) TokenLiteral() string { return s.Expression.TokenLiteral() }
func (s *ExpressionStmt) String() string       { return s.Expression.String() + ";" }

// PrintStmt evaluates an expression and writes its stringified form plus a
// newline to stdout.
type PrintStmt struct {
	Expression Expr
}

func (s *PrintStmt) stmtNode()            {}
func (s *PrintStmt) TokenLiteral() string { return "print" }
func (s *PrintStmt) String() string       { return fmt.Sprintf("print %s;", s.Expression.String()) }

// VarStmt declares a variable, optionally with an initializer.
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr // nil if absent
}

func (s *VarStmt) stmtNode()            {}
func (s *VarStmt) TokenLiteral() string { return "var" }
func (s *VarStmt) String() string {
	if s.Initializer == nil {
		return fmt.Sprintf("var %s;", s.Name.Lexeme)
	}
	return fmt.Sprintf("var %s = %s;", s.Name.Lexeme, s.Initializer.String())
}

// BlockStmt executes its statements in a fresh child environment.
type BlockStmt struct {
	Statements []Stmt
}

func (s *BlockStmt) stmtNode()            {}
func (s *BlockStmt) TokenLiteral() string { return "{" }
func (s *BlockStmt) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, st := range s.Statements {
		out.WriteString(st.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}

// IfStmt executes Then when Cond is truthy, else Else (if present).
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil if absent
}

func (s *IfStmt) stmtNode()            {}
func (s *IfStmt) TokenLiteral() string { return "if" }
func (s *IfStmt) String() string {
	if s.Else == nil {
		return fmt.Sprintf("if (%s) %s", s.Cond.String(), s.Then.String())
	}
	return fmt.Sprintf("if (%s) %s else %s", s.Cond.String(), s.Then.String(), s.Else.String())
}

// WhileStmt loops over Body while Cond is truthy. `break`/`continue`
// inside Body unwind to this loop.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

func (s *WhileStmt) stmtNode()            {}
func (s *WhileStmt) TokenLiteral() string { return "while" }
func (s *WhileStmt) String() string {
	return fmt.Sprintf("while (%s) %s", s.Cond.String(), s.Body.String())
}

// FlowStmt carries a bare `break;` or `continue;`.
type FlowStmt struct {
	Keyword lexer.Token // BREAK or CONTINUE
}

func (s *FlowStmt) stmtNode()            {}
func (s *FlowStmt) TokenLiteral() string { return s.Keyword.Lexeme }
func (s *FlowStmt) String() string       { return s.Keyword.Lexeme + ";" }

// FunctionStmt declares a named function or, when embedded in a ClassStmt's
// Methods, a method.
type FunctionStmt struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

func (s *FunctionStmt) stmtNode()            {}
func (s *FunctionStmt) TokenLiteral() string { return "fun" }
func (s *FunctionStmt) String() string {
	var params bytes.Buffer
	for i, p := range s.Params {
		if i > 0 {
			params.WriteString(", ")
		}
		params.WriteString(p.Lexeme)
	}
	return fmt.Sprintf("fun %s(%s) { ... }", s.Name.Lexeme, params.String())
}

// ReturnStmt carries a bare `return;` or `return <value>;`.
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr // nil if absent
}

func (s *ReturnStmt) stmtNode()            {}
func (s *ReturnStmt) TokenLiteral() string { return "return" }
func (s *ReturnStmt) String() string {
	if s.Value == nil {
		return "return;"
	}
	return fmt.Sprintf("return %s;", s.Value.String())
}

// ClassStmt declares a class, its optional single superclass, and its
// method table.
type ClassStmt struct {
	Name       lexer.Token
	Superclass *VariableExpr // nil if absent
	Methods    []*FunctionStmt
}

func (s *ClassStmt) stmtNode()            {}
func (s *ClassStmt) TokenLiteral() string { return "class" }
func (s *ClassStmt) String() string {
	var out bytes.Buffer
	out.WriteString("class ")
	out.WriteString(s.Name.Lexeme)
	if s.Superclass != nil {
		out.WriteString(" < ")
		out.WriteString(s.Superclass.Name.Lexeme)
	}
	out.WriteString(" { ")
	for _, m := range s.Methods {
		out.WriteString(m.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}
