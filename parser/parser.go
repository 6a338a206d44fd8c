// Package parser implements the predictive recursive-descent parser for
// Lox: panic-mode error recovery, `for`-loop desugaring into `while`, and
// the assignment-target validation rule.
//
// The Parser wraps a flat token cursor with one method per grammar rule; a
// syntax error panics a sentinel that declaration() recovers, then
// synchronizes to the next statement boundary.
package parser

import (
	"github.com/golox-lang/golox/ast"
	"github.com/golox-lang/golox/diagnostics"
	"github.com/golox-lang/golox/lexer"
)

const maxArgs = 255

// parseError is the sentinel panicked by consume/errorAt to unwind to the
// nearest declaration() call, which recovers and synchronizes.
type parseError struct{}

// Parser turns a token stream into a statement list or, via
// ParseExpression, a single expression (used by the `parse` CLI
// subcommand's expression-only mode).
type Parser struct {
	tokens   []lexer.Token
	current  int
	reporter *diagnostics.Reporter
}

// New creates a Parser over a complete token stream (as produced by
// lexer.Lexer.ScanTokens), reporting syntax errors through reporter.
func New(tokens []lexer.Token, reporter *diagnostics.Reporter) *Parser {
	return &Parser{tokens: tokens, reporter: reporter}
}

// Parse parses a full program: zero or more declarations followed by EOF.
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// ParseExpression parses a single expression and returns it, or ok=false
// if a syntax error was reported.
func (p *Parser) ParseExpression() (expr ast.Expr, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isParseErr := r.(parseError); isParseErr {
				expr, ok = nil, false
				return
			}
			panic(r)
		}
	}()
	return p.expression(), true
}

// --- declarations ---

func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, isParseErr := r.(parseError); isParseErr {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()

	switch {
	case p.match(lexer.CLASS):
		return p.classDeclaration()
	case p.match(lexer.FUN):
		return p.function("function")
	case p.match(lexer.VAR):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) classDeclaration() ast.Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect class name.")

	var superclass *ast.VariableExpr
	if p.match(lexer.LESS) {
		p.consume(lexer.IDENTIFIER, "Expect superclass name.")
		superclass = &ast.VariableExpr{Name: p.previous()}
	}

	p.consume(lexer.LEFT_BRACE, "Expect '{' before class body.")

	var methods []*ast.FunctionStmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		methods = append(methods, p.function("method"))
	}

	p.consume(lexer.RIGHT_BRACE, "Expect '}' after class body.")

	return &ast.ClassStmt{Name: name, Superclass: superclass, Methods: methods}
}

func (p *Parser) function(kind string) *ast.FunctionStmt {
	name := p.consume(lexer.IDENTIFIER, "Expect "+kind+" name.")
	p.consume(lexer.LEFT_PAREN, "Expect '(' after "+kind+" name.")

	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAtCurrent("Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(lexer.IDENTIFIER, "Expect parameter name."))
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters.")

	p.consume(lexer.LEFT_BRACE, "Expect '{' before "+kind+" body.")
	body := p.block()

	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect variable name.")

	var initializer ast.Expr
	if p.match(lexer.EQUAL) {
		initializer = p.expression()
	}

	p.consume(lexer.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.VarStmt{Name: name, Initializer: initializer}
}

// --- statements ---

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(lexer.FOR):
		return p.forStatement()
	case p.match(lexer.IF):
		return p.ifStatement()
	case p.match(lexer.PRINT):
		return p.printStatement()
	case p.match(lexer.RETURN):
		return p.returnStatement()
	case p.match(lexer.WHILE):
		return p.whileStatement()
	case p.match(lexer.BREAK):
		return p.flowStatement(lexer.BREAK)
	case p.match(lexer.CONTINUE):
		return p.flowStatement(lexer.CONTINUE)
	case p.match(lexer.LEFT_BRACE):
		return &ast.BlockStmt{Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

// forStatement desugars `for (init; cond; incr) body` into
// `Block([init?, While(cond_or_true, Block([body, Expression(incr?)]))])`.
// The increment lives inside the loop body's block, so a `continue` that
// unwinds straight to the `while` condition skips it.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(lexer.SEMICOLON):
		initializer = nil
	case p.match(lexer.VAR):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(lexer.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expression: increment}}}
	}

	if condition == nil {
		condition = &ast.LiteralExpr{Value: true}
	}
	var loop ast.Stmt = &ast.WhileStmt{Cond: condition, Body: body}

	if initializer != nil {
		loop = &ast.BlockStmt{Statements: []ast.Stmt{initializer, loop}}
	}

	return loop
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(lexer.ELSE) {
		elseBranch = p.statement()
	}

	return &ast.IfStmt{Cond: cond, Then: thenBranch, Else: elseBranch}
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after value.")
	return &ast.PrintStmt{Expression: value}
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(lexer.SEMICOLON) {
		value = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after return value.")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after condition.")
	body := p.statement()
	return &ast.WhileStmt{Cond: cond, Body: body}
}

func (p *Parser) flowStatement(kind lexer.TokenType) ast.Stmt {
	keyword := p.previous()
	word := "break"
	if kind == lexer.CONTINUE {
		word = "continue"
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after '"+word+"'.")
	return &ast.FlowStmt{Keyword: keyword}
}

func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume(lexer.RIGHT_BRACE, "Expect '}' after block.")
	return stmts
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after expression.")
	return &ast.ExpressionStmt{Expression: expr}
}
