package parser

import (
	"github.com/golox-lang/golox/ast"
	"github.com/golox-lang/golox/lexer"
)

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment implements the assignment-target rule: the left
// side is parsed as an ordinary expression (through ternary precedence),
// and only after seeing '=' is it checked for being a Variable or a Get.
// An invalid target is reported but does NOT panic — parsing continues
// using the already-parsed right-hand value.
func (p *Parser) assignment() ast.Expr {
	expr := p.ternary()

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.VariableExpr:
			return &ast.AssignExpr{Name: target.Name, Value: value}
		case *ast.GetExpr:
			return &ast.SetExpr{Object: target.Object, Name: target.Name, Value: value}
		default:
			p.errorAtToken(equals, "Invalid assignment target.")
			return value
		}
	}

	return expr
}

// ternary parses `cond ? then : else`, right-associative, sitting between
// assignment and logic_or.
func (p *Parser) ternary() ast.Expr {
	expr := p.or()

	if p.match(lexer.QUESTION) {
		then := p.expression()
		p.consume(lexer.COLON, "Expect ':' after then branch of ternary expression.")
		elseBranch := p.ternary()
		return &ast.TernaryExpr{Cond: expr, Then: then, Else: elseBranch}
	}

	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(lexer.OR) {
		op := p.previous()
		right := p.and()
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(lexer.AND) {
		op := p.previous()
		right := p.equality()
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(lexer.PLUS, lexer.MINUS) {
		op := p.previous()
		right := p.factor()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(lexer.STAR, lexer.SLASH) {
		op := p.previous()
		right := p.unary()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		op := p.previous()
		operand := p.unary()
		return &ast.UnaryExpr{Op: op, Operand: operand}
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for {
		switch {
		case p.match(lexer.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(lexer.DOT):
			name := p.consume(lexer.IDENTIFIER, "Expect property name after '.'.")
			expr = &ast.GetExpr{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAtCurrent("Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	return &ast.CallExpr{Callee: callee, ClosingParen: paren, Arguments: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(lexer.FALSE):
		return &ast.LiteralExpr{Value: false}
	case p.match(lexer.TRUE):
		return &ast.LiteralExpr{Value: true}
	case p.match(lexer.NIL):
		return &ast.LiteralExpr{Value: nil}
	case p.match(lexer.NUMBER, lexer.STRING):
		return &ast.LiteralExpr{Value: p.previous().Literal}
	case p.match(lexer.THIS):
		return &ast.ThisExpr{Keyword: p.previous()}
	case p.match(lexer.SUPER):
		keyword := p.previous()
		p.consume(lexer.DOT, "Expect '.' after 'super'.")
		method := p.consume(lexer.IDENTIFIER, "Expect superclass method name.")
		return &ast.SuperExpr{Keyword: keyword, Method: method}
	case p.match(lexer.IDENTIFIER):
		return &ast.VariableExpr{Name: p.previous()}
	case p.match(lexer.LEFT_PAREN):
		expr := p.expression()
		p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression.")
		return &ast.GroupingExpr{Inner: expr}
	default:
		panic(p.errorAtCurrent("Expect expression."))
	}
}
