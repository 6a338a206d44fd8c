package parser

import "github.com/golox-lang/golox/lexer"

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return t == lexer.EOF
	}
	return p.peek().Type == t
}

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the current token if it has type t, else reports a
// syntax error at the current token and unwinds to the nearest
// declaration() via panic.
func (p *Parser) consume(t lexer.TokenType, message string) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	panic(p.errorAtCurrent(message))
}

// errorAtCurrent reports a syntax error positioned at the current token
// and returns the parseError sentinel. The caller decides whether to
// panic with it — the 255-argument/parameter limit errors are reported
// but not fatal.
func (p *Parser) errorAtCurrent(message string) parseError {
	return p.errorAtToken(p.peek(), message)
}

func (p *Parser) errorAtToken(tok lexer.Token, message string) parseError {
	if p.reporter != nil {
		p.reporter.ReportAtToken(tok.Line, tok.Lexeme, tok.Type == lexer.EOF, message)
	}
	return parseError{}
}

// synchronize discards tokens until it is positioned just after a ';' or
// at the start of a statement-beginning keyword.
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}

		switch p.peek().Type {
		case lexer.CLASS, lexer.FUN, lexer.VAR, lexer.FOR,
			lexer.IF, lexer.WHILE, lexer.PRINT, lexer.RETURN:
			return
		}

		p.advance()
	}
}
