package parser

import (
	"github.com/54k1/fakelang/pkg/ast"
	"github.com/54k1/fakelang/pkg/scanner"
)

func (p *Parser) parseStatement() (ast.Statement, error) {
	if p.check(scanner.Let) {
		decl, err := p.parseLetDeclaration()
		if err != nil {
			return nil, err
		}
		return ast.NewDeclarationStatement(decl), nil
	}
	return p.parseExpressionStatement()
}

// parseExpressionStatement accepts an optional trailing semicolon.
func (p *Parser) parseExpressionStatement() (*ast.ExpressionStatement, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.match(scanner.Semicolon)
	return ast.NewExpressionStatement(expr), nil
}
