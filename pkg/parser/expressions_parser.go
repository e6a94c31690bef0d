package parser

import (
	"github.com/54k1/fakelang/pkg/ast"
	"github.com/54k1/fakelang/pkg/scanner"
)

// parseExpression is the additive level: mul (("+" | "-") mul)*.
func (p *Parser) parseExpression() (ast.Expression, error) {
	left, err := p.parseMul()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.match(scanner.Plus, scanner.Minus)
		if !ok {
			return left, nil
		}
		right, err := p.parseMul()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(left, right, op)
	}
}

func (p *Parser) parseMul() (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.match(scanner.Star, scanner.Slash)
		if !ok {
			return left, nil
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(left, right, op)
	}
}

// parseUnary allows a single prefix operator; `--1` is rejected at the second `-`.
func (p *Parser) parseUnary() (ast.Expression, error) {
	if op, ok := p.match(scanner.Plus, scanner.Minus, scanner.Bang); ok {
		operand, err := p.parseAtomic()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpression(op, operand), nil
	}
	return p.parseAtomic()
}

func (p *Parser) parseAtomic() (ast.Expression, error) {
	if p.check(scanner.LParen) {
		return p.parseParenthesized()
	}
	return p.parseLiteral()
}

func (p *Parser) parseParenthesized() (ast.Expression, error) {
	if _, err := p.expect(scanner.LParen); err != nil {
		return nil, err
	}
	inner, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(scanner.RParen); err != nil {
		return nil, err
	}
	return inner, nil
}
