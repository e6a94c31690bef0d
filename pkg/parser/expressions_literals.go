package parser

import (
	"github.com/54k1/fakelang/pkg/ast"
	"github.com/54k1/fakelang/pkg/scanner"
)

// parseLiteral handles the leaf forms. The digit string of a number is kept as-is;
// the type checker converts it.
func (p *Parser) parseLiteral() (ast.Expression, error) {
	tok := p.peek()
	switch tok.Kind {
	case scanner.Number:
		return ast.NewNumberLiteral(p.next()), nil
	case scanner.String:
		return ast.NewStringLiteral(p.next()), nil
	case scanner.Identifier:
		return ast.NewIdentifier(p.next()), nil
	default:
		return nil, &UnexpectedError{Token: tok}
	}
}
