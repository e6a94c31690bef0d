package parser

import (
	"github.com/54k1/fakelang/pkg/ast"
	"github.com/54k1/fakelang/pkg/scanner"
)

// parseLetDeclaration handles `let mut? NAME (: TYPE)? = EXPR ;`.
func (p *Parser) parseLetDeclaration() (*ast.LetDeclaration, error) {
	if _, err := p.expect(scanner.Let); err != nil {
		return nil, err
	}

	var mut *scanner.Token
	if tok, ok := p.match(scanner.Mut); ok {
		mut = &tok
	}

	name, err := p.expect(scanner.Identifier)
	if err != nil {
		return nil, err
	}

	var annotation *ast.TypeAnnotation
	if _, ok := p.match(scanner.Colon); ok {
		annotation, err = p.parseTypeAnnotation()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(scanner.Equal); err != nil {
		return nil, err
	}
	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(scanner.Semicolon); err != nil {
		return nil, err
	}
	return ast.NewLetDeclaration(name, mut, annotation, init), nil
}
