package parser

import (
	"github.com/54k1/fakelang/pkg/ast"
	"github.com/54k1/fakelang/pkg/scanner"
)

// parseTypeAnnotation reads a bare type name. Parameter lists are not part of the
// grammar yet, so Params is always empty.
func (p *Parser) parseTypeAnnotation() (*ast.TypeAnnotation, error) {
	name, err := p.expect(scanner.Identifier)
	if err != nil {
		return nil, err
	}
	return ast.NewTypeAnnotation(name, nil), nil
}
