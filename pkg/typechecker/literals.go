package typechecker

import (
	"fmt"
	"strconv"

	"github.com/54k1/fakelang/pkg/ast"
	"github.com/54k1/fakelang/pkg/typedast"
)

func (c *Checker) checkExpression(expr ast.Expression) (typedast.Expression, error) {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		value, err := strconv.ParseInt(e.Token.Lexeme, 10, 64)
		if err != nil {
			return nil, &IntegerRangeError{Token: e.Token}
		}
		return typedast.NewIntegerLiteral(e.Token, value), nil
	case *ast.StringLiteral:
		return typedast.NewStringLiteral(e.Token, e.Token.Lexeme), nil
	case *ast.Identifier:
		binding, ok := c.scope.Lookup(e.Name())
		if !ok {
			return nil, &UndefinedVariableError{Token: e.Token}
		}
		return typedast.NewIdentifier(e.Token, binding.Type), nil
	case *ast.BinaryExpression:
		return c.checkBinaryExpression(e)
	case *ast.UnaryExpression:
		return c.checkUnaryExpression(e)
	case nil:
		return nil, fmt.Errorf("typechecker: expression is nil")
	default:
		return nil, fmt.Errorf("typechecker: unsupported expression %T", expr)
	}
}
