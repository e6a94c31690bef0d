package typechecker

import (
	"strconv"

	"github.com/54k1/fakelang/pkg/ast"
	"github.com/54k1/fakelang/pkg/scanner"
	"github.com/54k1/fakelang/pkg/typedast"
)

var binaryOperators = map[scanner.Kind]typedast.BinaryOperator{
	scanner.Plus:  typedast.Add,
	scanner.Minus: typedast.Sub,
	scanner.Star:  typedast.Mul,
	scanner.Slash: typedast.Div,
}

// checkBinaryExpression accepts Int op Int for every operator and String + String.
func (c *Checker) checkBinaryExpression(expr *ast.BinaryExpression) (typedast.Expression, error) {
	left, err := c.checkExpression(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := c.checkExpression(expr.Right)
	if err != nil {
		return nil, err
	}

	op, ok := binaryOperators[expr.Operator.Kind]
	if !ok {
		return nil, &InvalidBinaryOperationError{Left: left, Right: right, Operator: expr.Operator}
	}
	switch {
	case left.Type().Equal(typedast.Integer) && right.Type().Equal(typedast.Integer):
		return typedast.NewBinary(expr.Operator, typedast.Integer, op, left, right), nil
	case op == typedast.Add && left.Type().Equal(typedast.String) && right.Type().Equal(typedast.String):
		return typedast.NewBinary(expr.Operator, typedast.String, op, left, right), nil
	default:
		return nil, &InvalidBinaryOperationError{Left: left, Right: right, Operator: expr.Operator}
	}
}

// checkUnaryExpression accepts `-` and `+` on integers. There is no boolean type,
// so `!` never checks.
func (c *Checker) checkUnaryExpression(expr *ast.UnaryExpression) (typedast.Expression, error) {
	if lit, ok := expr.Operand.(*ast.NumberLiteral); ok && expr.Operator.Kind == scanner.Minus {
		if folded, ok := minimumIntegerLiteral(expr.Operator, lit); ok {
			return folded, nil
		}
	}
	operand, err := c.checkExpression(expr.Operand)
	if err != nil {
		return nil, err
	}
	isInt := operand.Type().Equal(typedast.Integer)
	switch {
	case expr.Operator.Kind == scanner.Minus && isInt:
		return typedast.NewUnary(expr.Operator, typedast.Integer, typedast.Negate, operand), nil
	case expr.Operator.Kind == scanner.Plus && isInt:
		return typedast.NewUnary(expr.Operator, typedast.Integer, typedast.Plus, operand), nil
	default:
		return nil, &InvalidUnaryOperationError{Operator: expr.Operator, Operand: operand}
	}
}

// minimumIntegerLiteral reads `-9223372036854775808` as one literal, the only
// negative number whose magnitude does not fit in an int64.
func minimumIntegerLiteral(minus scanner.Token, lit *ast.NumberLiteral) (*typedast.IntegerLiteral, bool) {
	if _, err := strconv.ParseInt(lit.Token.Lexeme, 10, 64); err == nil {
		return nil, false
	}
	value, err := strconv.ParseInt("-"+lit.Token.Lexeme, 10, 64)
	if err != nil {
		return nil, false
	}
	return typedast.NewIntegerLiteral(minus, value), true
}
