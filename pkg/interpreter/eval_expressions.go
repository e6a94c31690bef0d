package interpreter

import (
	"fmt"

	"github.com/54k1/fakelang/pkg/runtime"
	"github.com/54k1/fakelang/pkg/typedast"
)

var binaryOperations = map[typedast.BinaryOperator]func(runtime.Value, runtime.Value) (runtime.Value, bool){
	typedast.Add: runtime.Add,
	typedast.Sub: runtime.Sub,
	typedast.Mul: runtime.Mul,
	typedast.Div: runtime.Div,
}

func (i *Interpreter) VisitIntegerLiteral(n *typedast.IntegerLiteral) (any, error) {
	return runtime.IntegerValue{Val: n.Value}, nil
}

func (i *Interpreter) VisitStringLiteral(n *typedast.StringLiteral) (any, error) {
	return runtime.StringValue{Val: n.Value}, nil
}

func (i *Interpreter) VisitIdentifier(n *typedast.Identifier) (any, error) {
	value, ok := i.global.Get(n.Name)
	if !ok {
		return nil, &ReferenceError{Name: n.Name, Token: n.Token()}
	}
	return value, nil
}

// VisitBinary evaluates both operands, left first.
func (i *Interpreter) VisitBinary(n *typedast.Binary) (any, error) {
	left, err := i.EvaluateExpression(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.EvaluateExpression(n.Right)
	if err != nil {
		return nil, err
	}
	if n.Operator == typedast.Div && runtime.IsZero(right) {
		return nil, &DivisionByZeroError{Token: n.Token()}
	}
	apply, ok := binaryOperations[n.Operator]
	if !ok {
		panic(&InternalError{Message: fmt.Sprintf("unknown binary operator %d", int(n.Operator))})
	}
	result, ok := apply(left, right)
	if !ok {
		panic(&InternalError{Message: fmt.Sprintf("%s %s %s reached evaluation", left.Kind(), n.Operator, right.Kind())})
	}
	return result, nil
}

func (i *Interpreter) VisitUnary(n *typedast.Unary) (any, error) {
	operand, err := i.EvaluateExpression(n.Operand)
	if err != nil {
		return nil, err
	}
	switch n.Operator {
	case typedast.Plus:
		return operand, nil
	case typedast.Negate:
		result, ok := runtime.Negate(operand)
		if !ok {
			panic(&InternalError{Message: fmt.Sprintf("negation of %s reached evaluation", operand.Kind())})
		}
		return result, nil
	default:
		panic(&InternalError{Message: fmt.Sprintf("unknown unary operator %d", int(n.Operator))})
	}
}
