package interpreter

import (
	"fmt"

	"github.com/54k1/fakelang/pkg/runtime"
	"github.com/54k1/fakelang/pkg/typedast"
)

func (i *Interpreter) evaluateStatement(node typedast.Statement) (runtime.Value, error) {
	switch n := node.(type) {
	case *typedast.LetDeclaration:
		return i.evaluateLetDeclaration(n)
	case *typedast.ExpressionStatement:
		return i.EvaluateExpression(n.Expr)
	case nil:
		return nil, fmt.Errorf("interpreter: statement is nil")
	default:
		return nil, fmt.Errorf("interpreter: unsupported statement type %T", node)
	}
}

func (i *Interpreter) evaluateLetDeclaration(decl *typedast.LetDeclaration) (runtime.Value, error) {
	value, err := i.EvaluateExpression(decl.Expr)
	if err != nil {
		return nil, err
	}
	i.global.Define(decl.Name.Lexeme, value)
	return runtime.UnitValue{}, nil
}
