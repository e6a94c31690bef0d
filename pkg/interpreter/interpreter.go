package interpreter

import (
	"fmt"

	"github.com/54k1/fakelang/pkg/runtime"
	"github.com/54k1/fakelang/pkg/typedast"
)

// Interpreter evaluates checked statements against one persistent environment.
// Expressions are evaluated through the typedast.Visitor methods.
type Interpreter struct {
	global *runtime.Environment
}

var _ typedast.Visitor = (*Interpreter)(nil)

// New returns an interpreter with an empty global environment.
func New() *Interpreter {
	return &Interpreter{global: runtime.NewEnvironment()}
}

// GlobalEnvironment returns the interpreter's environment.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// Evaluate runs one statement. A declaration yields UnitValue; an expression
// statement yields its value.
func (i *Interpreter) Evaluate(stmt typedast.Statement) (runtime.Value, error) {
	return i.evaluateStatement(stmt)
}

// EvaluateExpression evaluates a single typed expression.
func (i *Interpreter) EvaluateExpression(expr typedast.Expression) (runtime.Value, error) {
	if expr == nil {
		return nil, fmt.Errorf("interpreter: expression is nil")
	}
	result, err := expr.Accept(i)
	if err != nil {
		return nil, err
	}
	value, ok := result.(runtime.Value)
	if !ok {
		panic(&InternalError{Message: fmt.Sprintf("visitor produced %T, not a runtime value", result)})
	}
	return value, nil
}
