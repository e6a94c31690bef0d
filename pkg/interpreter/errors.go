package interpreter

import (
	"fmt"

	"github.com/54k1/fakelang/pkg/runtime"
	"github.com/54k1/fakelang/pkg/scanner"
)

// ReferenceError reports a name with no runtime binding. Checked programs never
// produce it.
type ReferenceError struct {
	Name  string
	Token scanner.Token
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("interpreter: %s: reference to unbound name '%s'", e.Token.Position, e.Name)
}

// NotCallableError is raised by call expressions on non-function values.
type NotCallableError struct {
	Value runtime.Value
}

func (e *NotCallableError) Error() string {
	return fmt.Sprintf("interpreter: %s value %s is not callable", e.Value.Kind(), e.Value)
}

type DivisionByZeroError struct {
	Token scanner.Token
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("interpreter: %s: division by zero", e.Token.Position)
}

// InternalError marks a broken contract between the checker and the interpreter.
// It is only ever panicked.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string {
	return "interpreter: internal error: " + e.Message
}
