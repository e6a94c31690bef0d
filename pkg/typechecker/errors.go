package typechecker

import (
	"fmt"

	"github.com/54k1/fakelang/pkg/ast"
	"github.com/54k1/fakelang/pkg/scanner"
	"github.com/54k1/fakelang/pkg/typedast"
)

type UndefinedVariableError struct {
	Token scanner.Token
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("typechecker: %s: undefined variable '%s'", e.Token.Position, e.Token.Lexeme)
}

type InvalidBinaryOperationError struct {
	Left     typedast.Expression
	Right    typedast.Expression
	Operator scanner.Token
}

func (e *InvalidBinaryOperationError) Error() string {
	return fmt.Sprintf("typechecker: %s: invalid operation: %s %s %s",
		e.Operator.Position, e.Left.Type().Name(), e.Operator.Kind, e.Right.Type().Name())
}

type InvalidUnaryOperationError struct {
	Operator scanner.Token
	Operand  typedast.Expression
}

func (e *InvalidUnaryOperationError) Error() string {
	return fmt.Sprintf("typechecker: %s: invalid operation: %s%s", e.Operator.Position, e.Operator.Kind, e.Operand.Type().Name())
}

type UnknownTypeError struct {
	Annotation *ast.TypeAnnotation
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("typechecker: %s: unknown type '%s'", e.Annotation.Name.Position, e.Annotation.Name.Lexeme)
}

// MismatchedTypesError reports an initializer (At) whose type does not match the
// annotation (DueTo) of its declaration.
type MismatchedTypesError struct {
	Found    typedast.Type
	At       scanner.Token
	Expected typedast.Type
	DueTo    scanner.Token
}

func (e *MismatchedTypesError) Error() string {
	return fmt.Sprintf("typechecker: %s: mismatched types: expected %s (declared at %s), found %s",
		e.At.Position, e.Expected.Name(), e.DueTo.Position, e.Found.Name())
}

// IntegerRangeError reports a number literal that does not fit a 64-bit integer.
type IntegerRangeError struct {
	Token scanner.Token
}

func (e *IntegerRangeError) Error() string {
	return fmt.Sprintf("typechecker: %s: integer literal %s out of range", e.Token.Position, e.Token.Lexeme)
}
