package typedast

import (
	"github.com/54k1/fakelang/pkg/ast"
	"github.com/54k1/fakelang/pkg/scanner"
)

// Expression is a checked expression. Every node knows its type and the token it
// was derived from.
type Expression interface {
	Type() Type
	Token() scanner.Token
	Accept(v Visitor) (any, error)
}

type exprImpl struct {
	typ Type
	tok scanner.Token
}

func (e exprImpl) Type() Type           { return e.typ }
func (e exprImpl) Token() scanner.Token { return e.tok }

type BinaryOperator int

const (
	Add BinaryOperator = iota
	Sub
	Mul
	Div
)

func (op BinaryOperator) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	default:
		return "?"
	}
}

type UnaryOperator int

const (
	Negate UnaryOperator = iota
	Plus
)

func (op UnaryOperator) String() string {
	switch op {
	case Negate:
		return "-"
	case Plus:
		return "+"
	default:
		return "?"
	}
}

type IntegerLiteral struct {
	exprImpl
	Value int64
}

func NewIntegerLiteral(tok scanner.Token, value int64) *IntegerLiteral {
	return &IntegerLiteral{exprImpl: exprImpl{typ: Integer, tok: tok}, Value: value}
}

func (n *IntegerLiteral) Accept(v Visitor) (any, error) { return v.VisitIntegerLiteral(n) }

type StringLiteral struct {
	exprImpl
	Value string
}

func NewStringLiteral(tok scanner.Token, value string) *StringLiteral {
	return &StringLiteral{exprImpl: exprImpl{typ: String, tok: tok}, Value: value}
}

func (n *StringLiteral) Accept(v Visitor) (any, error) { return v.VisitStringLiteral(n) }

type Identifier struct {
	exprImpl
	Name string
}

func NewIdentifier(tok scanner.Token, typ Type) *Identifier {
	return &Identifier{exprImpl: exprImpl{typ: typ, tok: tok}, Name: tok.Lexeme}
}

func (n *Identifier) Accept(v Visitor) (any, error) { return v.VisitIdentifier(n) }

// Binary carries the resolved operation separately from the surface operator token.
type Binary struct {
	exprImpl
	Left     Expression
	Right    Expression
	Operator BinaryOperator
}

func NewBinary(tok scanner.Token, typ Type, op BinaryOperator, left, right Expression) *Binary {
	return &Binary{exprImpl: exprImpl{typ: typ, tok: tok}, Left: left, Right: right, Operator: op}
}

func (n *Binary) Accept(v Visitor) (any, error) { return v.VisitBinary(n) }

type Unary struct {
	exprImpl
	Operator UnaryOperator
	Operand  Expression
}

func NewUnary(tok scanner.Token, typ Type, op UnaryOperator, operand Expression) *Unary {
	return &Unary{exprImpl: exprImpl{typ: typ, tok: tok}, Operator: op, Operand: operand}
}

func (n *Unary) Accept(v Visitor) (any, error) { return v.VisitUnary(n) }

// Statements

type Statement interface {
	statementNode()
}

type LetDeclaration struct {
	Name           scanner.Token
	TypeAnnotation *ast.TypeAnnotation
	Mut            *scanner.Token
	Expr           Expression
}

func (*LetDeclaration) statementNode() {}

// BoundType is the type recorded for the declared name.
func (d *LetDeclaration) BoundType() Type { return d.Expr.Type() }

type ExpressionStatement struct {
	Expr Expression
}

func (*ExpressionStatement) statementNode() {}
