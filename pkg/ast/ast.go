package ast

import "github.com/54k1/fakelang/pkg/scanner"

type NodeType string

const (
	NodeIdentifier       NodeType = "Identifier"
	NodeNumberLiteral    NodeType = "NumberLiteral"
	NodeStringLiteral    NodeType = "StringLiteral"
	NodeUnaryExpression  NodeType = "UnaryExpression"
	NodeBinaryExpression NodeType = "BinaryExpression"
	NodeTypeAnnotation   NodeType = "TypeAnnotation"
	NodeLetDeclaration   NodeType = "LetDeclaration"
	NodeDeclarationStmt  NodeType = "DeclarationStatement"
	NodeExpressionStmt   NodeType = "ExpressionStatement"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Marker interfaces.

type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Declaration interface {
	Node
	declarationNode()
}

type declarationMarker struct{}

func (declarationMarker) declarationNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

// Expressions

type Identifier struct {
	nodeImpl
	expressionMarker

	Token scanner.Token `json:"token"`
}

func NewIdentifier(tok scanner.Token) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Token: tok}
}

// Name is the identifier's spelling.
func (i *Identifier) Name() string { return i.Token.Lexeme }

type NumberLiteral struct {
	nodeImpl
	expressionMarker

	Token scanner.Token `json:"token"`
}

func NewNumberLiteral(tok scanner.Token) *NumberLiteral {
	return &NumberLiteral{nodeImpl: newNodeImpl(NodeNumberLiteral), Token: tok}
}

type StringLiteral struct {
	nodeImpl
	expressionMarker

	Token scanner.Token `json:"token"`
}

func NewStringLiteral(tok scanner.Token) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Token: tok}
}

type UnaryExpression struct {
	nodeImpl
	expressionMarker

	Operator scanner.Token `json:"operator"`
	Operand  Expression    `json:"operand"`
}

func NewUnaryExpression(operator scanner.Token, operand Expression) *UnaryExpression {
	return &UnaryExpression{nodeImpl: newNodeImpl(NodeUnaryExpression), Operator: operator, Operand: operand}
}

type BinaryExpression struct {
	nodeImpl
	expressionMarker

	Left     Expression    `json:"left"`
	Right    Expression    `json:"right"`
	Operator scanner.Token `json:"operator"`
}

func NewBinaryExpression(left, right Expression, operator scanner.Token) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Left: left, Right: right, Operator: operator}
}

// Declarations

// TypeAnnotation names a type after `:` in a declaration. Params are reserved for
// parameterised types and are always empty today.
type TypeAnnotation struct {
	nodeImpl

	Name   scanner.Token   `json:"name"`
	Params []scanner.Token `json:"params,omitempty"`
}

func NewTypeAnnotation(name scanner.Token, params []scanner.Token) *TypeAnnotation {
	return &TypeAnnotation{nodeImpl: newNodeImpl(NodeTypeAnnotation), Name: name, Params: params}
}

type LetDeclaration struct {
	nodeImpl
	declarationMarker

	Name           scanner.Token   `json:"name"`
	Mut            *scanner.Token  `json:"mut,omitempty"`
	TypeAnnotation *TypeAnnotation `json:"typeAnnotation,omitempty"`
	Init           Expression      `json:"init"`
}

func NewLetDeclaration(name scanner.Token, mut *scanner.Token, annotation *TypeAnnotation, init Expression) *LetDeclaration {
	return &LetDeclaration{nodeImpl: newNodeImpl(NodeLetDeclaration), Name: name, Mut: mut, TypeAnnotation: annotation, Init: init}
}

// Statements

type DeclarationStatement struct {
	nodeImpl
	statementMarker

	Declaration Declaration `json:"declaration"`
}

func NewDeclarationStatement(decl Declaration) *DeclarationStatement {
	return &DeclarationStatement{nodeImpl: newNodeImpl(NodeDeclarationStmt), Declaration: decl}
}

type ExpressionStatement struct {
	nodeImpl
	statementMarker

	Expression Expression `json:"expression"`
}

func NewExpressionStatement(expr Expression) *ExpressionStatement {
	return &ExpressionStatement{nodeImpl: newNodeImpl(NodeExpressionStmt), Expression: expr}
}
