package typedast

// Visitor is implemented by every consumer of typed expressions. Each node's Accept
// calls exactly one of these methods.
type Visitor interface {
	VisitIntegerLiteral(n *IntegerLiteral) (any, error)
	VisitStringLiteral(n *StringLiteral) (any, error)
	VisitIdentifier(n *Identifier) (any, error)
	VisitBinary(n *Binary) (any, error)
	VisitUnary(n *Unary) (any, error)
}
