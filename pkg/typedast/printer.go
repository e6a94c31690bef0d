package typedast

import (
	"fmt"
	"strings"
)

type printer struct{}

// Format renders a typed expression as an S-expression annotated with types,
// e.g. `(+ 1:Int x:Int):Int`.
func Format(expr Expression) string {
	if expr == nil {
		return "<nil>"
	}
	out, _ := expr.Accept(printer{})
	return out.(string)
}

// FormatStatement renders a typed statement.
func FormatStatement(stmt Statement) string {
	switch s := stmt.(type) {
	case *LetDeclaration:
		var b strings.Builder
		b.WriteString("(let ")
		if s.Mut != nil {
			b.WriteString("mut ")
		}
		b.WriteString(s.Name.Lexeme)
		if s.TypeAnnotation != nil {
			b.WriteString(": ")
			b.WriteString(s.TypeAnnotation.Name.Lexeme)
		}
		b.WriteString(" ")
		b.WriteString(Format(s.Expr))
		b.WriteString(")")
		return b.String()
	case *ExpressionStatement:
		return Format(s.Expr)
	default:
		return fmt.Sprintf("<%T>", stmt)
	}
}

func (printer) VisitIntegerLiteral(n *IntegerLiteral) (any, error) {
	return fmt.Sprintf("%d:%s", n.Value, typeName(n.Type())), nil
}

func (printer) VisitStringLiteral(n *StringLiteral) (any, error) {
	return fmt.Sprintf("%q:%s", n.Value, typeName(n.Type())), nil
}

func (printer) VisitIdentifier(n *Identifier) (any, error) {
	return fmt.Sprintf("%s:%s", n.Name, typeName(n.Type())), nil
}

func (p printer) VisitBinary(n *Binary) (any, error) {
	return fmt.Sprintf("(%s %s %s):%s", n.Operator, Format(n.Left), Format(n.Right), typeName(n.Type())), nil
}

func (p printer) VisitUnary(n *Unary) (any, error) {
	return fmt.Sprintf("(%s %s):%s", n.Operator, Format(n.Operand), typeName(n.Type())), nil
}
