package typedast

import "github.com/54k1/fakelang/pkg/scanner"

// Helpers for building typed trees by hand. Tokens carry no position.

func Int(value int64) *IntegerLiteral {
	return NewIntegerLiteral(scanner.Token{Kind: scanner.Number}, value)
}

func Str(value string) *StringLiteral {
	return NewStringLiteral(scanner.Token{Kind: scanner.String, Lexeme: value, HasLexeme: true}, value)
}

func Ident(name string, typ Type) *Identifier {
	return NewIdentifier(scanner.Token{Kind: scanner.Identifier, Lexeme: name, HasLexeme: true}, typ)
}

// Bin takes its result type from the left operand.
func Bin(op BinaryOperator, left, right Expression) *Binary {
	return NewBinary(scanner.Token{Kind: binaryKinds[op]}, left.Type(), op, left, right)
}

func Neg(operand Expression) *Unary {
	return NewUnary(scanner.Token{Kind: scanner.Minus}, operand.Type(), Negate, operand)
}

func Pos(operand Expression) *Unary {
	return NewUnary(scanner.Token{Kind: scanner.Plus}, operand.Type(), Plus, operand)
}

func Let(name string, expr Expression) *LetDeclaration {
	return &LetDeclaration{Name: scanner.Token{Kind: scanner.Identifier, Lexeme: name, HasLexeme: true}, Expr: expr}
}

func Expr(expr Expression) *ExpressionStatement {
	return &ExpressionStatement{Expr: expr}
}

var binaryKinds = map[BinaryOperator]scanner.Kind{
	Add: scanner.Plus,
	Sub: scanner.Minus,
	Mul: scanner.Star,
	Div: scanner.Slash,
}
