package ast

import "github.com/54k1/fakelang/pkg/scanner"

// Token helpers. Positions are left zero; trees built here are for tests and tooling.

func Tok(kind scanner.Kind) scanner.Token {
	return scanner.Token{Kind: kind}
}

func Lex(kind scanner.Kind, text string) scanner.Token {
	return scanner.Token{Kind: kind, Lexeme: text, HasLexeme: true}
}

// Identifier and literal helpers.

func ID(name string) *Identifier {
	return NewIdentifier(Lex(scanner.Identifier, name))
}

func Num(digits string) *NumberLiteral {
	return NewNumberLiteral(Lex(scanner.Number, digits))
}

func Str(value string) *StringLiteral {
	return NewStringLiteral(Lex(scanner.String, value))
}

// Operator helpers.

func Bin(op scanner.Kind, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(left, right, Tok(op))
}

func Un(op scanner.Kind, operand Expression) *UnaryExpression {
	return NewUnaryExpression(Tok(op), operand)
}

// Declaration and statement helpers.

func Ty(name string) *TypeAnnotation {
	return NewTypeAnnotation(Lex(scanner.Identifier, name), nil)
}

func Let(name string, annotation *TypeAnnotation, init Expression) *DeclarationStatement {
	return NewDeclarationStatement(NewLetDeclaration(Lex(scanner.Identifier, name), nil, annotation, init))
}

func LetMut(name string, annotation *TypeAnnotation, init Expression) *DeclarationStatement {
	mut := Tok(scanner.Mut)
	return NewDeclarationStatement(NewLetDeclaration(Lex(scanner.Identifier, name), &mut, annotation, init))
}

func Expr(expr Expression) *ExpressionStatement {
	return NewExpressionStatement(expr)
}
