package parser_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/54k1/fakelang/pkg/ast"
	"github.com/54k1/fakelang/pkg/parser"
	"github.com/54k1/fakelang/pkg/scanner"
)

// render prints an untyped tree as an S-expression, ignoring positions.
func render(node ast.Node) string {
	switch n := node.(type) {
	case *ast.Identifier:
		return n.Name()
	case *ast.NumberLiteral:
		return n.Token.Lexeme
	case *ast.StringLiteral:
		return fmt.Sprintf("%q", n.Token.Lexeme)
	case *ast.UnaryExpression:
		return fmt.Sprintf("(%s %s)", n.Operator.Kind, render(n.Operand))
	case *ast.BinaryExpression:
		return fmt.Sprintf("(%s %s %s)", n.Operator.Kind, render(n.Left), render(n.Right))
	case *ast.LetDeclaration:
		out := "(let "
		if n.Mut != nil {
			out += "mut "
		}
		out += n.Name.Lexeme
		if n.TypeAnnotation != nil {
			out += ":" + n.TypeAnnotation.Name.Lexeme
		}
		return out + " " + render(n.Init) + ")"
	case *ast.DeclarationStatement:
		return render(n.Declaration)
	case *ast.ExpressionStatement:
		return render(n.Expression)
	default:
		return fmt.Sprintf("<%T>", node)
	}
}

func mustParse(t *testing.T, source string) ast.Statement {
	t.Helper()
	tokens, err := scanner.Scan(source)
	if err != nil {
		t.Fatalf("Scan(%q): %v", source, err)
	}
	stmt, err := parser.Parse(tokens)
	if err != nil {
		t.Fatalf("Parse(%q): %v", source, err)
	}
	return stmt
}

func parseError(t *testing.T, source string) error {
	t.Helper()
	tokens, err := scanner.Scan(source)
	if err != nil {
		t.Fatalf("Scan(%q): %v", source, err)
	}
	stmt, err := parser.Parse(tokens)
	if err == nil {
		t.Fatalf("Parse(%q) = %s, want error", source, render(stmt))
	}
	if stmt != nil {
		t.Fatalf("Parse(%q) returned a partial tree alongside %v", source, err)
	}
	return err
}

func TestParseShapes(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{"1*2*90+12-3", "(- (+ (* (* 1 2) 90) 12) 3)"},
		{"1+2*3", "(+ 1 (* 2 3))"},
		{"(1+2)*3", "(* (+ 1 2) 3)"},
		{"8/4/2", "(/ (/ 8 4) 2)"},
		{"1-2-3", "(- (- 1 2) 3)"},
		{"-x * +2", "(* (- x) (+ 2))"},
		{"!x", "(! x)"},
		{"-(1+2)", "(- (+ 1 2))"},
		{`"a" + name`, `(+ "a" name)`},
		{"x;", "x"},
		{"let x = 5;", "(let x 5)"},
		{"let x: Int = 5;", "(let x:Int 5)"},
		{"let mut s: String = \"hi\" + \"!\";", `(let mut s:String (+ "hi" "!"))`},
		{"let y = (x);", "(let y x)"},
	}
	for _, tc := range cases {
		t.Run(tc.source, func(t *testing.T) {
			if got := render(mustParse(t, tc.source)); got != tc.want {
				t.Fatalf("Parse(%q) = %s, want %s", tc.source, got, tc.want)
			}
		})
	}
}

func TestParseStatementKinds(t *testing.T) {
	if _, ok := mustParse(t, "let a = 1;").(*ast.DeclarationStatement); !ok {
		t.Fatalf("let should produce a DeclarationStatement")
	}
	if _, ok := mustParse(t, "a").(*ast.ExpressionStatement); !ok {
		t.Fatalf("bare expression should produce an ExpressionStatement")
	}
}

func TestParseKeepsOperatorTokens(t *testing.T) {
	stmt := mustParse(t, "1 +\n 2").(*ast.ExpressionStatement)
	bin, ok := stmt.Expression.(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("expected binary expression, got %T", stmt.Expression)
	}
	if bin.Operator.Kind != scanner.Plus || bin.Operator.Position != (scanner.Position{Line: 1, Column: 3}) {
		t.Fatalf("operator token = %#v", bin.Operator)
	}
	right := bin.Right.(*ast.NumberLiteral)
	if right.Token.Line != 2 || right.Token.Column != 2 {
		t.Fatalf("right operand position = %v", right.Token.Position)
	}
}

func TestParseMissingCloseParen(t *testing.T) {
	err := parseError(t, "(1 + 2")
	var expected *parser.ExpectedError
	if !errors.As(err, &expected) {
		t.Fatalf("expected ExpectedError, got %T (%v)", err, err)
	}
	if len(expected.Kinds) != 1 || expected.Kinds[0] != scanner.RParen {
		t.Fatalf("expected kinds = %v", expected.Kinds)
	}
	if expected.Found.Kind != scanner.EOF {
		t.Fatalf("found = %v", expected.Found)
	}
}

func TestParseExpectedTokens(t *testing.T) {
	cases := []struct {
		source string
		want   scanner.Kind
	}{
		{"let x 5;", scanner.Equal},
		{"let = 5;", scanner.Identifier},
		{"let x = 5", scanner.Semicolon},
		{"let x: = 5;", scanner.Identifier},
		{"let mut = 1;", scanner.Identifier},
	}
	for _, tc := range cases {
		t.Run(tc.source, func(t *testing.T) {
			err := parseError(t, tc.source)
			var expected *parser.ExpectedError
			if !errors.As(err, &expected) {
				t.Fatalf("expected ExpectedError, got %T (%v)", err, err)
			}
			if len(expected.Kinds) != 1 || expected.Kinds[0] != tc.want {
				t.Fatalf("expected kinds = %v, want [%s]", expected.Kinds, tc.want)
			}
		})
	}
}

func TestParseUnexpectedTokens(t *testing.T) {
	cases := []struct {
		source string
		want   scanner.Kind
	}{
		{"", scanner.EOF},
		{")", scanner.RParen},
		{"1 +", scanner.EOF},
		{"--1", scanner.Minus},
		{"fun", scanner.Fun},
		{"return 1", scanner.Return},
		{"1 2", scanner.Number},
		{"let x = 1; 2", scanner.Number},
		{"x;;", scanner.Semicolon},
		{"{", scanner.LBrace},
	}
	for _, tc := range cases {
		t.Run(tc.source, func(t *testing.T) {
			err := parseError(t, tc.source)
			var unexpected *parser.UnexpectedError
			if !errors.As(err, &unexpected) {
				t.Fatalf("expected UnexpectedError, got %T (%v)", err, err)
			}
			if unexpected.Token.Kind != tc.want {
				t.Fatalf("unexpected token = %v, want %s", unexpected.Token, tc.want)
			}
		})
	}
}

func TestParseWithoutEOFTerminator(t *testing.T) {
	tokens := []scanner.Token{ast.Lex(scanner.Number, "7"), ast.Tok(scanner.Star), ast.Lex(scanner.Number, "6")}
	stmt, err := parser.Parse(tokens)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got := render(stmt); got != "(* 7 6)" {
		t.Fatalf("Parse = %s", got)
	}

	_, err = parser.Parse(nil)
	var unexpected *parser.UnexpectedError
	if !errors.As(err, &unexpected) || unexpected.Token.Kind != scanner.EOF {
		t.Fatalf("empty stream error = %v", err)
	}
}

func TestParseErrorMessagesIncludePosition(t *testing.T) {
	err := parseError(t, "let x = (1;")
	if got := err.Error(); got != "parser: 1:11: expected ')', found ';'" {
		t.Fatalf("message = %q", got)
	}
	err = parseError(t, "1 )")
	if got := err.Error(); got != "parser: 1:3: unexpected ')'" {
		t.Fatalf("message = %q", got)
	}
}
