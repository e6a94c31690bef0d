package scanner

import "fmt"

// Kind identifies the lexical category of a token.
type Kind int

const (
	EOF Kind = iota
	Plus
	Minus
	Star
	Slash
	Bang
	LParen
	RParen
	LBrace
	RBrace
	Let
	Mut
	Fun
	Return
	Number
	Identifier
	String
	Equal
	Colon
	Semicolon
	Comma
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "eof"
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Star:
		return "*"
	case Slash:
		return "/"
	case Bang:
		return "!"
	case LParen:
		return "("
	case RParen:
		return ")"
	case LBrace:
		return "{"
	case RBrace:
		return "}"
	case Let:
		return "let"
	case Mut:
		return "mut"
	case Fun:
		return "fun"
	case Return:
		return "return"
	case Number:
		return "number"
	case Identifier:
		return "identifier"
	case String:
		return "string"
	case Equal:
		return "="
	case Colon:
		return ":"
	case Semicolon:
		return ";"
	case Comma:
		return ","
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

var punctuation = map[rune]Kind{
	'+': Plus,
	'-': Minus,
	'*': Star,
	'/': Slash,
	'!': Bang,
	'(': LParen,
	')': RParen,
	'{': LBrace,
	'}': RBrace,
	':': Colon,
	';': Semicolon,
	',': Comma,
	'=': Equal,
}

var keywords = map[string]Kind{
	"let":    Let,
	"mut":    Mut,
	"fun":    Fun,
	"return": Return,
}

// Position is a 1-based line/column location in the source.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexical unit. Only numbers, strings and identifiers carry a lexeme.
type Token struct {
	Kind      Kind
	Lexeme    string
	HasLexeme bool
	Position
}

func (t Token) String() string {
	switch t.Kind {
	case Number, Identifier:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Lexeme)
	case String:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Lexeme)
	case EOF:
		return "<eof>"
	default:
		return fmt.Sprintf("'%s'", t.Kind)
	}
}
