package scanner

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// StrayError reports a character that does not start any token.
type StrayError struct {
	Char rune
	Position
}

func (e *StrayError) Error() string {
	return fmt.Sprintf("scanner: %s: stray %q in source", e.Position, e.Char)
}

// Scanner walks a source string one rune at a time with a single rune of lookahead.
type Scanner struct {
	source string
	offset int
	char   rune
	width  int
	pos    Position

	str strings.Builder
}

// New prepares a scanner over the NFC-normalised source.
func New(source string) *Scanner {
	s := &Scanner{
		source: norm.NFC.String(source),
		pos:    Position{Line: 1, Column: 1},
	}
	s.decode()
	return s
}

// Scan tokenizes source completely. The result always ends with a single EOF token;
// on failure no tokens are returned.
func Scan(source string) ([]Token, error) {
	return New(source).ScanAll()
}

// ScanAll drains the scanner.
func (s *Scanner) ScanAll() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens, nil
		}
	}
}

// Next returns the following token, or EOF once the input is exhausted.
func (s *Scanner) Next() (Token, error) {
	s.skipBlank()

	start := s.pos
	if s.done() {
		return Token{Kind: EOF, Position: start}, nil
	}

	switch {
	case s.char == '"':
		return s.scanString(start), nil
	case isDigit(s.char):
		return s.scanNumber(start), nil
	case unicode.IsLetter(s.char):
		return s.scanIdent(start), nil
	}

	if kind, ok := punctuation[s.char]; ok {
		s.advance()
		return Token{Kind: kind, Position: start}, nil
	}
	return Token{}, &StrayError{Char: s.char, Position: start}
}

// scanString captures everything up to the closing quote. A missing closing quote
// consumes the rest of the input without error.
func (s *Scanner) scanString(start Position) Token {
	defer s.str.Reset()
	s.advance()
	for !s.done() && s.char != '"' {
		s.write()
		s.advance()
	}
	if !s.done() {
		s.advance()
	}
	return Token{Kind: String, Lexeme: s.str.String(), HasLexeme: true, Position: start}
}

func (s *Scanner) scanNumber(start Position) Token {
	defer s.str.Reset()
	for !s.done() && isDigit(s.char) {
		s.write()
		s.advance()
	}
	return Token{Kind: Number, Lexeme: s.str.String(), HasLexeme: true, Position: start}
}

func (s *Scanner) scanIdent(start Position) Token {
	defer s.str.Reset()
	for !s.done() && unicode.IsLetter(s.char) {
		s.write()
		s.advance()
	}
	word := s.str.String()
	if kind, ok := keywords[word]; ok {
		return Token{Kind: kind, Position: start}
	}
	return Token{Kind: Identifier, Lexeme: word, HasLexeme: true, Position: start}
}

func (s *Scanner) skipBlank() {
	for !s.done() && isBlank(s.char) {
		s.advance()
	}
}

func (s *Scanner) done() bool {
	return s.offset >= len(s.source)
}

func (s *Scanner) advance() {
	if s.done() {
		return
	}
	if s.char == '\n' {
		s.pos.Line++
		s.pos.Column = 1
	} else {
		s.pos.Column++
	}
	s.offset += s.width
	s.decode()
}

func (s *Scanner) decode() {
	if s.done() {
		s.char, s.width = utf8.RuneError, 0
		return
	}
	s.char, s.width = utf8.DecodeRuneInString(s.source[s.offset:])
}

func (s *Scanner) write() {
	s.str.WriteRune(s.char)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
