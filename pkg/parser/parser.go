package parser

import (
	"fmt"
	"strings"

	"github.com/54k1/fakelang/pkg/ast"
	"github.com/54k1/fakelang/pkg/scanner"
)

// UnexpectedError reports a token that cannot start or continue the current rule.
type UnexpectedError struct {
	Token scanner.Token
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("parser: %s: unexpected %s", e.Token.Position, e.Token)
}

// ExpectedError reports a required token that is missing.
type ExpectedError struct {
	Kinds []scanner.Kind
	Found scanner.Token
}

func (e *ExpectedError) Error() string {
	names := make([]string, len(e.Kinds))
	for i, kind := range e.Kinds {
		names[i] = fmt.Sprintf("'%s'", kind)
	}
	return fmt.Sprintf("parser: %s: expected %s, found %s", e.Found.Position, strings.Join(names, " or "), e.Found)
}

// Parser is a recursive-descent parser over a scanned token stream with one token
// of lookahead.
type Parser struct {
	tokens []scanner.Token
	pos    int
}

// New wraps tokens in a parser. A stream that does not end in EOF is terminated
// with one so the cursor never runs off the end.
func New(tokens []scanner.Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != scanner.EOF {
		end := scanner.Token{Kind: scanner.EOF}
		if len(tokens) > 0 {
			end.Position = tokens[len(tokens)-1].Position
		}
		terminated := make([]scanner.Token, len(tokens), len(tokens)+1)
		copy(terminated, tokens)
		tokens = append(terminated, end)
	}
	return &Parser{tokens: tokens}
}

// Parse reads exactly one statement from tokens.
func Parse(tokens []scanner.Token) (ast.Statement, error) {
	return New(tokens).ParseStatement()
}

// ParseStatement parses one statement and requires the stream to be exhausted after it.
func (p *Parser) ParseStatement() (ast.Statement, error) {
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if !p.check(scanner.EOF) {
		return nil, &UnexpectedError{Token: p.peek()}
	}
	return stmt, nil
}
