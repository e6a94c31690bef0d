package parser

import "github.com/54k1/fakelang/pkg/scanner"

func (p *Parser) peek() scanner.Token {
	return p.tokens[p.pos]
}

// next consumes the current token. EOF is never consumed.
func (p *Parser) next() scanner.Token {
	tok := p.tokens[p.pos]
	if tok.Kind != scanner.EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind scanner.Kind) bool {
	return p.peek().Kind == kind
}

// match consumes the current token if it has one of kinds.
func (p *Parser) match(kinds ...scanner.Kind) (scanner.Token, bool) {
	for _, kind := range kinds {
		if p.check(kind) {
			return p.next(), true
		}
	}
	return scanner.Token{}, false
}

// expect consumes a token of one of kinds or fails with ExpectedError.
func (p *Parser) expect(kinds ...scanner.Kind) (scanner.Token, error) {
	if tok, ok := p.match(kinds...); ok {
		return tok, nil
	}
	return scanner.Token{}, &ExpectedError{Kinds: kinds, Found: p.peek()}
}
