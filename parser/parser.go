// Package parser turns an expression string into a flat array of
// infix tokens, terminated by an EOF token. It resolves the
// unary-minus rule and function-call argument subexpressions; the
// evaluator is responsible for shunting-yard and postfix evaluation.
package parser

import (
	"github.com/skx/sapcalc/bignum"
	"github.com/skx/sapcalc/diagnostics"
	"github.com/skx/sapcalc/lexer"
	"github.com/skx/sapcalc/token"
)

// Parser drives a lexer to build a flat infix token array.
type Parser struct {
	lex  *lexer.Lexer
	sink *diagnostics.Sink
}

// New returns a Parser reading from input. A nil sink installs the
// default stderr handler.
func New(input string, sink *diagnostics.Sink) *Parser {
	if sink == nil {
		sink = diagnostics.New(nil)
	}
	return &Parser{lex: lexer.New(input), sink: sink}
}

// Parse reads every token from the underlying lexer, resolving the
// unary-minus rule and function-call arguments, and returns the
// resulting array. The array always ends with a single EOF token.
func (p *Parser) Parse() []*token.Token {
	var arr []*token.Token
	negate := false

	for {
		next := p.nextToken()

		if next.Type == token.MINUS && (len(arr) == 0 || arr[len(arr)-1].IsOperator()) {
			negate = true
			continue
		}

		if negate {
			if next.IsOperand() {
				next.Negate = true
			} else {
				p.sink.Warn("invalid unary minus, token after: ", next.Name)
			}
			negate = false
		}

		arr = append(arr, next)

		if next.Type == token.EOF {
			break
		}
	}

	return arr
}

// nextToken reads one token from the lexer, resolving identifiers
// that turn out to be function calls into a token carrying a
// recursively-parsed argument array.
func (p *Parser) nextToken() *token.Token {
	tok := p.lex.NextToken()

	if tok.Type == token.ERROR {
		p.sink.Warn("lexical error: ", tok.Name)
		return &token.Token{Type: token.NUMBER, Value: bignum.Zero}
	}

	if tok.Type == token.NUMBER {
		return token.NewNumber(bignum.FromString(tok.Name))
	}

	if tok.Type != token.IDENT {
		t := tok
		return &t
	}

	name := tok.Name
	p.lex.SkipWhitespace()
	if p.lex.Current() != '(' {
		return &token.Token{Type: token.IDENT, Name: name}
	}

	sub, ok := p.lex.ReadBalancedParens()
	if !ok {
		p.sink.Warn("unmatched parentheses in call to ", name)
		return &token.Token{Type: token.NUMBER, Value: bignum.Zero}
	}

	args := New(sub, p.sink).Parse()
	args = args[:len(args)-1] // drop the nested parse's own EOF terminator

	typ, ok := token.LookupFunction(name)
	if !ok {
		p.sink.Warn("unrecognized function: ", name)
		return &token.Token{Type: token.FUNC_GENERIC, Name: name, Args: args}
	}
	return &token.Token{Type: typ, Name: name, Args: args}
}
