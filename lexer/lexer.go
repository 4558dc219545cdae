// Package lexer turns an expression string into a stream of tokens.
// It recognises one token at a time; the unary-minus rule and
// recursive parsing of a function call's argument list are the
// parser's job, using the balanced-paren scan exposed here.
package lexer

import (
	"strings"

	"github.com/skx/sapcalc/token"
)

// Lexer holds our object-state.
type Lexer struct {
	position     int    //current character position
	readPosition int    //next character position
	ch           rune   //current character
	characters   []rune //rune slice of input string
}

// New creates a Lexer instance from string input.
func New(input string) *Lexer {
	l := &Lexer{characters: []rune(input)}
	l.readChar()
	return l
}

// read one forward character
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.characters) {
		l.ch = rune(0)
	} else {
		l.ch = l.characters[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

// peek character
func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.characters) {
		return rune(0)
	}
	return l.characters[l.readPosition]
}

// Current returns the character the cursor is presently sitting on,
// without consuming it. The parser uses this after reading an
// identifier token to decide whether it is immediately followed by
// '(' and is therefore a function call.
func (l *Lexer) Current() rune {
	return l.ch
}

// SkipWhitespace advances the cursor past a run of whitespace. It is
// exported so the parser can skip the gap between an identifier and
// a following '(' before calling Current.
func (l *Lexer) SkipWhitespace() {
	l.skipWhitespace()
}

func (l *Lexer) skipWhitespace() {
	for isWhitespace(l.ch) {
		l.readChar()
	}
}

// ReadBalancedParens expects the cursor to be sitting on '(' and
// scans forward to the matching ')', tracking nesting depth. It
// returns the substring strictly between the outer parens (which the
// parser recursively parses as the function's argument expression)
// and advances the cursor just past the closing ')'. ok is false if
// the input runs out before the parens balance, an unmatched-paren
// lexical error.
func (l *Lexer) ReadBalancedParens() (substr string, ok bool) {
	if l.ch != '(' {
		return "", false
	}
	depth := 0
	var b []rune
	for {
		l.readChar()
		if l.ch == rune(0) {
			return string(b), false
		}
		if l.ch == '(' {
			depth++
			b = append(b, l.ch)
			continue
		}
		if l.ch == ')' {
			if depth == 0 {
				l.readChar() // consume the closing paren
				return string(b), true
			}
			depth--
			b = append(b, l.ch)
			continue
		}
		b = append(b, l.ch)
	}
}

// NextToken reads the next token, skipping leading whitespace.
func (l *Lexer) NextToken() token.Token {
	var tok token.Token
	l.skipWhitespace()

	switch l.ch {
	case rune('+'):
		tok = newToken(token.PLUS, l.ch)
	case rune('%'):
		tok = newToken(token.PERCENT, l.ch)
	case rune('^'):
		tok = newToken(token.CARET, l.ch)
	case rune('('):
		tok = newToken(token.LPAREN, l.ch)
	case rune(')'):
		tok = newToken(token.RPAREN, l.ch)
	case rune('*'):
		tok = newToken(token.ASTERISK, l.ch)
	case rune('/'):
		tok = newToken(token.SLASH, l.ch)
	case rune('-'):
		tok = newToken(token.MINUS, l.ch)
	case rune('<'):
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.LE, Name: "<="}
		} else {
			tok = newToken(token.LT, l.ch)
		}
	case rune('>'):
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.GE, Name: ">="}
		} else {
			tok = newToken(token.GT, l.ch)
		}
	case rune('='):
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.EQ, Name: "=="}
		} else {
			tok = newToken(token.ASSIGN, l.ch)
		}
	case rune('!'):
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.NE, Name: "!="}
		} else {
			tok = token.Token{Type: token.ERROR, Name: "unexpected '!'"}
		}
	case rune(0):
		tok.Type = token.EOF
	default:
		if isDigit(l.ch) || l.ch == '.' {
			return l.readDecimal()
		}
		if isIdentifierStart(l.ch) {
			return l.readIdentifier()
		}
		tok = token.Token{Type: token.ERROR, Name: "unexpected character '" + string(l.ch) + "'"}
	}
	l.readChar()
	return tok
}

// return new token
func newToken(t token.Type, ch rune) token.Token {
	return token.Token{Type: t, Name: string(ch)}
}

// readNumber reads a run of decimal digits.
func (l *Lexer) readNumber() string {
	accept := "0123456789"
	var b strings.Builder
	for strings.ContainsRune(accept, l.ch) {
		b.WriteRune(l.ch)
		l.readChar()
	}
	return b.String()
}

// readDecimal reads an integer or floating-point literal. A second
// decimal point is a lexical error, reported back to the caller; the
// scan still consumes what it read, matching the source's policy of
// continuing tokenisation from the next byte after a lexical error.
func (l *Lexer) readDecimal() token.Token {
	integer := l.readNumber()

	if l.ch == '.' {
		l.readChar()
		fraction := l.readNumber()
		if l.ch == '.' {
			return token.Token{Type: token.ERROR, Name: "multiple decimal points in numeric literal"}
		}
		lit := integer
		if lit == "" {
			lit = "0"
		}
		return token.Token{Type: token.NUMBER, Name: lit + "." + fraction}
	}
	return token.Token{Type: token.NUMBER, Name: integer}
}

// readIdentifier reads a run of letters, digits and underscores not
// starting with a digit. It deliberately does not consume the
// character immediately following the identifier (space, '(',
// operator, ...), so the parser can inspect it via SkipWhitespace and
// Current to detect a function call.
func (l *Lexer) readIdentifier() token.Token {
	var b strings.Builder
	for isIdentifierPart(l.ch) {
		b.WriteRune(l.ch)
		l.readChar()
	}
	return token.Token{Type: token.IDENT, Name: b.String()}
}

func isWhitespace(ch rune) bool {
	return ch == rune(' ') || ch == rune('\t') || ch == rune('\n') || ch == rune('\r')
}

func isDigit(ch rune) bool {
	return rune('0') <= ch && ch <= rune('9')
}

func isIdentifierStart(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentifierPart(ch rune) bool {
	return isIdentifierStart(ch) || isDigit(ch)
}
