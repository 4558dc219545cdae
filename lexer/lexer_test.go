package lexer

import (
	"testing"

	"github.com/skx/sapcalc/token"
)

func TestNextTokenOperators(t *testing.T) {
	input := `+ - * / % ^ ( ) = < > <= >= == !=`

	want := []token.Type{
		token.PLUS, token.MINUS, token.ASTERISK, token.SLASH, token.PERCENT,
		token.CARET, token.LPAREN, token.RPAREN, token.ASSIGN, token.LT,
		token.GT, token.LE, token.GE, token.EQ, token.NE, token.EOF,
	}

	l := New(input)
	for i, tt := range want {
		tok := l.NextToken()
		if tok.Type != tt {
			t.Fatalf("token %d: got %q, want %q", i, tok.Type, tt)
		}
	}
}

func TestNextTokenNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"123", "123"},
		{"0", "0"},
		{"3.14159", "3.14159"},
		{".5", "0.5"},
		{"5.", "5."},
	}

	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != token.NUMBER {
			t.Fatalf("input %q: got type %q, want NUMBER", tt.input, tok.Type)
		}
		if tok.Name != tt.want {
			t.Errorf("input %q: got literal %q, want %q", tt.input, tok.Name, tt.want)
		}
	}
}

func TestNextTokenMultipleDecimalPoints(t *testing.T) {
	l := New("1.2.3")
	tok := l.NextToken()
	if tok.Type != token.ERROR {
		t.Fatalf("got %q, want ERROR", tok.Type)
	}
}

func TestNextTokenIdentifiersAndFunctions(t *testing.T) {
	l := New("sqrt foo bar123 _x")

	for _, want := range []string{"sqrt", "foo", "bar123", "_x"} {
		tok := l.NextToken()
		if tok.Type != token.IDENT {
			t.Fatalf("got type %q, want IDENT", tok.Type)
		}
		if tok.Name != want {
			t.Errorf("got %q, want %q", tok.Name, want)
		}
	}
}

func TestNextTokenUnrecognised(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	if tok.Type != token.ERROR {
		t.Fatalf("got %q, want ERROR", tok.Type)
	}
}

func TestNextTokenUnexpectedBang(t *testing.T) {
	l := New("!5")
	tok := l.NextToken()
	if tok.Type != token.ERROR {
		t.Fatalf("got %q, want ERROR", tok.Type)
	}
}

func TestMinusIsAlwaysAnOperator(t *testing.T) {
	// Unlike the teacher lexer this port is based on, a leading '-'
	// is never folded into the following numeric literal; that is
	// the parser's job via the unary-minus rule.
	l := New("-3")
	tok := l.NextToken()
	if tok.Type != token.MINUS {
		t.Fatalf("got %q, want MINUS", tok.Type)
	}
	tok = l.NextToken()
	if tok.Type != token.NUMBER || tok.Name != "3" {
		t.Fatalf("got %q %q, want NUMBER 3", tok.Type, tok.Name)
	}
}

func TestCurrentAndSkipWhitespace(t *testing.T) {
	l := New("sqrt   (4)")
	tok := l.NextToken()
	if tok.Type != token.IDENT || tok.Name != "sqrt" {
		t.Fatalf("got %q %q", tok.Type, tok.Name)
	}
	l.SkipWhitespace()
	if l.Current() != '(' {
		t.Fatalf("got %q, want '('", l.Current())
	}
}

func TestReadBalancedParens(t *testing.T) {
	l := New("(1 + (2 * 3)) rest")
	substr, ok := l.ReadBalancedParens()
	if !ok {
		t.Fatalf("expected balanced parens to be found")
	}
	if substr != "1 + (2 * 3)" {
		t.Errorf("got %q", substr)
	}
	l.SkipWhitespace()
	tok := l.NextToken()
	if tok.Type != token.IDENT || tok.Name != "rest" {
		t.Fatalf("got %q %q", tok.Type, tok.Name)
	}
}

func TestReadBalancedParensUnmatched(t *testing.T) {
	l := New("(1 + 2")
	_, ok := l.ReadBalancedParens()
	if ok {
		t.Fatalf("expected unmatched parens to fail")
	}
}

func TestNextTokenStatement(t *testing.T) {
	input := "x = 3.5 + 2 * sqrt(4)"
	l := New(input)

	var types []token.Type
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == token.EOF {
			break
		}
	}

	want := []token.Type{
		token.IDENT, token.ASSIGN, token.NUMBER, token.PLUS, token.NUMBER,
		token.ASTERISK, token.IDENT, token.LPAREN, token.NUMBER, token.RPAREN,
		token.EOF,
	}
	if len(types) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(types), len(want), types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("token %d: got %q, want %q", i, types[i], want[i])
		}
	}
}
