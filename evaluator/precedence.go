package evaluator

import "github.com/skx/sapcalc/token"

// inPrec and outPrec implement the shunting-yard's asymmetric
// precedence table: a newcomer operator is pushed once every
// incumbent already on the stack whose in-prec is at least the
// newcomer's out-prec has been popped. Giving an operator the same
// in-prec/out-prec ordering as "+" makes it left-associative (in >
// out, so a tie pops); giving it the opposite ordering, as with "^",
// makes it right-associative (out > in, so a tie does not pop).
func inPrec(t token.Type) int {
	switch t {
	case token.ASSIGN:
		return 1
	case token.EQ, token.NE:
		return 6
	case token.LT, token.GT, token.LE, token.GE:
		return 11
	case token.PLUS, token.MINUS:
		return 101
	case token.ASTERISK, token.SLASH, token.PERCENT:
		return 1001
	case token.CARET:
		return 10000
	case token.LPAREN:
		return 0
	default:
		return -10
	}
}

func outPrec(t token.Type) int {
	switch t {
	case token.ASSIGN:
		return 2
	case token.EQ, token.NE:
		return 5
	case token.LT, token.GT, token.LE, token.GE:
		return 10
	case token.PLUS, token.MINUS:
		return 100
	case token.ASTERISK, token.SLASH, token.PERCENT:
		return 1000
	case token.CARET:
		return 10001
	case token.LPAREN:
		return 1000000
	default:
		return -10
	}
}
