// Package evaluator converts a parser's flat infix token array into
// postfix form (shunting-yard, using the asymmetric precedence table
// in precedence.go) and then evaluates that postfix stream against a
// symbol table, producing a single result value.
package evaluator

import (
	"github.com/skx/sapcalc/bignum"
	"github.com/skx/sapcalc/config"
	"github.com/skx/sapcalc/diagnostics"
	"github.com/skx/sapcalc/stack"
	"github.com/skx/sapcalc/symtab"
	"github.com/skx/sapcalc/token"
)

// Evaluator holds the state shared across every statement evaluated
// within one calculator session: its variable bindings, its
// diagnostic sink, and its tuning configuration.
type Evaluator struct {
	vars *symtab.Table
	sink *diagnostics.Sink
	cfg  *config.Config
}

// New returns an Evaluator using the given symbol table, diagnostic
// sink and configuration. None of the arguments may be nil.
func New(vars *symtab.Table, sink *diagnostics.Sink, cfg *config.Config) *Evaluator {
	return &Evaluator{vars: vars, sink: sink, cfg: cfg}
}

// operand is a value produced while walking the postfix stream. Most
// operands are plain values; varName is set only when the operand
// came straight from a variable-reference token, so assignment can
// tell a bare variable apart from any other expression on its left.
type operand struct {
	val     *bignum.Num
	varName string
}

// Eval parses tokens (as produced by parser.Parse, or a function
// call's argument array) into postfix order and evaluates it. ok is
// false only for a wholly empty token stream (no operand ever
// produced), the "absent" case for an empty statement.
func (e *Evaluator) Eval(tokens []*token.Token) (result *bignum.Num, ok bool) {
	postfix := e.toPostfix(tokens)
	if len(postfix) == 0 {
		return nil, false
	}

	var stk []operand
	for _, tok := range postfix {
		if tok.IsOperand() {
			stk = append(stk, e.evalOperand(tok))
			continue
		}
		if !tok.IsOperator() || tok.Type == token.LPAREN {
			continue
		}

		if len(stk) < 2 {
			e.sink.Warn("malformed expression: missing operand for ", string(tok.Type))
			stk = append(stk, operand{val: bignum.Zero})
			continue
		}
		right := stk[len(stk)-1]
		left := stk[len(stk)-2]
		stk = stk[:len(stk)-2]
		stk = append(stk, e.applyOperator(tok, left, right))
	}

	if len(stk) != 1 {
		e.sink.Warn("malformed expression: ", "leftover operands after evaluation")
		return bignum.Zero, true
	}
	return stk[0].val, true
}

// toPostfix runs the shunting-yard algorithm over tokens, skipping
// over a trailing EOF marker if present (a nested function-call
// argument array carries none).
func (e *Evaluator) toPostfix(tokens []*token.Token) []*token.Token {
	var out []*token.Token
	ops := stack.New()
	ops.Push(token.New(token.SENTINEL))

	flush := func(newcomerOut int) {
		for {
			top, err := ops.Top()
			if err != nil {
				return
			}
			if inPrec(top.Type) < newcomerOut {
				return
			}
			ops.Pop()
			out = append(out, top)
		}
	}

	for _, tok := range tokens {
		switch {
		case tok.Type == token.EOF:
			continue
		case tok.IsOperand():
			out = append(out, tok)
		case tok.Type == token.LPAREN:
			ops.Push(tok)
		case tok.Type == token.RPAREN:
			for {
				top, err := ops.Top()
				if err != nil || top.Type == token.SENTINEL {
					e.sink.Warn("unmatched parentheses", "")
					break
				}
				ops.Pop()
				if top.Type == token.LPAREN {
					break
				}
				out = append(out, top)
			}
		default:
			flush(outPrec(tok.Type))
			ops.Push(tok)
		}
	}

	for {
		top, err := ops.Top()
		if err != nil || top.Type == token.SENTINEL {
			break
		}
		ops.Pop()
		if top.Type == token.LPAREN {
			e.sink.Warn("unmatched parentheses", "")
			continue
		}
		out = append(out, top)
	}

	return out
}

// evalOperand computes the value of a single operand token: a
// numeric literal, a variable reference, or a function call.
func (e *Evaluator) evalOperand(tok *token.Token) operand {
	var val *bignum.Num

	switch tok.Type {
	case token.NUMBER:
		val = tok.Value
	case token.IDENT:
		if v, found := e.vars.Find(tok.Name); found {
			val = v
		} else {
			val = bignum.Zero
		}
	case token.FUNC_GENERIC:
		e.sink.Warn("unrecognized function: ", tok.Name)
		val = bignum.Zero
	default:
		val = e.evalFunction(tok)
	}

	if tok.Negate {
		val = val.Neg()
	}

	if tok.Type == token.IDENT {
		return operand{val: val, varName: tok.Name}
	}
	return operand{val: val}
}

// evalFunction recursively evaluates a function call's argument
// expression and dispatches to the matching bignum routine. sqrt uses
// the argument's own scale as its working scale; the other
// transcendentals are floored at cfg.MinTranscendentalScale.
func (e *Evaluator) evalFunction(tok *token.Token) *bignum.Num {
	arg, ok := e.Eval(tok.Args)
	if !ok {
		arg = bignum.Zero
	}

	switch tok.Type {
	case token.FUNC_SQRT:
		v, err := arg.Sqrt(arg.Scale())
		if err != nil {
			e.sink.Warn("sqrt: ", err.Error())
			return bignum.Zero
		}
		return v
	case token.FUNC_SIN:
		return arg.Sin(e.transcendentalScale(arg))
	case token.FUNC_COS:
		return arg.Cos(e.transcendentalScale(arg))
	case token.FUNC_ATAN:
		return arg.Atan(e.transcendentalScale(arg))
	case token.FUNC_LN:
		v, err := arg.Ln(e.transcendentalScale(arg))
		if err != nil {
			e.sink.Warn("ln: ", err.Error())
			return bignum.Zero
		}
		return v
	case token.FUNC_EXP:
		return arg.Exp(e.transcendentalScale(arg))
	}
	return bignum.Zero
}

func (e *Evaluator) transcendentalScale(arg *bignum.Num) int {
	scale := arg.Scale()
	if scale < e.cfg.MinTranscendentalScale {
		scale = e.cfg.MinTranscendentalScale
	}
	return scale
}

// applyOperator computes the result of a binary operator token
// against already-evaluated left/right operands, producing a fresh
// result operand. Parser-owned operator tokens are never mutated.
func (e *Evaluator) applyOperator(tok *token.Token, left, right operand) operand {
	if tok.Type == token.ASSIGN {
		if left.varName == "" {
			e.sink.Warn("assignment to a non-variable", "")
			return operand{val: bignum.Zero}
		}
		e.vars.Insert(left.varName, right.val)
		return operand{val: right.val}
	}

	scale := left.val.Scale()
	if right.val.Scale() > scale {
		scale = right.val.Scale()
	}
	if scale < e.cfg.DefaultScale {
		scale = e.cfg.DefaultScale
	}

	switch tok.Type {
	case token.PLUS:
		return operand{val: left.val.Add(right.val, scale)}
	case token.MINUS:
		return operand{val: left.val.Sub(right.val, scale)}
	case token.ASTERISK:
		return operand{val: left.val.Mul(right.val, scale)}
	case token.SLASH:
		v, err := left.val.Div(right.val, scale)
		if err != nil {
			e.sink.Warn("/: ", err.Error())
			return operand{val: bignum.Zero}
		}
		return operand{val: v}
	case token.PERCENT:
		v, err := left.val.Mod(right.val, scale)
		if err != nil {
			e.sink.Warn("%: ", err.Error())
			return operand{val: bignum.Zero}
		}
		return operand{val: v}
	case token.CARET:
		v, err := left.val.Pow(right.val, scale)
		if err != nil {
			e.sink.Warn("^: ", err.Error())
			return operand{val: bignum.Zero}
		}
		return operand{val: v}
	case token.LT:
		return operand{val: boolNum(left.val.Compare(right.val) < 0)}
	case token.GT:
		return operand{val: boolNum(left.val.Compare(right.val) > 0)}
	case token.LE:
		return operand{val: boolNum(left.val.Compare(right.val) <= 0)}
	case token.GE:
		return operand{val: boolNum(left.val.Compare(right.val) >= 0)}
	case token.EQ:
		return operand{val: boolNum(left.val.Compare(right.val) == 0)}
	case token.NE:
		return operand{val: boolNum(left.val.Compare(right.val) != 0)}
	}

	e.sink.Warn("unknown operator", "")
	return operand{val: bignum.Zero}
}

func boolNum(b bool) *bignum.Num {
	if b {
		return bignum.One
	}
	return bignum.Zero
}
