package bignum

// Add returns n + other. The result carries the wider of the two
// operands' scales, or scaleMin fractional digits if that is larger
// (the evaluator passes its working scale; 0 imposes no minimum).
func (n *Num) Add(other *Num, scaleMin int) *Num {
	if n.sign == other.sign {
		return addSameSign(n, other, scaleMin, n.sign)
	}

	pos, neg := n, other
	if pos.sign == Negative {
		pos, neg = neg, pos
	}
	switch compareImpl(pos, neg, false) {
	case -1:
		return subMagnitude(neg, pos, scaleMin, Negative)
	case 0:
		return Zero.Replicate()
	default:
		return subMagnitude(pos, neg, scaleMin, Positive)
	}
}

// Sub returns n - other.
func (n *Num) Sub(other *Num, scaleMin int) *Num {
	if n.sign != other.sign {
		return addSameSign(n, other, scaleMin, n.sign)
	}
	switch compareImpl(n, other, false) {
	case -1:
		return subMagnitude(other, n, scaleMin, n.sign.negate())
	case 0:
		return Zero.Replicate()
	default:
		return subMagnitude(n, other, scaleMin, n.sign)
	}
}

// addSameSign adds the magnitudes of two same-signed numbers and
// labels the result with resultSign.
func addSameSign(a, b *Num, scaleMin int, resultSign Sign) *Num {
	intLen := max(a.intLen, b.intLen)
	scale := max(max(a.scale, b.scale), scaleMin)
	out := New(intLen+1, scale)
	out.sign = resultSign

	// Fractional part, LSB-to-MSB, with carry.
	carry := byte(0)
	for i := 1; i <= scale; i++ {
		av := fracDigitFromEnd(a, i)
		bv := fracDigitFromEnd(b, i)
		sum := av + bv + carry
		if sum >= 10 {
			sum -= 10
			carry = 1
		} else {
			carry = 0
		}
		out.digits[out.intLen+scale-i] = sum
	}

	// Integer part, LSB-to-MSB, with carry continuing in from the
	// fractional addition.
	for i := 1; i <= intLen; i++ {
		av := intDigitFromEnd(a, i)
		bv := intDigitFromEnd(b, i)
		sum := av + bv + carry
		if sum >= 10 {
			sum -= 10
			carry = 1
		} else {
			carry = 0
		}
		out.digits[out.intLen-i] = sum
	}
	if carry == 1 {
		out.digits[0] = 1
	}
	normalize(out)
	return out
}

// subMagnitude subtracts |b| from |a|, assuming |a| >= |b|, labeling
// the result with resultSign.
func subMagnitude(a, b *Num, scaleMin int, resultSign Sign) *Num {
	intLen := max(a.intLen, b.intLen)
	scale := max(max(a.scale, b.scale), scaleMin)
	out := New(intLen, scale)
	out.sign = resultSign

	for i := 1; i <= scale; i++ {
		out.digits[out.intLen+out.scale-i] = fracDigitFromEnd(a, i)
	}
	for i := 1; i <= intLen; i++ {
		out.digits[out.intLen-i] = intDigitFromEnd(a, i)
	}

	borrow := byte(0)
	for i := 1; i <= scale; i++ {
		av := out.digits[out.intLen+out.scale-i]
		bv := fracDigitFromEnd(b, i)
		if av < bv+borrow {
			out.digits[out.intLen+out.scale-i] = av + 10 - bv - borrow
			borrow = 1
		} else {
			out.digits[out.intLen+out.scale-i] = av - bv - borrow
			borrow = 0
		}
	}
	for i := 1; i <= intLen; i++ {
		av := out.digits[out.intLen-i]
		bv := intDigitFromEnd(b, i)
		if av < bv+borrow {
			out.digits[out.intLen-i] = av + 10 - bv - borrow
			borrow = 1
		} else {
			out.digits[out.intLen-i] = av - bv - borrow
			borrow = 0
		}
	}
	normalize(out)
	return out
}

// fracDigitFromEnd returns the i-th fractional digit counting from
// the least significant (i=1), or 0 if n's fractional part is shorter.
func fracDigitFromEnd(n *Num, i int) byte {
	if i > n.scale {
		return 0
	}
	return n.digits[n.intLen+n.scale-i]
}

// intDigitFromEnd returns the i-th integer digit counting from the
// units place (i=1), or 0 if n's integer part is shorter.
func intDigitFromEnd(n *Num, i int) byte {
	if i > n.intLen {
		return 0
	}
	return n.digits[n.intLen-i]
}
