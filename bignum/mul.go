package bignum

// karatsubaThreshold is the digit count below which multiplication
// falls back to schoolbook O(n*m) digit-by-digit multiplication
// instead of recursing.
const karatsubaThreshold = 2

// Mul returns n * other, truncated (not rounded) to scale fractional
// digits. Both operands are first shifted so their fractional parts
// become integers, multiplied as plain (arbitrary-length) integers via
// Karatsuba, then shifted back by the combined fractional digit
// count.
func (n *Num) Mul(other *Num, scale int) *Num {
	sign := Positive
	if (n.sign != other.sign) && !n.IsZero() && !other.IsZero() {
		sign = Negative
	}

	combinedScale := n.scale + other.scale
	prodMSB := mulUnsignedMSB(n.digits, other.digits)

	intLen := len(prodMSB) - combinedScale
	if intLen < 1 {
		pad := 1 - intLen
		prodMSB = append(make([]byte, pad), prodMSB...)
		intLen = 1
	}

	full := New(intLen, combinedScale)
	copy(full.digits, prodMSB)
	full.sign = sign
	normalize(full)
	return full.withScale(scale)
}

// withScale returns a copy of n truncated (if scale is smaller) or
// zero-padded (if scale is larger) to exactly scale fractional
// digits. No rounding is performed, matching the source's truncation
// behavior.
func (n *Num) withScale(scale int) *Num {
	if scale < 0 {
		scale = 0
	}
	if scale == n.scale {
		return n.Replicate()
	}
	out := New(n.intLen, scale)
	out.sign = n.sign
	m := min(n.scale, scale)
	copy(out.digits[:n.intLen], n.digits[:n.intLen])
	copy(out.digits[n.intLen:n.intLen+m], n.digits[n.intLen:n.intLen+m])
	normalize(out)
	return out
}

// mulUnsignedMSB multiplies two non-negative digit slices (MSB-first,
// as stored in Num.digits — leading-zero-tolerant) and returns the
// MSB-first product digits, with length len(a)+len(b).
func mulUnsignedMSB(a, b []byte) []byte {
	aLSB := reversed(a)
	bLSB := reversed(b)
	prodLSB := karatsubaMul(aLSB, bLSB)
	return reversed(prodLSB)
}

func reversed(s []byte) []byte {
	out := make([]byte, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// karatsubaMul multiplies two LSB-first digit slices, returning an
// LSB-first result of length len(a)+len(b). Below karatsubaThreshold
// it falls back to schoolbook multiplication.
func karatsubaMul(a, b []byte) []byte {
	if len(a) <= karatsubaThreshold || len(b) <= karatsubaThreshold {
		return schoolbookMul(a, b)
	}

	m := min(len(a), len(b)) / 2

	a0, a1 := splitLow(a, m), splitHigh(a, m)
	b0, b1 := splitLow(b, m), splitHigh(b, m)

	z2 := karatsubaMul(a1, b1)
	z0 := karatsubaMul(a0, b0)

	// addLSB always appends a carry digit; drop high-end zeros so the
	// operands of the middle product shrink and the recursion ends.
	trim := func(s []byte) []byte {
		for len(s) > 1 && s[len(s)-1] == 0 {
			s = s[:len(s)-1]
		}
		return s
	}
	sumA := trim(addLSB(a0, a1))
	sumB := trim(addLSB(b0, b1))
	z1raw := karatsubaMul(sumA, sumB)
	z1 := subLSB(subLSB(z1raw, z2), z0)

	result := addLSB(addLSB(shiftLSB(z2, 2*m), shiftLSB(z1, m)), z0)

	// Pad/trim to the expected exact length so callers can rely on it.
	want := len(a) + len(b)
	if len(result) < want {
		result = append(result, make([]byte, want-len(result))...)
	}
	return result[:want]
}

// schoolbookMul multiplies two LSB-first digit slices by plain
// digit-by-digit convolution with carry normalization.
func schoolbookMul(a, b []byte) []byte {
	res := make([]byte, len(a)+len(b))
	for i, av := range a {
		if av == 0 {
			continue
		}
		carry := 0
		for j, bv := range b {
			idx := i + j
			sum := int(res[idx]) + int(av)*int(bv) + carry
			res[idx] = byte(sum % 10)
			carry = sum / 10
		}
		k := i + len(b)
		for carry > 0 {
			sum := int(res[k]) + carry
			res[k] = byte(sum % 10)
			carry = sum / 10
			k++
		}
	}
	return res
}

func splitLow(a []byte, m int) []byte {
	if m >= len(a) {
		return append([]byte{}, a...)
	}
	return append([]byte{}, a[:m]...)
}

func splitHigh(a []byte, m int) []byte {
	if m >= len(a) {
		return []byte{}
	}
	return append([]byte{}, a[m:]...)
}

// addLSB adds two LSB-first magnitudes, returning an LSB-first sum.
func addLSB(a, b []byte) []byte {
	n := max(len(a), len(b))
	out := make([]byte, n+1)
	carry := byte(0)
	for i := 0; i < n; i++ {
		var av, bv byte
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		sum := av + bv + carry
		if sum >= 10 {
			sum -= 10
			carry = 1
		} else {
			carry = 0
		}
		out[i] = sum
	}
	out[n] = carry
	return out
}

// subLSB subtracts LSB-first magnitude b from a, assuming a >= b.
func subLSB(a, b []byte) []byte {
	out := make([]byte, len(a))
	borrow := byte(0)
	for i := range a {
		var bv byte
		if i < len(b) {
			bv = b[i]
		}
		av := a[i]
		if av < bv+borrow {
			out[i] = av + 10 - bv - borrow
			borrow = 1
		} else {
			out[i] = av - bv - borrow
			borrow = 0
		}
	}
	return out
}

// shiftLSB returns a*10^m expressed as an LSB-first digit slice, i.e.
// m zero digits prepended at the low end.
func shiftLSB(a []byte, m int) []byte {
	out := make([]byte, m+len(a))
	copy(out[m:], a)
	return out
}
