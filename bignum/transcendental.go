package bignum

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// ErrNonPositiveLn is returned by Ln for zero or negative arguments.
var ErrNonPositiveLn = errors.New("logarithm of non-positive number")

// The transcendental functions below delegate to the host platform's
// float64 math library: the receiver is converted to a double,
// computed, and converted back, truncated to scale fractional digits.
// This is a deliberate precision ceiling (about 15 significant
// digits); a stronger implementation could substitute a Taylor-series
// or CORDIC routine without changing these functions' signatures.

// Sin returns the sine of n (radians), truncated to scale fractional digits.
func (n *Num) Sin(scale int) *Num {
	return FromFloat(math.Sin(n.toFloat64()), scale)
}

// Cos returns the cosine of n (radians), truncated to scale fractional digits.
func (n *Num) Cos(scale int) *Num {
	return FromFloat(math.Cos(n.toFloat64()), scale)
}

// Atan returns the arctangent of n (radians), truncated to scale fractional digits.
func (n *Num) Atan(scale int) *Num {
	return FromFloat(math.Atan(n.toFloat64()), scale)
}

// Ln returns the natural logarithm of n, truncated to scale
// fractional digits. n must be strictly positive.
func (n *Num) Ln(scale int) (*Num, error) {
	if n.Compare(Zero) <= 0 {
		return Zero.Replicate(), ErrNonPositiveLn
	}
	return FromFloat(math.Log(n.toFloat64()), scale), nil
}

// Exp returns e^n, truncated to scale fractional digits.
func (n *Num) Exp(scale int) *Num {
	return FromFloat(math.Exp(n.toFloat64()), scale)
}

// toFloat64 converts n to its closest float64 approximation.
func (n *Num) toFloat64() float64 {
	v, _ := strconv.ParseFloat(n.String(), 64)
	return v
}
