package bignum

// Sqrt returns the square root of n, truncated to scale fractional
// digits, using Newton's method starting from an initial guess of 1.
// Negative inputs report ErrNegativeSqrt; callers that want the
// source's "diagnostic, yield zero" behavior should handle the error
// at the calc layer rather than here.
func (n *Num) Sqrt(scale int) (*Num, error) {
	if n.IsNeg() {
		return Zero.Replicate(), ErrNegativeSqrt
	}
	if n.IsZero() || n.Compare(One) == 0 {
		return n.withScale(scale), nil
	}

	// The working scale grows geometrically (x3 per step) until it
	// comfortably exceeds the requested result scale; iterating at
	// that fixed higher precision keeps the final truncation honest.
	workScale := 1
	for workScale < scale+1 {
		workScale *= 3
	}
	if workScale < 3 {
		workScale = 3
	}

	g := One.Replicate()
	for i := 0; i < 200; i++ {
		q, err := n.Div(g, workScale)
		if err != nil {
			return Zero.Replicate(), err
		}
		sum := g.Add(q, workScale)
		gNew, _ := sum.Div(Two, workScale)
		diff := gNew.Sub(g, workScale)
		g = gNew
		if diff.IsNearZero(workScale) {
			break
		}
	}
	return g.withScale(scale), nil
}
