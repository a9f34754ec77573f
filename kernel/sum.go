package kernel

// Sum returns the sum of all elements in x at the given tier.
// Panics if x is empty. Vectorized tiers combine elements in a different
// order than Scalar and agree with it only within a small relative tolerance.
func Sum(t Tier, x []float32) float32 {
	switch t {
	case TierScalar:
		return SumScalar(x)
	case TierVec4:
		return SumVec4(x)
	case TierVec8:
		return SumVec8(x)
	default:
		panic("kernel: sum: unsupported tier")
	}
}

// SumScalar accumulates left to right, one addition per element. This is the
// reference ordering the vectorized tiers are tolerance-checked against.
func SumScalar(x []float32) float32 {
	checkReduceArg(x)

	var total float32
	for i := range x {
		total += x[i]
	}
	return total
}

// SumVec4 accumulates blocks of 4 into a 4-lane accumulator, folds the lanes
// pairwise in 2 steps, then adds any leftover elements sequentially.
func SumVec4(x []float32) float32 {
	checkReduceArg(x)

	var s0, s1, s2, s3 float32
	i := 0
	n := len(x)
	for ; i+4 <= n; i += 4 {
		s0 += x[i]
		s1 += x[i+1]
		s2 += x[i+2]
		s3 += x[i+3]
	}

	// Horizontal network: pair 0-1 and 2-3, then pair the partials.
	total := (s0 + s1) + (s2 + s3)

	for ; i < n; i++ {
		total += x[i]
	}
	return total
}

// SumVec8 accumulates blocks of 8 into an 8-lane accumulator, folds the lanes
// to one in 3 steps (halves, then pairs), then adds any leftover elements
// sequentially.
func SumVec8(x []float32) float32 {
	checkReduceArg(x)

	var s0, s1, s2, s3, s4, s5, s6, s7 float32
	i := 0
	n := len(x)
	for ; i+8 <= n; i += 8 {
		s0 += x[i]
		s1 += x[i+1]
		s2 += x[i+2]
		s3 += x[i+3]
		s4 += x[i+4]
		s5 += x[i+5]
		s6 += x[i+6]
		s7 += x[i+7]
	}

	// Horizontal network: fold the upper half onto the lower, then pair.
	h0 := s0 + s4
	h1 := s1 + s5
	h2 := s2 + s6
	h3 := s3 + s7
	total := (h0 + h1) + (h2 + h3)

	for ; i < n; i++ {
		total += x[i]
	}
	return total
}
