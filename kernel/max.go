package kernel

// Max returns the largest element of x at the given tier.
// Panics if x is empty or the tier is not Scalar or Vec4.
//
// Comparison is strict (>), so ties keep the earlier-seen value. A NaN at
// index 0 propagates to the result; a NaN anywhere else never wins a strict
// comparison and is ignored.
func Max(t Tier, x []float32) float32 {
	switch t {
	case TierScalar:
		return MaxScalar(x)
	case TierVec4:
		return MaxVec4(x)
	default:
		panic("kernel: max: unsupported tier")
	}
}

// MaxScalar seeds the running best from the first element and
// compare-and-replaces across the rest.
func MaxScalar(x []float32) float32 {
	checkReduceArg(x)

	best := x[0]
	for i := 1; i < len(x); i++ {
		if x[i] > best {
			best = x[i]
		}
	}
	return best
}

// MaxVec4 seeds a 4-lane accumulator from the first 4 elements, folds
// subsequent full blocks lane-wise, reduces the lanes pairwise, then scans
// any leftover elements sequentially. Buffers shorter than 4 elements are
// handled entirely by the scalar path.
func MaxVec4(x []float32) float32 {
	checkReduceArg(x)

	n := len(x)
	if n < 4 {
		return MaxScalar(x)
	}

	m0, m1, m2, m3 := x[0], x[1], x[2], x[3]
	i := 4
	for ; i+4 <= n; i += 4 {
		if v := x[i]; v > m0 {
			m0 = v
		}
		if v := x[i+1]; v > m1 {
			m1 = v
		}
		if v := x[i+2]; v > m2 {
			m2 = v
		}
		if v := x[i+3]; v > m3 {
			m3 = v
		}
	}

	// Horizontal network: pair 0-1 and 2-3, then pair the partials.
	if m1 > m0 {
		m0 = m1
	}
	if m3 > m2 {
		m2 = m3
	}
	if m2 > m0 {
		m0 = m2
	}

	for ; i < n; i++ {
		if x[i] > m0 {
			m0 = x[i]
		}
	}
	return m0
}
