package kernel

// Op identifies one of the kernel operations. The set is closed; it is not
// extensible at runtime.
type Op int

const (
	// OpMulAdd is the elementwise fused multiply-add: dst[i] = a[i]*b[i] + c[i].
	OpMulAdd Op = iota

	// OpSum reduces a buffer to the sum of its elements.
	OpSum

	// OpMax reduces a buffer to its largest element.
	OpMax

	// OpMin reduces a buffer to its smallest element.
	OpMin
)

// String returns a human-readable name for the operation.
func (o Op) String() string {
	switch o {
	case OpMulAdd:
		return "muladd"
	case OpSum:
		return "sum"
	case OpMax:
		return "max"
	case OpMin:
		return "min"
	default:
		return "unknown"
	}
}

// Supports reports whether the operation has an implementation at tier t.
//
// MulAdd and Sum support all three tiers. Max and Min support only Scalar
// and Vec4; the reference kernels this package mirrors never had an 8-wide
// max/min, and the asymmetry is kept rather than silently widened.
func (o Op) Supports(t Tier) bool {
	switch o {
	case OpMulAdd, OpSum:
		return t == TierScalar || t == TierVec4 || t == TierVec8
	case OpMax, OpMin:
		return t == TierScalar || t == TierVec4
	default:
		return false
	}
}

// Tiers returns the tiers supported by the operation, narrowest first.
func (o Op) Tiers() []Tier {
	switch o {
	case OpMulAdd, OpSum:
		return []Tier{TierScalar, TierVec4, TierVec8}
	case OpMax, OpMin:
		return []Tier{TierScalar, TierVec4}
	default:
		return nil
	}
}
