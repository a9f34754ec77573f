package kernel

// Tier selects how many elements a kernel processes per inner-loop step.
//
// Tiers are statically selectable: a caller (or the dispatch package) picks
// one explicitly. Not every operation supports every tier; see Op.Supports.
type Tier int

const (
	// TierScalar processes one element at a time.
	TierScalar Tier = iota

	// TierVec4 processes blocks of 4 elements with a 4-lane accumulator.
	TierVec4

	// TierVec8 processes blocks of 8 elements with an 8-lane accumulator.
	TierVec8
)

// Width returns the number of elements processed per block at this tier.
func (t Tier) Width() int {
	switch t {
	case TierScalar:
		return 1
	case TierVec4:
		return 4
	case TierVec8:
		return 8
	default:
		return 0
	}
}

// String returns a human-readable name for the tier.
func (t Tier) String() string {
	switch t {
	case TierScalar:
		return "scalar"
	case TierVec4:
		return "vec4"
	case TierVec8:
		return "vec8"
	default:
		return "unknown"
	}
}
