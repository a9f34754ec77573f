package kernel

import "math"

// fmadd32 computes a*b + c with a single rounding to float32.
//
// The float64 product of two float32 values is exact (24+24 significand bits
// fit in 53), and rounding the exact a*b+c through float64 to float32 is
// innocuous because 53 >= 2*24+2. The result is therefore the correctly
// rounded float32 FMA on every platform, so all MulAdd tiers agree bit for bit.
func fmadd32(a, b, c float32) float32 {
	return float32(math.FMA(float64(a), float64(b), float64(c)))
}

// checkMulAddArgs panics unless dst, a, b, c have equal length and dst does
// not share a backing array start with any input. Partial overlaps cannot be
// detected from slice headers and remain the caller's responsibility.
func checkMulAddArgs(dst, a, b, c []float32) {
	if len(a) != len(b) || len(c) != len(a) || len(dst) != len(a) {
		panic("kernel: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	if &dst[0] == &a[0] || &dst[0] == &b[0] || &dst[0] == &c[0] {
		panic("kernel: dst must not alias an input")
	}
}

// checkReduceArg panics if x is empty. Reductions have no identity value to
// return for an empty buffer; calling one on empty input is a programmer error.
func checkReduceArg(x []float32) {
	if len(x) == 0 {
		panic("kernel: reduction over empty buffer")
	}
}
