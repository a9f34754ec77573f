package kernel

// MulAdd computes dst[i] = a[i]*b[i] + c[i] at the given tier.
// Slices must have equal length and dst must not alias an input; panics
// otherwise. All tiers produce bit-identical results.
func MulAdd(t Tier, dst, a, b, c []float32) {
	switch t {
	case TierScalar:
		MulAddScalar(dst, a, b, c)
	case TierVec4:
		MulAddVec4(dst, a, b, c)
	case TierVec8:
		MulAddVec8(dst, a, b, c)
	default:
		panic("kernel: muladd: unsupported tier")
	}
}

// MulAddScalar computes dst[i] = a[i]*b[i] + c[i] one element at a time,
// with single-rounding fused semantics per element.
func MulAddScalar(dst, a, b, c []float32) {
	checkMulAddArgs(dst, a, b, c)
	for i := range dst {
		dst[i] = fmadd32(a[i], b[i], c[i])
	}
}

// MulAddVec4 computes dst[i] = a[i]*b[i] + c[i] in blocks of 4, finishing
// any leftover elements with the scalar formula.
func MulAddVec4(dst, a, b, c []float32) {
	checkMulAddArgs(dst, a, b, c)

	i := 0
	n := len(dst)
	for ; i+4 <= n; i += 4 {
		dst[i] = fmadd32(a[i], b[i], c[i])
		dst[i+1] = fmadd32(a[i+1], b[i+1], c[i+1])
		dst[i+2] = fmadd32(a[i+2], b[i+2], c[i+2])
		dst[i+3] = fmadd32(a[i+3], b[i+3], c[i+3])
	}
	for ; i < n; i++ {
		dst[i] = fmadd32(a[i], b[i], c[i])
	}
}

// MulAddVec8 computes dst[i] = a[i]*b[i] + c[i] in blocks of 8, finishing
// any leftover elements with the scalar formula.
func MulAddVec8(dst, a, b, c []float32) {
	checkMulAddArgs(dst, a, b, c)

	i := 0
	n := len(dst)
	for ; i+8 <= n; i += 8 {
		dst[i] = fmadd32(a[i], b[i], c[i])
		dst[i+1] = fmadd32(a[i+1], b[i+1], c[i+1])
		dst[i+2] = fmadd32(a[i+2], b[i+2], c[i+2])
		dst[i+3] = fmadd32(a[i+3], b[i+3], c[i+3])
		dst[i+4] = fmadd32(a[i+4], b[i+4], c[i+4])
		dst[i+5] = fmadd32(a[i+5], b[i+5], c[i+5])
		dst[i+6] = fmadd32(a[i+6], b[i+6], c[i+6])
		dst[i+7] = fmadd32(a[i+7], b[i+7], c[i+7])
	}
	for ; i < n; i++ {
		dst[i] = fmadd32(a[i], b[i], c[i])
	}
}
