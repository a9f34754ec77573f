// Package dispatch layers CPU-feature-driven tier selection on top of the
// kernel package. The kernels themselves carry no hardware detection; this
// package picks the widest tier the host supports once per process and
// forwards every call to it.
//
// Selection uses github.com/cwbudde/algo-vecmath/cpu feature detection and a
// priority-sorted backend registry: AVX2-class hosts get the 8-wide kernels,
// SSE2/NEON-class hosts the 4-wide ones, everything else the scalar fallback.
// Max and Min have no 8-wide kernel, so they run 4-wide even on AVX2 hosts.
package dispatch

import (
	"sync"

	"github.com/cwbudde/algo-kernels/dispatch/internal/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	impl     *registry.OpEntry
	initOnce sync.Once
)

func initKernels() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("dispatch: no kernel backend registered (missing scalar fallback?)")
	}
	impl = entry
}

// MulAdd computes dst[i] = a[i]*b[i] + c[i] at the widest supported tier.
// Slices must have equal length and dst must not alias an input.
func MulAdd(dst, a, b, c []float32) {
	initOnce.Do(initKernels)
	impl.MulAdd(dst, a, b, c)
}

// Sum returns the sum of all elements in x at the widest supported tier.
// Panics if x is empty.
func Sum(x []float32) float32 {
	initOnce.Do(initKernels)
	return impl.Sum(x)
}

// Max returns the largest element of x. Panics if x is empty.
func Max(x []float32) float32 {
	initOnce.Do(initKernels)
	return impl.Max(x)
}

// Min returns the smallest element of x. Panics if x is empty.
func Min(x []float32) float32 {
	initOnce.Do(initKernels)
	return impl.Min(x)
}

// Implementation returns the name of the selected backend ("scalar", "vec4"
// or "vec8"), resolving it first if needed.
func Implementation() string {
	initOnce.Do(initKernels)
	return impl.Name
}
