// Command kernbench verifies every kernel operation at every supported width
// tier against the scalar reference, then reports per-tier throughput.
//
// Usage:
//
//	kernbench [flags]
//
// Examples:
//
//	kernbench
//	kernbench -sizes 1024,65536 -iters 500
//	kernbench -verify-only
//
// The process exits non-zero if any tier disagrees with the scalar reference
// beyond tolerance.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-kernels/dispatch"
	"github.com/cwbudde/algo-kernels/kernel"
	"github.com/cwbudde/algo-vecmath"
)

var (
	flagSizes      = flag.String("sizes", "1024,16384,262144", "comma-separated buffer sizes")
	flagIters      = flag.Int("iters", 200, "timing iterations per size")
	flagEps        = flag.Float64("eps", 1e-5, "relative tolerance for reduction parity")
	flagVerifyOnly = flag.Bool("verify-only", false, "run correctness checks, skip timing")
)

func main() {
	flag.Parse()

	sizes, err := parseSizes(*flagSizes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kernbench: %v\n", err)
		os.Exit(2)
	}

	fmt.Printf("dispatch backend: %s\n\n", dispatch.Implementation())

	failures := 0
	for _, n := range sizes {
		failures += verify(n, *flagEps)
	}
	if failures > 0 {
		fmt.Fprintf(os.Stderr, "kernbench: %d verification failure(s)\n", failures)
		os.Exit(1)
	}
	fmt.Printf("verification passed for sizes %v\n\n", sizes)

	if *flagVerifyOnly {
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "op\ttier\tn\tns/op\tGB/s")
	for _, n := range sizes {
		reportTimings(w, n, *flagIters)
	}
	w.Flush()
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid size %q", part)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes given")
	}
	return sizes, nil
}

// randomBuffer returns values in [-4, 4) quantized to multiples of 1/8.
// Partial sums of such values stay exactly representable in float32 for the
// sizes used here, keeping parity checks free of rounding noise.
func randomBuffer(rng *rand.Rand, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(math.Round((rng.Float64()*8-4)*8) / 8)
	}
	return out
}

// verify checks every op x tier against the scalar tier, and the elementwise
// kernel additionally against a float64 reference, returning the number of
// mismatches.
func verify(n int, eps float64) int {
	rng := rand.New(rand.NewSource(int64(n)))
	a := randomBuffer(rng, n)
	b := randomBuffer(rng, n)
	c := randomBuffer(rng, n)

	failures := 0
	fail := func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, "FAIL n=%d: %s\n", n, fmt.Sprintf(format, args...))
		failures++
	}

	// Elementwise: all tiers bit-identical, and close to the float64 reference.
	ref64 := mulAddRef64(a, b, c)
	scalarOut := make([]float32, n)
	kernel.MulAddScalar(scalarOut, a, b, c)
	for i := range scalarOut {
		if math.Abs(float64(scalarOut[i])-ref64[i]) > 1e-5*math.Max(1, math.Abs(ref64[i])) {
			fail("muladd/scalar index %d: got %v, float64 reference %v", i, scalarOut[i], ref64[i])
			break
		}
	}
	for _, tier := range []kernel.Tier{kernel.TierVec4, kernel.TierVec8} {
		out := make([]float32, n)
		kernel.MulAdd(tier, out, a, b, c)
		for i := range out {
			if out[i] != scalarOut[i] {
				fail("muladd/%v index %d: got %v, scalar %v", tier, i, out[i], scalarOut[i])
				break
			}
		}
	}

	// Reductions: tolerance parity for sum, exact for max/min.
	wantSum := kernel.SumScalar(a)
	for _, tier := range []kernel.Tier{kernel.TierVec4, kernel.TierVec8} {
		got := kernel.Sum(tier, a)
		if math.Abs(float64(got)-float64(wantSum)) > eps*math.Max(1, math.Abs(float64(wantSum))) {
			fail("sum/%v: got %v, scalar %v", tier, got, wantSum)
		}
	}
	if got := kernel.MaxVec4(a); got != kernel.MaxScalar(a) {
		fail("max/vec4: got %v, scalar %v", got, kernel.MaxScalar(a))
	}
	if got := kernel.MinVec4(a); got != kernel.MinScalar(a) {
		fail("min/vec4: got %v, scalar %v", got, kernel.MinScalar(a))
	}

	return failures
}

// mulAddRef64 computes a*b+c in float64, using the vecmath block kernel for
// the product, as an independent higher-precision reference.
func mulAddRef64(a, b, c []float32) []float64 {
	n := len(a)
	a64 := make([]float64, n)
	b64 := make([]float64, n)
	ref := make([]float64, n)
	for i := 0; i < n; i++ {
		a64[i] = float64(a[i])
		b64[i] = float64(b[i])
	}
	vecmath.MulBlock(ref, a64, b64)
	for i := 0; i < n; i++ {
		ref[i] += float64(c[i])
	}
	return ref
}

func reportTimings(w *tabwriter.Writer, n, iters int) {
	rng := rand.New(rand.NewSource(int64(n) + 1))
	a := randomBuffer(rng, n)
	b := randomBuffer(rng, n)
	c := randomBuffer(rng, n)
	dst := make([]float32, n)

	type run struct {
		op   kernel.Op
		tier kernel.Tier
		fn   func()
	}

	var runs []run
	for _, tier := range kernel.OpMulAdd.Tiers() {
		tier := tier
		runs = append(runs, run{kernel.OpMulAdd, tier, func() { kernel.MulAdd(tier, dst, a, b, c) }})
	}
	for _, tier := range kernel.OpSum.Tiers() {
		tier := tier
		runs = append(runs, run{kernel.OpSum, tier, func() { _ = kernel.Sum(tier, a) }})
	}
	for _, tier := range kernel.OpMax.Tiers() {
		tier := tier
		runs = append(runs, run{kernel.OpMax, tier, func() { _ = kernel.Max(tier, a) }})
	}
	for _, tier := range kernel.OpMin.Tiers() {
		tier := tier
		runs = append(runs, run{kernel.OpMin, tier, func() { _ = kernel.Min(tier, a) }})
	}

	for _, r := range runs {
		start := time.Now()
		for i := 0; i < iters; i++ {
			r.fn()
		}
		elapsed := time.Since(start)

		nsPerOp := float64(elapsed.Nanoseconds()) / float64(iters)
		gbPerSec := float64(n*4) / nsPerOp
		fmt.Fprintf(w, "%s\t%s\t%d\t%.0f\t%.2f\n", r.op, r.tier, n, nsPerOp, gbPerSec)
	}
}
