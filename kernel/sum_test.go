package kernel

import (
	"math"
	"testing"
)

// sumRef64 accumulates in float64 as an independent high-precision reference.
func sumRef64(x []float32) float64 {
	total := 0.0
	for i := range x {
		total += float64(x[i])
	}
	return total
}

func TestSumExample(t *testing.T) {
	for _, tier := range OpSum.Tiers() {
		t.Run(tier.String(), func(t *testing.T) {
			if got := Sum(tier, piDigits); got != 39 {
				t.Fatalf("Sum() = %v, want 39", got)
			}
		})
	}
}

func TestSumBasic(t *testing.T) {
	cases := []struct {
		name string
		x    []float32
		want float32
	}{
		{name: "single positive", x: []float32{3.5}, want: 3.5},
		{name: "single negative", x: []float32{-7.25}, want: -7.25},
		{name: "mixed", x: []float32{-1, 2, -3, 0.5}, want: -1.5},
		{name: "all zeros", x: []float32{0, 0, 0, 0}, want: 0},
		{name: "simple sum", x: []float32{1, 2, 3, 4, 5}, want: 15},
		{name: "exact block of 8", x: []float32{1, 2, 3, 4, 5, 6, 7, 8}, want: 36},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, tier := range OpSum.Tiers() {
				got := Sum(tier, tc.x)
				if !closeEnough(got, tc.want) {
					t.Fatalf("%v: Sum() = %v, want %v", tier, got, tc.want)
				}
			}
		})
	}
}

func TestSumInf(t *testing.T) {
	posInf := float32(math.Inf(1))
	negInf := float32(math.Inf(-1))

	for _, tier := range OpSum.Tiers() {
		if got := Sum(tier, []float32{1, posInf, 2}); !math.IsInf(float64(got), 1) {
			t.Fatalf("%v: Sum() = %v, want +Inf", tier, got)
		}
		if got := Sum(tier, []float32{1, negInf, 2}); !math.IsInf(float64(got), -1) {
			t.Fatalf("%v: Sum() = %v, want -Inf", tier, got)
		}
	}
}

func TestSumTierParity(t *testing.T) {
	sizes := []int{1, 2, 3, 4, 5, 7, 8, 9, 15, 16, 17, 31, 32, 33, 63, 64, 65, 100, 1000, 1023, 1024, 1025}
	for _, n := range sizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			x := noise(int64(n), n)
			want := SumScalar(x)

			for _, tier := range []Tier{TierVec4, TierVec8} {
				got := Sum(tier, x)
				if !closeEnough(got, want) {
					t.Fatalf("%v: Sum() = %v, scalar reference %v", tier, got, want)
				}
			}

			// Scalar itself must track the float64 reference.
			if ref := sumRef64(x); math.Abs(float64(want)-ref) > 1e-2*math.Max(1, math.Abs(ref)) {
				t.Fatalf("scalar sum %v drifted from float64 reference %v", want, ref)
			}
		})
	}
}

func TestSumDegenerateLengths(t *testing.T) {
	// Lengths below the tier width run entirely through the remainder loop.
	for n := 1; n < 8; n++ {
		x := noise(77, n)
		want := SumScalar(x)
		for _, tier := range []Tier{TierVec4, TierVec8} {
			if got := Sum(tier, x); !closeEnough(got, want) {
				t.Fatalf("%v n=%d: Sum() = %v, want %v", tier, n, got, want)
			}
		}
	}
}

func TestSumEmptyPanics(t *testing.T) {
	for _, tier := range OpSum.Tiers() {
		if !mustPanic(func() { Sum(tier, nil) }) {
			t.Fatalf("%v: expected panic on empty buffer", tier)
		}
	}
}

func TestSumUnknownTierPanics(t *testing.T) {
	if !mustPanic(func() { Sum(Tier(99), []float32{1}) }) {
		t.Fatal("expected panic for unknown tier")
	}
}
