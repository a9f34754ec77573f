package testutil

import "testing"

func TestRequireNearScalesWithMagnitude(t *testing.T) {
	// Bound is eps*max(1,|want|): a large value may be off by more in
	// absolute terms than a small one.
	RequireNear(t, 1000.004, 1000, 1e-5)
	RequireNear(t, 0.3000000001, 0.3, 1e-5)
}

func TestRequireSliceNearlyEqualMatches(t *testing.T) {
	got := []float32{1.0, 2.0, 3.0}
	want := []float32{1.0, 2.0000001, 3.0}
	RequireSliceNearlyEqual(t, got, want, 1e-5)
}

func TestMaxAbsDiff(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{1, 2.5, 2}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 1.0 {
		t.Fatalf("MaxAbsDiff = %v, want 1.0", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	if _, err := MaxAbsDiff([]float32{1}, []float32{1, 2}); err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}
