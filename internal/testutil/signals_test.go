package testutil

import "testing"

func TestDeterministicNoiseReproducible(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 256)
	b := DeterministicNoise(42, 1.0, 256)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: %v != %v", i, a[i], b[i])
		}
	}
	RequireFinite(t, a)
}

func TestRamp(t *testing.T) {
	r := Ramp(1, 0.5, 4)
	want := []float32{1, 1.5, 2, 2.5}
	for i := range want {
		if r[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, r[i], want[i])
		}
	}
}

func TestOnes(t *testing.T) {
	for _, v := range Ones(8) {
		if v != 1 {
			t.Fatalf("expected all ones, got %v", v)
		}
	}
}
