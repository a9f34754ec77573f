package kernel

import (
	"math"
	"strconv"
)

// piDigits is the shared end-to-end fixture: sum 39, max 9, min 1.
var piDigits = []float32{3, 1, 4, 1, 5, 9, 2, 6, 5, 3}

// remainderSizes covers exact multiples of both vector widths plus one less
// and one more, up to 3x the widest tier.
var remainderSizes = []int{1, 2, 3, 4, 5, 7, 8, 9, 11, 12, 13, 15, 16, 17, 23, 24, 25}

// Benchmark sizes shared across all benchmark files.
var benchSizes = []int{16, 64, 256, 1024, 4096, 16384, 65536}

func sizeStr(n int) string {
	return "n=" + strconv.Itoa(n)
}

func closeEnough(got, want float32) bool {
	const epsilon = 1e-5
	if got == want {
		return true
	}
	diff := math.Abs(float64(got) - float64(want))
	return diff <= epsilon*math.Max(1, math.Abs(float64(want)))
}

func noise(seed int64, n int) []float32 {
	out := make([]float32, n)
	state := uint64(seed)*6364136223846793005 + 1442695040888963407
	for i := range out {
		state = state*6364136223846793005 + 1442695040888963407
		out[i] = float32(int64(state>>40)%2048-1024) / 32.0
	}
	return out
}

func mustPanic(f func()) (panicked bool) {
	defer func() {
		if recover() != nil {
			panicked = true
		}
	}()
	f()
	return false
}
