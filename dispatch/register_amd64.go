//go:build amd64

package dispatch

import (
	"github.com/cwbudde/algo-kernels/dispatch/internal/registry"
	"github.com/cwbudde/algo-kernels/kernel"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "vec4",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,

		MulAdd: kernel.MulAddVec4,
		Sum:    kernel.SumVec4,
		Max:    kernel.MaxVec4,
		Min:    kernel.MinVec4,
	})

	registry.Global.Register(registry.OpEntry{
		Name:      "vec8",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,

		MulAdd: kernel.MulAddVec8,
		Sum:    kernel.SumVec8,

		// Max/min have no 8-wide tier; the 4-wide kernels serve here.
		Max: kernel.MaxVec4,
		Min: kernel.MinVec4,
	})
}
