//go:build arm64

package dispatch

import (
	"github.com/cwbudde/algo-kernels/dispatch/internal/registry"
	"github.com/cwbudde/algo-kernels/kernel"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "vec4",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,

		MulAdd: kernel.MulAddVec4,
		Sum:    kernel.SumVec4,
		Max:    kernel.MaxVec4,
		Min:    kernel.MinVec4,
	})
}
