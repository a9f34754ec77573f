package dispatch

import (
	"github.com/cwbudde/algo-kernels/dispatch/internal/registry"
	"github.com/cwbudde/algo-kernels/kernel"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// The scalar backend is registered unconditionally so Lookup always finds a
// fallback, including under ForceGeneric.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "scalar",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		MulAdd: kernel.MulAddScalar,
		Sum:    kernel.SumScalar,
		Max:    kernel.MaxScalar,
		Min:    kernel.MinScalar,
	})
}
