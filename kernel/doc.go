// Package kernel provides portable vectorized numeric kernels over float32
// buffers: elementwise fused multiply-add and horizontal reductions (sum,
// max, min), each at explicitly selectable width tiers.
//
// # Width tiers
//
// Every operation is implemented at one or more tiers describing how many
// elements the inner loop processes per step:
//
//   - Scalar: one element at a time (the parity reference for reductions)
//   - Vec4: blocks of 4 with a 4-lane accumulator
//   - Vec8: blocks of 8 with an 8-lane accumulator
//
// Elements left over after the last full block are always finished by a
// sequential remainder loop with the scalar formula, so every tier is total
// over all input lengths, including lengths below the tier width.
//
// Tier selection is static and explicit: callers pick a tier per call, either
// through the per-tier functions (SumVec8, MulAddVec4, ...) or through the
// Op/Tier switched entry points. The kernels contain no hardware detection;
// the dispatch package layers CPU-feature-driven selection on top.
//
// # Numeric contract
//
// MulAdd uses single-rounding fused semantics at every tier, so all tiers
// produce bit-identical output. Vectorized reductions fold their lanes with a
// fixed log2(width)-step horizontal network and therefore combine elements in
// a different order than sequential scalar accumulation: sums agree with the
// Scalar tier only within a small relative tolerance, never bit-exactly.
//
// All kernels are allocation-free, synchronous, and keep no state between
// calls; concurrent invocations on disjoint buffers are safe.
package kernel
