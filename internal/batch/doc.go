// Package batch provides batched elementwise kernels over float64 slices.
//
// # Batching Strategy
//
// Every kernel is a plain scalar loop unrolled by a fixed width (8 lanes for
// the integration kernels, 4 for the generic vector ops) with a scalar
// remainder loop. Unrolling minimizes loop overhead and keeps the bodies
// auto-vectorizable by the compiler; it never changes the per-element result.
// Dot is the one reduction: its lane accumulators are combined at the end, so
// its rounding may differ from a naive left-to-right sum.
//
// # Dispatch
//
// Kernels are reached through package-level function pointers, set once at
// package init. The generic implementations are the only ones today; the
// indirection keeps the door open for build-tagged alternatives without
// touching call sites.
//
// # Safety
//
// Kernels do not bounds-check. Callers must validate slice lengths before
// calling in.
package batch
