// Package vectorops provides free-standing batched elementwise operations
// over float64 slices, independent of the kinetics store.
//
// The operations run through the same unrolled kernels the store's
// integration path uses, which makes the package a convenient yardstick for
// benchmarking the batching strategy against the store-based path.
//
// Unlike the internal kernels, every function here validates input lengths
// up front and reports a mismatch as ErrLengthMismatch before reading any
// element.
package vectorops
