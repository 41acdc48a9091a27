// Package mem provides aligned memory allocation for the kinetics arrays.
//
// The store's hot loops stream over contiguous float64 slices; allocating
// them on 64-byte boundaries keeps every batch iteration within whole cache
// lines and leaves the layout ready for vectorized kernels.
package mem
