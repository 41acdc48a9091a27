package mem

import (
	"unsafe"
)

// Alignment is the byte alignment used for all array allocations (one cache
// line, also sufficient for AVX-512-width loads).
const Alignment = 64

// AllocAligned allocates a byte slice of the given size whose first element
// sits on an Alignment-byte boundary.
//
// Note: slightly more memory than requested is allocated to make room for the
// aligned offset. The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size == 0 {
		return nil
	}

	buf := make([]byte, size+Alignment)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}

// AllocAlignedFloat64 allocates a float64 slice of the given length with
// Alignment-byte alignment.
func AllocAlignedFloat64(size int) []float64 {
	if size == 0 {
		return nil
	}

	byteSlice := AllocAligned(size * 8)

	// Safe conversion: AllocAligned guarantees 64-byte alignment, which
	// covers the 8-byte alignment float64 requires.
	ptr := unsafe.Pointer(&byteSlice[0])       //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*float64)(ptr), size) //nolint:gosec // unsafe is required for memory alignment
}
