package batch

// Kernel function pointers - set once at init, zero runtime overhead.
// Generic implementations are the default; build-tagged variants may
// override them in the future.
var (
	kernelAdd       = addGeneric
	kernelScale     = scaleGeneric
	kernelDot       = dotGeneric
	kernelAxpy      = axpyGeneric
	kernelForceMass = forceMassGeneric
)

// Add computes dst[k] = a[k] + b[k].
//
// SAFETY: Assumes len(a) == len(b) == len(dst). Caller MUST ensure lengths match.
func Add(a, b, dst []float64) {
	kernelAdd(a, b, dst)
}

// Scale computes dst[k] = a[k] * scalar.
//
// SAFETY: Assumes len(dst) == len(a). Caller MUST ensure lengths match.
func Scale(a []float64, scalar float64, dst []float64) {
	kernelScale(a, scalar, dst)
}

// Dot calculates the dot product of two vectors.
//
// SAFETY: Assumes len(a) == len(b). Caller MUST ensure lengths match.
func Dot(a, b []float64) float64 {
	return kernelDot(a, b)
}

// Axpy computes dst[k] += x[k] * scalar in place.
//
// SAFETY: Assumes len(x) >= len(dst). Caller MUST ensure lengths match.
func Axpy(dst, x []float64, scalar float64) {
	kernelAxpy(dst, x, scalar)
}

// ForceMass computes per-entity accelerations from interleaved forces:
// acc[2i] = forces[2i] / masses[i] and acc[2i+1] = forces[2i+1] / masses[i].
//
// SAFETY: Assumes len(acc) == len(forces) == 2*len(masses) and every mass
// is non-zero. Caller MUST validate before calling.
func ForceMass(acc, forces, masses []float64) {
	kernelForceMass(acc, forces, masses)
}

func addGeneric(a, b, dst []float64) {
	n := len(dst)
	i := 0

	// Process 4 elements at a time for better pipelining
	for ; i+4 <= n; i += 4 {
		dst[i] = a[i] + b[i]
		dst[i+1] = a[i+1] + b[i+1]
		dst[i+2] = a[i+2] + b[i+2]
		dst[i+3] = a[i+3] + b[i+3]
	}

	// Handle remainder
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

func scaleGeneric(a []float64, scalar float64, dst []float64) {
	n := len(dst)
	i := 0

	for ; i+4 <= n; i += 4 {
		dst[i] = a[i] * scalar
		dst[i+1] = a[i+1] * scalar
		dst[i+2] = a[i+2] * scalar
		dst[i+3] = a[i+3] * scalar
	}

	for ; i < n; i++ {
		dst[i] = a[i] * scalar
	}
}

func dotGeneric(a, b []float64) float64 {
	n := len(a)
	i := 0

	// Four independent accumulators break the serial dependency chain.
	// Summation order differs from a naive loop; rounding may too.
	var s0, s1, s2, s3 float64
	for ; i+4 <= n; i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}

	ret := s0 + s1 + s2 + s3
	for ; i < n; i++ {
		ret += a[i] * b[i]
	}

	return ret
}

func axpyGeneric(dst, x []float64, scalar float64) {
	n := len(dst)
	i := 0

	// 8 lanes = 4 entities per iteration on interleaved (x,y) data.
	// Each lane is an independent elementwise op; the width is invisible
	// in the result.
	for ; i+8 <= n; i += 8 {
		dst[i] += x[i] * scalar
		dst[i+1] += x[i+1] * scalar
		dst[i+2] += x[i+2] * scalar
		dst[i+3] += x[i+3] * scalar
		dst[i+4] += x[i+4] * scalar
		dst[i+5] += x[i+5] * scalar
		dst[i+6] += x[i+6] * scalar
		dst[i+7] += x[i+7] * scalar
	}

	for ; i < n; i++ {
		dst[i] += x[i] * scalar
	}
}

func forceMassGeneric(acc, forces, masses []float64) {
	n := len(masses)
	i := 0

	// 4 entities (8 interleaved floats) per iteration. True division, not
	// reciprocal multiply: acc must equal forces/mass to the last bit.
	for ; i+4 <= n; i += 4 {
		m0, m1, m2, m3 := masses[i], masses[i+1], masses[i+2], masses[i+3]

		acc[2*i] = forces[2*i] / m0
		acc[2*i+1] = forces[2*i+1] / m0
		acc[2*i+2] = forces[2*i+2] / m1
		acc[2*i+3] = forces[2*i+3] / m1
		acc[2*i+4] = forces[2*i+4] / m2
		acc[2*i+5] = forces[2*i+5] / m2
		acc[2*i+6] = forces[2*i+6] / m3
		acc[2*i+7] = forces[2*i+7] / m3
	}

	for ; i < n; i++ {
		acc[2*i] = forces[2*i] / masses[i]
		acc[2*i+1] = forces[2*i+1] / masses[i]
	}
}
