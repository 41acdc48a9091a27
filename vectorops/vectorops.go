package vectorops

import (
	"fmt"

	"github.com/hupe1980/kinetgo/internal/batch"
)

// ErrLengthMismatch indicates two input sequences of different lengths.
type ErrLengthMismatch struct {
	LenA int
	LenB int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: %d vs %d", e.LenA, e.LenB)
}

// Add returns the elementwise sum of a and b.
func Add(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, &ErrLengthMismatch{LenA: len(a), LenB: len(b)}
	}

	out := make([]float64, len(a))
	batch.Add(a, b, out)
	return out, nil
}

// Scale returns a with every element multiplied by scalar.
func Scale(a []float64, scalar float64) []float64 {
	out := make([]float64, len(a))
	batch.Scale(a, scalar, out)
	return out
}

// Dot returns the dot product of a and b.
//
// The kernel accumulates in lanes and combines them at the end, so the
// result may differ from a naive left-to-right sum by floating-point
// rounding only.
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, &ErrLengthMismatch{LenA: len(a), LenB: len(b)}
	}

	return batch.Dot(a, b), nil
}
