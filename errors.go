package kinetgo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCapacity is returned by New when capacity is not positive.
	ErrInvalidCapacity = errors.New("capacity must be positive")

	// ErrEmptyStore is returned by queries that need at least one active entity.
	ErrEmptyStore = errors.New("store has no active entities")
)

// ErrCapacityExceeded indicates an insertion into a full store.
// The store is left unmodified and remains usable.
type ErrCapacityExceeded struct {
	Capacity int
}

func (e *ErrCapacityExceeded) Error() string {
	return fmt.Sprintf("capacity exceeded: store is full at %d entities", e.Capacity)
}

// ErrIndexOutOfRange indicates an indexed access outside the active range.
type ErrIndexOutOfRange struct {
	Index int
	Count int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d with %d active entities", e.Index, e.Count)
}

// ErrLengthMismatch indicates an input sequence shorter than required.
// It is reported before any element is read.
type ErrLengthMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidMass indicates a non-positive or non-finite mass at insertion.
// Force application divides by mass, so such values are rejected up front.
type ErrInvalidMass struct {
	Mass float64
}

func (e *ErrInvalidMass) Error() string {
	return fmt.Sprintf("invalid mass: %v", e.Mass)
}
