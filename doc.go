// Package kinetgo provides a fixed-capacity, structure-of-arrays kinetics
// store for 2D point entities.
//
// The store keeps per-entity position, velocity, acceleration and mass in
// flat, contiguous float64 arrays, integrates motion over discrete time
// steps, applies external forces, and answers proximity and collision
// queries over the active entity set.
//
// # Quick Start
//
//	store, _ := kinetgo.New(1024)
//	defer store.Close()
//
//	a, _ := store.AddEntity(0, 0, 1, 0, 0, 0, 1.0)
//	b, _ := store.AddEntity(5, 0, 0, 0, 0, 0, 1.0)
//
//	store.UpdatePositions(1.0)          // positions += velocities * dt
//	pairs := store.DetectCollisions(3)  // flattened [i0,j0, i1,j1, ...]
//	near := store.SpatialQuery(5, 0, 0.5)
//	_, _, _ = a, b, near
//
// # Layout
//
// Positions, velocities and accelerations are interleaved (x0,y0,x1,y1,...)
// in arrays of length 2*capacity; masses hold one float64 per slot. All four
// arrays are allocated once at construction, cache-line aligned, and never
// reallocated. Entity identity is the slot index, assigned monotonically by
// AddEntity; Clear resets the active count without touching array contents.
//
// # Batching
//
// The integration and vector operations run through unrolled scalar kernels
// (8 lanes for integration, 4 for the vectorops package). Batch width is a
// traversal detail only: every element's final value equals the plain scalar
// formula, bit for bit. Dot products combine lane accumulators at the end and
// may differ from a naive left-to-right sum by floating-point rounding.
//
// # Concurrency
//
// The store is not internally synchronized. Mutations (AddEntity,
// UpdatePositions, UpdateVelocities, ApplyForces, Clear) require a single
// writer and no concurrent readers; read-only queries may run concurrently
// with each other.
//
// # Errors
//
// All failure conditions are recoverable, typed errors checked before any
// mutation: ErrCapacityExceeded, ErrIndexOutOfRange, ErrLengthMismatch,
// ErrInvalidMass. Operations either fully apply or fully reject.
package kinetgo
