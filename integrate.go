package kinetgo

import (
	"time"

	"github.com/hupe1980/kinetgo/internal/batch"
)

// UpdatePositions advances every active entity by its velocity:
// position += velocity * dt, per component.
func (s *Store) UpdatePositions(dt float64) {
	start := time.Now()

	n := 2 * s.count
	batch.Axpy(s.positions[:n], s.velocities[:n], dt)

	d := time.Since(start)
	s.metrics.RecordStep("positions", s.count, d)
	s.logger.LogStep("positions", s.count, d)
}

// UpdateVelocities advances every active entity by its acceleration:
// velocity += acceleration * dt, per component.
func (s *Store) UpdateVelocities(dt float64) {
	start := time.Now()

	n := 2 * s.count
	batch.Axpy(s.velocities[:n], s.accelerations[:n], dt)

	d := time.Since(start)
	s.metrics.RecordStep("velocities", s.count, d)
	s.logger.LogStep("velocities", s.count, d)
}

// ApplyForces sets each active entity's acceleration from an interleaved
// force sequence: acceleration[2i] = forces[2i] / mass[i] (and y component).
//
// forces must hold at least 2*Count values; shorter input is rejected with
// ErrLengthMismatch before any element is read.
func (s *Store) ApplyForces(forces []float64) error {
	start := time.Now()

	n := 2 * s.count
	if len(forces) < n {
		return &ErrLengthMismatch{Expected: n, Actual: len(forces)}
	}

	batch.ForceMass(s.accelerations[:n], forces[:n], s.masses[:s.count])

	d := time.Since(start)
	s.metrics.RecordStep("forces", s.count, d)
	s.logger.LogStep("forces", s.count, d)

	return nil
}

// KineticEnergy returns the total kinetic energy of the active set,
// sum of 0.5 * mass * |velocity|^2.
func (s *Store) KineticEnergy() float64 {
	var total float64
	for i := 0; i < s.count; i++ {
		vx := s.velocities[2*i]
		vy := s.velocities[2*i+1]
		total += 0.5 * s.masses[i] * (vx*vx + vy*vy)
	}
	return total
}
