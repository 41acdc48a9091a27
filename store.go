package kinetgo

import (
	"fmt"
	"math"
	"time"

	"github.com/hupe1980/kinetgo/internal/mem"
	"github.com/hupe1980/kinetgo/resource"
)

// Store is a fixed-capacity structure-of-arrays kinetics store for 2D point
// entities.
//
// Positions, velocities and accelerations are interleaved (x0,y0,x1,y1,...)
// in contiguous arrays of length 2*capacity; masses hold one value per slot.
// The arrays are allocated once and never reallocated. Only indices below
// Count are active; higher slots hold stale or zero data and are never
// exposed.
//
// Thread safety: the store is not internally synchronized. Mutations require
// a single writer with no concurrent readers; read-only queries may run
// concurrently with each other.
type Store struct {
	capacity int
	count    int

	positions     []float64 // len 2*capacity, interleaved x,y
	velocities    []float64 // len 2*capacity
	accelerations []float64 // len 2*capacity
	masses        []float64 // len capacity

	logger     *Logger
	metrics    MetricsCollector
	controller *resource.Controller
	footprint  int64
}

// New creates a Store with the given fixed capacity. All arrays are
// zero-initialized except mass, which defaults to 1.0 per slot.
func New(capacity int, opts ...Option) (*Store, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 3 interleaved arrays of 2*capacity plus one mass array.
	footprint := int64(7*capacity) * 8
	if err := o.controller.TryAcquireMemory(footprint); err != nil {
		return nil, fmt.Errorf("acquire store memory: %w", err)
	}

	s := &Store{
		capacity:      capacity,
		positions:     mem.AllocAlignedFloat64(2 * capacity),
		velocities:    mem.AllocAlignedFloat64(2 * capacity),
		accelerations: mem.AllocAlignedFloat64(2 * capacity),
		masses:        mem.AllocAlignedFloat64(capacity),
		logger:        o.logger,
		metrics:       o.metrics,
		controller:    o.controller,
		footprint:     footprint,
	}

	for i := range s.masses {
		s.masses[i] = 1.0
	}

	s.logger.Info("kinetics store created", "capacity", capacity)

	return s, nil
}

// Close releases the store's memory reservation. The store must not be used
// afterwards.
func (s *Store) Close() error {
	if s.controller != nil {
		s.controller.ReleaseMemory(s.footprint)
		s.controller = nil
	}
	return nil
}

// AddEntity writes a new entity into the next free slot and returns its
// index. Indices are assigned monotonically from 0; they are not reused
// until Clear.
func (s *Store) AddEntity(x, y, vx, vy, ax, ay, mass float64) (int, error) {
	start := time.Now()

	idx, err := s.addEntity(x, y, vx, vy, ax, ay, mass)

	s.metrics.RecordAddEntity(time.Since(start), err)
	s.logger.LogAddEntity(idx, err)

	return idx, err
}

func (s *Store) addEntity(x, y, vx, vy, ax, ay, mass float64) (int, error) {
	if mass <= 0 || math.IsInf(mass, 1) || math.IsNaN(mass) {
		return 0, &ErrInvalidMass{Mass: mass}
	}
	if s.count == s.capacity {
		return 0, &ErrCapacityExceeded{Capacity: s.capacity}
	}

	i := s.count
	s.positions[2*i] = x
	s.positions[2*i+1] = y
	s.velocities[2*i] = vx
	s.velocities[2*i+1] = vy
	s.accelerations[2*i] = ax
	s.accelerations[2*i+1] = ay
	s.masses[i] = mass
	s.count++

	return i, nil
}

// Position returns the position of the entity at index.
func (s *Store) Position(index int) (x, y float64, err error) {
	if index < 0 || index >= s.count {
		return 0, 0, &ErrIndexOutOfRange{Index: index, Count: s.count}
	}
	return s.positions[2*index], s.positions[2*index+1], nil
}

// Velocity returns the velocity of the entity at index.
func (s *Store) Velocity(index int) (vx, vy float64, err error) {
	if index < 0 || index >= s.count {
		return 0, 0, &ErrIndexOutOfRange{Index: index, Count: s.count}
	}
	return s.velocities[2*index], s.velocities[2*index+1], nil
}

// Count returns the number of active entities.
func (s *Store) Count() int {
	return s.count
}

// Capacity returns the fixed maximum entity count.
func (s *Store) Capacity() int {
	return s.capacity
}

// Clear resets the active count to zero. Array contents and capacity are
// untouched; subsequent insertions overwrite old values starting at index 0.
func (s *Store) Clear() {
	s.count = 0
}

// PositionData returns a snapshot copy of the active position sub-range,
// interleaved, in index order.
func (s *Store) PositionData() []float64 {
	return snapshot(s.positions, 2*s.count)
}

// VelocityData returns a snapshot copy of the active velocity sub-range.
func (s *Store) VelocityData() []float64 {
	return snapshot(s.velocities, 2*s.count)
}

// AccelerationData returns a snapshot copy of the active acceleration sub-range.
func (s *Store) AccelerationData() []float64 {
	return snapshot(s.accelerations, 2*s.count)
}

// MassData returns a snapshot copy of the active masses, one per entity.
func (s *Store) MassData() []float64 {
	return snapshot(s.masses, s.count)
}

func snapshot(src []float64, n int) []float64 {
	out := make([]float64, n)
	copy(out, src[:n])
	return out
}
