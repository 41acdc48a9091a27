package kinetgo

import (
	"math"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
)

// DetectCollisions reports every unordered pair of active entities whose
// centers are closer than 2*radius, treating radius as a uniform per-entity
// radius (two entities of that radius overlap). The comparison is strict:
// entities exactly 2*radius apart do not collide.
//
// Pairs are returned flattened as [i0,j0, i1,j1, ...] in row-major order:
// i ascending, j ascending within each i, always i < j. The scan is O(n²)
// in the active count; no spatial index is used.
func (s *Store) DetectCollisions(radius float64) []int {
	start := time.Now()

	var pairs []int
	if radius > 0 {
		threshold := (2 * radius) * (2 * radius)
		for i := 0; i < s.count; i++ {
			xi := s.positions[2*i]
			yi := s.positions[2*i+1]
			for j := i + 1; j < s.count; j++ {
				dx := s.positions[2*j] - xi
				dy := s.positions[2*j+1] - yi
				if dx*dx+dy*dy < threshold {
					pairs = append(pairs, i, j)
				}
			}
		}
	}

	d := time.Since(start)
	s.metrics.RecordCollisionScan(len(pairs)/2, d)
	s.logger.LogCollisionScan(len(pairs)/2, d)

	return pairs
}

// SpatialQuery returns the indices of all active entities within radius of
// (x, y), ascending. The comparison is inclusive: an entity at exactly
// radius is included. Linear scan, O(n).
func (s *Store) SpatialQuery(x, y, radius float64) []int {
	return s.spatialQuery(x, y, radius, nil)
}

// SpatialQueryFiltered is SpatialQuery restricted to the entities present in
// filter. A nil filter matches everything.
func (s *Store) SpatialQueryFiltered(x, y, radius float64, filter *roaring.Bitmap) []int {
	return s.spatialQuery(x, y, radius, filter)
}

func (s *Store) spatialQuery(x, y, radius float64, filter *roaring.Bitmap) []int {
	start := time.Now()

	var matches []int
	if radius >= 0 {
		radiusSq := radius * radius
		for i := 0; i < s.count; i++ {
			if filter != nil && !filter.Contains(uint32(i)) {
				continue
			}
			dx := s.positions[2*i] - x
			dy := s.positions[2*i+1] - y
			if dx*dx+dy*dy <= radiusSq {
				matches = append(matches, i)
			}
		}
	}

	d := time.Since(start)
	s.metrics.RecordSpatialQuery(len(matches), d)
	s.logger.LogSpatialQuery(len(matches), d)

	return matches
}

// NearestEntity returns the index of the active entity closest to (x, y)
// and its distance. Ties keep the lowest index. Returns ErrEmptyStore when
// no entity is active.
func (s *Store) NearestEntity(x, y float64) (int, float64, error) {
	if s.count == 0 {
		return 0, 0, ErrEmptyStore
	}

	best := 0
	bestSq := math.Inf(1)
	for i := 0; i < s.count; i++ {
		dx := s.positions[2*i] - x
		dy := s.positions[2*i+1] - y
		if dSq := dx*dx + dy*dy; dSq < bestSq {
			best = i
			bestSq = dSq
		}
	}

	return best, math.Sqrt(bestSq), nil
}
