package kinetgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_UpdatePositions(t *testing.T) {
	// Counts straddle the 8-wide batch boundary; every result must be
	// bit-identical to the scalar formula.
	for _, entities := range []int{1, 3, 4, 5, 8, 9, 33} {
		s, err := New(64)
		require.NoError(t, err)

		for i := 0; i < entities; i++ {
			_, err := s.AddEntity(float64(i), float64(2*i), 0.5*float64(i), -0.25*float64(i), 0, 0, 1.0)
			require.NoError(t, err)
		}

		before := s.PositionData()
		vel := s.VelocityData()
		const dt = 0.125

		s.UpdatePositions(dt)

		after := s.PositionData()
		for k := range after {
			require.Equal(t, before[k]+vel[k]*dt, after[k], "entities=%d k=%d", entities, k)
		}

		// Velocities are untouched.
		assert.Equal(t, vel, s.VelocityData())
		require.NoError(t, s.Close())
	}
}

func TestStore_UpdateVelocities(t *testing.T) {
	s, err := New(8)
	require.NoError(t, err)
	defer s.Close()

	for i := 0; i < 5; i++ {
		_, err := s.AddEntity(0, 0, float64(i), float64(-i), 0.5, -1.5, 1.0)
		require.NoError(t, err)
	}

	before := s.VelocityData()
	acc := s.AccelerationData()
	const dt = 2.0

	s.UpdateVelocities(dt)

	after := s.VelocityData()
	for k := range after {
		require.Equal(t, before[k]+acc[k]*dt, after[k], "k=%d", k)
	}
}

func TestStore_ApplyForces(t *testing.T) {
	t.Run("SetsAccelerations", func(t *testing.T) {
		s, err := New(8)
		require.NoError(t, err)
		defer s.Close()

		masses := []float64{1, 2, 4, 0.5, 3}
		for _, m := range masses {
			_, err := s.AddEntity(0, 0, 0, 0, 9, 9, m)
			require.NoError(t, err)
		}

		forces := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
		require.NoError(t, s.ApplyForces(forces))

		acc := s.AccelerationData()
		for i, m := range masses {
			assert.Equal(t, forces[2*i]/m, acc[2*i], "entity %d x", i)
			assert.Equal(t, forces[2*i+1]/m, acc[2*i+1], "entity %d y", i)
		}
	})

	t.Run("ThenUpdateVelocities", func(t *testing.T) {
		s, err := New(4)
		require.NoError(t, err)
		defer s.Close()

		_, err = s.AddEntity(0, 0, 1, -1, 0, 0, 2.0)
		require.NoError(t, err)

		require.NoError(t, s.ApplyForces([]float64{4, -6}))

		const dt = 0.5
		s.UpdateVelocities(dt)

		vx, vy, err := s.Velocity(0)
		require.NoError(t, err)
		assert.Equal(t, 1+(4/2.0)*dt, vx)
		assert.Equal(t, -1+(-6/2.0)*dt, vy)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		s, err := New(4)
		require.NoError(t, err)
		defer s.Close()

		_, err = s.AddEntity(0, 0, 0, 0, 1, 2, 1.0)
		require.NoError(t, err)
		_, err = s.AddEntity(0, 0, 0, 0, 3, 4, 1.0)
		require.NoError(t, err)

		err = s.ApplyForces([]float64{1, 2, 3}) // needs 4
		var lm *ErrLengthMismatch
		require.ErrorAs(t, err, &lm)
		assert.Equal(t, 4, lm.Expected)
		assert.Equal(t, 3, lm.Actual)

		// Rejected before any element was read: accelerations unchanged.
		assert.Equal(t, []float64{1, 2, 3, 4}, s.AccelerationData())
	})

	t.Run("LongerInputAllowed", func(t *testing.T) {
		s, err := New(4)
		require.NoError(t, err)
		defer s.Close()

		_, err = s.AddEntity(0, 0, 0, 0, 0, 0, 1.0)
		require.NoError(t, err)

		// Extra trailing values are ignored.
		require.NoError(t, s.ApplyForces([]float64{2, 4, 99, 99}))
		assert.Equal(t, []float64{2, 4}, s.AccelerationData())
	})
}

func TestStore_KineticEnergy(t *testing.T) {
	s, err := New(4)
	require.NoError(t, err)
	defer s.Close()

	assert.Zero(t, s.KineticEnergy())

	_, err = s.AddEntity(0, 0, 3, 4, 0, 0, 2.0) // 0.5*2*25 = 25
	require.NoError(t, err)
	_, err = s.AddEntity(0, 0, 1, 0, 0, 0, 4.0) // 0.5*4*1 = 2
	require.NoError(t, err)

	assert.InDelta(t, 27.0, s.KineticEnergy(), 1e-12)
}
