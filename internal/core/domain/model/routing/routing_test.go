package routing_test

import (
	"testing"
	"time"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/routing"
	"delivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validShipper(t *testing.T) routing.Shipper {
	t.Helper()
	location, err := kernel.NewGeoPoint(10.77, 106.70)
	require.NoError(t, err)
	return routing.Shipper{
		ID:             kernel.NewUUID(),
		Location:       location,
		ShiftStart:     time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		MaxSessionTime: 9 * time.Hour,
		Capacity:       10,
		WorkingZones:   []string{"D1", "D3"},
	}
}

func TestShipper_Validate(t *testing.T) {
	t.Run("should accept valid profile", func(t *testing.T) {
		require.NoError(t, validShipper(t).Validate())
	})

	t.Run("should reject zero shift start", func(t *testing.T) {
		s := validShipper(t)
		s.ShiftStart = time.Time{}

		err := s.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "shiftStart")
	})

	t.Run("should reject non-positive session time", func(t *testing.T) {
		s := validShipper(t)
		s.MaxSessionTime = 0

		require.Error(t, s.Validate())
	})

	t.Run("should reject non-positive capacity", func(t *testing.T) {
		s := validShipper(t)
		s.Capacity = 0

		require.Error(t, s.Validate())
	})

	t.Run("should reject unconstructed location", func(t *testing.T) {
		s := validShipper(t)
		s.Location = kernel.GeoPoint{}

		require.Error(t, s.Validate())
	})
}

func TestShipper_ShiftEnd(t *testing.T) {
	s := validShipper(t)

	assert.Equal(t, s.ShiftStart.Add(9*time.Hour), s.ShiftEnd())
}

func TestShipper_CanServeZone(t *testing.T) {
	s := validShipper(t)

	assert.True(t, s.CanServeZone("D1"))
	assert.True(t, s.CanServeZone("D3"))
	assert.False(t, s.CanServeZone("D7"))

	s.WorkingZones = nil
	assert.True(t, s.CanServeZone("D7"), "unconstrained shipper serves everything")
}

func TestShipper_ZoneRank(t *testing.T) {
	s := validShipper(t)

	assert.Equal(t, 0, s.ZoneRank("D1"))
	assert.Equal(t, 1, s.ZoneRank("D3"))
	assert.Equal(t, 2, s.ZoneRank("D7"))
}

func TestOrder_Validate(t *testing.T) {
	location, _ := kernel.NewGeoPoint(10.78, 106.71)
	valid := routing.Order{
		ParcelID:          kernel.NewUUID(),
		Location:          location,
		ServiceTime:       5 * time.Minute,
		Priority:          1,
		ZoneID:            "D1",
		DeliveryAddressID: kernel.NewUUID(),
	}

	t.Run("should accept valid order", func(t *testing.T) {
		require.NoError(t, valid.Validate())
	})

	t.Run("should reject negative service time", func(t *testing.T) {
		o := valid
		o.ServiceTime = -time.Minute

		require.Error(t, o.Validate())
	})

	t.Run("should reject negative priority", func(t *testing.T) {
		o := valid
		o.Priority = -1

		require.Error(t, o.Validate())
	})

	t.Run("should reject missing delivery address", func(t *testing.T) {
		o := valid
		o.DeliveryAddressID = kernel.UUID{}

		err := o.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "deliveryAddressId")
	})
}

func TestMatrix_Validate(t *testing.T) {
	square := func(n int) [][]float64 {
		rows := make([][]float64, n)
		for i := range rows {
			rows[i] = make([]float64, n)
		}
		return rows
	}

	t.Run("should accept matching square matrices", func(t *testing.T) {
		m := routing.Matrix{Durations: square(3), Distances: square(3)}

		require.NoError(t, m.Validate(3))
	})

	t.Run("should reject wrong row count", func(t *testing.T) {
		m := routing.Matrix{Durations: square(2), Distances: square(3)}

		err := m.Validate(3)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrSolverUnavailable)
	})

	t.Run("should reject ragged rows", func(t *testing.T) {
		durations := square(3)
		durations[1] = durations[1][:2]
		m := routing.Matrix{Durations: durations, Distances: square(3)}

		err := m.Validate(3)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrSolverUnavailable)
	})

	t.Run("should reject distance mismatch", func(t *testing.T) {
		m := routing.Matrix{Durations: square(3), Distances: square(2)}

		err := m.Validate(3)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrSolverUnavailable)
	})
}

func TestMatrix_Duration(t *testing.T) {
	m := routing.Matrix{
		Durations: [][]float64{{0, 90.5}, {120, 0}},
		Distances: [][]float64{{0, 1000}, {1500, 0}},
	}

	assert.Equal(t, 90500*time.Millisecond, m.Duration(0, 1))
	assert.Equal(t, 2*time.Minute, m.Duration(1, 0))
}
