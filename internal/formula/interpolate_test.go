package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipline_builder/internal/models"
)

func TestBaseStats_BoundaryExactness(t *testing.T) {
	for _, class := range []models.VesselClass{models.ClassContainer, models.ClassTanker} {
		t.Run(string(class), func(t *testing.T) {
			r, err := ClassRange(class)
			require.NoError(t, err)

			atMin := BaseStats(r, r.MinCapacity)
			assert.Equal(t, r.MinStats, atMin)

			atMax := BaseStats(r, r.MaxCapacity)
			assert.InDelta(t, r.MaxStats.RangeNm, atMax.RangeNm, 1e-9)
			assert.InDelta(t, r.MaxStats.SpeedKn, atMax.SpeedKn, 1e-9)
			assert.InDelta(t, r.MaxStats.FuelFactor, atMax.FuelFactor, 1e-9)
			assert.InDelta(t, r.MaxStats.CO2Factor, atMax.CO2Factor, 1e-9)
			assert.InDelta(t, r.MaxStats.BuildTimeSec, atMax.BuildTimeSec, 1e-9)
		})
	}
}

func TestBaseStats_Monotonic(t *testing.T) {
	r, err := ClassRange(models.ClassContainer)
	require.NoError(t, err)

	step := (r.MaxCapacity - r.MinCapacity) / 10
	prev := BaseStats(r, r.MinCapacity)
	for c := r.MinCapacity + step; c <= r.MaxCapacity; c += step {
		cur := BaseStats(r, c)
		// every container stat bound grows with capacity
		assert.Greater(t, cur.RangeNm, prev.RangeNm)
		assert.Greater(t, cur.SpeedKn, prev.SpeedKn)
		assert.Greater(t, cur.FuelFactor, prev.FuelFactor)
		assert.Greater(t, cur.CO2Factor, prev.CO2Factor)
		assert.Greater(t, cur.BuildTimeSec, prev.BuildTimeSec)
		prev = cur
	}
}

func TestBaseStats_ExtrapolatesOutsideRange(t *testing.T) {
	r, err := ClassRange(models.ClassContainer)
	require.NoError(t, err)

	// no clamping: above-max capacities keep the same slope
	above := BaseStats(r, r.MaxCapacity+1000)
	assert.Greater(t, above.RangeNm, r.MaxStats.RangeNm)

	below := BaseStats(r, r.MinCapacity-500)
	assert.Less(t, below.SpeedKn, r.MinStats.SpeedKn)
}

func TestLerp_DegenerateDomain(t *testing.T) {
	r := models.CapacityRange{
		MinCapacity: 5000,
		MaxCapacity: 5000,
		MinStats:    models.BaseStats{RangeNm: 9000, SpeedKn: 14},
		MaxStats:    models.BaseStats{RangeNm: 21000, SpeedKn: 25},
	}
	got := BaseStats(r, 5000)
	assert.Equal(t, 9000.0, got.RangeNm)
	assert.Equal(t, 14.0, got.SpeedKn)
}

func TestContainerEquivalentCapacity(t *testing.T) {
	container, err := ClassRange(models.ClassContainer)
	require.NoError(t, err)
	tanker, err := ClassRange(models.ClassTanker)
	require.NoError(t, err)

	tests := []struct {
		name     string
		native   models.CapacityRange
		capacity float64
		want     float64
	}{
		{"container passes through min", container, container.MinCapacity, container.MinCapacity},
		{"container passes through max", container, container.MaxCapacity, container.MaxCapacity},
		{"tanker min maps to container min", tanker, tanker.MinCapacity, container.MinCapacity},
		{"tanker max maps to container max", tanker, tanker.MaxCapacity, container.MaxCapacity},
		{"tanker midpoint maps to container midpoint", tanker, (tanker.MinCapacity + tanker.MaxCapacity) / 2, (container.MinCapacity + container.MaxCapacity) / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ContainerEquivalentCapacity(tt.native, tt.capacity), 1e-9)
		})
	}
}

func TestClassRange_UnknownClass(t *testing.T) {
	_, err := ClassRange("submarine")
	assert.Error(t, err)
}
