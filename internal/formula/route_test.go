package formula

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"shipline_builder/internal/models"
)

func TestEffectiveCapacity(t *testing.T) {
	assert.Equal(t, 2000.0, EffectiveCapacity(models.ClassContainer, 2000))
	assert.Equal(t, 2000.0, EffectiveCapacity(models.ClassTanker, 148_000))
	assert.Panics(t, func() { EffectiveCapacity("submarine", 100) })
}

func TestCreationFee(t *testing.T) {
	tests := []struct {
		name     string
		class    models.VesselClass
		capacity float64
		distance float64
		want     float64
	}{
		{"capacity only", models.ClassContainer, 2000, 0, 80_000},
		{"capacity plus distance", models.ClassContainer, 2000, 500, 85_000},
		{"tanker converts to container units", models.ClassTanker, 148_000, 0, 80_000},
		{"zero everything", models.ClassContainer, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CreationFee(tt.class, tt.capacity, tt.distance))
		})
	}
}

func TestTravelTime(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		speed    float64
		want     float64
	}{
		{"zero distance", 0, 10, 600},
		{"short haul", 100, 10, 1200},
		{"regime boundary", 200, 10, 1800},
		{"long haul", 400, 10, 3300},
		{"speed irrelevant below boundary", 150, 0, 1500},
		{"zero speed beyond boundary", 400, 0, 0},
		{"negative speed beyond boundary", 400, -5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TravelTime(tt.distance, tt.speed))
		})
	}
}

func TestTravelTime_BoundaryContinuity(t *testing.T) {
	// no double-counting at 200nm: the second regime starts from the same
	// base the first regime ends on
	at200 := TravelTime(200, 15)
	justPast := TravelTime(200.0001, 15)
	assert.InDelta(t, at200, justPast, 1.0)
}

func TestHarborFee(t *testing.T) {
	assert.Equal(t, models.HarborFeeRange{}, HarborFee(0))
	assert.Equal(t, models.HarborFeeRange{}, HarborFee(-100))

	fee := HarborFee(1000)
	assert.Equal(t, 17.0, fee.Min)
	assert.InDelta(t, math.Pow(27000, 0.2), fee.Max/fee.Min, 1e-9)
}

func TestFuelConsumption(t *testing.T) {
	// 2000/2000 * 1000 * sqrt(16)/20 * 1.0 == 200
	got := FuelConsumption(models.ClassContainer, 2000, 1000, 16, 1.0)
	assert.InDelta(t, 200, got, 1e-9)

	assert.Equal(t, 0.0, FuelConsumption(models.ClassContainer, 2000, 1000, 0, 1.0))
	assert.Equal(t, 0.0, FuelConsumption(models.ClassContainer, 2000, 0, 16, 1.0))

	// tanker burn matches its container-equivalent burn
	tanker := FuelConsumption(models.ClassTanker, 148_000, 1000, 16, 1.0)
	assert.InDelta(t, got, tanker, 1e-9)
}

func TestGuardsCost(t *testing.T) {
	assert.Equal(t, 3500.0, GuardsCost(5))
	assert.Equal(t, 0.0, GuardsCost(0))
}

func TestQuoteRoute_BundlesAllFigures(t *testing.T) {
	p := models.RouteParameters{
		DistanceNm: 1000,
		SpeedKn:    16,
		Capacity:   2000,
		Class:      models.ClassContainer,
		FuelFactor: 1.2,
		Guards:     3,
	}
	q := QuoteRoute(p)
	assert.Equal(t, CreationFee(p.Class, p.Capacity, p.DistanceNm), q.CreationFee)
	assert.Equal(t, TravelTime(p.DistanceNm, p.SpeedKn), q.TravelTimeSec)
	assert.Equal(t, FuelConsumption(p.Class, p.Capacity, p.DistanceNm, p.SpeedKn, p.FuelFactor), q.FuelTonnes)
	assert.Equal(t, HarborFee(p.DistanceNm), q.HarborFee)
	assert.Equal(t, GuardsCost(p.Guards), q.GuardsCost)
}
