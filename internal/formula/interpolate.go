package formula

import "shipline_builder/internal/models"

// lerp maps x from the domain [x0,x1] onto [y0,y1] linearly. Values outside
// the domain extrapolate; a degenerate domain returns y0.
func lerp(x, x0, x1, y0, y1 float64) float64 {
	if x1 == x0 {
		return y0
	}
	return y0 + (x-x0)/(x1-x0)*(y1-y0)
}

// fraction is the position of x within [x0,x1], 0 at x0 and 1 at x1.
func fraction(x, x0, x1 float64) float64 {
	if x1 == x0 {
		return 0
	}
	return (x - x0) / (x1 - x0)
}

// BaseStats interpolates the baseline stat tuple for a capacity within a
// class's capacity range. No clamping: callers keep capacity inside
// [MinCapacity, MaxCapacity], out-of-range values extrapolate linearly.
func BaseStats(r models.CapacityRange, capacity float64) models.BaseStats {
	return models.BaseStats{
		RangeNm:      lerp(capacity, r.MinCapacity, r.MaxCapacity, r.MinStats.RangeNm, r.MaxStats.RangeNm),
		SpeedKn:      lerp(capacity, r.MinCapacity, r.MaxCapacity, r.MinStats.SpeedKn, r.MaxStats.SpeedKn),
		FuelFactor:   lerp(capacity, r.MinCapacity, r.MaxCapacity, r.MinStats.FuelFactor, r.MaxStats.FuelFactor),
		CO2Factor:    lerp(capacity, r.MinCapacity, r.MaxCapacity, r.MinStats.CO2Factor, r.MaxStats.CO2Factor),
		BuildTimeSec: lerp(capacity, r.MinCapacity, r.MaxCapacity, r.MinStats.BuildTimeSec, r.MaxStats.BuildTimeSec),
	}
}

// ContainerEquivalentCapacity remaps a capacity from its native class's
// domain into the container class's domain. Engine corner samples are
// authored against container capacities, so every class goes through this
// conversion before engine interpolation. For container vessels the result
// is the input capacity.
func ContainerEquivalentCapacity(native models.CapacityRange, capacity float64) float64 {
	container := capacityRanges[models.ClassContainer]
	frac := fraction(capacity, native.MinCapacity, native.MaxCapacity)
	return container.MinCapacity + frac*(container.MaxCapacity-container.MinCapacity)
}
