package formula

import (
	"fmt"
	"math"

	"shipline_builder/internal/models"
)

// Fee and fuel formulas were authored in container-equivalent units; tanker
// capacities convert through this factor before use.
const TankerUnitsPerContainerUnit = 74

const guardRate = 700

// harborFeeSpread is the max/min ratio of the per-unit harbor fee band.
var harborFeeSpread = math.Pow(27000, 0.2)

// EffectiveCapacity normalizes a capacity into container-equivalent units
// for the fee/fuel formulas. Panics on an unknown class: route formulas are
// only reachable through resolved vessels, so this is a programming defect.
func EffectiveCapacity(class models.VesselClass, capacity float64) float64 {
	switch class {
	case models.ClassContainer:
		return capacity
	case models.ClassTanker:
		return capacity / TankerUnitsPerContainerUnit
	default:
		panic(fmt.Sprintf("formula: unknown vessel class %q", class))
	}
}

// CreationFee is the one-time charge for opening a route.
func CreationFee(class models.VesselClass, capacity, distanceNm float64) float64 {
	return math.Round(40*EffectiveCapacity(class, capacity) + 10*distanceNm)
}

// TravelTime returns voyage seconds. Two regimes: the first 200nm grow the
// base time linearly, beyond that a speed-scaled term takes over. The
// min(200, d) term keeps the boundary from double-counting. Non-positive
// speed beyond the boundary returns 0 rather than dividing by zero.
func TravelTime(distanceNm, speedKn float64) float64 {
	base := 600 + 6*math.Min(200, distanceNm)
	if distanceNm <= 200 {
		return base
	}
	if speedKn <= 0 {
		return 0
	}
	return math.Floor(base + (distanceNm-200)/speedKn*75)
}

// HarborFee returns the per-unit harbor fee band for a route distance.
// Distance ≤ 0 returns a zero band.
func HarborFee(distanceNm float64) models.HarborFeeRange {
	if distanceNm <= 0 {
		return models.HarborFeeRange{}
	}
	base := 17000 / distanceNm
	return models.HarborFeeRange{Min: base, Max: base * harborFeeSpread}
}

// FuelConsumption is the voyage fuel burn in tonnes.
func FuelConsumption(class models.VesselClass, capacity, distanceNm, speedKn, fuelFactor float64) float64 {
	if speedKn <= 0 || distanceNm <= 0 {
		return 0
	}
	return EffectiveCapacity(class, capacity) / 2000 * distanceNm * math.Sqrt(speedKn) / 20 * fuelFactor
}

// GuardsCost is the flat per-guard hiring cost, no volume tiers.
func GuardsCost(guards int) float64 {
	return float64(guards) * guardRate
}

// QuoteRoute evaluates all five route formulas for one parameter set. The
// formulas are independent; this is a convenience bundle for the API.
func QuoteRoute(p models.RouteParameters) models.RouteQuote {
	return models.RouteQuote{
		CreationFee:   CreationFee(p.Class, p.Capacity, p.DistanceNm),
		TravelTimeSec: TravelTime(p.DistanceNm, p.SpeedKn),
		FuelTonnes:    FuelConsumption(p.Class, p.Capacity, p.DistanceNm, p.SpeedKn, p.FuelFactor),
		HarborFee:     HarborFee(p.DistanceNm),
		GuardsCost:    GuardsCost(p.Guards),
	}
}
