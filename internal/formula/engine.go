package formula

import (
	"fmt"

	"shipline_builder/internal/models"
)

// EngineStats computes interpolated speed and range for a vessel of the
// given class/capacity fitted with eng at kw. Bilinear over the four corner
// samples: interpolate along the KW axis at both capacity corners first,
// then along the capacity axis between those two results. The corners are
// not symmetric, so the axis order is load-bearing.
//
// kw must lie within [eng.MinKW, eng.MaxKW]; callers clamp slider input
// before calling. An out-of-band kw is a programming defect and panics.
func EngineStats(native models.CapacityRange, eng models.EngineModel, capacity, kw float64) models.StatPoint {
	if kw < eng.MinKW || kw > eng.MaxKW {
		panic(fmt.Sprintf("formula: engine %s power %.0f kW outside [%.0f, %.0f]", eng.ID, kw, eng.MinKW, eng.MaxKW))
	}

	container := capacityRanges[models.ClassContainer]
	eqCapacity := ContainerEquivalentCapacity(native, capacity)
	capRatio := fraction(eqCapacity, container.MinCapacity, container.MaxCapacity)
	kwRatio := fraction(kw, eng.MinKW, eng.MaxKW)

	c := eng.Corners
	atMinCap := models.StatPoint{
		RangeNm: c.MinCapMinKW.RangeNm + kwRatio*(c.MinCapMaxKW.RangeNm-c.MinCapMinKW.RangeNm),
		SpeedKn: c.MinCapMinKW.SpeedKn + kwRatio*(c.MinCapMaxKW.SpeedKn-c.MinCapMinKW.SpeedKn),
	}
	atMaxCap := models.StatPoint{
		RangeNm: c.MaxCapMinKW.RangeNm + kwRatio*(c.MaxCapMaxKW.RangeNm-c.MaxCapMinKW.RangeNm),
		SpeedKn: c.MaxCapMinKW.SpeedKn + kwRatio*(c.MaxCapMaxKW.SpeedKn-c.MaxCapMinKW.SpeedKn),
	}

	return models.StatPoint{
		RangeNm: atMinCap.RangeNm + capRatio*(atMaxCap.RangeNm-atMinCap.RangeNm),
		SpeedKn: atMinCap.SpeedKn + capRatio*(atMaxCap.SpeedKn-atMinCap.SpeedKn),
	}
}

// ClampEngineKW snaps a requested power into the model's band. UI sliders
// use this before quoting.
func ClampEngineKW(eng models.EngineModel, kw float64) float64 {
	if kw < eng.MinKW {
		return eng.MinKW
	}
	if kw > eng.MaxKW {
		return eng.MaxKW
	}
	return kw
}
