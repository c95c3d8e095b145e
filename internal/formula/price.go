package formula

import "shipline_builder/internal/models"

// BasePrice interpolates the hull price between the class's price bounds,
// same scheme as BaseStats.
func BasePrice(r models.CapacityRange, capacity float64) float64 {
	return lerp(capacity, r.MinCapacity, r.MaxCapacity, r.MinPrice, r.MaxPrice)
}

// EnginePrice is the engine's base price plus the surcharge for power above
// the model's minimum.
func EnginePrice(eng models.EngineModel, kw float64) float64 {
	return eng.BasePrice + (kw-eng.MinKW)*eng.PricePerExtraKW
}

// PerkFactor sums the price factors of the active antifouling, bulbous bow
// and propeller choices. Enhanced thrusters are priced per capacity unit
// instead and contribute nothing here.
func PerkFactor(sel models.PerkSelection) (float64, error) {
	factor := 0.0
	if sel.AntifoulingID != "" {
		af, err := AntifoulingByID(sel.AntifoulingID)
		if err != nil {
			return 0, err
		}
		factor += af.PriceFactor
	}
	if sel.BulbousBow {
		factor += bulbousBow.PriceFactor
	}
	prop, err := PropellerByID(sel.PropellerID)
	if err != nil {
		return 0, err
	}
	factor += prop.PriceFactor
	return factor, nil
}

// TotalPrice applies the perk factor to the vessel price (hull + engine)
// and adds the enhanced-thrusters per-unit surcharge. The surcharge scales
// with capacity and is deliberately additive, outside the perk factor.
func TotalPrice(vesselPrice, capacity float64, sel models.PerkSelection) (float64, error) {
	factor, err := PerkFactor(sel)
	if err != nil {
		return 0, err
	}
	total := vesselPrice + vesselPrice*factor
	if sel.EnhancedThrusters {
		total += capacity * enhancedThrusters.PricePerUnit
	}
	return total, nil
}
