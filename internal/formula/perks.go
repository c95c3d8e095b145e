package formula

import "shipline_builder/internal/models"

// ComposePerks applies a perk selection to base stats in fixed order:
// antifouling, bulbous bow, propeller, enhanced thrusters. The order
// matters: CO2/fuel effects multiply a running value, so regrouping would
// change rounding. Enhanced thrusters touch fuel only here; their per-unit
// price surcharge lives in TotalPrice, not in this composition.
func ComposePerks(stats models.BaseStats, sel models.PerkSelection) (models.BaseStats, error) {
	out := stats

	if sel.AntifoulingID != "" {
		af, err := AntifoulingByID(sel.AntifoulingID)
		if err != nil {
			return stats, err
		}
		out.CO2Factor *= 1 + af.CO2Delta
		out.FuelFactor *= 1 + af.FuelDelta
		out.BuildTimeSec += af.BuildTimeAddSec
	}

	if sel.BulbousBow {
		out.CO2Factor *= 1 + bulbousBow.CO2Delta
		out.FuelFactor *= 1 + bulbousBow.FuelDelta
		out.BuildTimeSec += bulbousBow.BuildTimeAddSec
	}

	prop, err := PropellerByID(sel.PropellerID)
	if err != nil {
		return stats, err
	}
	out.SpeedKn *= 1 + prop.SpeedDelta

	if sel.EnhancedThrusters {
		out.FuelFactor *= 1 + enhancedThrusters.FuelDelta
	}

	return out, nil
}
