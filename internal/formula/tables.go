package formula

import (
	"fmt"
	"strings"

	"shipline_builder/internal/models"
)

// Constant lookup tables. These are authored shipyard data, loaded once and
// read-only for the lifetime of the process.

var capacityRanges = map[models.VesselClass]models.CapacityRange{
	models.ClassContainer: {
		Class:       models.ClassContainer,
		Unit:        "TEU",
		MinCapacity: 1000,
		MaxCapacity: 24000,
		MinStats: models.BaseStats{
			RangeNm:      9000,
			SpeedKn:      14,
			FuelFactor:   1.0,
			CO2Factor:    1.0,
			BuildTimeSec: 43_200,
		},
		MaxStats: models.BaseStats{
			RangeNm:      21000,
			SpeedKn:      25,
			FuelFactor:   2.8,
			CO2Factor:    3.4,
			BuildTimeSec: 604_800,
		},
		MinPrice: 4_500_000,
		MaxPrice: 160_000_000,
	},
	models.ClassTanker: {
		Class:       models.ClassTanker,
		Unit:        "bbl",
		MinCapacity: 74_000,
		MaxCapacity: 1_776_000,
		MinStats: models.BaseStats{
			RangeNm:      8500,
			SpeedKn:      13,
			FuelFactor:   1.1,
			CO2Factor:    1.15,
			BuildTimeSec: 57_600,
		},
		MaxStats: models.BaseStats{
			RangeNm:      19500,
			SpeedKn:      21,
			FuelFactor:   3.0,
			CO2Factor:    3.6,
			BuildTimeSec: 691_200,
		},
		MinPrice: 4_000_000,
		MaxPrice: 140_000_000,
	},
}

// Engine corner samples are authored in the container capacity domain for
// both classes; tanker capacities are converted before interpolation.
var engineModels = []models.EngineModel{
	{
		ID:              "mk1_diesel",
		Name:            "Meridian MK-I Diesel",
		MinKW:           6000,
		MaxKW:           22000,
		BasePrice:       900_000,
		PricePerExtraKW: 85,
		Corners: models.EngineCorners{
			MinCapMinKW: models.StatPoint{RangeNm: 9500, SpeedKn: 14.5},
			MinCapMaxKW: models.StatPoint{RangeNm: 8600, SpeedKn: 20.5},
			MaxCapMinKW: models.StatPoint{RangeNm: 17500, SpeedKn: 10.5},
			MaxCapMaxKW: models.StatPoint{RangeNm: 15800, SpeedKn: 16.5},
		},
	},
	{
		ID:              "mk2_diesel",
		Name:            "Meridian MK-II Diesel",
		MinKW:           12000,
		MaxKW:           42000,
		BasePrice:       2_100_000,
		PricePerExtraKW: 70,
		Corners: models.EngineCorners{
			MinCapMinKW: models.StatPoint{RangeNm: 10200, SpeedKn: 15.5},
			MinCapMaxKW: models.StatPoint{RangeNm: 9100, SpeedKn: 22},
			MaxCapMinKW: models.StatPoint{RangeNm: 18800, SpeedKn: 11.5},
			MaxCapMaxKW: models.StatPoint{RangeNm: 16900, SpeedKn: 18},
		},
	},
	{
		ID:              "gas_turbine",
		Name:            "Cyclone Gas Turbine",
		MinKW:           30000,
		MaxKW:           80000,
		BasePrice:       6_800_000,
		PricePerExtraKW: 120,
		Corners: models.EngineCorners{
			MinCapMinKW: models.StatPoint{RangeNm: 8400, SpeedKn: 17},
			MinCapMaxKW: models.StatPoint{RangeNm: 7200, SpeedKn: 25.5},
			MaxCapMinKW: models.StatPoint{RangeNm: 15200, SpeedKn: 13},
			MaxCapMaxKW: models.StatPoint{RangeNm: 13400, SpeedKn: 21.5},
		},
	},
	{
		ID:              "lng_hybrid",
		Name:            "Poseidon LNG Hybrid",
		MinKW:           18000,
		MaxKW:           60000,
		BasePrice:       4_400_000,
		PricePerExtraKW: 95,
		Corners: models.EngineCorners{
			MinCapMinKW: models.StatPoint{RangeNm: 11800, SpeedKn: 15},
			MinCapMaxKW: models.StatPoint{RangeNm: 10400, SpeedKn: 21},
			MaxCapMinKW: models.StatPoint{RangeNm: 21500, SpeedKn: 11},
			MaxCapMaxKW: models.StatPoint{RangeNm: 19000, SpeedKn: 17.5},
		},
	},
}

var antifoulingVariants = map[string]models.Perk{
	"antifouling_a": {
		ID:              "antifouling_a",
		Name:            "Antifouling Coating A",
		PriceFactor:     0.05,
		CO2Delta:        -0.10,
		FuelDelta:       -0.04,
		BuildTimeAddSec: 21_600,
	},
	"antifouling_b": {
		ID:              "antifouling_b",
		Name:            "Antifouling Coating B",
		PriceFactor:     0.09,
		CO2Delta:        -0.16,
		FuelDelta:       -0.07,
		BuildTimeAddSec: 43_200,
	},
}

var bulbousBow = models.Perk{
	ID:              "bulbous_bow",
	Name:            "Bulbous Bow",
	PriceFactor:     0.06,
	CO2Delta:        -0.03,
	FuelDelta:       -0.04,
	BuildTimeAddSec: 28_800,
}

var propellerVariants = map[string]models.Perk{
	"standard": {
		ID:   "standard",
		Name: "Standard Propeller",
	},
	"feathering": {
		ID:          "feathering",
		Name:        "Feathering Propeller",
		PriceFactor: 0.07,
		SpeedDelta:  0.05,
	},
}

var enhancedThrusters = models.Perk{
	ID:           "enhanced_thrusters",
	Name:         "Enhanced Thrusters",
	FuelDelta:    -0.05,
	PricePerUnit: 25,
}

// defaultPropellerID is what an empty PerkSelection.PropellerID resolves to.
const defaultPropellerID = "standard"

// ClassRange returns the capacity range row for a vessel class.
func ClassRange(class models.VesselClass) (models.CapacityRange, error) {
	r, ok := capacityRanges[class]
	if !ok {
		return models.CapacityRange{}, fmt.Errorf("unknown vessel class %q", class)
	}
	return r, nil
}

// Classes lists all capacity ranges for catalog display.
func Classes() []models.CapacityRange {
	return []models.CapacityRange{
		capacityRanges[models.ClassContainer],
		capacityRanges[models.ClassTanker],
	}
}

// EngineByID returns an engine model by its type id.
func EngineByID(id string) (models.EngineModel, error) {
	for _, e := range engineModels {
		if strings.EqualFold(e.ID, id) {
			return e, nil
		}
	}
	return models.EngineModel{}, fmt.Errorf("unknown engine model %q", id)
}

func Engines() []models.EngineModel {
	out := make([]models.EngineModel, len(engineModels))
	copy(out, engineModels)
	return out
}

func AntifoulingByID(id string) (models.Perk, error) {
	p, ok := antifoulingVariants[strings.ToLower(id)]
	if !ok {
		return models.Perk{}, fmt.Errorf("unknown antifouling variant %q", id)
	}
	return p, nil
}

func PropellerByID(id string) (models.Perk, error) {
	if id == "" {
		id = defaultPropellerID
	}
	p, ok := propellerVariants[strings.ToLower(id)]
	if !ok {
		return models.Perk{}, fmt.Errorf("unknown propeller variant %q", id)
	}
	return p, nil
}

// PerkCatalog groups every available perk for catalog display.
type PerkCatalog struct {
	Antifouling       []models.Perk `json:"antifouling"`
	BulbousBow        models.Perk   `json:"bulbous_bow"`
	Propellers        []models.Perk `json:"propellers"`
	EnhancedThrusters models.Perk   `json:"enhanced_thrusters"`
}

func Perks() PerkCatalog {
	return PerkCatalog{
		Antifouling: []models.Perk{
			antifoulingVariants["antifouling_a"],
			antifoulingVariants["antifouling_b"],
		},
		BulbousBow: bulbousBow,
		Propellers: []models.Perk{
			propellerVariants["standard"],
			propellerVariants["feathering"],
		},
		EnhancedThrusters: enhancedThrusters,
	}
}
