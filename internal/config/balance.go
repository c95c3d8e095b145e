package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Balance holds the economy tunables the simulation host reads. The formula
// tables themselves are compile-time constant; these numbers only shape how
// the host turns formula outputs into per-tick cash flow.
type Balance struct {
	StartingCash   float64 `yaml:"starting_cash"`
	ShareBasePrice float64 `yaml:"share_base_price"`
	// CargoRatePerUnit is revenue per container-equivalent unit per 1000nm.
	CargoRatePerUnit  float64 `yaml:"cargo_rate_per_unit"`
	FuelPricePerTonne float64 `yaml:"fuel_price_per_tonne"`
	SecondsPerTick    float64 `yaml:"seconds_per_tick"`
}

func DefaultBalance() Balance {
	return Balance{
		StartingCash:      120_000_000,
		ShareBasePrice:    10,
		CargoRatePerUnit:  220,
		FuelPricePerTonne: 420,
		SecondsPerTick:    21_600,
	}
}

// LoadBalance reads a YAML balance file over the defaults. An empty path
// returns the defaults unchanged; the file may set any subset of fields.
func LoadBalance(path string) (Balance, error) {
	b := DefaultBalance()
	if path == "" {
		return b, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return b, fmt.Errorf("reading balance file: %w", err)
	}
	if err := yaml.Unmarshal(data, &b); err != nil {
		return b, fmt.Errorf("parsing balance file: %w", err)
	}
	if b.SecondsPerTick <= 0 {
		b.SecondsPerTick = DefaultBalance().SecondsPerTick
	}
	return b, nil
}
