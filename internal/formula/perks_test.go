package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipline_builder/internal/models"
)

func baseStatsFixture() models.BaseStats {
	return models.BaseStats{
		RangeNm:      12000,
		SpeedKn:      18,
		FuelFactor:   1.5,
		CO2Factor:    1.0,
		BuildTimeSec: 100_000,
	}
}

func TestComposePerks_EmptySelectionIsIdentity(t *testing.T) {
	in := baseStatsFixture()
	out, err := ComposePerks(in, models.PerkSelection{})
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestComposePerks_LeftToRightOrder(t *testing.T) {
	// antifouling A multiplies CO2 by 0.90, then bulbous bow by 0.97:
	// 1.0 * 0.90 * 0.97 == 0.873 in that exact grouping.
	in := baseStatsFixture()
	out, err := ComposePerks(in, models.PerkSelection{
		AntifoulingID: "antifouling_a",
		BulbousBow:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1.0*(1-0.10)*(1-0.03), out.CO2Factor)
	assert.InDelta(t, 0.873, out.CO2Factor, 1e-12)
}

func TestComposePerks_Antifouling(t *testing.T) {
	af, err := AntifoulingByID("antifouling_b")
	require.NoError(t, err)

	in := baseStatsFixture()
	out, err := ComposePerks(in, models.PerkSelection{AntifoulingID: "antifouling_b"})
	require.NoError(t, err)

	assert.Equal(t, in.CO2Factor*(1+af.CO2Delta), out.CO2Factor)
	assert.Equal(t, in.FuelFactor*(1+af.FuelDelta), out.FuelFactor)
	assert.Equal(t, in.BuildTimeSec+af.BuildTimeAddSec, out.BuildTimeSec)
	assert.Equal(t, in.SpeedKn, out.SpeedKn)
	assert.Equal(t, in.RangeNm, out.RangeNm)
}

func TestComposePerks_PropellerAffectsSpeedOnly(t *testing.T) {
	prop, err := PropellerByID("feathering")
	require.NoError(t, err)

	in := baseStatsFixture()
	out, err := ComposePerks(in, models.PerkSelection{PropellerID: "feathering"})
	require.NoError(t, err)

	assert.Equal(t, in.SpeedKn*(1+prop.SpeedDelta), out.SpeedKn)
	assert.Equal(t, in.FuelFactor, out.FuelFactor)
	assert.Equal(t, in.CO2Factor, out.CO2Factor)
	assert.Equal(t, in.BuildTimeSec, out.BuildTimeSec)
}

func TestComposePerks_ThrustersTouchFuelOnly(t *testing.T) {
	in := baseStatsFixture()
	out, err := ComposePerks(in, models.PerkSelection{EnhancedThrusters: true})
	require.NoError(t, err)

	assert.Equal(t, in.FuelFactor*(1+enhancedThrusters.FuelDelta), out.FuelFactor)
	assert.Equal(t, in.SpeedKn, out.SpeedKn)
	assert.Equal(t, in.CO2Factor, out.CO2Factor)
	assert.Equal(t, in.BuildTimeSec, out.BuildTimeSec)
}

func TestComposePerks_UnknownIDs(t *testing.T) {
	in := baseStatsFixture()

	_, err := ComposePerks(in, models.PerkSelection{AntifoulingID: "antifouling_z"})
	assert.Error(t, err)

	_, err = ComposePerks(in, models.PerkSelection{PropellerID: "paddle_wheel"})
	assert.Error(t, err)
}
