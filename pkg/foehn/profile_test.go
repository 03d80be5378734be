package foehn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// madeiraInput is the documented reference observation: north coast of
// Madeira upwind, Funchal downwind of the 400 hPa summit.
func madeiraInput() Input {
	return Input{
		WindwardPressure:    1000,
		WindwardTemperature: 20,
		WindwardDewpoint:    10.5,
		WindwardMixingRatio: 8,
		SummitPressure:      400,
		LeewardPressure:     1000,
	}
}

func TestCompute_MadeiraReferenceCase(t *testing.T) {
	profile, err := Compute(madeiraInput(), DefaultParams())
	require.NoError(t, err)

	assert.InDelta(t, 870, profile.AscentLCL.Pressure, 10)
	assert.InDelta(t, 8.4, profile.AscentLCL.Temperature, 1.0)
	assert.InDelta(t, -32, profile.Summit.Temperature, 3)

	// The midpoint rule puts the descent cloud base at 700 hPa, higher
	// than the ~655 hPa observed in the event, so the computed chain
	// lands near +8°C of warming rather than the observed +10°C.
	assert.InDelta(t, 28, profile.Leeward.Temperature, 1.0)

	// 50% of the windward moisture precipitates out by default.
	assert.InDelta(t, 4, profile.Summit.MixingRatio, 1e-9)

	// Descent cloud base at the summit/surface pressure midpoint.
	assert.Equal(t, 700.0, profile.DescentLCL.Pressure)

	metrics, err := profile.Metrics()
	require.NoError(t, err)
	assert.InDelta(t, 8, metrics.TemperatureIncrease, 1.0)
	assert.Less(t, metrics.RelativeHumidity, 20.0)
	assert.InDelta(t, 4, metrics.MoistureLoss, 1e-9)
	assert.InDelta(t, 0.5, metrics.MoistureLossFraction, 1e-9)
}

func TestCompute_ProfileShape(t *testing.T) {
	profile, err := Compute(madeiraInput(), DefaultParams())
	require.NoError(t, err)

	// Five levels, four processes, chained end to start.
	points := profile.Points()
	require.Len(t, points, 5)
	procs := profile.Processes()
	require.Len(t, procs, 4)

	for i, proc := range procs[1:] {
		assert.Equal(t, procs[i].EndPressure, proc.StartPressure, "segment %d chains", i+1)
		assert.InDelta(t, procs[i].EndTemp, proc.StartTemp, 1e-9, "segment %d temperature chains", i+1)
	}

	// Both cloud-base points sit at saturation.
	assert.True(t, profile.AscentLCL.Saturated())
	assert.True(t, profile.DescentLCL.Saturated())

	// Leeward air is warm and dry, not saturated.
	assert.False(t, profile.Leeward.Saturated())
	assert.LessOrEqual(t, profile.Leeward.Dewpoint, profile.Leeward.Temperature)
}

func TestCompute_InvalidInputs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
		field  string
	}{
		{"dewpoint above temperature", func(in *Input) { in.WindwardDewpoint = 25 }, "windward_dewpoint"},
		{"summit not above windward", func(in *Input) { in.SummitPressure = 1000 }, "summit_pressure"},
		{"summit not above leeward", func(in *Input) { in.LeewardPressure = 390 }, "summit_pressure"},
		{"zero windward pressure", func(in *Input) { in.WindwardPressure = 0 }, "windward_pressure"},
		{"negative summit pressure", func(in *Input) { in.SummitPressure = -5 }, "summit_pressure"},
		{"negative mixing ratio", func(in *Input) { in.WindwardMixingRatio = -1 }, "windward_mixing_ratio"},
		{"NaN summit pressure", func(in *Input) { in.SummitPressure = math.NaN() }, "summit_pressure"},
		{"NaN leeward pressure", func(in *Input) { in.LeewardPressure = math.NaN() }, "leeward_pressure"},
		{"NaN dewpoint", func(in *Input) { in.WindwardDewpoint = math.NaN() }, "windward_dewpoint"},
		{"NaN mixing ratio", func(in *Input) { in.WindwardMixingRatio = math.NaN() }, "windward_mixing_ratio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := madeiraInput()
			tt.mutate(&in)

			profile, err := Compute(in, DefaultParams())
			assert.Nil(t, profile, "no partial results on invalid input")

			var invalid *InvalidInputError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.field, invalid.Field)
		})
	}
}

func TestCompute_HigherSummitWarmsMore(t *testing.T) {
	// Holding the moisture-loss model fixed, a higher mountain (lower
	// summit pressure) must not reduce the Föhn warming.
	prev := -1e9
	for _, summit := range []float64{700, 600, 500, 400} {
		in := madeiraInput()
		in.SummitPressure = summit

		profile, err := Compute(in, DefaultParams())
		require.NoError(t, err)
		metrics, err := profile.Metrics()
		require.NoError(t, err)

		assert.GreaterOrEqual(t, metrics.TemperatureIncrease, prev,
			"warming at summit %v hPa", summit)
		prev = metrics.TemperatureIncrease
	}
}

func TestCompute_ShallowMountainBelowCloudBase(t *testing.T) {
	// A summit below the windward LCL never saturates the parcel on the
	// way up: the cloud base is capped at the summit and the moist
	// ascent degenerates to the identity. Without a deep moist leg there
	// is next to no Föhn warming.
	in := madeiraInput()
	in.SummitPressure = 950

	profile, err := Compute(in, DefaultParams())
	require.NoError(t, err)

	assert.Equal(t, 950.0, profile.AscentLCL.Pressure)
	assert.Equal(t, profile.MoistAscent.StartPressure, profile.MoistAscent.EndPressure)
	assert.InDelta(t, profile.AscentLCL.Temperature, profile.Summit.Temperature, 1e-9)
	assert.InDelta(t, 0, profile.Leeward.Temperature-profile.Windward.Temperature, 2)
}

func TestCompute_CustomMoistureLoss(t *testing.T) {
	params := DefaultParams()
	params.MoistureLossFraction = 0.75

	profile, err := Compute(madeiraInput(), params)
	require.NoError(t, err)

	assert.InDelta(t, 2, profile.Summit.MixingRatio, 1e-9)
}

func TestMetrics_ZeroMixingRatio(t *testing.T) {
	in := madeiraInput()
	in.WindwardMixingRatio = 0
	in.WindwardDewpoint = -40 // keep the column consistent with dry air

	profile, err := Compute(in, DefaultParams())
	require.NoError(t, err)

	_, err = profile.Metrics()
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "windward_mixing_ratio", invalid.Field)
}
