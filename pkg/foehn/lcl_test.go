package foehn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiftingCondensationLevel_Madeira(t *testing.T) {
	// Windward observation from the Madeira reference case: the cloud
	// base forms near 870 hPa / 8.4°C.
	p, temp, err := LiftingCondensationLevel(1000, 20, 10.5, DefaultParams())
	require.NoError(t, err)

	assert.InDelta(t, 870, p, 10)
	assert.InDelta(t, 8.4, temp, 1.0)
}

func TestLiftingCondensationLevel_BetweenSummitAndSurface(t *testing.T) {
	// For physically reasonable humid parcels the LCL sits strictly
	// between the summit and the surface.
	cases := []struct {
		pres, temp, dewpoint float64
	}{
		{1000, 20, 10.5},
		{1013, 18, 12},
		{950, 25, 20},
		{1000, 5, -2},
	}

	for _, c := range cases {
		p, tLCL, err := LiftingCondensationLevel(c.pres, c.temp, c.dewpoint, DefaultParams())
		require.NoError(t, err)
		assert.Greater(t, p, 400.0, "LCL above the summit bound")
		assert.Less(t, p, c.pres, "LCL below the surface")
		assert.Less(t, tLCL, c.temp, "lifted parcel is cooler than at the surface")
	}
}

func TestLiftingCondensationLevel_SaturatedSurface(t *testing.T) {
	// A parcel already at its dewpoint condenses where it stands.
	p, temp, err := LiftingCondensationLevel(1000, 15, 15, DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, 1000.0, p)
	assert.Equal(t, 15.0, temp)
}

func TestLiftingCondensationLevel_DewpointAboveTemperature(t *testing.T) {
	_, _, err := LiftingCondensationLevel(1000, 10, 12, DefaultParams())

	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "dewpoint", invalid.Field)
}

func TestLiftingCondensationLevel_NonPositivePressure(t *testing.T) {
	_, _, err := LiftingCondensationLevel(0, 10, 5, DefaultParams())

	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestLiftingCondensationLevel_IterationBudget(t *testing.T) {
	// An iteration budget too small for the bracket width surfaces as a
	// convergence error, not as a silently inaccurate level.
	params := DefaultParams()
	params.MaxIterations = 3

	_, _, err := LiftingCondensationLevel(1000, 20, 10.5, params)

	var conv *ConvergenceError
	require.ErrorAs(t, err, &conv)
	assert.Equal(t, 3, conv.Iterations)
}
