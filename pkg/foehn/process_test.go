package foehn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDryProcess_Identity(t *testing.T) {
	proc := DryProcess(1000, 1000, 20, DefaultParams())

	assert.Equal(t, 20.0, proc.EndTemp)
	assert.Len(t, proc.Samples, 1)
}

func TestDryProcess_RoundTrip(t *testing.T) {
	// Dry transport is reversible: up then down recovers the start
	// temperature.
	up := DryProcess(1000, 870, 20, DefaultParams())
	down := DryProcess(870, 1000, up.EndTemp, DefaultParams())

	assert.InDelta(t, 20, down.EndTemp, 1e-9)
	assert.True(t, up.Ascending())
	assert.False(t, down.Ascending())
}

func TestDryProcess_Samples(t *testing.T) {
	proc := DryProcess(1000, 870, 20, DefaultParams())

	assert.Len(t, proc.Samples, DefaultProcessSteps)
	assert.Equal(t, 1000.0, proc.Samples[0].Pressure)
	assert.Equal(t, 870.0, proc.Samples[len(proc.Samples)-1].Pressure)
	assert.Equal(t, 20.0, proc.Samples[0].Temperature)

	// Temperature decreases monotonically toward lower pressure.
	for i := 1; i < len(proc.Samples); i++ {
		assert.Less(t, proc.Samples[i].Temperature, proc.Samples[i-1].Temperature)
	}
}

func TestMoistProcess_Identity(t *testing.T) {
	proc := MoistProcess(870, 870, 8.4, DefaultParams())

	assert.Equal(t, 8.4, proc.EndTemp)
	assert.Len(t, proc.Samples, 1)
}

func TestMoistProcess_AscentToSummit(t *testing.T) {
	// Saturated ascent from the Madeira cloud base to the 400 hPa summit
	// cools the parcel to roughly -32°C.
	proc := MoistProcess(870, 400, 8.4, DefaultParams())

	assert.InDelta(t, -32, proc.EndTemp, 3)
}

func TestMoistProcess_CoolsLessThanDry(t *testing.T) {
	// Latent heat release makes the saturated ascent cool less than the
	// dry adiabat over the same span.
	moist := MoistProcess(870, 400, 8.4, DefaultParams())
	dry := DryProcess(870, 400, 8.4, DefaultParams())

	assert.Greater(t, moist.EndTemp, dry.EndTemp)
}

func TestMoistProcess_RoundTrip(t *testing.T) {
	// The pseudoadiabat integration is numerically reversible to well
	// under the 0.3°C truncation budget.
	up := MoistProcess(870, 400, 8.4, DefaultParams())
	down := MoistProcess(400, 870, up.EndTemp, DefaultParams())

	assert.InDelta(t, 8.4, down.EndTemp, 0.1)
}

func TestMoistProcess_StepFloor(t *testing.T) {
	// A step count below the floor is replaced by the default rather
	// than degrading integration accuracy.
	params := DefaultParams()
	params.ProcessSteps = 2

	proc := MoistProcess(870, 400, 8.4, params)
	assert.Len(t, proc.Samples, DefaultProcessSteps)
}
