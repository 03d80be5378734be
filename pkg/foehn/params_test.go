package foehn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsNormalized(t *testing.T) {
	tests := []struct {
		name     string
		in       Params
		expected Params
	}{
		{"zero value gets all defaults", Params{}, DefaultParams()},
		{
			"zero loss fraction means unset",
			Params{MoistureLossFraction: 0, ProcessSteps: 80},
			Params{MoistureLossFraction: DefaultMoistureLossFraction, ProcessSteps: 80,
				MaxIterations: DefaultMaxIterations, PressureTolerance: DefaultPressureTolerance},
		},
		{
			"loss fraction above one rejected",
			Params{MoistureLossFraction: 1.5},
			DefaultParams(),
		},
		{
			"steps below the floor replaced",
			Params{ProcessSteps: 5},
			DefaultParams(),
		},
		{
			"steps clamped to the ceiling",
			Params{ProcessSteps: 2_000_000_000},
			Params{MoistureLossFraction: DefaultMoistureLossFraction, ProcessSteps: MaxProcessSteps,
				MaxIterations: DefaultMaxIterations, PressureTolerance: DefaultPressureTolerance},
		},
		{
			"iterations clamped to the ceiling",
			Params{MaxIterations: 1 << 40},
			Params{MoistureLossFraction: DefaultMoistureLossFraction, ProcessSteps: DefaultProcessSteps,
				MaxIterations: MaxIterationsLimit, PressureTolerance: DefaultPressureTolerance},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.in.normalized())
		})
	}
}

func TestCompute_OversizedStepsClamped(t *testing.T) {
	// API callers control ProcessSteps; the sample slices must never be
	// allocated at the requested size when it exceeds the ceiling.
	params := DefaultParams()
	params.ProcessSteps = 2_000_000_000

	profile, err := Compute(madeiraInput(), params)
	require.NoError(t, err)

	assert.Equal(t, MaxProcessSteps, params.normalized().ProcessSteps)
	assert.Len(t, profile.DryAscent.Samples, MaxProcessSteps)
	assert.Len(t, profile.MoistAscent.Samples, MaxProcessSteps)
}
