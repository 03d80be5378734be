package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madeira-wx/foehnwx/pkg/foehn"
)

func buildProfile(t *testing.T) *foehn.Profile {
	t.Helper()
	profile, err := foehn.Compute(foehn.Input{
		WindwardPressure:    1000,
		WindwardTemperature: 20,
		WindwardDewpoint:    10.5,
		WindwardMixingRatio: 8,
		SummitPressure:      400,
		LeewardPressure:     1000,
	}, foehn.DefaultParams())
	require.NoError(t, err)
	return profile
}

func TestBuild(t *testing.T) {
	d := Build(buildProfile(t))

	// Five level markers plus the two dewpoint markers.
	assert.Len(t, d.Markers, 7)
	assert.Len(t, d.Curves, 4)

	dewpoints := 0
	for _, m := range d.Markers {
		if m.IsDewpoint {
			dewpoints++
		}
	}
	assert.Equal(t, 2, dewpoints)

	// Every curve carries a sampled path for the renderer.
	for _, c := range d.Curves {
		assert.NotEmpty(t, c.Samples, c.Label)
	}

	// The descent curves are distinguishable by style, as on the
	// reference diagram.
	assert.Equal(t, "--", d.Curves[2].LineStyle)
}

func TestBuildAxisBounds(t *testing.T) {
	profile := buildProfile(t)
	d := Build(profile)

	assert.Equal(t, profile.Summit.Pressure-50, d.PressureMin)
	assert.Equal(t, 1020.0, d.PressureMax)
	assert.Less(t, d.TemperatureMin, profile.Summit.Temperature)
	assert.Greater(t, d.TemperatureMax, profile.Leeward.Temperature)
}
