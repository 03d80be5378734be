package atmo

import (
	"math"
	"testing"
)

func TestSaturationVaporPressure(t *testing.T) {
	tests := []struct {
		name     string
		tempC    float64
		expected float64 // hPa
		tol      float64
	}{
		{"freezing point", 0, 6.11, 0.05},
		{"cool surface air", 10.5, 12.72, 0.15},
		{"warm surface air", 20, 23.39, 0.2},
		{"hot leeward air", 30, 42.46, 0.3},
		{"summit cold", -32, 0.39, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SaturationVaporPressure(tt.tempC)
			if math.Abs(got-tt.expected) > tt.tol {
				t.Errorf("SaturationVaporPressure(%v) = %.3f hPa, expected %.3f ± %.2f",
					tt.tempC, got, tt.expected, tt.tol)
			}
		})
	}
}

func TestMixingRatioConversions(t *testing.T) {
	// A dewpoint of 10.5°C at 1000 hPa corresponds to the 8 g/kg of the
	// Madeira windward observation.
	mr := MixingRatioFromDewpoint(10.5, 1000)
	if mr < 7.6 || mr > 8.4 {
		t.Errorf("MixingRatioFromDewpoint(10.5, 1000) = %.2f g/kg, expected ~8", mr)
	}

	// Vapor pressure and mixing ratio conversions must invert each other.
	e := VaporPressureFromMixingRatio(mr, 1000)
	back := MixingRatioFromVaporPressure(e, 1000)
	if math.Abs(back-mr) > 1e-9 {
		t.Errorf("mixing ratio round trip: %.6f -> %.6f", mr, back)
	}
}

func TestDewpointFromMixingRatio(t *testing.T) {
	tests := []struct {
		name     string
		mr       float64
		pres     float64
		expected float64
		tol      float64
	}{
		{"madeira windward", 8, 1000, 10.5, 0.5},
		{"dry leeward parcel", 4, 1000, 0.9, 0.7},
		{"very dry", 0.5, 1000, -24.4, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DewpointFromMixingRatio(tt.mr, tt.pres)
			if math.Abs(got-tt.expected) > tt.tol {
				t.Errorf("DewpointFromMixingRatio(%v, %v) = %.2f, expected %.2f ± %.1f",
					tt.mr, tt.pres, got, tt.expected, tt.tol)
			}
		})
	}
}

func TestDewpointVaporPressureRoundTrip(t *testing.T) {
	// Dewpoint must invert saturation vapor pressure over liquid water
	// across the whole range, sub-freezing included.
	for _, td := range []float64{-50, -40, -32, -20, -5, 0, 5, 15, 25, 40} {
		e := SaturationVaporPressure(td)
		got := DewpointFromVaporPressure(e)
		if math.Abs(got-td) > 0.3 {
			t.Errorf("dewpoint round trip at %v°C: got %.2f", td, got)
		}
	}
}

func TestRelativeHumidity(t *testing.T) {
	if rh := RelativeHumidity(20, 20); math.Abs(rh-100) > 0.01 {
		t.Errorf("saturated parcel RH = %.2f, expected 100", rh)
	}

	rh := RelativeHumidity(20, 10.5)
	if rh < 50 || rh > 60 {
		t.Errorf("RelativeHumidity(20, 10.5) = %.1f%%, expected 50-60%%", rh)
	}

	// Dewpoint above temperature is unphysical input; the cap keeps the
	// result from exceeding 100%.
	if rh := RelativeHumidity(10, 20); rh > 100 {
		t.Errorf("RH cap failed: %.1f", rh)
	}
}
