// Package diagram converts a computed Föhn profile into the plain data
// series a pressure-temperature diagram renderer consumes: labeled,
// colored point markers and one sampled curve per adiabatic process. No
// physics happens here and nothing is drawn; rendering belongs to the
// presentation layer.
package diagram

import (
	"fmt"

	"github.com/madeira-wx/foehnwx/pkg/foehn"
)

// Marker is one observation point on the diagram.
type Marker struct {
	Label       string  `json:"label"`
	Pressure    float64 `json:"pressure"`
	Temperature float64 `json:"temperature"`
	Color       string  `json:"color"`
	IsDewpoint  bool    `json:"is_dewpoint,omitempty"`
}

// Curve is the sampled path of one adiabatic process.
type Curve struct {
	Label     string         `json:"label"`
	Kind      string         `json:"kind"`
	Color     string         `json:"color"`
	LineStyle string         `json:"line_style"`
	Samples   []foehn.Sample `json:"samples"`
}

// Diagram is the full renderer payload for one analysis.
type Diagram struct {
	Markers []Marker `json:"markers"`
	Curves  []Curve  `json:"curves"`

	// Axis bounds padded around the profile, hPa and °C.
	PressureMin    float64 `json:"pressure_min"`
	PressureMax    float64 `json:"pressure_max"`
	TemperatureMin float64 `json:"temperature_min"`
	TemperatureMax float64 `json:"temperature_max"`
}

// Build assembles the diagram payload from a profile.
func Build(profile *foehn.Profile) *Diagram {
	d := &Diagram{
		Markers: []Marker{
			{
				Label: fmt.Sprintf("%s (%.0f hPa, %.1f°C)", profile.Windward.Label,
					profile.Windward.Pressure, profile.Windward.Temperature),
				Pressure:    profile.Windward.Pressure,
				Temperature: profile.Windward.Temperature,
				Color:       "orange",
			},
			{
				Label:       fmt.Sprintf("Windward Td (%.1f°C)", profile.Windward.Dewpoint),
				Pressure:    profile.Windward.Pressure,
				Temperature: profile.Windward.Dewpoint,
				Color:       "tab:blue",
				IsDewpoint:  true,
			},
			{
				Label: fmt.Sprintf("%s (%.0f hPa, %.1f°C)", profile.AscentLCL.Label,
					profile.AscentLCL.Pressure, profile.AscentLCL.Temperature),
				Pressure:    profile.AscentLCL.Pressure,
				Temperature: profile.AscentLCL.Temperature,
				Color:       "cyan",
			},
			{
				Label: fmt.Sprintf("%s (%.0f hPa, %.1f°C)", profile.Summit.Label,
					profile.Summit.Pressure, profile.Summit.Temperature),
				Pressure:    profile.Summit.Pressure,
				Temperature: profile.Summit.Temperature,
				Color:       "red",
			},
			{
				Label: fmt.Sprintf("%s (%.0f hPa, %.1f°C)", profile.DescentLCL.Label,
					profile.DescentLCL.Pressure, profile.DescentLCL.Temperature),
				Pressure:    profile.DescentLCL.Pressure,
				Temperature: profile.DescentLCL.Temperature,
				Color:       "orange",
			},
			{
				Label: fmt.Sprintf("%s (%.0f hPa, %.1f°C)", profile.Leeward.Label,
					profile.Leeward.Pressure, profile.Leeward.Temperature),
				Pressure:    profile.Leeward.Pressure,
				Temperature: profile.Leeward.Temperature,
				Color:       "orange",
			},
			{
				Label:       fmt.Sprintf("Leeward Td (%.1f°C)", profile.Leeward.Dewpoint),
				Pressure:    profile.Leeward.Pressure,
				Temperature: profile.Leeward.Dewpoint,
				Color:       "tab:blue",
				IsDewpoint:  true,
			},
		},
		Curves: []Curve{
			{
				Label:     "Dry Adiabatic Ascent",
				Kind:      string(foehn.ProcessDry),
				Color:     "blue",
				LineStyle: "-",
				Samples:   profile.DryAscent.Samples,
			},
			{
				Label:     "Saturated Adiabatic Ascent (Precipitation)",
				Kind:      string(foehn.ProcessMoist),
				Color:     "green",
				LineStyle: "-",
				Samples:   profile.MoistAscent.Samples,
			},
			{
				Label:     "Saturated Adiabatic Descent",
				Kind:      string(foehn.ProcessMoist),
				Color:     "green",
				LineStyle: "--",
				Samples:   profile.MoistDescent.Samples,
			},
			{
				Label:     "Dry Adiabatic Descent (Föhn)",
				Kind:      string(foehn.ProcessDry),
				Color:     "red",
				LineStyle: "-",
				Samples:   profile.DryDescent.Samples,
			},
		},
	}

	d.PressureMin = profile.Summit.Pressure - 50
	d.PressureMax = maxPressure(profile) + 20
	d.TemperatureMin, d.TemperatureMax = temperatureBounds(profile)

	return d
}

func maxPressure(profile *foehn.Profile) float64 {
	max := profile.Windward.Pressure
	if profile.Leeward.Pressure > max {
		max = profile.Leeward.Pressure
	}
	return max
}

// temperatureBounds pads the coldest and warmest profile temperatures to
// round axis limits.
func temperatureBounds(profile *foehn.Profile) (float64, float64) {
	lo, hi := profile.Windward.Temperature, profile.Windward.Temperature
	for _, pt := range profile.Points() {
		if pt.Temperature < lo {
			lo = pt.Temperature
		}
		if pt.Temperature > hi {
			hi = pt.Temperature
		}
	}
	return lo - 10, hi + 15
}
