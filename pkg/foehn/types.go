// Package foehn implements the thermodynamic process chain of the Föhn
// effect: dry adiabatic ascent to the cloud base, saturated ascent to the
// summit, saturated descent to the leeward cloud base and dry descent to
// the leeward surface, together with the derived warming and drying
// metrics.
//
// The engine is a pure function of its inputs. It holds no shared state,
// never logs, and is safe to call concurrently.
package foehn

import "math"

// ProcessKind identifies the adiabatic regime of a process segment.
type ProcessKind string

const (
	ProcessDry   ProcessKind = "dry"
	ProcessMoist ProcessKind = "moist"
)

// Sample is one (pressure, temperature) pair along a process path.
type Sample struct {
	Pressure    float64 `json:"pressure"`
	Temperature float64 `json:"temperature"`
}

// Point is the state of the air parcel at one level of the profile.
// Dewpoint is NaN when the level has no meaningful dewpoint. A Point is
// computed once and never mutated.
type Point struct {
	Label       string  `json:"label"`
	Pressure    float64 `json:"pressure"`     // hPa
	Temperature float64 `json:"temperature"`  // °C
	Dewpoint    float64 `json:"dewpoint"`     // °C, NaN if not applicable
	MixingRatio float64 `json:"mixing_ratio"` // g/kg
}

// Saturated reports whether the point sits at its condensation level.
func (p Point) Saturated() bool {
	return !math.IsNaN(p.Dewpoint) && math.Abs(p.Dewpoint-p.Temperature) < 0.05
}

// Process is one adiabatic transformation between two pressure levels,
// with the sampled path used for diagram rendering and the resulting end
// temperature used by the next stage.
type Process struct {
	Kind          ProcessKind `json:"kind"`
	StartPressure float64     `json:"start_pressure"`
	EndPressure   float64     `json:"end_pressure"`
	StartTemp     float64     `json:"start_temperature"`
	EndTemp       float64     `json:"end_temperature"`
	Samples       []Sample    `json:"samples"`
}

// Ascending reports whether the process moves toward lower pressure.
func (p Process) Ascending() bool {
	return p.EndPressure < p.StartPressure
}

// Input holds the windward-side observation and the mountain geometry for
// one analysis run.
type Input struct {
	WindwardPressure    float64 `json:"windward_pressure" yaml:"windward-pressure"`         // hPa
	WindwardTemperature float64 `json:"windward_temperature" yaml:"windward-temperature"`   // °C
	WindwardDewpoint    float64 `json:"windward_dewpoint" yaml:"windward-dewpoint"`         // °C
	WindwardMixingRatio float64 `json:"windward_mixing_ratio" yaml:"windward-mixing-ratio"` // g/kg
	SummitPressure      float64 `json:"summit_pressure" yaml:"summit-pressure"`             // hPa
	LeewardPressure     float64 `json:"leeward_pressure" yaml:"leeward-pressure"`           // hPa
}

// Profile is the aggregate result of one analysis: the five levels of the
// column and the four processes connecting them.
type Profile struct {
	Windward   Point `json:"windward"`
	AscentLCL  Point `json:"ascent_lcl"`
	Summit     Point `json:"summit"`
	DescentLCL Point `json:"descent_lcl"`
	Leeward    Point `json:"leeward"`

	DryAscent    Process `json:"dry_ascent"`
	MoistAscent  Process `json:"moist_ascent"`
	MoistDescent Process `json:"moist_descent"`
	DryDescent   Process `json:"dry_descent"`

	Params Params `json:"params"`
}

// Points returns the profile levels in ascent order.
func (p *Profile) Points() []Point {
	return []Point{p.Windward, p.AscentLCL, p.Summit, p.DescentLCL, p.Leeward}
}

// Processes returns the process segments in chain order.
func (p *Profile) Processes() []Process {
	return []Process{p.DryAscent, p.MoistAscent, p.MoistDescent, p.DryDescent}
}
