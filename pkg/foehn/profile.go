package foehn

import (
	"math"

	"github.com/madeira-wx/foehnwx/pkg/atmo"
)

// Point labels as shown on the diagram and in reports.
const (
	LabelWindward   = "Windward Surface"
	LabelAscentLCL  = "LCL (Cloud Base)"
	LabelSummit     = "Summit"
	LabelDescentLCL = "Cloud Base (Descent)"
	LabelLeeward    = "Leeward Surface (Föhn)"
)

// Compute runs the full Föhn process chain for the given input:
//
//  1. LCL of the windward parcel (cloud base).
//  2. Dry adiabatic ascent from the surface to the LCL.
//  3. Saturated ascent from the LCL to the summit, precipitating.
//  4. Moisture loss at the summit per params.MoistureLossFraction.
//  5. Saturated descent from the summit to the leeward cloud base, taken
//     at the pressure midpoint of summit and leeward surface (a geometric
//     approximation, not saturation physics).
//  6. Dry descent from the leeward cloud base to the leeward surface.
//  7. Leeward dewpoint from the summit mixing ratio, conserved through
//     the dry descent.
//
// All input validation happens before any computation; on error the
// returned profile is nil.
func Compute(input Input, params Params) (*Profile, error) {
	params = params.normalized()

	if err := validate(input); err != nil {
		return nil, err
	}

	lclPres, lclTemp, err := LiftingCondensationLevel(
		input.WindwardPressure, input.WindwardTemperature, input.WindwardDewpoint, params)
	if err != nil {
		return nil, err
	}

	// The parcel cannot condense below the summit if the mountain is
	// shorter than the cloud base is high; cap the LCL at the summit so
	// the moist segment degenerates to the identity instead.
	if lclPres < input.SummitPressure {
		lclPres = input.SummitPressure
		lclTemp = atmo.DryAdiabaticTemperature(input.WindwardPressure, lclPres, input.WindwardTemperature)
	}

	dryAscent := DryProcess(input.WindwardPressure, lclPres, input.WindwardTemperature, params)
	moistAscent := MoistProcess(lclPres, input.SummitPressure, lclTemp, params)
	summitTemp := moistAscent.EndTemp

	summitMR := input.WindwardMixingRatio * (1 - params.MoistureLossFraction)

	// Leeward cloud base: midpoint rule between summit and surface.
	descentLCLPres := (input.SummitPressure + input.LeewardPressure) / 2
	moistDescent := MoistProcess(input.SummitPressure, descentLCLPres, summitTemp, params)
	descentLCLTemp := moistDescent.EndTemp

	dryDescent := DryProcess(descentLCLPres, input.LeewardPressure, descentLCLTemp, params)
	leewardTemp := dryDescent.EndTemp

	// The summit mixing ratio is conserved through the dry descent and
	// sets the leeward dewpoint.
	leewardDewpoint := atmo.DewpointFromMixingRatio(summitMR, input.LeewardPressure)
	if leewardDewpoint > leewardTemp {
		leewardDewpoint = leewardTemp
	}

	return &Profile{
		Windward: Point{
			Label:       LabelWindward,
			Pressure:    input.WindwardPressure,
			Temperature: input.WindwardTemperature,
			Dewpoint:    input.WindwardDewpoint,
			MixingRatio: input.WindwardMixingRatio,
		},
		AscentLCL: Point{
			Label:       LabelAscentLCL,
			Pressure:    lclPres,
			Temperature: lclTemp,
			Dewpoint:    lclTemp, // saturation point
			MixingRatio: input.WindwardMixingRatio,
		},
		Summit: Point{
			Label:       LabelSummit,
			Pressure:    input.SummitPressure,
			Temperature: summitTemp,
			Dewpoint:    summitTemp, // still saturated at the peak
			MixingRatio: summitMR,
		},
		DescentLCL: Point{
			Label:       LabelDescentLCL,
			Pressure:    descentLCLPres,
			Temperature: descentLCLTemp,
			Dewpoint:    descentLCLTemp,
			MixingRatio: summitMR,
		},
		Leeward: Point{
			Label:       LabelLeeward,
			Pressure:    input.LeewardPressure,
			Temperature: leewardTemp,
			Dewpoint:    leewardDewpoint,
			MixingRatio: summitMR,
		},
		DryAscent:    dryAscent,
		MoistAscent:  moistAscent,
		MoistDescent: moistDescent,
		DryDescent:   dryDescent,
		Params:       params,
	}, nil
}

func validate(input Input) error {
	switch {
	case math.IsNaN(input.WindwardPressure) || input.WindwardPressure <= 0:
		return &InvalidInputError{Field: "windward_pressure", Reason: "must be positive"}
	case math.IsNaN(input.SummitPressure) || input.SummitPressure <= 0:
		return &InvalidInputError{Field: "summit_pressure", Reason: "must be positive"}
	case math.IsNaN(input.LeewardPressure) || input.LeewardPressure <= 0:
		return &InvalidInputError{Field: "leeward_pressure", Reason: "must be positive"}
	case math.IsNaN(input.WindwardTemperature):
		return &InvalidInputError{Field: "windward_temperature", Reason: "must be a number"}
	case math.IsNaN(input.WindwardDewpoint):
		return &InvalidInputError{Field: "windward_dewpoint", Reason: "must be a number"}
	case math.IsNaN(input.WindwardMixingRatio):
		return &InvalidInputError{Field: "windward_mixing_ratio", Reason: "must be a number"}
	case input.WindwardDewpoint > input.WindwardTemperature:
		return &InvalidInputError{Field: "windward_dewpoint", Reason: "dewpoint exceeds temperature"}
	case input.WindwardMixingRatio < 0:
		return &InvalidInputError{Field: "windward_mixing_ratio", Reason: "must not be negative"}
	case input.SummitPressure >= input.WindwardPressure:
		return &InvalidInputError{Field: "summit_pressure", Reason: "summit must be above the windward surface"}
	case input.SummitPressure >= input.LeewardPressure:
		return &InvalidInputError{Field: "summit_pressure", Reason: "summit must be above the leeward surface"}
	}
	return nil
}
