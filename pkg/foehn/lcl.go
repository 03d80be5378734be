package foehn

import (
	"github.com/madeira-wx/foehnwx/pkg/atmo"
)

// lclFloorPressure is the lowest pressure the LCL search will bracket.
// Physically reasonable surface parcels condense far above this; failing
// to find a sign change by here means the parcel is too dry to saturate.
const lclFloorPressure = 50.0

// LiftingCondensationLevel finds the pressure and temperature (hPa, °C) at
// which an unsaturated parcel lifted dry-adiabatically from (pres, tempC,
// dewpointC) first saturates. The parcel conserves its mixing ratio on the
// way up, so the LCL is the root of
//
//	es(T_dry(p)) - e_parcel(p) = 0
//
// which has no closed form; it is bracketed by bisection to within
// params.PressureTolerance. At the returned level the dewpoint equals the
// temperature by construction.
func LiftingCondensationLevel(pres, tempC, dewpointC float64, params Params) (float64, float64, error) {
	params = params.normalized()

	if pres <= 0 {
		return 0, 0, &InvalidInputError{Field: "pressure", Reason: "must be positive"}
	}
	if dewpointC > tempC {
		return 0, 0, &InvalidInputError{Field: "dewpoint", Reason: "dewpoint exceeds temperature"}
	}

	// Already saturated: the cloud base is the starting level.
	if dewpointC == tempC {
		return pres, tempC, nil
	}

	// Conserved parcel mixing ratio, from the surface dewpoint.
	mr := atmo.MixingRatioFromDewpoint(dewpointC, pres)

	// Positive while the parcel is unsaturated, negative once the dry
	// adiabat has cooled below the parcel's vapor pressure curve.
	excess := func(p float64) float64 {
		t := atmo.DryAdiabaticTemperature(pres, p, tempC)
		return atmo.SaturationVaporPressure(t) - atmo.VaporPressureFromMixingRatio(mr, p)
	}

	lo, hi := lclFloorPressure, pres
	if excess(lo) >= 0 {
		return 0, 0, &ConvergenceError{Operation: "lifting condensation level", Iterations: 0}
	}

	var mid float64
	for i := 0; i < params.MaxIterations; i++ {
		mid = (lo + hi) / 2
		if hi-lo < params.PressureTolerance {
			t := atmo.DryAdiabaticTemperature(pres, mid, tempC)
			return mid, t, nil
		}
		if excess(mid) > 0 {
			hi = mid
		} else {
			lo = mid
		}
	}

	return 0, 0, &ConvergenceError{Operation: "lifting condensation level", Iterations: params.MaxIterations}
}
