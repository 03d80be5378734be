// Package atmo provides the atmospheric thermodynamics primitives used by
// the Föhn process engine: saturation vapor pressure, humidity conversions,
// and the dry and saturated adiabatic relations.
//
// All functions are pure functions of their scalar arguments and are safe
// for concurrent use. Temperatures are in °C, pressures in hPa and mixing
// ratios in g/kg of dry air unless noted otherwise.
package atmo

import "math"

// Physical constants (SI units unless noted)
const (
	// KelvinOffset converts between °C and K
	KelvinOffset = 273.15

	// RDry is the specific gas constant of dry air, J/(kg·K)
	RDry = 287.04

	// CpDry is the specific heat of dry air at constant pressure, J/(kg·K)
	CpDry = 1005.7

	// Kappa is the Poisson exponent R/cp for dry air
	Kappa = RDry / CpDry

	// LatentHeatVaporization is the latent heat of vaporization of water
	// near 0°C, J/kg. Treated as constant over the temperature range of
	// interest; the error is well below the integration tolerance.
	LatentHeatVaporization = 2.501e6

	// Epsilon is the ratio of the molecular weights of water vapor and
	// dry air
	Epsilon = 0.622
)

// SaturationVaporPressure returns the saturation vapor pressure (hPa) over
// liquid water at the given temperature (°C), using the Wexler-Hyland
// formulation (ASHRAE Fundamentals).
func SaturationVaporPressure(tempC float64) float64 {
	t := tempC + KelvinOffset
	return math.Exp(-5800.2206/t+
		1.3914993-
		0.048640239*t+
		0.41764768e-4*t*t-
		0.14452093e-7*t*t*t+
		6.5459673*math.Log(t)) / 100
}

// VaporPressureFromMixingRatio returns the partial pressure of water vapor
// (hPa) for a parcel with mixing ratio mr (g/kg) at total pressure pres (hPa).
func VaporPressureFromMixingRatio(mr, pres float64) float64 {
	return mr * pres / (Epsilon*1000 + mr)
}

// MixingRatioFromVaporPressure returns the mixing ratio (g/kg) for a vapor
// partial pressure e (hPa) at total pressure pres (hPa).
func MixingRatioFromVaporPressure(e, pres float64) float64 {
	return Epsilon * 1000 * e / (pres - e)
}

// SaturationMixingRatio returns the saturation mixing ratio (g/kg) at the
// given pressure (hPa) and temperature (°C).
func SaturationMixingRatio(pres, tempC float64) float64 {
	return MixingRatioFromVaporPressure(SaturationVaporPressure(tempC), pres)
}

// MixingRatioFromDewpoint returns the actual mixing ratio (g/kg) of a parcel
// at pressure pres (hPa) whose dewpoint is dewpointC (°C). The parcel's vapor
// pressure equals the saturation vapor pressure at the dewpoint.
func MixingRatioFromDewpoint(dewpointC, pres float64) float64 {
	return MixingRatioFromVaporPressure(SaturationVaporPressure(dewpointC), pres)
}

// DewpointFromVaporPressure returns the dewpoint (°C) for a vapor partial
// pressure e (hPa), inverting the liquid-water curve used by
// SaturationVaporPressure. Inside 6.112..123.5 hPa (0..50°C) the Udagawa
// cubic fit in ln(e) is used directly; below freezing the published fit is
// over ice and disagrees with the liquid curve by several percent, so the
// Magnus inversion seeds a Newton refinement against the Wexler-Hyland
// formulation instead. Round-tripping through SaturationVaporPressure
// holds to better than 0.01°C across -50..50°C.
func DewpointFromVaporPressure(e float64) float64 {
	if e >= 6.112 && e <= 123.50 {
		y := math.Log(e * 100) // Pa
		return -77.199 + 13.198*y - 0.63772*y*y + 0.071098*y*y*y
	}

	ln := math.Log(e / 6.112)
	td := 243.5 * ln / (17.67 - ln)
	for i := 0; i < 4; i++ {
		es := SaturationVaporPressure(td)
		t := td + KelvinOffset
		// d(ln es)/dT of the Wexler-Hyland polynomial.
		dlnes := 5800.2206/(t*t) - 0.048640239 + 2*0.41764768e-4*t - 3*0.14452093e-7*t*t + 6.5459673/t
		td -= (es - e) / (es * dlnes)
	}
	return td
}

// DewpointFromMixingRatio returns the dewpoint (°C) of a parcel with mixing
// ratio mr (g/kg) at pressure pres (hPa).
func DewpointFromMixingRatio(mr, pres float64) float64 {
	return DewpointFromVaporPressure(VaporPressureFromMixingRatio(mr, pres))
}

// RelativeHumidity returns the relative humidity (%) for the given
// temperature and dewpoint (°C). The result is capped at 100%.
func RelativeHumidity(tempC, dewpointC float64) float64 {
	rh := 100 * SaturationVaporPressure(dewpointC) / SaturationVaporPressure(tempC)
	return math.Min(rh, 100)
}
