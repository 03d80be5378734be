package atmo

import "math"

// DryAdiabaticTemperature transports a parcel temperature (°C) from
// startPres to endPres (hPa) along a constant-potential-temperature path
// (Poisson's equation). The relation is reversible, so it holds for both
// ascent and descent.
func DryAdiabaticTemperature(startPres, endPres, startTempC float64) float64 {
	t := (startTempC + KelvinOffset) * math.Pow(endPres/startPres, Kappa)
	return t - KelvinOffset
}

// SaturatedLapseRate returns dT/dp (°C/hPa) of a saturated parcel at the
// given pressure (hPa) and temperature (°C): the pseudoadiabatic lapse rate
// with latent heat release, which unlike the dry case has no closed-form
// integral and must be integrated numerically.
func SaturatedLapseRate(pres, tempC float64) float64 {
	t := tempC + KelvinOffset
	es := SaturationVaporPressure(tempC)
	rs := Epsilon * es / (pres - es) // kg/kg

	num := (RDry*t + LatentHeatVaporization*rs) / (pres * 100) // K/Pa numerator, p in Pa
	den := CpDry + LatentHeatVaporization*LatentHeatVaporization*rs*Epsilon/(RDry*t*t)

	return num / den * 100 // K/Pa -> °C/hPa
}
