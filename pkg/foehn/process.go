package foehn

import (
	"gonum.org/v1/gonum/floats"

	"github.com/madeira-wx/foehnwx/pkg/atmo"
)

// pressureGrid returns n evenly spaced pressure levels from start to end
// inclusive. Works in either direction.
func pressureGrid(start, end float64, n int) []float64 {
	grid := make([]float64, n)
	floats.Span(grid, start, end)
	return grid
}

// DryProcess moves a parcel from startPres to endPres (hPa) along the dry
// adiabat, sampling the path for rendering. The underlying relation is
// closed-form and reversible, so the process holds for ascent and descent
// alike; equal pressures yield the identity.
func DryProcess(startPres, endPres, startTempC float64, params Params) Process {
	params = params.normalized()

	proc := Process{
		Kind:          ProcessDry,
		StartPressure: startPres,
		EndPressure:   endPres,
		StartTemp:     startTempC,
	}

	if startPres == endPres {
		proc.EndTemp = startTempC
		proc.Samples = []Sample{{Pressure: startPres, Temperature: startTempC}}
		return proc
	}

	grid := pressureGrid(startPres, endPres, params.ProcessSteps)
	proc.Samples = make([]Sample, len(grid))
	for i, p := range grid {
		proc.Samples[i] = Sample{
			Pressure:    p,
			Temperature: atmo.DryAdiabaticTemperature(startPres, p, startTempC),
		}
	}
	proc.EndTemp = proc.Samples[len(proc.Samples)-1].Temperature
	return proc
}

// MoistProcess moves a saturated parcel from startPres to endPres (hPa)
// along the pseudoadiabat. The saturated lapse rate depends on pressure
// and temperature, so the path is integrated step by step (fourth-order
// Runge-Kutta over the sample grid). Direction-agnostic; equal pressures
// yield the identity.
func MoistProcess(startPres, endPres, startTempC float64, params Params) Process {
	params = params.normalized()

	proc := Process{
		Kind:          ProcessMoist,
		StartPressure: startPres,
		EndPressure:   endPres,
		StartTemp:     startTempC,
	}

	if startPres == endPres {
		proc.EndTemp = startTempC
		proc.Samples = []Sample{{Pressure: startPres, Temperature: startTempC}}
		return proc
	}

	grid := pressureGrid(startPres, endPres, params.ProcessSteps)
	proc.Samples = make([]Sample, len(grid))
	proc.Samples[0] = Sample{Pressure: grid[0], Temperature: startTempC}

	t := startTempC
	for i := 1; i < len(grid); i++ {
		t = rk4Step(grid[i-1], t, grid[i]-grid[i-1])
		proc.Samples[i] = Sample{Pressure: grid[i], Temperature: t}
	}
	proc.EndTemp = t
	return proc
}

// rk4Step advances the saturated-parcel temperature from pressure p by a
// pressure step h (hPa, signed).
func rk4Step(p, t, h float64) float64 {
	k1 := atmo.SaturatedLapseRate(p, t)
	k2 := atmo.SaturatedLapseRate(p+h/2, t+h/2*k1)
	k3 := atmo.SaturatedLapseRate(p+h/2, t+h/2*k2)
	k4 := atmo.SaturatedLapseRate(p+h, t+h*k3)
	return t + h/6*(k1+2*k2+2*k3+k4)
}
