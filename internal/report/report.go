// Package report formats a computed Föhn analysis as a plain-text report
// or as tabular CSV data. Formatting only; all numbers come from the
// engine.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/madeira-wx/foehnwx/pkg/foehn"
)

// WriteText writes the analysis report for one run.
func WriteText(w io.Writer, profile *foehn.Profile, metrics foehn.Metrics, generated time.Time) error {
	risk := foehn.AssessRisk(metrics)

	intensity := "a moderate"
	if metrics.TemperatureIncrease > 10 {
		intensity = "an extreme"
	}

	_, err := fmt.Fprintf(w, `FÖHN EFFECT ANALYSIS REPORT
Generated: %s

INPUT PARAMETERS
================
Windward Side:
- Pressure: %.0f hPa
- Temperature: %.1f°C
- Dewpoint: %.1f°C
- Mixing Ratio: %.1f g/kg

Mountain Profile:
- Summit Pressure: %.0f hPa

RESULTS
=======
Orographic Lifting:
- LCL (Cloud Base): %.0f hPa, %.1f°C
- Summit: %.0f hPa, %.1f°C
- LCL (Descent): %.0f hPa, %.1f°C

Leeward Side (Föhn):
- Temperature: %.1f°C
- Dewpoint: %.1f°C
- Relative Humidity: %.1f%%

FÖHN EFFECT METRICS
===================
- Temperature Increase: %+.1f°C
- Moisture Loss: %.1f g/kg (%.0f%%)

RISK ASSESSMENT
===============
- Warming: %s (%s)
- Dryness: %s (%s)

INTERPRETATION
==============
This analysis demonstrates %s Föhn effect
with significant warming and drying on the leeward side.
`,
		generated.Format(time.RFC1123),
		profile.Windward.Pressure,
		profile.Windward.Temperature,
		profile.Windward.Dewpoint,
		profile.Windward.MixingRatio,
		profile.Summit.Pressure,
		profile.AscentLCL.Pressure,
		profile.AscentLCL.Temperature,
		profile.Summit.Pressure,
		profile.Summit.Temperature,
		profile.DescentLCL.Pressure,
		profile.DescentLCL.Temperature,
		metrics.LeewardTemperature,
		metrics.LeewardDewpoint,
		metrics.RelativeHumidity,
		metrics.TemperatureIncrease,
		metrics.MoistureLoss,
		metrics.MoistureLossFraction*100,
		risk.Warming, risk.WarmingSummary,
		risk.Dryness, risk.DrynessSummary,
		intensity,
	)
	return err
}
