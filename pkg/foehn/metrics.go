package foehn

import "github.com/madeira-wx/foehnwx/pkg/atmo"

// Metrics are the scalar Föhn-effect figures derived from a profile's
// terminal points.
type Metrics struct {
	TemperatureIncrease  float64 `json:"temperature_increase"`   // °C, leeward minus windward
	LeewardTemperature   float64 `json:"leeward_temperature"`    // °C
	LeewardDewpoint      float64 `json:"leeward_dewpoint"`       // °C
	RelativeHumidity     float64 `json:"relative_humidity"`      // %, at the leeward surface
	MoistureLoss         float64 `json:"moisture_loss"`          // g/kg
	MoistureLossFraction float64 `json:"moisture_loss_fraction"` // 0..1
}

// Metrics derives the Föhn metrics from the profile. The only fallible
// path is the loss-fraction denominator: a windward mixing ratio of zero
// is rejected as invalid input.
func (p *Profile) Metrics() (Metrics, error) {
	if p.Windward.MixingRatio == 0 {
		return Metrics{}, &InvalidInputError{Field: "windward_mixing_ratio", Reason: "must be non-zero to derive moisture loss"}
	}

	loss := p.Windward.MixingRatio - p.Summit.MixingRatio
	return Metrics{
		TemperatureIncrease:  p.Leeward.Temperature - p.Windward.Temperature,
		LeewardTemperature:   p.Leeward.Temperature,
		LeewardDewpoint:      p.Leeward.Dewpoint,
		RelativeHumidity:     atmo.RelativeHumidity(p.Leeward.Temperature, p.Leeward.Dewpoint),
		MoistureLoss:         loss,
		MoistureLossFraction: loss / p.Windward.MixingRatio,
	}, nil
}

// RiskLevel bands a metric for presentation.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskExtreme  RiskLevel = "extreme"
)

// Risk is the qualitative assessment shown alongside the metrics: the
// wildfire/heat-stress band from the warming and the dryness band from the
// leeward relative humidity.
type Risk struct {
	Warming        RiskLevel `json:"warming"`
	WarmingSummary string    `json:"warming_summary"`
	Dryness        RiskLevel `json:"dryness"`
	DrynessSummary string    `json:"dryness_summary"`
}

// AssessRisk bands the metrics using the thresholds of the reference
// analysis: warming above 5/10/15°C and leeward humidity below 30/20%.
func AssessRisk(m Metrics) Risk {
	var r Risk

	switch {
	case m.TemperatureIncrease > 15:
		r.Warming = RiskExtreme
		r.WarmingSummary = "very high wildfire danger"
	case m.TemperatureIncrease > 10:
		r.Warming = RiskHigh
		r.WarmingSummary = "elevated wildfire and heat stress potential"
	case m.TemperatureIncrease > 5:
		r.Warming = RiskModerate
		r.WarmingSummary = "notable temperature anomaly"
	default:
		r.Warming = RiskLow
		r.WarmingSummary = "normal conditions"
	}

	switch {
	case m.RelativeHumidity < 20:
		r.Dryness = RiskExtreme
		r.DrynessSummary = "critical fire weather conditions"
	case m.RelativeHumidity < 30:
		r.Dryness = RiskHigh
		r.DrynessSummary = "high evapotranspiration rate"
	default:
		r.Dryness = RiskLow
		r.DrynessSummary = "normal humidity levels"
	}

	return r
}
