package foehn

// Params holds the tunable parameters of the process chain. The moisture
// retention and descent-LCL rules are modeling simplifications inherited
// from the reference analysis, not physical constants; both are exposed
// here so callers can override them. Params is passed by value and never
// mutated by the engine.
type Params struct {
	// MoistureLossFraction is the fraction of the windward mixing ratio
	// assumed to precipitate out by the time the parcel reaches the
	// summit. A simplifying assumption (default 0.5); a rigorous model
	// would track saturation through the ascent instead. The zero value
	// means unset and selects the default, so a lossless ascent cannot
	// be expressed; use a small positive fraction instead.
	MoistureLossFraction float64 `json:"moisture_loss_fraction" yaml:"moisture-loss-fraction"`

	// ProcessSteps is the number of pressure levels sampled along each
	// process segment. The saturated segments are integrated over these
	// steps, so fewer than MinProcessSteps would let truncation error
	// exceed 0.3°C over a 600 hPa span. Values above MaxProcessSteps are
	// clamped; the samples are allocated per request, so the bound caps
	// what an API caller can make the engine allocate.
	ProcessSteps int `json:"process_steps" yaml:"process-steps"`

	// MaxIterations bounds the LCL root-find. Clamped to
	// MaxIterationsLimit.
	MaxIterations int `json:"max_iterations" yaml:"max-iterations"`

	// PressureTolerance is the LCL convergence tolerance in hPa.
	PressureTolerance float64 `json:"pressure_tolerance" yaml:"pressure-tolerance"`
}

const (
	DefaultMoistureLossFraction = 0.5
	DefaultProcessSteps         = 50
	MinProcessSteps             = 20
	MaxProcessSteps             = 10000
	DefaultMaxIterations        = 100
	MaxIterationsLimit          = 10000
	DefaultPressureTolerance    = 0.05
)

// DefaultParams returns the parameter set matching the reference analysis.
func DefaultParams() Params {
	return Params{
		MoistureLossFraction: DefaultMoistureLossFraction,
		ProcessSteps:         DefaultProcessSteps,
		MaxIterations:        DefaultMaxIterations,
		PressureTolerance:    DefaultPressureTolerance,
	}
}

// normalized returns a copy with zero or out-of-range fields replaced by
// their defaults, so a partially filled Params from config or an API call
// is always usable.
func (p Params) normalized() Params {
	if p.MoistureLossFraction <= 0 || p.MoistureLossFraction > 1 {
		p.MoistureLossFraction = DefaultMoistureLossFraction
	}
	if p.ProcessSteps < MinProcessSteps {
		p.ProcessSteps = DefaultProcessSteps
	}
	if p.ProcessSteps > MaxProcessSteps {
		p.ProcessSteps = MaxProcessSteps
	}
	if p.MaxIterations <= 0 {
		p.MaxIterations = DefaultMaxIterations
	}
	if p.MaxIterations > MaxIterationsLimit {
		p.MaxIterations = MaxIterationsLimit
	}
	if p.PressureTolerance <= 0 {
		p.PressureTolerance = DefaultPressureTolerance
	}
	return p
}
