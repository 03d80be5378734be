// Package database persists analysis runs. Two backends are supported:
// SQLite for single-node deployments and Postgres (via GORM) for shared
// ones, mirroring the configuration split in pkg/config.
package database

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/madeira-wx/foehnwx/pkg/config"
	"github.com/madeira-wx/foehnwx/pkg/foehn"
)

// AnalysisRecord is one stored analysis run: the six input scalars and the
// derived results, flattened to columns.
type AnalysisRecord struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`

	WindwardPressure    float64 `gorm:"column:windward_pressure" json:"windward_pressure"`
	WindwardTemperature float64 `gorm:"column:windward_temperature" json:"windward_temperature"`
	WindwardDewpoint    float64 `gorm:"column:windward_dewpoint" json:"windward_dewpoint"`
	WindwardMixingRatio float64 `gorm:"column:windward_mixing_ratio" json:"windward_mixing_ratio"`
	SummitPressure      float64 `gorm:"column:summit_pressure" json:"summit_pressure"`
	LeewardPressure     float64 `gorm:"column:leeward_pressure" json:"leeward_pressure"`

	// Engine parameters the run was computed with; reports regenerated
	// from the record must use these, not the server defaults.
	MoistureLossFraction float64 `gorm:"column:moisture_loss_fraction" json:"moisture_loss_fraction"`
	ProcessSteps         int     `gorm:"column:process_steps" json:"process_steps"`
	MaxIterations        int     `gorm:"column:max_iterations" json:"max_iterations"`
	PressureTolerance    float64 `gorm:"column:pressure_tolerance" json:"pressure_tolerance"`

	LCLPressure         float64 `gorm:"column:lcl_pressure" json:"lcl_pressure"`
	LCLTemperature      float64 `gorm:"column:lcl_temperature" json:"lcl_temperature"`
	SummitTemperature   float64 `gorm:"column:summit_temperature" json:"summit_temperature"`
	LeewardTemperature  float64 `gorm:"column:leeward_temperature" json:"leeward_temperature"`
	LeewardDewpoint     float64 `gorm:"column:leeward_dewpoint" json:"leeward_dewpoint"`
	TemperatureIncrease float64 `gorm:"column:temperature_increase" json:"temperature_increase"`
	RelativeHumidity    float64 `gorm:"column:relative_humidity" json:"relative_humidity"`
	MoistureLoss        float64 `gorm:"column:moisture_loss" json:"moisture_loss"`

	WarmingRisk string `gorm:"column:warming_risk" json:"warming_risk"`
	DrynessRisk string `gorm:"column:dryness_risk" json:"dryness_risk"`
}

// TableName implements the GORM table-name override
func (AnalysisRecord) TableName() string {
	return "analyses"
}

// NewRecord flattens one analysis into a record with a fresh id.
func NewRecord(input foehn.Input, profile *foehn.Profile, metrics foehn.Metrics, risk foehn.Risk) *AnalysisRecord {
	return &AnalysisRecord{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),

		WindwardPressure:    input.WindwardPressure,
		WindwardTemperature: input.WindwardTemperature,
		WindwardDewpoint:    input.WindwardDewpoint,
		WindwardMixingRatio: input.WindwardMixingRatio,
		SummitPressure:      input.SummitPressure,
		LeewardPressure:     input.LeewardPressure,

		MoistureLossFraction: profile.Params.MoistureLossFraction,
		ProcessSteps:         profile.Params.ProcessSteps,
		MaxIterations:        profile.Params.MaxIterations,
		PressureTolerance:    profile.Params.PressureTolerance,

		LCLPressure:         profile.AscentLCL.Pressure,
		LCLTemperature:      profile.AscentLCL.Temperature,
		SummitTemperature:   profile.Summit.Temperature,
		LeewardTemperature:  profile.Leeward.Temperature,
		LeewardDewpoint:     profile.Leeward.Dewpoint,
		TemperatureIncrease: metrics.TemperatureIncrease,
		RelativeHumidity:    metrics.RelativeHumidity,
		MoistureLoss:        metrics.MoistureLoss,

		WarmingRisk: string(risk.Warming),
		DrynessRisk: string(risk.Dryness),
	}
}

// Input reconstructs the engine input from a stored record, so reports can
// be regenerated on demand.
func (r *AnalysisRecord) Input() foehn.Input {
	return foehn.Input{
		WindwardPressure:    r.WindwardPressure,
		WindwardTemperature: r.WindwardTemperature,
		WindwardDewpoint:    r.WindwardDewpoint,
		WindwardMixingRatio: r.WindwardMixingRatio,
		SummitPressure:      r.SummitPressure,
		LeewardPressure:     r.LeewardPressure,
	}
}

// Params reconstructs the engine parameters from a stored record.
func (r *AnalysisRecord) Params() foehn.Params {
	return foehn.Params{
		MoistureLossFraction: r.MoistureLossFraction,
		ProcessSteps:         r.ProcessSteps,
		MaxIterations:        r.MaxIterations,
		PressureTolerance:    r.PressureTolerance,
	}
}

// Store is the persistence interface consumed by the REST controller.
type Store interface {
	SaveAnalysis(ctx context.Context, rec *AnalysisRecord) error
	GetAnalysis(ctx context.Context, id string) (*AnalysisRecord, error)
	ListAnalyses(ctx context.Context, limit int) ([]AnalysisRecord, error)
	Close() error
}

// NewStore opens the backend selected in the storage configuration, or
// returns nil when none is configured (analyses are then computed but not
// retained).
func NewStore(cfg *config.StorageData) (Store, error) {
	switch {
	case cfg == nil:
		return nil, nil
	case cfg.SQLite != nil:
		return NewSQLiteStore(cfg.SQLite.Path)
	case cfg.Postgres != nil:
		return NewPostgresStore(cfg.Postgres.ConnectionString)
	default:
		return nil, nil
	}
}
