package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS analyses (
	id TEXT PRIMARY KEY,
	created_at TIMESTAMP NOT NULL,
	windward_pressure REAL NOT NULL,
	windward_temperature REAL NOT NULL,
	windward_dewpoint REAL NOT NULL,
	windward_mixing_ratio REAL NOT NULL,
	summit_pressure REAL NOT NULL,
	leeward_pressure REAL NOT NULL,
	moisture_loss_fraction REAL NOT NULL,
	process_steps INTEGER NOT NULL,
	max_iterations INTEGER NOT NULL,
	pressure_tolerance REAL NOT NULL,
	lcl_pressure REAL NOT NULL,
	lcl_temperature REAL NOT NULL,
	summit_temperature REAL NOT NULL,
	leeward_temperature REAL NOT NULL,
	leeward_dewpoint REAL NOT NULL,
	temperature_increase REAL NOT NULL,
	relative_humidity REAL NOT NULL,
	moisture_loss REAL NOT NULL,
	warming_risk TEXT NOT NULL,
	dryness_risk TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);
`

// SQLiteStore persists analyses in a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database and ensures the schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create analyses schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// SaveAnalysis inserts one analysis record
func (s *SQLiteStore) SaveAnalysis(ctx context.Context, rec *AnalysisRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO analyses (
			id, created_at,
			windward_pressure, windward_temperature, windward_dewpoint,
			windward_mixing_ratio, summit_pressure, leeward_pressure,
			moisture_loss_fraction, process_steps, max_iterations, pressure_tolerance,
			lcl_pressure, lcl_temperature, summit_temperature,
			leeward_temperature, leeward_dewpoint, temperature_increase,
			relative_humidity, moisture_loss, warming_risk, dryness_risk
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.CreatedAt,
		rec.WindwardPressure, rec.WindwardTemperature, rec.WindwardDewpoint,
		rec.WindwardMixingRatio, rec.SummitPressure, rec.LeewardPressure,
		rec.MoistureLossFraction, rec.ProcessSteps, rec.MaxIterations, rec.PressureTolerance,
		rec.LCLPressure, rec.LCLTemperature, rec.SummitTemperature,
		rec.LeewardTemperature, rec.LeewardDewpoint, rec.TemperatureIncrease,
		rec.RelativeHumidity, rec.MoistureLoss, rec.WarmingRisk, rec.DrynessRisk,
	)
	return err
}

// GetAnalysis fetches one analysis record by id
func (s *SQLiteStore) GetAnalysis(ctx context.Context, id string) (*AnalysisRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at,
		       windward_pressure, windward_temperature, windward_dewpoint,
		       windward_mixing_ratio, summit_pressure, leeward_pressure,
		       moisture_loss_fraction, process_steps, max_iterations, pressure_tolerance,
		       lcl_pressure, lcl_temperature, summit_temperature,
		       leeward_temperature, leeward_dewpoint, temperature_increase,
		       relative_humidity, moisture_loss, warming_risk, dryness_risk
		FROM analyses WHERE id = ?`, id)

	return scanRecord(row)
}

// ListAnalyses returns the most recent analyses, newest first
func (s *SQLiteStore) ListAnalyses(ctx context.Context, limit int) ([]AnalysisRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at,
		       windward_pressure, windward_temperature, windward_dewpoint,
		       windward_mixing_ratio, summit_pressure, leeward_pressure,
		       moisture_loss_fraction, process_steps, max_iterations, pressure_tolerance,
		       lcl_pressure, lcl_temperature, summit_temperature,
		       leeward_temperature, leeward_dewpoint, temperature_increase,
		       relative_humidity, moisture_loss, warming_risk, dryness_risk
		FROM analyses ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []AnalysisRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, *rec)
	}
	return recs, rows.Err()
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*AnalysisRecord, error) {
	var rec AnalysisRecord
	err := row.Scan(
		&rec.ID, &rec.CreatedAt,
		&rec.WindwardPressure, &rec.WindwardTemperature, &rec.WindwardDewpoint,
		&rec.WindwardMixingRatio, &rec.SummitPressure, &rec.LeewardPressure,
		&rec.MoistureLossFraction, &rec.ProcessSteps, &rec.MaxIterations, &rec.PressureTolerance,
		&rec.LCLPressure, &rec.LCLTemperature, &rec.SummitTemperature,
		&rec.LeewardTemperature, &rec.LeewardDewpoint, &rec.TemperatureIncrease,
		&rec.RelativeHumidity, &rec.MoistureLoss, &rec.WarmingRisk, &rec.DrynessRisk,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
