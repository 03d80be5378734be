package config

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const sqliteConfigSchema = `
CREATE TABLE IF NOT EXISTS configs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS engine (
	config_id INTEGER PRIMARY KEY REFERENCES configs(id),
	moisture_loss_fraction REAL,
	process_steps INTEGER,
	max_iterations INTEGER,
	pressure_tolerance REAL
);
CREATE TABLE IF NOT EXISTS presets (
	config_id INTEGER NOT NULL REFERENCES configs(id),
	name TEXT NOT NULL,
	windward_pressure REAL NOT NULL,
	windward_temperature REAL NOT NULL,
	windward_dewpoint REAL NOT NULL,
	windward_mixing_ratio REAL NOT NULL,
	summit_pressure REAL NOT NULL,
	leeward_pressure REAL NOT NULL,
	PRIMARY KEY (config_id, name)
);
CREATE TABLE IF NOT EXISTS storage (
	config_id INTEGER PRIMARY KEY REFERENCES configs(id),
	backend TEXT NOT NULL,
	sqlite_path TEXT,
	postgres_connection_string TEXT
);
CREATE TABLE IF NOT EXISTS server (
	config_id INTEGER PRIMARY KEY REFERENCES configs(id),
	listen_addr TEXT,
	port INTEGER,
	cert TEXT,
	key TEXT
);
`

// SQLiteProvider implements ConfigProvider for SQLite database configuration
type SQLiteProvider struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteProvider creates a new SQLite configuration provider
func NewSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	if _, err := db.Exec(sqliteConfigSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create configuration schema: %w", err)
	}

	return &SQLiteProvider{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// LoadConfig loads the complete configuration from the SQLite database
func (s *SQLiteProvider) LoadConfig() (*ConfigData, error) {
	config := &ConfigData{}

	engine, err := s.GetEngine()
	if err != nil {
		return nil, fmt.Errorf("failed to load engine config: %w", err)
	}
	config.Engine = *engine

	presets, err := s.GetPresets()
	if err != nil {
		return nil, fmt.Errorf("failed to load presets: %w", err)
	}
	config.Presets = presets

	storage, err := s.GetStorageConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}
	config.Storage = *storage

	server, err := s.GetServerConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}
	config.Server = *server

	return config, nil
}

// GetEngine returns the engine parameter row from the database
func (s *SQLiteProvider) GetEngine() (*EngineData, error) {
	query := `
		SELECT moisture_loss_fraction, process_steps, max_iterations, pressure_tolerance
		FROM engine
		WHERE config_id = (SELECT id FROM configs WHERE name = 'default')
	`

	var engine EngineData
	var lossFraction, tolerance sql.NullFloat64
	var steps, iterations sql.NullInt64

	err := s.db.QueryRow(query).Scan(&lossFraction, &steps, &iterations, &tolerance)
	if err == sql.ErrNoRows {
		return &EngineData{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query engine config: %w", err)
	}

	if lossFraction.Valid {
		engine.MoistureLossFraction = lossFraction.Float64
	}
	if steps.Valid {
		engine.ProcessSteps = int(steps.Int64)
	}
	if iterations.Valid {
		engine.MaxIterations = int(iterations.Int64)
	}
	if tolerance.Valid {
		engine.PressureTolerance = tolerance.Float64
	}

	return &engine, nil
}

// GetPresets returns the scenario presets from the database, always
// including the built-in Madeira default.
func (s *SQLiteProvider) GetPresets() ([]PresetData, error) {
	query := `
		SELECT name, windward_pressure, windward_temperature, windward_dewpoint,
		       windward_mixing_ratio, summit_pressure, leeward_pressure
		FROM presets
		WHERE config_id = (SELECT id FROM configs WHERE name = 'default')
		ORDER BY name
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query presets: %w", err)
	}
	defer rows.Close()

	var presets []PresetData
	for rows.Next() {
		var p PresetData
		if err := rows.Scan(
			&p.Name, &p.WindwardPressure, &p.WindwardTemperature, &p.WindwardDewpoint,
			&p.WindwardMixingRatio, &p.SummitPressure, &p.LeewardPressure,
		); err != nil {
			return nil, fmt.Errorf("failed to scan preset row: %w", err)
		}
		presets = append(presets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return withDefaultPreset(presets), nil
}

// GetStorageConfig returns the storage section from the database
func (s *SQLiteProvider) GetStorageConfig() (*StorageData, error) {
	query := `
		SELECT backend, sqlite_path, postgres_connection_string
		FROM storage
		WHERE config_id = (SELECT id FROM configs WHERE name = 'default')
	`

	var backend string
	var sqlitePath, postgresConn sql.NullString

	err := s.db.QueryRow(query).Scan(&backend, &sqlitePath, &postgresConn)
	if err == sql.ErrNoRows {
		return &StorageData{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query storage config: %w", err)
	}

	storage := &StorageData{}
	switch backend {
	case "sqlite":
		if sqlitePath.Valid {
			storage.SQLite = &SQLiteData{Path: sqlitePath.String}
		}
	case "postgres":
		if postgresConn.Valid {
			storage.Postgres = &PostgresData{ConnectionString: postgresConn.String}
		}
	}

	return storage, nil
}

// GetServerConfig returns the REST server section from the database
func (s *SQLiteProvider) GetServerConfig() (*ServerData, error) {
	query := `
		SELECT listen_addr, port, cert, key
		FROM server
		WHERE config_id = (SELECT id FROM configs WHERE name = 'default')
	`

	var server ServerData
	var listenAddr, cert, key sql.NullString
	var port sql.NullInt64

	err := s.db.QueryRow(query).Scan(&listenAddr, &port, &cert, &key)
	if err == sql.ErrNoRows {
		return &ServerData{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query server config: %w", err)
	}

	if listenAddr.Valid {
		server.ListenAddr = listenAddr.String
	}
	if port.Valid {
		server.Port = int(port.Int64)
	}
	if cert.Valid {
		server.Cert = cert.String
	}
	if key.Valid {
		server.Key = key.String
	}

	return &server, nil
}

// SaveConfig writes a complete configuration into the database under the
// 'default' config name, creating the schema as needed and replacing any
// existing sections.
func (s *SQLiteProvider) SaveConfig(config *ConfigData) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT OR IGNORE INTO configs (name) VALUES ('default')`); err != nil {
		return fmt.Errorf("failed to create default config row: %w", err)
	}

	var configID int64
	if err := tx.QueryRow(`SELECT id FROM configs WHERE name = 'default'`).Scan(&configID); err != nil {
		return fmt.Errorf("failed to look up default config id: %w", err)
	}

	if _, err := tx.Exec(`
		INSERT OR REPLACE INTO engine (config_id, moisture_loss_fraction, process_steps, max_iterations, pressure_tolerance)
		VALUES (?, ?, ?, ?, ?)`,
		configID, config.Engine.MoistureLossFraction, config.Engine.ProcessSteps,
		config.Engine.MaxIterations, config.Engine.PressureTolerance,
	); err != nil {
		return fmt.Errorf("failed to save engine config: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM presets WHERE config_id = ?`, configID); err != nil {
		return fmt.Errorf("failed to clear presets: %w", err)
	}
	for _, p := range config.Presets {
		if _, err := tx.Exec(`
			INSERT INTO presets (config_id, name, windward_pressure, windward_temperature,
				windward_dewpoint, windward_mixing_ratio, summit_pressure, leeward_pressure)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			configID, p.Name, p.WindwardPressure, p.WindwardTemperature,
			p.WindwardDewpoint, p.WindwardMixingRatio, p.SummitPressure, p.LeewardPressure,
		); err != nil {
			return fmt.Errorf("failed to save preset %q: %w", p.Name, err)
		}
	}

	backend := ""
	var sqlitePath, postgresConn sql.NullString
	switch {
	case config.Storage.SQLite != nil:
		backend = "sqlite"
		sqlitePath = sql.NullString{String: config.Storage.SQLite.Path, Valid: true}
	case config.Storage.Postgres != nil:
		backend = "postgres"
		postgresConn = sql.NullString{String: config.Storage.Postgres.ConnectionString, Valid: true}
	}
	if backend != "" {
		if _, err := tx.Exec(`
			INSERT OR REPLACE INTO storage (config_id, backend, sqlite_path, postgres_connection_string)
			VALUES (?, ?, ?, ?)`,
			configID, backend, sqlitePath, postgresConn,
		); err != nil {
			return fmt.Errorf("failed to save storage config: %w", err)
		}
	}

	if _, err := tx.Exec(`
		INSERT OR REPLACE INTO server (config_id, listen_addr, port, cert, key)
		VALUES (?, ?, ?, ?, ?)`,
		configID, config.Server.ListenAddr, config.Server.Port, config.Server.Cert, config.Server.Key,
	); err != nil {
		return fmt.Errorf("failed to save server config: %w", err)
	}

	return tx.Commit()
}

// IsReadOnly returns false; SQLite configurations can be managed in place
func (s *SQLiteProvider) IsReadOnly() bool {
	return false
}

// Close closes the database connection
func (s *SQLiteProvider) Close() error {
	return s.db.Close()
}
