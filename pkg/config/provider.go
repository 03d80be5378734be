// Package config loads the service configuration: engine parameters,
// scenario presets, storage backends and the REST server. Two sources are
// supported, YAML files and SQLite databases, behind a common provider
// interface.
package config

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get specific configuration sections
	GetEngine() (*EngineData, error)
	GetPresets() ([]PresetData, error)
	GetStorageConfig() (*StorageData, error)
	GetServerConfig() (*ServerData, error)

	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Engine  EngineData   `json:"engine,omitempty"`
	Presets []PresetData `json:"presets,omitempty"`
	Storage StorageData  `json:"storage,omitempty"`
	Server  ServerData   `json:"server,omitempty"`
}

// EngineData holds the tunable parameters of the process engine. Zero
// fields fall back to the engine defaults.
type EngineData struct {
	MoistureLossFraction float64 `json:"moisture_loss_fraction,omitempty"`
	ProcessSteps         int     `json:"process_steps,omitempty"`
	MaxIterations        int     `json:"max_iterations,omitempty"`
	PressureTolerance    float64 `json:"pressure_tolerance,omitempty"`
}

// PresetData is a named input scenario selectable from the API and CLI.
type PresetData struct {
	Name                string  `json:"name"`
	WindwardPressure    float64 `json:"windward_pressure"`
	WindwardTemperature float64 `json:"windward_temperature"`
	WindwardDewpoint    float64 `json:"windward_dewpoint"`
	WindwardMixingRatio float64 `json:"windward_mixing_ratio"`
	SummitPressure      float64 `json:"summit_pressure"`
	LeewardPressure     float64 `json:"leeward_pressure"`
}

// StorageData holds the configuration for the analysis store. At most one
// backend is active.
type StorageData struct {
	SQLite   *SQLiteData   `json:"sqlite,omitempty"`
	Postgres *PostgresData `json:"postgres,omitempty"`
}

type SQLiteData struct {
	Path string `json:"path"`
}

type PostgresData struct {
	ConnectionString string `json:"connection_string"`
}

// ServerData holds the REST server configuration.
type ServerData struct {
	ListenAddr string `json:"listen_addr,omitempty"`
	Port       int    `json:"port,omitempty"`
	Cert       string `json:"cert,omitempty"`
	Key        string `json:"key,omitempty"`
}

// MadeiraPreset is the built-in default scenario, always available even
// with an empty configuration.
func MadeiraPreset() PresetData {
	return PresetData{
		Name:                "madeira",
		WindwardPressure:    1000,
		WindwardTemperature: 20,
		WindwardDewpoint:    10.5,
		WindwardMixingRatio: 8,
		SummitPressure:      400,
		LeewardPressure:     1000,
	}
}
