package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
	config   *ConfigData
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// yamlConfig mirrors ConfigData with YAML tags.
type yamlConfig struct {
	Engine struct {
		MoistureLossFraction float64 `yaml:"moisture-loss-fraction,omitempty"`
		ProcessSteps         int     `yaml:"process-steps,omitempty"`
		MaxIterations        int     `yaml:"max-iterations,omitempty"`
		PressureTolerance    float64 `yaml:"pressure-tolerance,omitempty"`
	} `yaml:"engine,omitempty"`
	Presets []struct {
		Name                string  `yaml:"name"`
		WindwardPressure    float64 `yaml:"windward-pressure"`
		WindwardTemperature float64 `yaml:"windward-temperature"`
		WindwardDewpoint    float64 `yaml:"windward-dewpoint"`
		WindwardMixingRatio float64 `yaml:"windward-mixing-ratio"`
		SummitPressure      float64 `yaml:"summit-pressure"`
		LeewardPressure     float64 `yaml:"leeward-pressure"`
	} `yaml:"presets,omitempty"`
	Storage struct {
		SQLite *struct {
			Path string `yaml:"path"`
		} `yaml:"sqlite,omitempty"`
		Postgres *struct {
			ConnectionString string `yaml:"connection-string"`
		} `yaml:"postgres,omitempty"`
	} `yaml:"storage,omitempty"`
	Server struct {
		ListenAddr string `yaml:"listen-addr,omitempty"`
		Port       int    `yaml:"port,omitempty"`
		Cert       string `yaml:"cert,omitempty"`
		Key        string `yaml:"key,omitempty"`
	} `yaml:"server,omitempty"`
}

// LoadConfig loads the complete configuration from the YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	raw, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(raw, &yc); err != nil {
		return nil, err
	}

	cfg := &ConfigData{
		Engine: EngineData{
			MoistureLossFraction: yc.Engine.MoistureLossFraction,
			ProcessSteps:         yc.Engine.ProcessSteps,
			MaxIterations:        yc.Engine.MaxIterations,
			PressureTolerance:    yc.Engine.PressureTolerance,
		},
		Server: ServerData{
			ListenAddr: yc.Server.ListenAddr,
			Port:       yc.Server.Port,
			Cert:       yc.Server.Cert,
			Key:        yc.Server.Key,
		},
	}

	for _, p := range yc.Presets {
		cfg.Presets = append(cfg.Presets, PresetData{
			Name:                p.Name,
			WindwardPressure:    p.WindwardPressure,
			WindwardTemperature: p.WindwardTemperature,
			WindwardDewpoint:    p.WindwardDewpoint,
			WindwardMixingRatio: p.WindwardMixingRatio,
			SummitPressure:      p.SummitPressure,
			LeewardPressure:     p.LeewardPressure,
		})
	}

	if yc.Storage.SQLite != nil {
		cfg.Storage.SQLite = &SQLiteData{Path: yc.Storage.SQLite.Path}
	}
	if yc.Storage.Postgres != nil {
		cfg.Storage.Postgres = &PostgresData{ConnectionString: yc.Storage.Postgres.ConnectionString}
	}

	y.config = cfg
	return cfg, nil
}

func (y *YAMLProvider) loaded() (*ConfigData, error) {
	if y.config != nil {
		return y.config, nil
	}
	return y.LoadConfig()
}

// GetEngine returns the engine parameter section
func (y *YAMLProvider) GetEngine() (*EngineData, error) {
	cfg, err := y.loaded()
	if err != nil {
		return nil, err
	}
	return &cfg.Engine, nil
}

// GetPresets returns the configured scenario presets, always including the
// built-in Madeira default.
func (y *YAMLProvider) GetPresets() ([]PresetData, error) {
	cfg, err := y.loaded()
	if err != nil {
		return nil, err
	}
	return withDefaultPreset(cfg.Presets), nil
}

// GetStorageConfig returns the storage section
func (y *YAMLProvider) GetStorageConfig() (*StorageData, error) {
	cfg, err := y.loaded()
	if err != nil {
		return nil, err
	}
	return &cfg.Storage, nil
}

// GetServerConfig returns the REST server section
func (y *YAMLProvider) GetServerConfig() (*ServerData, error) {
	cfg, err := y.loaded()
	if err != nil {
		return nil, err
	}
	return &cfg.Server, nil
}

// IsReadOnly returns true; YAML files are not edited at runtime
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for YAML providers
func (y *YAMLProvider) Close() error {
	return nil
}

// withDefaultPreset prepends the Madeira preset unless the configuration
// overrides a preset of the same name.
func withDefaultPreset(presets []PresetData) []PresetData {
	for _, p := range presets {
		if p.Name == "madeira" {
			return presets
		}
	}
	return append([]PresetData{MadeiraPreset()}, presets...)
}
