package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
engine:
  moisture-loss-fraction: 0.6
  process-steps: 80
presets:
  - name: custom-alps
    windward-pressure: 1013
    windward-temperature: 18
    windward-dewpoint: 12
    windward-mixing-ratio: 9
    summit-pressure: 500
    leeward-pressure: 1013
storage:
  sqlite:
    path: analyses.db
server:
  port: 8080
`

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestYAMLProviderLoadConfig(t *testing.T) {
	provider := NewYAMLProvider(writeTempConfig(t, sampleYAML))

	cfg, err := provider.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 0.6, cfg.Engine.MoistureLossFraction)
	assert.Equal(t, 80, cfg.Engine.ProcessSteps)
	require.Len(t, cfg.Presets, 1)
	assert.Equal(t, "custom-alps", cfg.Presets[0].Name)
	assert.Equal(t, 500.0, cfg.Presets[0].SummitPressure)
	require.NotNil(t, cfg.Storage.SQLite)
	assert.Equal(t, "analyses.db", cfg.Storage.SQLite.Path)
	assert.Nil(t, cfg.Storage.Postgres)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, provider.IsReadOnly())
}

func TestYAMLProviderPresetsIncludeMadeiraDefault(t *testing.T) {
	provider := NewYAMLProvider(writeTempConfig(t, sampleYAML))

	presets, err := provider.GetPresets()
	require.NoError(t, err)

	require.Len(t, presets, 2)
	assert.Equal(t, "madeira", presets[0].Name)
	assert.Equal(t, 400.0, presets[0].SummitPressure)
}

func TestYAMLProviderEmptyConfig(t *testing.T) {
	provider := NewYAMLProvider(writeTempConfig(t, ""))

	cfg, err := provider.LoadConfig()
	require.NoError(t, err)
	assert.Zero(t, cfg.Engine.MoistureLossFraction)

	presets, err := provider.GetPresets()
	require.NoError(t, err)
	require.Len(t, presets, 1)
	assert.Equal(t, "madeira", presets[0].Name)
}

func TestYAMLProviderMissingFile(t *testing.T) {
	provider := NewYAMLProvider(filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := provider.LoadConfig()
	assert.Error(t, err)
}
