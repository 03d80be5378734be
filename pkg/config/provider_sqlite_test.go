package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestProvider(t *testing.T) *SQLiteProvider {
	t.Helper()
	provider, err := NewSQLiteProvider(filepath.Join(t.TempDir(), "config.db"))
	require.NoError(t, err)
	t.Cleanup(func() { provider.Close() })
	return provider
}

func TestSQLiteProviderSaveLoadRoundTrip(t *testing.T) {
	provider := openTestProvider(t)

	saved := &ConfigData{
		Engine: EngineData{
			MoistureLossFraction: 0.6,
			ProcessSteps:         80,
		},
		Presets: []PresetData{
			{
				Name:                "alps",
				WindwardPressure:    950,
				WindwardTemperature: 10,
				WindwardDewpoint:    5,
				WindwardMixingRatio: 6,
				SummitPressure:      600,
				LeewardPressure:     950,
			},
		},
		Storage: StorageData{
			SQLite: &SQLiteData{Path: "analyses.db"},
		},
		Server: ServerData{
			ListenAddr: "127.0.0.1",
			Port:       8080,
		},
	}
	require.NoError(t, provider.SaveConfig(saved))

	loaded, err := provider.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 0.6, loaded.Engine.MoistureLossFraction)
	assert.Equal(t, 80, loaded.Engine.ProcessSteps)

	require.NotNil(t, loaded.Storage.SQLite)
	assert.Equal(t, "analyses.db", loaded.Storage.SQLite.Path)

	assert.Equal(t, "127.0.0.1", loaded.Server.ListenAddr)
	assert.Equal(t, 8080, loaded.Server.Port)

	// The stored preset plus the built-in default.
	names := make([]string, 0, len(loaded.Presets))
	for _, p := range loaded.Presets {
		names = append(names, p.Name)
	}
	assert.Contains(t, names, "alps")
	assert.Contains(t, names, "madeira")
}

func TestSQLiteProviderEmptyDatabase(t *testing.T) {
	provider := openTestProvider(t)

	loaded, err := provider.LoadConfig()
	require.NoError(t, err)

	assert.Zero(t, loaded.Engine.MoistureLossFraction)
	assert.Nil(t, loaded.Storage.SQLite)
	assert.Nil(t, loaded.Storage.Postgres)

	// The built-in default preset is always present.
	require.NotEmpty(t, loaded.Presets)
	assert.Equal(t, "madeira", loaded.Presets[0].Name)
}

func TestSQLiteProviderIsWritable(t *testing.T) {
	provider := openTestProvider(t)
	assert.False(t, provider.IsReadOnly())
}
