package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv(logLevelEnv, "")
	t.Setenv(dataDirEnv, "")

	explorerConfig, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), explorerConfig)
	assert.Equal(t, ',', explorerConfig.Delimiter())
}

func TestLoadConfigFileKeepsDefaultsForMissingKeys(t *testing.T) {
	t.Setenv(logLevelEnv, "")
	t.Setenv(dataDirEnv, "")
	path := writeConfig(t, `
data_dir: /srv/bikeshare
page_size: 10
csv_delimiter: ";"
columns:
  duration: Duration
`)

	explorerConfig, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/bikeshare", explorerConfig.DataDir)
	assert.Equal(t, 10, explorerConfig.PageSize)
	assert.Equal(t, ';', explorerConfig.Delimiter())
	assert.Equal(t, "Duration", explorerConfig.Columns.Duration)
	assert.Equal(t, "Start Time", explorerConfig.Columns.StartTime)
	assert.Equal(t, defaultLogLevel, explorerConfig.LogLevel)
	assert.Equal(t, []string{"yes", "y"}, explorerConfig.AffirmativeAnswers)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv(logLevelEnv, "debug")
	t.Setenv(dataDirEnv, "/env/data")
	path := writeConfig(t, "log_level: error\ndata_dir: /file/data\n")

	explorerConfig, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", explorerConfig.LogLevel)
	assert.Equal(t, "/env/data", explorerConfig.DataDir)
}

func TestLoadConfigShippedFile(t *testing.T) {
	t.Setenv(logLevelEnv, "")
	t.Setenv(dataDirEnv, "")

	explorerConfig, err := LoadConfig("config.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), explorerConfig)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Setenv(logLevelEnv, "")
	t.Setenv(dataDirEnv, "")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "page_size: [1"))
	require.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "page_size: -3\n"))
	require.ErrorIs(t, err, ErrInvalidPageSize)

	_, err = LoadConfig(writeConfig(t, "csv_delimiter: \"::\"\n"))
	require.ErrorIs(t, err, ErrInvalidDelimiter)
}
