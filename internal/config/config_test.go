package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "livraria.db", cfg.Database.Path)
	assert.False(t, cfg.Database.Echo)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, FormatText, cfg.Log.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoadRoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "livraria.yaml")

	cfg := DefaultConfig()
	cfg.Database.Path = "/var/lib/livraria/livraria.db"
	cfg.Database.Echo = true
	cfg.Log.Format = FormatJSON

	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(configPath, data, 0644))

	loaded, path, err := LoadFromPath(configPath)
	require.NoError(t, err)
	assert.Equal(t, configPath, path)
	assert.Equal(t, cfg, loaded)
}

func TestLoadAppliesDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "livraria.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("database:\n  echo: true\n"), 0644))

	cfg, _, err := LoadFromPath(configPath)
	require.NoError(t, err)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.True(t, cfg.Database.Echo)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, FormatText, cfg.Log.Format)
}

func TestLoadFromPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "database: [unclosed"},
		{"unknown level", "log:\n  level: loud\n"},
		{"unknown format", "log:\n  format: xml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, _, err := LoadFromPath(path)
			assert.Error(t, err)
		})
	}

	_, _, err := LoadFromPath(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadWithoutConfigFile(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, path, err := Load()
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.WriteFile(ConfigFileName, []byte("database:\n  path: shop.db\n"), 0644))

	cfg, path, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "shop.db", cfg.Database.Path)
	assert.Equal(t, ConfigFileName, filepath.Base(path))
	assert.True(t, filepath.IsAbs(path))
}

func TestFindConfigPathIgnoresDirectory(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.Mkdir(ConfigFileName, 0755))
	assert.Empty(t, FindConfigPath())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	log, err := LogConfig{Level: "debug", Format: FormatJSON}.NewLogger(&buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("table", "book").Debug("created table")
	assert.Contains(t, buf.String(), `"table":"book"`)

	_, err = LogConfig{Level: "verbose"}.NewLogger(&buf)
	assert.Error(t, err)

	_, err = LogConfig{Level: "info", Format: "xml"}.NewLogger(&buf)
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
