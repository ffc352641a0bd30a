package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigOrdered_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	cfg := DefaultConfig()
	cfg.Hooks.Dark = []string{"gsettings set org.gnome.desktop.interface gtk-theme Adwaita-dark"}

	require.NoError(t, WriteConfigOrdered(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# darkwatch configuration")
	assert.Contains(t, string(data), "[portal]")

	var decoded Config
	require.NoError(t, toml.Unmarshal(data, &decoded))
	assert.Equal(t, cfg.Hooks.Dark, decoded.Hooks.Dark)
	assert.Equal(t, cfg.Portal, decoded.Portal)
}

func TestWriteConfigOrdered_NilConfig(t *testing.T) {
	assert.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "x.toml")))
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"color_scheme"`)
	assert.Contains(t, s, `"poll_interval_ms"`)
	assert.Contains(t, s, `"prefer-dark"`)
}

func TestInitConfigFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "darkwatch")
	path := filepath.Join(dir, configFileName)

	require.NoError(t, InitConfigFile(path, false))
	assert.FileExists(t, path)
	assert.FileExists(t, filepath.Join(dir, schemaFileName))

	err := InitConfigFile(path, false)
	require.ErrorIs(t, err, ErrConfigExists)

	require.NoError(t, os.WriteFile(path, []byte("garbage"), filePerm))
	require.NoError(t, InitConfigFile(path, true))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[appearance]")
}

func TestSchemaProvider(t *testing.T) {
	data, err := SchemaProvider{}.Schema()
	require.NoError(t, err)
	assert.Contains(t, string(data), "darkwatch configuration")
}
