package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ThemeDefault, cfg.Appearance.ColorScheme)
	assert.Equal(t, 100*time.Millisecond, cfg.Portal.CallTimeout())
	assert.Equal(t, time.Second, cfg.Portal.PollInterval())
	assert.Equal(t, 5*time.Second, cfg.Hooks.Timeout())
	assert.Empty(t, cfg.Hooks.Dark)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.EnableFileLog)
	assert.Equal(t, "logs", filepath.Base(cfg.Logging.LogDir))
	require.NoError(t, validateConfig(cfg))
}
