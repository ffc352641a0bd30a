package colorscheme

import (
	"github.com/bnema/darkwatch/internal/infrastructure/config"
)

// configSource is satisfied by *config.Manager.
type configSource interface {
	Get() *config.Config
}

// ConfigAdapter adapts the config manager to the ConfigProvider interface.
// It reads through on every call so reloads take effect.
type ConfigAdapter struct {
	source configSource
}

// NewConfigAdapter creates a new config adapter.
func NewConfigAdapter(source configSource) *ConfigAdapter {
	return &ConfigAdapter{source: source}
}

// GetColorScheme implements ConfigProvider.
func (a *ConfigAdapter) GetColorScheme() string {
	if a.source == nil {
		return ""
	}
	cfg := a.source.Get()
	if cfg == nil {
		return ""
	}
	return cfg.Appearance.ColorScheme
}
