package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "zero call timeout", mutate: func(c *Config) { c.Portal.CallTimeoutMs = 0 }, wantErr: "portal.call_timeout_ms"},
		{name: "negative poll interval", mutate: func(c *Config) { c.Portal.PollIntervalMs = -1 }, wantErr: "portal.poll_interval_ms"},
		{name: "zero hook timeout", mutate: func(c *Config) { c.Hooks.TimeoutMs = 0 }, wantErr: "hooks.timeout_ms"},
		{name: "blank hook", mutate: func(c *Config) { c.Hooks.Light = []string{"ok", "  "} }, wantErr: "hooks.light[1]"},
		{name: "unknown level", mutate: func(c *Config) { c.Logging.Level = "chatty" }, wantErr: "logging.level"},
		{name: "file log without dir", mutate: func(c *Config) { c.Logging.EnableFileLog, c.Logging.LogDir = true, "" }, wantErr: "logging.log_dir"},
		{name: "negative backups", mutate: func(c *Config) { c.Logging.MaxBackups = -2 }, wantErr: "logging.max_backups"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
