package config

import "time"

// Config represents the complete configuration for darkwatch.
type Config struct {
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
	Portal     PortalConfig     `mapstructure:"portal" toml:"portal" json:"portal"`
	Hooks      HooksConfig      `mapstructure:"hooks" toml:"hooks" json:"hooks"`
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
}

// Color scheme override values accepted in appearance.color_scheme.
const (
	ThemeDefault     = "default"
	ThemePreferDark  = "prefer-dark"
	ThemePreferLight = "prefer-light"
)

// AppearanceConfig holds the user's explicit color scheme override.
type AppearanceConfig struct {
	// ColorScheme overrides detection: "default" follows the desktop,
	// "prefer-dark" and "prefer-light" force a mode.
	ColorScheme string `mapstructure:"color_scheme" toml:"color_scheme" json:"color_scheme" jsonschema:"enum=default,enum=prefer-dark,enum=prefer-light"`
}

// PortalConfig tunes how the desktop portal is queried.
type PortalConfig struct {
	// CallTimeoutMs bounds each D-Bus method call.
	CallTimeoutMs int `mapstructure:"call_timeout_ms" toml:"call_timeout_ms" json:"call_timeout_ms" jsonschema:"minimum=1"`
	// PollIntervalMs bounds each iteration of the change listener.
	PollIntervalMs int `mapstructure:"poll_interval_ms" toml:"poll_interval_ms" json:"poll_interval_ms" jsonschema:"minimum=1"`
}

// CallTimeout returns CallTimeoutMs as a duration.
func (p PortalConfig) CallTimeout() time.Duration {
	return time.Duration(p.CallTimeoutMs) * time.Millisecond
}

// PollInterval returns PollIntervalMs as a duration.
func (p PortalConfig) PollInterval() time.Duration {
	return time.Duration(p.PollIntervalMs) * time.Millisecond
}

// HooksConfig lists shell commands run by `darkwatch watch` when the
// resolved mode changes. Each command runs with `sh -c`, receives the mode as
// $1 and in DARKWATCH_MODE.
type HooksConfig struct {
	Dark      []string `mapstructure:"dark" toml:"dark" json:"dark"`
	Light     []string `mapstructure:"light" toml:"light" json:"light"`
	Default   []string `mapstructure:"default" toml:"default" json:"default"`
	TimeoutMs int      `mapstructure:"timeout_ms" toml:"timeout_ms" json:"timeout_ms" jsonschema:"minimum=1"`
}

// Timeout returns TimeoutMs as a duration.
func (h HooksConfig) Timeout() time.Duration {
	return time.Duration(h.TimeoutMs) * time.Millisecond
}

// LoggingConfig controls log level, format and optional file output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`

	// File output configuration
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups"`
	MaxAgeDays    int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days"`
	Compress      bool   `mapstructure:"compress" toml:"compress" json:"compress"`
}
