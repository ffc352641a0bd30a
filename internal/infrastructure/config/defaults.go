package config

// Default configuration constants
const (
	// Portal defaults
	defaultCallTimeoutMs  = 100
	defaultPollIntervalMs = 1000

	// Hook defaults
	defaultHookTimeoutMs = 5000

	// Logging defaults
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultMaxLogSizeMB  = 10
	defaultMaxLogBackups = 3
	defaultMaxLogAgeDays = 7 // days
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Appearance: AppearanceConfig{
			ColorScheme: ThemeDefault,
		},
		Portal: PortalConfig{
			CallTimeoutMs:  defaultCallTimeoutMs,
			PollIntervalMs: defaultPollIntervalMs,
		},
		Hooks: HooksConfig{
			Dark:      []string{},
			Light:     []string{},
			Default:   []string{},
			TimeoutMs: defaultHookTimeoutMs,
		},
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			LogDir:     getDefaultLogDir(),
			MaxSizeMB:  defaultMaxLogSizeMB,
			MaxBackups: defaultMaxLogBackups,
			MaxAgeDays: defaultMaxLogAgeDays,
		},
	}
}

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}
