package config

import (
	"fmt"
	"strings"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validatePortal(config)...)
	validationErrors = append(validationErrors, validateHooks(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validatePortal(config *Config) []string {
	var validationErrors []string
	if config.Portal.CallTimeoutMs <= 0 {
		validationErrors = append(validationErrors, "portal.call_timeout_ms must be positive")
	}
	if config.Portal.PollIntervalMs <= 0 {
		validationErrors = append(validationErrors, "portal.poll_interval_ms must be positive")
	}
	return validationErrors
}

func validateHooks(config *Config) []string {
	var validationErrors []string
	if config.Hooks.TimeoutMs <= 0 {
		validationErrors = append(validationErrors, "hooks.timeout_ms must be positive")
	}

	check := func(name string, commands []string) {
		for i, cmd := range commands {
			if strings.TrimSpace(cmd) == "" {
				validationErrors = append(validationErrors, fmt.Sprintf("hooks.%s[%d] must not be empty", name, i))
			}
		}
	}
	check("dark", config.Hooks.Dark)
	check("light", config.Hooks.Light)
	check("default", config.Hooks.Default)

	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level %q is not one of trace, debug, info, warn, error", config.Logging.Level))
	}

	if config.Logging.EnableFileLog && config.Logging.LogDir == "" {
		validationErrors = append(validationErrors, "logging.log_dir must be set when logging.enable_file_log is true")
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}
	return validationErrors
}
