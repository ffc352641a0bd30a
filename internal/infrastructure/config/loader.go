package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	explicit  bool
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager reading from the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerWithDir(configDir)
}

// NewManagerWithDir creates a configuration manager reading config.toml from configDir.
func NewManagerWithDir(configDir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config") // Name without extension
	v.SetConfigType("toml")   // TOML as default format
	v.AddConfigPath(configDir)

	// DARKWATCH_PORTAL_CALL_TIMEOUT_MS and friends map onto nested keys.
	v.SetEnvPrefix("DARKWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "DARKWATCH_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DARKWATCH_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DARKWATCH_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DARKWATCH_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// SetConfigFile makes the manager read path instead of the default location.
// An explicit file is never created on demand.
func (m *Manager) SetConfigFile(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.viper.SetConfigFile(path)
	m.configDir = filepath.Dir(path)
	m.explicit = true
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !errors.As(err, &configFileNotFoundError) || m.explicit {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = filepath.Join(m.configDir, configFileName)
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	switch strings.ToLower(strings.TrimSpace(config.Appearance.ColorScheme)) {
	case ThemePreferDark, "dark":
		config.Appearance.ColorScheme = ThemePreferDark
	case ThemePreferLight, "light":
		config.Appearance.ColorScheme = ThemePreferLight
	default:
		config.Appearance.ColorScheme = ThemeDefault
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch strings.ToLower(config.Logging.Format) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = defaultLogFormat
	}
	config.Logging.LogDir = strings.TrimSpace(config.Logging.LogDir)
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("appearance.color_scheme", defaults.Appearance.ColorScheme)

	m.viper.SetDefault("portal.call_timeout_ms", defaults.Portal.CallTimeoutMs)
	m.viper.SetDefault("portal.poll_interval_ms", defaults.Portal.PollIntervalMs)

	m.viper.SetDefault("hooks.dark", defaults.Hooks.Dark)
	m.viper.SetDefault("hooks.light", defaults.Hooks.Light)
	m.viper.SetDefault("hooks.default", defaults.Hooks.Default)
	m.viper.SetDefault("hooks.timeout_ms", defaults.Hooks.TimeoutMs)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// ConfigFile returns the path of the configuration file in use.
func (m *Manager) ConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.configDir, configFileName)
}

// createDefaultConfig writes the default configuration and its JSON schema.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return err
	}

	configFile := filepath.Join(m.configDir, configFileName)
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}

	if err := WriteSchemaFile(m.configDir); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)
	return nil
}
