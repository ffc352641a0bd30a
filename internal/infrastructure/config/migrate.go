package config

import (
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// KeyInfo describes a config key and its default.
type KeyInfo struct {
	Key          string
	Type         string
	DefaultValue string
}

// MigrationResult lists default keys the user's file does not set.
type MigrationResult struct {
	ConfigFile  string
	MissingKeys []KeyInfo
}

// Migrator compares a config file against the defaults and fills the gaps.
type Migrator struct {
	configFile string
	// defaultViper holds a Viper instance with all defaults set.
	defaultViper *viper.Viper
}

// NewMigrator creates a Migrator for configFile.
func NewMigrator(configFile string) *Migrator {
	v := viper.New()
	v.SetConfigType("toml")

	m := &Manager{viper: v}
	m.setDefaults()

	return &Migrator{
		configFile:   configFile,
		defaultViper: v,
	}
}

// CheckMigration reports missing keys. It returns nil when the file does not
// exist or already sets every key.
func (m *Migrator) CheckMigration() (*MigrationResult, error) {
	if _, err := os.Stat(m.configFile); os.IsNotExist(err) {
		return nil, nil
	}

	userKeys, err := m.getUserConfigKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to parse user config: %w", err)
	}

	missing := m.findMissingKeys(m.getAllDefaultKeys(), userKeys)
	if len(missing) == 0 {
		return nil, nil
	}

	infos := make([]KeyInfo, 0, len(missing))
	for _, key := range missing {
		infos = append(infos, m.GetKeyInfo(key))
	}
	return &MigrationResult{ConfigFile: m.configFile, MissingKeys: infos}, nil
}

// Migrate writes the missing default keys into the config file and returns
// their names. Values the user already set are kept.
func (m *Migrator) Migrate() ([]string, error) {
	result, err := m.CheckMigration()
	if err != nil || result == nil {
		return nil, err
	}

	userViper := viper.New()
	userViper.SetConfigFile(m.configFile)
	userViper.SetConfigType("toml")

	mgr := &Manager{viper: userViper}
	mgr.setDefaults()

	if err := userViper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := userViper.WriteConfig(); err != nil {
		return nil, fmt.Errorf("failed to write config file: %w", err)
	}

	added := make([]string, 0, len(result.MissingKeys))
	for _, k := range result.MissingKeys {
		added = append(added, k.Key)
	}
	return added, nil
}

// GetKeyInfo returns detailed information about a config key.
func (m *Migrator) GetKeyInfo(key string) KeyInfo {
	value := m.defaultViper.Get(key)
	if value == nil {
		return KeyInfo{Key: key, Type: "unknown", DefaultValue: "unknown"}
	}
	return KeyInfo{
		Key:          key,
		Type:         typeName(value),
		DefaultValue: formatValue(value),
	}
}

func (m *Migrator) getAllDefaultKeys() []string {
	keys := m.defaultViper.AllKeys()
	sort.Strings(keys)
	return keys
}

// getUserConfigKeys parses the user's TOML file and returns every leaf key
// in dot notation.
func (m *Migrator) getUserConfigKeys() (map[string]bool, error) {
	data, err := os.ReadFile(m.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	keys := make(map[string]bool)
	flattenKeys(raw, "", keys)
	return keys, nil
}

func flattenKeys(data map[string]any, prefix string, keys map[string]bool) {
	for k, v := range data {
		key := strings.ToLower(k)
		if prefix != "" {
			key = prefix + "." + key
		}
		if nested, ok := v.(map[string]any); ok {
			flattenKeys(nested, key, keys)
			continue
		}
		keys[key] = true
	}
}

func (*Migrator) findMissingKeys(defaultKeys []string, userKeys map[string]bool) []string {
	missing := make([]string, 0)
	for _, key := range defaultKeys {
		if !userKeys[key] {
			missing = append(missing, key)
		}
	}
	return missing
}

func typeName(value any) string {
	switch reflect.TypeOf(value).Kind() {
	case reflect.Bool:
		return "bool"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "int"
	case reflect.String:
		return "string"
	case reflect.Slice:
		return "list"
	default:
		return reflect.TypeOf(value).String()
	}
}

func formatValue(value any) string {
	switch v := value.(type) {
	case bool, int, int64, uint32:
		return fmt.Sprintf("%v", v)
	case string:
		if v == "" {
			return `""`
		}
		return fmt.Sprintf("%q", v)
	case []string:
		if len(v) == 0 {
			return "[]"
		}
		return fmt.Sprintf("[%d items]", len(v))
	default:
		return fmt.Sprintf("%v", v)
	}
}
