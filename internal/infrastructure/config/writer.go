package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const configHeader = `# darkwatch configuration
# Schema: config.schema.json in this directory.

`

// WriteConfigOrdered writes the configuration to disk. Tables come out in
// struct field order (go-toml v2 behavior).
func WriteConfigOrdered(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	data, err := EncodeConfig(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// EncodeConfig renders cfg as TOML with the darkwatch header.
func EncodeConfig(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeader)

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// ErrConfigExists is returned by InitConfigFile when path is already present.
var ErrConfigExists = errors.New("config file already exists")

// InitConfigFile writes the default configuration to path together with the
// schema next to it. An existing file is only replaced when force is set.
func InitConfigFile(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := WriteConfigOrdered(DefaultConfig(), path); err != nil {
		return err
	}
	return WriteSchemaFile(dir)
}
