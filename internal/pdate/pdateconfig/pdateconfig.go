// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package pdateconfig provides configuration parsing and validation for pdate.
//
// Configuration is stored at ~/.config/pdate/config.yaml (or $PDATE_CONFIG_DIR/config.yaml).
// The file is optional. Without it, every setting has its default.
package pdateconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bufdev/pdate/internal/pkg/cliio"
	"github.com/bufdev/pdate/internal/pkg/persiandate"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the configuration file within the config directory.
const ConfigFileName = "config.yaml"

// configTemplate is the default configuration file template with comments.
// yaml.v3 does not preserve comments, so we hardcode the template string.
const configTemplate = `# The configuration file version.
#
# Required. The only current valid version is v1.
version: v1
# The template for Persian dates.
#
# Optional. Tokens are {YYYY} {YY} {MM} {M} {Mn} {DD} {D} {Dn} {hh} {h} {mm} {m} {ss} {s}.
persian_template: "{YYYY}/{MM}/{DD} {hh}:{mm}:{ss}"
# The template for Gregorian dates.
#
# Optional. Tokens are {YYYY} {YY} {MM} {DD} {hh} {mm} {ss}.
gregorian_template: "{YYYY}-{MM}-{DD} {hh}:{mm}:{ss}"
# The output format for commands that print records.
#
# Optional. One of table, csv, json.
format: table
`

// ExternalConfig is the YAML-serializable configuration file structure.
type ExternalConfig struct {
	// Version is the configuration file version (must be "v1").
	Version string `yaml:"version"`
	// PersianTemplate is the format template for Persian dates.
	PersianTemplate string `yaml:"persian_template"`
	// GregorianTemplate is the format template for Gregorian dates.
	GregorianTemplate string `yaml:"gregorian_template"`
	// Format is the output format.
	Format string `yaml:"format"`
}

// Config is the validated runtime configuration derived from the config file.
type Config struct {
	// PersianTemplate is the format template for Persian dates.
	PersianTemplate string
	// GregorianTemplate is the format template for Gregorian dates.
	GregorianTemplate string
	// Format is the output format for records.
	Format cliio.Format
}

// NewDefaultConfig returns the Config used when no configuration file exists.
func NewDefaultConfig() *Config {
	return &Config{
		PersianTemplate:   persiandate.DefaultFormat,
		GregorianTemplate: persiandate.DefaultGregorianFormat,
		Format:            cliio.FormatTable,
	}
}

// NewConfig validates an ExternalConfig and returns a runtime Config.
func NewConfig(externalConfig ExternalConfig) (*Config, error) {
	if externalConfig.Version != "v1" {
		return nil, fmt.Errorf("unsupported config version %q, must be v1", externalConfig.Version)
	}
	config := NewDefaultConfig()
	if externalConfig.PersianTemplate != "" {
		if strings.TrimSpace(externalConfig.PersianTemplate) == "" {
			return nil, errors.New("persian_template must not be blank")
		}
		config.PersianTemplate = externalConfig.PersianTemplate
	}
	if externalConfig.GregorianTemplate != "" {
		if strings.TrimSpace(externalConfig.GregorianTemplate) == "" {
			return nil, errors.New("gregorian_template must not be blank")
		}
		config.GregorianTemplate = externalConfig.GregorianTemplate
	}
	if externalConfig.Format != "" {
		format, err := cliio.ParseFormat(externalConfig.Format)
		if err != nil {
			return nil, fmt.Errorf("format: %w", err)
		}
		config.Format = format
	}
	return config, nil
}

// ConfigFilePath returns the path to the configuration file within the given config directory.
func ConfigFilePath(configDirPath string) string {
	return filepath.Join(configDirPath, ConfigFileName)
}

// ReadConfig reads and validates the configuration file from the given config directory.
//
// Returns the default Config if the file does not exist.
func ReadConfig(configDirPath string) (*Config, error) {
	config, err := readConfigFile(ConfigFilePath(configDirPath))
	if errors.Is(err, fs.ErrNotExist) {
		return NewDefaultConfig(), nil
	}
	return config, err
}

// InitConfig creates a new configuration file with a documented template.
// Creates the config directory if it does not exist.
// Returns the path to the created file, or an error if the file already exists.
func InitConfig(configDirPath string) (string, error) {
	filePath := ConfigFilePath(configDirPath)
	if _, err := os.Stat(filePath); err == nil {
		return "", fmt.Errorf("configuration file already exists: %s", filePath)
	}
	if err := os.MkdirAll(configDirPath, 0o755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(filePath, []byte(configTemplate), 0o644); err != nil {
		return "", err
	}
	return filePath, nil
}

// ValidateConfig reads and validates the configuration file from the given config directory.
//
// Unlike ReadConfig, a missing file is an error, with a message directing
// users to run "pdate config init".
func ValidateConfig(configDirPath string) error {
	filePath := ConfigFilePath(configDirPath)
	_, err := readConfigFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("configuration file not found at %s, run \"pdate config init\" to create one", filePath)
	}
	return err
}

// *** PRIVATE ***

// readConfigFile returns an error wrapping fs.ErrNotExist if the file does not exist.
func readConfigFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var externalConfig ExternalConfig
	if err := unmarshalYAMLStrict(data, &externalConfig); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", filePath, err)
	}
	config, err := NewConfig(externalConfig)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", filePath, err)
	}
	return config, nil
}

// unmarshalYAMLStrict unmarshals the data as YAML with strict field checking.
// If the data length is 0, this is a no-op.
func unmarshalYAMLStrict(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	yamlDecoder := yaml.NewDecoder(bytes.NewReader(data))
	// Reject unknown fields.
	yamlDecoder.KnownFields(true)
	if err := yamlDecoder.Decode(v); err != nil {
		return fmt.Errorf("could not unmarshal as YAML: %w", err)
	}
	return nil
}
