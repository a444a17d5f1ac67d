// Package config loads qlabcsv settings from flags, environment and an
// optional YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Environment variable prefix for qlabcsv configuration.
const envPrefix = "QLABCSV"

// Config keys, as used in the YAML file. The environment variable for a key
// is the upper case key with the QLABCSV_ prefix, e.g. QLABCSV_LOG_FILE.
const (
	KeyTemplate = "template"
	KeyPatch    = "patch"
	KeyLogFile  = "log_file"
	KeySheet    = "sheet"
	KeyOutput   = "output"
	KeyVerbose  = "verbose"
)

// Keys lists every config key.
var Keys = []string{KeyTemplate, KeyPatch, KeyLogFile, KeySheet, KeyOutput, KeyVerbose}

// Config holds the settings for a conversion.
type Config struct {
	// Template is the template kind; empty means detect from the headers.
	Template string `mapstructure:"template" yaml:"template"`

	// Patch is the QLab network patch X32 cues are sent through.
	Patch int `mapstructure:"patch" yaml:"patch"`

	// LogFile is the file log cues append to; empty disables them.
	LogFile string `mapstructure:"log_file" yaml:"log_file"`

	// Sheet is the worksheet read from .xlsx plots; empty means the first.
	Sheet string `mapstructure:"sheet" yaml:"sheet"`

	// Output is the output format.
	Output string `mapstructure:"output" yaml:"output"`

	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose" yaml:"verbose"`
}

// Defaults returns the settings used when nothing else sets a key.
func Defaults() Config {
	return Config{
		Patch:  1,
		Output: "table",
	}
}

// Validate checks values that can't be checked by type alone.
func (c *Config) Validate() error {
	if c.Patch < 1 {
		return fmt.Errorf("patch must be at least 1, got %d", c.Patch)
	}
	return nil
}

// DefaultConfigFile returns $XDG_CONFIG_HOME/qlabcsv/config.yaml (or the
// platform equivalent).
func DefaultConfigFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("finding user config directory: %w", err)
	}
	return filepath.Join(dir, "qlabcsv", "config.yaml"), nil
}

// GetConfigFile returns the config file path.
// If QLABCSV_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv(envPrefix + "_CONFIG"); envPath != "" {
		return envPath, nil
	}
	return DefaultConfigFile()
}
