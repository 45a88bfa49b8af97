// Package config loads persistent defaults for azlogconvert.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds persistent defaults loaded from config files.
type Config struct {
	Convert  ConvertConfig  `yaml:"convert"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// ConvertConfig holds conversion defaults.
type ConvertConfig struct {
	// Zone is the IANA name of the display timezone for formatted output.
	Zone string `yaml:"zone"`
	// Suffix is appended to the source file name to derive the output directory.
	Suffix string `yaml:"suffix"`
}

// DefaultsConfig holds global defaults.
type DefaultsConfig struct {
	Timeout string `yaml:"timeout"`
	Verbose bool   `yaml:"verbose"`
}

const (
	// DefaultZone matches the zone the original converter hardcoded.
	DefaultZone = "Europe/Warsaw"
	// DefaultSuffix is appended to the source name for the output directory.
	DefaultSuffix = "_logs"
)

// Load reads config from ~/.azlogconvert/config.yaml then CWD
// .azlogconvert.yaml. CWD config values override home config. Missing files
// are not errors. Environment variables (AZLOG_*) override config file values.
func Load() *Config {
	cfg := &Config{}

	if home, err := os.UserHomeDir(); err == nil {
		_ = loadFile(filepath.Join(home, ".azlogconvert", "config.yaml"), cfg)
	}

	_ = loadFile(".azlogconvert.yaml", cfg)

	applyEnv(cfg)
	applyDefaults(cfg)

	return cfg
}

// LoadFrom reads config from a specific path. Used for testing.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}
	if err := loadFile(path, cfg); err != nil {
		return nil, err
	}
	applyEnv(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("AZLOG_ZONE"); v != "" {
		cfg.Convert.Zone = v
	}
	if v := os.Getenv("AZLOG_SUFFIX"); v != "" {
		cfg.Convert.Suffix = v
	}
	if v := os.Getenv("AZLOG_TIMEOUT"); v != "" {
		cfg.Defaults.Timeout = v
	}
	if v := os.Getenv("AZLOG_VERBOSE"); v != "" {
		cfg.Defaults.Verbose = strings.EqualFold(v, "true") || v == "1"
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Convert.Zone == "" {
		cfg.Convert.Zone = DefaultZone
	}
	if cfg.Convert.Suffix == "" {
		cfg.Convert.Suffix = DefaultSuffix
	}
}
