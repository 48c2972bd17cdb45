// Package config handles global configuration for the cita CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/cita/config.yml.
type GlobalConfig struct {
	// Mailto is the contact address sent to Crossref, routing requests to
	// the polite pool.
	Mailto string `yaml:"mailto,omitempty"`

	// TimeoutSeconds bounds each metadata request.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`

	// Permissive makes unrecognized work types pass through as raw JSON
	// instead of failing.
	Permissive bool `yaml:"permissive,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "cita"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"

	// DefaultTimeout is used when no timeout is configured.
	DefaultTimeout = 30 * time.Second
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/cita/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file and applies
// environment overrides (CITA_MAILTO, CITA_TIMEOUT). Returns an empty
// config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	cfg := &GlobalConfig{}

	if path := GlobalConfigPath(); path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing global config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	if mailto := os.Getenv("CITA_MAILTO"); mailto != "" {
		cfg.Mailto = mailto
	}
	if timeout := os.Getenv("CITA_TIMEOUT"); timeout != "" {
		if secs, err := strconv.Atoi(timeout); err == nil && secs > 0 {
			cfg.TimeoutSeconds = secs
		}
	}

	globalConfigCache = cfg
	return cfg, nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// Timeout returns the configured request timeout.
func (c *GlobalConfig) Timeout() time.Duration {
	if c.TimeoutSeconds > 0 {
		return time.Duration(c.TimeoutSeconds) * time.Second
	}
	return DefaultTimeout
}
