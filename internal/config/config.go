// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/portfolio-builder/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags.
type Config struct {
	// StateDir is the root directory of the local key-value store.
	StateDir string `json:"state_dir,omitempty"`
	// UserID selects which user's profile documents to operate on.
	UserID string `json:"user_id,omitempty"`
	// Template is the default layout for newly created profiles.
	Template string `json:"template,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty"`
	// LogFile, when set, sends log output to a file instead of stdout.
	LogFile string `json:"log_file,omitempty"`
	// Verbose prints detailed boxed output for show/status commands.
	Verbose bool `json:"verbose,omitempty"`
}

// Environment variable names honored by FromEnv.
const (
	EnvStateDir = "PORTFOLIO_STATE_DIR"
	EnvUserID   = "PORTFOLIO_USER_ID"
	EnvLogLevel = "PORTFOLIO_LOG_LEVEL"
	EnvLogFile  = "PORTFOLIO_LOG_FILE"
)

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables. Unset
// variables leave the corresponding field empty.
func FromEnv() Config {
	return Config{
		StateDir: os.Getenv(EnvStateDir),
		UserID:   os.Getenv(EnvUserID),
		LogLevel: os.Getenv(EnvLogLevel),
		LogFile:  os.Getenv(EnvLogFile),
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Template != "" && !types.ValidTemplateID(c.Template) {
		return fmt.Errorf("config error: unknown template %q", c.Template)
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config error: unknown log level %q", c.LogLevel)
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.StateDir == "" {
		result.StateDir = defaults.StateDir
	}
	if result.UserID == "" {
		result.UserID = defaults.UserID
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFile == "" {
		result.LogFile = defaults.LogFile
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ResolveStateDir applies the final fallback for the state directory: an
// explicit value wins, otherwise ~/.portfolio-builder.
func (c *Config) ResolveStateDir() (string, error) {
	if c.StateDir != "" {
		return c.StateDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".portfolio-builder"), nil
}
