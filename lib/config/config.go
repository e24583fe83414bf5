// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/scrub/lib/random"
)

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local development machines.
	Development Environment = "development"
	// Production is for production deployments.
	Production Environment = "production"
)

// EnvironmentVariable names the variable Load reads the config path from.
const EnvironmentVariable = "SCRUB_CONFIG"

// Config is the configuration for the scrub command.
type Config struct {
	// Environment identifies the deployment type (development, production).
	Environment Environment `yaml:"environment"`

	// Log configures the command's structured logger.
	Log LogConfig `yaml:"log"`

	// Secret configures how secrets are read into buffers.
	Secret SecretConfig `yaml:"secret"`

	// Text configures the filler text generator.
	Text TextConfig `yaml:"text"`

	// EnvironmentOverrides contains per-environment overrides, applied
	// after the base config is loaded.
	Development *ConfigOverrides `yaml:"development,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	Log    *LogConfig    `yaml:"log,omitempty"`
	Secret *SecretConfig `yaml:"secret,omitempty"`
	Text   *TextConfig   `yaml:"text,omitempty"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	// Default: info (development), warn (production)
	Level string `yaml:"level"`

	// Format is one of auto, text, json. "auto" picks text when stderr
	// is a terminal and JSON otherwise.
	// Default: auto (development), json (production)
	Format string `yaml:"format"`

	// Output is a file path for log records. Empty means stderr.
	// ${HOME} and ${VAR:-default} are expanded.
	Output string `yaml:"output"`
}

// SecretConfig configures secret input.
type SecretConfig struct {
	// MaxSize is the largest secret, in bytes, read from a reader or
	// terminal. The buffer's capacity is MaxSize+1.
	// Default: 4096
	MaxSize int `yaml:"max_size"`
}

// TextConfig configures filler text generation.
type TextConfig struct {
	// Alphabet is the set of printable ASCII characters to draw from.
	// Default: A-Z, a-z, 0-9
	Alphabet string `yaml:"alphabet"`

	// Length is the default number of characters generated.
	// Default: 16
	Length int `yaml:"length"`
}

// Default returns the default configuration. A config file, when one is
// loaded, is merged over these values.
func Default() *Config {
	return &Config{
		Environment: Development,
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
		Secret: SecretConfig{
			MaxSize: 4096,
		},
		Text: TextConfig{
			Alphabet: random.DefaultAlphabet,
			Length:   16,
		},
	}
}

// Load loads configuration from the file named by SCRUB_CONFIG. It fails
// if the variable is unset; callers that accept defaults check the
// variable themselves and fall back to Default.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your scrub.yaml config file, or use --config flag", EnvironmentVariable)
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, applies the
// section for the configured environment, and expands variables.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()

	return cfg, nil
}

// loadFile loads a single configuration file, merging into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// applyEnvironmentOverrides applies the environment-specific overrides.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Production:
		overrides = c.Production
		// Production defaults: quieter, machine-readable logs.
		if overrides == nil {
			overrides = &ConfigOverrides{
				Log: &LogConfig{
					Level:  "warn",
					Format: "json",
				},
			}
		}
	}

	if overrides == nil {
		return
	}

	if overrides.Log != nil {
		if overrides.Log.Level != "" {
			c.Log.Level = overrides.Log.Level
		}
		if overrides.Log.Format != "" {
			c.Log.Format = overrides.Log.Format
		}
		if overrides.Log.Output != "" {
			c.Log.Output = overrides.Log.Output
		}
	}

	if overrides.Secret != nil {
		if overrides.Secret.MaxSize != 0 {
			c.Secret.MaxSize = overrides.Secret.MaxSize
		}
	}

	if overrides.Text != nil {
		if overrides.Text.Alphabet != "" {
			c.Text.Alphabet = overrides.Text.Alphabet
		}
		if overrides.Text.Length != 0 {
			c.Text.Length = overrides.Text.Length
		}
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	c.Log.Output = expandVars(c.Log.Output, map[string]string{
		"HOME": os.Getenv("HOME"),
	})
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}

	levels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(levels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of: %v", levels))
	}

	formats := []string{"auto", "text", "json"}
	if !slices.Contains(formats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format must be one of: %v", formats))
	}

	if c.Secret.MaxSize <= 0 {
		errs = append(errs, fmt.Errorf("secret.max_size must be positive, got %d", c.Secret.MaxSize))
	}

	if c.Text.Alphabet == "" {
		errs = append(errs, fmt.Errorf("text.alphabet is required"))
	}
	if c.Text.Length < 0 {
		errs = append(errs, fmt.Errorf("text.length must not be negative, got %d", c.Text.Length))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
