// Package config loads and validates the hamcycle configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete hamcycle configuration.
type Config struct {
	Log         LogConfig    `yaml:"log"`
	Search      SearchConfig `yaml:"search"`
	Output      OutputConfig `yaml:"output"`
	MetricsFile string       `yaml:"metrics_file"`
}

// LogConfig selects logger verbosity and encoding.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// SearchConfig holds search parameters.
type SearchConfig struct {
	StartVertex int           `yaml:"start_vertex" validate:"gte=0"`
	TimeLimit   time.Duration `yaml:"time_limit" validate:"gte=0"`
}

// OutputConfig selects how the cycle is printed.
type OutputConfig struct {
	Format string `yaml:"format" validate:"oneof=plain json yaml"`
	Verify bool   `yaml:"verify"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info", Format: "text"},
		Search: SearchConfig{StartVertex: 0},
		Output: OutputConfig{Format: "plain", Verify: true},
	}
}

// Parse decodes YAML from r over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("decode config: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field constraint.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Marshal renders c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
