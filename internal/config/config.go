// Package config resolves the seed and logging settings for seedrng.
// Values come from an optional HCL file, then environment variables, then
// command-line flags applied by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/seedrng/internal/randutil"
)

// Environment variable names
const (
	// EnvSeed provides the seed for the random number generator
	EnvSeed = "SEEDRNG_SEED"

	// EnvLogLevel sets the log level (debug, info, warn, error)
	EnvLogLevel = "SEEDRNG_LOG_LEVEL"
)

// DefaultLogLevel is used when no level is configured.
const DefaultLogLevel = "info"

// Config holds the resolved configuration.
type Config struct {
	// Seed is the seed for the random number generator (0 means not set)
	Seed     uint64         `hcl:"seed,optional"`
	LogLevel string         `hcl:"log_level,optional"`
	Streams  []StreamConfig `hcl:"stream,block"`
}

// StreamConfig names a salted stream to draw when none are given on the
// command line.
type StreamConfig struct {
	Salt  string `hcl:"salt,label"`
	Count int    `hcl:"count,optional"`
}

// envConfig mirrors the overridable fields. Unset variables leave the
// prefilled value untouched.
type envConfig struct {
	Seed     uint64 `env:"SEEDRNG_SEED"`
	LogLevel string `env:"SEEDRNG_LOG_LEVEL"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
	}
}

// LoadFile reads configuration from an HCL file. A missing file yields the
// defaults.
func LoadFile(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	return &cfg, nil
}

// ApplyEnv overrides fields with any environment variables that are set.
func (c *Config) ApplyEnv() error {
	e := envConfig{Seed: c.Seed, LogLevel: c.LogLevel}
	if err := env.Parse(&e); err != nil {
		// LogLevel is a plain string, so only the seed can fail to parse.
		return fmt.Errorf("invalid %s value: %w", EnvSeed, err)
	}
	c.Seed = e.Seed
	c.LogLevel = e.LogLevel
	return nil
}

// Load reads the file and applies environment overrides.
func Load(filename string) (*Config, error) {
	cfg, err := LoadFile(filename)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	seen := make(map[string]bool, len(c.Streams))
	for _, s := range c.Streams {
		if seen[s.Salt] {
			return fmt.Errorf("duplicate stream %q", s.Salt)
		}
		seen[s.Salt] = true
		if s.Count < 0 {
			return fmt.Errorf("stream %q: count must not be negative, got %d", s.Salt, s.Count)
		}
	}
	return nil
}

// ClockSeed derives a fresh non-zero seed from the clock. The result should
// be logged so the run can be replayed with an explicit seed.
func ClockSeed(clock quartz.Clock) uint64 {
	seed := randutil.Mix(uint64(clock.Now().UnixNano()))
	if seed == 0 {
		seed = 1
	}
	return seed
}
