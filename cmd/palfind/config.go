package main

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/palindromes/builder"
	"github.com/katalvlaran/palindromes/palgrid"
)

// ErrBadConfig marks an invalid config file or flag value.
var ErrBadConfig = errors.New("palfind: invalid configuration")

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var formats = []string{formatText, formatJSON, formatYAML}

// Config mirrors the flags; any field left out of the YAML file keeps its
// default. Explicit flags override the file.
type Config struct {
	Output   string      `yaml:"output"`
	LogLevel string      `yaml:"log_level"`
	Grid     GridConfig  `yaml:"grid"`
	Bench    BenchConfig `yaml:"bench"`
}

// GridConfig holds defaults for the grid subcommand.
type GridConfig struct {
	Workers    int      `yaml:"workers"`
	Directions []string `yaml:"directions"`
	Seed       int64    `yaml:"seed"`
	Alphabet   string   `yaml:"alphabet"`
}

// BenchConfig holds defaults for the bench subcommand.
type BenchConfig struct {
	Min    int   `yaml:"min"`
	Max    int   `yaml:"max"`
	Factor int   `yaml:"factor"`
	Seed   int64 `yaml:"seed"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Output:   formatText,
		LogLevel: "warn",
		Grid: GridConfig{
			Workers:    palgrid.DefaultWorkers,
			Directions: []string{"rows", "columns", "down", "up"},
			Seed:       builder.DefaultSeed,
			Alphabet:   builder.DefaultAlphabet,
		},
		Bench: BenchConfig{
			Min:    10_000,
			Max:    1_000_000,
			Factor: 10,
			Seed:   builder.DefaultSeed,
		},
	}
}

// LoadConfig reads path over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %v: %w", path, err, ErrBadConfig)
	}

	return cfg, nil
}

// Validate checks values that flags alone cannot constrain.
func (c Config) Validate() error {
	if !slices.Contains(formats, c.Output) {
		return fmt.Errorf("output %q (want one of %v): %w", c.Output, formats, ErrBadConfig)
	}
	if c.Grid.Workers < 1 {
		return fmt.Errorf("grid.workers=%d: %w", c.Grid.Workers, ErrBadConfig)
	}
	if c.Grid.Alphabet == "" {
		return fmt.Errorf("grid.alphabet is empty: %w", ErrBadConfig)
	}
	for _, d := range c.Grid.Directions {
		if _, err := palgrid.ParseDirection(d); err != nil {
			return fmt.Errorf("grid.directions: %v: %w", err, ErrBadConfig)
		}
	}
	if c.Bench.Min < 1 || c.Bench.Max < c.Bench.Min || c.Bench.Factor < 2 {
		return fmt.Errorf("bench min=%d max=%d factor=%d: %w",
			c.Bench.Min, c.Bench.Max, c.Bench.Factor, ErrBadConfig)
	}

	return nil
}
