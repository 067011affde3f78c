// Package config loads Sequencer settings from an optional YAML/JSON file
// and SEQUENCER_* environment variables.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/sequencer/internal/logging"
	"github.com/aretw0/sequencer/pkg/sequence"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "SEQUENCER_"

// Config is the full application configuration.
type Config struct {
	Server   ServerConfig `yaml:"server" json:"server"`
	LogLevel string       `yaml:"log_level" json:"log_level" env:"LOG_LEVEL"`
	Metrics  bool         `yaml:"metrics" json:"metrics" env:"METRICS"`
	Defaults FormDefaults `yaml:"defaults" json:"defaults"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr string `yaml:"addr" json:"addr" env:"ADDR"`
}

// FormDefaults are the values a form starts with.
type FormDefaults struct {
	Kind       string  `yaml:"kind" json:"kind" env:"DEFAULT_KIND"`
	FirstTerm  float64 `yaml:"first_term" json:"first_term" env:"DEFAULT_FIRST_TERM"`
	Difference float64 `yaml:"difference" json:"difference" env:"DEFAULT_DIFFERENCE"`
	Ratio      float64 `yaml:"ratio" json:"ratio" env:"DEFAULT_RATIO"`
	TermCount  int     `yaml:"term_count" json:"term_count" env:"DEFAULT_TERM_COUNT"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server:   ServerConfig{Addr: ":8080"},
		LogLevel: "info",
		Metrics:  true,
		Defaults: FormDefaults{
			Kind:       "arithmetic",
			FirstTerm:  1,
			Difference: 1,
			Ratio:      2,
			TermCount:  10,
		},
	}
}

// Load builds the configuration: defaults, then the file at path (if any),
// then environment overrides. environ replaces the process environment when non-nil.
func Load(path string, environ map[string]string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := readFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Validate checks that the configuration can be used as-is.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	kind, err := sequence.ParseKind(c.Defaults.Kind)
	if err != nil {
		return fmt.Errorf("invalid defaults.kind: %w", err)
	}
	if err := c.Defaults.Request(kind).Validate(); err != nil {
		return fmt.Errorf("invalid defaults: %w", err)
	}
	if c.Defaults.Ratio == 0 {
		return fmt.Errorf("invalid defaults.ratio: %s", sequence.MsgZeroRatio)
	}
	return nil
}

// DefaultKind returns the default sequence kind. Validate guarantees it parses.
func (d FormDefaults) DefaultKind() sequence.Kind {
	kind, err := sequence.ParseKind(d.Kind)
	if err != nil {
		return sequence.Arithmetic
	}
	return kind
}

// Step returns the default step for kind.
func (d FormDefaults) Step(kind sequence.Kind) float64 {
	if kind == sequence.Geometric {
		return d.Ratio
	}
	return d.Difference
}

// Request returns the request a fresh form of the given kind would submit.
func (d FormDefaults) Request(kind sequence.Kind) sequence.Request {
	return sequence.Request{
		Kind:      kind,
		FirstTerm: d.FirstTerm,
		Step:      d.Step(kind),
		TermCount: d.TermCount,
	}
}
