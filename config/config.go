// Package config loads the optional YAML run configuration.
//
// Precedence, lowest first: Default(), the YAML file, positional scoring
// integers, explicit command-line flags. Only the first two live here.
//
//	scoring:
//	  match: 1
//	  mismatch: -1
//	  space: -1
//	symbols:
//	  gap: "-"
//	  blank: " "
//	render:
//	  color: false
//	  ruler: false
//	  width: 0
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/highroad/align"
	"github.com/katalvlaran/highroad/scoring"
)

var (
	// ErrInvalidConfig wraps YAML syntax errors and unknown keys.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrBadSymbol indicates a gap or blank symbol that is not exactly one byte.
	ErrBadSymbol = errors.New("config: symbols must be single characters")

	// ErrBadWidth indicates a negative render width.
	ErrBadWidth = errors.New("config: render width must be >= 0")
)

// ScoringConfig mirrors scoring.Policy.
type ScoringConfig struct {
	Match    int `yaml:"match"`
	Mismatch int `yaml:"mismatch"`
	Space    int `yaml:"space"`
}

// SymbolConfig holds the output symbols as one-character strings.
type SymbolConfig struct {
	Gap   string `yaml:"gap"`
	Blank string `yaml:"blank"`
}

// RenderConfig controls terminal rendering.
type RenderConfig struct {
	Color bool `yaml:"color"`
	Ruler bool `yaml:"ruler"`
	Width int  `yaml:"width"` // 0 = no wrapping
}

// Config models the YAML file.
type Config struct {
	Scoring ScoringConfig `yaml:"scoring"`
	Symbols SymbolConfig  `yaml:"symbols"`
	Render  RenderConfig  `yaml:"render"`
}

// Default returns the built-in configuration.
func Default() Config {
	p := scoring.DefaultPolicy()
	return Config{
		Scoring: ScoringConfig{Match: p.Match, Mismatch: p.Mismatch, Space: p.Space},
		Symbols: SymbolConfig{Gap: string(align.DefaultGap), Blank: string(align.DefaultBlank)},
	}
}

// Load reads and parses path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes data over Default(), so omitted keys keep their defaults.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if cfg.Render.Width < 0 {
		return Config{}, ErrBadWidth
	}
	if _, err := cfg.Options(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Policy returns the scoring section as a scoring.Policy.
func (c Config) Policy() scoring.Policy {
	return scoring.New(c.Scoring.Match, c.Scoring.Mismatch, c.Scoring.Space)
}

// Options converts the symbol section, validating it.
func (c Config) Options() (align.Options, error) {
	if len(c.Symbols.Gap) != 1 || len(c.Symbols.Blank) != 1 {
		return align.Options{}, ErrBadSymbol
	}
	opts := align.Options{Gap: c.Symbols.Gap[0], Blank: c.Symbols.Blank[0]}
	if err := opts.Validate(); err != nil {
		return align.Options{}, err
	}
	return opts, nil
}
