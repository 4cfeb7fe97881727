// Package config loads printer defaults from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/m-ocean-it/go-tinyprint/numfmt"
	"github.com/m-ocean-it/go-tinyprint/printer"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("invalid config")

type PrinterConfig struct {
	Base           uint8 `yaml:"base"`
	IntWidth       uint8 `yaml:"int_width"`
	FloatWidth     uint8 `yaml:"float_width"`
	FloatDigits    uint8 `yaml:"float_digits"`
	LegacyOverflow bool  `yaml:"legacy_overflow"`
}

type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
}

// Config is the top-level structure of a tinyprint YAML file.
type Config struct {
	Printer PrinterConfig `yaml:"printer"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// Default returns the settings used when no file is given: decimal integers
// and two fractional digits for floats.
func Default() *Config {
	return &Config{
		Printer: PrinterConfig{
			Base:        10,
			FloatDigits: 2,
		},
		Metrics: MetricsConfig{
			Namespace: "tinyprint",
		},
	}
}

// Load reads path on top of Default and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the formatters would silently clamp.
func (c *Config) Validate() error {
	p := c.Printer
	switch {
	case p.Base < 2 || p.Base > 16:
		return fmt.Errorf("%w: base %d outside [2, 16]", ErrInvalid, p.Base)
	case p.IntWidth > numfmt.MaxWidth:
		return fmt.Errorf("%w: int_width %d above %d", ErrInvalid, p.IntWidth, numfmt.MaxWidth)
	case p.FloatWidth > numfmt.MaxFloatWidth:
		return fmt.Errorf("%w: float_width %d above %d", ErrInvalid, p.FloatWidth, numfmt.MaxFloatWidth)
	case p.FloatDigits > numfmt.MaxFrac:
		return fmt.Errorf("%w: float_digits %d above %d", ErrInvalid, p.FloatDigits, numfmt.MaxFrac)
	case c.Metrics.Enabled && c.Metrics.Namespace == "":
		return fmt.Errorf("%w: metrics enabled without a namespace", ErrInvalid)
	}
	return nil
}

// PrinterOptions translates the printer settings into printer options.
func (c *Config) PrinterOptions() []printer.Option {
	var opts []printer.Option
	if c.Printer.LegacyOverflow {
		opts = append(opts, printer.WithFloatLimit(numfmt.LegacyLimit))
	}
	return opts
}
