// Package config loads iupac tool settings from YAML files and IUPAC_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Output formats accepted by output.format.
const (
	FormatDOT     = "dot"
	FormatFormula = "formula"
)

// Log levels accepted by log.level.
var levels = []string{"debug", "info", "warn", "error"}

// Config is the complete tool configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Output  OutputConfig  `mapstructure:"output"`
	Catalog CatalogConfig `mapstructure:"catalog"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// CatalogConfig names extra compound files loaded on top of the embedded
// reference set.
type CatalogConfig struct {
	Dir        string `mapstructure:"dir"`
	NoDefaults bool   `mapstructure:"no_defaults"`
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(levels, strings.ToLower(c.Log.Level)) {
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log.format: unknown format %q", c.Log.Format))
	}
	switch c.Output.Format {
	case FormatDOT, FormatFormula:
	default:
		errs = append(errs, fmt.Errorf("output.format: unknown format %q", c.Output.Format))
	}
	return errors.Join(errs...)
}
