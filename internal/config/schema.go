// Package config provides loading, discovery and validation of the
// buildreport configuration file.
package config

import (
	"golang.org/x/text/language"

	"github.com/AndreyAkinshin/buildreport/internal/locale"
	"github.com/AndreyAkinshin/buildreport/internal/model"
	"github.com/AndreyAkinshin/buildreport/internal/output"
)

// Output formats.
const (
	FormatConsole  = "console"
	FormatMarkdown = "markdown"
	FormatXLSX     = "xlsx"
)

// Config represents the complete config.json configuration.
type Config struct {
	Verbosity string `json:"verbosity,omitempty"`
	Color     string `json:"color,omitempty"`
	Locale    string `json:"locale,omitempty"`
	Format    string `json:"format,omitempty"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// VerbosityLevel returns the parsed verbosity, or the default if it is invalid.
func (c *Config) VerbosityLevel() model.Verbosity {
	if v, ok := model.ParseVerbosity(c.Verbosity); ok {
		return v
	}
	return model.DefaultVerbosity
}

// ColorMode returns the parsed color mode, or auto if it is invalid.
func (c *Config) ColorMode() output.ColorMode {
	if m, ok := output.ParseColorMode(c.Color); ok {
		return m
	}
	return output.ColorAuto
}

// Language returns the supported language closest to the configured locale.
func (c *Config) Language() language.Tag {
	return locale.Match(c.Locale)
}
