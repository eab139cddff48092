// Package config provides configuration management for the LeapGrid CLI.
//
// It extends the shared project configuration from internal/config with
// CLI-only fields such as output format and verbosity.
package config

import (
	sharedcfg "github.com/leapstack-labs/leapgrid/internal/config"
)

// MeasureConfig is an alias for the shared measurement configuration.
type MeasureConfig = sharedcfg.MeasureConfig

// Config holds all CLI configuration options.
type Config struct {
	ResultPath   string         `koanf:"result"`
	WidthsPath   string         `koanf:"widths"`
	Verbose      bool           `koanf:"verbose"`
	OutputFormat string         `koanf:"output"`
	Measure      *MeasureConfig `koanf:"measure"`

	// ProjectRoot is the directory relative paths are resolved against.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values - uses shared defaults from internal/config
const (
	DefaultResultFile = sharedcfg.DefaultResultFile
	DefaultWidthsFile = sharedcfg.DefaultWidthsFile
	DefaultOutput     = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// Project returns the shared subset of the configuration.
func (c *Config) Project() *sharedcfg.ProjectConfig {
	return &sharedcfg.ProjectConfig{
		ResultPath: c.ResultPath,
		WidthsPath: c.WidthsPath,
		Measure:    c.Measure,
	}
}
