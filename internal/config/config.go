package config

import (
	"fmt"
	"slices"

	"github.com/quantmind-br/contentpack/internal/utils"
)

// Config represents the application configuration
type Config struct {
	Registry   RegistryConfig   `mapstructure:"registry" yaml:"registry"`
	Output     OutputConfig     `mapstructure:"output" yaml:"output"`
	Validation ValidationConfig `mapstructure:"validation" yaml:"validation"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging"`
}

// RegistryConfig locates the document registry
type RegistryConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	Path     string `mapstructure:"path" yaml:"path"`
	Compress bool   `mapstructure:"compress" yaml:"compress"`
	DryRun   bool   `mapstructure:"dry_run" yaml:"dry_run"`
}

// ValidationConfig controls how reference warnings are treated
type ValidationConfig struct {
	// Strict turns validation warnings into a failing exit status
	Strict bool `mapstructure:"strict" yaml:"strict"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Registry.Path == "" {
		c.Registry.Path = DefaultRegistryPath
	}
	if c.Output.Path == "" {
		c.Output.Path = DefaultOutputPath
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	} else if !utils.IsValidLogLevel(c.Logging.Level) {
		return fmt.Errorf("invalid logging.level: %q", c.Logging.Level)
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	} else if !slices.Contains(LogFormats, c.Logging.Format) {
		return fmt.Errorf("invalid logging.format: %q (want one of %v)", c.Logging.Format, LogFormats)
	}
	return nil
}
