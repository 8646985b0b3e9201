package config

import (
	"os"
	"path/filepath"

	"github.com/quantmind-br/contentpack/internal/utils"
)

// Default values
const (
	// Input and output defaults, relative to the site root
	DefaultRegistryPath = "content_build/doc_registry.json"
	DefaultOutputPath   = "content/index.json"

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = utils.FormatPretty

	// ConfigName is the config file name without extension
	ConfigName = "contentpack"

	// EnvPrefix prefixes environment overrides, e.g. CONTENTPACK_OUTPUT_PATH
	EnvPrefix = "CONTENTPACK"
)

// LogFormats lists the accepted logging.format values
var LogFormats = []string{utils.FormatPretty, utils.FormatJSON}

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".contentpack"
	}
	return filepath.Join(home, ".contentpack")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), ConfigName+".yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Registry: RegistryConfig{
			Path: DefaultRegistryPath,
		},
		Output: OutputConfig{
			Path:     DefaultOutputPath,
			Compress: false,
			DryRun:   false,
		},
		Validation: ValidationConfig{
			Strict: false,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
