package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoadFrom resolves configuration through v. Precedence, highest first:
// values set or bound on v, CONTENTPACK_* environment variables, the config
// file, defaults. Without an explicit config file, contentpack.yaml is looked
// up in the working directory and then in ConfigDir; a missing file is fine.
// An explicit file set with v.SetConfigFile must exist.
func LoadFrom(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	explicit := v.ConfigFileUsed() != ""
	if !explicit {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(ConfigDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("registry.path", defaults.Registry.Path)
	v.SetDefault("output.path", defaults.Output.Path)
	v.SetDefault("output.compress", defaults.Output.Compress)
	v.SetDefault("output.dry_run", defaults.Output.DryRun)
	v.SetDefault("validation.strict", defaults.Validation.Strict)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
}
