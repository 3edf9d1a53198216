// Package config provides functionality for loading tool settings from an
// optional config file and PATCHSHEBANGS_* environment variables using the
// Viper library.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configurable settings of the tool.
type Config struct {
	PathVar     string `mapstructure:"path_var"`      // env var naming the build search path
	HostPathVar string `mapstructure:"host_path_var"` // env var naming the host search path
	StorePrefix string `mapstructure:"store_prefix"`  // interpreters under this prefix are already canonical
}

// Load reads configuration from a file named "patchshebangs" in the
// current directory, or from file when given, with PATCHSHEBANGS_*
// environment variables overriding on top of the defaults. A missing
// default config file is not an error; a missing explicit one is.
func Load(file string) (*Config, error) {
	v := viper.New()
	v.SetDefault("path_var", "PATH")
	v.SetDefault("host_path_var", "HOST_PATH")
	v.SetDefault("store_prefix", "/nix/store")

	v.SetEnvPrefix("PATCHSHEBANGS")
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("patchshebangs")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// Default returns the built-in settings. It is used as a fallback when
// loading a configuration file fails.
func Default() *Config {
	return &Config{
		PathVar:     "PATH",
		HostPathVar: "HOST_PATH",
		StorePrefix: "/nix/store",
	}
}
