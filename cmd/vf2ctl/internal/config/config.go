// Package config loads vf2ctl's run configuration: matching mode,
// mapping limit, and the attribute-equality toggle, from (in ascending
// priority) a YAML config file, VF2CTL_* environment variables, and
// command-line flags bound in by the caller.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds vf2ctl's run configuration.
type Config struct {
	Mode         string `mapstructure:"mode"`
	Limit        int    `mapstructure:"limit"`
	NoAttributes bool   `mapstructure:"no_attributes"`
}

// Load reads configPath (if non-empty) or the standard "vf2ctl.{yaml,...}"
// locations, overlays VF2CTL_* environment variables, and returns the
// resulting Config. A missing config file is not an error: defaults apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("vf2ctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("VF2CTL")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshaling: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", "subgraph")
	v.SetDefault("limit", 0)
	v.SetDefault("no_attributes", false)
}
