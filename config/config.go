package config

import (
	"github.com/spf13/viper"
	"strings"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

type Config struct {
	Solver struct {
		Alphabet string `mapstructure:"alphabet"`
		Workers  int    `mapstructure:"workers"`
		Strategy string `mapstructure:"strategy"`
	} `mapstructure:"solver"`

	Log struct {
		Level  string `mapstructure:"level"`
		Output string `mapstructure:"output"`
	} `mapstructure:"log"`
}

// Load reads the optional YAML file at path, then applies CRACKME_* environment overrides (for
// example CRACKME_SOLVER_WORKERS=4) over the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	v.SetEnvPrefix("CRACKME")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("solver.alphabet", "")
	v.SetDefault("solver.workers", 0)
	v.SetDefault("solver.strategy", "peel")
	v.SetDefault("log.level", "error")
	v.SetDefault("log.output", "stderr")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
