// Package config resolves the paths of the external solver binaries. Paths
// come from an optional stsbench.yaml in the working directory or from
// STSBENCH_* environment variables, and default to the bare binary names so
// a stock PATH just works.
package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config holds one resolvable path per external collaborator.
type Config struct {
	Kissat        string
	Cadical       string
	Cryptominisat string
	Glucose       string
	Z3            string
	Minizinc      string
	Cbc           string
	Glpsol        string
	// Checker is the optional external solution checker; empty disables the
	// cross-check step.
	Checker string
	// OutDir is the root of the res/<APPROACH>/<n>.json tree.
	OutDir string
}

// Load reads stsbench.yaml (if present) and the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("stsbench")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("STSBENCH")
	v.AutomaticEnv()

	v.SetDefault("kissat", "kissat")
	v.SetDefault("cadical", "cadical")
	v.SetDefault("cryptominisat", "cryptominisat")
	v.SetDefault("glucose", "glucose")
	v.SetDefault("z3", "z3")
	v.SetDefault("minizinc", "minizinc")
	v.SetDefault("cbc", "cbc")
	v.SetDefault("glpsol", "glpsol")
	v.SetDefault("checker", "")
	v.SetDefault("outdir", "res")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
