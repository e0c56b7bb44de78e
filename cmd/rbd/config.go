package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/rbd/matrix"
)

// Configuration keys; each is also a persistent flag and an RBD_* variable.
const (
	keyConfig        = "config"
	keyLogLevel      = "log-level"
	keyEpsilon       = "epsilon"
	keyEigenMethod   = "eigen-method"
	keyMaxIterations = "max-iterations"
	keyPrecision     = "precision"
)

// config is the resolved configuration of one invocation.
type config struct {
	LogLevel      logrus.Level
	Epsilon       float64
	EigenMethod   matrix.EigenMethod
	MaxIterations int
	Precision     int
}

// addConfigFlags registers the settings shared by every command.
func addConfigFlags(fs *pflag.FlagSet) {
	fs.String(keyConfig, "", "config file (yaml, json or toml)")
	fs.String(keyLogLevel, "warning", "log level (debug, info, warning, error)")
	fs.Float64(keyEpsilon, matrix.DefaultEpsilon, "tolerance for symmetry/orthonormality checks")
	fs.String(keyEigenMethod, matrix.DefaultEigenMethod.String(), "symmetric eigen solver (gonum, jacobi)")
	fs.Int(keyMaxIterations, matrix.DefaultMaxIterations, "Jacobi rotation budget")
	fs.Int(keyPrecision, 4, "decimals in printed numbers")
}

// loadConfig resolves flags, RBD_* environment variables and the optional
// config file, in that order of precedence.
func loadConfig(v *viper.Viper, fs *pflag.FlagSet) (config, error) {
	if err := v.BindPFlags(fs); err != nil {
		return config{}, err
	}
	v.SetEnvPrefix("RBD")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	level, err := logrus.ParseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return config{}, err
	}
	method, err := matrix.ParseEigenMethod(v.GetString(keyEigenMethod))
	if err != nil {
		return config{}, err
	}
	cfg := config{
		LogLevel:      level,
		Epsilon:       v.GetFloat64(keyEpsilon),
		EigenMethod:   method,
		MaxIterations: v.GetInt(keyMaxIterations),
		Precision:     v.GetInt(keyPrecision),
	}
	if cfg.Epsilon < 0 || math.IsNaN(cfg.Epsilon) || math.IsInf(cfg.Epsilon, 0) {
		return config{}, fmt.Errorf("%s must be a finite number >= 0, got %g", keyEpsilon, cfg.Epsilon)
	}
	if cfg.MaxIterations <= 0 {
		return config{}, fmt.Errorf("%s must be > 0, got %d", keyMaxIterations, cfg.MaxIterations)
	}
	if cfg.Precision < 0 || cfg.Precision > 15 {
		return config{}, fmt.Errorf("%s must be within 0..15, got %d", keyPrecision, cfg.Precision)
	}

	return cfg, nil
}

// options turns the configuration into matrix options.
func (c config) options() []matrix.Option {
	return []matrix.Option{
		matrix.WithEpsilon(c.Epsilon),
		matrix.WithEigenMethod(c.EigenMethod),
		matrix.WithMaxIterations(c.MaxIterations),
	}
}
