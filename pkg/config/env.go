package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Environment variable names.
const (
	EnvConfig              = "OASFAKER_CONFIG"
	EnvStrategy            = "OASFAKER_STRATEGY"
	EnvMinItems            = "OASFAKER_MIN_ITEMS"
	EnvMaxItems            = "OASFAKER_MAX_ITEMS"
	EnvAlwaysFakeOptionals = "OASFAKER_ALWAYS_FAKE_OPTIONALS"
	EnvSeed                = "OASFAKER_SEED"
	EnvValidateSpec        = "OASFAKER_VALIDATE_SPEC"
	EnvLogLevel            = "OASFAKER_LOG_LEVEL"
	EnvLogFormat           = "OASFAKER_LOG_FORMAT"
)

// LoadEnv applies the OASFAKER_* variables that are set. Variables that
// cannot be parsed are reported together and leave their value unchanged.
func LoadEnv(cfg *Config) error {
	var errs []error

	if v := os.Getenv(EnvStrategy); v != "" {
		cfg.Strategy = v
		cfg.SetSource("strategy", SourceEnv)
	}

	if v := os.Getenv(EnvMinItems); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MinItems = &n
			cfg.SetSource("minItems", SourceEnv)
		} else {
			errs = append(errs, envError(EnvMinItems, v, err))
		}
	}

	if v := os.Getenv(EnvMaxItems); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxItems = &n
			cfg.SetSource("maxItems", SourceEnv)
		} else {
			errs = append(errs, envError(EnvMaxItems, v, err))
		}
	}

	if v := os.Getenv(EnvAlwaysFakeOptionals); v != "" {
		cfg.AlwaysFakeOptionals = truthy(v)
		cfg.SetSource("alwaysFakeOptionals", SourceEnv)
	}

	if v := os.Getenv(EnvSeed); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = &seed
			cfg.SetSource("seed", SourceEnv)
		} else {
			errs = append(errs, envError(EnvSeed, v, err))
		}
	}

	if v := os.Getenv(EnvValidateSpec); v != "" {
		cfg.ValidateSpec = truthy(v)
		cfg.SetSource("validateSpec", SourceEnv)
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
		cfg.SetSource("logLevel", SourceEnv)
	}

	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
		cfg.SetSource("logFormat", SourceEnv)
	}

	return errors.Join(errs...)
}

// ConfigFromEnv returns the config file path named by OASFAKER_CONFIG.
func ConfigFromEnv() string {
	return os.Getenv(EnvConfig)
}

func truthy(v string) bool {
	return v == "true" || v == "1" || v == "yes"
}

func envError(name, value string, err error) error {
	return fmt.Errorf("%s=%q: %w", name, value, err)
}
