package config

import "github.com/getmockd/oasfaker/pkg/faker"

// Defaults.
const (
	DefaultStrategy  = "dynamic"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// NewDefault creates a Config with default values.
func NewDefault() *Config {
	cfg := &Config{
		Strategy:      DefaultStrategy,
		MaxDepth:      faker.DefaultMaxDepth,
		MaxDuplicates: faker.DefaultMaxDuplicates,
		LogLevel:      DefaultLogLevel,
		LogFormat:     DefaultLogFormat,
		Sources:       make(map[string]string),
	}
	for _, key := range []string{"strategy", "maxDepth", "maxDuplicates", "logLevel", "logFormat"} {
		cfg.Sources[key] = SourceDefault
	}
	return cfg
}
