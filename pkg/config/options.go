package config

import (
	"io"
	"log/slog"

	"github.com/getmockd/oasfaker/pkg/faker"
	"github.com/getmockd/oasfaker/pkg/logging"
	"github.com/getmockd/oasfaker/pkg/random"
)

// Options converts the generation settings to validated faker.Options.
func (c *Config) Options() (faker.Options, error) {
	strategy, err := faker.ParseStrategy(c.Strategy)
	if err != nil {
		return faker.Options{}, err
	}
	opts := faker.Options{
		MinItems:            c.MinItems,
		MaxItems:            c.MaxItems,
		AlwaysFakeOptionals: c.AlwaysFakeOptionals,
		Strategy:            strategy,
		MaxDepth:            c.MaxDepth,
		MaxDuplicates:       c.MaxDuplicates,
	}
	if err := opts.Validate(); err != nil {
		return faker.Options{}, err
	}
	return opts, nil
}

// Rand returns a source seeded with Seed, or a randomly seeded one.
func (c *Config) Rand() random.Faker {
	if c.Seed != nil {
		return random.New(*c.Seed)
	}
	return random.NewRandom()
}

// Logger builds the logger described by LogLevel and LogFormat.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	return logging.FromStrings(c.LogLevel, c.LogFormat, w)
}
