// Package logging configures the structured logger shared by oasfaker
// components.
//
// It wraps log/slog. Generators, document loaders and the CLI accept a
// *slog.Logger; when none is given they use Nop():
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatJSON,
//	})
//	gen, err := faker.New(opts, faker.WithLogger(logger))
//
// Logs always go to stderr by default so that generated values written to
// stdout can be piped without filtering.
package logging
