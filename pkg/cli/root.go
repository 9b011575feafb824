package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/getmockd/oasfaker/pkg/cli/internal/output"
	"github.com/getmockd/oasfaker/pkg/config"
	"github.com/getmockd/oasfaker/pkg/mockgen"
	"github.com/spf13/cobra"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// globalFlags holds the persistent flags shared by every subcommand.
type globalFlags struct {
	configPath          string
	strategy            string
	seed                uint64
	minItems            int
	maxItems            int
	alwaysFakeOptionals bool
	validateSpec        bool
	output              string
	selectPath          string
	logLevel            string
	logFormat           string
}

// app is the state built once the persistent flags are parsed.
type app struct {
	flags  globalFlags
	cfg    *config.Config
	log    *slog.Logger
	format output.Format
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "oasfaker",
		Short: "oasfaker generates fake data from OpenAPI schemas",
		Long: `oasfaker synthesizes request bodies, response bodies and component schema
values that conform to an OpenAPI 3.x document.

Values are random by default ("dynamic" strategy) or deterministic with
--strategy static, which also prefers the examples declared in the document.

Configuration can be provided via flags, OASFAKER_* environment variables, or a
config file (--config, .oasfaker.yaml, or ~/.config/oasfaker/config.yaml).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", "", "Config file path")
	pf.StringVar(&a.flags.strategy, "strategy", "", "Generation strategy: dynamic or static")
	pf.Uint64Var(&a.flags.seed, "seed", 0, "Seed for reproducible dynamic output")
	pf.IntVar(&a.flags.minItems, "min-items", 0, "Lower bound for generated array lengths")
	pf.IntVar(&a.flags.maxItems, "max-items", 0, "Upper bound for generated array lengths")
	pf.BoolVar(&a.flags.alwaysFakeOptionals, "always-fake-optionals", false, "Always generate optional properties")
	pf.BoolVar(&a.flags.validateSpec, "validate-spec", false, "Validate the document with kin-openapi before use")
	pf.StringVarP(&a.flags.output, "output", "o", "json", "Output format: json or yaml")
	pf.StringVar(&a.flags.selectPath, "select", "", "JSONPath expression applied to the generated value")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&a.flags.logFormat, "log-format", "", "Log format: text or json")

	root.AddCommand(
		newRequestCmd(a),
		newResponseCmd(a),
		newSchemaCmd(a),
		newComponentsCmd(a),
		newPathsCmd(a),
		newRegexSampleCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)
	return root
}

// Execute runs the CLI and exits on error. It is called by main.main().
func Execute() {
	os.Exit(Main())
}

// Main runs the CLI and returns the process exit code.
func Main() int {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

// setup resolves the configuration with precedence defaults < file < env < flags.
func (a *app) setup(cmd *cobra.Command) error {
	path := a.flags.configPath
	if path == "" {
		path = config.ConfigFromEnv()
	}
	if path == "" {
		path = config.Discover()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := config.LoadEnv(cfg); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("strategy") {
		cfg.Strategy = a.flags.strategy
		cfg.SetSource("strategy", config.SourceFlag)
	}
	if flags.Changed("seed") {
		seed := a.flags.seed
		cfg.Seed = &seed
		cfg.SetSource("seed", config.SourceFlag)
	}
	if flags.Changed("min-items") {
		n := a.flags.minItems
		cfg.MinItems = &n
		cfg.SetSource("minItems", config.SourceFlag)
	}
	if flags.Changed("max-items") {
		n := a.flags.maxItems
		cfg.MaxItems = &n
		cfg.SetSource("maxItems", config.SourceFlag)
	}
	if flags.Changed("always-fake-optionals") {
		cfg.AlwaysFakeOptionals = a.flags.alwaysFakeOptionals
		cfg.SetSource("alwaysFakeOptionals", config.SourceFlag)
	}
	if flags.Changed("validate-spec") {
		cfg.ValidateSpec = a.flags.validateSpec
		cfg.SetSource("validateSpec", config.SourceFlag)
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.flags.logLevel
		cfg.SetSource("logLevel", config.SourceFlag)
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.flags.logFormat
		cfg.SetSource("logFormat", config.SourceFlag)
	}

	format, err := output.ParseFormat(a.flags.output)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.format = format
	a.log = cfg.Logger(cmd.ErrOrStderr())
	if path != "" {
		a.log.Debug("loaded config file", "path", path)
	}
	return nil
}

// faker loads the document at specPath with the resolved configuration.
func (a *app) faker(specPath string) (*mockgen.Faker, error) {
	opts, err := a.cfg.Options()
	if err != nil {
		return nil, err
	}
	return mockgen.FromFile(specPath,
		mockgen.WithOptions(opts),
		mockgen.WithRand(a.cfg.Rand()),
		mockgen.WithLogger(a.log),
		mockgen.WithValidation(a.cfg.ValidateSpec),
	)
}

// print applies --select and writes v in the chosen format.
func (a *app) print(w io.Writer, v any) error {
	if a.flags.selectPath != "" {
		selected, err := selectPath(v, a.flags.selectPath)
		if err != nil {
			return err
		}
		v = selected
	}
	return output.Write(w, a.format, v)
}
