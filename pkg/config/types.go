package config

// Config is the complete configuration of the CLI.
type Config struct {
	// Generation settings
	Strategy            string `yaml:"strategy" json:"strategy"`
	MinItems            *int   `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	MaxItems            *int   `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`
	AlwaysFakeOptionals bool   `yaml:"alwaysFakeOptionals" json:"alwaysFakeOptionals"`
	MaxDepth            int    `yaml:"maxDepth" json:"maxDepth"`
	MaxDuplicates       int    `yaml:"maxDuplicates" json:"maxDuplicates"`

	// Seed makes dynamic output reproducible. Nil means a random seed.
	Seed *uint64 `yaml:"seed,omitempty" json:"seed,omitempty"`

	// Document settings
	ValidateSpec bool `yaml:"validateSpec" json:"validateSpec"`

	// Logging settings
	LogLevel  string `yaml:"logLevel" json:"logLevel"`
	LogFormat string `yaml:"logFormat" json:"logFormat"`

	// Sources tracks where each value came from.
	Sources map[string]string `yaml:"-" json:"-"`
}

// Source identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceFile    = "file"
	SourceEnv     = "env"
	SourceFlag    = "flag"
)

// SetSource records the origin of a value.
func (c *Config) SetSource(key, source string) {
	if c.Sources == nil {
		c.Sources = make(map[string]string)
	}
	c.Sources[key] = source
}
