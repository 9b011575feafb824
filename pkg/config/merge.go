package config

// fileConfig mirrors Config with pointers so that an explicit false or zero in
// a file can be told apart from an absent key.
type fileConfig struct {
	Strategy            *string `yaml:"strategy"`
	MinItems            *int    `yaml:"minItems"`
	MaxItems            *int    `yaml:"maxItems"`
	AlwaysFakeOptionals *bool   `yaml:"alwaysFakeOptionals"`
	MaxDepth            *int    `yaml:"maxDepth"`
	MaxDuplicates       *int    `yaml:"maxDuplicates"`
	Seed                *uint64 `yaml:"seed"`
	ValidateSpec        *bool   `yaml:"validateSpec"`
	LogLevel            *string `yaml:"logLevel"`
	LogFormat           *string `yaml:"logFormat"`
}

// merge applies every value present in src to target.
func merge(target *Config, src *fileConfig, source string) {
	if src == nil {
		return
	}
	if src.Strategy != nil {
		target.Strategy = *src.Strategy
		target.SetSource("strategy", source)
	}
	if src.MinItems != nil {
		target.MinItems = src.MinItems
		target.SetSource("minItems", source)
	}
	if src.MaxItems != nil {
		target.MaxItems = src.MaxItems
		target.SetSource("maxItems", source)
	}
	if src.AlwaysFakeOptionals != nil {
		target.AlwaysFakeOptionals = *src.AlwaysFakeOptionals
		target.SetSource("alwaysFakeOptionals", source)
	}
	if src.MaxDepth != nil {
		target.MaxDepth = *src.MaxDepth
		target.SetSource("maxDepth", source)
	}
	if src.MaxDuplicates != nil {
		target.MaxDuplicates = *src.MaxDuplicates
		target.SetSource("maxDuplicates", source)
	}
	if src.Seed != nil {
		target.Seed = src.Seed
		target.SetSource("seed", source)
	}
	if src.ValidateSpec != nil {
		target.ValidateSpec = *src.ValidateSpec
		target.SetSource("validateSpec", source)
	}
	if src.LogLevel != nil {
		target.LogLevel = *src.LogLevel
		target.SetSource("logLevel", source)
	}
	if src.LogFormat != nil {
		target.LogFormat = *src.LogFormat
		target.SetSource("logFormat", source)
	}
}
