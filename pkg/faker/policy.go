package faker

import "github.com/getmockd/oasfaker/pkg/schema"

// scalarPolicy holds the type-specific steps of the static chain. A nil step
// is skipped.
type scalarPolicy struct {
	// format returns the fixed sample for s.Format, or false if the format
	// has none.
	format func(s *schema.Schema, format string) (any, bool)
	// pattern returns a sample for s.Pattern.
	pattern func(s *schema.Schema) any
	// fallback is used when no earlier step produced a value.
	fallback func(s *schema.Schema) any
}

// staticStep is one link of the static chain.
type staticStep struct {
	name string
	fn   func(s *schema.Schema, p scalarPolicy) (any, bool)
}

// staticChain is the order in which static generation looks for a scalar
// value. It is shared by strings, numbers and booleans.
var staticChain = []staticStep{
	{"default", func(s *schema.Schema, _ scalarPolicy) (any, bool) {
		return s.Default, s.Default != nil
	}},
	{"example", func(s *schema.Schema, _ scalarPolicy) (any, bool) {
		return s.Example, s.Example != nil
	}},
	{"nullable", func(s *schema.Schema, _ scalarPolicy) (any, bool) {
		return nil, s.Nullable
	}},
	{"enum", func(s *schema.Schema, _ scalarPolicy) (any, bool) {
		if len(s.Enum) == 0 {
			return nil, false
		}
		return s.Enum[0], true
	}},
	{"format", func(s *schema.Schema, p scalarPolicy) (any, bool) {
		if s.Format == "" || p.format == nil {
			return nil, false
		}
		return p.format(s, foldFormat(s.Format))
	}},
	{"pattern", func(s *schema.Schema, p scalarPolicy) (any, bool) {
		if s.Pattern == "" || p.pattern == nil {
			return nil, false
		}
		return p.pattern(s), true
	}},
}

// staticScalar walks staticChain and falls back to p.fallback.
func staticScalar(s *schema.Schema, p scalarPolicy) any {
	v, _ := staticSource(s, p)
	return v
}

// staticSource is staticScalar that also names the step that produced the
// value.
func staticSource(s *schema.Schema, p scalarPolicy) (any, string) {
	for _, step := range staticChain {
		if v, ok := step.fn(s, p); ok {
			return v, step.name
		}
	}
	return p.fallback(s), "fallback"
}
