package faker

import (
	"math"

	"github.com/getmockd/oasfaker/internal/numutil"
	"github.com/getmockd/oasfaker/pkg/random"
	"github.com/getmockd/oasfaker/pkg/schema"
)

// defaultNumberBound is the magnitude of the implicit minimum and maximum.
const defaultNumberBound = math.MaxInt32

var numberPolicy = scalarPolicy{
	format: func(s *schema.Schema, format string) (any, bool) {
		sample, ok := staticNumbers[format]
		if !ok {
			return nil, false
		}
		return numeric(s, fitRange(sample, s)), true
	},
	fallback: func(s *schema.Schema) any {
		return numeric(s, fitRange(0, s))
	},
}

// number returns an int64 for integer schemas and a float64 otherwise. Enum
// members, defaults and examples are returned as declared.
func (g *Generator) number(s *schema.Schema) any {
	if g.opts.static() {
		return staticScalar(s, numberPolicy)
	}
	if len(s.Enum) > 0 {
		return random.Pick(g.rnd, s.Enum)
	}

	lo, hi := -float64(defaultNumberBound), float64(defaultNumberBound)
	if s.Minimum != nil {
		lo = *s.Minimum
	}
	if s.Maximum != nil {
		hi = *s.Maximum
	}
	if s.ExclusiveMinimum {
		lo++
	}
	if s.ExclusiveMaximum {
		hi--
	}

	if m := multipleOf(s); m != 0 {
		// Pick a multiplier so that the product stays within bounds.
		k := g.rnd.Int64Range(toInt64(math.Ceil(lo/m)), toInt64(math.Floor(hi/m)))
		return numeric(s, float64(k)*m)
	}
	if s.Type == schema.TypeInteger {
		return g.rnd.Int64Range(toInt64(math.Ceil(lo)), toInt64(math.Floor(hi)))
	}
	return g.rnd.Float64Range(lo, hi)
}

// multipleOf returns the positive multipleOf of s, or 0 when it is absent,
// zero or one.
func multipleOf(s *schema.Schema) float64 {
	if s.MultipleOf == nil {
		return 0
	}
	m := math.Abs(*s.MultipleOf)
	if m == 1 {
		return 0
	}
	return m
}

func fitRange(sample float64, s *schema.Schema) float64 {
	return numutil.EnsureRange(sample, s.Minimum, s.Maximum, s.ExclusiveMinimum, s.ExclusiveMaximum, s.MultipleOf)
}

// numeric converts v to the Go type used for the schema's type.
func numeric(s *schema.Schema, v float64) any {
	if s.Type == schema.TypeInteger {
		return toInt64(math.Round(v))
	}
	return v
}

// toInt64 converts f, saturating at the int64 limits.
func toInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}
