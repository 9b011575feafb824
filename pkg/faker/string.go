package faker

import (
	"encoding/base64"
	"time"

	"github.com/getmockd/oasfaker/internal/regexsample"
	"github.com/getmockd/oasfaker/internal/strutil"
	"github.com/getmockd/oasfaker/pkg/random"
	"github.com/getmockd/oasfaker/pkg/schema"
)

const (
	staticString      = "string"
	staticPassword    = "pa$$word"
	passwordFiller    = "qwerty!@#$%^123456"
	defaultWordMaxLen = 140
	defaultPassMinLen = 8
	defaultPassMaxLen = 16
)

var (
	earliestDate = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	latestDate   = time.Date(2199, 1, 1, 0, 0, 0, 0, time.UTC)
)

var stringPolicy = scalarPolicy{
	format: func(s *schema.Schema, format string) (any, bool) {
		if format == FormatPassword {
			return staticPasswordSample(s), true
		}
		v, ok := staticStrings[format]
		return v, ok
	},
	pattern: func(s *schema.Schema) any {
		return regexsample.Sample(s.Pattern)
	},
	fallback: func(s *schema.Schema) any {
		return fitLength(staticString, s)
	},
}

// string returns a string, or nil for a nullable static schema.
func (g *Generator) string(s *schema.Schema) any {
	if g.opts.static() {
		return staticScalar(s, stringPolicy)
	}
	return g.dynamicString(s)
}

func (g *Generator) dynamicString(s *schema.Schema) any {
	if len(s.Enum) > 0 {
		return random.Pick(g.rnd, s.Enum)
	}
	if s.Format != "" {
		return g.formattedString(s)
	}
	if s.Pattern != "" {
		return g.rnd.Regex(s.Pattern)
	}
	return g.words(s)
}

func (g *Generator) formattedString(s *schema.Schema) string {
	switch foldFormat(s.Format) {
	case FormatDate:
		return g.rnd.Date(earliestDate, latestDate).Format(time.DateOnly)
	case FormatDateTime:
		return g.rnd.Date(earliestDate, latestDate).Format(time.RFC3339)
	case FormatEmail:
		return g.rnd.Email()
	case FormatUUID:
		return g.rnd.UUID()
	case FormatURI:
		return g.rnd.URL()
	case FormatHostname:
		return g.rnd.DomainName()
	case FormatIPv4:
		return g.rnd.IPv4()
	case FormatIPv6:
		return g.rnd.IPv6()
	case FormatByte:
		return base64.StdEncoding.EncodeToString([]byte(g.rnd.Word()))
	case FormatBinary:
		return strutil.ToBinary(g.rnd.Word())
	case FormatPassword:
		lo, hi := passwordBounds(s)
		return g.rnd.Password(int(g.rnd.Int64Range(int64(lo), int64(hi))))
	default:
		return g.words(s)
	}
}

// words concatenates random words until minLength is reached and truncates
// to maxLength, which defaults to max(140, minLength+1).
func (g *Generator) words(s *schema.Schema) string {
	lo, hi := lengthBounds(s)
	out := g.word()
	for len(out) < lo {
		out += g.word()
	}
	if len(out) > hi {
		out = out[:hi]
	}
	return out
}

func (g *Generator) word() string {
	if w := g.rnd.Word(); w != "" {
		return w
	}
	return staticString
}

// lengthBounds returns minLength (default 0) and maxLength (default
// max(140, minLength+1)), with the maximum never below the minimum.
func lengthBounds(s *schema.Schema) (lo, hi int) {
	if s.MinLength != nil {
		lo = max(*s.MinLength, 0)
	}
	hi = max(defaultWordMaxLen, lo+1)
	if s.MaxLength != nil {
		hi = max(*s.MaxLength, lo)
	}
	return lo, hi
}

// passwordBounds is lengthBounds with password-sized defaults.
func passwordBounds(s *schema.Schema) (lo, hi int) {
	lo, hi = defaultPassMinLen, defaultPassMaxLen
	if s.MinLength != nil {
		lo = max(*s.MinLength, 0)
		hi = max(hi, lo)
	}
	if s.MaxLength != nil {
		hi = max(*s.MaxLength, 0)
		if s.MinLength == nil {
			lo = min(lo, hi)
		}
	}
	return lo, max(lo, hi)
}

// fitLength repeats text up to exactly minLength, or truncates it to
// maxLength.
func fitLength(text string, s *schema.Schema) string {
	lo, hi := lengthBounds(s)
	if len(text) < lo {
		return strutil.EnsureLength(text, &lo, &lo)
	}
	if len(text) > hi {
		return text[:hi]
	}
	return text
}

// staticPasswordSample extends "pa$$word" with a fixed filler to exactly
// minLength, or truncates it to maxLength.
func staticPasswordSample(s *schema.Schema) string {
	lo, _ := lengthBounds(s)
	if lo > len(staticPassword) {
		return strutil.EnsureLength(staticPassword+"_"+passwordFiller, &lo, &lo)
	}
	return fitLength(staticPassword, s)
}
