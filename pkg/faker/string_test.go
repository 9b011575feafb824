package faker

import (
	"encoding/base64"
	"net"
	"regexp"
	"testing"
	"time"

	"github.com/getmockd/oasfaker/internal/regexsample"
	"github.com/getmockd/oasfaker/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString_StaticChain(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want any
	}{
		{"default wins", `{type: string, default: d, example: e, nullable: true, enum: [x]}`, "d"},
		{"example before nullable", `{type: string, example: e, nullable: true}`, "e"},
		{"nullable", `{type: string, nullable: true, enum: [x], format: email}`, nil},
		{"first enum", `{type: string, enum: [x, y], format: email}`, "x"},
		{"format", `{type: string, format: email, pattern: "^a$"}`, "user@example.com"},
		{"format is case-insensitive", `{type: string, format: IPv4}`, "192.168.0.1"},
		{"pattern", `{type: string, pattern: '^\d{3}-[A-Z]{2}$'}`, "111-AA"},
		{"unknown format falls to pattern", `{type: string, format: custom, pattern: '^x+$'}`, "x"},
		{"fallback", `{type: string}`, "string"},
		{"fallback padded", `{type: string, minLength: 10}`, "stringstri"},
		{"fallback truncated", `{type: string, maxLength: 3}`, "str"},
		{"empty default is kept", `{type: string, default: ""}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := newGen(t, staticOpts(), 1).Generate(schema.MustParse(tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestString_StaticFormats(t *testing.T) {
	want := map[string]string{
		"date":      "2019-08-24",
		"date-time": "2019-08-24T14:15:22Z",
		"email":     "user@example.com",
		"uuid":      "095be615-a8ad-4c33-8e9c-c7612fbf6c9f",
		"uri":       "http://example.com",
		"hostname":  "example.com",
		"ipv4":      "192.168.0.1",
		"ipv6":      "2001:0db8:85a3:0000:0000:8a2e:0370:7334",
		"byte":      "c3RyaW5n",
		"binary":    "01101000",
		"password":  "pa$$word",
	}
	g := newGen(t, staticOpts(), 1)
	for format, expected := range want {
		v, err := g.Generate(&schema.Schema{Type: schema.TypeString, Format: format})
		require.NoError(t, err)
		assert.Equal(t, expected, v, format)
	}
}

func TestString_StaticPassword(t *testing.T) {
	tests := []struct {
		min, max *int
		want     string
	}{
		{nil, nil, "pa$$word"},
		{intPtr(8), nil, "pa$$word"},
		{intPtr(12), nil, "pa$$word_qwe"},
		{intPtr(30), nil, "pa$$word_qwerty!@#$%^123456pa$"},
		{nil, intPtr(4), "pa$$"},
	}
	g := newGen(t, staticOpts(), 1)
	for _, tt := range tests {
		s := &schema.Schema{Type: schema.TypeString, Format: "password", MinLength: tt.min, MaxLength: tt.max}
		v, err := g.Generate(s)
		require.NoError(t, err)
		assert.Equal(t, tt.want, v)
	}
}

func TestString_DynamicFormats(t *testing.T) {
	earliest := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	latest := time.Date(2199, 1, 1, 0, 0, 0, 0, time.UTC)
	uuidRe := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

	checks := map[string]func(t *testing.T, s string){
		"date": func(t *testing.T, s string) {
			d, err := time.Parse(time.DateOnly, s)
			require.NoError(t, err)
			assert.False(t, d.Before(earliest) || d.After(latest))
		},
		"date-time": func(t *testing.T, s string) {
			_, err := time.Parse(time.RFC3339, s)
			assert.NoError(t, err)
		},
		"email": func(t *testing.T, s string) { assert.Contains(t, s, "@") },
		"uuid":  func(t *testing.T, s string) { assert.Regexp(t, uuidRe, s) },
		"uri":   func(t *testing.T, s string) { assert.Regexp(t, `^https?://`, s) },
		"hostname": func(t *testing.T, s string) {
			assert.Contains(t, s, ".")
		},
		"ipv4": func(t *testing.T, s string) {
			ip := net.ParseIP(s)
			require.NotNil(t, ip)
			assert.NotNil(t, ip.To4())
		},
		"ipv6": func(t *testing.T, s string) { assert.NotNil(t, net.ParseIP(s)) },
		"byte": func(t *testing.T, s string) {
			_, err := base64.StdEncoding.DecodeString(s)
			assert.NoError(t, err)
		},
		"binary":   func(t *testing.T, s string) { assert.Regexp(t, `^[01]+( [01]+)*$`, s) },
		"password": func(t *testing.T, s string) { assert.True(t, len(s) >= 8 && len(s) <= 16, "len %d", len(s)) },
		"custom":   func(t *testing.T, s string) { assert.NotEmpty(t, s) },
	}
	for format, check := range checks {
		t.Run(format, func(t *testing.T) {
			for seed := range uint64(10) {
				v, err := newGen(t, Options{}, seed).Generate(&schema.Schema{Type: schema.TypeString, Format: format})
				require.NoError(t, err)
				s, ok := v.(string)
				require.True(t, ok)
				check(t, s)
			}
		})
	}
}

func TestString_DynamicEnumAndPattern(t *testing.T) {
	enum := schema.MustParse(`{type: string, enum: [red, green, blue]}`)
	pattern := schema.MustParse(`{type: string, pattern: '^[a-z]{3}-[0-9]{2}$'}`)
	for seed := range uint64(20) {
		g := newGen(t, Options{}, seed)

		v, err := g.Generate(enum)
		require.NoError(t, err)
		assert.Contains(t, []any{"red", "green", "blue"}, v)

		v, err = g.Generate(pattern)
		require.NoError(t, err)
		assert.Regexp(t, `^[a-z]{3}-[0-9]{2}$`, v)
	}
}

func TestString_DynamicUnsupportedPattern(t *testing.T) {
	for _, pattern := range []string{`^(?=abc)[a-z]+$`, `^(a)\1$`, `^(?!x)\d{2}$`} {
		s := &schema.Schema{Type: schema.TypeString, Pattern: pattern}
		for seed := range uint64(3) {
			v, err := newGen(t, Options{}, seed).Generate(s)
			require.NoError(t, err)
			assert.Equal(t, regexsample.Sample(pattern), v, "pattern %s seed %d", pattern, seed)
			assert.NotContains(t, v, "Could not parse")
		}
	}
}

// Lengths only bind words, passwords and unknown formats. Pattern and known
// format outputs keep their natural length.
func TestString_LengthBoundsSkipPatternsAndFormats(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		strategy Strategy
		check    func(t *testing.T, v string)
	}{
		{"static pattern", `{type: string, pattern: '^[a-z]+$', minLength: 5}`, StrategyStatic,
			func(t *testing.T, v string) { assert.Equal(t, "a", v) }},
		{"static email", `{type: string, format: email, maxLength: 5}`, StrategyStatic,
			func(t *testing.T, v string) { assert.Equal(t, "user@example.com", v) }},
		{"dynamic uuid", `{type: string, format: uuid, maxLength: 5}`, StrategyDynamic,
			func(t *testing.T, v string) { assert.Len(t, v, 36) }},
		{"dynamic pattern", `{type: string, pattern: '^[a-z]{2}$', minLength: 5}`, StrategyDynamic,
			func(t *testing.T, v string) { assert.Regexp(t, `^[a-z]{2}$`, v) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := newGen(t, Options{Strategy: tt.strategy}, 4).Generate(schema.MustParse(tt.src))
			require.NoError(t, err)
			tt.check(t, v.(string))
		})
	}
}

func TestString_LengthBounds(t *testing.T) {
	bounds := []struct{ min, max int }{{0, 0}, {0, 5}, {3, 3}, {5, 20}, {30, 40}, {141, 200}}
	for _, b := range bounds {
		for _, format := range []string{"", "password"} {
			s := &schema.Schema{
				Type:      schema.TypeString,
				Format:    format,
				MinLength: intPtr(b.min),
				MaxLength: intPtr(b.max),
			}
			for _, strategy := range []Strategy{StrategyDynamic, StrategyStatic} {
				for seed := range uint64(10) {
					v, err := newGen(t, Options{Strategy: strategy}, seed).Generate(s)
					require.NoError(t, err)
					n := len(v.(string))
					assert.True(t, n >= b.min && n <= b.max,
						"format %q strategy %s: len %d outside [%d, %d]", format, strategy, n, b.min, b.max)
				}
			}
		}
	}
}

func TestString_DynamicDefaultMaxLength(t *testing.T) {
	s := schema.MustParse(`{type: string, minLength: 200}`)
	for seed := range uint64(10) {
		v, err := newGen(t, Options{}, seed).Generate(s)
		require.NoError(t, err)
		n := len(v.(string))
		assert.True(t, n == 200 || n == 201, "got %d", n)
	}
}
