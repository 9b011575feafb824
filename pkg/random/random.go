// Package random provides the randomness capability used by dynamic
// generation.
//
// Everything random flows through a Source (numbers) or a Faker (numbers plus
// format-aware strings). Rand implements both, is seedable for reproducible
// output and is safe for concurrent use.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"
	mathrand "math/rand/v2"
	"regexp/syntax"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/getmockd/oasfaker/internal/regexsample"
	"github.com/google/uuid"
)

// Source is the numeric randomness needed by the generators.
type Source interface {
	// IntN returns a value in [0, n). It returns 0 when n <= 0.
	IntN(n int) int
	// Int64Range returns a value in [lo, hi]. It returns lo when hi <= lo.
	Int64Range(lo, hi int64) int64
	// Float64Range returns a value in [lo, hi]. It returns lo when hi <= lo.
	Float64Range(lo, hi float64) float64
}

// Faker adds format-aware string generation to Source.
type Faker interface {
	Source
	Word() string
	Email() string
	URL() string
	DomainName() string
	IPv4() string
	IPv6() string
	UUID() string
	Date(lo, hi time.Time) time.Time
	// Regex returns a string matching pattern.
	Regex(pattern string) string
	// Password returns n random printable ASCII characters.
	Password(n int) string
}

// Rand is the default Faker: a PCG generator for numbers and UUIDs and a
// gofakeit instance for words and network values, both derived from one seed.
type Rand struct {
	mu   sync.Mutex
	rng  *mathrand.Rand
	fake *gofakeit.Faker
}

var _ Faker = (*Rand)(nil)

// New returns a Rand whose whole output is determined by seed.
func New(seed uint64) *Rand {
	return &Rand{
		rng:  mathrand.New(mathrand.NewPCG(seed, 0)),
		fake: gofakeit.NewFaker(mathrand.NewPCG(seed, 1), false),
	}
}

// NewRandom returns a Rand seeded from crypto/rand.
func NewRandom() *Rand {
	var b [8]byte
	_, _ = crand.Read(b[:])
	return New(binary.LittleEndian.Uint64(b[:]))
}

// Pick returns a uniformly chosen element of items, or the zero value when
// items is empty.
func Pick[T any](src Source, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[src.IntN(len(items))]
}

func (r *Rand) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}

func (r *Rand) Int64Range(lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	span := uint64(hi) - uint64(lo)
	if span == math.MaxUint64 {
		return int64(r.rng.Uint64())
	}
	return int64(uint64(lo) + r.rng.Uint64N(span+1))
}

func (r *Rand) Float64Range(lo, hi float64) float64 {
	if !(hi > lo) {
		return lo
	}
	r.mu.Lock()
	f := r.rng.Float64()
	r.mu.Unlock()
	// Interpolate instead of lo+f*(hi-lo) so spans near the float64 limits
	// do not overflow.
	v := lo*(1-f) + hi*f
	return min(max(v, lo), hi)
}

func (r *Rand) Word() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fake.Word()
}

func (r *Rand) Email() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fake.Email()
}

func (r *Rand) URL() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fake.URL()
}

func (r *Rand) DomainName() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fake.DomainName()
}

func (r *Rand) IPv4() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fake.IPv4Address()
}

func (r *Rand) IPv6() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fake.IPv6Address()
}

// UUID returns a version 4 UUID built from the seeded stream.
func (r *Rand) UUID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, err := uuid.NewRandomFromReader(rngReader{r.rng})
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (r *Rand) Date(lo, hi time.Time) time.Time {
	if !hi.After(lo) {
		return lo
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fake.DateRange(lo, hi)
}

// Regex returns a random match of pattern. Patterns outside the RE2 syntax,
// such as lookaheads and backreferences, get the deterministic sample of
// regexsample instead.
func (r *Rand) Regex(pattern string) string {
	if _, err := syntax.Parse(pattern, syntax.Perl); err != nil {
		return regexsample.Sample(pattern)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fake.Regex(pattern)
}

func (r *Rand) Password(n int) string {
	if n <= 0 {
		return ""
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	// gofakeit never returns fewer than five characters.
	return r.fake.Password(true, true, true, true, false, max(n, 5))[:n]
}

// rngReader adapts a PRNG to io.Reader for uuid.NewRandomFromReader.
type rngReader struct {
	rng *mathrand.Rand
}

func (rr rngReader) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 8 {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], rr.rng.Uint64())
		copy(p[i:], b[:])
	}
	return len(p), nil
}
