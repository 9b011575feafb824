package random

import (
	"math"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/getmockd/oasfaker/internal/regexsample"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Deterministic(t *testing.T) {
	a, b := New(42), New(42)
	for range 20 {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
		assert.Equal(t, a.Int64Range(-50, 50), b.Int64Range(-50, 50))
		assert.Equal(t, a.Float64Range(0, 1), b.Float64Range(0, 1))
		assert.Equal(t, a.Word(), b.Word())
		assert.Equal(t, a.UUID(), b.UUID())
		assert.Equal(t, a.Email(), b.Email())
	}
}

func TestIntN(t *testing.T) {
	r := New(1)
	assert.Equal(t, 0, r.IntN(0))
	assert.Equal(t, 0, r.IntN(-3))
	for range 200 {
		n := r.IntN(5)
		assert.True(t, n >= 0 && n < 5)
	}
}

func TestInt64Range(t *testing.T) {
	r := New(7)
	assert.Equal(t, int64(3), r.Int64Range(3, 3))
	assert.Equal(t, int64(9), r.Int64Range(9, 2))

	seen := map[int64]bool{}
	for range 500 {
		v := r.Int64Range(-2, 2)
		require.True(t, v >= -2 && v <= 2, "got %d", v)
		seen[v] = true
	}
	assert.Len(t, seen, 5, "every value in a small range shows up")

	for range 100 {
		_ = r.Int64Range(math.MinInt64, math.MaxInt64)
		v := r.Int64Range(math.MaxInt64-1, math.MaxInt64)
		assert.True(t, v >= math.MaxInt64-1)
	}
}

func TestFloat64Range(t *testing.T) {
	r := New(7)
	assert.Equal(t, 1.5, r.Float64Range(1.5, 1.5))
	for range 200 {
		v := r.Float64Range(-0.5, 0.25)
		assert.True(t, v >= -0.5 && v <= 0.25)

		big := r.Float64Range(-math.MaxFloat64, math.MaxFloat64)
		assert.False(t, math.IsInf(big, 0))
	}
}

func TestUUID(t *testing.T) {
	r := New(3)
	re := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	seen := map[string]bool{}
	for range 100 {
		id := r.UUID()
		require.Regexp(t, re, id)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestRegex(t *testing.T) {
	r := New(8)
	for range 20 {
		assert.Regexp(t, `^[A-Z]{3}-\d{2}$`, r.Regex(`^[A-Z]{3}-\d{2}$`))
	}

	lookahead := `^(?=abc)[a-z]+$`
	assert.Equal(t, regexsample.Sample(lookahead), r.Regex(lookahead))
	assert.Equal(t, r.Regex(lookahead), r.Regex(lookahead))
}

func TestDate(t *testing.T) {
	r := New(5)
	lo := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	hi := time.Date(2199, 1, 1, 0, 0, 0, 0, time.UTC)
	for range 50 {
		d := r.Date(lo, hi)
		assert.False(t, d.Before(lo))
		assert.False(t, d.After(hi))
	}
	assert.Equal(t, lo, r.Date(lo, lo))
}

func TestPassword(t *testing.T) {
	r := New(5)
	assert.Equal(t, "", r.Password(0))
	for _, n := range []int{1, 8, 33} {
		assert.Len(t, r.Password(n), n)
	}
}

func TestPick(t *testing.T) {
	r := New(9)
	assert.Equal(t, "", Pick(r, []string(nil)))
	items := []string{"a", "b", "c"}
	for range 20 {
		assert.Contains(t, items, Pick(r, items))
	}
}

func TestRand_ConcurrentUse(t *testing.T) {
	r := NewRandom()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				_ = r.IntN(10)
				_ = r.Word()
				_ = r.UUID()
			}
		}()
	}
	wg.Wait()
}
