package faker

import (
	"testing"

	"github.com/getmockd/oasfaker/pkg/ordered"
	"github.com/getmockd/oasfaker/pkg/random"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func staticOpts() Options { return Options{Strategy: StrategyStatic} }

// newGen returns a generator with a fixed seed.
func newGen(t *testing.T, opts Options, seed uint64) *Generator {
	t.Helper()
	g, err := New(opts, WithRand(random.New(seed)))
	require.NoError(t, err)
	return g
}

// asObject asserts that v is a generated object.
func asObject(t *testing.T, v any) *ordered.Map {
	t.Helper()
	m, ok := v.(*ordered.Map)
	require.Truef(t, ok, "expected *ordered.Map, got %T", v)
	return m
}
