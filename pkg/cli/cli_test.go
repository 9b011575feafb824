package cli

import (
	"os"
	"testing"

	"github.com/getmockd/oasfaker/pkg/ordered"
	"github.com/rogpeppe/go-internal/testscript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"oasfaker": func() { os.Exit(Main()) },
	})
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
		Setup: func(env *testscript.Env) error {
			// Keep a developer's own config out of the scripts.
			env.Setenv("XDG_CONFIG_HOME", env.WorkDir+"/.config")
			return nil
		},
	})
}

func TestSelectPath(t *testing.T) {
	v := ordered.FromPairs(
		"name", "rex",
		"tags", []any{"a", "b"},
		"owner", ordered.FromPairs("id", int64(7)),
	)

	got, err := selectPath(v, "$.owner.id")
	require.NoError(t, err)
	assert.Equal(t, int64(7), got)

	got, err = selectPath(v, "$.tags[*]")
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, got)

	got, err = selectPath(v, "$.owner")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": int64(7)}, got)

	_, err = selectPath(v, "$.missing")
	assert.ErrorIs(t, err, errNoMatch)

	_, err = selectPath(v, "$.[")
	assert.Error(t, err)
}
