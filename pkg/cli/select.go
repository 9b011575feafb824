package cli

import (
	"errors"
	"fmt"

	"github.com/getmockd/oasfaker/pkg/ordered"
	"github.com/ohler55/ojg/jp"
)

// errNoMatch is returned when a --select expression matches nothing.
var errNoMatch = errors.New("selection matched nothing")

// selectPath evaluates a JSONPath expression against v. A single match is
// returned as is, several matches as a list.
func selectPath(v any, path string) (any, error) {
	expr, err := jp.ParseString(path)
	if err != nil {
		return nil, fmt.Errorf("invalid --select expression %q: %w", path, err)
	}

	// jp walks plain maps and slices.
	results := expr.Get(ordered.Plain(v))
	switch len(results) {
	case 0:
		return nil, fmt.Errorf("%w: %s", errNoMatch, path)
	case 1:
		return results[0], nil
	default:
		return results, nil
	}
}
