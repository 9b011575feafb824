package faker

import (
	"reflect"
	"slices"

	"github.com/getmockd/oasfaker/pkg/schema"
)

// defaultItemSpread is how far maxItems reaches above minItems when it is
// not declared.
const defaultItemSpread = 15

// array fills an array with values of the item schema.
func (g *Generator) array(s *schema.Schema, request bool, depth int) (any, error) {
	lo, hi := g.itemBounds(s)
	count := lo
	if !g.opts.static() {
		count = int(g.rnd.Int64Range(int64(lo), int64(hi)))
	}

	items := make([]any, 0, count)
	if s.Items == nil {
		return items, nil
	}

	// Static generation repeats itself, so a duplicate will never go away.
	budget := g.opts.maxDuplicates()
	if g.opts.static() {
		budget = 0
	}

	discarded := 0
	for len(items) < count {
		v, err := g.dispatch(s.Items, request, depth+1)
		if err != nil {
			return nil, err
		}
		if s.UniqueItems && containsEqual(items, v) {
			discarded++
			if discarded > budget {
				return nil, &UniqueItemsError{Want: count, Got: len(items), Discarded: discarded}
			}
			continue
		}
		items = append(items, v)
	}
	return items, nil
}

// itemBounds computes the item count window. The static strategy starts from
// exactly one item. MinItems and MaxItems options only narrow the window; if
// raising the minimum passes the maximum, the maximum follows it.
func (g *Generator) itemBounds(s *schema.Schema) (lo, hi int) {
	if s.MinItems != nil {
		lo = *s.MinItems
	}
	hi = lo + defaultItemSpread
	if s.MaxItems != nil {
		hi = *s.MaxItems
	}
	if g.opts.static() {
		lo, hi = 1, 1
	}

	if m := g.opts.MinItems; m != nil && *m > lo {
		lo = *m
	}
	if m := g.opts.MaxItems; m != nil && *m < hi {
		hi = *m
		lo = min(lo, hi)
	}

	lo = max(lo, 0)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

func containsEqual(items []any, v any) bool {
	return slices.ContainsFunc(items, func(e any) bool {
		return reflect.DeepEqual(e, v)
	})
}
