package faker

import (
	"fmt"

	"github.com/getmockd/oasfaker/pkg/random"
	"github.com/getmockd/oasfaker/pkg/schema"
)

// Resolve flattens every oneOf, allOf and anyOf in s into a single effective
// schema and returns it as a new tree; s is not modified.
//
// Nested schemas (properties, items and the branches themselves) are resolved
// first. Then allOf branches are merged over the node in reverse order, so the
// earliest branch wins a conflict, followed by the chosen oneOf branch and the
// chosen anyOf branch. The static strategy chooses the first branch, the
// dynamic strategy a uniformly random one. anyOf is deliberately treated like
// oneOf: exactly one branch contributes.
//
// The result contains no composition keywords. Schema attributes that are not
// touched by a merge may be shared with s and must be treated as read-only.
func Resolve(s *schema.Schema, opts Options, src random.Source) (*schema.Schema, error) {
	r := &resolver{
		static:   opts.static(),
		src:      src,
		maxDepth: opts.maxDepth(),
	}
	return r.resolve(s, 0)
}

type resolver struct {
	static   bool
	src      random.Source
	maxDepth int
}

func (r *resolver) resolve(s *schema.Schema, depth int) (*schema.Schema, error) {
	if s == nil {
		return nil, nil
	}
	if depth > r.maxDepth {
		return nil, fmt.Errorf("%w (%d)", ErrMaxDepth, r.maxDepth)
	}

	node := *s
	node.OneOf, node.AllOf, node.AnyOf = nil, nil, nil

	if s.Properties != nil {
		props := &schema.Properties{}
		for name, ps := range s.Properties.All() {
			rs, err := r.resolve(ps, depth+1)
			if err != nil {
				return nil, err
			}
			props.Set(name, rs)
		}
		node.Properties = props
	}
	if s.Items != nil {
		items, err := r.resolve(s.Items, depth+1)
		if err != nil {
			return nil, err
		}
		node.Items = items
	}

	out := &node
	for i := len(s.AllOf) - 1; i >= 0; i-- {
		branch, err := r.resolve(s.AllOf[i], depth+1)
		if err != nil {
			return nil, err
		}
		out = schema.Merge(out, branch)
	}
	for _, list := range [][]*schema.Schema{s.OneOf, s.AnyOf} {
		if len(list) == 0 {
			continue
		}
		branch, err := r.resolve(r.choose(list), depth+1)
		if err != nil {
			return nil, err
		}
		out = schema.Merge(out, branch)
	}
	return out, nil
}

func (r *resolver) choose(branches []*schema.Schema) *schema.Schema {
	if r.static {
		return branches[0]
	}
	return random.Pick(r.src, branches)
}
