package faker

import (
	"fmt"

	"github.com/getmockd/oasfaker/pkg/ordered"
	"github.com/getmockd/oasfaker/pkg/schema"
)

// object builds an object from the declared properties.
func (g *Generator) object(s *schema.Schema, request bool, depth int) (any, error) {
	static := g.opts.static()
	if static && s.Example != nil {
		return s.Example, nil
	}

	include := g.selectProperties(s)
	out := ordered.New(len(include))
	for name, ps := range s.Properties.All() {
		if !include[name] || !visible(ps, request) {
			continue
		}
		v, err := g.dispatch(ps, request, depth+1)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", name, err)
		}
		if static && v == nil && ps != nil && ps.Nullable && !s.IsRequired(name) && !g.opts.AlwaysFakeOptionals {
			continue
		}
		out.Set(name, v)
	}
	return out, nil
}

// selectProperties returns the property names to visit. Required names are
// always selected. The dynamic strategy adds a random subset of the optional
// names, everything else visits them all.
func (g *Generator) selectProperties(s *schema.Schema) map[string]bool {
	names := s.Properties.Names()
	include := make(map[string]bool, len(names))

	var optional []string
	for _, name := range names {
		if s.IsRequired(name) {
			include[name] = true
			continue
		}
		optional = append(optional, name)
	}

	if g.opts.static() || g.opts.AlwaysFakeOptionals {
		for _, name := range optional {
			include[name] = true
		}
		return include
	}

	// Partial Fisher-Yates: the first n entries become a uniform sample.
	n := g.rnd.IntN(len(optional) + 1)
	for i := 0; i < n; i++ {
		j := i + g.rnd.IntN(len(optional)-i)
		optional[i], optional[j] = optional[j], optional[i]
		include[optional[i]] = true
	}
	return include
}

// visible reports whether a property takes part in the current direction.
func visible(ps *schema.Schema, request bool) bool {
	if ps == nil {
		return true
	}
	if request {
		return !ps.ReadOnly
	}
	return !ps.WriteOnly
}
