package faker

import (
	"github.com/getmockd/oasfaker/pkg/random"
	"github.com/getmockd/oasfaker/pkg/schema"
)

var booleanPolicy = scalarPolicy{
	fallback: func(*schema.Schema) any { return true },
}

func (g *Generator) boolean(s *schema.Schema) any {
	if g.opts.static() {
		return staticScalar(s, booleanPolicy)
	}
	if len(s.Enum) > 0 {
		return random.Pick(g.rnd, s.Enum)
	}
	return g.rnd.IntN(2) == 1
}
