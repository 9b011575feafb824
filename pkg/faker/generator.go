package faker

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/getmockd/oasfaker/pkg/logging"
	"github.com/getmockd/oasfaker/pkg/ordered"
	"github.com/getmockd/oasfaker/pkg/random"
	"github.com/getmockd/oasfaker/pkg/schema"
)

// Generator produces values for schemas under a fixed set of Options.
type Generator struct {
	opts Options
	rnd  random.Faker
	log  *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the randomness source. The default is random.NewRandom().
func WithRand(r random.Faker) Option {
	return func(g *Generator) {
		if r != nil {
			g.rnd = r
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = logging.Component(l, "faker")
		}
	}
}

// New validates opts and returns a Generator.
func New(opts Options, options ...Option) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{
		opts: opts,
		log:  logging.Nop(),
	}
	for _, o := range options {
		o(g)
	}
	if g.rnd == nil {
		g.rnd = random.NewRandom()
	}
	return g, nil
}

// Options returns the generation options.
func (g *Generator) Options() Options {
	return g.opts
}

// Generate produces a value for s in response context: writeOnly properties
// are left out.
func (g *Generator) Generate(s *schema.Schema) (any, error) {
	return g.generate(s, false)
}

// GenerateRequest produces a value for s in request context: readOnly
// properties are left out.
func (g *Generator) GenerateRequest(s *schema.Schema) (any, error) {
	return g.generate(s, true)
}

func (g *Generator) generate(s *schema.Schema, request bool) (any, error) {
	start := time.Now()
	resolved, err := Resolve(s, g.opts, g.rnd)
	if err != nil {
		return nil, err
	}
	v, err := g.dispatch(resolved, request, 0)
	if err != nil {
		g.log.Debug("generation failed", "strategy", g.opts.Strategy.String(), "request", request, "error", err)
		return nil, err
	}
	g.log.Debug("generated value",
		"strategy", g.opts.Strategy.String(),
		"request", request,
		"type", typeName(resolved),
		"duration", time.Since(start),
	)
	return v, nil
}

// dispatch routes a resolved schema to the synthesizer for its type.
func (g *Generator) dispatch(s *schema.Schema, request bool, depth int) (any, error) {
	if depth > g.opts.maxDepth() {
		return nil, fmt.Errorf("%w (%d)", ErrMaxDepth, g.opts.maxDepth())
	}
	if s == nil {
		return ordered.New(0), nil
	}
	switch s.Type {
	case schema.TypeArray:
		return g.array(s, request, depth)
	case schema.TypeObject:
		return g.object(s, request, depth)
	case schema.TypeString:
		return g.string(s), nil
	case schema.TypeBoolean:
		return g.boolean(s), nil
	case schema.TypeInteger, schema.TypeNumber:
		return g.number(s), nil
	case schema.TypeUntyped:
		if s.Properties.Len() > 0 {
			return g.object(s, request, depth)
		}
		if g.opts.static() {
			return staticScalar(s, untypedPolicy), nil
		}
	}
	return ordered.New(0), nil
}

// untypedPolicy lets static generation honor a default or example on a node
// without a type. Anything else becomes an empty object.
var untypedPolicy = scalarPolicy{
	fallback: func(*schema.Schema) any { return ordered.New(0) },
}

func typeName(s *schema.Schema) string {
	if s == nil || s.Type == schema.TypeUntyped {
		return "untyped"
	}
	return s.Type.String()
}
