package schema

import (
	"slices"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getmockd/oasfaker/pkg/ordered"
)

// FromOpenAPI3 converts a kin-openapi schema into a Schema.
//
// kin-openapi keeps properties in a Go map, so the declaration order is lost;
// properties (and keys of literal objects) are ordered alphabetically instead.
// Recursive references are cut the same way Decoder cuts them.
func FromOpenAPI3(ref *openapi3.SchemaRef) *Schema {
	c := &kinConverter{
		done:   make(map[*openapi3.Schema]*Schema),
		active: make(map[*openapi3.Schema]bool),
	}
	return c.convert(ref)
}

type kinConverter struct {
	done   map[*openapi3.Schema]*Schema
	active map[*openapi3.Schema]bool
}

func (c *kinConverter) convert(ref *openapi3.SchemaRef) *Schema {
	if ref == nil || ref.Value == nil {
		return nil
	}
	ks := ref.Value
	if s, ok := c.done[ks]; ok {
		return s
	}
	if c.active[ks] {
		return &Schema{}
	}
	c.active[ks] = true
	defer delete(c.active, ks)

	s := &Schema{
		Format:           ks.Format,
		Pattern:          ks.Pattern,
		Required:         slices.Clone(ks.Required),
		Default:          literal(ks.Default),
		Example:          literal(ks.Example),
		Minimum:          clonePtr(ks.Min),
		Maximum:          clonePtr(ks.Max),
		MultipleOf:       clonePtr(ks.MultipleOf),
		ExclusiveMinimum: ks.ExclusiveMin,
		ExclusiveMaximum: ks.ExclusiveMax,
		MaxLength:        uintPtr(ks.MaxLength),
		MaxItems:         uintPtr(ks.MaxItems),
		UniqueItems:      ks.UniqueItems,
		Nullable:         ks.Nullable,
		ReadOnly:         ks.ReadOnly,
		WriteOnly:        ks.WriteOnly,
	}
	if ks.MinLength > 0 {
		n := int(ks.MinLength)
		s.MinLength = &n
	}
	if ks.MinItems > 0 {
		n := int(ks.MinItems)
		s.MinItems = &n
	}
	if ks.Type != nil {
		for _, t := range ks.Type.Slice() {
			if t == "null" {
				s.Nullable = true
				continue
			}
			if s.Type == TypeUntyped {
				s.Type = ParseType(t)
			}
		}
	}
	for _, e := range ks.Enum {
		s.Enum = append(s.Enum, literal(e))
	}
	if len(ks.Properties) > 0 {
		s.Properties = &Properties{}
		names := make([]string, 0, len(ks.Properties))
		for name := range ks.Properties {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			if ps := c.convert(ks.Properties[name]); ps != nil {
				s.Properties.Set(name, ps)
			}
		}
	}
	s.Items = c.convert(ks.Items)
	s.OneOf = c.convertList(ks.OneOf)
	s.AllOf = c.convertList(ks.AllOf)
	s.AnyOf = c.convertList(ks.AnyOf)

	c.done[ks] = s
	return s
}

func (c *kinConverter) convertList(refs openapi3.SchemaRefs) []*Schema {
	if len(refs) == 0 {
		return nil
	}
	out := make([]*Schema, 0, len(refs))
	for _, r := range refs {
		if s := c.convert(r); s != nil {
			out = append(out, s)
		}
	}
	return out
}

func uintPtr(p *uint64) *int {
	if p == nil {
		return nil
	}
	n := int(*p)
	return &n
}

// literal converts a JSON-decoded value so objects become *ordered.Map.
func literal(v any) any {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		m := ordered.New(len(keys))
		for _, k := range keys {
			m.Set(k, literal(t[k]))
		}
		return m
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = literal(e)
		}
		return out
	default:
		return v
	}
}
