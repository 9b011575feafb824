package schema

import (
	"iter"
	"slices"
)

// Type is the closed set of JSON Schema primitive types a node may declare.
type Type int

// Schema types. TypeUntyped means the node has no (recognized) type.
const (
	TypeUntyped Type = iota
	TypeObject
	TypeArray
	TypeString
	TypeNumber
	TypeInteger
	TypeBoolean
)

var typeNames = [...]string{
	TypeUntyped: "",
	TypeObject:  "object",
	TypeArray:   "array",
	TypeString:  "string",
	TypeNumber:  "number",
	TypeInteger: "integer",
	TypeBoolean: "boolean",
}

// ParseType maps a JSON Schema type name to a Type. Unknown names are untyped.
func ParseType(s string) Type {
	switch s {
	case "object":
		return TypeObject
	case "array":
		return TypeArray
	case "string":
		return TypeString
	case "number":
		return TypeNumber
	case "integer":
		return TypeInteger
	case "boolean":
		return TypeBoolean
	default:
		return TypeUntyped
	}
}

// String returns the JSON Schema spelling of t ("" for TypeUntyped).
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return ""
	}
	return typeNames[t]
}

// IsNumeric reports whether t is number or integer.
func (t Type) IsNumeric() bool {
	return t == TypeNumber || t == TypeInteger
}

// Schema is a normalized OpenAPI 3.x schema object.
//
// Pointer fields distinguish "absent" from a zero value. Default and Example are
// nil when absent. Literal objects inside Default, Example and Enum are *ordered.Map.
type Schema struct {
	Type   Type
	Format string

	Properties *Properties
	Required   []string
	Items      *Schema

	Enum    []any
	Default any
	Example any

	Minimum          *float64
	Maximum          *float64
	ExclusiveMinimum bool
	ExclusiveMaximum bool
	MultipleOf       *float64

	MinLength *int
	MaxLength *int
	Pattern   string

	MinItems    *int
	MaxItems    *int
	UniqueItems bool

	Nullable  bool
	ReadOnly  bool
	WriteOnly bool

	OneOf []*Schema
	AllOf []*Schema
	AnyOf []*Schema
}

// HasComposition reports whether s carries any oneOf/allOf/anyOf keyword.
func (s *Schema) HasComposition() bool {
	return s != nil && (len(s.OneOf) > 0 || len(s.AllOf) > 0 || len(s.AnyOf) > 0)
}

// IsRequired reports whether name is listed in Required.
func (s *Schema) IsRequired(name string) bool {
	return s != nil && slices.Contains(s.Required, name)
}

// Clone returns a deep copy of s. Literal values are shared, they are never mutated.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}
	c := *s
	c.Properties = s.Properties.Clone()
	c.Required = slices.Clone(s.Required)
	c.Items = s.Items.Clone()
	c.Enum = slices.Clone(s.Enum)
	c.Minimum = clonePtr(s.Minimum)
	c.Maximum = clonePtr(s.Maximum)
	c.MultipleOf = clonePtr(s.MultipleOf)
	c.MinLength = clonePtr(s.MinLength)
	c.MaxLength = clonePtr(s.MaxLength)
	c.MinItems = clonePtr(s.MinItems)
	c.MaxItems = clonePtr(s.MaxItems)
	c.OneOf = cloneList(s.OneOf)
	c.AllOf = cloneList(s.AllOf)
	c.AnyOf = cloneList(s.AnyOf)
	return &c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneList(list []*Schema) []*Schema {
	if list == nil {
		return nil
	}
	out := make([]*Schema, len(list))
	for i, s := range list {
		out[i] = s.Clone()
	}
	return out
}

// Properties is an insertion-ordered mapping of property names to schemas.
type Properties struct {
	names   []string
	schemas map[string]*Schema
}

// NewProperties builds Properties from alternating name/schema pairs.
func NewProperties(pairs ...any) *Properties {
	p := &Properties{}
	for i := 0; i+1 < len(pairs); i += 2 {
		p.Set(pairs[i].(string), pairs[i+1].(*Schema))
	}
	return p
}

// Set adds or replaces a property. New names are appended.
func (p *Properties) Set(name string, s *Schema) {
	if p.schemas == nil {
		p.schemas = make(map[string]*Schema)
	}
	if _, ok := p.schemas[name]; !ok {
		p.names = append(p.names, name)
	}
	p.schemas[name] = s
}

// Get returns the schema of a property.
func (p *Properties) Get(name string) (*Schema, bool) {
	if p == nil {
		return nil, false
	}
	s, ok := p.schemas[name]
	return s, ok
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.names)
}

// Names returns property names in declaration order.
func (p *Properties) Names() []string {
	if p == nil {
		return nil
	}
	return slices.Clone(p.names)
}

// All iterates over properties in declaration order.
func (p *Properties) All() iter.Seq2[string, *Schema] {
	return func(yield func(string, *Schema) bool) {
		if p == nil {
			return
		}
		for _, n := range p.names {
			if !yield(n, p.schemas[n]) {
				return
			}
		}
	}
}

// Clone returns a deep copy of p.
func (p *Properties) Clone() *Properties {
	if p == nil {
		return nil
	}
	c := &Properties{
		names:   slices.Clone(p.names),
		schemas: make(map[string]*Schema, len(p.schemas)),
	}
	for n, s := range p.schemas {
		c.schemas[n] = s.Clone()
	}
	return c
}
