package schema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/getmockd/oasfaker/pkg/ordered"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidSchema is returned when a schema node has the wrong shape.
	ErrInvalidSchema = errors.New("invalid schema")
	// ErrUnresolvableRef is returned when a $ref cannot be followed.
	ErrUnresolvableRef = errors.New("unresolvable reference")
)

// RefResolver returns the node a $ref string points to.
type RefResolver func(ref string) (*yaml.Node, error)

// Decoder turns YAML/JSON schema nodes into *Schema values, following $ref
// through its resolver. Each reference is decoded once and shared. A reference
// reached again while it is still being decoded (a cycle) decodes as an empty
// schema so the resulting tree is always finite.
type Decoder struct {
	resolve RefResolver
	cache   map[string]*Schema
	active  map[string]bool
}

// NewDecoder creates a decoder. A nil resolver makes every $ref an error.
func NewDecoder(resolve RefResolver) *Decoder {
	return &Decoder{
		resolve: resolve,
		cache:   make(map[string]*Schema),
		active:  make(map[string]bool),
	}
}

// Parse decodes a standalone schema document (YAML or JSON). Local references
// ("#/...") are resolved against the same document.
func Parse(data []byte) (*Schema, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	return NewDecoder(PointerResolver(&root)).Decode(&root)
}

// MustParse is like Parse but panics on error. Intended for tests and fixtures.
func MustParse(src string) *Schema {
	s, err := Parse([]byte(src))
	if err != nil {
		panic(err)
	}
	return s
}

// Decode converts node into a Schema.
func (d *Decoder) Decode(node *yaml.Node) (*Schema, error) {
	if node == nil {
		return nil, nil
	}
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return &Schema{}, nil
		}
		return d.Decode(node.Content[0])
	case yaml.AliasNode:
		return d.Decode(node.Alias)
	case yaml.ScalarNode:
		// OpenAPI 3.1 boolean schemas; nothing to synthesize from either.
		if node.ShortTag() == "!!bool" {
			return &Schema{}, nil
		}
		return nil, invalid(node, "expected a mapping, got %q", node.Value)
	case yaml.MappingNode:
		return d.decodeMapping(node)
	default:
		return nil, invalid(node, "expected a mapping")
	}
}

func (d *Decoder) decodeMapping(node *yaml.Node) (*Schema, error) {
	if ref, ok := lookupScalar(node, "$ref"); ok {
		return d.decodeRef(ref)
	}

	s := &Schema{}
	var exclMin, exclMax *float64
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i].Value, node.Content[i+1]
		var err error
		switch key {
		case "type":
			err = d.decodeType(s, val)
		case "format":
			s.Format, err = str(val)
		case "pattern":
			s.Pattern, err = str(val)
		case "properties":
			s.Properties, err = d.decodeProperties(val)
		case "required":
			s.Required, err = strList(val)
		case "items":
			if val.Kind == yaml.SequenceNode {
				// Tuple form; the first item schema stands in for all.
				if len(val.Content) > 0 {
					s.Items, err = d.Decode(val.Content[0])
				}
				break
			}
			s.Items, err = d.Decode(val)
		case "enum":
			s.Enum, err = literalList(val)
		case "default":
			s.Default, err = ordered.FromNode(val)
		case "example":
			s.Example, err = ordered.FromNode(val)
		case "examples":
			if s.Example == nil && val.Kind == yaml.SequenceNode && len(val.Content) > 0 {
				s.Example, err = ordered.FromNode(val.Content[0])
			}
		case "minimum":
			s.Minimum, err = floatPtr(val)
		case "maximum":
			s.Maximum, err = floatPtr(val)
		case "multipleOf":
			s.MultipleOf, err = floatPtr(val)
		case "exclusiveMinimum":
			s.ExclusiveMinimum, exclMin, err = exclusive(val)
		case "exclusiveMaximum":
			s.ExclusiveMaximum, exclMax, err = exclusive(val)
		case "minLength":
			s.MinLength, err = intPtr(val)
		case "maxLength":
			s.MaxLength, err = intPtr(val)
		case "minItems":
			s.MinItems, err = intPtr(val)
		case "maxItems":
			s.MaxItems, err = intPtr(val)
		case "uniqueItems":
			s.UniqueItems, err = boolean(val)
		case "nullable":
			s.Nullable, err = boolean(val)
		case "readOnly":
			s.ReadOnly, err = boolean(val)
		case "writeOnly":
			s.WriteOnly, err = boolean(val)
		case "oneOf":
			s.OneOf, err = d.decodeList(val)
		case "allOf":
			s.AllOf, err = d.decodeList(val)
		case "anyOf":
			s.AnyOf, err = d.decodeList(val)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
	}

	// OpenAPI 3.1 numeric exclusive bounds replace minimum/maximum.
	if exclMin != nil {
		s.Minimum = exclMin
	}
	if exclMax != nil {
		s.Maximum = exclMax
	}
	return s, nil
}

func (d *Decoder) decodeRef(ref string) (*Schema, error) {
	if s, ok := d.cache[ref]; ok {
		return s, nil
	}
	if d.active[ref] {
		return &Schema{}, nil
	}
	if d.resolve == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnresolvableRef, ref)
	}
	target, err := d.resolve(ref)
	if err != nil {
		return nil, err
	}

	d.active[ref] = true
	s, err := d.Decode(target)
	delete(d.active, ref)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ref, err)
	}
	d.cache[ref] = s
	return s, nil
}

func (d *Decoder) decodeType(s *Schema, val *yaml.Node) error {
	switch val.Kind {
	case yaml.ScalarNode:
		s.Type = ParseType(val.Value)
		return nil
	case yaml.SequenceNode:
		for _, c := range val.Content {
			if c.Value == "null" {
				s.Nullable = true
				continue
			}
			if s.Type == TypeUntyped {
				s.Type = ParseType(c.Value)
			}
		}
		return nil
	default:
		return invalid(val, "type must be a string or a list")
	}
}

func (d *Decoder) decodeProperties(val *yaml.Node) (*Properties, error) {
	if val.Kind != yaml.MappingNode {
		return nil, invalid(val, "properties must be a mapping")
	}
	props := &Properties{}
	for i := 0; i+1 < len(val.Content); i += 2 {
		name := val.Content[i].Value
		ps, err := d.Decode(val.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		props.Set(name, ps)
	}
	return props, nil
}

func (d *Decoder) decodeList(val *yaml.Node) ([]*Schema, error) {
	if val.Kind != yaml.SequenceNode {
		return nil, invalid(val, "expected a list of schemas")
	}
	out := make([]*Schema, 0, len(val.Content))
	for i, c := range val.Content {
		s, err := d.Decode(c)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// PointerResolver resolves local JSON pointer references ("#/a/b") against root.
func PointerResolver(root *yaml.Node) RefResolver {
	return func(ref string) (*yaml.Node, error) {
		if !strings.HasPrefix(ref, "#") {
			return nil, fmt.Errorf("%w: %s (only local references are supported)", ErrUnresolvableRef, ref)
		}
		node := root
		if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
			node = node.Content[0]
		}
		pointer := strings.TrimPrefix(ref, "#")
		if pointer == "" || pointer == "/" {
			return node, nil
		}
		for _, token := range strings.Split(strings.TrimPrefix(pointer, "/"), "/") {
			token = strings.ReplaceAll(strings.ReplaceAll(token, "~1", "/"), "~0", "~")
			next := child(node, token)
			if next == nil {
				return nil, fmt.Errorf("%w: %s", ErrUnresolvableRef, ref)
			}
			node = next
		}
		return node, nil
	}
}

func child(node *yaml.Node, token string) *yaml.Node {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == token {
				return node.Content[i+1]
			}
		}
	case yaml.SequenceNode:
		idx, err := strconv.Atoi(token)
		if err == nil && idx >= 0 && idx < len(node.Content) {
			return node.Content[idx]
		}
	}
	return nil
}

func lookupScalar(node *yaml.Node, key string) (string, bool) {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key && node.Content[i+1].Kind == yaml.ScalarNode {
			return node.Content[i+1].Value, true
		}
	}
	return "", false
}

func invalid(node *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrInvalidSchema, node.Line, fmt.Sprintf(format, args...))
}

func str(val *yaml.Node) (string, error) {
	if val.Kind != yaml.ScalarNode {
		return "", invalid(val, "expected a string")
	}
	return val.Value, nil
}

func strList(val *yaml.Node) ([]string, error) {
	if val.Kind != yaml.SequenceNode {
		return nil, invalid(val, "expected a list of strings")
	}
	out := make([]string, 0, len(val.Content))
	for _, c := range val.Content {
		out = append(out, c.Value)
	}
	return out, nil
}

func literalList(val *yaml.Node) ([]any, error) {
	if val.Kind != yaml.SequenceNode {
		return nil, invalid(val, "expected a list")
	}
	out := make([]any, 0, len(val.Content))
	for _, c := range val.Content {
		v, err := ordered.FromNode(c)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func floatPtr(val *yaml.Node) (*float64, error) {
	var f float64
	if err := val.Decode(&f); err != nil {
		return nil, invalid(val, "expected a number, got %q", val.Value)
	}
	return &f, nil
}

func intPtr(val *yaml.Node) (*int, error) {
	var i int
	if err := val.Decode(&i); err != nil {
		return nil, invalid(val, "expected an integer, got %q", val.Value)
	}
	return &i, nil
}

func boolean(val *yaml.Node) (bool, error) {
	var b bool
	if err := val.Decode(&b); err != nil {
		return false, invalid(val, "expected a boolean, got %q", val.Value)
	}
	return b, nil
}

// exclusive accepts both the OpenAPI 3.0 boolean form and the 3.1 numeric form.
func exclusive(val *yaml.Node) (bool, *float64, error) {
	if val.ShortTag() == "!!bool" {
		b, err := boolean(val)
		return b, nil, err
	}
	f, err := floatPtr(val)
	if err != nil {
		return false, nil, err
	}
	return true, f, nil
}
