package ordered

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromNode decodes a YAML (or JSON) node into a JSON-compatible value.
// Mappings become *Map with source key order, sequences become []any,
// integers become int64 and other scalars keep their natural Go type.
func FromNode(node *yaml.Node) (any, error) {
	if node == nil {
		return nil, nil
	}
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return FromNode(node.Content[0])
	case yaml.AliasNode:
		return FromNode(node.Alias)
	case yaml.MappingNode:
		m := New(len(node.Content) / 2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			v, err := FromNode(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Set(node.Content[i].Value, v)
		}
		return m, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, c := range node.Content {
			v, err := FromNode(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.ScalarNode:
		return scalar(node)
	default:
		return nil, fmt.Errorf("unsupported yaml node kind %d at line %d", node.Kind, node.Line)
	}
}

func scalar(node *yaml.Node) (any, error) {
	switch node.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!str", "!!timestamp", "!!binary":
		return node.Value, nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			// Out of int64 range; keep precision as float.
			var f float64
			if ferr := node.Decode(&f); ferr != nil {
				return nil, err
			}
			return f, nil
		}
		return i, nil
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode scalar at line %d: %w", node.Line, err)
	}
	return v, nil
}
