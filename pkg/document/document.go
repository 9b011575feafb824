package document

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getmockd/oasfaker/pkg/schema"
	"gopkg.in/yaml.v3"
)

// Document is a parsed OpenAPI 3.x document. Lookups are safe for concurrent use.
type Document struct {
	root *yaml.Node
	// mu guards dec, whose reference cache is shared by all lookups.
	mu  sync.Mutex
	dec *schema.Decoder
}

type loadConfig struct {
	validate bool
	ctx      context.Context
}

// Option configures Load.
type Option func(*loadConfig)

// WithValidation enables structural validation of the whole document with
// kin-openapi before any lookup is made.
func WithValidation(enabled bool) Option {
	return func(c *loadConfig) {
		c.validate = enabled
	}
}

// WithContext sets the context used for validation.
func WithContext(ctx context.Context) Option {
	return func(c *loadConfig) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// Load parses an OpenAPI document from YAML or JSON.
func Load(data []byte, opts ...Option) (*Document, error) {
	cfg := loadConfig{ctx: context.Background()}
	for _, o := range opts {
		o(&cfg)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	top := body(&root)
	if top == nil || top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: expected a mapping at the top level", ErrInvalidDocument)
	}

	if cfg.validate {
		if err := validate(cfg.ctx, data); err != nil {
			return nil, err
		}
	}

	return &Document{
		root: &root,
		dec:  schema.NewDecoder(schema.PointerResolver(&root)),
	}, nil
}

// LoadFile reads and parses the document at path.
func LoadFile(path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file %s: %w", path, err)
	}
	doc, err := Load(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func validate(ctx context.Context, data []byte) error {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	kin, err := loader.LoadFromData(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if err := kin.Validate(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return nil
}

// Version returns the value of the top-level "openapi" field.
func (d *Document) Version() string {
	v, _ := scalar(field(body(d.root), "openapi"))
	return v
}

func (d *Document) decode(node *yaml.Node) (*schema.Schema, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dec.Decode(node)
}

// deref follows $ref chains on non-schema objects (path items, request
// bodies, responses, examples).
func (d *Document) deref(node *yaml.Node) (*yaml.Node, error) {
	resolve := schema.PointerResolver(d.root)
	seen := make(map[string]bool)
	for node != nil {
		if node.Kind == yaml.AliasNode {
			node = node.Alias
			continue
		}
		ref, ok := scalar(field(node, "$ref"))
		if !ok {
			return node, nil
		}
		if seen[ref] {
			return nil, fmt.Errorf("%w: %s (circular)", schema.ErrUnresolvableRef, ref)
		}
		seen[ref] = true
		next, err := resolve(ref)
		if err != nil {
			return nil, err
		}
		node = next
	}
	return nil, nil
}

func body(root *yaml.Node) *yaml.Node {
	if root != nil && root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil
		}
		return root.Content[0]
	}
	return root
}

// field returns the value stored under key in a mapping node.
func field(node *yaml.Node, key string) *yaml.Node {
	if node == nil {
		return nil
	}
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

func scalar(node *yaml.Node) (string, bool) {
	if node == nil || node.Kind != yaml.ScalarNode {
		return "", false
	}
	return node.Value, true
}

// keys lists the keys of a mapping node in declaration order.
func keys(node *yaml.Node) []string {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	out := make([]string, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		out = append(out, node.Content[i].Value)
	}
	return out
}
