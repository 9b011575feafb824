package document

import (
	"fmt"
	"slices"
	"strings"

	"github.com/getmockd/oasfaker/pkg/ordered"
	"github.com/getmockd/oasfaker/pkg/schema"
	"gopkg.in/yaml.v3"
)

// MediaType is one entry of a request or response "content" map.
type MediaType struct {
	// Schema is nil when the media type declares none.
	Schema *schema.Schema
	// Examples maps example names to their literal values in declaration order.
	Examples *ordered.Map
}

// HasExamples reports whether any named example is declared.
func (m *MediaType) HasExamples() bool {
	return m != nil && m.Examples.Len() > 0
}

// RequestBody returns the request body media type of an operation.
func (d *Document) RequestBody(path, method, contentType string) (*MediaType, error) {
	lookupErr := func(err error) error {
		return &LookupError{Path: path, Method: method, ContentType: contentType, Err: err}
	}

	op, err := d.operation(path, method)
	if err != nil {
		return nil, lookupErr(err)
	}
	rb, err := d.deref(field(op, "requestBody"))
	if err != nil {
		return nil, lookupErr(err)
	}
	if rb == nil {
		return nil, &LookupError{Path: path, Method: method, Err: ErrNoRequest}
	}
	media := field(field(rb, "content"), contentType)
	if media == nil {
		return nil, lookupErr(ErrNoRequest)
	}
	mt, err := d.mediaType(media)
	if err != nil {
		return nil, lookupErr(err)
	}
	return mt, nil
}

// ResponseBody returns the response media type of an operation for a status
// code. The status is matched exactly first, then by range ("2XX"), then
// against the "default" response.
func (d *Document) ResponseBody(path, method, status, contentType string) (*MediaType, error) {
	lookupErr := func(err error) error {
		return &LookupError{Path: path, Method: method, Status: status, ContentType: contentType, Err: err}
	}

	op, err := d.operation(path, method)
	if err != nil {
		return nil, &LookupError{Path: path, Method: method, Err: err}
	}
	responses := field(op, "responses")
	if responses == nil {
		return nil, &LookupError{Path: path, Method: method, Err: ErrNoResponse}
	}
	resp, err := d.deref(matchStatus(responses, status))
	if err != nil {
		return nil, lookupErr(err)
	}
	if resp == nil {
		return nil, lookupErr(ErrNoResponse)
	}
	media := field(field(resp, "content"), contentType)
	if media == nil {
		return nil, lookupErr(ErrNoResponse)
	}
	mt, err := d.mediaType(media)
	if err != nil {
		return nil, lookupErr(err)
	}
	return mt, nil
}

// ComponentSchema decodes the schema registered under components/schemas.
func (d *Document) ComponentSchema(name string) (*schema.Schema, error) {
	schemas := field(field(body(d.root), "components"), "schemas")
	if field(schemas, name) == nil {
		return nil, &LookupError{Component: name, Err: ErrNoSchema}
	}
	// Decoding through a reference shares the decoder cache with every other
	// lookup that points at the same component.
	ref := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		{Kind: yaml.ScalarNode, Value: "$ref"},
		{Kind: yaml.ScalarNode, Value: "#/components/schemas/" + escapePointer(name)},
	}}
	s, err := d.decode(ref)
	if err != nil {
		return nil, &LookupError{Component: name, Err: err}
	}
	return s, nil
}

// ComponentNames lists components/schemas in declaration order.
func (d *Document) ComponentNames() []string {
	return keys(field(field(body(d.root), "components"), "schemas"))
}

// Operation identifies one path/method pair of the document.
type Operation struct {
	Path   string
	Method string
}

// Operations lists every operation in declaration order.
func (d *Document) Operations() []Operation {
	paths := field(body(d.root), "paths")
	var out []Operation
	for _, p := range keys(paths) {
		item, err := d.deref(field(paths, p))
		if err != nil {
			continue
		}
		for _, m := range keys(item) {
			if slices.Contains(httpMethods, m) {
				out = append(out, Operation{Path: p, Method: m})
			}
		}
	}
	return out
}

var httpMethods = []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"}

// operation finds the operation node for path and method. Literal path keys
// are tried before templated ones; among templated keys the one with the fewest
// parameters wins.
func (d *Document) operation(path, method string) (*yaml.Node, error) {
	paths := field(body(d.root), "paths")
	method = strings.ToLower(method)

	for _, key := range candidatePaths(keys(paths), path) {
		item, err := d.deref(field(paths, key))
		if err != nil {
			return nil, err
		}
		if op := field(item, method); op != nil && op.Kind == yaml.MappingNode {
			return op, nil
		}
	}
	return nil, ErrNoPath
}

func candidatePaths(templates []string, path string) []string {
	var exact []string
	type match struct {
		key    string
		params int
	}
	var templated []match
	for _, t := range templates {
		if t == path {
			exact = append(exact, t)
			continue
		}
		if n, ok := matchTemplate(t, path); ok {
			templated = append(templated, match{t, n})
		}
	}
	slices.SortStableFunc(templated, func(a, b match) int {
		return a.params - b.params
	})
	for _, m := range templated {
		exact = append(exact, m.key)
	}
	return exact
}

// matchTemplate reports whether path matches a template such as
// "/pets/{id}" and how many parameters were bound.
func matchTemplate(template, path string) (int, bool) {
	ts := strings.Split(strings.Trim(template, "/"), "/")
	ps := strings.Split(strings.Trim(path, "/"), "/")
	if len(ts) != len(ps) {
		return 0, false
	}
	params := 0
	for i, seg := range ts {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			if ps[i] == "" {
				return 0, false
			}
			params++
			continue
		}
		if seg != ps[i] {
			return 0, false
		}
	}
	return params, true
}

func matchStatus(responses *yaml.Node, status string) *yaml.Node {
	if n := field(responses, status); n != nil {
		return n
	}
	if len(status) == 3 {
		for _, k := range keys(responses) {
			if len(k) == 3 && k[0] == status[0] && strings.EqualFold(k[1:], "XX") {
				return field(responses, k)
			}
		}
	}
	return field(responses, "default")
}

func (d *Document) mediaType(node *yaml.Node) (*MediaType, error) {
	mt := &MediaType{Examples: ordered.New(0)}

	if sn := field(node, "schema"); sn != nil {
		s, err := d.decode(sn)
		if err != nil {
			return nil, fmt.Errorf("schema: %w", err)
		}
		mt.Schema = s
	}

	examples := field(node, "examples")
	for _, name := range keys(examples) {
		ex, err := d.deref(field(examples, name))
		if err != nil {
			return nil, fmt.Errorf("example %s: %w", name, err)
		}
		var value any
		if vn := field(ex, "value"); vn != nil {
			if value, err = ordered.FromNode(vn); err != nil {
				return nil, fmt.Errorf("example %s: %w", name, err)
			}
		}
		mt.Examples.Set(name, value)
	}
	return mt, nil
}

func escapePointer(token string) string {
	return strings.ReplaceAll(strings.ReplaceAll(token, "~", "~0"), "/", "~1")
}
