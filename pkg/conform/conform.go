// Package conform checks generated values against the schema they were
// generated from, using a draft 2020-12 JSON Schema validator.
package conform

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/getmockd/oasfaker/pkg/schema"
	"github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrNonConforming is wrapped by the error Check returns for a value that
// does not satisfy its schema.
var ErrNonConforming = errors.New("value does not conform to schema")

// Violation is one failed constraint.
type Violation struct {
	// Location is a dotted path into the value; empty for the root.
	Location string
	Message  string
}

// Error lists every violation found in a value.
type Error struct {
	Violations []Violation
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		if v.Location == "" {
			parts = append(parts, v.Message)
			continue
		}
		parts = append(parts, v.Location+": "+v.Message)
	}
	return fmt.Sprintf("%s: %s", ErrNonConforming, strings.Join(parts, "; "))
}

func (e *Error) Unwrap() error {
	return ErrNonConforming
}

// Check validates value against s. Properties marked readOnly or writeOnly are
// treated as optional since either side may leave them out. oneOf is checked
// as anyOf: a value built from one branch may also satisfy another.
func Check(s *schema.Schema, value any) error {
	compiled, err := Compile(s)
	if err != nil {
		return err
	}

	// Round trip through JSON so ordered maps and integer types reach the
	// validator as plain JSON values.
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	var instance any
	if err := json.Unmarshal(raw, &instance); err != nil {
		return fmt.Errorf("failed to unmarshal value: %w", err)
	}

	if err := compiled.Validate(instance); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			out := &Error{}
			collect(ve, out)
			return out
		}
		return err
	}
	return nil
}

// Compile converts s and compiles it.
func Compile(s *schema.Schema) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(ToJSONSchema(s))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema.json", strings.NewReader(string(raw))); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	return compiler.Compile("schema.json")
}

func collect(err *jsonschema.ValidationError, out *Error) {
	if len(err.Causes) == 0 {
		out.Violations = append(out.Violations, Violation{
			Location: fieldFromPointer(err.InstanceLocation),
			Message:  err.Message,
		})
		return
	}
	for _, cause := range err.Causes {
		collect(cause, out)
	}
}

func fieldFromPointer(path string) string {
	if path == "" || path == "/" {
		return ""
	}
	return strings.ReplaceAll(strings.TrimPrefix(path, "/"), "/", ".")
}

// ToJSONSchema converts s into a draft 2020-12 JSON Schema document.
// A nullable type becomes a type union with "null", boolean exclusive bounds
// become numeric exclusiveMinimum/exclusiveMaximum.
func ToJSONSchema(s *schema.Schema) map[string]any {
	if s == nil {
		return map[string]any{}
	}
	out := map[string]any{}

	if s.Type != schema.TypeUntyped {
		if s.Nullable {
			out["type"] = []string{s.Type.String(), "null"}
		} else {
			out["type"] = s.Type.String()
		}
	}
	if s.Format != "" {
		out["format"] = s.Format
	}
	if s.Pattern != "" {
		out["pattern"] = s.Pattern
	}
	if len(s.Enum) > 0 {
		enum := slices.Clone(s.Enum)
		if s.Nullable && !slices.Contains(enum, nil) {
			enum = append(enum, nil)
		}
		out["enum"] = enum
	}

	if s.Minimum != nil {
		if s.ExclusiveMinimum {
			out["exclusiveMinimum"] = *s.Minimum
		} else {
			out["minimum"] = *s.Minimum
		}
	}
	if s.Maximum != nil {
		if s.ExclusiveMaximum {
			out["exclusiveMaximum"] = *s.Maximum
		} else {
			out["maximum"] = *s.Maximum
		}
	}
	if s.MultipleOf != nil && *s.MultipleOf > 0 {
		out["multipleOf"] = *s.MultipleOf
	}
	setInt(out, "minLength", s.MinLength)
	setInt(out, "maxLength", s.MaxLength)
	setInt(out, "minItems", s.MinItems)
	setInt(out, "maxItems", s.MaxItems)
	if s.UniqueItems {
		out["uniqueItems"] = true
	}

	if s.Properties.Len() > 0 {
		props := make(map[string]any, s.Properties.Len())
		var required []string
		for name, ps := range s.Properties.All() {
			props[name] = ToJSONSchema(ps)
			if s.IsRequired(name) && !ps.ReadOnly && !ps.WriteOnly {
				required = append(required, name)
			}
		}
		out["properties"] = props
		if len(required) > 0 {
			out["required"] = required
		}
	}
	if s.Items != nil {
		out["items"] = ToJSONSchema(s.Items)
	}

	all := convertList(s.AllOf)
	for _, alt := range [][]*schema.Schema{s.OneOf, s.AnyOf} {
		if len(alt) > 0 {
			all = append(all, map[string]any{"anyOf": convertList(alt)})
		}
	}
	if len(all) > 0 {
		out["allOf"] = all
	}
	return out
}

func convertList(list []*schema.Schema) []any {
	out := make([]any, 0, len(list))
	for _, s := range list {
		out = append(out, ToJSONSchema(s))
	}
	return out
}

func setInt(out map[string]any, key string, v *int) {
	if v != nil {
		out[key] = *v
	}
}
