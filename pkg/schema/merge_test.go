package schema

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getmockd/oasfaker/pkg/ordered"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_ScalarsAndFlags(t *testing.T) {
	base := MustParse(`{type: string, format: date, minLength: 3, nullable: true, example: a}`)
	overlay := MustParse(`{format: email, maxLength: 9, readOnly: true, example: b}`)

	got := Merge(base, overlay)

	assert.Equal(t, TypeString, got.Type, "absent type does not clear")
	assert.Equal(t, "email", got.Format)
	assert.Equal(t, 3, *got.MinLength)
	assert.Equal(t, 9, *got.MaxLength)
	assert.True(t, got.Nullable)
	assert.True(t, got.ReadOnly)
	assert.Equal(t, "b", got.Example)
}

func TestMerge_PropertiesAreDeep(t *testing.T) {
	base := MustParse(`
type: object
required: [a]
properties:
  a:
    type: object
    properties:
      x: {type: string}
  b: {type: integer}
`)
	overlay := MustParse(`
required: [c]
properties:
  a:
    properties:
      y: {type: boolean}
  c: {type: number}
`)

	got := Merge(base, overlay)

	assert.Equal(t, []string{"a", "b", "c"}, got.Properties.Names())
	assert.Equal(t, []string{"a", "c"}, got.Required)

	a, _ := got.Properties.Get("a")
	assert.Equal(t, TypeObject, a.Type)
	assert.Equal(t, []string{"x", "y"}, a.Properties.Names())
}

func TestMerge_ListsConcatenate(t *testing.T) {
	base := MustParse(`{enum: [1, 2], oneOf: [{type: string}]}`)
	overlay := MustParse(`{enum: [3], oneOf: [{type: integer}]}`)

	got := Merge(base, overlay)

	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, got.Enum)
	require.Len(t, got.OneOf, 2)
	assert.Equal(t, TypeString, got.OneOf[0].Type)
	assert.Equal(t, TypeInteger, got.OneOf[1].Type)
}

func TestMerge_LeavesInputsUntouched(t *testing.T) {
	base := MustParse(`{type: object, required: [a], properties: {a: {type: string}}}`)
	overlay := MustParse(`{required: [b], properties: {a: {minLength: 4}, b: {type: string}}}`)

	_ = Merge(base, overlay)

	assert.Equal(t, []string{"a"}, base.Required)
	assert.Equal(t, []string{"a"}, base.Properties.Names())
	a, _ := base.Properties.Get("a")
	assert.Nil(t, a.MinLength)
}

func TestMerge_NilSides(t *testing.T) {
	s := MustParse(`{type: string}`)
	assert.Equal(t, TypeString, Merge(nil, s).Type)
	assert.Equal(t, TypeString, Merge(s, nil).Type)
	assert.Nil(t, Merge(nil, nil))
}

func TestFromOpenAPI3(t *testing.T) {
	minimum := 1.0
	maxLen := uint64(12)
	name := &openapi3.Schema{
		Type:      &openapi3.Types{"string"},
		MinLength: 2,
		MaxLength: &maxLen,
		Example:   "bob",
	}
	age := &openapi3.Schema{
		Type:         &openapi3.Types{"integer"},
		Min:          &minimum,
		ExclusiveMin: true,
	}
	tags := &openapi3.Schema{
		Type:  &openapi3.Types{"array"},
		Items: openapi3.NewSchemaRef("", &openapi3.Schema{Type: &openapi3.Types{"string"}}),
	}
	root := &openapi3.Schema{
		Type:     &openapi3.Types{"object"},
		Required: []string{"name"},
		Properties: openapi3.Schemas{
			"name": openapi3.NewSchemaRef("", name),
			"age":  openapi3.NewSchemaRef("", age),
			"tags": openapi3.NewSchemaRef("", tags),
		},
		Example: map[string]any{"name": "bob", "age": 3.0},
	}

	s := FromOpenAPI3(openapi3.NewSchemaRef("", root))

	require.NotNil(t, s)
	assert.Equal(t, TypeObject, s.Type)
	assert.Equal(t, []string{"age", "name", "tags"}, s.Properties.Names())
	assert.True(t, s.IsRequired("name"))

	n, _ := s.Properties.Get("name")
	assert.Equal(t, 2, *n.MinLength)
	assert.Equal(t, 12, *n.MaxLength)
	assert.Equal(t, "bob", n.Example)

	a, _ := s.Properties.Get("age")
	assert.Equal(t, TypeInteger, a.Type)
	assert.True(t, a.ExclusiveMinimum)
	assert.Equal(t, 1.0, *a.Minimum)

	tg, _ := s.Properties.Get("tags")
	require.NotNil(t, tg.Items)
	assert.Equal(t, TypeString, tg.Items.Type)

	ex, ok := s.Example.(*ordered.Map)
	require.True(t, ok)
	assert.Equal(t, []string{"age", "name"}, ex.Keys())
}

func TestFromOpenAPI3_Recursive(t *testing.T) {
	node := &openapi3.Schema{Type: &openapi3.Types{"object"}}
	node.Properties = openapi3.Schemas{"next": openapi3.NewSchemaRef("", node)}

	s := FromOpenAPI3(openapi3.NewSchemaRef("", node))

	next, ok := s.Properties.Get("next")
	require.True(t, ok)
	assert.Equal(t, TypeUntyped, next.Type)
	assert.Nil(t, FromOpenAPI3(nil))
}
