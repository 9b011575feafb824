package document

import (
	"errors"
	"testing"

	"github.com/getmockd/oasfaker/pkg/ordered"
	"github.com/getmockd/oasfaker/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadPetstore(t *testing.T) *Document {
	t.Helper()
	doc, err := LoadFile("testdata/petstore.yaml")
	require.NoError(t, err)
	return doc
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"not yaml", "openapi: [unterminated"},
		{"scalar", "just text"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.src))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDocument)
		})
	}

	_, err := LoadFile("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestLoad_WithValidation(t *testing.T) {
	valid := `
openapi: 3.0.3
info: {title: t, version: "1"}
paths:
  /ping:
    get:
      responses:
        '200':
          description: ok
          content:
            application/json:
              schema: {type: string}
`
	doc, err := Load([]byte(valid), WithValidation(true))
	require.NoError(t, err)
	assert.Equal(t, "3.0.3", doc.Version())

	// The response lacks the required description.
	invalid := `
openapi: 3.0.3
info: {title: t, version: "1"}
paths:
  /ping:
    get:
      responses:
        '200':
          content:
            application/json:
              schema: {type: string}
`
	_, err = Load([]byte(invalid), WithValidation(true))
	assert.ErrorIs(t, err, ErrInvalidDocument)

	_, err = Load([]byte(invalid))
	assert.NoError(t, err, "validation is opt-in")
}

func TestDocument_ResponseBody(t *testing.T) {
	doc := loadPetstore(t)

	mt, err := doc.ResponseBody("/pets", "GET", "200", "application/json")
	require.NoError(t, err)
	require.NotNil(t, mt.Schema)
	assert.Equal(t, schema.TypeArray, mt.Schema.Type)
	require.NotNil(t, mt.Schema.Items)
	assert.Equal(t, []string{"id", "name", "tag", "secret"}, mt.Schema.Items.Properties.Names())
	assert.False(t, mt.HasExamples())
}

func TestDocument_ResponseStatusFallbacks(t *testing.T) {
	doc := loadPetstore(t)

	// Range key.
	mt, err := doc.ResponseBody("/pets", "post", "201", "application/json")
	require.NoError(t, err)
	assert.Equal(t, schema.TypeObject, mt.Schema.Type)

	// Default response.
	mt, err = doc.ResponseBody("/pets", "get", "500", "application/json")
	require.NoError(t, err)
	assert.Equal(t, []string{"code", "message"}, mt.Schema.Properties.Names())

	// No default on this operation.
	_, err = doc.ResponseBody("/pets/{petId}", "get", "404", "application/json")
	assert.ErrorIs(t, err, ErrNoResponse)
}

func TestDocument_ResponseExamples(t *testing.T) {
	doc := loadPetstore(t)

	mt, err := doc.ResponseBody("/pets", "post", "200", "application/json")
	require.NoError(t, err)
	require.True(t, mt.HasExamples())
	assert.Equal(t, []string{"rex", "shared"}, mt.Examples.Keys())

	rex, _ := mt.Examples.Get("rex")
	assert.Equal(t, ordered.FromPairs("id", int64(1), "name", "Rex", "tag", "dog"), rex)

	shared, _ := mt.Examples.Get("shared")
	assert.Equal(t, ordered.FromPairs("id", int64(2), "name", "Tom"), shared, "example $ref is followed")
}

func TestDocument_RequestBody(t *testing.T) {
	doc := loadPetstore(t)

	mt, err := doc.RequestBody("/pets", "POST", "application/json")
	require.NoError(t, err)
	require.NotNil(t, mt.Schema)
	assert.Len(t, mt.Schema.AllOf, 2, "composition is left for the resolver")
	assert.Equal(t, []string{"first", "second"}, mt.Examples.Keys())

	_, err = doc.RequestBody("/pets", "get", "application/json")
	var le *LookupError
	require.True(t, errors.As(err, &le))
	assert.ErrorIs(t, err, ErrNoRequest)
	assert.Equal(t, "/pets", le.Path)
	assert.Equal(t, "get", le.Method)

	_, err = doc.RequestBody("/pets", "post", "application/xml")
	require.ErrorIs(t, err, ErrNoRequest)
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "application/xml", le.ContentType)
}

func TestDocument_PathMatching(t *testing.T) {
	doc := loadPetstore(t)

	tests := []struct {
		name    string
		path    string
		method  string
		ct      string
		want    schema.Type
		wantErr error
	}{
		{"literal beats template", "/pets/mine", "get", "text/plain", schema.TypeString, nil},
		{"template", "/pets/42", "get", "application/json", schema.TypeObject, nil},
		{"template by key", "/pets/{petId}", "get", "application/json", schema.TypeObject, nil},
		{"unknown path", "/owners", "get", "application/json", 0, ErrNoPath},
		{"unknown method", "/pets", "patch", "application/json", 0, ErrNoPath},
		{"too deep", "/pets/1/toys", "get", "application/json", 0, ErrNoPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mt, err := doc.ResponseBody(tt.path, tt.method, "200", tt.ct)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, mt.Schema.Type)
		})
	}
}

func TestDocument_ComponentSchema(t *testing.T) {
	doc := loadPetstore(t)

	assert.Equal(t, []string{"Pet", "NewPet", "Error", "Node"}, doc.ComponentNames())

	pet, err := doc.ComponentSchema("Pet")
	require.NoError(t, err)
	resp, err := doc.ResponseBody("/pets/{petId}", "get", "200", "application/json")
	require.NoError(t, err)
	assert.Same(t, pet, resp.Schema, "components decode once")

	node, err := doc.ComponentSchema("Node")
	require.NoError(t, err)
	children, ok := node.Properties.Get("children")
	require.True(t, ok)
	require.NotNil(t, children.Items)
	assert.Equal(t, schema.TypeUntyped, children.Items.Type, "recursion is cut")

	_, err = doc.ComponentSchema("Owner")
	assert.ErrorIs(t, err, ErrNoSchema)
	assert.Contains(t, err.Error(), "Owner")

	empty, err := Load([]byte(`{openapi: 3.0.0, paths: {}}`))
	require.NoError(t, err)
	assert.Empty(t, empty.ComponentNames())
	_, err = empty.ComponentSchema("Pet")
	assert.ErrorIs(t, err, ErrNoSchema)
}

func TestDocument_Operations(t *testing.T) {
	doc := loadPetstore(t)
	assert.Equal(t, []Operation{
		{"/pets", "get"},
		{"/pets", "post"},
		{"/pets/mine", "get"},
		{"/pets/{petId}", "get"},
		{"/pets/{petId}", "delete"},
	}, doc.Operations())
}

func TestLookupError_Message(t *testing.T) {
	err := &LookupError{Path: "/pets", Method: "get", Status: "404", ContentType: "application/json", Err: ErrNoResponse}
	assert.Equal(t, "no response for GET /pets status 404 content type application/json", err.Error())
}

func TestMatchTemplate(t *testing.T) {
	n, ok := matchTemplate("/a/{b}/c/{d}", "/a/1/c/2")
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	_, ok = matchTemplate("/a/{b}", "/a/")
	assert.False(t, ok)
	_, ok = matchTemplate("/a/{b}", "/x/1")
	assert.False(t, ok)
}
