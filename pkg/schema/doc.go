// Package schema defines the normalized OpenAPI 3.x schema tree consumed by the
// faker engine.
//
// A Schema is decoded from YAML or JSON with Parse or a Decoder (which follows
// $ref through a RefResolver), or converted from a kin-openapi schema with
// FromOpenAPI3. Property declaration order is preserved so deterministic output
// lists keys in the order the document declared them.
//
// Merge implements the deep merge used to flatten oneOf/allOf/anyOf:
//
//	base := schema.MustParse(`{type: object, properties: {id: {type: integer}}}`)
//	extra := schema.MustParse(`{properties: {name: {type: string}}, required: [name]}`)
//	merged := schema.Merge(base, extra) // id and name, name required
//
// Both YAML and JSON inputs are accepted; JSON is decoded through the YAML parser.
package schema
