// Package document loads OpenAPI 3.x documents and looks up the schemas and
// examples attached to operations and components.
//
// The document is kept as a YAML node tree so that property and example order
// match the source. Schema references are resolved through one shared
// schema.Decoder, so a component referenced from several operations is decoded
// once. Passing WithValidation(true) to Load additionally checks the whole
// document with kin-openapi.
package document
