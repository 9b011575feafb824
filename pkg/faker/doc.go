// Package faker synthesizes example values from OpenAPI schemas.
//
// A Generator first flattens oneOf/allOf/anyOf into one effective schema
// (Resolve), then dispatches on the resolved type to a synthesizer for
// objects, arrays, strings, numbers or booleans. Two strategies exist:
//
//   - StrategyDynamic draws values at random within the declared constraints.
//   - StrategyStatic is deterministic and prefers declared defaults, examples
//     and enum members over fixed per-format samples.
//
// Basic usage:
//
//	s := schema.MustParse(`{type: object, required: [id], properties: {id: {type: integer}}}`)
//	gen, err := faker.New(faker.Options{Strategy: faker.StrategyStatic})
//	if err != nil {
//	    return err
//	}
//	v, err := gen.Generate(s) // {"id": 0}
//
// minLength and maxLength shape plain words, passwords and strings of an
// unknown format. Values produced for a pattern or a known format (email,
// uuid, date...) are returned as generated, whatever their length.
//
// Generated objects are *ordered.Map values so that encoding keeps the
// declared property order. A Generator is safe for concurrent use.
package faker
