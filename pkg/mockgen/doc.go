// Package mockgen mocks request and response bodies of an OpenAPI document.
//
// A Faker ties a document.Document to a faker.Generator:
//
//	f, err := mockgen.FromFile("petstore.yaml",
//		mockgen.WithOptions(faker.Options{Strategy: faker.StrategyStatic}))
//	if err != nil {
//		return err
//	}
//	body, err := f.MockResponse("/pets/{petId}", "GET", "200", "application/json")
//
// Under the static strategy declared examples take precedence over synthesized
// values; a named example that does not exist yields a *NoExampleError.
package mockgen
