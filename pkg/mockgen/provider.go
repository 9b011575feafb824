package mockgen

import (
	"github.com/getmockd/oasfaker/pkg/document"
	"github.com/getmockd/oasfaker/pkg/faker"
)

// Provider produces the value of one request or response body.
type Provider struct {
	media   *document.MediaType
	gen     *faker.Generator
	request bool
}

// NewRequestProvider returns a Provider for a request body. Generated values
// leave out readOnly properties.
func NewRequestProvider(media *document.MediaType, gen *faker.Generator) *Provider {
	return &Provider{media: media, gen: gen, request: true}
}

// NewResponseProvider returns a Provider for a response body. Generated values
// leave out writeOnly properties.
func NewResponseProvider(media *document.MediaType, gen *faker.Generator) *Provider {
	return &Provider{media: media, gen: gen}
}

// Generate returns a value for the body.
//
// Under the static strategy a media type with examples yields an example
// instead of a synthesized value: the one called exampleName, or the first
// declared one when exampleName is empty. Otherwise the schema is synthesized
// and exampleName is ignored.
func (p *Provider) Generate(exampleName string) (any, error) {
	if p.gen.Options().Strategy == faker.StrategyStatic && p.media.HasExamples() {
		if exampleName == "" {
			_, v := first(p.media)
			return v, nil
		}
		v, ok := p.media.Examples.Get(exampleName)
		if !ok {
			return nil, &NoExampleError{Name: exampleName, Response: !p.request}
		}
		return v, nil
	}

	s := p.media.Schema
	if p.request {
		return p.gen.GenerateRequest(s)
	}
	return p.gen.Generate(s)
}

func first(media *document.MediaType) (string, any) {
	for k, v := range media.Examples.All() {
		return k, v
	}
	return "", nil
}
