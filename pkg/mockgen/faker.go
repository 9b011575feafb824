package mockgen

import (
	"fmt"
	"log/slog"

	"github.com/getmockd/oasfaker/pkg/document"
	"github.com/getmockd/oasfaker/pkg/faker"
	"github.com/getmockd/oasfaker/pkg/logging"
	"github.com/getmockd/oasfaker/pkg/random"
	"github.com/goccy/go-json"
)

// Defaults used when a caller passes an empty content type or status code.
const (
	DefaultContentType = "application/json"
	DefaultStatus      = "200"
)

// Faker mocks request bodies, response bodies and component schemas of one
// OpenAPI document.
type Faker struct {
	doc *document.Document
	gen *faker.Generator
	log *slog.Logger
}

type config struct {
	opts     faker.Options
	rnd      random.Faker
	log      *slog.Logger
	validate bool
}

// Option configures a Faker.
type Option func(*config)

// WithOptions sets the generation options.
func WithOptions(opts faker.Options) Option {
	return func(c *config) {
		c.opts = opts
	}
}

// WithRand sets the randomness source, typically random.New(seed) for
// reproducible output.
func WithRand(r random.Faker) Option {
	return func(c *config) {
		c.rnd = r
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// WithValidation validates the document with kin-openapi when it is loaded by
// FromYAML, FromJSON or FromFile.
func WithValidation(enabled bool) Option {
	return func(c *config) {
		c.validate = enabled
	}
}

func buildConfig(opts []Option) config {
	c := config{log: logging.Nop()}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// New returns a Faker for an already loaded document.
func New(doc *document.Document, opts ...Option) (*Faker, error) {
	return newFaker(doc, buildConfig(opts))
}

func newFaker(doc *document.Document, c config) (*Faker, error) {
	genOpts := []faker.Option{faker.WithLogger(c.log)}
	if c.rnd != nil {
		genOpts = append(genOpts, faker.WithRand(c.rnd))
	}
	gen, err := faker.New(c.opts, genOpts...)
	if err != nil {
		return nil, err
	}
	return &Faker{doc: doc, gen: gen, log: logging.Component(c.log, "mockgen")}, nil
}

// FromYAML loads a YAML (or JSON) document.
func FromYAML(data []byte, opts ...Option) (*Faker, error) {
	c := buildConfig(opts)
	doc, err := document.Load(data, document.WithValidation(c.validate))
	if err != nil {
		return nil, err
	}
	return newFaker(doc, c)
}

// FromJSON loads a JSON document. Unlike FromYAML it rejects input that is not
// valid JSON.
func FromJSON(data []byte, opts ...Option) (*Faker, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: not valid JSON", document.ErrInvalidDocument)
	}
	return FromYAML(data, opts...)
}

// FromFile loads a document from disk.
func FromFile(path string, opts ...Option) (*Faker, error) {
	c := buildConfig(opts)
	doc, err := document.LoadFile(path, document.WithValidation(c.validate))
	if err != nil {
		return nil, err
	}
	return newFaker(doc, c)
}

// Document returns the underlying document.
func (f *Faker) Document() *document.Document {
	return f.doc
}

// Options returns the generation options in effect.
func (f *Faker) Options() faker.Options {
	return f.gen.Options()
}

// MockRequest returns a request body for the operation.
func (f *Faker) MockRequest(path, method, contentType string) (any, error) {
	return f.MockRequestForExample(path, method, "", contentType)
}

// MockRequestForExample is like MockRequest but, under the static strategy,
// returns the named example when the request body declares examples.
func (f *Faker) MockRequestForExample(path, method, exampleName, contentType string) (any, error) {
	if contentType == "" {
		contentType = DefaultContentType
	}
	media, err := f.doc.RequestBody(path, method, contentType)
	if err != nil {
		return nil, err
	}
	f.log.Debug("mocking request", "path", path, "method", method, "contentType", contentType, "example", exampleName)
	return NewRequestProvider(media, f.gen).Generate(exampleName)
}

// MockResponse returns a response body for the operation and status code.
func (f *Faker) MockResponse(path, method, status, contentType string) (any, error) {
	return f.MockResponseForExample(path, method, "", status, contentType)
}

// MockResponseForExample is like MockResponse but, under the static strategy,
// returns the named example when the response declares examples.
func (f *Faker) MockResponseForExample(path, method, exampleName, status, contentType string) (any, error) {
	if status == "" {
		status = DefaultStatus
	}
	if contentType == "" {
		contentType = DefaultContentType
	}
	media, err := f.doc.ResponseBody(path, method, status, contentType)
	if err != nil {
		return nil, err
	}
	f.log.Debug("mocking response", "path", path, "method", method, "status", status, "contentType", contentType, "example", exampleName)
	return NewResponseProvider(media, f.gen).Generate(exampleName)
}

// MockComponentSchema returns a value for a schema under components/schemas.
// Component schemas are generated in response context.
func (f *Faker) MockComponentSchema(name string) (any, error) {
	s, err := f.doc.ComponentSchema(name)
	if err != nil {
		return nil, err
	}
	f.log.Debug("mocking component schema", "name", name)
	return f.gen.Generate(s)
}
