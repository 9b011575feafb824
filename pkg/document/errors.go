package document

import (
	"errors"
	"strings"
)

// Lookup failures. They are returned wrapped in a *LookupError.
var (
	// ErrInvalidDocument is returned when the input is not an OpenAPI document.
	ErrInvalidDocument = errors.New("invalid OpenAPI document")
	// ErrNoPath is returned when no path item matches the path and method.
	ErrNoPath = errors.New("no matching path")
	// ErrNoRequest is returned when the operation has no matching request body.
	ErrNoRequest = errors.New("no request body")
	// ErrNoResponse is returned when the operation has no matching response.
	ErrNoResponse = errors.New("no response")
	// ErrNoSchema is returned when a component schema does not exist.
	ErrNoSchema = errors.New("no component schema")
)

// LookupError describes which lookup failed.
type LookupError struct {
	Path        string
	Method      string
	Status      string
	ContentType string
	// Component is set for component schema lookups.
	Component string
	Err       error
}

func (e *LookupError) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())
	if e.Component != "" {
		b.WriteString(" named ")
		b.WriteString(e.Component)
		return b.String()
	}
	if e.Method != "" || e.Path != "" {
		b.WriteString(" for ")
		b.WriteString(strings.ToUpper(e.Method))
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	if e.Status != "" {
		b.WriteString(" status ")
		b.WriteString(e.Status)
	}
	if e.ContentType != "" {
		b.WriteString(" content type ")
		b.WriteString(e.ContentType)
	}
	return b.String()
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
