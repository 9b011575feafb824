package mockgen

import (
	"errors"
	"fmt"
)

// ErrNoExample is returned when a named example is requested but the media
// type does not declare it.
var ErrNoExample = errors.New("no such example")

// NoExampleError names the missing example and the side it was looked up on.
type NoExampleError struct {
	Name string
	// Response is true for response examples, false for request examples.
	Response bool
}

func (e *NoExampleError) Error() string {
	side := "request"
	if e.Response {
		side = "response"
	}
	return fmt.Sprintf("%s: %q %s", ErrNoExample, e.Name, side)
}

func (e *NoExampleError) Unwrap() error {
	return ErrNoExample
}
