package faker

import (
	"errors"
	"fmt"
)

// Sentinel errors for generation failures.
var (
	// ErrInvalidOptions is returned for options that fail validation.
	ErrInvalidOptions = errors.New("invalid generation options")
	// ErrMaxDepth is returned when a schema nests deeper than Options.MaxDepth.
	ErrMaxDepth = errors.New("schema nesting exceeds maximum depth")
	// ErrUniqueItems is returned when a uniqueItems array cannot be filled.
	ErrUniqueItems = errors.New("cannot generate enough unique items")
)

// UniqueItemsError reports a uniqueItems array that ran out of distinct values.
type UniqueItemsError struct {
	// Want is the item count that was requested.
	Want int
	// Got is the number of distinct items produced before giving up.
	Got int
	// Discarded is the number of duplicates thrown away.
	Discarded int
}

func (e *UniqueItemsError) Error() string {
	return fmt.Sprintf("%s: wanted %d, got %d after discarding %d duplicates",
		ErrUniqueItems, e.Want, e.Got, e.Discarded)
}

func (e *UniqueItemsError) Unwrap() error {
	return ErrUniqueItems
}
