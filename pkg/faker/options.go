package faker

import (
	"fmt"
	"strings"
)

// Strategy selects how values are produced.
type Strategy int

const (
	// StrategyDynamic produces random values within the schema constraints.
	StrategyDynamic Strategy = iota
	// StrategyStatic produces deterministic values.
	StrategyStatic
)

// Defaults for the recursion and uniqueness guards.
const (
	DefaultMaxDepth      = 64
	DefaultMaxDuplicates = 1000
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyDynamic:
		return "dynamic"
	case StrategyStatic:
		return "static"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy parses "dynamic" or "static" (case-insensitive). An empty
// string is the dynamic strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dynamic":
		return StrategyDynamic, nil
	case "static":
		return StrategyStatic, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q (expected dynamic or static)", ErrInvalidOptions, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(b []byte) error {
	v, err := ParseStrategy(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Options control one generation. They are read-only once handed to New.
type Options struct {
	// MinItems raises the lower item count of every array. It never widens
	// a declared window.
	MinItems *int
	// MaxItems lowers the upper item count of every array.
	MaxItems *int
	// AlwaysFakeOptionals includes every optional property and disables the
	// static pruning of null optional properties.
	AlwaysFakeOptionals bool
	Strategy            Strategy
	// MaxDepth bounds schema nesting. Zero means DefaultMaxDepth.
	MaxDepth int
	// MaxDuplicates bounds the duplicates discarded while filling one
	// uniqueItems array. Zero means DefaultMaxDuplicates.
	MaxDuplicates int
}

// Validate reports option combinations that cannot be honored.
func (o Options) Validate() error {
	if o.MinItems != nil && *o.MinItems < 0 {
		return fmt.Errorf("%w: minItems must not be negative, got %d", ErrInvalidOptions, *o.MinItems)
	}
	if o.MaxItems != nil && *o.MaxItems < 0 {
		return fmt.Errorf("%w: maxItems must not be negative, got %d", ErrInvalidOptions, *o.MaxItems)
	}
	if o.MinItems != nil && o.MaxItems != nil && *o.MinItems > *o.MaxItems {
		return fmt.Errorf("%w: minItems (%d) is greater than maxItems (%d)", ErrInvalidOptions, *o.MinItems, *o.MaxItems)
	}
	if o.Strategy != StrategyDynamic && o.Strategy != StrategyStatic {
		return fmt.Errorf("%w: unknown strategy %d", ErrInvalidOptions, int(o.Strategy))
	}
	if o.MaxDepth < 0 || o.MaxDuplicates < 0 {
		return fmt.Errorf("%w: limits must not be negative", ErrInvalidOptions)
	}
	return nil
}

func (o Options) static() bool {
	return o.Strategy == StrategyStatic
}

func (o Options) maxDepth() int {
	if o.MaxDepth == 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

func (o Options) maxDuplicates() int {
	if o.MaxDuplicates == 0 {
		return DefaultMaxDuplicates
	}
	return o.MaxDuplicates
}
