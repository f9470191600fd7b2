package grid

import (
	"errors"
	"fmt"
)

// Sentinel causes for the two error classes the package surfaces.
// Configuration problems are wrapped in ConfigError, index problems in
// RangeError; both unwrap to these for errors.Is checks.
var (
	// ErrNotPerfectSquare reports a side length that is not the square
	// of an integer >= 2.
	ErrNotPerfectSquare = errors.New("side length is not a perfect square")

	// ErrRaggedGrid reports a grid whose rows differ in length from the
	// row count.
	ErrRaggedGrid = errors.New("grid rows are ragged")

	// ErrSideTooLarge reports a side length above MaxSide.
	ErrSideTooLarge = errors.New("side length too large")

	// ErrIndexOutOfRange reports an out-of-bounds cell index or
	// coordinate.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ConfigError reports invalid engine configuration: a bad side length
// or an inconsistent grid shape. Never retried, always surfaced to the
// caller of the operation that received the bad input.
type ConfigError struct {
	Reason error
	Value  int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("grid: %v (got %d)", e.Reason, e.Value)
}

func (e *ConfigError) Unwrap() error { return e.Reason }

// RangeError reports an out-of-bounds access on the index mapping or
// the cell collection.
type RangeError struct {
	Index int
	Limit int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("grid: index %d outside [0, %d)", e.Index, e.Limit)
}

func (e *RangeError) Unwrap() error { return ErrIndexOutOfRange }
