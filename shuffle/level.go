// Package shuffle implements the family of validity-preserving grid
// transformations used to randomize a freshly built base grid.
//
// Each primitive maps a valid Sudoku grid to another valid grid. A
// Level selects how many primitives compose: level L applies the first
// L+1 steps of a fixed pipeline, so every level strictly extends the
// one below it.
package shuffle

import (
	"errors"
	"fmt"
)

// Level is the shuffle complexity ordinal, 0 (weakest) through
// MaxLevel.
type Level int

// MaxLevel is the strongest supported shuffle level.
const MaxLevel Level = 9

// ErrLevelOutOfRange reports a level outside [0, MaxLevel]. Surfaced
// synchronously by the call that received the bad input.
var ErrLevelOutOfRange = errors.New("shuffle level out of range")

// Validate fails unless l lies in [0, MaxLevel].
func (l Level) Validate() error {
	if l < 0 || l > MaxLevel {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrLevelOutOfRange, int(l), int(MaxLevel))
	}
	return nil
}
