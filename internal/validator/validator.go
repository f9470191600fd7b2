package validator

import (
	"context"

	"svw.info/sudogen/grid"
)

// GridVerifier implements ports.Verifier by delegating to the engine's
// grid checker.
type GridVerifier struct{}

func New() *GridVerifier { return &GridVerifier{} }

// Verify reports row/column/box validity of g. Shape problems (ragged
// rows, non-square side) come back as an error rather than a plain
// false, so callers can distinguish bad input from a wrong grid.
func (v *GridVerifier) Verify(ctx context.Context, g [][]int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return grid.IsCorrect(grid.Grid(g))
}
