package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudogen/grid"
	"svw.info/sudogen/shuffle"
)

func TestGenerateProducesMaskedPuzzle(t *testing.T) {
	g := NewMatrixGenerator()
	p, st, err := g.Generate(context.Background(), 99, 8, 0)
	require.NoError(t, err)
	require.Equal(t, 9, p.Columns)
	require.Equal(t, 1, st.Generations)

	ok, err := grid.IsCorrect(grid.Grid(p.Solution))
	require.NoError(t, err)
	require.True(t, ok)

	// Givens must be a masked subset of the solution.
	masked := 0
	for r := range p.Givens {
		for c := range p.Givens[r] {
			if p.Givens[r][c] == grid.Empty {
				masked++
			} else {
				require.Equal(t, p.Solution[r][c], p.Givens[r][c])
			}
		}
	}
	require.Greater(t, masked, 0)
}

func TestGenerateRejectsBadInput(t *testing.T) {
	g := NewMatrixGenerator()
	ctx := context.Background()
	_, _, err := g.Generate(ctx, 1, 10, 0)
	require.ErrorIs(t, err, shuffle.ErrLevelOutOfRange)
	_, _, err = g.Generate(ctx, 1, 0, 7)
	require.ErrorIs(t, err, grid.ErrNotPerfectSquare)
}

func TestGenerateHonorsCancelledContext(t *testing.T) {
	g := NewMatrixGenerator()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := g.Generate(ctx, 1, 0, 0)
	require.ErrorIs(t, err, context.Canceled)
}
