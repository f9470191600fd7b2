package shuffle

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudogen/grid"
)

func TestLevelValidate(t *testing.T) {
	for l := Level(0); l <= MaxLevel; l++ {
		require.NoError(t, l.Validate())
	}
	for _, l := range []Level{-1, 10, 100} {
		require.ErrorIs(t, l.Validate(), ErrLevelOutOfRange)
	}
}

func TestApplyRejectsBadLevel(t *testing.T) {
	g, err := grid.LERS2(9)
	require.NoError(t, err)
	e := NewSeeded(1)
	require.ErrorIs(t, e.Apply(g, -1), ErrLevelOutOfRange)
	require.ErrorIs(t, e.Apply(g, 10), ErrLevelOutOfRange)
}

func TestApplyRejectsBadGrid(t *testing.T) {
	e := NewSeeded(1)
	require.Error(t, e.Apply(grid.Grid{{1, 2}, {1}}, 0))
}

// The central correctness property: every level applied to a valid
// grid yields a valid grid, across sizes and seeds.
func TestApplyPreservesValidity(t *testing.T) {
	for _, n := range []int{4, 9, 16} {
		for level := Level(0); level <= MaxLevel; level++ {
			t.Run(fmt.Sprintf("n=%d/level=%d", n, level), func(t *testing.T) {
				for seed := int64(0); seed < 25; seed++ {
					e := NewSeeded(seed)
					g, err := grid.LERS2(n)
					require.NoError(t, err)
					require.NoError(t, e.Apply(g, level))
					ok, err := grid.IsCorrect(g)
					require.NoError(t, err)
					require.True(t, ok, "seed %d produced an invalid grid", seed)
				}
			})
		}
	}
}

// Repeated application must stay valid too; primitives retain no
// state between calls.
func TestApplyRepeatedSoak(t *testing.T) {
	e := NewSeeded(42)
	g, err := grid.LERS2(9)
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		require.NoError(t, e.Apply(g, MaxLevel))
		ok, err := grid.IsCorrect(g)
		require.NoError(t, err)
		require.True(t, ok, "round %d", i)
	}
}

func TestApplyDeterministicForSeed(t *testing.T) {
	a, err := grid.LERS2(9)
	require.NoError(t, err)
	b := a.Clone()
	require.NoError(t, NewSeeded(7).Apply(a, 5))
	require.NoError(t, NewSeeded(7).Apply(b, 5))
	require.Equal(t, a, b)
}

func TestApplyChangesGrid(t *testing.T) {
	base, err := grid.LERS2(9)
	require.NoError(t, err)
	for level := Level(1); level <= MaxLevel; level++ {
		g := base.Clone()
		require.NoError(t, NewSeeded(3).Apply(g, level))
		require.NotEqual(t, base, g, "level %d left the grid untouched", level)
	}
}

func TestPrimitivesPreserveValidity(t *testing.T) {
	steps := map[string]func(e *Engine, g grid.Grid, n, box int){
		"relabel":          (*Engine).relabel,
		"rowsWithinBands":  (*Engine).rowsWithinBands,
		"colsWithinStacks": (*Engine).colsWithinStacks,
		"permuteBands":     (*Engine).permuteBands,
		"permuteStacks":    (*Engine).permuteStacks,
		"transpose":        func(e *Engine, g grid.Grid, n, box int) { transpose(g, n) },
		"rotateHalf":       func(e *Engine, g grid.Grid, n, box int) { rotateHalf(g, n) },
		"rotateQuarter":    func(e *Engine, g grid.Grid, n, box int) { rotateQuarter(g, n) },
	}
	for name, fn := range steps {
		t.Run(name, func(t *testing.T) {
			for seed := int64(0); seed < 50; seed++ {
				e := NewSeeded(seed)
				g, err := grid.LERS2(9)
				require.NoError(t, err)
				fn(e, g, 9, 3)
				ok, err := grid.IsCorrect(g)
				require.NoError(t, err)
				require.True(t, ok, "seed %d", seed)
			}
		})
	}
}

func TestTransposeIsInvolution(t *testing.T) {
	g, err := grid.LERS2(9)
	require.NoError(t, err)
	want := g.Clone()
	transpose(g, 9)
	require.NotEqual(t, want, g)
	transpose(g, 9)
	require.Equal(t, want, g)
}
