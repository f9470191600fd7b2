package shuffle

import (
	"math/rand"
	"time"

	"svw.info/sudogen/grid"
)

// Engine applies shuffle levels to grids. It owns a pseudo-random
// source and nothing else; no state survives an Apply call. Not safe
// for concurrent use of a single Engine.
type Engine struct {
	rng *rand.Rand
}

// New returns an Engine seeded from the wall clock.
func New() *Engine {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns an Engine with a deterministic source, for
// reproducible runs.
func NewSeeded(seed int64) *Engine {
	return &Engine{rng: rand.New(rand.NewSource(seed))}
}

// step is one pipeline stage. Every step must preserve Sudoku
// validity given a valid input grid of side n with the given box size.
type step func(e *Engine, g grid.Grid, n, box int)

// pipeline is the explicit level dispatch table: level L runs stages
// pipeline[0..L] in order, so each level composes the previous level
// plus one more primitive. The ordering is a design decision; the
// contract is only that every prefix is validity-preserving.
var pipeline = [MaxLevel + 1]step{
	0: (*Engine).relabel,
	1: (*Engine).rowsWithinBands,
	2: (*Engine).colsWithinStacks,
	3: (*Engine).permuteBands,
	4: (*Engine).permuteStacks,
	5: func(e *Engine, g grid.Grid, n, box int) { transpose(g, n) },
	6: func(e *Engine, g grid.Grid, n, box int) { rotateHalf(g, n) },
	7: func(e *Engine, g grid.Grid, n, box int) { rotateQuarter(g, n) },
	8: func(e *Engine, g grid.Grid, n, box int) {
		e.rowsWithinBands(g, n, box)
		e.colsWithinStacks(g, n, box)
	},
	9: (*Engine).relabel,
}

// Apply mutates g in place by running the pipeline stages selected by
// level. The input grid must be square with a perfect-square side;
// a valid input always yields a valid output.
func (e *Engine) Apply(g grid.Grid, level Level) error {
	if err := level.Validate(); err != nil {
		return err
	}
	n, box, err := grid.Dimensions(g)
	if err != nil {
		return err
	}
	for i := Level(0); i <= level; i++ {
		pipeline[i](e, g, n, box)
	}
	return nil
}
