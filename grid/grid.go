// Package grid implements the raw Sudoku grid form: linear index math,
// Latin-square construction, and row/column/box validity checking.
//
// A Grid is an N×N matrix of symbols 1..N where N is a perfect square.
// The zero value Empty marks a cell with no symbol; verification only
// ever inspects non-empty cells, so partially revealed puzzles check
// with the same code path as full solutions.
package grid

// Empty marks a cell that carries no symbol.
const Empty = 0

// Grid is the interchange format between the builders, the shuffle
// engine, and the verifier. Rows are stored top to bottom.
type Grid [][]int

// New returns an all-empty n×n grid.
func New(n int) Grid {
	g := make(Grid, n)
	for r := range g {
		g[r] = make([]int, n)
	}
	return g
}

// Clone returns a deep copy of g.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r := range g {
		out[r] = make([]int, len(g[r]))
		copy(out[r], g[r])
	}
	return out
}

// Size returns the side length of g.
func (g Grid) Size() int { return len(g) }

// Dimensions validates the shape of g and returns its side length and
// box size. It fails if any row is ragged or if the side length is not
// a perfect square of an integer >= 2.
func Dimensions(g Grid) (n, box int, err error) {
	n = len(g)
	for r := range g {
		if len(g[r]) != n {
			return 0, 0, &ConfigError{Reason: ErrRaggedGrid, Value: len(g[r])}
		}
	}
	box, err = BoxSize(n)
	if err != nil {
		return 0, 0, err
	}
	return n, box, nil
}

// MaxSide is the largest supported side length. The verifier packs
// each unit into a 64-bit set, so symbols must fit below bit 64.
const MaxSide = 49

// BoxSize returns the integer square root of n, failing unless n is a
// perfect square of an integer >= 2 no larger than MaxSide.
func BoxSize(n int) (int, error) {
	root, ok := intSquareRoot(n)
	if !ok || root < 2 {
		return 0, &ConfigError{Reason: ErrNotPerfectSquare, Value: n}
	}
	if n > MaxSide {
		return 0, &ConfigError{Reason: ErrSideTooLarge, Value: n}
	}
	return root, nil
}

// intSquareRoot finds the integer square root of val, if it exists.
func intSquareRoot(val int) (int, bool) {
	for i := 1; i*i <= val; i++ {
		if i*i == val {
			return i, true
		}
	}
	return 0, false
}
