package shuffle

import "svw.info/sudogen/grid"

// relabel applies a random bijection on the symbol set 1..n. Renaming
// symbols cannot introduce a duplicate in any unit.
func (e *Engine) relabel(g grid.Grid, n, box int) {
	perm := e.rng.Perm(n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if v := g[r][c]; v != grid.Empty {
				g[r][c] = perm[v-1] + 1
			}
		}
	}
}

// rowsWithinBands shuffles the rows of each horizontal band among
// themselves. Rows never leave their band, so box membership is
// unchanged and row/column uniqueness is untouched.
func (e *Engine) rowsWithinBands(g grid.Grid, n, box int) {
	for band := 0; band < box; band++ {
		base := band * box
		e.rng.Shuffle(box, func(i, j int) {
			g[base+i], g[base+j] = g[base+j], g[base+i]
		})
	}
}

// colsWithinStacks is the vertical analogue of rowsWithinBands.
func (e *Engine) colsWithinStacks(g grid.Grid, n, box int) {
	for stack := 0; stack < box; stack++ {
		base := stack * box
		e.rng.Shuffle(box, func(i, j int) {
			swapColumns(g, n, base+i, base+j)
		})
	}
}

// permuteBands reorders whole bands (groups of box rows) relative to
// each other.
func (e *Engine) permuteBands(g grid.Grid, n, box int) {
	perm := e.rng.Perm(box)
	orig := make([][]int, n)
	copy(orig, g)
	for band, src := range perm {
		for r := 0; r < box; r++ {
			g[band*box+r] = orig[src*box+r]
		}
	}
}

// permuteStacks reorders whole stacks (groups of box columns).
func (e *Engine) permuteStacks(g grid.Grid, n, box int) {
	perm := e.rng.Perm(box)
	buf := make([]int, n)
	for r := 0; r < n; r++ {
		copy(buf, g[r])
		for stack, src := range perm {
			copy(g[r][stack*box:(stack+1)*box], buf[src*box:(src+1)*box])
		}
	}
}

// transpose swaps rows and columns in place. Sudoku validity is
// symmetric under transposition.
func transpose(g grid.Grid, n int) {
	for r := 0; r < n; r++ {
		for c := r + 1; c < n; c++ {
			g[r][c], g[c][r] = g[c][r], g[r][c]
		}
	}
}

// rotateHalf turns the grid 180 degrees: reverse every row, then the
// row order. Equivalent to reversing the band, stack, row, and column
// orders all at once.
func rotateHalf(g grid.Grid, n int) {
	for r := 0; r < n; r++ {
		reverse(g[r])
	}
	for r := 0; r < n/2; r++ {
		g[r], g[n-1-r] = g[n-1-r], g[r]
	}
}

// rotateQuarter turns the grid 90 degrees clockwise: transpose, then
// reverse every row.
func rotateQuarter(g grid.Grid, n int) {
	transpose(g, n)
	for r := 0; r < n; r++ {
		reverse(g[r])
	}
}

func reverse(row []int) {
	for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
		row[i], row[j] = row[j], row[i]
	}
}

func swapColumns(g grid.Grid, n, a, b int) {
	if a == b {
		return
	}
	for r := 0; r < n; r++ {
		g[r][a], g[r][b] = g[r][b], g[r][a]
	}
}
