package grid

// IsCorrect reports whether g satisfies Sudoku validity: every row,
// column, and box is duplicate-free over its non-empty cells, and a
// fully filled unit therefore holds exactly the symbols 1..n. Empty
// cells are skipped, so partially revealed puzzles verify too.
//
// Duplicates and out-of-range symbols yield false. The only error is a
// ConfigError for inconsistent dimensions (ragged rows, side length
// not a perfect square).
func IsCorrect(g Grid) (bool, error) {
	n, box, err := Dimensions(g)
	if err != nil {
		return false, err
	}
	// rows
	for r := 0; r < n; r++ {
		var m uint64
		for c := 0; c < n; c++ {
			if ok := mark(&m, g[r][c], n); !ok {
				return false, nil
			}
		}
	}
	// columns
	for c := 0; c < n; c++ {
		var m uint64
		for r := 0; r < n; r++ {
			if ok := mark(&m, g[r][c], n); !ok {
				return false, nil
			}
		}
	}
	// boxes
	for br := 0; br < box; br++ {
		for bc := 0; bc < box; bc++ {
			var m uint64
			for dr := 0; dr < box; dr++ {
				for dc := 0; dc < box; dc++ {
					if ok := mark(&m, g[br*box+dr][bc*box+dc], n); !ok {
						return false, nil
					}
				}
			}
		}
	}
	return true, nil
}

// IsLatin reports whether g is a valid Latin square: every row and
// column duplicate-free over its non-empty cells, with no box
// constraint. This is the check the cyclic Euler construction
// satisfies; LERS2 grids additionally pass IsCorrect.
func IsLatin(g Grid) (bool, error) {
	n, _, err := Dimensions(g)
	if err != nil {
		return false, err
	}
	for r := 0; r < n; r++ {
		var m uint64
		for c := 0; c < n; c++ {
			if ok := mark(&m, g[r][c], n); !ok {
				return false, nil
			}
		}
	}
	for c := 0; c < n; c++ {
		var m uint64
		for r := 0; r < n; r++ {
			if ok := mark(&m, g[r][c], n); !ok {
				return false, nil
			}
		}
	}
	return true, nil
}

// mark records v in the bitset m, reporting false on a duplicate or an
// out-of-range symbol. Empty cells are accepted and not recorded.
func mark(m *uint64, v, n int) bool {
	if v == Empty {
		return true
	}
	if v < 1 || v > n {
		return false
	}
	bit := uint64(1) << uint(v)
	if *m&bit != 0 {
		return false
	}
	*m |= bit
	return true
}
