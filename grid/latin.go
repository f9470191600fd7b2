package grid

// Euler builds the canonical cyclic Latin square of side n, where
// cell (r, c) holds ((r+c) mod n) + 1. Every row and column is a
// permutation of 1..n by construction. The box constraint is NOT
// guaranteed for composite n; use LERS2 when box validity matters.
func Euler(n int) (Grid, error) {
	if _, err := BoxSize(n); err != nil {
		return nil, err
	}
	g := New(n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			g[r][c] = (r+c)%n + 1
		}
	}
	return g, nil
}

// LERS2 builds a base Sudoku grid of side n: a Latin square that also
// satisfies the box constraint. Rows within a band advance by the box
// size, bands advance by one, so no box ever repeats a symbol:
//
//	cell (r, c) = ((r mod b)*b + r/b + c) mod n + 1, b = √n
func LERS2(n int) (Grid, error) {
	box, err := BoxSize(n)
	if err != nil {
		return nil, err
	}
	g := New(n)
	for r := 0; r < n; r++ {
		shift := (r%box)*box + r/box
		for c := 0; c < n; c++ {
			g[r][c] = (shift+c)%n + 1
		}
	}
	return g, nil
}
