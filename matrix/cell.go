package matrix

// Cell is one square of the matrix. Value stays populated with the
// solution symbol even while the cell is hidden from the player;
// Revealed only controls presentation.
type Cell struct {
	Row      int
	Column   int
	Value    int
	Revealed bool
}

// Iter walks the cell collection in row-major storage order. It is a
// plain cursor: finite, restartable, and independent of other
// iterators over the same matrix.
type Iter struct {
	cells []Cell
	pos   int
}

// Next returns the next cell, reporting false once the sequence is
// exhausted.
func (it *Iter) Next() (Cell, bool) {
	if it.pos >= len(it.cells) {
		return Cell{}, false
	}
	c := it.cells[it.pos]
	it.pos++
	return c, true
}

// Reset rewinds the cursor to the first cell.
func (it *Iter) Reset() { it.pos = 0 }
