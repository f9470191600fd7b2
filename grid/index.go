package grid

// Location maps a linear storage position i to its (row, column)
// coordinate on a grid with the given number of columns. Pure; fails
// only with a RangeError for out-of-range input.
func Location(i, columns int) (row, column int, err error) {
	if columns <= 0 || i < 0 || i >= columns*columns {
		return 0, 0, &RangeError{Index: i, Limit: columns * columns}
	}
	return i / columns, i % columns, nil
}

// Index is the inverse of Location: it maps a (row, column) coordinate
// to the linear storage position row*columns + column.
func Index(row, column, columns int) (int, error) {
	if row < 0 || row >= columns || column < 0 || column >= columns {
		return 0, &RangeError{Index: row*columns + column, Limit: columns * columns}
	}
	return row*columns + column, nil
}
