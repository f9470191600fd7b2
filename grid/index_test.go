package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocationIndexRoundTrip(t *testing.T) {
	for _, columns := range []int{4, 9, 16} {
		for i := 0; i < columns*columns; i++ {
			row, col, err := Location(i, columns)
			require.NoError(t, err)
			require.Equal(t, i/columns, row)
			require.Equal(t, i%columns, col)

			back, err := Index(row, col, columns)
			require.NoError(t, err)
			require.Equal(t, i, back)
		}
	}
}

func TestLocationOutOfRange(t *testing.T) {
	tests := []struct {
		name    string
		i       int
		columns int
	}{
		{"negative index", -1, 9},
		{"index at limit", 81, 9},
		{"zero columns", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Location(tt.i, tt.columns)
			require.ErrorIs(t, err, ErrIndexOutOfRange)
		})
	}
}

func TestIndexOutOfRange(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
	}{
		{"negative row", -1, 0},
		{"row at limit", 9, 0},
		{"negative column", 0, -1},
		{"column at limit", 0, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Index(tt.row, tt.col, 9)
			var rangeErr *RangeError
			require.ErrorAs(t, err, &rangeErr)
		})
	}
}
