package domain

// Puzzle is a persisted generated grid with metadata. Solution holds
// the full grid; Givens is the masked player view with zeros for
// hidden cells.
type Puzzle struct {
	ID        string  `json:"id,omitempty"`
	Seed      int64   `json:"seed,omitempty"`
	Level     int     `json:"level"`
	Columns   int     `json:"columns"`
	Solution  [][]int `json:"solution"`
	Givens    [][]int `json:"givens,omitempty"`
	CreatedAt int64   `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Level     int    `json:"level"`
	CreatedAt int64  `json:"createdAt"`
}
