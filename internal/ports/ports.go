package ports

import (
	"context"
	"time"

	"svw.info/sudogen/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Generations int
	Duration    time.Duration
}

// Generator produces solved grids at a shuffle level and masks them
// into puzzles.
type Generator interface {
	Generate(ctx context.Context, seed int64, level int, size int) (*domain.Puzzle, Stats, error)
}

// Verifier performs the row/column/box uniqueness check on a raw grid.
type Verifier interface {
	Verify(ctx context.Context, g [][]int) (bool, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
