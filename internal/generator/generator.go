package generator

import (
	"context"
	"time"

	"svw.info/sudogen/internal/domain"
	"svw.info/sudogen/internal/ports"
	"svw.info/sudogen/matrix"
)

// MatrixGenerator implements ports.Generator on top of the matrix
// engine: LERS2 base, shuffle pipeline, then a reveal mask.
type MatrixGenerator struct{}

// NewMatrixGenerator wires a generator backed by the shuffle engine.
func NewMatrixGenerator() *MatrixGenerator { return &MatrixGenerator{} }

// Generate builds one solved grid at the given level and side length,
// masks it, and returns both views. A zero size falls back to the 9×9
// default. Context is checked once up front; a single generation is
// fast enough that finer-grained cancellation buys nothing.
func (g *MatrixGenerator) Generate(ctx context.Context, seed int64, level int, size int) (*domain.Puzzle, ports.Stats, error) {
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}
	start := time.Now()
	opts := []matrix.Option{matrix.WithSeed(seed)}
	if size != 0 {
		opts = append(opts, matrix.WithSize(size))
	}
	m, err := matrix.New(opts...)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	if err := m.Generate(level); err != nil {
		return nil, ports.Stats{}, err
	}
	solution := m.Grid()
	if err := m.Reveal(); err != nil {
		return nil, ports.Stats{}, err
	}
	p := &domain.Puzzle{
		Seed:      seed,
		Level:     level,
		Columns:   m.Columns(),
		Solution:  solution,
		Givens:    m.PuzzleGrid(),
		CreatedAt: time.Now().UnixNano(),
	}
	return p, ports.Stats{Generations: 1, Duration: time.Since(start)}, nil
}
