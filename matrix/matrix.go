// Package matrix orchestrates the generation engine: it owns the cell
// grid, drives base construction and shuffling, derives puzzles by
// masking cells, and exposes verification and iteration to callers.
package matrix

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"svw.info/sudogen/grid"
	"svw.info/sudogen/shuffle"
)

var (
	// ErrInvariant reports that a generate/shuffle run produced a grid
	// that fails verification. Every shuffle primitive preserves
	// validity given a valid input, so this can only be an
	// implementation defect; the engine never retries it.
	ErrInvariant = errors.New("generated grid failed verification")

	// ErrNotGenerated reports an operation that needs a generated grid
	// on an uninitialized matrix.
	ErrNotGenerated = errors.New("matrix has no generated grid")
)

// DefaultSide is the side length used when no size option is given.
const DefaultSide = 9

type state int

const (
	stateUninitialized state = iota
	stateGenerated
	statePuzzle
)

// Matrix owns an ordered collection of n² cells in row-major order,
// so the cell at linear index i always satisfies
// i == cell.Row*Columns() + cell.Column. The whole collection is
// replaced by each Generate call; cells are never destroyed
// individually. A Matrix is single-threaded: it owns its grid
// exclusively and offers no internal synchronization.
type Matrix struct {
	cells   []Cell
	columns int
	boxSize int
	engine  *shuffle.Engine
	rng     *rand.Rand
	state   state
}

// Option configures a Matrix at construction time.
type Option func(*config)

type config struct {
	side   int
	seed   int64
	seeded bool
}

// WithSize sets the side length (must be a perfect square >= 4).
func WithSize(n int) Option {
	return func(c *config) { c.side = n }
}

// WithSeed makes shuffling and reveal selection deterministic, for
// reproducible runs.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed; c.seeded = true }
}

// New returns an uninitialized matrix with a 9×9 default side. It
// holds no cells until the first Generate call.
func New(opts ...Option) (*Matrix, error) {
	cfg := config{side: DefaultSide}
	for _, opt := range opts {
		opt(&cfg)
	}
	box, err := grid.BoxSize(cfg.side)
	if err != nil {
		return nil, err
	}
	seed := cfg.seed
	if !cfg.seeded {
		seed = time.Now().UnixNano()
	}
	return &Matrix{
		columns: cfg.side,
		boxSize: box,
		engine:  shuffle.NewSeeded(seed),
		rng:     rand.New(rand.NewSource(seed)),
	}, nil
}

// Columns returns the side length n.
func (m *Matrix) Columns() int { return m.columns }

// BoxSize returns √n.
func (m *Matrix) BoxSize() int { return m.boxSize }

// Len returns the number of cells currently held (0 until generated).
func (m *Matrix) Len() int { return len(m.cells) }

// Generate builds a fresh solved grid: a LERS2 base (box-safe by
// construction) randomized by the shuffle pipeline at the requested
// level. All cells come out revealed and any prior puzzle mask is
// discarded. On any error the previous state is left untouched.
func (m *Matrix) Generate(level int) error {
	lv := shuffle.Level(level)
	if err := lv.Validate(); err != nil {
		return err
	}
	g, err := grid.LERS2(m.columns)
	if err != nil {
		return err
	}
	if err := m.engine.Apply(g, lv); err != nil {
		return err
	}
	// Self-check: a failure here is a defect in a primitive, never
	// something a retry could fix.
	ok, err := grid.IsCorrect(g)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("generate(level=%d): %w", level, ErrInvariant)
	}
	cells := make([]Cell, m.columns*m.columns)
	for r := 0; r < m.columns; r++ {
		for c := 0; c < m.columns; c++ {
			cells[r*m.columns+c] = Cell{Row: r, Column: c, Value: g[r][c], Revealed: true}
		}
	}
	m.cells = cells
	m.state = stateGenerated
	return nil
}

// RevealOption configures puzzle masking.
type RevealOption func(*revealConfig)

type revealConfig struct {
	keep     int
	fraction float64
}

// KeepCount keeps exactly k cells revealed.
func KeepCount(k int) RevealOption {
	return func(c *revealConfig) { c.keep = k }
}

// KeepFraction keeps roughly the given fraction of cells revealed.
func KeepFraction(f float64) RevealOption {
	return func(c *revealConfig) { c.keep = -1; c.fraction = f }
}

// Reveal turns the solved grid into a puzzle: a random subset of
// cells stays revealed, the rest are hidden. Stored values are never
// touched, so the underlying solution survives intact. The default
// keeps two fifths of the cells, in line with a medium hand-made
// puzzle; no uniqueness-of-solution guarantee is made.
func (m *Matrix) Reveal(opts ...RevealOption) error {
	if m.state == stateUninitialized {
		return ErrNotGenerated
	}
	total := len(m.cells)
	cfg := revealConfig{keep: total * 2 / 5}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.keep < 0 {
		cfg.keep = int(cfg.fraction * float64(total))
	}
	if cfg.keep > total {
		cfg.keep = total
	}
	if cfg.keep < 0 {
		cfg.keep = 0
	}
	order := m.rng.Perm(total)
	for i, pos := range order {
		m.cells[pos].Revealed = i < cfg.keep
	}
	m.state = statePuzzle
	return nil
}

// VerifyCorrect reports whether the stored solution passes grid
// verification. Hidden cells contribute their underlying value, so
// this is a solution-integrity check, not a puzzle-progress check.
// Idempotent; false on an uninitialized matrix.
func (m *Matrix) VerifyCorrect() bool {
	if m.state == stateUninitialized {
		return false
	}
	ok, err := grid.IsCorrect(m.Grid())
	return err == nil && ok
}

// Grid snapshots the stored cell values as a raw grid, ignoring
// reveal flags.
func (m *Matrix) Grid() grid.Grid {
	g := grid.New(m.columns)
	for _, cell := range m.cells {
		g[cell.Row][cell.Column] = cell.Value
	}
	return g
}

// PuzzleGrid snapshots the player-facing view: hidden cells read as
// empty.
func (m *Matrix) PuzzleGrid() grid.Grid {
	g := grid.New(m.columns)
	for _, cell := range m.cells {
		if cell.Revealed {
			g[cell.Row][cell.Column] = cell.Value
		}
	}
	return g
}

// CellAt returns the cell at linear index i, failing with a range
// error outside [0, n²).
func (m *Matrix) CellAt(i int) (Cell, error) {
	if _, _, err := grid.Location(i, m.columns); err != nil {
		return Cell{}, err
	}
	if i >= len(m.cells) {
		return Cell{}, ErrNotGenerated
	}
	return m.cells[i], nil
}

// Iter returns a fresh cursor over the cells in storage order. The
// cursor observes the collection as it was when created; a later
// Generate call does not disturb it.
func (m *Matrix) Iter() *Iter {
	return &Iter{cells: m.cells}
}
