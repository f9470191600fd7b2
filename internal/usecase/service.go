package usecase

import (
	"context"
	"errors"

	"svw.info/sudogen/internal/domain"
	"svw.info/sudogen/internal/ports"
)

// Service fronts the engine for transport adapters: generation,
// verification, and puzzle persistence behind one seam.
type Service struct {
	Generator ports.Generator
	Verifier  ports.Verifier
	Storage   ports.Storage
}

func NewService(g ports.Generator, v ports.Verifier, st ports.Storage) *Service {
	return &Service{Generator: g, Verifier: v, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Generate(ctx context.Context, seed int64, level, size int) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, level, size)
}

func (u *Service) Verify(ctx context.Context, g [][]int) (bool, error) {
	if u.Verifier == nil {
		return false, errNotConfigured
	}
	return u.Verifier.Verify(ctx, g)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
