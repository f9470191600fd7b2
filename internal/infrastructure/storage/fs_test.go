package storage

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudogen/internal/domain"
)

func samplePuzzle(level int) *domain.Puzzle {
	return &domain.Puzzle{
		Seed:    42,
		Level:   level,
		Columns: 4,
		Solution: [][]int{
			{1, 2, 3, 4},
			{3, 4, 1, 2},
			{2, 1, 4, 3},
			{4, 3, 2, 1},
		},
		CreatedAt: 1700000000,
		Name:      "sample",
	}
}

func TestSaveAssignsID(t *testing.T) {
	s := NewFS(t.TempDir())
	p := samplePuzzle(3)
	require.NoError(t, s.Save(context.Background(), p))
	require.NotEmpty(t, p.ID)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	p := samplePuzzle(7)
	require.NoError(t, s.Save(ctx, p))

	got, err := s.Load(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, p.Level, got.Level)
	require.Equal(t, p.Solution, got.Solution)
	require.Equal(t, p.Name, got.Name)
}

func TestLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	_, err := s.Load(context.Background(), "no-such-id")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestListAcrossLevels(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	for _, level := range []int{0, 4, 9} {
		require.NoError(t, s.Save(ctx, samplePuzzle(level)))
	}
	metas, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 3)

	levels := map[int]bool{}
	for _, m := range metas {
		require.NotEmpty(t, m.ID)
		levels[m.Level] = true
	}
	require.Equal(t, map[int]bool{0: true, 4: true, 9: true}, levels)
}
