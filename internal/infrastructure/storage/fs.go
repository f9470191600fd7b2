package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/uuid/v5"

	"svw.info/sudogen/internal/domain"
)

// FS persists puzzles as pretty-printed JSON files, bucketed into one
// subdirectory per shuffle level (level-0 .. level-9).
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func levelDir(level int) string {
	return fmt.Sprintf("level-%d", level)
}

func (s *FS) pathFor(id string, level int) string {
	return filepath.Join(s.dir, levelDir(level), strings.TrimSpace(id)+".json")
}

// Save writes p under its level bucket, assigning a fresh UUID when
// the puzzle has no ID yet.
func (s *FS) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil {
		return errors.New("invalid puzzle: nil")
	}
	if p.ID == "" {
		id, err := uuid.NewV4()
		if err != nil {
			return err
		}
		p.ID = id.String()
	}
	target := s.pathFor(p.ID, p.Level)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// Load retrieves the puzzle with the given ID, scanning the level
// buckets in order.
func (s *FS) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	for level := 0; level <= 9; level++ {
		data, err := os.ReadFile(s.pathFor(id, level))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		var out domain.Puzzle
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}
	return nil, os.ErrNotExist
}

// List returns metadata for every stored puzzle across all buckets.
func (s *FS) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	var out []domain.PuzzleMeta
	for level := 0; level <= 9; level++ {
		dir := filepath.Join(s.dir, levelDir(level))
		ents, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				continue
			}
			var p domain.Puzzle
			if err := json.Unmarshal(data, &p); err != nil || p.ID == "" {
				continue
			}
			out = append(out, domain.PuzzleMeta{
				ID:        p.ID,
				Name:      p.Name,
				Level:     p.Level,
				CreatedAt: p.CreatedAt,
			})
		}
	}
	return out, nil
}
