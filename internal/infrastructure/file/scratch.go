package file

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ScratchStore persists uploads under randomized names so concurrent
// requests never collide. Files are removed by the caller once the
// upload has been processed.
type ScratchStore struct {
	Dir string
}

func NewScratchStore(dir string) *ScratchStore {
	if dir == "" {
		dir = "uploads"
	}
	return &ScratchStore{Dir: dir}
}

func (s *ScratchStore) Save(ctx context.Context, r io.Reader, originalName string) (string, error) {
	_ = ctx

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create scratch dir %s: %w", s.Dir, err)
	}

	name := fmt.Sprintf("%s-%s", uuid.NewString(), filepath.Base(originalName))
	path := filepath.Join(s.Dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create scratch file %s: %w", path, err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write scratch file %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close scratch file %s: %w", path, err)
	}

	return path, nil
}

func (s *ScratchStore) Remove(path string) error {
	return os.Remove(path)
}
