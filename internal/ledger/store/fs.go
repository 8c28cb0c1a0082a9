package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"citator/internal/ledger"
	"citator/pkg/platform/sentinel"
)

// FSStore reads per-volume ledger files from a directory. Files are named
// by zero-padded 3-digit volume number, e.g. 043.yaml.
type FSStore struct {
	dir string
}

// NewFSStore constructs a filesystem-backed ledger store.
func NewFSStore(dir string) *FSStore {
	return &FSStore{dir: dir}
}

func (s *FSStore) Volume(ctx context.Context, volume int) ([]ledger.Entry, error) {
	path := filepath.Join(s.dir, fmt.Sprintf("%03d.yaml", volume))
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("ledger volume %d: %w", volume, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("read ledger volume %d: %w", volume, err)
	}

	var entries []ledger.Entry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse ledger volume %d: %w: %v", volume, sentinel.ErrMalformed, err)
	}
	return entries, nil
}
