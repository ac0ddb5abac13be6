package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"bbox-annotator/internal/domain/port"
)

var _ port.OutputStore = (*DirectoryStore)(nil)

// DirectoryStore writes annotated images into an existing directory.
type DirectoryStore struct {
	dir string
}

// NewDirectoryStore creates a store rooted at dir. The directory is never
// created; it must exist when Save is called.
func NewDirectoryStore(dir string) *DirectoryStore {
	return &DirectoryStore{dir: dir}
}

// Save writes data to dir/name. An existing file with the same name is
// overwritten.
func (s *DirectoryStore) Save(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("output directory does not exist: %s", s.dir)
		}
		return fmt.Errorf("stat output directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output path is not a directory: %s", s.dir)
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
