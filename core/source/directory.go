package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Directory loads files relative to a root directory.
type Directory struct {
	root string
}

// NewDirectory creates a directory source rooted at root.
func NewDirectory(root string) *Directory {
	return &Directory{root: root}
}

// Root returns the directory the source reads from.
func (d *Directory) Root() string {
	return d.root
}

func (d *Directory) path(path string) string {
	return filepath.Join(d.root, filepath.FromSlash(path))
}

// Load reads the file at path.
func (d *Directory) Load(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(d.path(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// Modified returns the file's modification time in unix nanoseconds.
func (d *Directory) Modified(ctx context.Context, path string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	info, err := os.Stat(d.path(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return info.ModTime().UnixNano(), nil
}
