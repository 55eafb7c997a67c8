package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

type FileBlob struct {
	dir string
}

func NewFileBlob(dir string) *FileBlob {
	if dir == "" {
		dir = "."
	}
	return &FileBlob{dir: dir}
}

func (b *FileBlob) Read(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(b.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotExist
	}
	return data, err
}

func (b *FileBlob) Write(_ context.Context, key string, data []byte) error {
	path := b.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (b *FileBlob) path(key string) string {
	if filepath.IsAbs(key) {
		return key
	}
	return filepath.Join(b.dir, key)
}
