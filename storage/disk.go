package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DiskStore keeps blobs as plain files under a single directory.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create upload dir %s: %w", dir, err)
	}
	return &DiskStore{dir: dir}, nil
}

func (d *DiskStore) Store(_ context.Context, data []byte, suggestedName string) (string, error) {
	key := NewKey(suggestedName)
	if err := os.WriteFile(filepath.Join(d.dir, key), data, 0o644); err != nil {
		return "", fmt.Errorf("storage: write %s: %w", key, err)
	}
	return key, nil
}

func (d *DiskStore) Retrieve(_ context.Context, key string) ([]byte, error) {
	// Keys are generated by NewKey and never contain separators, but the
	// serving endpoint passes them straight from the URL.
	if key != filepath.Base(key) {
		return nil, ErrNotFound
	}
	data, err := os.ReadFile(filepath.Join(d.dir, key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", key, err)
	}
	return data, nil
}
