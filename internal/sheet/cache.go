package sheet

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrCacheMiss is returned by Cache.Get when no copy is stored.
var ErrCacheMiss = errors.New("sheet: cache miss")

// Cache stores raw CSV downloads keyed by spreadsheet tab.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}

// FileCache keeps one file per tab under Dir.
type FileCache struct {
	Dir string
}

// NewFileCache creates a FileCache rooted at dir.
func NewFileCache(dir string) *FileCache {
	return &FileCache{Dir: dir}
}

func (c *FileCache) path(key string) string {
	return filepath.Join(c.Dir, key)
}

// Get reads the cached file for key.
func (c *FileCache) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("read cache: %w", err)
	}
	return data, nil
}

// Put writes data atomically: temp file in the same directory, then rename.
func (c *FileCache) Put(_ context.Context, key string, data []byte) error {
	if err := os.MkdirAll(c.Dir, 0755); err != nil {
		return fmt.Errorf("ensure cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(c.Dir, "tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, c.path(key)); err != nil {
		return fmt.Errorf("replace cache file: %w", err)
	}
	return nil
}
