package datapack

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Writer writes generated files under the datapack root directory.
type Writer struct {
	Root   string
	logger *slog.Logger
}

// NewWriter creates a Writer rooted at root.
func NewWriter(root string, logger *slog.Logger) *Writer {
	return &Writer{Root: root, logger: logger}
}

// WriteAll persists every file, creating directories as needed. It stops at
// the first failure so a broken run does not leave half the tree silently
// out of date beyond the reported file.
func (w *Writer) WriteAll(files []File) error {
	for _, f := range files {
		if err := w.write(f); err != nil {
			return fmt.Errorf("write %s: %w", f.Path, err)
		}
		w.logger.Debug("wrote file", "path", f.Path, "label", f.Label)
	}
	return nil
}

// write creates the file atomically: temp file in the target directory,
// then rename over the destination.
func (w *Writer) write(f File) error {
	dest := filepath.Join(w.Root, f.Path)
	dir := filepath.Dir(dest)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("ensure directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmp.WriteString(f.Content); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("replace file: %w", err)
	}
	return nil
}
