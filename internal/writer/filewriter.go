// Package writer exposes sinks that replace a whole file at once.
package writer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Sink receives the complete new contents of a file.
type Sink interface {
	WriteAll(data []byte) error
}

// FileWriter replaces Path atomically via a temp file in the same
// directory and a rename. Missing parent directories are created.
type FileWriter struct {
	Path string
	// Perm applies to a newly created file; an existing file keeps its mode.
	Perm fs.FileMode
}

// WriteAll writes data to the configured path atomically.
func (w *FileWriter) WriteAll(data []byte) error {
	dir := filepath.Dir(w.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	perm := w.Perm
	if perm == 0 {
		perm = 0o644
	}
	if st, err := os.Stat(w.Path); err == nil {
		if !st.Mode().IsRegular() {
			return fmt.Errorf("%s is not a regular file", w.Path)
		}
		perm = st.Mode().Perm()
	}

	tmpFile, err := os.CreateTemp(dir, ".hexkit-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(data); writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}
	if chmodErr := tmpFile.Chmod(perm); chmodErr != nil {
		return fmt.Errorf("chmod temp file: %w", chmodErr)
	}
	if syncErr := tmpFile.Sync(); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}

	// Close before rename
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil

	if renameErr := os.Rename(tmpPath, w.Path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}
	return nil
}
