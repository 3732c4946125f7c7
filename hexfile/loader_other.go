//go:build !unix

package hexfile

import (
	"fmt"
	"io"
	"os"
)

// OpenWith loads the file into memory on platforms without the unix mmap
// path. Saved edits are persisted through WriteBack.
func OpenWith(path string, _ OpenOptions) (*File, error) {
	if err := statRegular(path); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	sz := st.Size()
	if sz < 1 {
		f.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotRegularOrEmpty, path)
	}

	data := make([]byte, sz)
	if _, err := io.ReadFull(f, data); err != nil {
		f.Close()
		return nil, err
	}

	return &File{
		path: path,
		f:    f,
		data: data,
		size: sz,
	}, nil
}

// WriteBack persists data[off:off+n] to the underlying file.
func (h *File) WriteBack(off, n int64) error {
	if h == nil || h.f == nil {
		return ErrClosed
	}
	if off < 0 || n < 0 || off+n > int64(len(h.data)) {
		return fmt.Errorf("hexfile: write-back range [%d,%d) outside file of %d bytes", off, off+n, len(h.data))
	}
	if _, err := h.f.WriteAt(h.data[off:off+n], off); err != nil {
		return fmt.Errorf("hexfile: write-back: %w", err)
	}
	return nil
}

// Sync fsyncs the underlying file.
func (h *File) Sync() error {
	if h == nil || h.f == nil {
		return ErrClosed
	}
	return h.f.Sync()
}

// Close releases the descriptor and the in-memory copy. Calling Close twice
// is a no-op.
func (h *File) Close() error {
	if h == nil {
		return nil
	}
	var err error
	if h.f != nil {
		err = h.f.Close()
		h.f = nil
	}
	h.data = nil
	return err
}
