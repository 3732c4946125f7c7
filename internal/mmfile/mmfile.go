// Package mmfile maps windows of a file read-only. hexctl uses it to dump
// and inspect files without taking the read/write mapping an editing
// session needs.
package mmfile

import (
	"errors"
	"fmt"
)

// ErrOffset is returned when a window starts past the end of the file.
var ErrOffset = errors.New("mmfile: offset past end of file")

// Region is a read-only view of [Offset, Offset+len(Bytes)) of a file.
type Region struct {
	view   []byte
	off    int64
	size   int64
	unmap  func() error
	closed bool
}

// Bytes returns the window contents. Invalid after Close.
func (r *Region) Bytes() []byte { return r.view }

// Offset returns the file offset of Bytes()[0].
func (r *Region) Offset() int64 { return r.off }

// FileSize returns the size of the whole file at map time.
func (r *Region) FileSize() int64 { return r.size }

// Close releases the mapping. Calling it twice is a no-op.
func (r *Region) Close() error {
	if r == nil || r.closed {
		return nil
	}
	r.closed = true
	r.view = nil
	if r.unmap == nil {
		return nil
	}
	return r.unmap()
}

// Map maps the whole file.
func Map(path string) (*Region, error) {
	return MapRange(path, 0, -1)
}

// clampWindow validates off against size and shortens n to fit. A negative
// n means "to the end of the file".
func clampWindow(size, off, n int64) (int64, error) {
	if off < 0 || off > size {
		return 0, fmt.Errorf("%w: offset %d, size %d", ErrOffset, off, size)
	}
	if n < 0 || off+n > size {
		n = size - off
	}
	return n, nil
}
