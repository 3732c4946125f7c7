package hexfile

import (
	"errors"
	"fmt"
	"os"
)

// ErrNotRegularOrEmpty is returned by Open for directories, devices, and
// zero-length files. An empty file has no byte to place a cursor on.
var ErrNotRegularOrEmpty = errors.New("hexfile: not a regular non-empty file")

// ErrClosed is returned when a closed File is used.
var ErrClosed = errors.New("hexfile: file closed")

// ErrTruncated is returned by OpenWith with PreFault when part of the
// mapping is no longer backed by the file.
var ErrTruncated = errors.New("hexfile: file shrank while mapped")

// File is the opened file, backed by a shared RW mmap (unix) or a byte
// slice (others). Bytes always mirrors what is persisted on disk; pending
// edits live in an overlay, never here.
//
// NOT thread-safe. A File is owned by exactly one session.
type File struct {
	path string
	f    *os.File
	data []byte
	size int64
}

// OpenOptions tunes how a file is mapped.
type OpenOptions struct {
	// PreFault touches every mapped page right after mmap so that a file
	// truncated underneath us fails here rather than with SIGBUS later.
	// Only honoured on linux. Costs one read of the whole file.
	PreFault bool
}

// Open maps path read/write with default options.
func Open(path string) (*File, error) {
	return OpenWith(path, OpenOptions{})
}

// statRegular rejects anything that cannot back an editing session.
func statRegular(path string) error {
	st, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !st.Mode().IsRegular() || st.Size() < 1 {
		return fmt.Errorf("%w: %s", ErrNotRegularOrEmpty, path)
	}
	if st.Size() > int64(^uint(0)>>1) {
		return fmt.Errorf("hexfile: file too large to map (%d bytes)", st.Size())
	}
	return nil
}

// Path returns the path the file was opened from.
func (h *File) Path() string { return h.path }

// Bytes returns the mapped contents. The slice is invalidated by Close.
func (h *File) Bytes() []byte { return h.data }

// Size returns the file length in bytes.
func (h *File) Size() int64 { return h.size }

// FD returns the underlying descriptor, or -1 once closed.
func (h *File) FD() int {
	if h == nil || h.f == nil {
		return -1
	}
	return int(h.f.Fd())
}

// Closed reports whether Close has been called.
func (h *File) Closed() bool {
	return h == nil || h.f == nil
}

// InRange reports whether off addresses a byte of the file.
func (h *File) InRange(off int64) bool {
	return off >= 0 && off < int64(len(h.data))
}

// At returns the persisted byte at off. The caller must check InRange.
func (h *File) At(off int64) byte {
	return h.data[off]
}
