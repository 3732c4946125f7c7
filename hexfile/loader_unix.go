//go:build unix

package hexfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// OpenWith mmaps the file RW and MAP_SHARED so that saved edits land in the
// page cache directly and only need an msync to become durable.
func OpenWith(path string, opts OpenOptions) (*File, error) {
	if err := statRegular(path); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	// Re-check on the descriptor; the path may have been swapped since Stat.
	fst, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if !fst.Mode().IsRegular() || fst.Size() < 1 {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotRegularOrEmpty, path)
	}
	sz := fst.Size()

	data, err := unix.Mmap(
		int(f.Fd()),
		0,
		int(sz),
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_SHARED,
	)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("mmap failed: %w", err)
	}

	if opts.PreFault {
		if validateErr := validateMapping(data, sz); validateErr != nil {
			_ = unix.Munmap(data)
			_ = f.Close()
			return nil, validateErr
		}
	}

	return &File{
		path: path,
		f:    f,
		data: data,
		size: sz,
	}, nil
}

// Close unmaps and closes the file. Calling Close twice is a no-op.
func (h *File) Close() error {
	if h == nil {
		return nil
	}
	var err error
	if h.data != nil {
		if unmapErr := unix.Munmap(h.data); unmapErr != nil && !errors.Is(unmapErr, unix.EINVAL) {
			err = fmt.Errorf("hexfile: munmap: %w", unmapErr)
		}
		h.data = nil
	}
	if h.f != nil {
		if closeErr := h.f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		h.f = nil
	}
	return err
}
