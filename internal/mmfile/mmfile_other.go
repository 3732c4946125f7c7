//go:build !unix

package mmfile

import (
	"io"
	"os"
)

// MapRange reads n bytes starting at off where mmap is not available.
func MapRange(path string, off, n int64) (*Region, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()

	n, err = clampWindow(size, off, n)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, n)
	if _, err := f.ReadAt(buf, off); err != nil && err != io.EOF {
		return nil, err
	}
	return &Region{view: buf, off: off, size: size}, nil
}
