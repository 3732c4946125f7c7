//go:build unix

package mmfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// MapRange maps n bytes starting at off. The mapping itself starts at the
// page boundary below off; Bytes hides the slack.
func MapRange(path string, off, n int64) (*Region, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() // mapping keeps pages alive

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()

	n, err = clampWindow(size, off, n)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return &Region{view: []byte{}, off: off, size: size}, nil
	}

	page := int64(os.Getpagesize())
	aligned := off - off%page
	length := off - aligned + n
	if length > int64(^uint(0)>>1) {
		return nil, fmt.Errorf("mmfile: window too large to map (%d bytes)", length)
	}

	data, err := unix.Mmap(int(f.Fd()), aligned, int(length), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmfile: mmap: %w", err)
	}

	unmap := func() error {
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}

	return &Region{
		view:  data[off-aligned:],
		off:   off,
		size:  size,
		unmap: unmap,
	}, nil
}
