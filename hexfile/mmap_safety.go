//go:build linux

package hexfile

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"golang.org/x/sys/unix"
)

// madvPopulateRead is MADV_POPULATE_READ, available since Linux 5.14.
const madvPopulateRead = 22

// touchSink keeps the loads in touchPages observable.
var touchSink byte

// prefault reads in every page of data. Pages past the end of a file that
// shrank after it was mapped fail with ErrTruncated here rather than with
// SIGBUS at the first edit.
func prefault(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	err := unix.Madvise(data, madvPopulateRead)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, unix.EFAULT):
		return fmt.Errorf("%w: %v", ErrTruncated, err)
	case errors.Is(err, unix.EINVAL), errors.Is(err, unix.ENOSYS):
		// Kernel predates MADV_POPULATE_READ.
		return touchPages(data)
	default:
		return fmt.Errorf("madvise: %w", err)
	}
}

// touchPages reads one byte per page with memory faults turned into
// recoverable panics.
func touchPages(data []byte) (err error) {
	defer debug.SetPanicOnFault(debug.SetPanicOnFault(true))
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrTruncated, r)
		}
	}()

	if len(data) == 0 {
		return nil
	}
	page := os.Getpagesize()
	sink := touchSink
	for i := 0; i < len(data); i += page {
		sink ^= data[i]
	}
	sink ^= data[len(data)-1]
	touchSink = sink
	return nil
}

func validateMapping(data []byte, size int64) error {
	if int64(len(data)) != size {
		return fmt.Errorf("hexfile: mapped %d bytes of a %d-byte file", len(data), size)
	}
	return prefault(data)
}
