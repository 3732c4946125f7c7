//go:build darwin

package dirty

import (
	"context"

	"golang.org/x/sys/unix"
)

// flushRanges syncs the entire mapping. msync on macOS requires the
// original mmap address, and the kernel only writes dirty pages anyway.
func (t *Tracker) flushRanges(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return unix.Msync(data, unix.MS_SYNC)
}

func msync(_ Store, data []byte) error {
	return unix.Msync(data, unix.MS_SYNC)
}

// fdatasync uses F_FULLFSYNC when fullfsync is set so data reaches the
// platter and not just the drive cache. macOS has no fdatasync.
func fdatasync(s Store, fullfsync bool) error {
	if fullfsync {
		_, err := unix.FcntlInt(uintptr(s.FD()), unix.F_FULLFSYNC, 0)
		return err
	}
	return unix.Fsync(s.FD())
}
