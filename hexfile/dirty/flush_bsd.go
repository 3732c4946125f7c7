//go:build unix && !linux && !freebsd && !darwin

package dirty

import (
	"context"

	"golang.org/x/sys/unix"
)

func (t *Tracker) flushRanges(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return unix.Msync(data, unix.MS_SYNC)
}

func msync(_ Store, data []byte) error {
	return unix.Msync(data, unix.MS_SYNC)
}

func fdatasync(s Store, _ bool) error {
	return unix.Fsync(s.FD())
}
