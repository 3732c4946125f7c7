//go:build linux || freebsd

package dirty

import (
	"context"

	"golang.org/x/sys/unix"
)

// flushRanges msyncs each coalesced range. Linux and FreeBSD accept
// page-aligned sub-slices of the mapping.
func (t *Tracker) flushRanges(ctx context.Context, data []byte) error {
	for _, r := range t.coalesce() {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := int(r.Off)
		end := int(r.Off + r.Len)
		if end > len(data) {
			end = len(data)
		}
		if start >= end {
			continue
		}

		if err := unix.Msync(data[start:end], unix.MS_SYNC); err != nil {
			return err
		}
	}

	return nil
}

func msync(_ Store, data []byte) error {
	return unix.Msync(data, unix.MS_SYNC)
}

// fdatasync ignores fullfsync; fdatasync() is sufficient here.
func fdatasync(s Store, _ bool) error {
	return unix.Fdatasync(s.FD())
}
