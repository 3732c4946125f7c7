//go:build !unix

package dirty

import (
	"context"
	"errors"
)

// writeBacker is implemented by the in-memory hexfile.File used where
// there is no shared mapping to msync.
type writeBacker interface {
	WriteBack(off, n int64) error
	Sync() error
}

var errNoWriteBack = errors.New("dirty: store cannot write back ranges")

func (t *Tracker) flushRanges(ctx context.Context, _ []byte) error {
	wb, ok := t.s.(writeBacker)
	if !ok {
		return errNoWriteBack
	}
	for _, r := range t.coalesce() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := wb.WriteBack(r.Off, r.Len); err != nil {
			return err
		}
	}
	return nil
}

// msync is a no-op; writes already went through WriteBack.
func msync(_ Store, _ []byte) error { return nil }

func fdatasync(s Store, _ bool) error {
	wb, ok := s.(writeBacker)
	if !ok {
		return errNoWriteBack
	}
	return wb.Sync()
}
