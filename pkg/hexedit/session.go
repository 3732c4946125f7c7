package hexedit

import (
	"context"
	"errors"
	"fmt"

	"github.com/joshuapare/hexkit/hexfile"
	"github.com/joshuapare/hexkit/hexfile/dirty"
	"github.com/joshuapare/hexkit/hexfile/grid"
	"github.com/joshuapare/hexkit/hexfile/overlay"
	"github.com/joshuapare/hexkit/hexfile/rebuild"
	"github.com/joshuapare/hexkit/hexfile/tx"
	"github.com/joshuapare/hexkit/internal/format"
	"github.com/joshuapare/hexkit/internal/logger"
	"github.com/joshuapare/hexkit/pkg/types"
)

// Session is one open file together with its pending edits.
//
// The session is NOT thread-safe. Only one goroutine should use it at a time.
type Session struct {
	path string
	opts Options

	f  *hexfile.File
	ov *overlay.Overlay
	dt *dirty.Tracker
	c  *tx.Committer
}

// Open maps path for editing. opts may be nil for DefaultOptions.
//
// Errors are *types.Error of kind NotFound, AccessDenied, or
// NotRegularOrEmpty; no session exists after a failed Open.
func Open(path string, opts *Options) (*Session, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	f, err := hexfile.OpenWith(path, hexfile.OpenOptions{PreFault: o.PreFault})
	if err != nil {
		logger.Debug("open failed", "path", path, "error", err)
		return nil, classifyOpen(path, err)
	}

	s := &Session{path: path, opts: o}
	s.ov = overlay.New(f.At)
	s.attach(f)

	logger.Info("opened", "path", path, "size", f.Size(), "flush_mode", o.FlushMode.String())
	return s, nil
}

// attach wires a freshly opened file into the session.
func (s *Session) attach(f *hexfile.File) {
	s.f = f
	s.dt = dirty.NewTracker(f)
	s.c = tx.NewCommitter(f, s.dt, s.opts.FlushMode)
	s.ov.Rebase(f.At)
}

// detach closes the file and leaves the session closed.
func (s *Session) detach() error {
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	s.dt = nil
	s.c = nil
	return err
}

// Close unmaps the file. Pending edits are discarded. Closing twice is a
// no-op.
func (s *Session) Close() error {
	if s.f == nil {
		return nil
	}
	if n := s.ov.Len(); n > 0 {
		logger.Warn("closing with unsaved edits", "path", s.path, "pending", n)
	}
	s.ov.Clear()
	if err := s.detach(); err != nil {
		return newError(types.ErrKindIO, "close "+s.path, err)
	}
	logger.Debug("closed", "path", s.path)
	return nil
}

// Closed reports whether the session no longer has a file open.
func (s *Session) Closed() bool { return s.f == nil }

// Path returns the path the session was opened with.
func (s *Session) Path() string { return s.path }

// Size returns the current file length, or 0 once closed.
func (s *Session) Size() int64 {
	if s.f == nil {
		return 0
	}
	return s.f.Size()
}

// Options returns the options the session was opened with.
func (s *Session) Options() Options { return s.opts }

func (s *Session) checkOffset(op string, off int64) error {
	if s.f == nil {
		return errClosed(op)
	}
	if !s.f.InRange(off) {
		return errPrecondition(
			fmt.Sprintf("%s: offset %d outside %d-byte file", op, off, s.f.Size()), nil)
	}
	return nil
}

// EffectiveByte returns the pending value at off, or the persisted byte
// when off has no pending edit.
func (s *Session) EffectiveByte(off int64) (byte, error) {
	if err := s.checkOffset("read", off); err != nil {
		return 0, err
	}
	return s.ov.Effective(off), nil
}

// BaseByte returns the persisted byte at off, ignoring pending edits.
func (s *Session) BaseByte(off int64) (byte, error) {
	if err := s.checkOffset("read", off); err != nil {
		return 0, err
	}
	return s.f.At(off), nil
}

// IsEdited reports whether off has a pending edit.
func (s *Session) IsEdited(off int64) bool {
	_, ok := s.ov.Get(off)
	return ok
}

// EditNibble applies one hex digit to the nibble target selects. The
// other nibble keeps its effective value.
func (s *Session) EditNibble(off int64, target grid.Target, digit rune) error {
	if err := s.checkOffset("edit", off); err != nil {
		return err
	}
	if !target.IsHex() {
		return errPrecondition("edit: nibble edit outside the hex pane", nil)
	}
	v, err := format.ParseHexDigit(digit)
	if err != nil {
		return errPrecondition("edit", err)
	}
	if err := s.ov.SetNibble(off, target.Nibble(), v); err != nil {
		return errPrecondition("edit", err)
	}
	return nil
}

// EditByte sets the whole byte at off. Writing the persisted value
// removes the pending edit.
func (s *Session) EditByte(off int64, b byte) error {
	if err := s.checkOffset("edit", off); err != nil {
		return err
	}
	s.ov.SetByte(off, b)
	return nil
}

// ClearAt reverts off to its persisted value.
func (s *Session) ClearAt(off int64) {
	s.ov.ClearAt(off)
}

// PendingCount returns the number of bytes with unsaved edits.
func (s *Session) PendingCount() int { return s.ov.Len() }

// PendingOffsets returns the edited offsets in ascending order.
func (s *Session) PendingOffsets() []int64 { return s.ov.Offsets() }

// ReadEffective returns up to n effective bytes starting at off. The
// result is shorter near the end of the file and nil when off is out of
// range or the session is closed.
func (s *Session) ReadEffective(off int64, n int) []byte {
	if s.f == nil || n <= 0 || !s.f.InRange(off) {
		return nil
	}
	end := min(off+int64(n), s.f.Size())
	out := make([]byte, end-off)
	copy(out, s.f.Bytes()[off:end])
	for _, o := range s.ov.Offsets() {
		if o >= off && o < end {
			out[o-off], _ = s.ov.Get(o)
		}
	}
	return out
}

// Save writes every pending edit to the file and flushes it. It returns
// the number of bytes saved; zero pending edits is a successful no-op.
// On failure the edits stay pending so Save can be retried.
func (s *Session) Save(ctx context.Context) (int, error) {
	if s.f == nil {
		return 0, errClosed("save")
	}
	n, err := s.c.Save(ctx, s.ov)
	if err != nil {
		logger.Error("save failed", "path", s.path, "pending", s.ov.Len(), "error", err)
		return 0, newError(types.ErrKindIO, "save "+s.path, err)
	}
	if n > 0 {
		logger.Info("saved", "path", s.path, "bytes", n)
	}
	return n, nil
}

// Abandon discards every pending edit and returns how many there were.
func (s *Session) Abandon() int {
	n := s.ov.Len()
	if s.c != nil {
		n = s.c.Abandon(s.ov)
	} else {
		s.ov.Clear()
	}
	if n > 0 {
		logger.Info("abandoned", "path", s.path, "bytes", n)
	}
	return n
}

// Insert adds n fill bytes before off (off == Size appends).
func (s *Session) Insert(ctx context.Context, off, n int64) error {
	return s.structural(ctx, rebuild.OpInsert, off, n)
}

// Delete removes the n bytes starting at off. Deleting every byte closes
// the session and returns an ErrKindClosed error.
func (s *Session) Delete(ctx context.Context, off, n int64) error {
	return s.structural(ctx, rebuild.OpDelete, off, n)
}

func (s *Session) structural(ctx context.Context, op rebuild.Op, off, n int64) error {
	if s.f == nil {
		return errClosed(op.String())
	}
	if p := s.ov.Len(); p > 0 {
		return errPrecondition(
			fmt.Sprintf("%s: %d pending edits; save or abandon first", op, p), nil)
	}
	if s.opts.MaxStructural > 0 && n > s.opts.MaxStructural {
		return errPrecondition(
			fmt.Sprintf("%s: count %d exceeds limit %d", op, n, s.opts.MaxStructural), nil)
	}
	size := s.f.Size()
	if err := rebuild.Check(op, size, off, n); err != nil {
		return errPrecondition(op.String(), err)
	}

	ropts := rebuild.Options{
		Fill:   s.opts.Fill,
		Sync:   s.opts.SyncBeforeRename,
		Backup: s.opts.CreateBackup,
	}

	// Windows cannot rename over an open file.
	if err := s.detach(); err != nil {
		return newError(types.ErrKindIO, op.String()+" "+s.path, err)
	}

	var (
		res rebuild.Result
		err error
	)
	if op == rebuild.OpInsert {
		res, err = rebuild.Insert(ctx, s.path, size, off, n, ropts)
	} else {
		res, err = rebuild.Delete(ctx, s.path, size, off, n, ropts)
	}
	if err != nil {
		logger.Error("structural change failed", "op", op.String(), "path", s.path,
			"offset", off, "count", n, "error", err)
		// The original is untouched; map it again.
		if reopenErr := s.reopen(); reopenErr != nil {
			return newError(types.ErrKindIO, op.String()+" "+s.path, errors.Join(err, reopenErr))
		}
		if errors.Is(err, rebuild.ErrPrecondition) {
			return errPrecondition(op.String(), err)
		}
		return newError(types.ErrKindIO, op.String()+" "+s.path, err)
	}

	logger.Info("structural change", "op", op.String(), "path", s.path,
		"offset", off, "count", n, "size", res.NewSize, "backup", res.BackupPath)

	if res.NewSize == 0 {
		logger.Info("file is empty; session closed", "path", s.path)
		return newError(types.ErrKindClosed, op.String()+": file is now empty", types.ErrClosed)
	}

	if err := s.reopen(); err != nil {
		logger.Error("reopen after rewrite failed", "path", s.path, "error", err)
		return newError(types.ErrKindStale, op.String()+" "+s.path, err)
	}
	return nil
}

func (s *Session) reopen() error {
	f, err := hexfile.OpenWith(s.path, hexfile.OpenOptions{PreFault: s.opts.PreFault})
	if err != nil {
		return err
	}
	s.attach(f)
	return nil
}
