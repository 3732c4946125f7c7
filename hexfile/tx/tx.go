// Package tx provides the save and abandon transactions of an editing
// session.
//
// Save protocol:
//  1. Write every pending edit into the mapping in ascending offset order
//  2. Mark each written byte dirty
//  3. Flush dirty pages (msync)
//  4. Sync the descriptor according to the FlushMode
//  5. Clear the overlay
//
// If step 3 or 4 fails the overlay is left intact so the caller can retry.
// The mapping then already holds the edits but they are not confirmed on
// disk.
package tx

import (
	"context"
	"errors"
	"fmt"

	"github.com/joshuapare/hexkit/hexfile/dirty"
)

// ErrOutOfRange is returned by Save when a pending edit lies past the end
// of the mapped file. Nothing is written in that case.
var ErrOutOfRange = errors.New("tx: pending edit beyond end of file")

// Store is the mapped file edits are written into.
type Store interface {
	Bytes() []byte
}

// Edits is the pending-edit set a save drains. *overlay.Overlay satisfies it.
type Edits interface {
	Len() int
	Offsets() []int64
	ForEachOrdered(fn func(off int64, b byte) error) error
	Clear()
}

// Committer applies pending edits to a Store and makes them durable.
//
// The committer is NOT thread-safe. Only one goroutine should use it at a time.
type Committer struct {
	s    Store
	dt   dirty.FlushableTracker
	mode dirty.FlushMode
}

// NewCommitter creates a committer.
//
// Parameters:
//   - s: the mapped file to write into
//   - dt: dirty tracker for recording and flushing written pages
//   - mode: flush mode for saves
func NewCommitter(s Store, dt dirty.FlushableTracker, mode dirty.FlushMode) *Committer {
	return &Committer{
		s:    s,
		dt:   dt,
		mode: mode,
	}
}

// Mode returns the flush mode used by Save.
func (c *Committer) Mode() dirty.FlushMode {
	return c.mode
}

// Save writes ov into the store, flushes it, and clears ov. It returns the
// number of bytes saved; zero pending edits is a successful no-op.
//
// The context is checked before writing and between flush steps. A
// cancellation after the writes leaves the overlay intact like any other
// flush failure.
func (c *Committer) Save(ctx context.Context, ov Edits) (int, error) {
	n := ov.Len()
	if n == 0 {
		return 0, nil
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	data := c.s.Bytes()
	offs := ov.Offsets()
	for _, bad := range []int64{offs[0], offs[len(offs)-1]} {
		if bad < 0 || bad >= int64(len(data)) {
			return 0, fmt.Errorf("%w: offset %d, size %d", ErrOutOfRange, bad, len(data))
		}
	}

	// Step 1 & 2: apply in ascending order and record dirty bytes
	_ = ov.ForEachOrdered(func(off int64, b byte) error {
		data[off] = b
		c.dt.Add(off, 1)
		return nil
	})

	// Step 3: flush dirty pages
	if err := c.dt.FlushData(ctx); err != nil {
		return 0, fmt.Errorf("flush data pages: %w", err)
	}

	// Step 4: sync descriptor
	if err := c.dt.Sync(ctx, c.mode); err != nil {
		return 0, fmt.Errorf("sync file: %w", err)
	}

	// Step 5: drain
	ov.Clear()
	return n, nil
}

// Abandon discards every pending edit and returns how many there were.
// The store is not touched. Calling it on an empty overlay returns 0.
func (c *Committer) Abandon(ov Edits) int {
	n := ov.Len()
	ov.Clear()
	return n
}
