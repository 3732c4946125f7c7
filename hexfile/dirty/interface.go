package dirty

import "context"

// DirtyTracker is the minimal interface for recording modified byte ranges
// of a mapped file. Writers that only mark regions use this.
type DirtyTracker interface {
	// Add marks [off, off+length) as dirty.
	Add(off, length int64)
}

// FlushableTracker extends DirtyTracker with the methods a committer needs
// to persist what was marked.
type FlushableTracker interface {
	DirtyTracker

	// FlushData writes dirty ranges back to the file.
	FlushData(ctx context.Context) error

	// Sync makes flushed data durable according to mode.
	Sync(ctx context.Context, mode FlushMode) error

	// Reset forgets all marked ranges without flushing them.
	Reset()
}

var _ FlushableTracker = (*Tracker)(nil)
