package dirty

import (
	"context"
	"os"
	"sort"
)

// defaultRangeCapacity is the pre-allocated capacity for dirty ranges.
const defaultRangeCapacity = 64

// FlushMode controls durability guarantees for a save.
type FlushMode int

const (
	// FlushAuto msyncs dirty pages, then fdatasyncs the descriptor.
	// On macOS fsync is used since there is no fdatasync.
	FlushAuto FlushMode = iota

	// FlushDataOnly only msyncs dirty pages. The caller is responsible
	// for syncing the descriptor later.
	FlushDataOnly

	// FlushFull msyncs the whole mapping and fdatasyncs the descriptor
	// (F_FULLFSYNC on macOS). Use this for power-loss sensitive workflows.
	FlushFull
)

// String implements fmt.Stringer.
func (m FlushMode) String() string {
	switch m {
	case FlushAuto:
		return "auto"
	case FlushDataOnly:
		return "data"
	case FlushFull:
		return "full"
	default:
		return "unknown"
	}
}

// Store is the mapped file a Tracker flushes. *hexfile.File satisfies it.
type Store interface {
	Bytes() []byte
	FD() int
}

// Range represents a dirty byte range (absolute file offsets).
type Range struct {
	Off int64
	Len int64
}

// Tracker accumulates dirty ranges and flushes them efficiently.
//
// NOT thread-safe. Only one goroutine should use it at a time.
type Tracker struct {
	s        Store
	ranges   []Range // coalesced at flush time
	pageSize int64   // msync needs starts aligned to the kernel page
}

// NewTracker creates a dirty tracker for the given store.
func NewTracker(s Store) *Tracker {
	return &Tracker{
		s:        s,
		ranges:   make([]Range, 0, defaultRangeCapacity),
		pageSize: int64(os.Getpagesize()),
	}
}

// Add records a dirty range. It only appends; alignment and merging
// happen at flush time.
func (t *Tracker) Add(off, length int64) {
	if length <= 0 {
		return
	}
	// Consecutive single-byte saves are the common case; extend in place.
	if n := len(t.ranges); n > 0 {
		last := &t.ranges[n-1]
		if last.Off+last.Len == off {
			last.Len += length
			return
		}
	}
	t.ranges = append(t.ranges, Range{Off: off, Len: length})
}

// FlushData flushes all dirty ranges to disk.
//
// This method:
//  1. Coalesces all ranges into page-aligned, non-overlapping ranges
//  2. Flushes each range using msync() (write-back on non-unix)
//  3. Clears the ranges slice
//
// On error the ranges are kept so a retry flushes them again.
func (t *Tracker) FlushData(ctx context.Context) error {
	if len(t.ranges) == 0 {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	data := t.s.Bytes()
	if len(data) == 0 {
		return nil
	}

	if err := t.flushRanges(ctx, data); err != nil {
		return err
	}

	t.ranges = t.ranges[:0]
	return nil
}

// Sync makes previously flushed pages durable according to mode:
//   - FlushAuto: fdatasync()
//   - FlushDataOnly: nothing
//   - FlushFull: msync() of the whole mapping, then fdatasync() (F_FULLFSYNC on macOS)
func (t *Tracker) Sync(ctx context.Context, mode FlushMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if mode == FlushDataOnly {
		return nil
	}

	data := t.s.Bytes()
	if len(data) == 0 {
		return nil
	}

	fullfsync := mode == FlushFull
	if fullfsync {
		if err := msync(t.s, data); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}

	return fdatasync(t.s, fullfsync)
}

// Reset clears all tracked ranges.
func (t *Tracker) Reset() {
	t.ranges = t.ranges[:0]
}

// Pending reports whether any range is waiting to be flushed.
func (t *Tracker) Pending() bool {
	return len(t.ranges) > 0
}

// coalesce page-aligns all ranges, sorts them, and merges overlapping or
// adjacent ranges. Aligned ends are clamped to the mapping length.
func (t *Tracker) coalesce() []Range {
	if len(t.ranges) == 0 {
		return nil
	}

	limit := int64(len(t.s.Bytes()))

	aligned := make([]Range, len(t.ranges))
	for i, r := range t.ranges {
		start := (r.Off / t.pageSize) * t.pageSize

		end := r.Off + r.Len
		if end%t.pageSize != 0 {
			end = ((end / t.pageSize) + 1) * t.pageSize
		}
		if limit > 0 && end > limit {
			end = limit
		}

		aligned[i] = Range{Off: start, Len: end - start}
	}

	sort.Slice(aligned, func(i, j int) bool {
		return aligned[i].Off < aligned[j].Off
	})

	merged := make([]Range, 0, len(aligned))
	current := aligned[0]

	for i := 1; i < len(aligned); i++ {
		next := aligned[i]

		if next.Off <= current.Off+current.Len {
			end := current.Off + current.Len
			if nextEnd := next.Off + next.Len; nextEnd > end {
				end = nextEnd
			}
			current.Len = end - current.Off
		} else {
			merged = append(merged, current)
			current = next
		}
	}

	merged = append(merged, current)

	return merged
}
