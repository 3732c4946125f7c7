// Package dirty tracks which byte ranges of a mapped file were written by a
// save and flushes them to disk.
//
// # Overview
//
// A save writes pending edits straight into the shared mapping. Each write
// is recorded with Add; FlushData then page-aligns and merges the recorded
// ranges and msyncs only those pages, and Sync makes them durable with
// fdatasync according to the FlushMode.
//
// # Usage
//
//	tracker := dirty.NewTracker(f) // f is a *hexfile.File
//	data := f.Bytes()
//	data[0x5000] = 0xFF
//	tracker.Add(0x5000, 1)
//	if err := tracker.FlushData(ctx); err != nil {
//	    return err
//	}
//	return tracker.Sync(ctx, dirty.FlushAuto)
//
// # Page-Level Granularity
//
// Ranges are rounded out to 4KB page boundaries and clamped to the end of
// the mapping, then merged:
//
//	Add(0x10,1), Add(0x20,1), Add(0x5000,1) → [0x0-0x1000, 0x5000-0x6000]
//
// # Platform Notes
//
//   - linux, freebsd: per-range msync, fdatasync
//   - darwin: whole-mapping msync, fsync or F_FULLFSYNC
//   - other unix: whole-mapping msync, fsync
//   - non-unix: ranges are written back with WriteAt, then fsync
//
// # Thread Safety
//
// Trackers are not thread-safe. One tracker belongs to one open file.
//
// # Related Packages
//
//   - github.com/joshuapare/hexkit/hexfile/tx: save transaction that drives the tracker
package dirty
