// Package hexfile provides the byte store behind an editing session: a
// read/write, shared memory mapping of one on-disk file.
//
// # Overview
//
// The mapping always reflects what is persisted. Unsaved edits are kept in
// an overlay (see hexfile/overlay) and are only written into the mapping by
// a save (see hexfile/tx), after which the dirty ranges are flushed with
// msync and the descriptor is synced (see hexfile/dirty).
//
// # Opening a File
//
//	f, err := hexfile.Open("/path/to/firmware.bin")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
// Open refuses directories, devices, and empty files with
// ErrNotRegularOrEmpty; a missing or unreadable file surfaces the
// underlying *fs.PathError so callers can classify it with errors.Is.
//
// # Platform Support
//
//   - unix: RW MAP_SHARED mmap through golang.org/x/sys/unix.
//   - linux: optional pre-faulting (OpenOptions.PreFault) to turn a
//     concurrently truncated file into an error instead of SIGBUS.
//   - other: the file is read into memory and written back range by range.
//
// # Related Packages
//
//   - github.com/joshuapare/hexkit/hexfile/overlay: pending edits
//   - github.com/joshuapare/hexkit/hexfile/grid: cursor to offset addressing
//   - github.com/joshuapare/hexkit/hexfile/tx: save and abandon
//   - github.com/joshuapare/hexkit/hexfile/rebuild: insert and delete byte ranges
package hexfile
