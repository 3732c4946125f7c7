package hexedit

import (
	"github.com/joshuapare/hexkit/hexfile/dirty"
)

// FlushMode controls how durable a Save is (re-exported for convenience).
type FlushMode = dirty.FlushMode

// Flush modes (re-exported for convenience).
const (
	FlushAuto     = dirty.FlushAuto
	FlushDataOnly = dirty.FlushDataOnly
	FlushFull     = dirty.FlushFull
)

// Options controls session behavior.
type Options struct {
	// FlushMode is applied by Save. Default: FlushAuto.
	FlushMode FlushMode

	// SyncBeforeRename fsyncs the rebuilt file before it replaces the
	// original during Insert and Delete. Default: true.
	SyncBeforeRename bool

	// CreateBackup keeps a copy of the file at <path>.bak before each
	// Insert or Delete replaces it.
	CreateBackup bool

	// Fill is the value of bytes added by Insert. Default: 0x00.
	Fill byte

	// MaxStructural caps the count of a single Insert or Delete.
	// Zero means unlimited.
	MaxStructural int64

	// PreFault touches every page right after mapping (linux only).
	PreFault bool
}

// DefaultOptions returns the options used when Open is given nil.
func DefaultOptions() Options {
	return Options{
		FlushMode:        FlushAuto,
		SyncBeforeRename: true,
	}
}
