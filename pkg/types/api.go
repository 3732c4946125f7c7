package types

import "errors"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindNotFound          ErrKind = iota // file does not exist
	ErrKindAccessDenied                     // file exists but cannot be opened read/write
	ErrKindNotRegularOrEmpty                // directory, device, or zero-length file
	ErrKindPrecondition                     // pending edits or out-of-range request; recoverable
	ErrKindIO                               // read/write/flush/rename failure
	ErrKindStale                            // structural rewrite committed, in-memory view not reopened
	ErrKindClosed                           // session is closed
)

// String returns the short name of the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindNotFound:
		return "not-found"
	case ErrKindAccessDenied:
		return "access-denied"
	case ErrKindNotRegularOrEmpty:
		return "not-regular-or-empty"
	case ErrKindPrecondition:
		return "precondition"
	case ErrKindIO:
		return "io"
	case ErrKindStale:
		return "stale"
	case ErrKindClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a *Error of the same kind, so that
// errors.Is(err, types.ErrPrecondition) matches any precondition failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrNotFound indicates the file to open does not exist.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "file not found"}
	// ErrAccessDenied indicates the file cannot be opened for reading and writing.
	ErrAccessDenied = &Error{Kind: ErrKindAccessDenied, Msg: "access denied"}
	// ErrNotRegularOrEmpty indicates the path is not a regular file or has no bytes.
	ErrNotRegularOrEmpty = &Error{Kind: ErrKindNotRegularOrEmpty, Msg: "not a regular non-empty file"}
	// ErrPrecondition indicates an operation was refused before touching the file.
	ErrPrecondition = &Error{Kind: ErrKindPrecondition, Msg: "precondition failed"}
	// ErrIO indicates a storage failure.
	ErrIO = &Error{Kind: ErrKindIO, Msg: "i/o failure"}
	// ErrStale indicates the on-disk rewrite succeeded but the file could not be reopened.
	ErrStale = &Error{Kind: ErrKindStale, Msg: "file rewritten but view is stale"}
	// ErrClosed indicates an operation on a closed session.
	ErrClosed = &Error{Kind: ErrKindClosed, Msg: "session closed"}
)

// IsKind reports whether err (or anything it wraps) is a *Error of kind k.
func IsKind(err error, k ErrKind) bool {
	var te *Error
	if !errors.As(err, &te) {
		return false
	}
	return te.Kind == k
}
