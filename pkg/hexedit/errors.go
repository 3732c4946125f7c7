package hexedit

import (
	"errors"
	"io/fs"

	"github.com/joshuapare/hexkit/hexfile"
	"github.com/joshuapare/hexkit/pkg/types"
)

func newError(kind types.ErrKind, msg string, err error) *types.Error {
	return &types.Error{Kind: kind, Msg: msg, Err: err}
}

// classifyOpen maps a hexfile.Open failure onto the open-time error kinds.
func classifyOpen(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return newError(types.ErrKindNotFound, "open "+path, err)
	case errors.Is(err, fs.ErrPermission):
		return newError(types.ErrKindAccessDenied, "open "+path, err)
	case errors.Is(err, hexfile.ErrNotRegularOrEmpty):
		return newError(types.ErrKindNotRegularOrEmpty, "open "+path, err)
	default:
		return newError(types.ErrKindIO, "open "+path, err)
	}
}

func errClosed(op string) error {
	return newError(types.ErrKindClosed, op, types.ErrClosed)
}

func errPrecondition(msg string, err error) error {
	return newError(types.ErrKindPrecondition, msg, err)
}
