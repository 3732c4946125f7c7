// Package overlay holds the pending, unsaved byte edits of an editing
// session as a sparse map from absolute file offset to replacement byte.
//
// An entry exists for an offset if and only if the intended byte differs
// from the base byte at that offset. Writing the base value back removes
// the entry, so Len always equals the number of logically changed bytes.
package overlay

import (
	"errors"
	"slices"

	"github.com/joshuapare/hexkit/internal/format"
)

// ErrInvalidNibble is returned by SetNibble for values above 0xF.
var ErrInvalidNibble = errors.New("overlay: nibble value out of range")

// BaseFunc returns the persisted byte at off.
type BaseFunc func(off int64) byte

// Overlay is a sparse offset→byte map of unsaved edits.
//
// NOT thread-safe.
type Overlay struct {
	base  BaseFunc
	edits map[int64]byte
}

// New returns an empty overlay reading base bytes through base.
func New(base BaseFunc) *Overlay {
	return &Overlay{
		base:  base,
		edits: make(map[int64]byte),
	}
}

// Get returns the pending value at off, if any.
func (o *Overlay) Get(off int64) (byte, bool) {
	b, ok := o.edits[off]
	return b, ok
}

// Effective returns the pending value at off, falling back to the base byte.
func (o *Overlay) Effective(off int64) byte {
	if b, ok := o.edits[off]; ok {
		return b
	}
	return o.base(off)
}

// SetByte records b at off, or drops the entry when b equals the base byte.
func (o *Overlay) SetByte(off int64, b byte) {
	if b == o.base(off) {
		delete(o.edits, off)
		return
	}
	o.edits[off] = b
}

// SetNibble replaces one half of the effective byte at off and stores the
// result through SetByte. The other nibble is left untouched.
func (o *Overlay) SetNibble(off int64, high bool, v byte) error {
	if v > 0x0F {
		return ErrInvalidNibble
	}
	cur := o.Effective(off)
	if high {
		o.SetByte(off, format.ApplyHighNibble(cur, v))
	} else {
		o.SetByte(off, format.ApplyLowNibble(cur, v))
	}
	return nil
}

// ClearAt drops any pending value at off.
func (o *Overlay) ClearAt(off int64) {
	delete(o.edits, off)
}

// Len returns the number of pending edits.
func (o *Overlay) Len() int {
	return len(o.edits)
}

// Clear drops every pending edit.
func (o *Overlay) Clear() {
	clear(o.edits)
}

// Offsets returns the edited offsets in ascending order.
func (o *Overlay) Offsets() []int64 {
	offs := make([]int64, 0, len(o.edits))
	for off := range o.edits {
		offs = append(offs, off)
	}
	slices.Sort(offs)
	return offs
}

// ForEachOrdered calls fn for every pending edit in ascending offset order
// and stops at the first error, which it returns.
func (o *Overlay) ForEachOrdered(fn func(off int64, b byte) error) error {
	for _, off := range o.Offsets() {
		if err := fn(off, o.edits[off]); err != nil {
			return err
		}
	}
	return nil
}

// Rebase swaps the base reader, for use after the underlying file has been
// reopened. Pending edits are kept as-is.
func (o *Overlay) Rebase(base BaseFunc) {
	o.base = base
}
