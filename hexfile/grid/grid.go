// Package grid maps the two-dimensional hex/ASCII display onto linear file
// offsets and keeps the scroll origin of that display within the file.
//
// A grid position (row, col) in a view starting at origin addresses
//
//	offset = origin + row*width + col
//
// Both nibbles of a hex cell and the matching ASCII cell share that offset;
// the Target only decides how a keystroke edits the byte.
package grid

import "fmt"

// Target is the part of a byte cell the cursor is on.
type Target uint8

const (
	// HexHigh is the high nibble of the hex cell.
	HexHigh Target = iota
	// HexLow is the low nibble of the hex cell.
	HexLow
	// ASCII is the character cell in the text pane.
	ASCII
)

func (t Target) String() string {
	switch t {
	case HexHigh:
		return "hex-high"
	case HexLow:
		return "hex-low"
	case ASCII:
		return "ascii"
	default:
		return fmt.Sprintf("target(%d)", uint8(t))
	}
}

// IsHex reports whether t is one of the hex pane nibbles.
func (t Target) IsHex() bool {
	return t == HexHigh || t == HexLow
}

// Nibble reports whether t selects the high nibble. Only meaningful when
// IsHex is true.
func (t Target) Nibble() (high bool) {
	return t == HexHigh
}

// OffsetOf returns the file offset at (row, col) of a view that starts at
// origin. Callers refuse results at or beyond the file size.
func OffsetOf(origin int64, row, col, width int) int64 {
	return origin + int64(row)*int64(width) + int64(col)
}

// PositionOf is the inverse of OffsetOf. ok is false when offset lies
// before origin or past the last of rows visible rows.
func PositionOf(offset, origin int64, width, rows int) (row, col int, ok bool) {
	if width <= 0 || rows <= 0 || offset < origin {
		return 0, 0, false
	}
	rel := offset - origin
	if rel >= int64(width)*int64(rows) {
		return 0, 0, false
	}
	return int(rel / int64(width)), int(rel % int64(width)), true
}
