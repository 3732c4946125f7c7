package grid

// View is the visible window onto the file.
type View struct {
	Origin int64 // offset shown at row 0, col 0
	Width  int   // bytes per row
	Rows   int   // visible rows
}

// Cells returns the number of bytes the view can show at once.
func (v View) Cells() int64 {
	return int64(v.Width) * int64(v.Rows)
}

// Contains reports whether off is currently on screen.
func (v View) Contains(off int64) bool {
	_, _, ok := PositionOf(off, v.Origin, v.Width, v.Rows)
	return ok
}

// LineUp scrolls back one row, stopping at 0.
func (v *View) LineUp() {
	w := int64(v.Width)
	if v.Origin > w {
		v.Origin -= w
	} else {
		v.Origin = 0
	}
}

// LineDown scrolls forward one row. A file smaller than the view stays at
// 0, and the view never scrolls past size minus one screen.
func (v *View) LineDown(size int64) {
	g := v.Cells()
	switch {
	case g > size:
		v.Origin = 0
	case v.Origin+g+int64(v.Width) < size:
		v.Origin += int64(v.Width)
	default:
		v.Origin = size - g
	}
}

// PageDown scrolls forward one screen, moving less near the end so the
// last screen is always full.
func (v *View) PageDown(size int64) {
	g := v.Cells()
	switch {
	case g > size:
		v.Origin = 0
	case v.Origin+2*g < size:
		v.Origin += g
	default:
		v.Origin = size - g
	}
}

// PageUp scrolls back one screen, stopping at 0.
func (v *View) PageUp(size int64) {
	g := v.Cells()
	switch {
	case g > size:
		v.Origin = 0
	case v.Origin > g:
		v.Origin -= g
	default:
		v.Origin = 0
	}
}

// Goto moves the origin to target, clamped so the screen stays full.
func (v *View) Goto(target, size int64) {
	g := v.Cells()
	switch {
	case g >= size || target < 0:
		v.Origin = 0
	case target+g > size:
		v.Origin = size - g
	default:
		v.Origin = target
	}
}

// Home moves to the start of the file.
func (v *View) Home() { v.Origin = 0 }

// End moves to the last full screen of the file.
func (v *View) End(size int64) {
	v.Goto(size, size)
}

// Clamp pulls the origin back inside the file after the size shrank.
func (v *View) Clamp(size int64) {
	if v.Origin+v.Cells() > size {
		v.Goto(v.Origin, size)
	}
}

// CursorOffset returns the file offset under c, clamped to the last byte
// when the view extends past the end of the file.
func (v View) CursorOffset(c Cursor, size int64) int64 {
	off := OffsetOf(v.Origin, c.Row, c.Col, v.Width)
	if off >= size {
		off = size - 1
	}
	if off < 0 {
		off = 0
	}
	return off
}

// CursorUp moves c up one row, scrolling when it is already on the top row.
func (v *View) CursorUp(c *Cursor) {
	if c.Row > 0 {
		c.Row--
		return
	}
	v.LineUp()
}

// CursorDown moves c down one row, scrolling when it is on the bottom row.
func (v *View) CursorDown(c *Cursor, size int64) {
	if c.Row < v.Rows-1 {
		c.Row++
		return
	}
	v.LineDown(size)
}
