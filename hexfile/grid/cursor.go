package grid

// Cursor is a position inside a View.
type Cursor struct {
	Row    int
	Col    int
	Target Target
}

// Offset returns the file offset under c in v without clamping.
func (c Cursor) Offset(v View) int64 {
	return OffsetOf(v.Origin, c.Row, c.Col, v.Width)
}

// Advance moves one step right: low nibble after high nibble, then the
// next cell. Past the last column it wraps to column 0 of the same row.
func (c *Cursor) Advance(width int) {
	if c.Target == HexHigh {
		c.Target = HexLow
		return
	}
	if c.Target == HexLow {
		c.Target = HexHigh
	}
	if c.Col < width-1 {
		c.Col++
	} else {
		c.Col = 0
	}
}

// Retreat moves one step left: high nibble after low nibble, then the low
// nibble of the previous cell. From column 0 it wraps to the high nibble
// of the last column.
func (c *Cursor) Retreat(width int) {
	if c.Target == HexLow {
		c.Target = HexHigh
		return
	}
	if c.Col > 0 {
		c.Col--
		if c.Target == HexHigh {
			c.Target = HexLow
		}
		return
	}
	c.Col = width - 1
}

// SwitchPane toggles between the hex and ASCII panes, landing on the high
// nibble when entering the hex pane.
func (c *Cursor) SwitchPane() {
	if c.Target.IsHex() {
		c.Target = ASCII
	} else {
		c.Target = HexHigh
	}
}

// Home moves to the first cell of the view.
func (c *Cursor) Home() {
	c.Row, c.Col = 0, 0
	if c.Target.IsHex() {
		c.Target = HexHigh
	}
}

// Clamp keeps c inside a view of the given dimensions.
func (c *Cursor) Clamp(width, rows int) {
	if c.Col >= width {
		c.Col = width - 1
	}
	if c.Row >= rows {
		c.Row = rows - 1
	}
	if c.Col < 0 {
		c.Col = 0
	}
	if c.Row < 0 {
		c.Row = 0
	}
}
