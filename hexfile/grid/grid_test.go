package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/hexkit/hexfile/grid"
)

func TestOffsetOf(t *testing.T) {
	tests := []struct {
		name   string
		origin int64
		row    int
		col    int
		width  int
		want   int64
	}{
		{"origin", 0, 0, 0, 16, 0},
		{"first row", 0, 0, 15, 16, 15},
		{"second row", 0, 1, 0, 16, 16},
		{"scrolled", 160, 2, 3, 16, 195},
		{"narrow", 7, 3, 1, 4, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, grid.OffsetOf(tt.origin, tt.row, tt.col, tt.width))
		})
	}
}

func TestPositionOf_RoundTrip(t *testing.T) {
	const width, rows = 16, 4
	origin := int64(32)

	for off := origin; off < origin+width*rows; off++ {
		row, col, ok := grid.PositionOf(off, origin, width, rows)
		require.True(t, ok, "offset %d", off)
		require.Equal(t, off, grid.OffsetOf(origin, row, col, width))
	}
}

func TestPositionOf_NotVisible(t *testing.T) {
	_, _, ok := grid.PositionOf(31, 32, 16, 4)
	assert.False(t, ok, "before origin")

	_, _, ok = grid.PositionOf(32+64, 32, 16, 4)
	assert.False(t, ok, "past last visible offset")

	_, _, ok = grid.PositionOf(0, 0, 0, 4)
	assert.False(t, ok, "zero width")
}

func TestTarget(t *testing.T) {
	assert.True(t, grid.HexHigh.IsHex())
	assert.True(t, grid.HexLow.IsHex())
	assert.False(t, grid.ASCII.IsHex())
	assert.True(t, grid.HexHigh.Nibble())
	assert.False(t, grid.HexLow.Nibble())
	assert.Equal(t, "ascii", grid.ASCII.String())
}

func TestView_SmallFileStaysAtZero(t *testing.T) {
	v := grid.View{Origin: 0, Width: 16, Rows: 4}
	const size = 40

	v.LineDown(size)
	assert.Equal(t, int64(0), v.Origin)
	v.PageDown(size)
	assert.Equal(t, int64(0), v.Origin)
	v.Goto(30, size)
	assert.Equal(t, int64(0), v.Origin)
}

func TestView_LineDownClamps(t *testing.T) {
	v := grid.View{Width: 16, Rows: 4}
	const size = 100 // grid of 64

	v.LineDown(size)
	assert.Equal(t, int64(16), v.Origin)
	v.LineDown(size)
	assert.Equal(t, int64(32), v.Origin)
	v.LineDown(size)
	assert.Equal(t, int64(36), v.Origin, "never scrolls past size-grid")
	v.LineDown(size)
	assert.Equal(t, int64(36), v.Origin)

	v.LineUp()
	assert.Equal(t, int64(20), v.Origin)
	v.LineUp()
	v.LineUp()
	assert.Equal(t, int64(0), v.Origin)
}

func TestView_Paging(t *testing.T) {
	v := grid.View{Width: 16, Rows: 4}
	const size = 1000

	v.PageDown(size)
	assert.Equal(t, int64(64), v.Origin)

	v.Origin = 900
	v.PageDown(size)
	assert.Equal(t, int64(936), v.Origin)

	v.PageUp(size)
	assert.Equal(t, int64(872), v.Origin)

	v.Origin = 50
	v.PageUp(size)
	assert.Equal(t, int64(0), v.Origin)
}

func TestView_GotoAndEnd(t *testing.T) {
	v := grid.View{Width: 16, Rows: 4}
	const size = 1000

	v.Goto(500, size)
	assert.Equal(t, int64(500), v.Origin)

	v.Goto(990, size)
	assert.Equal(t, int64(936), v.Origin)

	v.Home()
	assert.Equal(t, int64(0), v.Origin)

	v.End(size)
	assert.Equal(t, int64(936), v.Origin)
	assert.True(t, v.Contains(999))
	assert.False(t, v.Contains(935))
}

func TestView_Clamp(t *testing.T) {
	v := grid.View{Origin: 936, Width: 16, Rows: 4}

	v.Clamp(500)
	assert.Equal(t, int64(436), v.Origin)

	v.Clamp(10)
	assert.Equal(t, int64(0), v.Origin)
}

func TestView_CursorOffsetClampsToLastByte(t *testing.T) {
	v := grid.View{Width: 16, Rows: 4}

	assert.Equal(t, int64(17), v.CursorOffset(grid.Cursor{Row: 1, Col: 1}, 40))
	assert.Equal(t, int64(39), v.CursorOffset(grid.Cursor{Row: 3, Col: 15}, 40))
}

func TestView_CursorUpDown(t *testing.T) {
	v := grid.View{Width: 16, Rows: 2}
	c := grid.Cursor{}
	const size = 100

	v.CursorDown(&c, size)
	assert.Equal(t, 1, c.Row)
	v.CursorDown(&c, size)
	assert.Equal(t, 1, c.Row)
	assert.Equal(t, int64(16), v.Origin)

	v.CursorUp(&c)
	assert.Equal(t, 0, c.Row)
	v.CursorUp(&c)
	assert.Equal(t, int64(0), v.Origin)
}

func TestCursor_AdvanceHex(t *testing.T) {
	c := grid.Cursor{Col: 14, Target: grid.HexHigh}

	c.Advance(16)
	assert.Equal(t, grid.Cursor{Col: 14, Target: grid.HexLow}, c)
	c.Advance(16)
	assert.Equal(t, grid.Cursor{Col: 15, Target: grid.HexHigh}, c)
	c.Advance(16)
	c.Advance(16)
	assert.Equal(t, grid.Cursor{Col: 0, Target: grid.HexHigh}, c, "wraps within the row")
}

func TestCursor_RetreatHex(t *testing.T) {
	c := grid.Cursor{Row: 2, Col: 1, Target: grid.HexLow}

	c.Retreat(16)
	assert.Equal(t, grid.Cursor{Row: 2, Col: 1, Target: grid.HexHigh}, c)
	c.Retreat(16)
	assert.Equal(t, grid.Cursor{Row: 2, Col: 0, Target: grid.HexLow}, c)
	c.Retreat(16)
	assert.Equal(t, grid.Cursor{Row: 2, Col: 0, Target: grid.HexHigh}, c)

	// Wrapping off column 0 lands on the high nibble of the last column
	c.Retreat(16)
	assert.Equal(t, grid.Cursor{Row: 2, Col: 15, Target: grid.HexHigh}, c)
	c.Retreat(16)
	assert.Equal(t, grid.Cursor{Row: 2, Col: 14, Target: grid.HexLow}, c)
}

func TestCursor_ASCIIAndPane(t *testing.T) {
	c := grid.Cursor{Col: 15, Target: grid.ASCII}

	c.Advance(16)
	assert.Equal(t, 0, c.Col)
	c.Retreat(16)
	assert.Equal(t, 15, c.Col)
	assert.Equal(t, grid.ASCII, c.Target)

	c.SwitchPane()
	assert.Equal(t, grid.HexHigh, c.Target)
	c.SwitchPane()
	assert.Equal(t, grid.ASCII, c.Target)
}

func TestCursor_Clamp(t *testing.T) {
	c := grid.Cursor{Row: 9, Col: 20}
	c.Clamp(16, 4)
	assert.Equal(t, 3, c.Row)
	assert.Equal(t, 15, c.Col)
}
