package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/hexkit/hexfile/grid"
	"github.com/joshuapare/hexkit/internal/format"
	"github.com/joshuapare/hexkit/pkg/hexedit"
)

// Layout constants
const (
	defaultRows = 16
	// chromeLines is the header, the grid border, and the status bar.
	chromeLines = 5
)

// Model is the main application model
type Model struct {
	session *hexedit.Session
	keys    KeyMap
	charset format.Charset
	ctx     context.Context

	view grid.View
	cur  grid.Cursor

	width  int
	height int

	// Modal prompt shown over the grid
	prompting bool
	prompt    promptModel

	showHelp bool

	// Status message for temporary feedback
	statusMessage string
	statusIsError bool

	// err is fatal: the session could not be reopened after a rebuild
	err error
}

// clearStatusMsg clears the status line after a delay.
type clearStatusMsg struct{}

// NewModel creates a TUI model over an open session.
func NewModel(s *hexedit.Session, width int, cs format.Charset) Model {
	if width <= 0 {
		width = format.DefaultWidth
	}
	m := Model{
		session: s,
		keys:    DefaultKeyMap(),
		charset: cs,
		ctx:     context.Background(),
		view:    grid.View{Width: width, Rows: defaultRows},
		cur:     grid.Cursor{Target: grid.HexHigh},
	}
	m.view.Clamp(s.Size())
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Close releases the session, discarding unsaved edits.
func (m Model) Close() error {
	return m.session.Close()
}

// cursorOffset is the file offset under the cursor.
func (m Model) cursorOffset() int64 {
	return m.view.CursorOffset(m.cur, m.session.Size())
}

// fixCursor keeps the cursor on a byte that exists, moving it back to the
// last byte when the view runs past the end of the file.
func (m *Model) fixCursor() {
	size := m.session.Size()
	m.cur.Clamp(m.view.Width, m.view.Rows)
	if size == 0 || m.cur.Offset(m.view) < size {
		return
	}
	last := size - 1
	row, col, ok := grid.PositionOf(last, m.view.Origin, m.view.Width, m.view.Rows)
	if !ok {
		m.view.Goto(last, size)
		row, col, _ = grid.PositionOf(last, m.view.Origin, m.view.Width, m.view.Rows)
	}
	m.cur.Row, m.cur.Col = row, col
}

// moveTo scrolls so off is visible and puts the cursor on it.
func (m *Model) moveTo(off int64) {
	size := m.session.Size()
	if !m.view.Contains(off) {
		m.view.Goto(off, size)
	}
	if row, col, ok := grid.PositionOf(off, m.view.Origin, m.view.Width, m.view.Rows); ok {
		m.cur.Row, m.cur.Col = row, col
	}
	if m.cur.Target == grid.HexLow {
		m.cur.Target = grid.HexHigh
	}
	m.fixCursor()
}

// resize fits the number of visible rows to the terminal height.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.view.Rows = max(1, height-chromeLines)
	m.view.Clamp(m.session.Size())
	m.fixCursor()
}
