package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/hexkit/hexfile/grid"
	"github.com/joshuapare/hexkit/internal/format"
	"github.com/joshuapare/hexkit/internal/logger"
	"github.com/joshuapare/hexkit/pkg/types"
)

const statusTimeout = 3 * time.Second

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		m.statusIsError = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.prompting {
		_, cmd := m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.err != nil {
		if key.Matches(msg, m.keys.Quit) || key.Matches(msg, m.keys.Esc) {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Esc) || key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit) {
			m.showHelp = false
		}
		return m, nil
	}

	if m.prompting {
		return m.handlePrompt(msg)
	}

	size := m.session.Size()

	switch {
	case key.Matches(msg, m.keys.Save):
		return m.save()

	case key.Matches(msg, m.keys.Abandon):
		n := m.session.PendingCount()
		if n == 0 {
			return m.setStatus("Nothing to discard")
		}
		m.openPrompt(newConfirmPrompt(promptAbandon, "Discard edits",
			fmt.Sprintf("Discard %d unsaved edit(s)?", n)))
		return m, nil

	case key.Matches(msg, m.keys.Insert):
		off := m.cursorOffset()
		m.openPrompt(newInputPrompt(promptInsert, "Insert bytes",
			fmt.Sprintf("Insert before %s", format.FormatOffset(off)), "count"))
		return m, m.prompt.Init()

	case key.Matches(msg, m.keys.Delete):
		off := m.cursorOffset()
		m.openPrompt(newInputPrompt(promptDelete, "Delete bytes",
			fmt.Sprintf("Delete starting at %s", format.FormatOffset(off)), "count"))
		return m, m.prompt.Init()

	case key.Matches(msg, m.keys.Goto):
		m.openPrompt(newInputPrompt(promptGoto, "Go to offset",
			fmt.Sprintf("File is %d bytes", size), "0x0"))
		return m, m.prompt.Init()

	case key.Matches(msg, m.keys.Copy):
		return m.copyRow()

	case key.Matches(msg, m.keys.Tab):
		m.cur.SwitchPane()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.view.CursorUp(&m.cur)
	case key.Matches(msg, m.keys.Down):
		m.view.CursorDown(&m.cur, size)
	case key.Matches(msg, m.keys.Left):
		m.cur.Retreat(m.view.Width)
	case key.Matches(msg, m.keys.Right):
		m.cur.Advance(m.view.Width)
	case key.Matches(msg, m.keys.PageUp):
		m.view.PageUp(size)
	case key.Matches(msg, m.keys.PageDown):
		m.view.PageDown(size)
	case key.Matches(msg, m.keys.Home):
		m.view.Home()
		m.cur.Home()
	case key.Matches(msg, m.keys.End):
		m.view.End(size)
		m.moveTo(size - 1)

	case key.Matches(msg, m.keys.Revert):
		m.cur.Retreat(m.view.Width)
		m.fixCursor()
		m.session.ClearAt(m.cursorOffset())
		return m, nil

	default:
		if r, ok := typedRune(msg); ok {
			if handled, mm, cmd := m.edit(r); handled {
				return mm, cmd
			}
		}
		if key.Matches(msg, m.keys.Quit) {
			return m.quit()
		}
		if key.Matches(msg, m.keys.Help) {
			m.showHelp = true
			return m, nil
		}
		if _, ok := typedRune(msg); ok && m.cur.Target.IsHex() {
			return m.setError(fmt.Errorf("%q is not a hex digit", msg.String()))
		}
		return m, nil
	}

	m.fixCursor()
	return m, nil
}

// typedRune returns the single character a key press types, if any.
func typedRune(msg tea.KeyMsg) (rune, bool) {
	switch msg.Type {
	case tea.KeySpace:
		return ' ', true
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Alt {
			return msg.Runes[0], true
		}
	}
	return 0, false
}

// edit applies a typed character to the cell under the cursor. Hex digits
// edit nibbles in the hex pane; printable ASCII edits whole bytes in the
// text pane. Other characters fall through to the command keys.
func (m Model) edit(r rune) (bool, tea.Model, tea.Cmd) {
	off := m.cursorOffset()
	switch {
	case m.cur.Target.IsHex() && format.IsHexDigit(r):
		if err := m.session.EditNibble(off, m.cur.Target, r); err != nil {
			mm, cmd := m.setError(err)
			return true, mm, cmd
		}
	case m.cur.Target == grid.ASCII && r < 0x80 && format.IsPrintableASCII(byte(r)):
		if err := m.session.EditByte(off, byte(r)); err != nil {
			mm, cmd := m.setError(err)
			return true, mm, cmd
		}
	default:
		return false, m, nil
	}
	m.cur.Advance(m.view.Width)
	m.fixCursor()
	return true, m, nil
}

func (m Model) save() (tea.Model, tea.Cmd) {
	n, err := m.session.Save(m.ctx)
	if err != nil {
		logger.Error("save failed", "path", m.session.Path(), "error", err)
		return m.setError(err)
	}
	if n == 0 {
		return m.setStatus("Nothing to save")
	}
	return m.setStatus(fmt.Sprintf("Saved %d byte(s)", n))
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if n := m.session.PendingCount(); n > 0 {
		m.openPrompt(newConfirmPrompt(promptQuit, "Quit",
			fmt.Sprintf("Quit and lose %d unsaved edit(s)?", n)))
		return m, nil
	}
	return m, tea.Quit
}

func (m Model) copyRow() (tea.Model, tea.Cmd) {
	start := m.view.Origin + int64(m.cur.Row)*int64(m.view.Width)
	row := m.session.ReadEffective(start, m.view.Width)
	if len(row) == 0 {
		return m.setStatus("Nothing to copy")
	}
	if err := clipboard.WriteAll(format.HexString(row)); err != nil {
		logger.Warn("clipboard write failed", "error", err)
		return m.setError(fmt.Errorf("clipboard unavailable: %w", err))
	}
	return m.setStatus(fmt.Sprintf("Copied %d byte(s) at %s", len(row), format.FormatOffset(start)))
}

func (m *Model) openPrompt(p promptModel) {
	m.prompt = p
	m.prompting = true
}

func (m Model) handlePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.prompt.confirm {
		switch {
		case key.Matches(msg, m.keys.Yes):
			m.prompting = false
			return m.confirm(m.prompt.kind)
		case key.Matches(msg, m.keys.No):
			m.prompting = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Esc):
		m.prompting = false
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		m.prompting = false
		return m.submit(m.prompt.kind, m.prompt.value())
	}

	_, cmd := m.prompt.Update(msg)
	return m, cmd
}

func (m Model) confirm(kind promptKind) (tea.Model, tea.Cmd) {
	switch kind {
	case promptQuit:
		return m, tea.Quit
	case promptAbandon:
		n := m.session.Abandon()
		return m.setStatus(fmt.Sprintf("Discarded %d edit(s)", n))
	}
	return m, nil
}

func (m Model) submit(kind promptKind, text string) (tea.Model, tea.Cmd) {
	v, err := strconv.ParseInt(text, 0, 64)
	if err != nil || v < 0 {
		return m.setError(fmt.Errorf("invalid number %q", text))
	}

	size := m.session.Size()
	switch kind {
	case promptGoto:
		if v >= size {
			return m.setError(fmt.Errorf("offset %s is past the end of the file", format.FormatOffset(v)))
		}
		m.moveTo(v)
		return m, nil

	case promptInsert, promptDelete:
		off := m.cursorOffset()
		verb := "Inserted"
		if kind == promptInsert {
			err = m.session.Insert(m.ctx, off, v)
		} else {
			verb = "Deleted"
			err = m.session.Delete(m.ctx, off, v)
		}
		switch {
		case types.IsKind(err, types.ErrKindClosed):
			logger.Info("file emptied, exiting", "path", m.session.Path())
			m.err = fmt.Errorf("%s is now empty and has been closed", m.session.Path())
			return m, nil
		case types.IsKind(err, types.ErrKindStale):
			m.err = err
			return m, nil
		case err != nil:
			return m.setError(err)
		}
		m.view.Clamp(m.session.Size())
		m.fixCursor()
		return m.setStatus(fmt.Sprintf("%s %d byte(s) at %s", verb, v, format.FormatOffset(off)))
	}
	return m, nil
}

func (m Model) setStatus(s string) (tea.Model, tea.Cmd) {
	m.statusMessage = s
	m.statusIsError = false
	return m, clearStatusAfter()
}

func (m Model) setError(err error) (tea.Model, tea.Cmd) {
	m.statusMessage = err.Error()
	m.statusIsError = true
	return m, clearStatusAfter()
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
