package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/joshuapare/hexkit/hexfile/grid"
	"github.com/joshuapare/hexkit/internal/format"
)

// View renders the entire UI
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.prompting {
		// Rebuilt every render; Update returns copies so a stored pointer would be stale.
		promptOverlay := overlay.New(
			&m.prompt,
			NewMainViewModel(&m),
			overlay.Center,
			overlay.Center,
			0,
			0,
		)
		return promptOverlay.View()
	}

	return m.renderMain()
}

func (m Model) renderMain() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		paneStyle.Render(m.renderGrid()),
		m.renderStatus(),
	)
}

// renderHeader renders the title, path, size, and pending edit count
func (m Model) renderHeader() string {
	parts := []string{
		headerStyle.Render("hexedit"),
		pathStyle.Render(m.session.Path()),
		fmt.Sprintf("%d bytes", m.session.Size()),
	}
	if n := m.session.PendingCount(); n > 0 {
		parts = append(parts, pendingStyle.Render(fmt.Sprintf("[%d unsaved]", n)))
	}
	return strings.Join(parts, "  ")
}

// renderGrid renders one line per visible row: offset, hex cells, text cells.
func (m Model) renderGrid() string {
	size := m.session.Size()
	width := m.view.Width
	plain := lipgloss.NewStyle()

	var b strings.Builder
	for r := 0; r < m.view.Rows; r++ {
		off := grid.OffsetOf(m.view.Origin, r, 0, width)
		if off >= size {
			break
		}
		if r > 0 {
			b.WriteByte('\n')
		}
		data := m.session.ReadEffective(off, width)

		b.WriteString(offsetStyle.Render(format.FormatOffset(off)))
		b.WriteString("  ")
		for c := 0; c < width; c++ {
			if c >= len(data) {
				b.WriteString("   ")
				continue
			}
			hi, lo := format.HexDigits(data[c])
			hiStyle, loStyle := plain, plain
			if m.session.IsEdited(off + int64(c)) {
				hiStyle, loStyle = editedStyle, editedStyle
			}
			if r == m.cur.Row && c == m.cur.Col {
				switch m.cur.Target {
				case grid.HexHigh:
					hiStyle = cursorStyle
				case grid.HexLow:
					loStyle = cursorStyle
				default:
					hiStyle, loStyle = mirrorStyle, mirrorStyle
				}
			}
			b.WriteString(hiStyle.Render(string(rune(hi))))
			b.WriteString(loStyle.Render(string(rune(lo))))
			b.WriteByte(' ')
		}
		b.WriteString(" ")
		for c, v := range data {
			st := plain
			if m.session.IsEdited(off + int64(c)) {
				st = editedStyle
			}
			if r == m.cur.Row && c == m.cur.Col {
				if m.cur.Target == grid.ASCII {
					st = cursorStyle
				} else {
					st = mirrorStyle
				}
			}
			b.WriteString(st.Render(string(m.charset.Glyph(v))))
		}
	}
	return b.String()
}

// renderStatus renders the cursor position, the byte under it, and any
// transient message.
func (m Model) renderStatus() string {
	off := m.cursorOffset()
	pane := "hex"
	if m.cur.Target == grid.ASCII {
		pane = "text"
	}
	line := fmt.Sprintf("%s  %s", format.FormatOffset(off), pane)
	if v, err := m.session.EffectiveByte(off); err == nil {
		line += fmt.Sprintf("  0x%02X %3d", v, v)
		if base, _ := m.session.BaseByte(off); base != v {
			line += fmt.Sprintf(" (was 0x%02X)", base)
		}
	}
	line += "  ? help"

	status := statusStyle.Render(line)
	if m.statusMessage != "" {
		st := statusMessageStyle
		if m.statusIsError {
			st = errorStyle
		}
		status = lipgloss.JoinHorizontal(lipgloss.Top, status, " ", st.Render(m.statusMessage))
	}
	return status
}

// renderHelp renders the keyboard shortcut screen
func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(helpTitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	const keyWidth = 14
	for _, sec := range m.keys.sections() {
		b.WriteString(helpSectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, k := range sec.bindings {
			h := k.Help()
			b.WriteString(helpKeyStyle.Width(keyWidth).Render(h.Key))
			b.WriteString("  ")
			b.WriteString(helpDescStyle.Render(h.Desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(helpDescStyle.Render("Hex digits edit nibbles in the hex pane; printable keys edit bytes in the text pane."))
	b.WriteString("\n")
	b.WriteString(helpDescStyle.Render("Press ? or esc to close"))
	return b.String()
}
