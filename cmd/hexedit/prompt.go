package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// promptKind says what a submitted prompt does.
type promptKind int

const (
	promptGoto promptKind = iota
	promptInsert
	promptDelete
	promptQuit
	promptAbandon
)

// promptModel is the modal shown over the grid. Confirm prompts take y/n;
// the others read one number through a text input.
type promptModel struct {
	kind    promptKind
	title   string
	body    string
	confirm bool
	input   textinput.Model
}

func newInputPrompt(kind promptKind, title, body, placeholder string) promptModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.CharLimit = 24
	ti.Width = 24
	ti.Focus()
	return promptModel{kind: kind, title: title, body: body, input: ti}
}

func newConfirmPrompt(kind promptKind, title, body string) promptModel {
	return promptModel{kind: kind, title: title, body: body, confirm: true}
}

func (p *promptModel) Init() tea.Cmd {
	if p.confirm {
		return nil
	}
	return textinput.Blink
}

func (p *promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if p.confirm {
		return p, nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *promptModel) View() string {
	var b strings.Builder
	b.WriteString(modalTitleStyle.Render(p.title))
	b.WriteString("\n\n")
	if p.body != "" {
		b.WriteString(p.body)
		b.WriteString("\n\n")
	}
	if p.confirm {
		b.WriteString(helpDescStyle.Render("y confirm • n cancel"))
	} else {
		b.WriteString(p.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpDescStyle.Render("enter confirm • esc cancel"))
	}
	return modalStyle.Render(b.String())
}

// value returns the trimmed text typed into an input prompt.
func (p *promptModel) value() string {
	return strings.TrimSpace(p.input.Value())
}
