package main

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/hexkit/internal/format"
	"github.com/joshuapare/hexkit/pkg/hexedit"
)

// TestHelper drives a Model with synthetic key presses
type TestHelper struct {
	t     *testing.T
	path  string
	model Model
	cmd   tea.Cmd
}

// NewTestHelper writes data to a temp file and opens a model on it with
// width bytes per row.
func NewTestHelper(t *testing.T, data []byte, width int) *TestHelper {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.bin")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	s, err := hexedit.Open(path, nil)
	if err != nil {
		t.Fatalf("failed to open session: %v", err)
	}
	h := &TestHelper{t: t, path: path, model: NewModel(s, width, format.CharsetASCII)}
	t.Cleanup(func() { _ = h.model.Close() })
	return h
}

func (h *TestHelper) send(msg tea.Msg) *TestHelper {
	updated, cmd := h.model.Update(msg)
	h.model = updated.(Model)
	h.cmd = cmd
	return h
}

// SendKey simulates a special key press
func (h *TestHelper) SendKey(keyType tea.KeyType) *TestHelper {
	return h.send(tea.KeyMsg{Type: keyType})
}

// SendKeyRune simulates a character key press
func (h *TestHelper) SendKeyRune(r rune) *TestHelper {
	return h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// Type sends each character of s
func (h *TestHelper) Type(s string) *TestHelper {
	for _, r := range s {
		h.SendKeyRune(r)
	}
	return h
}

// SendWindowSize simulates a window resize
func (h *TestHelper) SendWindowSize(width, height int) *TestHelper {
	return h.send(tea.WindowSizeMsg{Width: width, Height: height})
}

// Quitting reports whether the last command was tea.Quit
func (h *TestHelper) Quitting() bool {
	if h.cmd == nil {
		return false
	}
	_, ok := h.cmd().(tea.QuitMsg)
	return ok
}

// FileContent returns the bytes currently on disk
func (h *TestHelper) FileContent() string {
	h.t.Helper()
	data, err := os.ReadFile(h.path)
	if err != nil {
		h.t.Fatalf("failed to read file: %v", err)
	}
	return string(data)
}
