// File: update.go
// Role: Message handling: cursor movement, the two-press crease
//       gesture, undo/redo, save and clipboard export.
package tui

import (
	"bytes"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/foldkit/boxpleat/fold"
	"github.com/foldkit/boxpleat/pattern"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The help overlay swallows everything except its dismissal keys.
	if m.help {
		switch msg.String() {
		case "?", "esc", "q":
			m.help = false
		}

		return m, nil
	}

	m.status, m.errMsg = "", ""

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "?":
		m.help = true

	// Cursor movement, vim keys and arrows. Grid y grows upward.
	case "h", "left":
		m.moveCursor(-1, 0)
	case "l", "right":
		m.moveCursor(1, 0)
	case "k", "up":
		m.moveCursor(0, 1)
	case "j", "down":
		m.moveCursor(0, -1)

	// Type selection for the next placement.
	case "m":
		m.crease = pattern.Mountain
	case "v":
		m.crease = pattern.Valley
	case "b":
		m.crease = pattern.Border
	case "u":
		m.crease = pattern.Unassigned

	// Two-press gesture.
	case "enter", " ":
		m.place()
	case "esc":
		m.mark = nil
	case "x", "d":
		m.deleteMarked()
	case "t":
		m.retypeMarked()

	case "ctrl+z":
		m.undoStep()
	case "ctrl+r":
		m.redoStep()

	case "s":
		m.save()
	case "c":
		m.copyToClipboard()
	}

	return m, nil
}

// moveCursor shifts the cursor by one grid step, clamped to the grid.
func (m *Model) moveCursor(dx, dy int) {
	if nx := m.cursor.X + dx; nx >= 0 && nx <= m.pt.Size() {
		m.cursor.X = nx
	}
	if ny := m.cursor.Y + dy; ny >= 0 && ny <= m.pt.Size() {
		m.cursor.Y = ny
	}
}

// place runs the two-press gesture: first press marks, second press
// adds the crease from mark to cursor with the selected type.
func (m *Model) place() {
	if m.mark == nil {
		mark := m.cursor
		m.mark = &mark
		m.status = fmt.Sprintf("mark set at %s", mark)

		return
	}
	p1 := *m.mark
	m.snapshot()
	if err := m.pt.AddCrease(p1, m.cursor, m.crease); err != nil {
		m.popUndo()
		m.errMsg = err.Error()

		return
	}
	m.mark = nil
	m.status = fmt.Sprintf("added %s %s-%s", m.crease, p1, m.cursor)
	m.log.Debug("crease placed", "p1", p1, "p2", m.cursor, "type", m.crease)
	m.revalidate()
}

// deleteMarked removes the crease spanning mark and cursor.
func (m *Model) deleteMarked() {
	if m.mark == nil {
		m.errMsg = "no mark: press enter on an endpoint first"

		return
	}
	m.snapshot()
	if err := m.pt.RemoveCrease(*m.mark, m.cursor); err != nil {
		m.popUndo()
		m.errMsg = err.Error()

		return
	}
	m.mark = nil
	m.status = "crease removed"
	m.revalidate()
}

// retypeMarked reassigns the marked crease to the selected type.
func (m *Model) retypeMarked() {
	if m.mark == nil {
		m.errMsg = "no mark: press enter on an endpoint first"

		return
	}
	m.snapshot()
	if err := m.pt.SetCreaseType(*m.mark, m.cursor, m.crease); err != nil {
		m.popUndo()
		m.errMsg = err.Error()

		return
	}
	m.mark = nil
	m.status = fmt.Sprintf("retyped to %s", m.crease)
	m.revalidate()
}

func (m *Model) undoStep() {
	n := len(m.undo)
	if n == 0 {
		m.errMsg = "nothing to undo"

		return
	}
	m.redo = append(m.redo, m.pt)
	m.pt = m.undo[n-1]
	m.undo = m.undo[:n-1]
	m.mark = nil
	m.status = "undone"
	m.revalidate()
}

func (m *Model) redoStep() {
	n := len(m.redo)
	if n == 0 {
		m.errMsg = "nothing to redo"

		return
	}
	m.undo = append(m.undo, m.pt)
	m.pt = m.redo[n-1]
	m.redo = m.redo[:n-1]
	m.mark = nil
	m.status = "redone"
	m.revalidate()
}

// popUndo discards the latest snapshot after a failed mutation.
func (m *Model) popUndo() {
	if n := len(m.undo); n > 0 {
		m.undo = m.undo[:n-1]
	}
}

func (m *Model) save() {
	if m.path == "" {
		m.errMsg = "no file attached: start the editor with a path"

		return
	}
	if err := fold.Save(m.pt, m.path); err != nil {
		m.errMsg = err.Error()

		return
	}
	m.status = fmt.Sprintf("saved %s", m.path)
	m.log.Info("pattern saved", "path", m.path, "creases", m.pt.CreaseCount())
}

func (m *Model) copyToClipboard() {
	var buf bytes.Buffer
	if err := fold.Encode(&buf, fold.FromPattern(m.pt)); err != nil {
		m.errMsg = err.Error()

		return
	}
	if err := clipboard.WriteAll(buf.String()); err != nil {
		m.errMsg = "clipboard: " + err.Error()

		return
	}
	m.status = "FOLD JSON copied to clipboard"
}
