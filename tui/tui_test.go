package tui_test

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foldkit/boxpleat/fold"
	"github.com/foldkit/boxpleat/pattern"
	"github.com/foldkit/boxpleat/tui"
)

var special = map[string]tea.KeyType{
	"enter":  tea.KeyEnter,
	"esc":    tea.KeyEsc,
	"up":     tea.KeyUp,
	"down":   tea.KeyDown,
	"left":   tea.KeyLeft,
	"right":  tea.KeyRight,
	"ctrl+z": tea.KeyCtrlZ,
	"ctrl+r": tea.KeyCtrlR,
}

// press feeds a key sequence through Update and returns the new model.
func press(m tui.Model, keys ...string) tui.Model {
	for _, k := range keys {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		if t, ok := special[k]; ok {
			msg = tea.KeyMsg{Type: t}
		}
		next, _ := m.Update(msg)
		m = next.(tui.Model)
	}

	return m
}

func newEditor(t *testing.T, size int, opts ...tui.Option) tui.Model {
	t.Helper()
	pt, err := pattern.New(size)
	require.NoError(t, err)

	return tui.New(pt, opts...)
}

func TestNew_DoesNotMutateInput(t *testing.T) {
	pt, err := pattern.New(4)
	require.NoError(t, err)

	m := tui.New(pt)
	m = press(m, "enter", "right", "right", "enter")

	assert.Equal(t, 1, m.Pattern().CreaseCount())
	assert.Equal(t, 0, pt.CreaseCount(), "editor works on a clone")
}

func TestPlaceCrease_DefaultMountain(t *testing.T) {
	m := newEditor(t, 4)
	m = press(m, "enter", "right", "right", "enter")

	c, ok := m.Pattern().Crease(pattern.Point{X: 0, Y: 0}, pattern.Point{X: 2, Y: 0})
	require.True(t, ok)
	assert.Equal(t, pattern.Mountain, c.Type)
}

func TestPlaceCrease_TypeSelection(t *testing.T) {
	m := newEditor(t, 4)
	m = press(m, "v", "enter", "up", "right", "enter")

	c, ok := m.Pattern().Crease(pattern.Point{X: 0, Y: 0}, pattern.Point{X: 1, Y: 1})
	require.True(t, ok)
	assert.Equal(t, pattern.Valley, c.Type)
}

func TestPlace_ZeroLengthRejected(t *testing.T) {
	m := newEditor(t, 4)
	m = press(m, "enter", "enter")

	assert.Equal(t, 0, m.Pattern().CreaseCount())
	assert.Contains(t, m.View(), "zero-length")
}

func TestPlace_IllegalDirectionRejected(t *testing.T) {
	// A knight move: two right, one up.
	m := newEditor(t, 4)
	m = press(m, "enter", "right", "right", "up", "enter")

	assert.Equal(t, 0, m.Pattern().CreaseCount())
	assert.Contains(t, m.View(), "45-degree")
}

func TestEscClearsMark(t *testing.T) {
	m := newEditor(t, 4)
	m = press(m, "enter", "esc", "right", "enter")

	// After esc the first enter is gone; the second only sets a new mark.
	assert.Equal(t, 0, m.Pattern().CreaseCount())
	assert.Contains(t, m.View(), "mark (1,0)")
}

func TestUndoRedo(t *testing.T) {
	m := newEditor(t, 4)
	m = press(m, "enter", "right", "right", "enter")
	require.Equal(t, 1, m.Pattern().CreaseCount())

	m = press(m, "ctrl+z")
	assert.Equal(t, 0, m.Pattern().CreaseCount())

	m = press(m, "ctrl+r")
	assert.Equal(t, 1, m.Pattern().CreaseCount())
}

func TestDeleteAndRetype(t *testing.T) {
	m := newEditor(t, 4)
	m = press(m, "enter", "right", "right", "enter")

	// Retype the crease to valley: mark one endpoint, cursor on the
	// other, select v, press t.
	m = press(m, "left", "left", "enter", "right", "right", "v", "t")
	c, ok := m.Pattern().Crease(pattern.Point{X: 0, Y: 0}, pattern.Point{X: 2, Y: 0})
	require.True(t, ok)
	assert.Equal(t, pattern.Valley, c.Type)

	// Now delete it with the same gesture.
	m = press(m, "left", "left", "enter", "right", "right", "x")
	assert.Equal(t, 0, m.Pattern().CreaseCount())
}

func TestCursorClamping(t *testing.T) {
	m := newEditor(t, 2)
	m = press(m, "left", "down")
	assert.Contains(t, m.View(), "cursor (0,0)")

	m = press(m, "right", "right", "right", "right", "up", "up", "up")
	assert.Contains(t, m.View(), "cursor (2,2)")
}

func TestStatusVerdict(t *testing.T) {
	m := newEditor(t, 4)
	assert.Contains(t, m.View(), "flat-foldable", "empty pattern is trivially valid")

	// An L corner: one mountain, one valley. Both conditions break.
	m = press(m, "enter", "right", "right", "enter") // (0,0)-(2,0) mountain
	m = press(m, "v", "enter", "up", "up", "enter")  // (2,0)-(2,2) valley
	assert.Contains(t, m.View(), "violation")
}

func TestStatusFragments(t *testing.T) {
	m := newEditor(t, 6)
	m = press(m, "enter", "right", "right", "enter") // (0,0)-(2,0)
	assert.NotContains(t, m.View(), "fragments", "one component is the normal case")

	// A second crease nowhere near the first.
	m = press(m, "right", "right", "enter", "right", "right", "enter") // (4,0)-(6,0)
	assert.Contains(t, m.View(), "2 fragments")
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edit.fold")
	m := newEditor(t, 4, tui.WithPath(path))
	m = press(m, "enter", "right", "right", "enter", "s")

	assert.Contains(t, m.View(), "saved")
	back, err := fold.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, back.CreaseCount())
}

func TestSave_NoPath(t *testing.T) {
	m := newEditor(t, 4)
	m = press(m, "s")
	assert.Contains(t, m.View(), "no file attached")
}

func TestHelpOverlay(t *testing.T) {
	m := newEditor(t, 4)
	m = press(m, "?")
	assert.Contains(t, m.View(), "editor keys")

	// Keys other than the dismissal set are swallowed.
	m = press(m, "enter", "right", "enter")
	assert.Equal(t, 0, m.Pattern().CreaseCount())
	assert.Contains(t, m.View(), "editor keys")

	m = press(m, "esc")
	assert.NotContains(t, m.View(), "editor keys")
}

func TestQuit(t *testing.T) {
	m := newEditor(t, 4)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestGridGlyphs(t *testing.T) {
	m := newEditor(t, 2)
	m = press(m, "enter", "right", "right", "enter") // horizontal (0,0)-(2,0)
	view := m.View()
	assert.Contains(t, view, "─", "horizontal crease glyph")
	assert.Contains(t, view, "●", "vertex glyph")

	m = press(m, "enter", "up", "up", "enter") // vertical (2,0)-(2,2)
	view = m.View()
	assert.Contains(t, view, "│", "vertical crease glyph")

	m2 := newEditor(t, 2)
	m2 = press(m2, "enter", "right", "up", "enter") // diagonal (0,0)-(1,1)
	assert.Contains(t, m2.View(), "╱", "diagonal crease glyph")
}

func TestWindowResize(t *testing.T) {
	m := newEditor(t, 2)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.NotPanics(t, func() { _ = next.(tui.Model).View() })
}
