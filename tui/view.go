// File: view.go
// Role: Rendering: the half-unit character canvas, status bar, message
//       line and help overlay.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/foldkit/boxpleat/pattern"
)

// Palette tuned for dark terminals; crease colors match the render
// package's PNG palette.
const (
	colorMountain = lipgloss.Color("#EF4444")
	colorValley   = lipgloss.Color("#3B82F6")
	colorBorder   = lipgloss.Color("#E5E7EB")
	colorMuted    = lipgloss.Color("#6B7280")
	colorAccent   = lipgloss.Color("#7C3AED")
	colorGood     = lipgloss.Color("#10B981")
	colorWarn     = lipgloss.Color("#F59E0B")
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mountainStyle = lipgloss.NewStyle().Foreground(colorMountain)
	valleyStyle   = lipgloss.NewStyle().Foreground(colorValley)
	borderStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorBorder)
	unknownStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	latticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#374151"))
	vertexStyle   = lipgloss.NewStyle().Foreground(colorBorder)
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(colorAccent)
	markStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#111827")).Background(colorWarn)
	okStyle       = lipgloss.NewStyle().Bold(true).Foreground(colorGood)
	badStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorMountain)
	warnStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorWarn)
	faintStyle    = lipgloss.NewStyle().Foreground(colorMuted)
)

// cell is one glyph of the grid canvas.
type cell struct {
	ch    rune
	style lipgloss.Style
}

// View implements tea.Model.
func (m Model) View() string {
	if m.help {
		return m.helpView()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("boxpleat"))
	if m.path != "" {
		b.WriteString(faintStyle.Render("  " + m.path))
	}
	b.WriteString("\n\n")
	b.WriteString(m.gridView())
	b.WriteString("\n")
	b.WriteString(m.statusView())
	b.WriteString("\n")
	b.WriteString(m.messageView())
	b.WriteString("\n")

	return b.String()
}

// row maps a grid y to its canvas row; y grows upward, rows downward.
func row(size, y int) int {
	return 2 * (size - y)
}

// gridView paints the half-unit canvas: lattice dots, creases, vertices,
// then mark and cursor on top.
func (m Model) gridView() string {
	size := m.pt.Size()
	side := 2*size + 1
	canvas := make([][]cell, side)
	for r := range canvas {
		canvas[r] = make([]cell, side)
		for c := range canvas[r] {
			canvas[r][c] = cell{ch: ' '}
		}
	}

	// 1. Lattice dots on every grid point.
	for y := 0; y <= size; y++ {
		for x := 0; x <= size; x++ {
			canvas[row(size, y)][2*x] = cell{ch: '·', style: latticeStyle}
		}
	}

	// 2. Creases, walked in half-unit steps.
	for _, c := range m.pt.Creases() {
		paintCrease(canvas, size, c)
	}

	// 3. Vertices override crease glyphs; verdict coloring per vertex.
	bad, warn := m.verdictSets()
	for _, v := range m.pt.Vertices() {
		st := vertexStyle
		switch {
		case bad[v]:
			st = badStyle
		case warn[v]:
			st = warnStyle
		case m.pt.IsBoundaryVertex(v):
			st = borderStyle
		}
		canvas[row(size, v.Y)][2*v.X] = cell{ch: '●', style: st}
	}

	// 4. Mark and cursor.
	if m.mark != nil {
		canvas[row(size, m.mark.Y)][2*m.mark.X] = cell{ch: '◆', style: markStyle}
	}
	canvas[row(size, m.cursor.Y)][2*m.cursor.X] = cell{ch: '◉', style: cursorStyle}

	// 5. Flatten. Cells render two columns wide so the grid is roughly
	//    square in terminal aspect; horizontal creases extend their rune.
	var b strings.Builder
	for r := 0; r < side; r++ {
		for _, cl := range canvas[r] {
			s := string(cl.ch) + " "
			if cl.ch == '─' {
				s = "──"
			}
			b.WriteString(cl.style.Render(s))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// verdictSets indexes the current report by vertex for O(1) coloring.
func (m Model) verdictSets() (bad, warn map[pattern.Point]bool) {
	bad = make(map[pattern.Point]bool)
	warn = make(map[pattern.Point]bool)
	if m.report == nil {
		return bad, warn
	}
	for _, v := range m.report.Violations {
		bad[v.Vertex] = true
	}
	for _, p := range m.report.Incomplete {
		warn[p] = true
	}

	return bad, warn
}

// paintCrease marks every half-unit step of one crease on the canvas.
func paintCrease(canvas [][]cell, size int, c pattern.Crease) {
	sx := signOf(c.P2.X - c.P1.X)
	sy := signOf(c.P2.Y - c.P1.Y)

	var ch rune
	switch {
	case sy == 0:
		ch = '─'
	case sx == 0:
		ch = '│'
	case sx == sy:
		ch = '╱'
	default:
		ch = '╲'
	}
	st := styleFor(c.Type)

	length := c.P2.X - c.P1.X
	if length < 0 {
		length = -length
	}
	if length == 0 {
		length = c.P2.Y - c.P1.Y
		if length < 0 {
			length = -length
		}
	}

	baseCol := 2 * c.P1.X
	baseRow := row(size, c.P1.Y)
	for i := 1; i < 2*length; i++ {
		col := baseCol + i*sx
		r := baseRow - i*sy
		prev := canvas[r][col].ch
		switch {
		case prev == ' ' || prev == '·' || prev == ch:
			canvas[r][col] = cell{ch: ch, style: st}
		case (prev == '╱' && ch == '╲') || (prev == '╲' && ch == '╱'):
			canvas[r][col] = cell{ch: '╳', style: st}
		default:
			canvas[r][col] = cell{ch: '┼', style: st}
		}
	}
}

// styleFor maps a crease type to its terminal style.
func styleFor(t pattern.CreaseType) lipgloss.Style {
	switch t {
	case pattern.Mountain:
		return mountainStyle
	case pattern.Valley:
		return valleyStyle
	case pattern.Border:
		return borderStyle
	default:
		return unknownStyle
	}
}

// statusView renders the verdict and editing context on one line.
func (m Model) statusView() string {
	var verdict string
	switch {
	case m.geomErr != "":
		verdict = badStyle.Render("✗ " + m.geomErr)
	case m.report == nil:
		verdict = faintStyle.Render("…")
	case m.report.Valid:
		verdict = okStyle.Render("✓ flat-foldable")
	case len(m.report.Violations) == 0:
		verdict = warnStyle.Render(fmt.Sprintf("◐ %d vertex(es) unassigned", len(m.report.Incomplete)))
	default:
		verdict = badStyle.Render(fmt.Sprintf("✗ %d violation(s)", len(m.report.Violations)))
	}

	mark := "-"
	if m.mark != nil {
		mark = m.mark.String()
	}

	status := verdict + faintStyle.Render(fmt.Sprintf(
		"  cursor %s  mark %s  type %s  creases %d",
		m.cursor, mark, m.crease, m.pt.CreaseCount()))
	if comps := m.pt.Components(); len(comps) > 1 {
		status += warnStyle.Render(fmt.Sprintf("  %d fragments", len(comps)))
	}

	return status
}

// messageView renders errors, confirmations, or the key hint line.
func (m Model) messageView() string {
	switch {
	case m.errMsg != "":
		return badStyle.Render(m.errMsg)
	case m.status != "":
		return okStyle.Render(m.status)
	default:
		return faintStyle.Render("enter mark/place · m/v/b/u type · x delete · t retype · s save · c copy · ? help")
	}
}

func (m Model) helpView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("boxpleat editor keys"))
	b.WriteString("\n\n")
	for _, line := range []string{
		"h/j/k/l, arrows   move cursor (k is up: grid y grows upward)",
		"enter, space      set mark / place crease from mark to cursor",
		"esc               clear mark",
		"m, v, b, u        select mountain / valley / border / unassigned",
		"x, d              delete crease between mark and cursor",
		"t                 retype crease between mark and cursor",
		"ctrl+z, ctrl+r    undo / redo",
		"s                 save FOLD file",
		"c                 copy FOLD JSON to clipboard",
		"q, ctrl+c         quit",
	} {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n")
	b.WriteString(faintStyle.Render("press ? or esc to close help"))

	return b.String()
}

// signOf returns -1, 0 or 1 according to the sign of v.
func signOf(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
