// File: model.go
// Role: The editor model: state, construction, snapshot helpers.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/foldkit/boxpleat/foldability"
	"github.com/foldkit/boxpleat/pattern"
)

// maxUndo bounds the snapshot stacks.
const maxUndo = 128

// Model is the Bubble Tea model for the crease-pattern editor. Build it
// with New; the zero value is not usable.
type Model struct {
	pt   *pattern.Pattern
	path string

	cursor  pattern.Point
	mark    *pattern.Point     // first endpoint of the two-press gesture
	crease  pattern.CreaseType // type applied by the next placement
	undo    []*pattern.Pattern
	redo    []*pattern.Pattern
	report  *foldability.Report // nil while the pattern has an angle collision
	geomErr string              // validator-level geometry failure, if any

	status string // transient confirmation line
	errMsg string // transient error line
	help   bool

	width  int
	height int
	log    pattern.Logger
}

// Option tweaks the editor at construction time.
type Option func(*Model)

// WithPath attaches the FOLD file path the s key saves to.
func WithPath(path string) Option {
	return func(m *Model) { m.path = path }
}

// WithLogger routes editor debug output to l.
func WithLogger(l pattern.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// New builds an editor over a clone of pt, so the caller's pattern is
// never mutated behind its back. Retrieve the edited state with Pattern.
func New(pt *pattern.Pattern, opts ...Option) Model {
	m := Model{
		pt:     pt.Clone(),
		crease: pattern.Mountain,
		log:    pattern.Nop(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.revalidate()

	return m
}

// Pattern returns the current edited state.
func (m Model) Pattern() *pattern.Pattern {
	return m.pt
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// snapshot pushes the current pattern onto the undo stack and clears
// the redo stack. Call before every mutation.
func (m *Model) snapshot() {
	m.undo = append(m.undo, m.pt.Clone())
	if len(m.undo) > maxUndo {
		m.undo = m.undo[1:]
	}
	m.redo = nil
}

// revalidate refreshes the foldability verdict after a mutation. An
// angle collision leaves report nil and records the failure for the
// status bar.
func (m *Model) revalidate() {
	rep, err := foldability.Validate(m.pt, foldability.WithLogger(m.log))
	if err != nil {
		m.report = nil
		m.geomErr = err.Error()

		return
	}
	m.report = rep
	m.geomErr = ""
}
