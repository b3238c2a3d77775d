// Package tui is a terminal crease-pattern editor built on Bubble Tea.
//
// What:
//
//   - New wraps a pattern.Pattern in a tea.Model. The grid renders as a
//     character canvas (one glyph per half-unit) with creases colored by
//     type, the live foldability verdict in the status bar, and a help
//     overlay on '?'.
//   - Creases are placed with a two-press gesture: enter marks the first
//     endpoint, a second enter adds the crease from the mark to the
//     cursor using the currently selected type (m/v/b/u to switch).
//     With a mark set, x deletes the marked crease and t retypes it.
//   - Undo and redo (ctrl+z / ctrl+r) snapshot the whole pattern;
//     s saves to the attached FOLD path, c copies the FOLD JSON to the
//     system clipboard.
//
// The editor never mutates the pattern it was given: it works on a
// clone, and Pattern returns the current state for the caller to keep.
package tui
