// Package boxpleat is a workbench for box-pleated origami crease
// patterns: build them on an integer grid, check flat-foldability,
// exchange them as FOLD files, and render or edit them interactively.
//
// 🚀 What is boxpleat?
//
//	A small family of packages that brings together:
//		• Core model: integer-grid patterns, creases at multiples of 45°
//		• Foldability: Maekawa and Kawasaki checks at every interior vertex
//		• FOLD I/O: read and write the community interchange format
//		• Templates: composable generators for frames, bases and grids
//		• Rendering: publication-style PNG diagrams
//		• Editing: a terminal editor with live validation
//
// ✨ Why choose boxpleat?
//
//   - Exact by construction, validation is pure integer arithmetic
//   - Violations are data, not errors: inspect them, render them, fix them
//   - Deterministic enumeration everywhere, stable files and stable tests
//   - Each package stands alone; import only what you need
//
// Everything is organized under six subpackages and one command:
//
//	pattern/       grid, creases, vertices and their octant geometry
//	foldability/   the flat-foldability validator and its Report
//	fold/          FOLD 1.1 encoding, decoding and file round trips
//	gen/           composable pattern templates (frame, waterbomb, ...)
//	render/        PNG diagrams of patterns and validation overlays
//	tui/           the interactive terminal editor
//	cmd/boxpleat/  the CLI: new, validate, convert, render, watch, edit
//
// Quick ASCII example:
//
//	    ┌───┬───┐
//	    │   ╱   │
//	    ├──╳────┤
//	    │   ╲   │
//	    └───┴───┘
//
//	a 2x2 sheet with two diagonal creases crossing at the center.
//
// Dive into the per-package docs for the full API, or start with:
//
//	go get github.com/foldkit/boxpleat
package boxpleat
