// Package gen builds classic box-pleating starting points: a bordered
// sheet, a flat-foldable waterbomb cell, and a dense unit tessellation
// for stress-testing.
//
// What:
//
//	Template    one deterministic batch of creases
//	Apply       compose templates onto an existing pattern
//	Build       convenience: new pattern + Apply
//
// Why: editors and tests keep re-creating the same primitives by hand.
// A template emits its creases in a documented, stable order, so two
// runs with the same inputs produce byte-identical FOLD files.
//
// Determinism: templates take no randomness and iterate the grid in
// fixed row-major or perimeter order. Re-applying a template to a
// pattern that already holds identical creases is a no-op; a
// conflicting crease type surfaces as the pattern's own error.
//
// Errors: sentinel values (ErrSizeTooSmall, ErrOddSize, ErrNilTemplate)
// plus whatever the pattern itself rejects, all wrapped with %w for
// errors.Is.
package gen
