// Package foldability checks local flat-foldability of box-pleating
// crease patterns: Maekawa's and Kawasaki's conditions evaluated at
// every interior vertex, reported as structured violations rather than
// errors.
//
// What:
//
//   - Validate walks every vertex of a pattern.Pattern and classifies it.
//     Boundary vertices (any incident Border crease) and vertices of
//     degree < 2 are exempt. Vertices with an Unassigned incident crease
//     are recorded as incomplete and skipped by the arithmetic.
//   - Maekawa's condition: |mountains - valleys| == 2.
//   - Kawasaki's condition: alternating sums of the angle gaps around the
//     vertex are equal (180 degrees each). Evaluated only for even
//     degree; odd degree is its own violation kind.
//   - Report carries the verdict: Valid is true exactly when there are no
//     violations and no incomplete vertices.
//
// Why:
//
//   - A violation is a fact about the pattern, not a failure of the
//     checker: a pattern that breaks Maekawa at three vertices produces a
//     nil error and a Report listing three violations. Errors are
//     reserved for inputs the checker cannot reason about (nil pattern,
//     overlapping collinear creases).
//
// Exactness:
//
//   - Box-pleating admits only eight directions per vertex, so every
//     angle is a multiple of 45 degrees. All sums are computed on integer
//     octant gaps; there is no floating point and no epsilon.
//
// Determinism:
//
//   - Vertices are visited in the pattern's first-seen order, so
//     Violations and Incomplete come out in the same order on every run.
//
// Complexity: O(V·d log d) with d <= 8, effectively O(V). Memory: O(V).
//
// Errors:
//
//   - ErrNilPattern: Validate(nil).
//   - pattern.ErrAngleCollision (wrapped): two incident creases share a
//     direction octant, so the angle sequence is undefined.
package foldability
