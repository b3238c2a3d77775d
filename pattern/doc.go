// Package pattern models box-pleating crease patterns: creases on an
// integer grid running along axis-aligned or 45-degree diagonal
// directions.
//
// What:
//
//   - Point is an integer grid coordinate; Crease is an unordered pair of
//     Points with a CreaseType (Mountain, Valley, Border, Unassigned).
//   - Pattern owns a set of Creases on a grid of side Size. Vertices and
//     adjacency are derived, never stored independently: an index from
//     Point to incident creases is maintained incrementally on every
//     mutation.
//   - AddCrease enforces box-pleating legality at insertion time: both
//     endpoints inside [0,Size]x[0,Size], non-zero length, and a direction
//     that is horizontal, vertical, or 45-degree diagonal.
//   - CreasesAt returns the creases around a vertex ordered by angle,
//     expressed as one of the eight 45-degree octants. Exact integer
//     arithmetic throughout; no floating point.
//   - Components enumerates the connected fragments of the crease graph
//     in deterministic order.
//
// Why:
//
//   - Foldability analysis (package foldability) needs angle-ordered
//     incident creases per vertex.
//   - Interchange conversion (package fold) needs a stable vertex and
//     crease enumeration plus re-validation of foreign geometry.
//
// Determinism:
//
//   - Vertices() keeps first-seen order, Creases() keeps insertion order.
//     Both are stable for the lifetime of a Pattern instance.
//
// Concurrency:
//
//   - A Pattern is NOT safe for concurrent use. Callers must not mutate a
//     Pattern while a read operation (validation, export) is in progress;
//     add external synchronization if you need it.
//
// Errors:
//
//   - ErrGeometry is the umbrella for every geometric legality failure;
//     ErrOutOfBounds, ErrZeroLength, ErrDirection and ErrAngleCollision
//     wrap it so errors.Is works on both the class and the exact cause.
//   - ErrDuplicateCrease: re-adding an existing endpoint pair with a
//     conflicting type (use SetCreaseType to overwrite deliberately).
//   - ErrCreaseNotFound, ErrVertexNotFound: lookups on absent elements.
package pattern
