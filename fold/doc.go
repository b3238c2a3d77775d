// Package fold converts crease patterns to and from the FOLD
// interchange format (https://github.com/edemaine/fold), the JSON
// format origami software exchanges crease patterns in.
//
// What:
//
//   - Document mirrors the FOLD fields this module reads and writes:
//     file_spec, file_creator, frame_title, frame_classes,
//     vertices_coords, edges_vertices, edges_assignment, plus the
//     namespaced extension boxpleat:grid_size carrying the declared grid
//     size across a round trip.
//   - FromPattern and Document.ToPattern translate between the in-memory
//     model and the document; Encode/Decode handle JSON bytes; Save/Load
//     are the file-path conveniences.
//   - Decoding is strict about geometry and lenient about everything
//     else: unknown top-level fields are ignored, but coordinate rows
//     must be [x,y], coordinates must be integral, assignment codes must
//     be M, V, B or U, and every edge must reference existing vertices.
//
// Why:
//
//   - Round-trip fidelity is the contract: Save then Load reproduces the
//     same grid size, creases and types. Declared size survives through
//     boxpleat:grid_size; files from other tools fall back to the
//     maximum coordinate.
//   - ToPattern re-runs the full AddCrease legality pipeline on every
//     edge, so a foreign file can never smuggle illegal geometry into a
//     Pattern.
//
// Errors:
//
//   - ErrFormat is the umbrella for every malformed-document failure;
//     ErrMissingField, ErrCoordRow, ErrEdgeRow, ErrLengthMismatch,
//     ErrVertexIndex and ErrAssignmentCode wrap it.
//   - Non-integral coordinates wrap pattern.ErrGeometry: the document is
//     well formed JSON but describes geometry box pleating cannot hold.
//   - Save and Load wrap the underlying *os.PathError, so errors.Is
//     against os.ErrNotExist and friends keeps working.
package fold
