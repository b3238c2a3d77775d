// Package render rasterizes crease patterns to images using the classic
// crease-pattern palette: solid red mountains, dashed blue valleys,
// heavy black borders, gray unassigned creases.
//
// What:
//
//   - Image renders a pattern.Pattern into an in-memory image.Image;
//     PNG renders straight to a file.
//   - The grid is drawn y-up: point (0,0) sits at the bottom-left of the
//     raster, matching how crease patterns are printed.
//   - Options control pixels per grid unit, outer margin, faint unit
//     gridlines, per-vertex coordinate labels, and an optional
//     foldability.Report overlay that rings violating vertices red and
//     incomplete vertices amber.
//
// Errors:
//
//   - ErrNilPattern: Image(nil) / PNG(nil, ...).
//   - PNG wraps filesystem failures around the underlying error.
package render
