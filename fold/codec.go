// File: codec.go
// Role: JSON encode/decode of Documents plus the structural validation
//       every document passes before it may become a Pattern.
package fold

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/foldkit/boxpleat/pattern"
)

// requiredFields are the FOLD keys a decodable document must carry.
// Metadata fields are optional; geometry is not.
var requiredFields = []string{"vertices_coords", "edges_vertices", "edges_assignment"}

// maxCoord bounds accepted coordinate magnitude, guarding the
// float64-to-int conversion against overflow.
const maxCoord = 1 << 31

// Encode writes d to w as indented JSON with a trailing newline.
func Encode(w io.Writer, d *Document) error {
	raw, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("fold: encode: %w", err)
	}
	raw = append(raw, '\n')
	if _, err = w.Write(raw); err != nil {
		return fmt.Errorf("fold: encode: %w", err)
	}

	return nil
}

// Decode parses a FOLD document from r and validates its structure.
//
// Contract:
//   - The top level must be a JSON object carrying vertices_coords,
//     edges_vertices and edges_assignment. Unknown fields are ignored.
//   - Structural failures wrap ErrFormat; non-integral coordinates wrap
//     pattern.ErrGeometry; read failures keep the underlying error.
func Decode(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("fold: decode: %w", err)
	}

	// 1. Top level must be an object; remember which keys are present so
	//    an absent field and an empty one stay distinguishable.
	var fields map[string]json.RawMessage
	if err = json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("not a JSON object: %w", ErrFormat)
	}
	for _, name := range requiredFields {
		if _, ok := fields[name]; !ok {
			return nil, fmt.Errorf("field %q: %w", name, ErrMissingField)
		}
	}

	// 2. Known fields decode strictly.
	var d Document
	if err = json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrFormat)
	}

	// 3. Structural invariants.
	if err = d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// Validate checks the document's structural invariants without building
// a pattern: coordinate row shape and integrality, edge row shape,
// edge/assignment parity, vertex id ranges, and the assignment code set.
func (d *Document) Validate() error {
	for i, row := range d.Vertices {
		if len(row) != 2 {
			return fmt.Errorf("vertex %d: %w", i, ErrCoordRow)
		}
		for _, v := range row {
			if math.IsInf(v, 0) || v != math.Trunc(v) || v > maxCoord || v < -maxCoord {
				return fmt.Errorf("fold: vertex %d: coordinate %v not on the integer grid: %w",
					i, v, pattern.ErrGeometry)
			}
		}
	}

	if len(d.Edges) != len(d.Assignments) {
		return fmt.Errorf("%d edges, %d assignments: %w",
			len(d.Edges), len(d.Assignments), ErrLengthMismatch)
	}
	for i, e := range d.Edges {
		if len(e) != 2 {
			return fmt.Errorf("edge %d: %w", i, ErrEdgeRow)
		}
		for _, id := range e {
			if id < 0 || id >= len(d.Vertices) {
				return fmt.Errorf("edge %d: vertex id %d: %w", i, id, ErrVertexIndex)
			}
		}
		if _, ok := typeOf(d.Assignments[i]); !ok {
			return fmt.Errorf("edge %d: code %q: %w", i, d.Assignments[i], ErrAssignmentCode)
		}
	}

	if d.GridSize < 0 {
		return fmt.Errorf("grid size %d: %w", d.GridSize, ErrFormat)
	}

	return nil
}
