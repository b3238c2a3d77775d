// File: types.go
// Role: The Document structure, FOLD defaults, sentinel errors, and the
//       functional options shared by the conversion entry points.
package fold

import (
	"errors"
	"fmt"

	"github.com/foldkit/boxpleat/pattern"
)

// FOLD defaults written by FromPattern.
const (
	// SpecVersion is the FOLD format version this package targets.
	SpecVersion = 1.1
	// DefaultCreator is the file_creator stamped on exported documents.
	DefaultCreator = "boxpleat"
	// FrameClassCreasePattern marks a frame as an unfolded crease pattern.
	FrameClassCreasePattern = "creasePattern"
	// GridSizeField is the namespaced extension key carrying the declared
	// grid size across a round trip.
	GridSizeField = "boxpleat:grid_size"
)

// ErrFormat is the umbrella sentinel for every malformed-document
// failure. The specific sentinels below wrap it, so callers may match
// either the class or the exact cause.
var ErrFormat = errors.New("fold: malformed document")

var (
	// ErrMissingField: a required FOLD field is absent.
	ErrMissingField = fmt.Errorf("%w: required field missing", ErrFormat)
	// ErrCoordRow: a vertices_coords row is not a two-element [x,y] pair.
	ErrCoordRow = fmt.Errorf("%w: vertices_coords row must be [x,y]", ErrFormat)
	// ErrEdgeRow: an edges_vertices row is not a two-element [a,b] pair.
	ErrEdgeRow = fmt.Errorf("%w: edges_vertices row must be [a,b]", ErrFormat)
	// ErrLengthMismatch: edges_vertices and edges_assignment disagree on
	// the edge count.
	ErrLengthMismatch = fmt.Errorf("%w: edges_vertices and edges_assignment lengths differ", ErrFormat)
	// ErrVertexIndex: an edge references a vertex id outside
	// vertices_coords.
	ErrVertexIndex = fmt.Errorf("%w: edge references missing vertex", ErrFormat)
	// ErrAssignmentCode: an edges_assignment entry is outside the closed
	// set M, V, B, U.
	ErrAssignmentCode = fmt.Errorf("%w: unknown assignment code", ErrFormat)
)

// Document is the FOLD subset this module reads and writes. Coordinates
// are float64 on the wire (the format allows non-integer geometry) and
// are required to be integral by Validate before they reach a Pattern.
type Document struct {
	Spec         float64     `json:"file_spec"`
	Creator      string      `json:"file_creator,omitempty"`
	FrameTitle   string      `json:"frame_title,omitempty"`
	FrameClasses []string    `json:"frame_classes,omitempty"`
	Vertices     [][]float64 `json:"vertices_coords"`
	Edges        [][]int     `json:"edges_vertices"`
	Assignments  []string    `json:"edges_assignment"`
	GridSize     int         `json:"boxpleat:grid_size,omitempty"`
}

// assignmentOf maps a CreaseType to its FOLD assignment code.
func assignmentOf(t pattern.CreaseType) string {
	switch t {
	case pattern.Mountain:
		return "M"
	case pattern.Valley:
		return "V"
	case pattern.Border:
		return "B"
	default:
		return "U"
	}
}

// typeOf maps a FOLD assignment code to its CreaseType. ok is false for
// codes outside the supported closed set.
func typeOf(code string) (t pattern.CreaseType, ok bool) {
	switch code {
	case "M":
		return pattern.Mountain, true
	case "V":
		return pattern.Valley, true
	case "B":
		return pattern.Border, true
	case "U":
		return pattern.Unassigned, true
	default:
		return 0, false
	}
}

// Option tweaks conversion behavior.
type Option func(*config)

// WithCreator overrides the file_creator stamped by FromPattern.
func WithCreator(creator string) Option {
	return func(c *config) {
		if creator != "" {
			c.creator = creator
		}
	}
}

// WithFrameTitle sets frame_title on exported documents.
func WithFrameTitle(title string) Option {
	return func(c *config) {
		c.title = title
	}
}

// WithLogger routes conversion debug output to l and attaches l to
// patterns built by ToPattern and Load.
func WithLogger(l pattern.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

type config struct {
	creator string
	title   string
	log     pattern.Logger
}

func defaultConfig() config {
	return config{creator: DefaultCreator, log: pattern.Nop()}
}
