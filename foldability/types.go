// File: types.go
// Role: Violation kinds, the Report structure, sentinel errors, and the
//       functional options accepted by Validate.
package foldability

import (
	"errors"
	"fmt"
	"strings"

	"github.com/foldkit/boxpleat/pattern"
)

// ErrNilPattern is returned by Validate when the pattern is nil.
var ErrNilPattern = errors.New("foldability: nil pattern")

// Kind names the flat-foldability condition a vertex violates.
type Kind uint8

const (
	// KindMaekawa: |mountains - valleys| != 2 at an interior vertex.
	KindMaekawa Kind = iota
	// KindKawasaki: alternating angle sums around the vertex differ.
	KindKawasaki
	// KindOddDegree: an odd number of folded creases meet at the vertex,
	// so no mountain/valley assignment can flat-fold it.
	KindOddDegree
)

// String returns the snake_case name of the kind, the form reports and
// JSON output use.
func (k Kind) String() string {
	switch k {
	case KindMaekawa:
		return "maekawa"
	case KindKawasaki:
		return "kawasaki"
	case KindOddDegree:
		return "odd_degree"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind as its String form, so JSON reports carry
// "maekawa" rather than a bare integer.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses the String form back into a Kind.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "maekawa":
		*k = KindMaekawa
	case "kawasaki":
		*k = KindKawasaki
	case "odd_degree":
		*k = KindOddDegree
	default:
		return fmt.Errorf("foldability: unknown violation kind %q", text)
	}

	return nil
}

// Violation records one broken condition at one vertex. Mountains,
// Valleys and Degree are filled for every kind; LeftSum and RightSum
// (degrees) are meaningful only for KindKawasaki.
type Violation struct {
	Vertex    pattern.Point `json:"vertex"`
	Kind      Kind          `json:"kind"`
	Mountains int           `json:"mountains"`
	Valleys   int           `json:"valleys"`
	Degree    int           `json:"degree"`
	LeftSum   int           `json:"left_sum,omitempty"`
	RightSum  int           `json:"right_sum,omitempty"`
}

// String renders the violation on one line, e.g.
// "maekawa at (2,2): 2 mountains, 2 valleys".
func (v Violation) String() string {
	switch v.Kind {
	case KindKawasaki:
		return fmt.Sprintf("kawasaki at %s: alternating sums %d/%d degrees",
			v.Vertex, v.LeftSum, v.RightSum)
	case KindOddDegree:
		return fmt.Sprintf("odd_degree at %s: %d creases", v.Vertex, v.Degree)
	default:
		return fmt.Sprintf("maekawa at %s: %d mountains, %d valleys",
			v.Vertex, v.Mountains, v.Valleys)
	}
}

// Report is the outcome of one Validate run.
//
// Valid is true exactly when Violations and Incomplete are both empty:
// a pattern with unassigned creases is not yet foldable even if every
// fully assigned vertex passes.
type Report struct {
	Valid      bool            `json:"valid"`
	Violations []Violation     `json:"violations"`
	Incomplete []pattern.Point `json:"incomplete,omitempty"`
}

// Summary renders a short human-readable verdict, one violation per line.
func (r *Report) Summary() string {
	if r.Valid {
		return "flat-foldable: all interior vertices pass"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "not flat-foldable: %d violation(s), %d incomplete vertex(es)",
		len(r.Violations), len(r.Incomplete))
	for _, v := range r.Violations {
		b.WriteString("\n  ")
		b.WriteString(v.String())
	}
	for _, p := range r.Incomplete {
		fmt.Fprintf(&b, "\n  unassigned creases at %s", p)
	}

	return b.String()
}

// Option tweaks a Validate run.
type Option func(*config)

// WithLogger routes per-vertex debug output to l.
func WithLogger(l pattern.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

type config struct {
	log pattern.Logger
}

func defaultConfig() config {
	return config{log: pattern.Nop()}
}
