// File: validate.go
// Role: The Validate pass itself: per-vertex census, Maekawa and
//       Kawasaki arithmetic on integer octant gaps.
package foldability

import (
	"fmt"

	"github.com/foldkit/boxpleat/pattern"
)

// Validate checks local flat-foldability at every interior vertex of pt
// and returns a structured Report.
//
// Contract:
//   - Boundary vertices (incident Border crease) and vertices of degree
//     < 2 are exempt and never appear in the report.
//   - A vertex with any Unassigned incident crease is listed in
//     Report.Incomplete and skipped by the arithmetic.
//   - Violations are data, not errors: a broken pattern yields a nil
//     error and a populated report. A non-nil error means the pattern
//     itself could not be analyzed (nil input, angle collision).
//   - Vertices are visited in first-seen order; the report is stable.
//
// Complexity: O(V·d log d), d <= 8. Memory: O(V).
func Validate(pt *pattern.Pattern, opts ...Option) (*Report, error) {
	if pt == nil {
		return nil, ErrNilPattern
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	rep := &Report{Violations: []Violation{}}
	for _, v := range pt.Vertices() {
		// 1. Exemptions: the paper edge and dangling endpoints.
		if pt.IsBoundaryVertex(v) || pt.Degree(v) < 2 {
			continue
		}

		creases, err := pt.CreasesAt(v)
		if err != nil {
			return nil, fmt.Errorf("foldability: %w", err)
		}

		// 2. Census. Any unassigned crease parks the vertex as incomplete:
		//    Maekawa and Kawasaki are undefined until every fold direction
		//    is decided.
		var mountains, valleys, unassigned int
		for _, c := range creases {
			switch c.Type {
			case pattern.Mountain:
				mountains++
			case pattern.Valley:
				valleys++
			case pattern.Unassigned:
				unassigned++
			}
		}
		if unassigned > 0 {
			rep.Incomplete = append(rep.Incomplete, v)
			cfg.log.Debug("vertex incomplete", "vertex", v, "unassigned", unassigned)

			continue
		}

		degree := len(creases)

		// 3. Maekawa: mountains and valleys differ by exactly two.
		if diff := mountains - valleys; diff != 2 && diff != -2 {
			rep.Violations = append(rep.Violations, Violation{
				Vertex:    v,
				Kind:      KindMaekawa,
				Mountains: mountains,
				Valleys:   valleys,
				Degree:    degree,
			})
			cfg.log.Debug("maekawa violated", "vertex", v, "mountains", mountains, "valleys", valleys)
		}

		// 4. Kawasaki needs an even number of creases; an odd count is a
		//    violation in its own right and leaves the sums undefined.
		if degree%2 != 0 {
			rep.Violations = append(rep.Violations, Violation{
				Vertex:    v,
				Kind:      KindOddDegree,
				Mountains: mountains,
				Valleys:   valleys,
				Degree:    degree,
			})
			cfg.log.Debug("odd degree", "vertex", v, "degree", degree)

			continue
		}
		left, right := alternatingSums(v, creases)
		if left != right {
			rep.Violations = append(rep.Violations, Violation{
				Vertex:    v,
				Kind:      KindKawasaki,
				Mountains: mountains,
				Valleys:   valleys,
				Degree:    degree,
				LeftSum:   left,
				RightSum:  right,
			})
			cfg.log.Debug("kawasaki violated", "vertex", v, "left", left, "right", right)
		}
	}

	rep.Valid = len(rep.Violations) == 0 && len(rep.Incomplete) == 0
	cfg.log.Debug("validation finished",
		"valid", rep.Valid, "violations", len(rep.Violations), "incomplete", len(rep.Incomplete))

	return rep, nil
}

// alternatingSums splits the angle gaps around v into the two
// alternating groups and returns their totals in degrees. Gaps are
// exact multiples of 45: each is an octant delta between consecutive
// creases, with the final gap wrapping past east. creases must be
// octant-sorted, as CreasesAt returns them.
func alternatingSums(v pattern.Point, creases []pattern.Crease) (left, right int) {
	n := len(creases)
	octs := make([]int, n)
	for i, c := range creases {
		octs[i], _ = c.OctantFrom(v)
	}

	for i := 0; i < n; i++ {
		gap := octs[(i+1)%n] - octs[i]
		if gap <= 0 {
			gap += pattern.Octants
		}
		deg := gap * pattern.DegreesPerOctant
		if i%2 == 0 {
			left += deg
		} else {
			right += deg
		}
	}

	return left, right
}
