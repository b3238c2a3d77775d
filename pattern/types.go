// File: types.go
// Role: Geometry primitives shared by the whole module: Point, CreaseType,
//       Crease, and the exact integer octant arithmetic behind angle ordering.
package pattern

import "fmt"

// Point is a coordinate on the integer grid. Points are comparable and
// used directly as index keys.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String renders the point as "(x,y)" for reports and logs.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// less orders points lexicographically (X first, then Y). Used to store
// crease endpoints canonically so the unordered-pair identity is structural.
func (p Point) less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}

	return p.Y < q.Y
}

// CreaseType tags the fold direction of a crease. The zero value is
// Unassigned. The set is closed: every consumer switches exhaustively
// over these four cases and rejects anything else.
type CreaseType uint8

const (
	// Unassigned marks a crease whose fold direction is not yet decided.
	Unassigned CreaseType = iota
	// Mountain folds away from the viewer.
	Mountain
	// Valley folds toward the viewer.
	Valley
	// Border marks the outer boundary of the paper; it is excluded from
	// foldability arithmetic.
	Border
)

// Valid reports whether t is one of the four named cases.
func (t CreaseType) Valid() bool {
	switch t {
	case Unassigned, Mountain, Valley, Border:
		return true
	default:
		return false
	}
}

// String returns the lower-case name of the crease type, or "invalid"
// for values outside the closed set.
func (t CreaseType) String() string {
	switch t {
	case Unassigned:
		return "unassigned"
	case Mountain:
		return "mountain"
	case Valley:
		return "valley"
	case Border:
		return "border"
	default:
		return "invalid"
	}
}

// Crease is an unordered pair of distinct grid Points plus a CreaseType.
// Endpoints are stored canonically (P1 lexicographically before P2), so
// two Crease values spanning the same segment compare equal on endpoints
// regardless of the order they were given in.
type Crease struct {
	P1, P2 Point
	Type   CreaseType
}

// NewCrease builds a Crease with canonical endpoint order. It does not
// validate geometry; Pattern.AddCrease does.
func NewCrease(p1, p2 Point, t CreaseType) Crease {
	if p2.less(p1) {
		p1, p2 = p2, p1
	}

	return Crease{P1: p1, P2: p2, Type: t}
}

// Has reports whether p is one of the crease's endpoints.
func (c Crease) Has(p Point) bool {
	return c.P1 == p || c.P2 == p
}

// Other returns the endpoint opposite p. ok is false when p is not an
// endpoint of the crease.
func (c Crease) Other(p Point) (other Point, ok bool) {
	switch p {
	case c.P1:
		return c.P2, true
	case c.P2:
		return c.P1, true
	default:
		return Point{}, false
	}
}

// String renders the crease as "(x1,y1)-(x2,y2) type".
func (c Crease) String() string {
	return fmt.Sprintf("%s-%s %s", c.P1, c.P2, c.Type)
}

// Octants: the eight legal box-pleating directions at 45-degree
// increments, counted counterclockwise from east. Every legal crease
// leaves a vertex along exactly one of them, so angles around a vertex
// are exact multiples of DegreesPerOctant and never need floats.
const (
	// Octants is the number of legal directions around a vertex.
	Octants = 8
	// DegreesPerOctant is the angular step between adjacent octants.
	DegreesPerOctant = 45
)

// OctantFrom returns the direction octant (0..7, counterclockwise from
// east) of the crease as seen from endpoint v. ok is false when v is not
// an endpoint. The mapping assumes the crease passed AddCrease legality:
// a direction outside the eight octants cannot occur for a stored crease.
func (c Crease) OctantFrom(v Point) (octant int, ok bool) {
	other, ok := c.Other(v)
	if !ok {
		return 0, false
	}

	return octantOf(sign(other.X-v.X), sign(other.Y-v.Y)), true
}

// octantOf maps a normalized direction (sx,sy) in {-1,0,1}^2 \ {(0,0)}
// to its octant index. Callers guarantee the pair is one of the eight
// legal combinations.
func octantOf(sx, sy int) int {
	switch {
	case sx == 1 && sy == 0:
		return 0
	case sx == 1 && sy == 1:
		return 1
	case sx == 0 && sy == 1:
		return 2
	case sx == -1 && sy == 1:
		return 3
	case sx == -1 && sy == 0:
		return 4
	case sx == -1 && sy == -1:
		return 5
	case sx == 0 && sy == -1:
		return 6
	default: // sx == 1 && sy == -1
		return 7
	}
}

// sign returns -1, 0, or 1 according to the sign of v.
func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
