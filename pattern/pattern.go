// File: pattern.go
// Role: The Pattern container itself: construction, crease mutation,
//       deterministic queries, and the octant-sorted vertex view that
//       foldability checks consume.
package pattern

import (
	"fmt"
	"sort"
)

// pairKey is the canonical identity of an unordered endpoint pair:
// a is lexicographically before b. Built only through keyOf.
type pairKey struct {
	a, b Point
}

// keyOf canonicalizes two endpoints into a pairKey.
func keyOf(p1, p2 Point) pairKey {
	if p2.less(p1) {
		p1, p2 = p2, p1
	}

	return pairKey{a: p1, b: p2}
}

// crease materializes the stored Crease for a live key.
func (pt *Pattern) crease(k pairKey) Crease {
	return Crease{P1: k.a, P2: k.b, Type: pt.creases[k]}
}

// Pattern is a box-pleating crease pattern on an integer grid of the
// given size: endpoints range over [0,size] on both axes, and every
// crease is horizontal, vertical, or 45-degree diagonal.
//
// Storage is a map arena keyed by canonical endpoint pairs plus
// insertion-order indexes, so lookups are O(1) and every enumeration
// (Creases, Vertices, CreasesAt) is deterministic across runs.
//
// Pattern is not safe for concurrent use.
type Pattern struct {
	size int

	creases  map[pairKey]CreaseType // live creases by canonical endpoints
	order    []pairKey              // crease insertion order
	incident map[Point][]pairKey    // per-vertex incident creases, insertion order
	vertices []Point                // vertex first-seen order

	log Logger
}

// Option tweaks a Pattern at construction time.
type Option func(*Pattern)

// WithLogger routes the pattern's debug output to l. The default
// discards everything.
func WithLogger(l Logger) Option {
	return func(pt *Pattern) {
		if l != nil {
			pt.log = l
		}
	}
}

// New creates an empty Pattern on a size x size grid.
// Returns ErrGridSize when size < 1.
func New(size int, opts ...Option) (*Pattern, error) {
	if size < 1 {
		return nil, ErrGridSize
	}

	pt := &Pattern{
		size:     size,
		creases:  make(map[pairKey]CreaseType),
		incident: make(map[Point][]pairKey),
		log:      Nop(),
	}
	for _, opt := range opts {
		opt(pt)
	}

	return pt, nil
}

// Size returns the grid size the pattern was created with.
func (pt *Pattern) Size() int {
	return pt.size
}

// inBounds reports whether p lies on the grid, boundary included.
func (pt *Pattern) inBounds(p Point) bool {
	return p.X >= 0 && p.X <= pt.size && p.Y >= 0 && p.Y <= pt.size
}

// legalDirection reports whether the segment p1-p2 is horizontal,
// vertical, or 45-degree diagonal.
func legalDirection(p1, p2 Point) bool {
	dx, dy := p2.X-p1.X, p2.Y-p1.Y

	return dx == 0 || dy == 0 || abs(dx) == abs(dy)
}

// AddCrease inserts the crease p1-p2 with type t.
//
// Checks run in a fixed order and the first failure wins:
//  1. t must be a known CreaseType         -> ErrUnknownCreaseType
//  2. p1 != p2                             -> ErrZeroLength
//  3. both endpoints on the grid           -> ErrOutOfBounds
//  4. axis-aligned or 45-degree direction  -> ErrDirection
//  5. no conflicting duplicate             -> ErrDuplicateCrease
//
// Re-adding an identical crease (same endpoints, same type) is a no-op.
func (pt *Pattern) AddCrease(p1, p2 Point, t CreaseType) error {
	// 1. Closed-set type check.
	if !t.Valid() {
		return ErrUnknownCreaseType
	}
	// 2. Degenerate segment.
	if p1 == p2 {
		return ErrZeroLength
	}
	// 3. Grid bounds.
	if !pt.inBounds(p1) || !pt.inBounds(p2) {
		return ErrOutOfBounds
	}
	// 4. Box-pleating direction.
	if !legalDirection(p1, p2) {
		return ErrDirection
	}
	// 5. Duplicate handling: same type is idempotent, different type is
	//    a conflict the caller must resolve explicitly.
	k := keyOf(p1, p2)
	if existing, ok := pt.creases[k]; ok {
		if existing == t {
			return nil
		}

		return ErrDuplicateCrease
	}

	// 6. Commit: arena entry plus every index.
	pt.creases[k] = t
	pt.order = append(pt.order, k)
	pt.attach(k.a, k)
	pt.attach(k.b, k)
	pt.log.Debug("crease added", "p1", p1, "p2", p2, "type", t)

	return nil
}

// attach registers k on v's incidence list, tracking first-seen vertex
// order as a side effect.
func (pt *Pattern) attach(v Point, k pairKey) {
	if _, seen := pt.incident[v]; !seen {
		pt.vertices = append(pt.vertices, v)
	}
	pt.incident[v] = append(pt.incident[v], k)
}

// SetCreaseType reassigns the type of an existing crease in place.
// Insertion order and incidence are untouched. Returns
// ErrUnknownCreaseType for an invalid type and ErrCreaseNotFound when
// no crease spans p1-p2.
func (pt *Pattern) SetCreaseType(p1, p2 Point, t CreaseType) error {
	if !t.Valid() {
		return ErrUnknownCreaseType
	}
	k := keyOf(p1, p2)
	if _, ok := pt.creases[k]; !ok {
		return ErrCreaseNotFound
	}

	pt.creases[k] = t
	pt.log.Debug("crease retyped", "p1", p1, "p2", p2, "type", t)

	return nil
}

// RemoveCrease deletes the crease spanning p1-p2. Vertices that lose
// their last incident crease disappear from the vertex set. Returns
// ErrCreaseNotFound when no such crease exists.
//
// Removal is O(C) in the number of stored creases: the insertion-order
// index is spliced, not rebuilt.
func (pt *Pattern) RemoveCrease(p1, p2 Point) error {
	k := keyOf(p1, p2)
	if _, ok := pt.creases[k]; !ok {
		return ErrCreaseNotFound
	}

	delete(pt.creases, k)
	pt.order = spliceKey(pt.order, k)
	pt.detach(k.a, k)
	pt.detach(k.b, k)
	pt.log.Debug("crease removed", "p1", p1, "p2", p2)

	return nil
}

// detach removes k from v's incidence list and drops v entirely when
// the list empties.
func (pt *Pattern) detach(v Point, k pairKey) {
	rest := spliceKey(pt.incident[v], k)
	if len(rest) == 0 {
		delete(pt.incident, v)
		for i, u := range pt.vertices {
			if u == v {
				pt.vertices = append(pt.vertices[:i], pt.vertices[i+1:]...)

				break
			}
		}

		return
	}
	pt.incident[v] = rest
}

// spliceKey removes the first occurrence of k from keys, preserving order.
func spliceKey(keys []pairKey, k pairKey) []pairKey {
	for i, kk := range keys {
		if kk == k {
			return append(keys[:i], keys[i+1:]...)
		}
	}

	return keys
}

// Crease returns the stored crease spanning p1-p2 in canonical endpoint
// order. ok is false when no such crease exists.
func (pt *Pattern) Crease(p1, p2 Point) (c Crease, ok bool) {
	k := keyOf(p1, p2)
	if _, ok = pt.creases[k]; !ok {
		return Crease{}, false
	}

	return pt.crease(k), true
}

// Creases returns every crease in insertion order. The slice is a copy.
func (pt *Pattern) Creases() []Crease {
	out := make([]Crease, len(pt.order))
	for i, k := range pt.order {
		out[i] = pt.crease(k)
	}

	return out
}

// CreaseCount returns the number of stored creases.
func (pt *Pattern) CreaseCount() int {
	return len(pt.creases)
}

// Vertices returns every vertex that has at least one incident crease,
// in first-seen order. The slice is a copy.
func (pt *Pattern) Vertices() []Point {
	out := make([]Point, len(pt.vertices))
	copy(out, pt.vertices)

	return out
}

// VertexCount returns the number of live vertices.
func (pt *Pattern) VertexCount() int {
	return len(pt.vertices)
}

// HasVertex reports whether v has at least one incident crease.
func (pt *Pattern) HasVertex(v Point) bool {
	_, ok := pt.incident[v]

	return ok
}

// Degree returns the number of creases incident to v, 0 when v is not
// a vertex of the pattern.
func (pt *Pattern) Degree(v Point) int {
	return len(pt.incident[v])
}

// CreasesAt returns the creases incident to v sorted counterclockwise
// by direction octant, the order foldability arithmetic walks them in.
//
// Returns ErrVertexNotFound when v has no incident creases, and an
// error wrapping ErrAngleCollision when two incident creases leave v
// along the same octant (collinear overlap: the angle sequence around v
// is no longer well defined).
func (pt *Pattern) CreasesAt(v Point) ([]Crease, error) {
	keys, ok := pt.incident[v]
	if !ok {
		return nil, ErrVertexNotFound
	}

	// 1. Materialize and bucket by octant, catching collisions.
	var taken [Octants]bool
	out := make([]Crease, len(keys))
	for i, k := range keys {
		c := pt.crease(k)
		oct, _ := c.OctantFrom(v)
		if taken[oct] {
			return nil, fmt.Errorf("at %s: %w", v, ErrAngleCollision)
		}
		taken[oct] = true
		out[i] = c
	}

	// 2. Octants are distinct, so the sort order is total.
	sort.Slice(out, func(i, j int) bool {
		oi, _ := out[i].OctantFrom(v)
		oj, _ := out[j].OctantFrom(v)

		return oi < oj
	})

	return out, nil
}

// IsBoundaryVertex reports whether v has at least one incident Border
// crease. Boundary vertices are exempt from foldability conditions.
func (pt *Pattern) IsBoundaryVertex(v Point) bool {
	for _, k := range pt.incident[v] {
		if pt.creases[k] == Border {
			return true
		}
	}

	return false
}

// Clone returns a deep copy of the pattern: mutating the clone never
// touches the original. The logger is shared.
func (pt *Pattern) Clone() *Pattern {
	cp := &Pattern{
		size:     pt.size,
		creases:  make(map[pairKey]CreaseType, len(pt.creases)),
		order:    make([]pairKey, len(pt.order)),
		incident: make(map[Point][]pairKey, len(pt.incident)),
		vertices: make([]Point, len(pt.vertices)),
		log:      pt.log,
	}
	for k, t := range pt.creases {
		cp.creases[k] = t
	}
	copy(cp.order, pt.order)
	for v, keys := range pt.incident {
		cp.incident[v] = append([]pairKey(nil), keys...)
	}
	copy(cp.vertices, pt.vertices)

	return cp
}

// String renders a compact one-line summary for logs and debugging.
func (pt *Pattern) String() string {
	return fmt.Sprintf("Pattern{size=%d creases=%d vertices=%d}",
		pt.size, len(pt.creases), len(pt.vertices))
}

// abs returns the absolute value of v.
func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
