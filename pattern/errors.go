package pattern

import (
	"errors"
	"fmt"
)

// ErrGeometry is the umbrella sentinel for every geometric legality
// failure. The specific sentinels below wrap it, so callers may match
// either the class (errors.Is(err, ErrGeometry)) or the exact cause.
var ErrGeometry = errors.New("pattern: illegal geometry")

var (
	// ErrOutOfBounds indicates a coordinate outside [0,Size]x[0,Size].
	ErrOutOfBounds = fmt.Errorf("%w: point outside grid bounds", ErrGeometry)
	// ErrZeroLength indicates a crease whose endpoints coincide.
	ErrZeroLength = fmt.Errorf("%w: zero-length crease", ErrGeometry)
	// ErrDirection indicates a crease that is neither axis-aligned nor a
	// 45-degree diagonal.
	ErrDirection = fmt.Errorf("%w: crease must be horizontal, vertical, or 45-degree diagonal", ErrGeometry)
	// ErrAngleCollision indicates two creases leaving one vertex in the
	// same octant; angle ordering is undefined there.
	ErrAngleCollision = fmt.Errorf("%w: two creases share a direction at a vertex", ErrGeometry)
)

var (
	// ErrGridSize indicates a non-positive grid size passed to New.
	ErrGridSize = errors.New("pattern: grid size must be at least 1")
	// ErrUnknownCreaseType indicates a CreaseType outside the four named cases.
	ErrUnknownCreaseType = errors.New("pattern: unknown crease type")
	// ErrDuplicateCrease indicates re-adding an existing endpoint pair with
	// a conflicting type via AddCrease.
	ErrDuplicateCrease = errors.New("pattern: crease already exists with a different type")
	// ErrCreaseNotFound indicates an operation referenced a non-existent crease.
	ErrCreaseNotFound = errors.New("pattern: crease not found")
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("pattern: vertex not found")
)
