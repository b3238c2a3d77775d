// File: pattern/example_test.go
package pattern_test

import (
	"fmt"

	"github.com/foldkit/boxpleat/pattern"
)

// ExamplePattern demonstrates building a small crease pattern and
// enumerating it deterministically.
// Scenario:
//
//   - 4x4 grid, two creases sharing the vertex (2,2).
//   - Creases() replays insertion order with canonical endpoints.
//
// Complexity: O(1) per AddCrease, Memory: O(C+V)
func ExamplePattern() {
	pt, _ := pattern.New(4)
	_ = pt.AddCrease(pattern.Point{X: 0, Y: 0}, pattern.Point{X: 2, Y: 2}, pattern.Mountain)
	_ = pt.AddCrease(pattern.Point{X: 2, Y: 2}, pattern.Point{X: 4, Y: 2}, pattern.Valley)

	for _, c := range pt.Creases() {
		fmt.Println(c)
	}
	fmt.Println(pt)

	// Output:
	// (0,0)-(2,2) mountain
	// (2,2)-(4,2) valley
	// Pattern{size=4 creases=2 vertices=3}
}

// ExamplePattern_CreasesAt demonstrates the counterclockwise-from-east
// angular view of a vertex, the order foldability checks walk creases in.
// Scenario:
//
//   - Three creases meet at (2,2): east, north, southwest.
//   - Insertion order is scrambled; CreasesAt sorts by direction octant.
func ExamplePattern_CreasesAt() {
	pt, _ := pattern.New(4)
	center := pattern.Point{X: 2, Y: 2}
	_ = pt.AddCrease(center, pattern.Point{X: 1, Y: 1}, pattern.Valley)
	_ = pt.AddCrease(center, pattern.Point{X: 3, Y: 2}, pattern.Mountain)
	_ = pt.AddCrease(center, pattern.Point{X: 2, Y: 3}, pattern.Mountain)

	creases, _ := pt.CreasesAt(center)
	for _, c := range creases {
		other, _ := c.Other(center)
		fmt.Println(other, c.Type)
	}

	// Output:
	// (3,2) mountain
	// (2,3) mountain
	// (1,1) valley
}
