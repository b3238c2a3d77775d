// File: fold/example_test.go
package fold_test

import (
	"fmt"
	"os"

	"github.com/foldkit/boxpleat/fold"
	"github.com/foldkit/boxpleat/pattern"
)

// ExampleFromPattern demonstrates flattening a pattern into the FOLD
// field layout: vertices in first-seen order, edges in insertion order.
func ExampleFromPattern() {
	pt, _ := pattern.New(4)
	_ = pt.AddCrease(pattern.Point{X: 0, Y: 0}, pattern.Point{X: 2, Y: 2}, pattern.Mountain)
	_ = pt.AddCrease(pattern.Point{X: 2, Y: 2}, pattern.Point{X: 4, Y: 2}, pattern.Valley)

	d := fold.FromPattern(pt, fold.WithFrameTitle("demo"))
	fmt.Println("spec:", d.Spec)
	fmt.Println("title:", d.FrameTitle)
	fmt.Println("vertices:", d.Vertices)
	fmt.Println("edges:", d.Edges)
	fmt.Println("assignments:", d.Assignments)
	fmt.Println("grid size:", d.GridSize)

	// Output:
	// spec: 1.1
	// title: demo
	// vertices: [[0 0] [2 2] [4 2]]
	// edges: [[0 1] [1 2]]
	// assignments: [M V]
	// grid size: 4
}

// ExampleEncode demonstrates the exact wire format for a one-crease
// pattern, including the namespaced grid-size extension.
func ExampleEncode() {
	pt, _ := pattern.New(2)
	_ = pt.AddCrease(pattern.Point{X: 0, Y: 0}, pattern.Point{X: 2, Y: 2}, pattern.Mountain)

	_ = fold.Encode(os.Stdout, fold.FromPattern(pt))

	// Output:
	// {
	//   "file_spec": 1.1,
	//   "file_creator": "boxpleat",
	//   "frame_classes": [
	//     "creasePattern"
	//   ],
	//   "vertices_coords": [
	//     [
	//       0,
	//       0
	//     ],
	//     [
	//       2,
	//       2
	//     ]
	//   ],
	//   "edges_vertices": [
	//     [
	//       0,
	//       1
	//     ]
	//   ],
	//   "edges_assignment": [
	//     "M"
	//   ],
	//   "boxpleat:grid_size": 2
	// }
}
