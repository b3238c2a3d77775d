// File: frame.go
// Role: The Frame template: border creases around the paper edge,
//       segmented per grid unit.
package gen

import (
	"fmt"

	"github.com/foldkit/boxpleat/pattern"
)

// Frame returns a template that walks the paper edge counterclockwise
// from the origin and emits one border crease per grid unit: bottom,
// right, top, then left side.
//
// Per-unit segmentation keeps every lattice point on the edge available
// as a real vertex, so creases ending there are recognized as boundary
// and exempt from the interior foldability conditions.
func Frame() Template {
	return func(pt *pattern.Pattern) error {
		n := pt.Size()

		add := func(p1, p2 pattern.Point) error {
			if err := pt.AddCrease(p1, p2, pattern.Border); err != nil {
				return fmt.Errorf("frame: %s-%s: %w", p1, p2, err)
			}

			return nil
		}

		for i := 0; i < n; i++ {
			if err := add(pattern.Point{X: i, Y: 0}, pattern.Point{X: i + 1, Y: 0}); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			if err := add(pattern.Point{X: n, Y: i}, pattern.Point{X: n, Y: i + 1}); err != nil {
				return err
			}
		}
		for i := n; i > 0; i-- {
			if err := add(pattern.Point{X: i, Y: n}, pattern.Point{X: i - 1, Y: n}); err != nil {
				return err
			}
		}
		for i := n; i > 0; i-- {
			if err := add(pattern.Point{X: 0, Y: i}, pattern.Point{X: 0, Y: i - 1}); err != nil {
				return err
			}
		}

		return nil
	}
}
