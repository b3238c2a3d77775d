// File: tessellation.go
// Role: The Tessellation template: every unit segment of the grid,
//       border on the perimeter and alternating types inside.
package gen

import (
	"fmt"

	"github.com/foldkit/boxpleat/pattern"
)

// Tessellation returns a template that creases every unit segment of
// the grid: all horizontals row by row, then all verticals column by
// column. Segments on the paper edge become borders; interior segments
// are typed mountain or valley by the parity of x+y at their lower-left
// endpoint.
//
// The result is a dense pattern of 2*n*(n+1) creases. It is a stress
// and demo fixture, not a foldable design: every interior vertex
// carries two mountains and two valleys, which fails the mountain
// excess condition on purpose. Composes with Frame, whose segments it
// re-adds as identical borders.
func Tessellation() Template {
	return func(pt *pattern.Pattern) error {
		n := pt.Size()

		typeAt := func(x, y int) pattern.CreaseType {
			if (x+y)%2 == 0 {
				return pattern.Mountain
			}

			return pattern.Valley
		}

		for y := 0; y <= n; y++ {
			for x := 0; x < n; x++ {
				p1 := pattern.Point{X: x, Y: y}
				p2 := pattern.Point{X: x + 1, Y: y}
				t := typeAt(x, y)
				if y == 0 || y == n {
					t = pattern.Border
				}
				if err := pt.AddCrease(p1, p2, t); err != nil {
					return fmt.Errorf("tessellation: %s-%s: %w", p1, p2, err)
				}
			}
		}
		for x := 0; x <= n; x++ {
			for y := 0; y < n; y++ {
				p1 := pattern.Point{X: x, Y: y}
				p2 := pattern.Point{X: x, Y: y + 1}
				t := typeAt(x, y)
				if x == 0 || x == n {
					t = pattern.Border
				}
				if err := pt.AddCrease(p1, p2, t); err != nil {
					return fmt.Errorf("tessellation: %s-%s: %w", p1, p2, err)
				}
			}
		}

		return nil
	}
}
