// File: waterbomb.go
// Role: The Waterbomb template: a centered, flat-foldable waterbomb
//       cell spanning the whole sheet.
package gen

import (
	"fmt"

	"github.com/foldkit/boxpleat/pattern"
)

// Waterbomb returns a template that creases a flat-foldable waterbomb
// cell around the sheet's center: the four full diagonals as mountains
// and the vertical axis as two valley spokes.
//
// At the center that gives six creases with mountain excess two and
// equal alternating angle sums, so the cell passes both interior
// conditions on its own. The grid size must be even (the center must
// be a lattice point) and at least 2.
//
// Emission order: diagonals counterclockwise from the origin corner,
// then the north and south valleys.
func Waterbomb() Template {
	return func(pt *pattern.Pattern) error {
		n := pt.Size()
		if n < 2 {
			return fmt.Errorf("waterbomb: size %d: %w", n, ErrSizeTooSmall)
		}
		if n%2 != 0 {
			return fmt.Errorf("waterbomb: size %d: %w", n, ErrOddSize)
		}

		c := n / 2
		center := pattern.Point{X: c, Y: c}
		mountains := []pattern.Point{
			{X: 0, Y: 0}, {X: n, Y: 0}, {X: n, Y: n}, {X: 0, Y: n},
		}
		for _, corner := range mountains {
			if err := pt.AddCrease(center, corner, pattern.Mountain); err != nil {
				return fmt.Errorf("waterbomb: %s-%s: %w", center, corner, err)
			}
		}

		valleys := []pattern.Point{{X: c, Y: n}, {X: c, Y: 0}}
		for _, end := range valleys {
			if err := pt.AddCrease(center, end, pattern.Valley); err != nil {
				return fmt.Errorf("waterbomb: %s-%s: %w", center, end, err)
			}
		}

		return nil
	}
}
