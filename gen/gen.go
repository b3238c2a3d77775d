// File: gen.go
// Role: The Template type, its sentinel errors, and the Apply/Build
//       entry points that run templates in order.
package gen

import (
	"errors"
	"fmt"

	"github.com/foldkit/boxpleat/pattern"
)

var (
	// ErrSizeTooSmall is returned when the grid cannot hold the template.
	ErrSizeTooSmall = errors.New("gen: grid too small for template")
	// ErrOddSize is returned when a centered template needs an even grid.
	ErrOddSize = errors.New("gen: template needs an even grid size")
	// ErrNilTemplate is returned by Apply and Build for a nil template.
	ErrNilTemplate = errors.New("gen: nil template")
)

// Template applies one deterministic batch of creases to a pattern.
// Implementations validate their parameters against the pattern's size
// before touching it and emit creases in a documented, stable order.
type Template func(pt *pattern.Pattern) error

// Apply runs the templates against pt in order. The first error stops
// the run; earlier templates' creases stay in place.
func Apply(pt *pattern.Pattern, templates ...Template) error {
	for i, tpl := range templates {
		if tpl == nil {
			return fmt.Errorf("template %d: %w", i, ErrNilTemplate)
		}
		if err := tpl(pt); err != nil {
			return err
		}
	}

	return nil
}

// Build creates a size-unit pattern and applies the templates in order.
func Build(size int, templates ...Template) (*pattern.Pattern, error) {
	pt, err := pattern.New(size)
	if err != nil {
		return nil, fmt.Errorf("gen: %w", err)
	}
	if err := Apply(pt, templates...); err != nil {
		return nil, err
	}

	return pt, nil
}
