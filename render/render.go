// File: render.go
// Role: gg-based rasterization: projection, per-type crease styling,
//       vertex dots, report overlay, coordinate labels.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/foldkit/boxpleat/foldability"
	"github.com/foldkit/boxpleat/pattern"
)

// ErrNilPattern is returned when the pattern to render is nil.
var ErrNilPattern = errors.New("render: nil pattern")

const (
	dotRadius = 3.5 // vertex marker radius in pixels
	minLabel  = 10  // floor for the label font size in points
)

// Option tweaks a render.
type Option func(*config)

// WithCellSize sets the pixels per grid unit. Default 64.
func WithCellSize(px float64) Option {
	return func(c *config) {
		if px > 0 {
			c.cell = px
		}
	}
}

// WithMargin sets the pixel margin around the grid. Default 32.
func WithMargin(px float64) Option {
	return func(c *config) {
		if px >= 0 {
			c.margin = px
		}
	}
}

// WithLabels draws each vertex's coordinates above its dot.
func WithLabels() Option {
	return func(c *config) { c.labels = true }
}

// WithoutGrid suppresses the faint unit gridlines.
func WithoutGrid() Option {
	return func(c *config) { c.grid = false }
}

// WithReport overlays a foldability verdict: violating vertices are
// ringed red, incomplete vertices amber.
func WithReport(rep *foldability.Report) Option {
	return func(c *config) { c.report = rep }
}

// WithLogger routes render debug output to l.
func WithLogger(l pattern.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

type config struct {
	cell   float64
	margin float64
	labels bool
	grid   bool
	report *foldability.Report
	log    pattern.Logger
}

func defaultConfig() config {
	return config{cell: 64, margin: 32, grid: true, log: pattern.Nop()}
}

// Image renders pt into an in-memory raster.
func Image(pt *pattern.Pattern, opts ...Option) (image.Image, error) {
	dc, err := draw(pt, opts...)
	if err != nil {
		return nil, err
	}

	return dc.Image(), nil
}

// PNG renders pt straight to the file at path.
func PNG(pt *pattern.Pattern, path string, opts ...Option) error {
	dc, err := draw(pt, opts...)
	if err != nil {
		return err
	}
	if err = dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save: %w", err)
	}

	return nil
}

// draw runs the full pipeline and returns the drawing context.
func draw(pt *pattern.Pattern, opts ...Option) (*gg.Context, error) {
	if pt == nil {
		return nil, ErrNilPattern
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	size := pt.Size()
	side := int(cfg.cell*float64(size) + 2*cfg.margin)
	dc := gg.NewContext(side, side)

	// Projection: grid y grows upward, raster y grows downward.
	px := func(x int) float64 { return cfg.margin + float64(x)*cfg.cell }
	py := func(y int) float64 { return cfg.margin + float64(size-y)*cfg.cell }

	// 1. Paper.
	dc.SetColor(color.White)
	dc.Clear()

	// 2. Unit gridlines.
	if cfg.grid {
		dc.SetRGB(0.88, 0.88, 0.88)
		dc.SetLineWidth(1)
		for i := 0; i <= size; i++ {
			dc.DrawLine(px(i), py(0), px(i), py(size))
			dc.Stroke()
			dc.DrawLine(px(0), py(i), px(size), py(i))
			dc.Stroke()
		}
	}

	// 3. Creases in insertion order, styled by type. The dash state is
	//    reset after each stroke so valleys never leak their pattern.
	for _, c := range pt.Creases() {
		applyStyle(dc, c.Type, cfg.cell)
		dc.DrawLine(px(c.P1.X), py(c.P1.Y), px(c.P2.X), py(c.P2.Y))
		dc.Stroke()
		dc.SetDash()
	}

	// 4. Vertex dots.
	dc.SetRGB(0.15, 0.15, 0.15)
	for _, v := range pt.Vertices() {
		dc.DrawCircle(px(v.X), py(v.Y), dotRadius)
		dc.Fill()
	}

	// 5. Verdict overlay.
	if cfg.report != nil {
		ring := cfg.cell / 3
		dc.SetLineWidth(3)
		dc.SetRGB(0.85, 0.10, 0.10)
		for _, v := range cfg.report.Violations {
			dc.DrawCircle(px(v.Vertex.X), py(v.Vertex.Y), ring)
			dc.Stroke()
		}
		dc.SetRGB(0.95, 0.60, 0.05)
		for _, p := range cfg.report.Incomplete {
			dc.DrawCircle(px(p.X), py(p.Y), ring)
			dc.Stroke()
		}
	}

	// 6. Coordinate labels.
	if cfg.labels {
		if err := setFace(dc, cfg.cell); err != nil {
			return nil, err
		}
		dc.SetRGB(0.30, 0.30, 0.30)
		for _, v := range pt.Vertices() {
			dc.DrawStringAnchored(v.String(), px(v.X), py(v.Y)-dotRadius*2, 0.5, 1)
		}
	}
	cfg.log.Debug("pattern rendered", "size", size, "side_px", side, "creases", pt.CreaseCount())

	return dc, nil
}

// applyStyle sets stroke color, width and dash for one crease type.
func applyStyle(dc *gg.Context, t pattern.CreaseType, cell float64) {
	switch t {
	case pattern.Mountain:
		dc.SetRGB(0.80, 0.10, 0.10)
		dc.SetLineWidth(3)
	case pattern.Valley:
		dc.SetRGB(0.10, 0.25, 0.80)
		dc.SetLineWidth(3)
		dc.SetDash(cell/8, cell/10)
	case pattern.Border:
		dc.SetRGB(0, 0, 0)
		dc.SetLineWidth(5)
	default:
		dc.SetRGB(0.55, 0.55, 0.55)
		dc.SetLineWidth(2)
	}
}

// setFace loads the bundled monospace face sized relative to the cell.
func setFace(dc *gg.Context, cell float64) error {
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("render: font: %w", err)
	}
	size := cell / 4
	if size < minLabel {
		size = minLabel
	}
	dc.SetFontFace(truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	return nil
}
