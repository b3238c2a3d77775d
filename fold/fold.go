// File: fold.go
// Role: Pattern <-> Document translation and the Save/Load file entry
//       points.
package fold

import (
	"fmt"
	"os"

	"github.com/foldkit/boxpleat/pattern"
)

// FromPattern flattens pt into a FOLD document. Vertices appear in
// first-seen order, edges in insertion order, so equal patterns always
// produce byte-identical documents. The declared grid size is recorded
// under boxpleat:grid_size.
func FromPattern(pt *pattern.Pattern, opts ...Option) *Document {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	vertices := pt.Vertices()
	index := make(map[pattern.Point]int, len(vertices))
	coords := make([][]float64, len(vertices))
	for i, v := range vertices {
		index[v] = i
		coords[i] = []float64{float64(v.X), float64(v.Y)}
	}

	creases := pt.Creases()
	edges := make([][]int, len(creases))
	assigns := make([]string, len(creases))
	for i, c := range creases {
		edges[i] = []int{index[c.P1], index[c.P2]}
		assigns[i] = assignmentOf(c.Type)
	}

	return &Document{
		Spec:         SpecVersion,
		Creator:      cfg.creator,
		FrameTitle:   cfg.title,
		FrameClasses: []string{FrameClassCreasePattern},
		Vertices:     coords,
		Edges:        edges,
		Assignments:  assigns,
		GridSize:     pt.Size(),
	}
}

// ToPattern rebuilds a Pattern from the document, re-running the full
// AddCrease legality pipeline on every edge so foreign geometry cannot
// bypass the model's invariants.
//
// Grid size comes from boxpleat:grid_size when present, otherwise from
// the maximum coordinate (minimum 1, so an empty document still yields
// a usable pattern).
func (d *Document) ToPattern(opts ...Option) (*pattern.Pattern, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}

	// 1. Resolve the grid size.
	size := d.GridSize
	if size == 0 {
		for _, row := range d.Vertices {
			for _, v := range row {
				if c := int(v); c > size {
					size = c
				}
			}
		}
		if size < 1 {
			size = 1
		}
	}

	pt, err := pattern.New(size, pattern.WithLogger(cfg.log))
	if err != nil {
		return nil, err
	}

	// 2. Replay every edge through AddCrease; failures carry the
	//    offending edge index.
	for i, e := range d.Edges {
		p1 := pattern.Point{X: int(d.Vertices[e[0]][0]), Y: int(d.Vertices[e[0]][1])}
		p2 := pattern.Point{X: int(d.Vertices[e[1]][0]), Y: int(d.Vertices[e[1]][1])}
		ct, _ := typeOf(d.Assignments[i])
		if err = pt.AddCrease(p1, p2, ct); err != nil {
			return nil, fmt.Errorf("fold: edge %d: %w", i, err)
		}
	}
	cfg.log.Debug("document converted", "size", size, "creases", pt.CreaseCount())

	return pt, nil
}

// Save exports pt to path as an indented FOLD file, truncating any
// existing file. Filesystem failures wrap the underlying *os.PathError.
func Save(pt *pattern.Pattern, path string, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("fold: save: %w", err)
	}
	if err = Encode(f, FromPattern(pt, opts...)); err != nil {
		f.Close()

		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("fold: save: %w", err)
	}

	return nil
}

// Load reads the FOLD file at path and rebuilds its Pattern. Filesystem
// failures wrap the underlying *os.PathError; document failures follow
// the Decode and ToPattern contracts.
func Load(path string, opts ...Option) (*pattern.Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fold: load: %w", err)
	}
	defer f.Close()

	d, err := Decode(f)
	if err != nil {
		return nil, err
	}

	return d.ToPattern(opts...)
}
