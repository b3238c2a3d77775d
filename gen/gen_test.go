package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foldkit/boxpleat/foldability"
	"github.com/foldkit/boxpleat/gen"
	"github.com/foldkit/boxpleat/pattern"
)

func pp(x, y int) pattern.Point { return pattern.Point{X: x, Y: y} }

func TestFrame_SegmentsAndBoundary(t *testing.T) {
	pt, err := gen.Build(4, gen.Frame())
	require.NoError(t, err)

	assert.Equal(t, 16, pt.CreaseCount(), "one border crease per edge unit")
	for _, c := range pt.Creases() {
		assert.Equal(t, pattern.Border, c.Type)
	}
	for _, v := range []pattern.Point{pp(0, 0), pp(4, 0), pp(2, 4), pp(0, 3)} {
		assert.True(t, pt.IsBoundaryVertex(v), "vertex %s", v)
	}
}

func TestFrame_Reapply(t *testing.T) {
	pt, err := gen.Build(3, gen.Frame())
	require.NoError(t, err)

	require.NoError(t, gen.Apply(pt, gen.Frame()))
	assert.Equal(t, 12, pt.CreaseCount(), "identical re-adds collapse")
}

func TestWaterbomb_FlatFoldable(t *testing.T) {
	pt, err := gen.Build(8, gen.Frame(), gen.Waterbomb())
	require.NoError(t, err)

	rep, err := foldability.Validate(pt)
	require.NoError(t, err)
	assert.True(t, rep.Valid, rep.Summary())

	assert.Equal(t, 6, pt.Degree(pp(4, 4)))
}

func TestWaterbomb_SizeValidation(t *testing.T) {
	_, err := gen.Build(1, gen.Waterbomb())
	assert.ErrorIs(t, err, gen.ErrSizeTooSmall)

	_, err = gen.Build(5, gen.Waterbomb())
	assert.ErrorIs(t, err, gen.ErrOddSize)
}

func TestWaterbomb_ConflictSurfaces(t *testing.T) {
	pt, err := pattern.New(4)
	require.NoError(t, err)
	// The template wants this crease as a valley.
	require.NoError(t, pt.AddCrease(pp(2, 2), pp(2, 4), pattern.Mountain))

	err = gen.Apply(pt, gen.Waterbomb())
	assert.ErrorIs(t, err, pattern.ErrDuplicateCrease)
}

func TestTessellation_DenseAndInvalid(t *testing.T) {
	pt, err := gen.Build(4, gen.Tessellation())
	require.NoError(t, err)

	assert.Equal(t, 2*4*5, pt.CreaseCount())

	// Perimeter units are borders, interior units alternate by parity.
	edge, ok := pt.Crease(pp(0, 0), pp(1, 0))
	require.True(t, ok)
	assert.Equal(t, pattern.Border, edge.Type)
	inner, ok := pt.Crease(pp(1, 1), pp(2, 1))
	require.True(t, ok)
	assert.Equal(t, pattern.Mountain, inner.Type)

	rep, err := foldability.Validate(pt)
	require.NoError(t, err)
	assert.False(t, rep.Valid)
	assert.Len(t, rep.Violations, 9, "every interior vertex fails the mountain excess")
	for _, v := range rep.Violations {
		assert.Equal(t, foldability.KindMaekawa, v.Kind)
	}
}

func TestTessellation_ComposesWithFrame(t *testing.T) {
	// The frame's border units re-add identically, so the combination is
	// the tessellation itself.
	pt, err := gen.Build(4, gen.Frame(), gen.Tessellation())
	require.NoError(t, err)
	assert.Equal(t, 2*4*5, pt.CreaseCount())
}

func TestBuild_Deterministic(t *testing.T) {
	a, err := gen.Build(6, gen.Frame(), gen.Waterbomb())
	require.NoError(t, err)
	b, err := gen.Build(6, gen.Frame(), gen.Waterbomb())
	require.NoError(t, err)

	assert.Equal(t, a.Creases(), b.Creases())
	assert.Equal(t, a.Vertices(), b.Vertices())
}

func TestApply_NilTemplate(t *testing.T) {
	pt, err := pattern.New(2)
	require.NoError(t, err)

	err = gen.Apply(pt, gen.Frame(), nil)
	assert.ErrorIs(t, err, gen.ErrNilTemplate)
	assert.Equal(t, 8, pt.CreaseCount(), "templates before the nil one stay applied")
}

func TestBuild_BadSize(t *testing.T) {
	_, err := gen.Build(0, gen.Frame())
	assert.ErrorIs(t, err, pattern.ErrGridSize)
}
