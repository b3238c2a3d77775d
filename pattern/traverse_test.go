package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foldkit/boxpleat/pattern"
)

func TestComponents_Empty(t *testing.T) {
	pt := mustPattern(t, 4)

	assert.Empty(t, pt.Components())
}

func TestComponents_SingleChain(t *testing.T) {
	pt := mustPattern(t, 4)
	mustAdd(t, pt, pp(0, 0), pp(2, 0), pattern.Mountain)
	mustAdd(t, pt, pp(2, 0), pp(2, 2), pattern.Valley)

	comps := pt.Components()

	require.Len(t, comps, 1)
	assert.Equal(t, []pattern.Point{pp(0, 0), pp(2, 0), pp(2, 2)}, comps[0].Vertices)
	require.Len(t, comps[0].Creases, 2)
	assert.Equal(t, pattern.Mountain, comps[0].Creases[0].Type)
	assert.Equal(t, pattern.Valley, comps[0].Creases[1].Type)
}

func TestComponents_TwoFragments(t *testing.T) {
	pt := mustPattern(t, 6)
	mustAdd(t, pt, pp(0, 0), pp(1, 1), pattern.Mountain)
	mustAdd(t, pt, pp(4, 4), pp(5, 5), pattern.Valley)
	mustAdd(t, pt, pp(1, 1), pp(2, 2), pattern.Mountain)

	comps := pt.Components()

	require.Len(t, comps, 2)
	// Roots follow vertex first-seen order: (0,0) before (4,4).
	assert.Equal(t, []pattern.Point{pp(0, 0), pp(1, 1), pp(2, 2)}, comps[0].Vertices)
	assert.Equal(t, []pattern.Point{pp(4, 4), pp(5, 5)}, comps[1].Vertices)
	assert.Len(t, comps[0].Creases, 2)
	assert.Len(t, comps[1].Creases, 1)
}

func TestComponents_MergeOnConnect(t *testing.T) {
	pt := mustPattern(t, 6)
	mustAdd(t, pt, pp(0, 0), pp(2, 0), pattern.Mountain)
	mustAdd(t, pt, pp(4, 0), pp(6, 0), pattern.Valley)
	require.Len(t, pt.Components(), 2)

	mustAdd(t, pt, pp(2, 0), pp(4, 0), pattern.Border)

	comps := pt.Components()
	require.Len(t, comps, 1)
	assert.Len(t, comps[0].Creases, 3)
	assert.Equal(t, []pattern.Point{pp(0, 0), pp(2, 0), pp(4, 0), pp(6, 0)}, comps[0].Vertices)
}

func TestComponents_SplitOnRemove(t *testing.T) {
	pt := mustPattern(t, 6)
	mustAdd(t, pt, pp(0, 0), pp(2, 0), pattern.Mountain)
	mustAdd(t, pt, pp(2, 0), pp(4, 0), pattern.Valley)
	mustAdd(t, pt, pp(4, 0), pp(6, 0), pattern.Mountain)
	require.Len(t, pt.Components(), 1)

	require.NoError(t, pt.RemoveCrease(pp(2, 0), pp(4, 0)))

	comps := pt.Components()
	require.Len(t, comps, 2)
	assert.Equal(t, []pattern.Point{pp(0, 0), pp(2, 0)}, comps[0].Vertices)
	assert.Equal(t, []pattern.Point{pp(4, 0), pp(6, 0)}, comps[1].Vertices)
}

func TestComponents_DiscoveryOrderBreadthFirst(t *testing.T) {
	// Star plus a tail: breadth-first order lists all spokes before the
	// tail vertex two steps away.
	pt := mustPattern(t, 4)
	center := pp(2, 2)
	mustAdd(t, pt, center, pp(3, 2), pattern.Mountain)
	mustAdd(t, pt, center, pp(2, 3), pattern.Mountain)
	mustAdd(t, pt, pp(3, 2), pp(4, 2), pattern.Valley)

	comps := pt.Components()

	require.Len(t, comps, 1)
	assert.Equal(t,
		[]pattern.Point{center, pp(3, 2), pp(2, 3), pp(4, 2)},
		comps[0].Vertices)
}
