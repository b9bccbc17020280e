package multialign_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strucalign/multialign"
)

func TestBuilder_AddAlignmentBranch_BuildsSingleGroup(t *testing.T) {
	b := multialign.NewBuilder(nil, nil)

	ab := buildPair(t, [][2]int{{0, 0}, {1, 1}})
	require.NoError(t, b.AddAlignmentBranch(0, 1, ab, multialign.Simply))

	bc := buildPair(t, [][2]int{{0, 0}, {1, 1}})
	require.NoError(t, b.AddAlignmentBranch(1, 2, bc, multialign.Simply))

	require.Len(t, b.Groups(), 1)
	g := b.Group(0)
	require.NotNil(t, g)
	require.Same(t, g, b.Group(2))
	require.ElementsMatch(t, []int{0, 1, 2}, g.Entries())
}

func TestBuilder_AddAlignmentBranch_FlipsWhenOnlySecondEntryKnown(t *testing.T) {
	b := multialign.NewBuilder(nil, nil)

	ab := buildPair(t, [][2]int{{0, 0}, {1, 1}})
	require.NoError(t, b.AddAlignmentBranch(0, 1, ab, multialign.Simply))

	// entry 1 is already known; entry 2 is new, but passed as the first
	// (unknown) slot here to exercise the flip path.
	ca := buildPair(t, [][2]int{{0, 0}, {1, 1}})
	require.NoError(t, b.AddAlignmentBranch(2, 1, ca, multialign.Simply))

	require.Len(t, b.Groups(), 1)
	require.ElementsMatch(t, []int{0, 1, 2}, b.Group(0).Entries())
}

func TestBuilder_AddAlignmentBranch_MergesTwoKnownGroups(t *testing.T) {
	b := multialign.NewBuilder(nil, nil)

	ab := buildPair(t, [][2]int{{0, 0}})
	require.NoError(t, b.AddAlignmentBranch(0, 1, ab, multialign.Simply))

	cd := buildPair(t, [][2]int{{0, 0}})
	require.NoError(t, b.AddAlignmentBranch(2, 3, cd, multialign.Simply))
	require.Len(t, b.Groups(), 2)

	bc := buildPair(t, [][2]int{{0, 0}})
	require.NoError(t, b.AddAlignmentBranch(1, 2, bc, multialign.Simply))

	require.Len(t, b.Groups(), 1)
	require.ElementsMatch(t, []int{0, 1, 2, 3}, b.Group(0).Entries())
}

func TestBuilder_AddAlignmentBranch_IgnoresRedundantBranch(t *testing.T) {
	b := multialign.NewBuilder(nil, nil)
	ab := buildPair(t, [][2]int{{0, 0}})
	require.NoError(t, b.AddAlignmentBranch(0, 1, ab, multialign.Simply))
	require.NoError(t, b.AddAlignmentBranch(0, 1, ab, multialign.Simply))
	require.Len(t, b.Groups(), 1)
}

type recordingRefiner struct {
	pairCalls int
	allCalls  int
}

func (r *recordingRefiner) RefinePair(g *multialign.Group, entryA, entryB int) (*multialign.Group, error) {
	r.pairCalls++
	return g, nil
}

func (r *recordingRefiner) RefineAll(g *multialign.Group) (*multialign.Group, error) {
	r.allCalls++
	return g, nil
}

func TestBuilder_RefineStylesInvokeRefiner(t *testing.T) {
	ref := &recordingRefiner{}
	b := multialign.NewBuilder(ref, nil)

	ab := buildPair(t, [][2]int{{0, 0}})
	require.NoError(t, b.AddAlignmentBranch(0, 1, ab, multialign.IncrementallyWithPairRefining))
	require.Equal(t, 1, ref.pairCalls)

	bc := buildPair(t, [][2]int{{0, 0}})
	require.NoError(t, b.AddAlignmentBranch(1, 2, bc, multialign.WithHeavyRefining))
	require.Equal(t, 1, ref.allCalls)
}

func TestGlueStyle_String(t *testing.T) {
	require.Equal(t, "SIMPLY", multialign.Simply.String())
	require.Equal(t, "INCREMENTALLY_WITH_PAIR_REFINING", multialign.IncrementallyWithPairRefining.String())
	require.Equal(t, "WITH_HEAVY_REFINING", multialign.WithHeavyRefining.String())
}
