package multialign_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strucalign/multialign"
	"github.com/katalvlaran/strucalign/pdbsource"
	"github.com/katalvlaran/strucalign/spantree"
)

// TestSSAPScoresSpanningTree_Scenario6 exercises the testable-properties
// scenario: an SSAP-scores file over four structures produces the same
// maximum spanning tree as the scoring-only scenario, and gluing identical
// pairwise alignments along that tree's BFS order leaves every entry's
// column placement equal to the shared pairwise pattern.
func TestSSAPScoresSpanningTree_Scenario6(t *testing.T) {
	scoresFile := strings.Join([]string{
		"s0 s2 4 4 86.25 4 1.0 100 100",
		"s0 s3 4 4 87.96 4 1.0 100 100",
		"s2 s3 4 4 88.34 4 1.0 100 100",
		"s0 s1 4 4 85.40 4 1.0 100 100",
		"s1 s2 4 4 85.21 4 1.0 100 100",
		"s1 s3 4 4 84.20 4 1.0 100 100",
	}, "\n") + "\n"

	records, err := pdbsource.ReadSSAPScores(strings.NewReader(scoresFile))
	require.NoError(t, err)
	require.Len(t, records, 6)

	nameIndex := map[string]int{"s0": 0, "s1": 1, "s2": 2, "s3": 3}
	scores := make([]spantree.PairScore, len(records))
	for i, rec := range records {
		scores[i] = spantree.PairScore{A: nameIndex[rec.NameA], B: nameIndex[rec.NameB], Score: rec.SSAPScore}
	}

	g, err := spantree.BuildSimilarityGraph([]int{0, 1, 2, 3}, scores)
	require.NoError(t, err)
	tree, err := spantree.MaxSpanningTree(g)
	require.NoError(t, err)
	require.Equal(t, []spantree.Edge{
		{A: 2, B: 3, Score: 88.34},
		{A: 0, B: 3, Score: 87.96},
		{A: 0, B: 1, Score: 85.40},
	}, tree)

	branches, err := spantree.GlueOrder(tree, 0)
	require.NoError(t, err)
	require.Len(t, branches, 3)

	b := multialign.NewBuilder(nil, nil)
	for _, br := range branches {
		pair := buildPair(t, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}})
		require.NoError(t, b.AddAlignmentBranch(br.EntryAlready, br.EntryNew, pair, multialign.Simply))
	}

	require.Len(t, b.Groups(), 1)
	group := b.Group(0)
	require.ElementsMatch(t, []int{0, 1, 2, 3}, group.Entries())

	entries := group.Entries()
	aln := group.Alignment()
	for row := 0; row < aln.RowCount(); row++ {
		for _, e := range entries {
			col := indexOfEntry(entries, e)
			pos, ok := aln.PositionAt(row, col)
			require.True(t, ok)
			require.Equal(t, row, pos)
		}
	}
}

func indexOfEntry(entries []int, e int) int {
	for i, v := range entries {
		if v == e {
			return i
		}
	}
	return -1
}
