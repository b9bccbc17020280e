package pdbsource_test

import (
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strucalign/alignment"
	"github.com/katalvlaran/strucalign/geom"
	"github.com/katalvlaran/strucalign/pdbsource"
	"github.com/katalvlaran/strucalign/protein"
	"github.com/katalvlaran/strucalign/residue"
)

func helixProtein(t *testing.T, name string, n int) *protein.Protein {
	t.Helper()
	residues := make([]residue.Residue, n)
	for i := 0; i < n; i++ {
		x := float64(i) * 1.5
		r, err := residue.NewBuilder(
			residue.ID{ChainLabel: 'A', SequenceNumber: i + 1},
			'A', residue.AlphaHelix,
		).WithBackbone(
			geom.Coord{X: x + 1, Y: 0, Z: 0},
			geom.Coord{X: x, Y: 0, Z: 0},
			geom.Coord{X: x, Y: 1, Z: 0},
			geom.Coord{X: x, Y: 1, Z: 1},
		).Build()
		require.NoError(t, err)
		residues[i] = r
	}
	p, err := protein.New([]string{name}, residues)
	require.NoError(t, err)
	return p
}

func TestSSAPScores_RoundTrip(t *testing.T) {
	records := []pdbsource.SSAPScoreRecord{
		{NameA: "1abcA", NameB: "1xyzB", LengthA: 120, LengthB: 118, SSAPScore: 92.5, NumAligned: 110, RMSD: 1.23, SeqID: 45.6, Overlap: 91.1},
		{NameA: "1abcA", NameB: "2defC", LengthA: 120, LengthB: 130, SSAPScore: 80.0, NumAligned: 100, RMSD: 2.0, SeqID: 30.0, Overlap: 80.0},
	}

	var buf strings.Builder
	require.NoError(t, pdbsource.WriteSSAPScores(&buf, records))

	got, err := pdbsource.ReadSSAPScores(strings.NewReader(buf.String()))
	require.NoError(t, err)
	if !require.ObjectsAreEqual(records, got) {
		dmp := diffmatchpatch.New()
		var rewritten strings.Builder
		require.NoError(t, pdbsource.WriteSSAPScores(&rewritten, got))
		diffs := dmp.DiffMain(buf.String(), rewritten.String(), false)
		t.Fatalf("SSAP-scores round trip diverged:\n%s", dmp.DiffPrettyText(diffs))
	}
}

func TestReadSSAPScores_RejectsMalformedLine(t *testing.T) {
	_, err := pdbsource.ReadSSAPScores(strings.NewReader("1abcA 1xyzB only three fields\n"))
	require.ErrorIs(t, err, pdbsource.ErrBadSSAPScoresLine)
}

func TestReadSSAPScores_SkipsBlankLines(t *testing.T) {
	in := "1abcA 1xyzB 100 100 90 95 1.0 40 90\n\n1abcA 2defC 100 110 85 90 1.5 35 85\n"
	got, err := pdbsource.ReadSSAPScores(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestReadLegacyPairAlignment_ParsesGapsAndPositions(t *testing.T) {
	in := "1 1\n2 0\n3 2\n0 3\n4 4\n"
	aln, err := pdbsource.ReadLegacyPairAlignment(strings.NewReader(in), 4, 4)
	require.NoError(t, err)
	require.Equal(t, 5, aln.RowCount())

	posA, okA := aln.PositionAt(1, 0)
	require.True(t, okA)
	require.Equal(t, 1, posA)
	_, okB := aln.PositionAt(1, 1)
	require.False(t, okB)

	posA2, okA2 := aln.PositionAt(3, 0)
	require.False(t, okA2)
	require.Equal(t, alignment.NoPosition, posA2)
	posB2, okB2 := aln.PositionAt(3, 1)
	require.True(t, okB2)
	require.Equal(t, 2, posB2)
}

func TestReadLegacyPairAlignment_RejectsOutOfRangeIndex(t *testing.T) {
	_, err := pdbsource.ReadLegacyPairAlignment(strings.NewReader("1 9\n"), 4, 4)
	require.ErrorIs(t, err, pdbsource.ErrLegacyIndexOutOfRange)
}

func TestReadLegacyPairAlignment_RejectsMalformedLine(t *testing.T) {
	_, err := pdbsource.ReadLegacyPairAlignment(strings.NewReader("1 2 3\n"), 4, 4)
	require.ErrorIs(t, err, pdbsource.ErrBadLegacyLine)
}

func TestFASTA_RoundTrip(t *testing.T) {
	pa := helixProtein(t, "1abcA", 4)
	pb := helixProtein(t, "1xyzB", 3)

	aln, err := alignment.New(2)
	require.NoError(t, err)
	require.NoError(t, aln.AppendRow([]int{0, 0}))
	require.NoError(t, aln.AppendRow([]int{1, alignment.NoPosition}))
	require.NoError(t, aln.AppendRow([]int{2, 1}))
	require.NoError(t, aln.AppendRow([]int{3, 2}))

	var buf strings.Builder
	require.NoError(t, pdbsource.WriteFASTA(&buf, []*protein.Protein{pa, pb}, aln))

	got, err := pdbsource.ReadFASTA(strings.NewReader(buf.String()), []*protein.Protein{pa, pb})
	require.NoError(t, err)
	require.Equal(t, aln.RowCount(), got.RowCount())
	for row := 0; row < aln.RowCount(); row++ {
		for e := 0; e < 2; e++ {
			wantPos, wantOK := aln.PositionAt(row, e)
			gotPos, gotOK := got.PositionAt(row, e)
			require.Equal(t, wantOK, gotOK)
			require.Equal(t, wantPos, gotPos)
		}
	}
}

// TestFASTA_TextRoundTrip writes a FASTA file and re-writes the record it
// reads back, asserting the two texts are byte-identical and rendering a
// unified diff on failure so a drifting writer is easy to spot.
func TestFASTA_TextRoundTrip(t *testing.T) {
	pa := helixProtein(t, "1abcA", 4)
	pb := helixProtein(t, "1xyzB", 4)

	aln, err := alignment.New(2)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		require.NoError(t, aln.AppendRow([]int{i, i}))
	}

	var want strings.Builder
	require.NoError(t, pdbsource.WriteFASTA(&want, []*protein.Protein{pa, pb}, aln))

	got, err := pdbsource.ReadFASTA(strings.NewReader(want.String()), []*protein.Protein{pa, pb})
	require.NoError(t, err)

	var roundTripped strings.Builder
	require.NoError(t, pdbsource.WriteFASTA(&roundTripped, []*protein.Protein{pa, pb}, got))

	if want.String() != roundTripped.String() {
		diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(want.String()),
			B:        difflib.SplitLines(roundTripped.String()),
			FromFile: "want",
			ToFile:   "got",
			Context:  2,
		})
		t.Fatalf("FASTA text round trip diverged:\n%s", diff)
	}
}

func TestReadFASTA_RejectsEntryCountMismatch(t *testing.T) {
	pa := helixProtein(t, "1abcA", 2)
	in := ">1abcA\nAA\n>extra\nAA\n"
	_, err := pdbsource.ReadFASTA(strings.NewReader(in), []*protein.Protein{pa})
	require.ErrorIs(t, err, pdbsource.ErrFASTAEntryCountMismatch)
}

func TestReadFASTA_RejectsLengthMismatch(t *testing.T) {
	pa := helixProtein(t, "1abcA", 3)
	in := ">1abcA\nAA\n"
	_, err := pdbsource.ReadFASTA(strings.NewReader(in), []*protein.Protein{pa})
	require.ErrorIs(t, err, pdbsource.ErrFASTALengthMismatch)
}

func TestFakeSource_FiltersByChain(t *testing.T) {
	pa := helixProtein(t, "1abcA", 3)
	pb := helixProtein(t, "1abcB", 3)
	src := pdbsource.FakeSource{
		Proteins: []protein.Protein{*pa, *pb},
		ChainOf:  []byte{'A', 'B'},
	}

	got, err := src.Read(nil, []pdbsource.RegionFilter{{ChainLabel: 'B'}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "1abcB", got[0].Names[0])

	all, err := src.Read(nil, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
}
