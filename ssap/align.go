package ssap

import (
	"github.com/katalvlaran/strucalign/alignment"
	"github.com/katalvlaran/strucalign/protein"
	"github.com/katalvlaran/strucalign/viewcache"
)

// Align runs the full two-level dynamic program between pa and pb, whose
// view caches must already have been built with viewcache.Build, and
// returns the resulting pairwise alignment and its final score.
func Align(pa, pb *protein.Protein, vcA, vcB *viewcache.Cache, cfg Config) (*alignment.Alignment, float64, error) {
	if pa.Len() == 0 || pb.Len() == 0 {
		return nil, 0, ErrEmptyProtein
	}
	if err := cfg.Validate(); err != nil {
		return nil, 0, err
	}

	scores, _, err := buildScoreMatrix(pa.Residues(), pb.Residues(), vcA, vcB, cfg)
	if err != nil {
		return nil, 0, err
	}

	aln, score, err := alignFromMatrix(scores, pa.Len(), pb.Len(), cfg)
	if err != nil {
		return nil, 0, err
	}
	return aln, score, nil
}

// alignFromMatrix runs the single outer affine-gap alignment over a
// precomputed nA x nB score matrix and packs the resulting path into an
// alignment.Alignment over two entries.
func alignFromMatrix(scores [][]float64, nA, nB int, cfg Config) (*alignment.Alignment, float64, error) {
	scoreFn := func(p, q int) float64 { return scores[p][q] }
	path, total := affineGapAlign(scoreFn, nA, nB, cfg.GapOpen, cfg.GapExtend)

	aln, err := alignment.New(2)
	if err != nil {
		return nil, 0, err
	}
	for _, pr := range path {
		pos := []int{alignment.NoPosition, alignment.NoPosition}
		if pr.A >= 0 {
			pos[0] = pr.A
		}
		if pr.B >= 0 {
			pos[1] = pr.B
		}
		if err := aln.AppendRow(pos); err != nil {
			return nil, 0, err
		}
	}
	return aln, total, nil
}
