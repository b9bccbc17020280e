package ssap

import (
	"github.com/katalvlaran/strucalign/geom"
	"github.com/katalvlaran/strucalign/residue"
	"github.com/katalvlaran/strucalign/viewcache"
)

// compatibleAnchor reports whether (resA, resB) may serve as an outer-loop
// anchor pair: matching secondary-structure class, and phi/psi within
// cfg.AnchorAngleTolerance of each other whenever both are defined.
func compatibleAnchor(resA, resB residue.Residue, cfg Config) bool {
	if resA.SecStruc != resB.SecStruc {
		return false
	}
	if resA.Phi != (geom.Angle{}) && resB.Phi != (geom.Angle{}) {
		if geom.WrappedDifference(resA.Phi, resB.Phi).Radians() > cfg.AnchorAngleTolerance {
			return false
		}
	}
	if resA.Psi != (geom.Angle{}) && resB.Psi != (geom.Angle{}) {
		if geom.WrappedDifference(resA.Psi, resB.Psi).Radians() > cfg.AnchorAngleTolerance {
			return false
		}
	}
	return true
}

// buildScoreMatrix runs the outer loop over every compatible anchor pair
// across the full nA x nB cross product. See buildScoreMatrixRestricted for
// the accumulation scheme.
func buildScoreMatrix(resA, resB []residue.Residue, vcA, vcB *viewcache.Cache, cfg Config) ([][]float64, int, error) {
	return buildScoreMatrixRestricted(resA, resB, vcA, vcB, cfg, nil)
}

// buildScoreMatrixRestricted runs the outer loop: for every compatible
// anchor pair (iA,iB) — the full nA x nB cross product when anchors is nil,
// or only the given candidates otherwise, as a refinement pass restricts
// the outer loop to positions already known to align — an inner affine-gap
// alignment over context scores derived from view(iA,*) vs view(iB,*)
// contributes its path's scores to two (p,q) accumulators. "from"
// accumulates the score each anchor's inner alignment assigns to (p,q)
// looking outward from the anchor; "to" accumulates the same comparison
// looking inward, from (p,q)'s own frame back toward the anchor. Averaging
// the two gives positions that look consistent from both ends of the
// comparison a higher combined score than one that only looks good from
// one side. Returns the averaged nA x nB matrix and the number of anchor
// pairs used.
func buildScoreMatrixRestricted(resA, resB []residue.Residue, vcA, vcB *viewcache.Cache, cfg Config, anchors [][2]int) ([][]float64, int, error) {
	nA, nB := len(resA), len(resB)
	from := make([][]float64, nA)
	to := make([][]float64, nA)
	for i := range from {
		from[i] = make([]float64, nB)
		to[i] = make([]float64, nB)
	}

	candidates := anchors
	if candidates == nil {
		candidates = make([][2]int, 0, nA*nB)
		for iA := 0; iA < nA; iA++ {
			for iB := 0; iB < nB; iB++ {
				candidates = append(candidates, [2]int{iA, iB})
			}
		}
	}

	used := 0
	for _, pair := range candidates {
		iA, iB := pair[0], pair[1]
		if iA < 0 || iA >= nA || iB < 0 || iB >= nB {
			continue
		}
		if !compatibleAnchor(resA[iA], resB[iB], cfg) {
			continue
		}
		used++

		outward := func(p, q int) float64 {
			if p == iA || q == iB {
				return 0
			}
			vA, _ := vcA.View(iA, p)
			vB, _ := vcB.View(iB, q)
			return ContextScore(vA.SquaredDistance(vB), cfg)
		}
		path, _ := affineGapAlign(outward, nA, nB, cfg.GapOpen, cfg.GapExtend)
		for _, pr := range path {
			if pr.A < 0 || pr.B < 0 {
				continue
			}
			from[pr.A][pr.B] += outward(pr.A, pr.B)
		}

		inward := func(p, q int) float64 {
			if p == iA || q == iB {
				return 0
			}
			vA, _ := vcA.View(p, iA)
			vB, _ := vcB.View(q, iB)
			return ContextScore(vA.SquaredDistance(vB), cfg)
		}
		path, _ = affineGapAlign(inward, nA, nB, cfg.GapOpen, cfg.GapExtend)
		for _, pr := range path {
			if pr.A < 0 || pr.B < 0 {
				continue
			}
			to[pr.A][pr.B] += inward(pr.A, pr.B)
		}
	}

	if used == 0 {
		return nil, 0, ErrNoCompatiblePairs
	}

	avg := make([][]float64, nA)
	for i := 0; i < nA; i++ {
		avg[i] = make([]float64, nB)
		for j := 0; j < nB; j++ {
			avg[i][j] = (from[i][j] + to[i][j]) / 2
		}
	}
	return avg, used, nil
}
