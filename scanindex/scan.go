package scanindex

import (
	"math"

	"github.com/katalvlaran/strucalign/criteria"
	"github.com/katalvlaran/strucalign/geom"
	"github.com/katalvlaran/strucalign/protein"
	"github.com/katalvlaran/strucalign/residue"
	"github.com/katalvlaran/strucalign/viewcache"
)

// Quad is one matching (i_A,j_A,i_B,j_B) residue-pair correspondence found
// by Scan or NaiveScan.
type Quad struct {
	IA, JA, IB, JB int
}

// Scan enumerates every quad (i_A,j_A,i_B,j_B) satisfying crit, probing
// only the cells of idxB that the covering-triangle inequality guarantees
// could hold a match for each cell of idxA, then verifying the exact
// criteria against every candidate pair. idxA and idxB must have been
// built against the same Covering and cell width.
func Scan(idxA, idxB *Index, protA, protB *protein.Protein, vcA, vcB *viewcache.Cache, crit criteria.Criteria) ([]Quad, error) {
	resA, resB := protA.Residues(), protB.Residues()
	neighbors := idxA.covering.NeighborsWithin(idxA.covering.Radius + crit.MaxFrameRotationAngle)
	reach := cellReach(math.Sqrt(crit.MaxSquaredViewDist), idxA.cellWidth)
	dzRange := zOffsets(math.Sqrt(crit.MaxSquaredViewDist), idxA.cellWidth)

	var out []Quad
	for key, pairsA := range idxA.cells {
		orientCandidates := neighbors[key.orient]
		xyCandidates := idxB.candidateXYCells(key.cx, key.cy, reach)
		for _, pA := range pairsA {
			vA, err := vcA.View(pA.I, pA.J)
			if err != nil {
				return nil, err
			}

			for _, xy := range xyCandidates {
				for _, dz := range dzRange {
					for _, orient := range orientCandidates {
						probe := cellKey{cx: xy.cx, cy: xy.cy, cz: key.cz + dz, orient: orient}
						for _, pB := range idxB.cells[probe] {
							ok, err := matches(vA, pA, pB, resA, resB, vcB, crit)
							if err != nil {
								return nil, err
							}
							if ok {
								out = append(out, Quad{IA: pA.I, JA: pA.J, IB: pB.I, JB: pB.J})
							}
						}
					}
				}
			}
		}
	}
	return out, nil
}

// NaiveScan enumerates every quad satisfying crit by the full O(|pairs_A|
// * |pairs_B|) cross product, with no index structure involved. It exists
// to state and check Scan's correctness property against it.
func NaiveScan(protA, protB *protein.Protein, vcA, vcB *viewcache.Cache, minSeqSep int, crit criteria.Criteria) ([]Quad, error) {
	resA, resB := protA.Residues(), protB.Residues()

	var out []Quad
	for iA := 0; iA < len(resA); iA++ {
		for jA := 0; jA < len(resA); jA++ {
			if iA == jA || abs(iA-jA) < minSeqSep {
				continue
			}
			vA, err := vcA.View(iA, jA)
			if err != nil {
				return nil, err
			}
			pA := Pair{I: iA, J: jA}
			for iB := 0; iB < len(resB); iB++ {
				for jB := 0; jB < len(resB); jB++ {
					if iB == jB || abs(iB-jB) < minSeqSep {
						continue
					}
					ok, err := matches(vA, pA, Pair{I: iB, J: jB}, resA, resB, vcB, crit)
					if err != nil {
						return nil, err
					}
					if ok {
						out = append(out, Quad{IA: iA, JA: jA, IB: iB, JB: jB})
					}
				}
			}
		}
	}
	return out, nil
}

// matches applies every criterion in crit to the candidate quad
// (pA.I,pA.J,pB.I,pB.J), given pA's already-computed view vA.
func matches(vA geom.Coord, pA, pB Pair, resA, resB []residue.Residue, vcB *viewcache.Cache, crit criteria.Criteria) (bool, error) {
	if abs(pA.I-pA.J) < crit.MinSeqSep || abs(pB.I-pB.J) < crit.MinSeqSep {
		return false, nil
	}

	if crit.RequireMatchingDirection && sign(pA.J-pA.I) != sign(pB.J-pB.I) {
		return false, nil
	}

	vB, err := vcB.View(pB.I, pB.J)
	if err != nil {
		return false, err
	}
	if vA.SquaredDistance(vB) > crit.MaxSquaredViewDist {
		return false, nil
	}

	qA := frameQuat(resA[pA.I].Frame, resA[pA.J].Frame)
	qB := frameQuat(resB[pB.I].Frame, resB[pB.J].Frame)
	if geom.AngleBetween(qA, qB) > crit.MaxFrameRotationAngle {
		return false, nil
	}

	if !withinMaxAngleDiff(resA[pA.I].Phi, resB[pB.I].Phi, resA[pA.J].Phi, resB[pB.J].Phi, crit.MaxPhiDiff) {
		return false, nil
	}
	if !withinMaxAngleDiff(resA[pA.I].Psi, resB[pB.I].Psi, resA[pA.J].Psi, resB[pB.J].Psi, crit.MaxPsiDiff) {
		return false, nil
	}

	return true, nil
}

// withinMaxAngleDiff gates on max(from_diff, to_diff): the larger of the
// from-residue and to-residue wrapped angle differences must fall within
// max. Either pair's undefined angle (zero value, e.g. a chain-break
// residue) drops that pair's term from the max rather than auto-failing it,
// since an undefined dihedral cannot disqualify a match.
func withinMaxAngleDiff(fromA, fromB, toA, toB geom.Angle, max float64) bool {
	fromOK := fromA.Radians() != 0 && fromB.Radians() != 0
	toOK := toA.Radians() != 0 && toB.Radians() != 0
	if !fromOK && !toOK {
		return true
	}

	worst := 0.0
	if fromOK {
		worst = geom.WrappedDifference(fromA, fromB).Radians()
	}
	if toOK {
		if d := geom.WrappedDifference(toA, toB).Radians(); d > worst {
			worst = d
		}
	}
	return worst <= max
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
