package scanindex

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/quadtree"

	"github.com/katalvlaran/strucalign/fingerprint"
	"github.com/katalvlaran/strucalign/geom"
	"github.com/katalvlaran/strucalign/protein"
	"github.com/katalvlaran/strucalign/viewcache"
)

// xyCellBound is the (x,y) cell-index range the quadtree covers; cell
// indices derive from floor(view-vector component / cellWidth), and real
// view vectors never approach this magnitude, so it is never exceeded.
const xyCellBound = 1 << 20

// xyCell is one occupied (cx,cy) column of the index, as an orb.Pointer so
// it can live in the quadtree that coarsely prunes candidate columns
// before the exact per-candidate criteria check.
type xyCell struct {
	cx, cy int
}

func (c xyCell) Point() orb.Point { return orb.Point{float64(c.cx), float64(c.cy)} }

// Pair is one indexed ordered residue pair (i,j).
type Pair struct {
	I, J int
}

// cellKey is the (spatial, orientation) cell a pair's view/frame-quat falls
// into: floor(v/cellWidth) per axis, and the nearest covering index for the
// relative frame quaternion.
type cellKey struct {
	cx, cy, cz int
	orient     int
}

// Index is a residue-pair scan index for one protein, built against a
// fixed Covering and cell width.
type Index struct {
	covering  Covering
	cellWidth float64
	minSeqSep int
	cells     map[cellKey][]Pair
	// xyTree coarsely prunes candidate (cx,cy) columns by view-vector x,y
	// before Scan descends into z and orientation, using a quadtree over
	// two of the three view-vector axes as the secondary spatial prune.
	xyTree *quadtree.Quadtree

	// Fingerprint is the content fingerprint of the protein this Index was
	// built over, so a caller can detect a stale index without rebuilding
	// it, the same contract viewcache.Cache offers.
	Fingerprint string
}

// Build constructs an Index over p's ordered residue pairs (i,j), j≠i,
// with |i-j| >= minSeqSep, keyed by spatial cell and nearest orientation
// covering index of the relative frame quaternion. vc must be p's already
// built view cache.
func Build(p *protein.Protein, vc *viewcache.Cache, covering Covering, cellWidth float64, minSeqSep int) (*Index, error) {
	if cellWidth <= 0 {
		return nil, ErrBadCellWidth
	}
	if minSeqSep < 0 {
		return nil, ErrBadSeparation
	}

	idx := &Index{
		covering:    covering,
		cellWidth:   cellWidth,
		minSeqSep:   minSeqSep,
		cells:       make(map[cellKey][]Pair),
		Fingerprint: fingerprint.OfProtein(p),
	}

	seenXY := make(map[xyCell]bool)
	residues := p.Residues()
	n := len(residues)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || abs(i-j) < minSeqSep {
				continue
			}
			v, err := vc.View(i, j)
			if err != nil {
				return nil, err
			}
			q := frameQuat(residues[i].Frame, residues[j].Frame)
			orient, err := covering.NearestIndex(q)
			if err != nil {
				return nil, err
			}
			key := cellKeyFor(v, cellWidth, orient)
			idx.cells[key] = append(idx.cells[key], Pair{I: i, J: j})
			seenXY[xyCell{cx: key.cx, cy: key.cy}] = true
		}
	}

	idx.xyTree = quadtree.New(orb.Bound{
		Min: orb.Point{-xyCellBound, -xyCellBound},
		Max: orb.Point{xyCellBound, xyCellBound},
	})
	for xy := range seenXY {
		if err := idx.xyTree.Add(xy); err != nil {
			return nil, err
		}
	}

	return idx, nil
}

// Stale reports whether fp no longer matches the fingerprint the index was
// built from.
func (idx *Index) Stale(fp string) bool { return fp != idx.Fingerprint }

// candidateXYCells returns the occupied (cx,cy) columns within reach cells
// of (centerCX,centerCY), via the quadtree's bound query.
func (idx *Index) candidateXYCells(centerCX, centerCY, reach int) []xyCell {
	bound := orb.Bound{
		Min: orb.Point{float64(centerCX - reach), float64(centerCY - reach)},
		Max: orb.Point{float64(centerCX + reach), float64(centerCY + reach)},
	}
	pointers := idx.xyTree.InBound(nil, bound)
	out := make([]xyCell, 0, len(pointers))
	for _, p := range pointers {
		out = append(out, p.(xyCell))
	}
	return out
}

// frameQuat returns the unit quaternion rotating a's frame into b's.
func frameQuat(a, b geom.Rotation) geom.QuatRot {
	return geom.MakeQuatRotFromRotation(a.Transpose().Compose(b))
}

func cellKeyFor(v geom.Coord, cellWidth float64, orient int) cellKey {
	return cellKey{
		cx:     int(math.Floor(v.X / cellWidth)),
		cy:     int(math.Floor(v.Y / cellWidth)),
		cz:     int(math.Floor(v.Z / cellWidth)),
		orient: orient,
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// cellReach returns how many cells of width cellWidth a spatial radius of
// maxDist can span, over-covering (never under-covering) the ball of that
// radius once combined with the exact per-candidate distance check Scan
// applies afterwards.
func cellReach(maxDist, cellWidth float64) int {
	return int(math.Ceil(maxDist / cellWidth))
}

// zOffsets returns the z-cell offsets to probe around a query cell for
// cellReach(maxDist, cellWidth) cells to either side.
func zOffsets(maxDist, cellWidth float64) []int {
	reach := cellReach(maxDist, cellWidth)
	out := make([]int, 0, 2*reach+1)
	for d := -reach; d <= reach; d++ {
		out = append(out, d)
	}
	return out
}
