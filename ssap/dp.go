package ssap

import "math"

// IndexPair is one aligned position pair from an affine-gap alignment path.
// A gap in one sequence is marked by the other side being -1.
type IndexPair struct {
	A, B int
}

// pairState is which of the three Gotoh matrices a cell belongs to.
type pairState int

const (
	stateMatch pairState = iota
	stateGapInB           // consumes an A residue, B holds a gap
	stateGapInA           // consumes a B residue, A holds a gap
)

const negInf = math.MinInt32

// affineGapAlign runs a global (Needleman-Wunsch/Gotoh) affine-gap alignment
// of indices [0,nA) against [0,nB), scoring a matched pair (p,q) with
// scoreFn(p,q). Traceback ties are broken deterministically: among
// predecessor states scoring equally, stateMatch is preferred over
// stateGapInB over stateGapInA, and extending a gap run is preferred over
// opening a new one.
func affineGapAlign(scoreFn func(p, q int) float64, nA, nB int, gapOpen, gapExtend float64) ([]IndexPair, float64) {
	rows, cols := nA+1, nB+1

	m := make([][]float64, rows)
	x := make([][]float64, rows)
	y := make([][]float64, rows)
	bm := make([][]pairState, rows)
	bx := make([][]pairState, rows)
	by := make([][]pairState, rows)
	for i := range m {
		m[i] = make([]float64, cols)
		x[i] = make([]float64, cols)
		y[i] = make([]float64, cols)
		bm[i] = make([]pairState, cols)
		bx[i] = make([]pairState, cols)
		by[i] = make([]pairState, cols)
	}

	for i := 1; i < rows; i++ {
		m[i][0] = negInf
		y[i][0] = negInf
		x[i][0] = -gapOpen - float64(i-1)*gapExtend
		bx[i][0] = stateGapInB // extend the leading run of A-only residues
	}
	for j := 1; j < cols; j++ {
		m[0][j] = negInf
		x[0][j] = negInf
		by[0][j] = stateGapInA // extend the leading run of B-only residues
		y[0][j] = -gapOpen - float64(j-1)*gapExtend
	}

	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			diag, diagState := best3(m[i-1][j-1], x[i-1][j-1], y[i-1][j-1])
			m[i][j] = scoreFn(i-1, j-1) + diag
			bm[i][j] = diagState

			openB, extendB := m[i-1][j]-gapOpen, x[i-1][j]-gapExtend
			if extendB >= openB {
				x[i][j], bx[i][j] = extendB, stateGapInB
			} else {
				x[i][j], bx[i][j] = openB, stateMatch
			}

			openA, extendA := m[i][j-1]-gapOpen, y[i][j-1]-gapExtend
			if extendA >= openA {
				y[i][j], by[i][j] = extendA, stateGapInA
			} else {
				y[i][j], by[i][j] = openA, stateMatch
			}
		}
	}

	finalScore, finalState := best3(m[nA][nB], x[nA][nB], y[nA][nB])

	path := make([]IndexPair, 0, nA+nB)
	i, j, state := nA, nB, finalState
	for i > 0 || j > 0 {
		switch state {
		case stateMatch:
			path = append(path, IndexPair{A: i - 1, B: j - 1})
			state = bm[i][j]
			i--
			j--
		case stateGapInB:
			path = append(path, IndexPair{A: i - 1, B: -1})
			state = bx[i][j]
			i--
		default:
			path = append(path, IndexPair{A: -1, B: j - 1})
			state = by[i][j]
			j--
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path, finalScore
}

// best3 returns the maximum of the three Gotoh matrix values and which
// state it came from, preferring stateMatch over stateGapInB over
// stateGapInA on ties.
func best3(vMatch, vGapB, vGapA float64) (float64, pairState) {
	best, state := vMatch, stateMatch
	if vGapB > best {
		best, state = vGapB, stateGapInB
	}
	if vGapA > best {
		best, state = vGapA, stateGapInA
	}
	return best, state
}
