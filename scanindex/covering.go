package scanindex

import (
	"math"

	"github.com/katalvlaran/strucalign/geom"
)

// Covering is a fixed list of unit quaternions covering SO(3) up to Radius:
// every rotation in SO(3) lies within Radius (radians) of some element.
// Built once at startup via Octahedral48 or Icosahedral120 and reused
// across every Index built against it.
type Covering struct {
	Quaternions []geom.QuatRot
	Radius      float64
}

// Octahedral48 returns the 48-element binary octahedral group as a
// covering, the "regular 48-cell grid" coarse option. Its covering radius
// is the largest angle from any rotation in SO(3) to its nearest covering
// element; for this group that is 2·acos((2+√2)/4) ≈ 1.096 rad (about 62.8°).
func Octahedral48() Covering {
	var qs []geom.QuatRot

	// 8 elements: the unit quaternion group ±1,±i,±j,±k.
	for axis := 0; axis < 4; axis++ {
		for _, sign := range []float64{1, -1} {
			qs = append(qs, axisQuat(axis, sign))
		}
	}

	// 16 elements: (±1±i±j±k)/2, all sign combinations.
	half := 0.5
	for s := 0; s < 16; s++ {
		signs := signsFromBits(s, 4)
		qs = append(qs, geom.QuatRot{
			W: signs[0] * half, X: signs[1] * half, Y: signs[2] * half, Z: signs[3] * half,
		})
	}

	// 24 elements: permutations of two nonzero coordinates at ±1/√2, the
	// other two zero.
	invSqrt2 := 1 / math.Sqrt2
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			for s := 0; s < 4; s++ {
				signs := signsFromBits(s, 2)
				v := [4]float64{}
				v[i] = signs[0] * invSqrt2
				v[j] = signs[1] * invSqrt2
				qs = append(qs, geom.QuatRot{W: v[0], X: v[1], Y: v[2], Z: v[3]})
			}
		}
	}

	return Covering{Quaternions: qs, Radius: 2 * math.Acos((2+math.Sqrt2)/4)}
}

// Icosahedral120 returns the 120-element binary icosahedral group, i.e.
// the vertex set of the 600-cell, the finer-radius covering option. Its
// covering radius is 2·acos((1+3φ/2)/√(4+6φ)) ≈ 0.776 rad (about 44.5°),
// φ the golden ratio.
func Icosahedral120() Covering {
	var qs []geom.QuatRot

	half := 0.5
	for s := 0; s < 16; s++ {
		signs := signsFromBits(s, 4)
		qs = append(qs, geom.QuatRot{
			W: signs[0] * half, X: signs[1] * half, Y: signs[2] * half, Z: signs[3] * half,
		})
	}

	for axis := 0; axis < 4; axis++ {
		for _, sign := range []float64{1, -1} {
			qs = append(qs, axisQuat(axis, sign))
		}
	}

	phi := (1 + math.Sqrt(5)) / 2
	a, b, c := phi/2, 0.5, 1/(2*phi)
	for _, perm := range evenPermutationsOf4() {
		for s := 0; s < 8; s++ {
			signs := signsFromBits(s, 3)
			base := [4]float64{a * signs[0], b * signs[1], c * signs[2], 0}
			v := [4]float64{}
			for pos, src := range perm {
				v[src] = base[pos]
			}
			qs = append(qs, geom.QuatRot{W: v[0], X: v[1], Y: v[2], Z: v[3]})
		}
	}

	return Covering{Quaternions: qs, Radius: 2 * math.Acos((1+1.5*phi)/math.Sqrt(4+6*phi))}
}

func axisQuat(axis int, sign float64) geom.QuatRot {
	v := [4]float64{}
	v[axis] = sign
	return geom.QuatRot{W: v[0], X: v[1], Y: v[2], Z: v[3]}
}

// signsFromBits returns n signs (+1/-1) read from the low n bits of s.
func signsFromBits(s, n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		if s&(1<<i) != 0 {
			out[i] = 1
		} else {
			out[i] = -1
		}
	}
	return out
}

// evenPermutationsOf4 returns the 12 even permutations of {0,1,2,3}, each
// as perm where perm[pos] is the value placed at position pos.
func evenPermutationsOf4() [][4]int {
	var out [][4]int
	var indices [4]int
	var used [4]bool
	var rec func(depth int, parity int)
	rec = func(depth int, parity int) {
		if depth == 4 {
			if parity%2 == 0 {
				out = append(out, indices)
			}
			return
		}
		for v := 0; v < 4; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			indices[depth] = v
			rec(depth+1, parity+inversionsAdded(indices, depth))
			used[v] = false
		}
	}
	rec(0, 0)
	return out
}

// inversionsAdded counts, for the value just placed at indices[depth],
// how many earlier placed values it inverts with (i.e. are numerically
// greater, since a later, smaller value after a larger one is an
// inversion).
func inversionsAdded(indices [4]int, depth int) int {
	count := 0
	for i := 0; i < depth; i++ {
		if indices[i] > indices[depth] {
			count++
		}
	}
	return count
}

// NearestIndex returns the index into c.Quaternions closest to q by
// rotation angle (equivalently, by Distance1Between, which is monotone in
// angle), breaking ties by lowest index.
func (c Covering) NearestIndex(q geom.QuatRot) (int, error) {
	if len(c.Quaternions) == 0 {
		return 0, ErrEmptyCovering
	}
	best, bestDist := 0, math.Inf(1)
	for i, cq := range c.Quaternions {
		d := geom.Distance1Between(q, cq)
		if d < bestDist {
			bestDist, best = d, i
		}
	}
	return best, nil
}

// NeighborsWithin returns, for every element of the covering, the indices
// of elements within maxAngle radians of it (including itself). Callers
// implementing the quad lookup pass c.Radius + maximumFrameRotationAngle:
// the covering-triangle inequality then guarantees any acceptable pair's
// orientation cell is among the returned neighbours.
func (c Covering) NeighborsWithin(maxAngle float64) [][]int {
	out := make([][]int, len(c.Quaternions))
	for i, qi := range c.Quaternions {
		for j, qj := range c.Quaternions {
			if geom.AngleBetween(qi, qj) <= maxAngle {
				out[i] = append(out[i], j)
			}
		}
	}
	return out
}
