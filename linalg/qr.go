package linalg

import (
	"fmt"
	"math"

	"github.com/katalvlaran/strucalign/xerrors"
)

// QR factors m (rows >= cols) into an orthonormal Q and upper-triangular R
// via Householder reflections, so that m = Q*R.
//
// Used by geom.Rotation to re-orthonormalise a frame against float drift
// after repeated composition: Q is the corrected rotation.
func QR(m *Dense) (q, r *Dense, err error) {
	if m.r < m.c {
		return nil, nil, fmt.Errorf("linalg.QR: %dx%d has more columns than rows: %w", m.r, m.c, xerrors.InvalidArgument)
	}

	r = m.Clone()
	q = Identity(m.r)

	for k := 0; k < m.c; k++ {
		// Build the Householder vector for column k, rows k..r-1.
		var normX float64
		for i := k; i < m.r; i++ {
			v, _ := r.At(i, k)
			normX += v * v
		}
		normX = math.Sqrt(normX)
		if normX == 0 {
			continue
		}
		rkk, _ := r.At(k, k)
		alpha := -normX
		if rkk < 0 {
			alpha = normX
		}
		v := make([]float64, m.r)
		for i := k; i < m.r; i++ {
			v[i], _ = r.At(i, k)
		}
		v[k] -= alpha
		var vNorm float64
		for i := k; i < m.r; i++ {
			vNorm += v[i] * v[i]
		}
		if vNorm == 0 {
			continue
		}

		// Apply H = I - 2vv^T/vNorm to R (left) and accumulate into Q (right).
		applyHouseholder(r, v, vNorm, k)
		applyHouseholderToQ(q, v, vNorm, k)
	}

	return q, r, nil
}

func applyHouseholder(r *Dense, v []float64, vNorm float64, k int) {
	for j := k; j < r.c; j++ {
		var dot float64
		for i := k; i < r.r; i++ {
			rij, _ := r.At(i, j)
			dot += v[i] * rij
		}
		factor := 2 * dot / vNorm
		for i := k; i < r.r; i++ {
			rij, _ := r.At(i, j)
			r.Set(i, j, rij-factor*v[i])
		}
	}
}

func applyHouseholderToQ(q *Dense, v []float64, vNorm float64, k int) {
	for i := 0; i < q.r; i++ {
		var dot float64
		for j := k; j < q.c; j++ {
			qij, _ := q.At(i, j)
			dot += qij * v[j]
		}
		factor := 2 * dot / vNorm
		for j := k; j < q.c; j++ {
			qij, _ := q.At(i, j)
			q.Set(i, j, qij-factor*v[j])
		}
	}
}
