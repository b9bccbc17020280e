package linalg

import (
	"fmt"
	"math"

	"github.com/katalvlaran/strucalign/xerrors"
)

// Eigen computes the eigenvalues and eigenvectors of a symmetric matrix m
// using the cyclic Jacobi rotation method. Returns eigenvalues in ascending
// order and eigenvectors as the columns of the returned matrix.
//
// Used by protein.FitSegments (through its fitLine helper) to find the dominant eigenvector of the
// scatter matrix of a secondary-structure segment's prosec axis points.
func Eigen(m *Dense, tol float64, maxIter int) ([]float64, *Dense, error) {
	if m.r != m.c {
		return nil, nil, fmt.Errorf("linalg.Eigen: non-square %dx%d: %w", m.r, m.c, xerrors.InvalidArgument)
	}
	n := m.r
	a := m.Clone()
	v := Identity(n)

	for iter := 0; iter < maxIter; iter++ {
		// Find largest off-diagonal element.
		p, q := 0, 1
		var maxOff float64
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				aij, _ := a.At(i, j)
				if math.Abs(aij) > maxOff {
					maxOff = math.Abs(aij)
					p, q = i, j
				}
			}
		}
		if maxOff < tol {
			break
		}

		app, _ := a.At(p, p)
		aqq, _ := a.At(q, q)
		apq, _ := a.At(p, q)

		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1, theta) / (math.Abs(theta) + math.Sqrt(theta*theta+1))
		if theta == 0 {
			t = 1
		}
		c := 1 / math.Sqrt(t*t+1)
		s := t * c

		rotateJacobi(a, v, p, q, c, s)
	}

	eigvals := make([]float64, n)
	for i := 0; i < n; i++ {
		eigvals[i], _ = a.At(i, i)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	for i := 1; i < n; i++ {
		for j := i; j > 0 && eigvals[order[j-1]] > eigvals[order[j]]; j-- {
			order[j-1], order[j] = order[j], order[j-1]
		}
	}

	sortedVals := make([]float64, n)
	sortedVecs := Identity(n)
	for newCol, oldCol := range order {
		sortedVals[newCol] = eigvals[oldCol]
		for row := 0; row < n; row++ {
			val, _ := v.At(row, oldCol)
			sortedVecs.Set(row, newCol, val)
		}
	}

	return sortedVals, sortedVecs, nil
}

func rotateJacobi(a, v *Dense, p, q int, c, s float64) {
	n := a.r
	for i := 0; i < n; i++ {
		aip, _ := a.At(i, p)
		aiq, _ := a.At(i, q)
		a.Set(i, p, c*aip-s*aiq)
		a.Set(i, q, s*aip+c*aiq)
	}
	for j := 0; j < n; j++ {
		apj, _ := a.At(p, j)
		aqj, _ := a.At(q, j)
		a.Set(p, j, c*apj-s*aqj)
		a.Set(q, j, s*apj+c*aqj)
	}
	for i := 0; i < n; i++ {
		vip, _ := v.At(i, p)
		viq, _ := v.At(i, q)
		v.Set(i, p, c*vip-s*viq)
		v.Set(i, q, s*vip+c*viq)
	}
}
