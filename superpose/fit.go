package superpose

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/strucalign/geom"
	"github.com/katalvlaran/strucalign/xerrors"
)

// Fit computes the rigid transform (rotation, translation) minimising
// Σ‖R·a_i + t − b_i‖² over the corresponding point pairs a[i], b[i], via the
// Kabsch method: SVD of the 3x3 cross-covariance matrix between the two
// centred point sets, with the standard reflection-case correction (flip
// the sign of the smallest singular vector) when the uncorrected rotation
// would have determinant -1. Also returns the RMSD the fitted transform
// achieves over the input pairs.
func Fit(a, b []geom.Coord) (Transform, float64, error) {
	if len(a) != len(b) {
		return Transform{}, 0, fmt.Errorf("superpose.Fit: mismatched lengths %d/%d: %w", len(a), len(b), xerrors.InvalidArgument)
	}
	if len(a) < 3 {
		return Transform{}, 0, fmt.Errorf("superpose.Fit: %d point pairs: %w", len(a), ErrTooFewPoints)
	}

	centroidA := centroidOf(a)
	centroidB := centroidOf(b)

	h := mat.NewDense(3, 3, nil)
	for i := range a {
		da := a[i].Sub(centroidA)
		db := b[i].Sub(centroidB)
		daV := [3]float64{da.X, da.Y, da.Z}
		dbV := [3]float64{db.X, db.Y, db.Z}
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				h.Set(r, c, h.At(r, c)+daV[r]*dbV[c])
			}
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(h, mat.SVDFull); !ok {
		return Transform{}, 0, ErrSVDFailed
	}
	u := svd.UTo(nil)
	v := svd.VTo(nil)

	d := 1.0
	var vut mat.Dense
	vut.Mul(v, u.T())
	if mat.Det(&vut) < 0 {
		d = -1
	}

	diag := mat.NewDiagDense(3, []float64{1, 1, d})
	var vd mat.Dense
	vd.Mul(v, diag)
	var rMat mat.Dense
	rMat.Mul(&vd, u.T())

	rot := geom.NewRotationFromRows(
		geom.Coord{X: rMat.At(0, 0), Y: rMat.At(0, 1), Z: rMat.At(0, 2)},
		geom.Coord{X: rMat.At(1, 0), Y: rMat.At(1, 1), Z: rMat.At(1, 2)},
		geom.Coord{X: rMat.At(2, 0), Y: rMat.At(2, 1), Z: rMat.At(2, 2)},
	)

	t := centroidB.Sub(rot.Apply(centroidA))
	transform := Transform{R: rot, T: t}

	var sumSq float64
	for i := range a {
		diff := transform.Apply(a[i]).Sub(b[i])
		sumSq += diff.SquaredLength()
	}
	rmsd := math.Sqrt(sumSq / float64(len(a)))

	return transform, rmsd, nil
}

func centroidOf(pts []geom.Coord) geom.Coord {
	var sum geom.Coord
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(pts)))
}
