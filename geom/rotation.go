package geom

import "math"

// Rotation is a 3x3 orthonormal matrix with determinant +1, stored directly
// (not via linalg.Dense, which would be overkill for a fixed 3x3 shape) as
// three row vectors. Frame re-orthonormalisation against float drift goes
// through linalg.QR in ReorthonormalizeViaQR.
type Rotation struct {
	row [3]Coord
}

// IdentityRotation returns the identity rotation.
func IdentityRotation() Rotation {
	return Rotation{row: [3]Coord{
		{X: 1}, {Y: 1}, {Z: 1},
	}}
}

// NewRotationFromRows builds a Rotation from three row vectors without
// validating orthonormality; callers that need the invariant checked should
// use ReorthonormalizeViaQR afterwards.
func NewRotationFromRows(r0, r1, r2 Coord) Rotation {
	return Rotation{row: [3]Coord{r0, r1, r2}}
}

// Row returns row i (0,1,2) of the rotation matrix.
func (r Rotation) Row(i int) Coord { return r.row[i] }

// Apply rotates c by r.
func (r Rotation) Apply(c Coord) Coord {
	return Coord{
		X: r.row[0].Dot(c),
		Y: r.row[1].Dot(c),
		Z: r.row[2].Dot(c),
	}
}

// Transpose returns the transpose of r, which for an orthonormal matrix is
// also its inverse.
func (r Rotation) Transpose() Rotation {
	return Rotation{row: [3]Coord{
		{X: r.row[0].X, Y: r.row[1].X, Z: r.row[2].X},
		{X: r.row[0].Y, Y: r.row[1].Y, Z: r.row[2].Y},
		{X: r.row[0].Z, Y: r.row[1].Z, Z: r.row[2].Z},
	}}
}

// Compose returns the rotation other followed by r (other applied first):
// (r.Compose(other)).Apply(v) == r.Apply(other.Apply(v)).
func (r Rotation) Compose(other Rotation) Rotation {
	ot := other.Transpose()
	return Rotation{row: [3]Coord{
		{X: r.row[0].Dot(ot.row[0]), Y: r.row[0].Dot(ot.row[1]), Z: r.row[0].Dot(ot.row[2])},
		{X: r.row[1].Dot(ot.row[0]), Y: r.row[1].Dot(ot.row[1]), Z: r.row[1].Dot(ot.row[2])},
		{X: r.row[2].Dot(ot.row[0]), Y: r.row[2].Dot(ot.row[1]), Z: r.row[2].Dot(ot.row[2])},
	}}
}

// RotationToXAxisAndXYPlane returns the unique proper rotation that sends a
// onto the +x axis and places b in the x-y half-plane with non-negative y.
// Used to construct a residue's local frame from (N-Cα) and (C-Cα).
func RotationToXAxisAndXYPlane(a, b Coord) (Rotation, error) {
	xAxis, err := a.Normalize()
	if err != nil {
		return Rotation{}, ErrDegenerateFrame
	}

	// Remove the xAxis component from b, leaving the part in the y-z plane
	// of the new frame; this must itself be non-zero for a proper frame.
	bPerp := b.Sub(xAxis.Scale(xAxis.Dot(b)))
	yAxis, err := bPerp.Normalize()
	if err != nil {
		return Rotation{}, ErrDegenerateFrame
	}

	zAxis := xAxis.Cross(yAxis)

	// Rows of R map world coordinates into the new frame: R*a == (|a|,0,0)
	// and R*b has non-negative y-component by construction.
	return Rotation{row: [3]Coord{xAxis, yAxis, zAxis}}, nil
}

// AngleBetweenRotations returns the rotation angle between r1 and r2, in
// [0, π], via the trace of r1^T * r2 (equivalently r2 composed with r1's
// inverse).
func AngleBetweenRotations(r1, r2 Rotation) float64 {
	rel := r1.Transpose().Compose(r2)
	trace := rel.row[0].X + rel.row[1].Y + rel.row[2].Z
	cosTheta := (trace - 1) / 2
	if cosTheta > 1 {
		cosTheta = 1
	}
	if cosTheta < -1 {
		cosTheta = -1
	}
	return math.Acos(cosTheta)
}

// ReorthonormalizeViaQR corrects r against accumulated floating-point drift
// by taking the QR decomposition of its row matrix and returning the
// orthonormal factor, with column signs chosen so that the triangular
// factor's diagonal is non-negative (an exact rotation is returned as is).
func (r Rotation) ReorthonormalizeViaQR() (Rotation, error) {
	m, err := rowsToDense(r)
	if err != nil {
		return Rotation{}, err
	}
	q, rr, err := qrDecompose(m)
	if err != nil {
		return Rotation{}, err
	}
	for k := 0; k < 3; k++ {
		d, _ := rr.At(k, k)
		if d >= 0 {
			continue
		}
		for i := 0; i < 3; i++ {
			v, _ := q.At(i, k)
			_ = q.Set(i, k, -v)
		}
	}
	return denseToRows(q)
}
