package superpose

import "github.com/katalvlaran/strucalign/geom"

// Transform is a rigid-body motion x ↦ R·x + T.
type Transform struct {
	R geom.Rotation
	T geom.Coord
}

// IdentityTransform returns the no-op transform.
func IdentityTransform() Transform {
	return Transform{R: geom.IdentityRotation()}
}

// Apply maps c through the transform.
func (tr Transform) Apply(c geom.Coord) geom.Coord {
	return tr.R.Apply(c).Add(tr.T)
}

// Compose returns the transform equivalent to applying other first and then
// tr: tr.Compose(other).Apply(c) == tr.Apply(other.Apply(c)).
func (tr Transform) Compose(other Transform) Transform {
	return Transform{
		R: tr.R.Compose(other.R),
		T: tr.R.Apply(other.T).Add(tr.T),
	}
}

// Inverse returns the transform that undoes tr.
func (tr Transform) Inverse() Transform {
	rInv := tr.R.Transpose()
	return Transform{R: rInv, T: rInv.Apply(tr.T).Scale(-1)}
}
