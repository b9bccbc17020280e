package geom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strucalign/geom"
)

func TestRotationToXAxisAndXYPlane_PlacesAOnXAxis(t *testing.T) {
	a := geom.Coord{X: 0, Y: 3, Z: 0}
	b := geom.Coord{X: 1, Y: 0, Z: 1}

	r, err := geom.RotationToXAxisAndXYPlane(a, b)
	require.NoError(t, err)

	rotatedA := r.Apply(a)
	require.InDelta(t, a.Length(), rotatedA.X, 1e-9)
	require.InDelta(t, 0, rotatedA.Y, 1e-9)
	require.InDelta(t, 0, rotatedA.Z, 1e-9)

	rotatedB := r.Apply(b)
	require.True(t, rotatedB.Y >= -1e-9)
}

func TestRotationToXAxisAndXYPlane_DegenerateFails(t *testing.T) {
	a := geom.Coord{}
	b := geom.Coord{X: 1}
	_, err := geom.RotationToXAxisAndXYPlane(a, b)
	require.ErrorIs(t, err, geom.ErrDegenerateFrame)
}

func TestRotation_ApplyPreservesLength(t *testing.T) {
	a := geom.Coord{X: 1, Y: 0, Z: 0}
	b := geom.Coord{X: 0, Y: 1, Z: 1}
	r, err := geom.RotationToXAxisAndXYPlane(a, b)
	require.NoError(t, err)

	v := geom.Coord{X: 3, Y: -2, Z: 5}
	rotated := r.Apply(v)
	require.InDelta(t, v.Length(), rotated.Length(), 1e-9)
}

func TestAngleBetweenRotations_SelfIsZero(t *testing.T) {
	r := geom.IdentityRotation()
	require.InDelta(t, 0, geom.AngleBetweenRotations(r, r), 1e-9)
}

func TestReorthonormalizeViaQR_KeepsIdentity(t *testing.T) {
	r := geom.IdentityRotation()
	fixed, err := r.ReorthonormalizeViaQR()
	require.NoError(t, err)

	v := geom.Coord{X: 1, Y: 2, Z: 3}
	require.InDelta(t, v.Length(), fixed.Apply(v).Length(), 1e-6)
}
