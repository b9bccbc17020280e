package geom

import "math"

// QuatRot is a unit quaternion (w,x,y,z) representing a proper rotation.
// Normalisation is enforced on construction and reapplied on every operation
// that can drift, even when mathematically unnecessary, to avoid drift
// accumulation.
type QuatRot struct {
	W, X, Y, Z float64
}

// IdentityQuatRot returns the identity rotation quaternion.
func IdentityQuatRot() QuatRot {
	return QuatRot{W: 1}
}

func (q QuatRot) norm() float64 {
	return math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// Normalize rescales q to unit L2 norm. Fails with ErrZeroQuaternion if q's
// norm is zero.
func (q QuatRot) Normalize() (QuatRot, error) {
	n := q.norm()
	if n == 0 {
		return QuatRot{}, ErrZeroQuaternion
	}
	inv := 1 / n
	return QuatRot{W: q.W * inv, X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv}, nil
}

// Dot returns the 4-vector dot product of q and other.
func (q QuatRot) Dot(other QuatRot) float64 {
	return q.W*other.W + q.X*other.X + q.Y*other.Y + q.Z*other.Z
}

// Compose returns the quaternion product q*other, i.e. the rotation other
// followed by q.
func (q QuatRot) Compose(other QuatRot) QuatRot {
	out := QuatRot{
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
	}
	normalized, err := out.Normalize()
	if err != nil {
		// Composition of two unit quaternions cannot have zero norm short of
		// operand corruption; surface the identity rather than propagate a
		// failure from a function with no error return.
		return IdentityQuatRot()
	}
	return normalized
}

// Conjugate returns the inverse of q (for a unit quaternion, the conjugate).
func (q QuatRot) Conjugate() QuatRot {
	return QuatRot{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Rotate applies q's rotation to point p.
func (q QuatRot) Rotate(p Coord) Coord {
	return MakeRotationFromQuatRot(q).Apply(p)
}

// Angle returns the rotation angle represented by q, in [0, π].
func (q QuatRot) Angle() float64 {
	w := q.W
	if w > 1 {
		w = 1
	}
	if w < -1 {
		w = -1
	}
	return 2 * math.Acos(math.Abs(w))
}

// AngleBetween returns the rotation angle between a and b, in [0, π].
// angle(a,b) == angle(b,a).
func AngleBetween(a, b QuatRot) float64 {
	return a.Conjugate().Compose(b).Angle()
}

// Distance1Between returns 1 - |a.b|, a cheaper, monotone-in-angle proxy
// for AngleBetween used as the primary near-neighbour criterion in scanindex.
func Distance1Between(a, b QuatRot) float64 {
	return 1 - math.Abs(a.Dot(b))
}

// InterpolateAngle returns the quaternion at angular fraction t along the
// geodesic from a to b, taking the short way round. Fails with
// ErrFractionOutOfRange when t is outside [0,1].
func InterpolateAngle(a, b QuatRot, t float64) (QuatRot, error) {
	if t < 0 || t > 1 {
		return QuatRot{}, ErrFractionOutOfRange
	}

	dot := a.Dot(b)
	if dot < 0 {
		b = QuatRot{W: -b.W, X: -b.X, Y: -b.Y, Z: -b.Z}
		dot = -dot
	}

	const closeThreshold = 1 - 1e-9
	if dot > closeThreshold {
		// Nearly identical: fall back to linear blend then renormalise.
		lerp := QuatRot{
			W: a.W + t*(b.W-a.W),
			X: a.X + t*(b.X-a.X),
			Y: a.Y + t*(b.Y-a.Y),
			Z: a.Z + t*(b.Z-a.Z),
		}
		return lerp.Normalize()
	}

	theta0 := math.Acos(dot)
	theta := theta0 * t
	sinTheta0 := math.Sin(theta0)
	sinTheta := math.Sin(theta)

	s0 := math.Cos(theta) - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0

	return QuatRot{
		W: s0*a.W + s1*b.W,
		X: s0*a.X + s1*b.X,
		Y: s0*a.Y + s1*b.Y,
		Z: s0*a.Z + s1*b.Z,
	}.Normalize()
}

// MidPoint returns the quaternion halfway along the geodesic from a to b.
func MidPoint(a, b QuatRot) (QuatRot, error) {
	return InterpolateAngle(a, b, 0.5)
}

// FromFirstTowardSecondAtAngle returns the quaternion reached by rotating
// from a toward b by exactly theta radians. Fails with
// ErrAngleExceedsSeparation when theta exceeds angle(a,b); returns a when
// angle(a,b) is zero.
func FromFirstTowardSecondAtAngle(a, b QuatRot, theta float64) (QuatRot, error) {
	sep := AngleBetween(a, b)
	if sep == 0 {
		return a, nil
	}
	if theta > sep {
		return QuatRot{}, ErrAngleExceedsSeparation
	}
	return InterpolateAngle(a, b, theta/sep)
}

// MakeQuatRotFromRotation produces the unique unit quaternion with
// non-negative scalar part representing r, using the standard
// sign-of-diagonal-trace rule.
func MakeQuatRotFromRotation(r Rotation) QuatRot {
	m00, m01, m02 := r.row[0].X, r.row[0].Y, r.row[0].Z
	m10, m11, m12 := r.row[1].X, r.row[1].Y, r.row[1].Z
	m20, m21, m22 := r.row[2].X, r.row[2].Y, r.row[2].Z

	trace := m00 + m11 + m22
	var q QuatRot
	switch {
	case trace > 0:
		s := math.Sqrt(trace+1) * 2
		q = QuatRot{
			W: 0.25 * s,
			X: (m21 - m12) / s,
			Y: (m02 - m20) / s,
			Z: (m10 - m01) / s,
		}
	case m00 > m11 && m00 > m22:
		s := math.Sqrt(1+m00-m11-m22) * 2
		q = QuatRot{
			W: (m21 - m12) / s,
			X: 0.25 * s,
			Y: (m01 + m10) / s,
			Z: (m02 + m20) / s,
		}
	case m11 > m22:
		s := math.Sqrt(1+m11-m00-m22) * 2
		q = QuatRot{
			W: (m02 - m20) / s,
			X: (m01 + m10) / s,
			Y: 0.25 * s,
			Z: (m12 + m21) / s,
		}
	default:
		s := math.Sqrt(1+m22-m00-m11) * 2
		q = QuatRot{
			W: (m10 - m01) / s,
			X: (m02 + m20) / s,
			Y: (m12 + m21) / s,
			Z: 0.25 * s,
		}
	}

	normalized, err := q.Normalize()
	if err != nil {
		return IdentityQuatRot()
	}
	if normalized.W < 0 {
		normalized = QuatRot{W: -normalized.W, X: -normalized.X, Y: -normalized.Y, Z: -normalized.Z}
	}
	return normalized
}

// MakeRotationFromQuatRot produces the rotation matrix represented by q.
func MakeRotationFromQuatRot(q QuatRot) Rotation {
	w, x, y, z := q.W, q.X, q.Y, q.Z
	return Rotation{row: [3]Coord{
		{X: 1 - 2*(y*y+z*z), Y: 2 * (x*y - z*w), Z: 2 * (x*z + y*w)},
		{X: 2 * (x*y + z*w), Y: 1 - 2*(x*x+z*z), Z: 2 * (y*z - x*w)},
		{X: 2 * (x*z - y*w), Y: 2 * (y*z + x*w), Z: 1 - 2*(x*x+y*y)},
	}}
}

// RandomQuatRot returns a deterministic random unit quaternion using rnd,
// which must return uniform reals in [-1,1]. Rejects the all-zero tuple by
// recursion.
func RandomQuatRot(rnd func() float64) QuatRot {
	w, x, y, z := rnd(), rnd(), rnd(), rnd()
	if w == 0 && x == 0 && y == 0 && z == 0 {
		return RandomQuatRot(rnd)
	}
	q, err := QuatRot{W: w, X: x, Y: y, Z: z}.Normalize()
	if err != nil {
		return RandomQuatRot(rnd)
	}
	return q
}
