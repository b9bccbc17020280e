package geom

import "math"

// Coord is an ordered triple of finite real numbers. Immutable by convention:
// every operation returns a new Coord rather than mutating its receiver.
type Coord struct {
	X, Y, Z float64
}

// Add returns c+other.
func (c Coord) Add(other Coord) Coord {
	return Coord{c.X + other.X, c.Y + other.Y, c.Z + other.Z}
}

// Sub returns c-other.
func (c Coord) Sub(other Coord) Coord {
	return Coord{c.X - other.X, c.Y - other.Y, c.Z - other.Z}
}

// Scale returns c scaled by k.
func (c Coord) Scale(k float64) Coord {
	return Coord{c.X * k, c.Y * k, c.Z * k}
}

// Dot returns the scalar dot product c.other.
func (c Coord) Dot(other Coord) float64 {
	return c.X*other.X + c.Y*other.Y + c.Z*other.Z
}

// Cross returns the vector cross product c x other.
func (c Coord) Cross(other Coord) Coord {
	return Coord{
		X: c.Y*other.Z - c.Z*other.Y,
		Y: c.Z*other.X - c.X*other.Z,
		Z: c.X*other.Y - c.Y*other.X,
	}
}

// Length returns the Euclidean norm of c.
func (c Coord) Length() float64 {
	return math.Sqrt(c.Dot(c))
}

// SquaredLength returns the squared Euclidean norm of c, avoiding the sqrt.
func (c Coord) SquaredLength() float64 {
	return c.Dot(c)
}

// Distance returns the Euclidean distance between c and other.
func (c Coord) Distance(other Coord) float64 {
	return c.Sub(other).Length()
}

// SquaredDistance returns the squared Euclidean distance between c and other.
func (c Coord) SquaredDistance(other Coord) float64 {
	return c.Sub(other).SquaredLength()
}

// Normalize returns c scaled to unit length. Fails with ErrZeroVector when
// c has zero length.
func (c Coord) Normalize() (Coord, error) {
	l := c.Length()
	if l == 0 {
		return Coord{}, ErrZeroVector
	}
	return c.Scale(1 / l), nil
}
