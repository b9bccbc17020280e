// Package geom provides the geometric primitives of the structural-alignment
// core: 3-vectors, proper rotations as orthonormal matrices and as unit
// quaternions, and angles with wrap semantics.
//
// Dimension-mismatched operands are programmer errors; the zero-vector and
// zero-quaternion failure modes return xerrors.InvalidArgument.
package geom
