// Package linalg provides the small set of dense-matrix primitives the
// structural-alignment core needs: construction, composition, transpose,
// Householder QR, and Jacobi eigendecomposition of symmetric matrices.
//
// It is grounded on the flat row-major Dense layout and Stage-commented
// style used throughout this codebase's other numeric packages, rebuilt
// from scratch rather than ported line-for-line, since it replaces a
// matrix package whose own source carried irreconcilable duplicate
// definitions (see DESIGN.md).
package linalg
