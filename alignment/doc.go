// Package alignment implements the core alignment data structure: rows of
// per-entry optional positions with per-position scores, permutation, and
// splitting into independently addressable halves for refinement.
//
// Rows are appended during progressive building and never mutated once
// appended except for score annotation; within one entry, present positions
// along the rows are always strictly increasing.
package alignment
