// Package multialign builds a multi-structure alignment by progressively
// gluing pairwise alignments together along a spanning tree's glue order,
// with optional refinement at each join.
package multialign
