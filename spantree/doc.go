// Package spantree builds the maximum-similarity spanning tree over a set
// of pairwise structure-comparison scores, and turns that tree into the
// glue order a progressive multi-structure alignment builder consumes.
package spantree
