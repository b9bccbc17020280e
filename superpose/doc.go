// Package superpose computes rigid-body superpositions between protein
// structures: the Kabsch-style rotation and translation that best overlays
// one set of corresponding coordinates onto another, and the composition of
// pairwise superpositions along a spanning tree into a common frame for an
// arbitrary number of structures.
package superpose
