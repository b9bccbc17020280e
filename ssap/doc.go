// Package ssap implements the two-level dynamic-programming pairwise
// structural aligner: an outer loop over candidate residue-pair anchors,
// each driving an inner affine-gap alignment over view-vector context
// scores, averaged into a final score matrix that a last outer alignment
// turns into the pair's alignment. Iterative refinement re-splits and
// re-glues the result until it stops changing or a cycle is detected.
package ssap
