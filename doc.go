// Package strucalign is the geometric alignment core of a protein-structure
// comparison toolkit: pairwise and multi-structure alignment of residue
// backbones by local-frame view-vector comparison, with the scan index,
// spanning-tree progressive glue, and rigid-body superposition needed to go
// from a set of protein structures to an alignment and a fit.
//
// Layout
//
//	geom/        — coordinates, rotations, quaternions, the wraparound Angle type
//	residue/     — per-residue backbone, frame, amino acid, secondary structure
//	protein/     — an ordered residue chain plus its secondary-structure segments
//	viewcache/   — per-protein cache of pairwise view vectors
//	fingerprint/ — content hashing for cache invalidation
//	alignment/   — the position-tuple alignment data structure, split/rebuild
//	multialign/  — progressive multi-structure alignment via spanning-tree glue
//	spantree/    — maximum-similarity spanning tree and glue-order traversal
//	ssap/        — the two-level dynamic-program pairwise aligner
//	superpose/   — Kabsch rigid-body superposition
//	scanindex/   — orientation-covering spatial index for residue-pair scans
//	criteria/    — match-criteria grammar for scan queries
//	pdbsource/   — protein and alignment I/O interfaces
//	config/      — run configuration
//
// core/, bfs/, dfs/, prim_kruskal/, dtw/, linalg/, and converterts/ are the
// general-purpose graph, traversal, spanning-tree, dynamic-time-warping,
// linear-algebra, and graph-library-bridging primitives the domain packages
// above are built on.
package strucalign
