// Package viewcache precomputes, for every ordered residue pair (i,j) in a
// protein, the view vector: j's Cβ expressed in i's local frame. The cache
// is dense and built once per protein so the aligner can fetch any view in
// O(1).
package viewcache
