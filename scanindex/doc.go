// Package scanindex indexes a protein's ordered residue pairs by view
// vector and relative frame orientation, so that a quad lookup between two
// structures can be answered by probing a handful of neighbouring cells
// instead of the full cross product of pairs. Orientation is discretised
// against a fixed covering of SO(3) loaded once at startup; spatial extent
// is discretised by a uniform cell width over the view-vector components.
package scanindex
