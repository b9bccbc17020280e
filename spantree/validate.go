package spantree

import (
	"github.com/katalvlaran/strucalign/converterts"
	"github.com/katalvlaran/strucalign/core"
	"github.com/katalvlaran/strucalign/dfs"
)

// Validate checks that tree is exactly a spanning tree over entries: one
// fewer edge than entries, acyclic, and connected. Acyclicity is checked
// with dfs.DetectCycles; connectivity is checked via gonum/graph/topo through
// the converters bridge, independently of the union-find walk
// MaxSpanningTree itself uses.
func Validate(entries []int, tree []Edge) error {
	if len(tree) != len(entries)-1 {
		return ErrNotATree
	}

	g := core.NewGraph()
	for _, e := range entries {
		if err := g.AddVertex(entryID(e)); err != nil {
			return err
		}
	}
	for _, e := range tree {
		if _, err := g.AddEdge(entryID(e.A), entryID(e.B), 0); err != nil {
			return err
		}
	}

	hasCycle, _, err := dfs.DetectCycles(g)
	if err != nil {
		return err
	}
	if hasCycle {
		return ErrNotATree
	}

	comps, err := converters.ConnectedComponents(g)
	if err != nil {
		return err
	}
	if len(comps) != 1 || len(comps[0]) != len(entries) {
		return ErrNotATree
	}

	return nil
}
