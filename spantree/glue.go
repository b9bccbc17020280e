package spantree

import (
	"github.com/katalvlaran/strucalign/bfs"
	"github.com/katalvlaran/strucalign/core"
)

// Branch is one step of a glue order: entryAlready is the entry already
// merged into the growing alignment (or, for the first branch, the chosen
// root), entryNew is the entry the branch attaches, at the given
// similarity score.
type Branch struct {
	EntryAlready int
	EntryNew     int
	Score        float64
}

// GlueOrder walks tree in breadth-first order from root, returning the
// branches in the order a Builder should fold them in: every branch names
// an already-visited entry and the new entry BFS discovers through it,
// so a progressive builder never needs to look ahead.
//
// root must be one of the entries spanned by tree.
func GlueOrder(tree []Edge, root int) ([]Branch, error) {
	// bfs.BFS refuses weighted graphs, and the tree's only purpose here is
	// its shape, so the graph is built unweighted; real scores travel
	// separately in scoreOf.
	g := core.NewGraph()
	scoreOf := make(map[[2]string]float64, len(tree))
	entries := map[int]bool{root: true}
	for _, e := range tree {
		entries[e.A] = true
		entries[e.B] = true
	}
	for e := range entries {
		if err := g.AddVertex(entryID(e)); err != nil {
			return nil, err
		}
	}
	for _, e := range tree {
		if _, err := g.AddEdge(entryID(e.A), entryID(e.B), 0); err != nil {
			return nil, err
		}
		scoreOf[[2]string{entryID(e.A), entryID(e.B)}] = e.Score
		scoreOf[[2]string{entryID(e.B), entryID(e.A)}] = e.Score
	}

	if !g.HasVertex(entryID(root)) {
		return nil, ErrUnknownEntry
	}

	res, err := bfs.BFS(g, entryID(root))
	if err != nil {
		return nil, err
	}

	branches := make([]Branch, 0, len(res.Order)-1)
	for _, id := range res.Order {
		parent, ok := res.Parent[id]
		if !ok {
			continue // root has no parent
		}
		a, err := parseEntryID(parent)
		if err != nil {
			return nil, err
		}
		b, err := parseEntryID(id)
		if err != nil {
			return nil, err
		}
		score := scoreOf[[2]string{parent, id}]
		branches = append(branches, Branch{EntryAlready: a, EntryNew: b, Score: score})
	}

	return branches, nil
}
