package spantree

import (
	"errors"

	"github.com/katalvlaran/strucalign/core"
	"github.com/katalvlaran/strucalign/prim_kruskal"
)

// Edge is one edge of a built spanning tree, decoded back to entry indices
// and a real-valued similarity score.
type Edge struct {
	A, B  int
	Score float64
}

// MaxSpanningTree computes the maximum-similarity spanning tree of g, an
// undirected weighted similarity graph as built by BuildSimilarityGraph. It
// delegates to prim_kruskal.Kruskal, which sorts edges ascending and
// union-finds a minimum spanning tree; negating every edge weight first
// turns that into the maximum spanning tree, and the decoded scores are
// negated back on the way out.
//
// Fails with ErrDisconnected if g's vertices do not form a single
// connected component.
func MaxSpanningTree(g *core.Graph) ([]Edge, error) {
	if g == nil {
		return nil, ErrNoEntries
	}

	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil, ErrNoEntries
	}
	if len(vertices) == 1 {
		return nil, nil
	}

	negated := core.NewGraph(core.WithWeighted())
	for _, v := range vertices {
		if err := negated.AddVertex(v); err != nil {
			return nil, err
		}
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		if _, err := negated.AddEdge(e.From, e.To, -e.Weight); err != nil {
			return nil, err
		}
	}

	mst, _, err := prim_kruskal.Kruskal(negated)
	if err != nil {
		if errors.Is(err, prim_kruskal.ErrDisconnected) {
			return nil, ErrDisconnected
		}
		return nil, err
	}

	tree := make([]Edge, 0, len(mst))
	for _, e := range mst {
		a, err := parseEntryID(e.From)
		if err != nil {
			return nil, err
		}
		b, err := parseEntryID(e.To)
		if err != nil {
			return nil, err
		}
		tree = append(tree, Edge{A: a, B: b, Score: float64(-e.Weight) / scoreScale})
	}

	return tree, nil
}
