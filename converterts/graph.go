package converters

import (
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/strucalign/core"
)

// ToGonumWeightedUndirected converts g, an undirected weighted core.Graph
// whose vertex IDs are decimal entry indices (as spantree's similarity
// graphs are), into a gonum simple.WeightedUndirectedGraph. Edge weights
// pass through unchanged, so the x100 fixed-point scaling spantree
// applies to similarity scores is still present; dividing by 100 recovers
// the real-valued scores.
func ToGonumWeightedUndirected(g *core.Graph) (*simple.WeightedUndirectedGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	out := simple.NewWeightedUndirectedGraph(0, 0)
	for _, id := range g.Vertices() {
		n, err := entryNode(id)
		if err != nil {
			return nil, err
		}
		if !out.Has(n.ID()) {
			out.AddNode(n)
		}
	}
	for _, e := range g.Edges() {
		from, err := entryNode(e.From)
		if err != nil {
			return nil, err
		}
		to, err := entryNode(e.To)
		if err != nil {
			return nil, err
		}
		out.SetWeightedEdge(simple.WeightedEdge{F: from, T: to, W: float64(e.Weight)})
	}

	return out, nil
}

// ConnectedComponents runs gonum's graph/topo connected-components search
// over g and returns each component as the set of entry indices it
// contains. It exists as an implementation-independent cross-check of
// core-graph-native connectivity logic (e.g. a spanning-tree builder's own
// union-find), not as the primary connectivity path.
func ConnectedComponents(g *core.Graph) ([][]int, error) {
	gonumGraph, err := ToGonumWeightedUndirected(g)
	if err != nil {
		return nil, err
	}
	return connectedComponentsOf(gonumGraph)
}

func connectedComponentsOf(g graph.Undirected) ([][]int, error) {
	comps := topoConnectedComponents(g)
	out := make([][]int, len(comps))
	for i, comp := range comps {
		entries := make([]int, len(comp))
		for j, n := range comp {
			entries[j] = int(n.ID())
		}
		out[i] = entries
	}
	return out, nil
}

func entryNode(vertexID string) (simple.Node, error) {
	id, err := strconv.ParseInt(vertexID, 10, 64)
	if err != nil {
		return 0, ErrNonIntegerVertexID
	}
	return simple.Node(id), nil
}
