// File: accessors.go
// Role: Read-only getters over the construction-time flags and a diagnostic
//       snapshot (GraphStats) used by callers such as prim_kruskal and the
//       unweighted adjacency view.

package core

// NewMixedGraph constructs a Graph with mixed-mode enabled, then applies opts
// left-to-right. Sugar for NewGraph(WithMixedEdges(), opts...).
func NewMixedGraph(opts ...GraphOption) *Graph {
	mixed := make([]GraphOption, 0, len(opts)+1)
	mixed = append(mixed, WithMixedEdges())
	mixed = append(mixed, opts...)

	return NewGraph(mixed...)
}

// GraphStats is an O(V+E) read-only summary of a Graph's configuration and size.
type GraphStats struct {
	DirectedDefault     bool
	Weighted            bool
	AllowsMulti         bool
	AllowsLoops         bool
	MixedMode           bool
	VertexCount         int
	EdgeCount           int
	DirectedEdgeCount   int
	UndirectedEdgeCount int
}

// Weighted reports whether the graph treats edge weights as meaningful.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports whether new edges default to directed.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether the graph allows self-loops.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether the graph permits parallel edges.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// MixedEdges reports whether the graph permits per-edge directedness overrides.
func (g *Graph) MixedEdges() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMixed
}

// Stats produces a snapshot of the graph's configuration and size. It never
// holds muVert and muEdgeAdj at the same time.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		DirectedDefault: g.directed,
		Weighted:        g.weighted,
		AllowsMulti:     g.allowMulti,
		AllowsLoops:     g.allowLoops,
		MixedMode:       g.allowMixed,
		VertexCount:     len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if e.Directed {
			stats.DirectedEdgeCount++
		} else {
			stats.UndirectedEdgeCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
