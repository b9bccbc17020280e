package converters

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"
)

func topoConnectedComponents(g graph.Undirected) [][]graph.Node {
	return topo.ConnectedComponents(g)
}
