// Package converters bridges core.Graph to gonum.org/v1/gonum/graph, so
// algorithms that only exist in gonum's graph toolkit (connected-component
// analysis via graph/topo, in particular) can run against the same
// similarity graphs this module builds with core.Graph.
package converters
