package spantree

import (
	"math"
	"strconv"

	"github.com/katalvlaran/strucalign/core"
)

// scoreScale fixes the similarity score into core.Graph's integer edge
// weight: scores are given to two decimal places (NN.NN), so a x100 scale
// round-trips exactly.
const scoreScale = 100

// PairScore is one pairwise comparison score between two entries.
type PairScore struct {
	A, B  int
	Score float64
}

// BuildSimilarityGraph constructs an undirected, weighted core.Graph with
// one vertex per entry in entries and one edge per score in scores.
// Entries are not required to be 0-based or contiguous; vertex IDs are the
// decimal string of the entry index. Fails with ErrNoEntries if entries is
// empty, and ErrUnknownEntry if a score names an entry not in entries.
func BuildSimilarityGraph(entries []int, scores []PairScore) (*core.Graph, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	known := make(map[int]bool, len(entries))
	for _, e := range entries {
		known[e] = true
	}

	g := core.NewGraph(core.WithWeighted())
	for _, e := range entries {
		if err := g.AddVertex(entryID(e)); err != nil {
			return nil, err
		}
	}
	for _, s := range scores {
		if !known[s.A] || !known[s.B] {
			return nil, ErrUnknownEntry
		}
		weight := int64(math.Round(s.Score * scoreScale))
		if _, err := g.AddEdge(entryID(s.A), entryID(s.B), weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func entryID(e int) string { return strconv.Itoa(e) }

func parseEntryID(id string) (int, error) { return strconv.Atoi(id) }
