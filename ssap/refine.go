package ssap

import (
	"fmt"

	"github.com/katalvlaran/strucalign/alignment"
	"github.com/katalvlaran/strucalign/multialign"
	"github.com/katalvlaran/strucalign/protein"
	"github.com/katalvlaran/strucalign/viewcache"
	"github.com/katalvlaran/strucalign/xerrors"
)

// MultiRefiner implements multialign.Refiner over a fixed set of proteins
// and their view caches, indexed by entry number in the order a
// multialign.Builder assigns them.
type MultiRefiner struct {
	proteins []*protein.Protein
	caches   []*viewcache.Cache
	cfg      Config
}

// NewMultiRefiner returns a MultiRefiner over proteins and their
// already-built view caches, which must be the same length and in the same
// entry order a multialign.Builder will be fed.
func NewMultiRefiner(proteins []*protein.Protein, caches []*viewcache.Cache, cfg Config) (*MultiRefiner, error) {
	if len(proteins) != len(caches) {
		return nil, fmt.Errorf("ssap: proteins/caches length mismatch: %w", xerrors.InvalidArgument)
	}
	return &MultiRefiner{proteins: proteins, caches: caches, cfg: cfg}, nil
}

// RefinePair implements multialign.Refiner: it re-runs the outer dynamic
// program between entryA and entryB restricted to the positions already
// aligned between them, then re-glues every other entry in g back in via
// its existing relation to entryA. A result identical to g's current
// alignment is a legitimate outcome (the pair had already converged) and
// is returned as a normal (non-nil, non-error) Group.
func (r *MultiRefiner) RefinePair(g *multialign.Group, entryA, entryB int) (*multialign.Group, error) {
	refinedAB, err := r.refinePairAlignment(g, entryA, entryB)
	if err != nil && err != ErrRefinementDiverged {
		return nil, err
	}
	// ErrRefinementDiverged means the iteration cap was hit without settling;
	// refinedAB still holds the last iteration's alignment, which is used as
	// the best available result rather than discarded.

	rebuilt, err := multialign.NewGroupFromPair(entryA, entryB, refinedAB)
	if err != nil {
		return nil, err
	}
	for _, e := range g.Entries() {
		if e == entryA || e == entryB {
			continue
		}
		bridge, err := pairColumns(g, entryA, e)
		if err != nil {
			return nil, err
		}
		rebuilt, err = rebuilt.GlueIn(nil, bridge, entryA, e)
		if err != nil {
			return nil, err
		}
	}
	return rebuilt, nil
}

// RefineAll implements multialign.Refiner: it applies RefinePair to every
// pair of entries currently in g, in ascending entry order, threading the
// group through each refinement in turn.
func (r *MultiRefiner) RefineAll(g *multialign.Group) (*multialign.Group, error) {
	entries := g.Entries()
	current := g
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			refined, err := r.RefinePair(current, entries[i], entries[j])
			if err != nil {
				return nil, err
			}
			current = refined
		}
	}
	return current, nil
}

// refinePairAlignment recomputes the pairwise alignment between entryA and
// entryB, anchoring the outer loop on the positions g's current alignment
// already pairs them at, iterating until the recomputed alignment stops
// changing or a two-cycle (oscillation back to an earlier iteration's
// result) is detected, or the iteration cap is reached.
func (r *MultiRefiner) refinePairAlignment(g *multialign.Group, entryA, entryB int) (*alignment.Alignment, error) {
	current, err := pairColumns(g, entryA, entryB)
	if err != nil {
		return nil, err
	}

	pa, pb := r.proteins[entryA], r.proteins[entryB]
	vcA, vcB := r.caches[entryA], r.caches[entryB]

	var prev *alignment.Alignment
	for iter := 0; iter < r.cfg.MaxRefinementIterations; iter++ {
		anchors := alignedPairs(current)
		scores, anchorCount, err := buildScoreMatrixRestricted(pa.Residues(), pb.Residues(), vcA, vcB, r.cfg, anchors)
		if err != nil || anchorCount == 0 {
			// No anchors survive restriction (e.g. the pair had no aligned
			// residues at all): the current alignment is as good as it gets.
			return current, nil
		}
		next, _, err := alignFromMatrix(scores, pa.Len(), pb.Len(), r.cfg)
		if err != nil {
			return nil, err
		}

		if sameAlignment(next, current) {
			return next, nil
		}
		if prev != nil && sameAlignment(next, prev) {
			return next, nil // two-cycle: oscillating, stop on the repeated result
		}
		prev, current = current, next
	}
	return current, ErrRefinementDiverged
}

// pairColumns extracts the two-entry alignment between entryA and entryB as
// g currently has it, preserving row order.
func pairColumns(g *multialign.Group, entryA, entryB int) (*alignment.Alignment, error) {
	aln := g.Alignment()
	entries := g.Entries()
	colA, colB := -1, -1
	for idx, e := range entries {
		if e == entryA {
			colA = idx
		}
		if e == entryB {
			colB = idx
		}
	}
	if colA < 0 || colB < 0 {
		return nil, fmt.Errorf("ssap: entry not in group: %w", xerrors.InvalidArgument)
	}

	out, err := alignment.New(2)
	if err != nil {
		return nil, err
	}
	for row := 0; row < aln.RowCount(); row++ {
		pA, okA := aln.PositionAt(row, colA)
		pB, okB := aln.PositionAt(row, colB)
		if !okA && !okB {
			continue
		}
		posA, posB := alignment.NoPosition, alignment.NoPosition
		if okA {
			posA = pA
		}
		if okB {
			posB = pB
		}
		if err := out.AppendRow([]int{posA, posB}); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// alignedPairs returns the (p,q) index pairs aln aligns with both sides
// present, in row order.
func alignedPairs(aln *alignment.Alignment) [][2]int {
	var out [][2]int
	for row := 0; row < aln.RowCount(); row++ {
		p, okP := aln.PositionAt(row, 0)
		q, okQ := aln.PositionAt(row, 1)
		if okP && okQ {
			out = append(out, [2]int{p, q})
		}
	}
	return out
}

// sameAlignment reports whether a and b have identical row positions for
// both entries, in order.
func sameAlignment(a, b *alignment.Alignment) bool {
	if a.RowCount() != b.RowCount() {
		return false
	}
	for row := 0; row < a.RowCount(); row++ {
		pa, okA := a.PositionAt(row, 0)
		pb, okB := a.PositionAt(row, 1)
		qa, okC := b.PositionAt(row, 0)
		qb, okD := b.PositionAt(row, 1)
		if okA != okC || okB != okD || pa != qa || pb != qb {
			return false
		}
	}
	return true
}
