package multialign

import (
	"github.com/katalvlaran/strucalign/alignment"
)

// GlueStyle selects how much refinement is applied as each pairwise branch
// is glued into the growing multi-structure alignment.
type GlueStyle int

const (
	// Simply glues each branch in with no subsequent refinement.
	Simply GlueStyle = iota

	// IncrementallyWithPairRefining re-scores and refines the two entries
	// directly involved in a join immediately after gluing.
	IncrementallyWithPairRefining

	// WithHeavyRefining re-refines every entry in the resulting group after
	// each join, at higher cost.
	WithHeavyRefining
)

func (s GlueStyle) String() string {
	switch s {
	case Simply:
		return "SIMPLY"
	case IncrementallyWithPairRefining:
		return "INCREMENTALLY_WITH_PAIR_REFINING"
	case WithHeavyRefining:
		return "WITH_HEAVY_REFINING"
	default:
		return "UNKNOWN"
	}
}

// Refiner re-scores and locally re-aligns entries within a group after a
// join, returning a possibly-adjusted group. Implementations live in the
// package that owns the residue-pair scoring machinery; Builder only calls
// through the interface so it stays independent of that machinery.
type Refiner interface {
	RefinePair(g *Group, entryA, entryB int) (*Group, error)
	RefineAll(g *Group) (*Group, error)
}

// Builder progressively assembles a multi-structure alignment by gluing
// pairwise alignments together in the order it is given them, tracking
// which group each entry currently belongs to. Entries are expected to
// arrive in an order where the second entry of a branch is always new to
// the builder (e.g. a spanning tree's BFS glue order), so GlueIn is the
// primary merge path and groups never need to be merged whole; the whole-
// group merge path exists for callers that cannot guarantee that order.
type Builder struct {
	groups            []*Group
	groupIndexOfEntry map[int]int
	refiner           Refiner
	sink              diagnosticSink
}

// NewBuilder constructs an empty Builder. refiner may be nil, in which case
// every GlueStyle behaves like Simply. sink receives GlueWarning text and
// may be nil to discard it.
func NewBuilder(refiner Refiner, sink diagnosticSink) *Builder {
	return &Builder{
		groupIndexOfEntry: make(map[int]int),
		refiner:           refiner,
		sink:              sink,
	}
}

// AddAlignmentBranch folds one pairwise alignment (between entryA and
// entryB, in that column order) into the builder's accumulated groups.
//
//   - If neither entry has been seen before, a new two-entry Group is
//     seeded directly from aln.
//   - If exactly one entry has been seen, it is glued into that entry's
//     existing group via Group.GlueIn.
//   - If both entries have been seen in different groups, the groups are
//     merged via GlueInCopyOfGroup.
//   - If both entries have been seen in the same group already, the branch
//     is redundant and is ignored.
//
// style selects what refinement, if any, runs after the join.
func (b *Builder) AddAlignmentBranch(entryA, entryB int, aln *alignment.Alignment, style GlueStyle) error {
	if aln.EntryCount() != 2 {
		return ErrIncompatibleEntryCounts
	}

	giA, okA := b.groupIndexOfEntry[entryA]
	giB, okB := b.groupIndexOfEntry[entryB]

	switch {
	case !okA && !okB:
		g, err := NewGroupFromPair(entryA, entryB, aln)
		if err != nil {
			return err
		}
		gi := len(b.groups)
		b.groups = append(b.groups, g)
		b.groupIndexOfEntry[entryA] = gi
		b.groupIndexOfEntry[entryB] = gi
		return b.refine(gi, entryA, entryB, style)

	case okA && !okB:
		merged, err := b.groups[giA].GlueIn(b.sink, aln, entryA, entryB)
		if err != nil {
			return err
		}
		b.groups[giA] = merged
		b.groupIndexOfEntry[entryB] = giA
		return b.refine(giA, entryA, entryB, style)

	case !okA && okB:
		flipped, err := alignment.New(2)
		if err != nil {
			return err
		}
		for r := 0; r < aln.RowCount(); r++ {
			pA, _ := aln.PositionAt(r, 0)
			pB, _ := aln.PositionAt(r, 1)
			if err := flipped.AppendRow([]int{pB, pA}); err != nil {
				return err
			}
		}
		merged, err := b.groups[giB].GlueIn(b.sink, flipped, entryB, entryA)
		if err != nil {
			return err
		}
		b.groups[giB] = merged
		b.groupIndexOfEntry[entryA] = giB
		return b.refine(giB, entryA, entryB, style)

	default: // okA && okB, possibly in different groups
		if giA == giB {
			return nil
		}
		// Neither group shares a column yet, only aln bridges entryA and
		// entryB. Graft entryA into entryB's group via the bridge first
		// (so the two groups come to share entryA as a real column), then
		// merge the whole of entryB's group into entryA's via that shared
		// column.
		flipped, err := alignment.New(2)
		if err != nil {
			return err
		}
		for r := 0; r < aln.RowCount(); r++ {
			pA, _ := aln.PositionAt(r, 0)
			pB, _ := aln.PositionAt(r, 1)
			if err := flipped.AppendRow([]int{pB, pA}); err != nil {
				return err
			}
		}
		otherPlusA, err := b.groups[giB].GlueIn(b.sink, flipped, entryB, entryA)
		if err != nil {
			return err
		}
		merged, err := b.groups[giA].GlueInCopyOfGroup(b.sink, otherPlusA, entryA)
		if err != nil {
			return err
		}
		oldEntries := b.groups[giB].Entries()
		b.groups[giA] = merged
		for _, e := range oldEntries {
			b.groupIndexOfEntry[e] = giA
		}
		b.groups[giB] = nil
		return b.refine(giA, entryA, entryB, style)
	}
}

func (b *Builder) refine(gi, entryA, entryB int, style GlueStyle) error {
	if b.refiner == nil || style == Simply {
		return nil
	}
	g := b.groups[gi]
	if g == nil {
		return nil
	}
	var refined *Group
	var err error
	switch style {
	case IncrementallyWithPairRefining:
		refined, err = b.refiner.RefinePair(g, entryA, entryB)
	case WithHeavyRefining:
		refined, err = b.refiner.RefineAll(g)
	default:
		return nil
	}
	if err != nil {
		return err
	}
	if refined != nil {
		b.groups[gi] = refined
	}
	return nil
}

// Group returns the current group containing entry, or nil if entry has
// not been added to any branch yet.
func (b *Builder) Group(entry int) *Group {
	gi, ok := b.groupIndexOfEntry[entry]
	if !ok {
		return nil
	}
	return b.groups[gi]
}

// Groups returns every live (non-empty) group the builder currently holds.
// More than one group means the entries added so far do not yet form a
// single connected alignment.
func (b *Builder) Groups() []*Group {
	var out []*Group
	for _, g := range b.groups {
		if g != nil {
			out = append(out, g)
		}
	}
	return out
}
