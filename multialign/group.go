package multialign

import (
	"io"

	"github.com/katalvlaran/strucalign/alignment"
)

// diagnosticSink is the destination for non-fatal glue diagnostics. A nil
// sink silently drops them.
type diagnosticSink = io.Writer

// Group is a multi-entry alignment under construction: a set of original
// structure entries and the Alignment relating their residue positions.
type Group struct {
	entries []int
	aln     *alignment.Alignment
}

// NewGroup starts a fresh Group from a single entry with no rows of its
// own. Builder does not use it; Builder seeds groups with NewGroupFromPair.
func NewGroup(entry int) *Group {
	a, _ := alignment.New(1) // numEntries=1 never fails
	return &Group{entries: []int{entry}, aln: a}
}

// NewGroupFromPair seeds a Group directly from a pairwise alignment between
// two entries, in (entryA, entryB) column order.
func NewGroupFromPair(entryA, entryB int, aln *alignment.Alignment) (*Group, error) {
	if aln.EntryCount() != 2 {
		return nil, ErrIncompatibleEntryCounts
	}
	return &Group{entries: []int{entryA, entryB}, aln: aln}, nil
}

// Entries returns the original entry indices this group covers, in the
// column order of Alignment().
func (g *Group) Entries() []int {
	out := make([]int, len(g.entries))
	copy(out, g.entries)
	return out
}

// Alignment returns the group's current combined alignment.
func (g *Group) Alignment() *alignment.Alignment { return g.aln }

// HasEntry reports whether entry is one of the group's columns.
func (g *Group) HasEntry(entry int) bool { return indexOf(g.entries, entry) >= 0 }

// GlueIn merges a pairwise alignment between entryAInSelf (already a member
// of g) and entryBNew (not yet a member) into g, producing a new Group with
// entryBNew appended as its final column. alnAB must have exactly two
// entries, in (entryAInSelf, entryBNew) column order.
//
// The merge walks g's rows and alnAB's rows in lockstep, synchronised on
// entryAInSelf's strictly increasing position stream. Rows where one side
// has no claim on the current position are emitted with gaps on the other
// side. If both sides have a position at the same step but the positions
// disagree, the lower position is advanced first and a GlueWarning is
// written to sink; sink may be nil to discard warnings.
func (g *Group) GlueIn(sink diagnosticSink, alnAB *alignment.Alignment, entryAInSelf, entryBNew int) (*Group, error) {
	if alnAB.EntryCount() != 2 {
		return nil, ErrIncompatibleEntryCounts
	}
	if entryAInSelf == entryBNew {
		return nil, ErrSelfGlue
	}
	colA := indexOf(g.entries, entryAInSelf)
	if colA < 0 {
		return nil, ErrEntryNotInGroup
	}
	if g.HasEntry(entryBNew) {
		return nil, ErrDuplicateEntry
	}

	newEntries := append(append([]int{}, g.entries...), entryBNew)
	out, err := alignment.New(len(newEntries))
	if err != nil {
		return nil, err
	}
	nSelf := len(g.entries)

	selfRows, alnRows := g.aln.RowCount(), alnAB.RowCount()
	i, j := 0, 0
	for i < selfRows || j < alnRows {
		selfPos, selfHas := 0, false
		if i < selfRows {
			selfPos, selfHas = g.aln.PositionAt(i, colA)
		}
		alnPos, alnHas := 0, false
		if j < alnRows {
			alnPos, alnHas = alnAB.PositionAt(j, 0)
		}

		emitSelfOnly := func() error {
			row := gapRow(len(newEntries))
			copy(row[:nSelf], rowPositions(g.aln, i, nSelf))
			return out.AppendRow(row)
		}
		emitAlnOnly := func() error {
			row := gapRow(len(newEntries))
			if p, ok := alnAB.PositionAt(j, 1); ok {
				row[nSelf] = p
			}
			return out.AppendRow(row)
		}
		emitBoth := func() error {
			row := gapRow(len(newEntries))
			copy(row[:nSelf], rowPositions(g.aln, i, nSelf))
			if p, ok := alnAB.PositionAt(j, 1); ok {
				row[nSelf] = p
			}
			return out.AppendRow(row)
		}

		switch {
		case i >= selfRows:
			if err := emitAlnOnly(); err != nil {
				return nil, err
			}
			j++
		case j >= alnRows:
			if err := emitSelfOnly(); err != nil {
				return nil, err
			}
			i++
		case !selfHas:
			if err := emitSelfOnly(); err != nil {
				return nil, err
			}
			i++
		case !alnHas:
			if err := emitAlnOnly(); err != nil {
				return nil, err
			}
			j++
		case selfPos == alnPos:
			if err := emitBoth(); err != nil {
				return nil, err
			}
			i++
			j++
		case selfPos < alnPos:
			reportGlueWarning(sink, GlueWarning{SharedEntry: entryAInSelf, GroupPosition: selfPos, IncomingPosition: alnPos})
			if err := emitSelfOnly(); err != nil {
				return nil, err
			}
			i++
		default: // alnPos < selfPos
			reportGlueWarning(sink, GlueWarning{SharedEntry: entryAInSelf, GroupPosition: selfPos, IncomingPosition: alnPos})
			if err := emitAlnOnly(); err != nil {
				return nil, err
			}
			j++
		}
	}

	return &Group{entries: newEntries, aln: out}, nil
}

// GlueInCopyOfGroup merges all of other's entries into g via their shared
// entry sharedEntry, which must be present in both groups. It generalises
// GlueIn to merge a whole group's columns at once rather than a single
// pairwise alignment's second column.
func (g *Group) GlueInCopyOfGroup(sink diagnosticSink, other *Group, sharedEntry int) (*Group, error) {
	colSelf := indexOf(g.entries, sharedEntry)
	if colSelf < 0 {
		return nil, ErrEntryNotInGroup
	}
	colOther := indexOf(other.entries, sharedEntry)
	if colOther < 0 {
		return nil, ErrEntryNotInGroup
	}

	var extraEntries, extraCols []int
	for idx, e := range other.entries {
		if idx == colOther {
			continue
		}
		if g.HasEntry(e) {
			return nil, ErrDuplicateEntry
		}
		extraEntries = append(extraEntries, e)
		extraCols = append(extraCols, idx)
	}

	newEntries := append(append([]int{}, g.entries...), extraEntries...)
	out, err := alignment.New(len(newEntries))
	if err != nil {
		return nil, err
	}
	nSelf := len(g.entries)

	selfRows, otherRows := g.aln.RowCount(), other.aln.RowCount()
	i, j := 0, 0
	for i < selfRows || j < otherRows {
		selfPos, selfHas := 0, false
		if i < selfRows {
			selfPos, selfHas = g.aln.PositionAt(i, colSelf)
		}
		otherPos, otherHas := 0, false
		if j < otherRows {
			otherPos, otherHas = other.aln.PositionAt(j, colOther)
		}

		emitSelfOnly := func() error {
			row := gapRow(len(newEntries))
			copy(row[:nSelf], rowPositions(g.aln, i, nSelf))
			return out.AppendRow(row)
		}
		emitOtherOnly := func() error {
			row := gapRow(len(newEntries))
			for k, col := range extraCols {
				if p, ok := other.aln.PositionAt(j, col); ok {
					row[nSelf+k] = p
				}
			}
			return out.AppendRow(row)
		}
		emitBoth := func() error {
			row := gapRow(len(newEntries))
			copy(row[:nSelf], rowPositions(g.aln, i, nSelf))
			for k, col := range extraCols {
				if p, ok := other.aln.PositionAt(j, col); ok {
					row[nSelf+k] = p
				}
			}
			return out.AppendRow(row)
		}

		switch {
		case i >= selfRows:
			if err := emitOtherOnly(); err != nil {
				return nil, err
			}
			j++
		case j >= otherRows:
			if err := emitSelfOnly(); err != nil {
				return nil, err
			}
			i++
		case !selfHas:
			if err := emitSelfOnly(); err != nil {
				return nil, err
			}
			i++
		case !otherHas:
			if err := emitOtherOnly(); err != nil {
				return nil, err
			}
			j++
		case selfPos == otherPos:
			if err := emitBoth(); err != nil {
				return nil, err
			}
			i++
			j++
		case selfPos < otherPos:
			reportGlueWarning(sink, GlueWarning{SharedEntry: sharedEntry, GroupPosition: selfPos, IncomingPosition: otherPos})
			if err := emitSelfOnly(); err != nil {
				return nil, err
			}
			i++
		default:
			reportGlueWarning(sink, GlueWarning{SharedEntry: sharedEntry, GroupPosition: selfPos, IncomingPosition: otherPos})
			if err := emitOtherOnly(); err != nil {
				return nil, err
			}
			j++
		}
	}

	return &Group{entries: newEntries, aln: out}, nil
}

func indexOf(xs []int, v int) int {
	for i, x := range xs {
		if x == v {
			return i
		}
	}
	return -1
}

func gapRow(width int) []int {
	row := make([]int, width)
	for i := range row {
		row[i] = alignment.NoPosition
	}
	return row
}

func rowPositions(a *alignment.Alignment, row, width int) []int {
	out := make([]int, width)
	for e := 0; e < width; e++ {
		if p, ok := a.PositionAt(row, e); ok {
			out[e] = p
		} else {
			out[e] = alignment.NoPosition
		}
	}
	return out
}
