package alignment

import "math"

// NoPosition marks a gap: the entry has no residue at this row.
const NoPosition = -1

// noScore marks a row/entry cell with no recorded score.
const noScore = math.MinInt64

// Row is one row of an Alignment: a tuple of per-entry optional positions,
// plus optional per-position scores.
type Row struct {
	pos    []int
	scores []float64
}

// Alignment is an ordered list of Rows over a fixed number of entries.
type Alignment struct {
	numEntries int
	rows       []Row
	lastPos    []int // last appended position per entry, for monotonicity
}

// New constructs an empty Alignment over numEntries entries. Fails with
// ErrBadEntryCount if numEntries <= 0.
func New(numEntries int) (*Alignment, error) {
	if numEntries <= 0 {
		return nil, ErrBadEntryCount
	}
	last := make([]int, numEntries)
	for i := range last {
		last[i] = NoPosition
	}
	return &Alignment{numEntries: numEntries, lastPos: last}, nil
}

// EntryCount returns the number of entries (structures) in the alignment.
func (a *Alignment) EntryCount() int { return a.numEntries }

// RowCount returns the number of rows.
func (a *Alignment) RowCount() int { return len(a.rows) }

// AppendRow appends a new row. pos must have one element per entry;
// NoPosition marks a gap. Fails with ErrNotMonotone if any entry's new
// position is not strictly greater than its last appended position.
func (a *Alignment) AppendRow(pos []int) error {
	if len(pos) != a.numEntries {
		return ErrBadEntryCount
	}
	for e, p := range pos {
		if p == NoPosition {
			continue
		}
		if p <= a.lastPos[e] {
			return ErrNotMonotone
		}
	}
	cp := make([]int, a.numEntries)
	copy(cp, pos)
	a.rows = append(a.rows, Row{pos: cp})
	for e, p := range pos {
		if p != NoPosition {
			a.lastPos[e] = p
		}
	}
	return nil
}

// PositionAt returns the position of entry e at row, and whether it is
// present (false for a gap).
func (a *Alignment) PositionAt(row, entry int) (int, bool) {
	if row < 0 || row >= len(a.rows) || entry < 0 || entry >= a.numEntries {
		return 0, false
	}
	p := a.rows[row].pos[entry]
	return p, p != NoPosition
}

// SetScore records score for (row, entry). Fails with ErrIndexOutOfRange if
// either index is invalid.
func (a *Alignment) SetScore(row, entry int, score float64) error {
	if row < 0 || row >= len(a.rows) || entry < 0 || entry >= a.numEntries {
		return ErrIndexOutOfRange
	}
	r := &a.rows[row]
	if r.scores == nil {
		r.scores = make([]float64, a.numEntries)
		for i := range r.scores {
			r.scores[i] = noScore
		}
	}
	r.scores[entry] = score
	return nil
}

// ScoreAt returns the score recorded for (row, entry), and whether one was
// set.
func (a *Alignment) ScoreAt(row, entry int) (float64, bool) {
	if row < 0 || row >= len(a.rows) || entry < 0 || entry >= a.numEntries {
		return 0, false
	}
	r := a.rows[row]
	if r.scores == nil || r.scores[entry] == noScore {
		return 0, false
	}
	return r.scores[entry], true
}

// Permute returns a new Alignment with entries reordered according to
// order, where order[newIndex] = oldIndex. Within-entry row order is
// unaffected, so monotonicity is preserved trivially. Fails with
// ErrBadPermutation if order is not a permutation of [0, EntryCount()).
func (a *Alignment) Permute(order []int) (*Alignment, error) {
	if len(order) != a.numEntries {
		return nil, ErrBadPermutation
	}
	seen := make([]bool, a.numEntries)
	for _, idx := range order {
		if idx < 0 || idx >= a.numEntries || seen[idx] {
			return nil, ErrBadPermutation
		}
		seen[idx] = true
	}

	out, err := New(a.numEntries)
	if err != nil {
		return nil, err
	}
	out.rows = make([]Row, len(a.rows))
	for r, row := range a.rows {
		newPos := make([]int, a.numEntries)
		var newScores []float64
		if row.scores != nil {
			newScores = make([]float64, a.numEntries)
		}
		for newE, oldE := range order {
			newPos[newE] = row.pos[oldE]
			if row.scores != nil {
				newScores[newE] = row.scores[oldE]
			}
		}
		out.rows[r] = Row{pos: newPos, scores: newScores}
	}
	for e := range out.lastPos {
		out.lastPos[e] = a.lastPos[order[e]]
	}
	return out, nil
}
