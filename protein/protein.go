package protein

import "github.com/katalvlaran/strucalign/residue"

// Protein is a name-set, an ordered list of residues, and an ordered list
// of canonical secondary-structure segments. Residue indices 0..N-1 are
// stable for the lifetime of the Protein.
type Protein struct {
	Names    []string
	residues []residue.Residue
	segments []Segment
}

// New constructs a Protein from names and residues, fitting secondary
// structure segments over the residue list. Fails with ErrEmptyResidueList
// if residues is empty.
func New(names []string, residues []residue.Residue) (*Protein, error) {
	if len(residues) == 0 {
		return nil, ErrEmptyResidueList
	}
	segments, err := FitSegments(residues)
	if err != nil {
		return nil, err
	}
	for _, s := range segments {
		if s.Start < 0 || s.Stop >= len(residues) || s.Start > s.Stop {
			return nil, ErrSegmentOutOfRange
		}
	}
	cp := make([]residue.Residue, len(residues))
	copy(cp, residues)
	return &Protein{Names: names, residues: cp, segments: segments}, nil
}

// Len returns the number of residues.
func (p *Protein) Len() int { return len(p.residues) }

// Residue returns the residue at index i. Fails with ErrIndexOutOfRange if
// i is outside [0, Len()).
func (p *Protein) Residue(i int) (residue.Residue, error) {
	if i < 0 || i >= len(p.residues) {
		return residue.Residue{}, ErrIndexOutOfRange
	}
	return p.residues[i], nil
}

// Residues returns a copy of the full ordered residue list.
func (p *Protein) Residues() []residue.Residue {
	cp := make([]residue.Residue, len(p.residues))
	copy(cp, p.residues)
	return cp
}

// Segments returns the protein's canonical secondary-structure segments.
func (p *Protein) Segments() []Segment {
	cp := make([]Segment, len(p.segments))
	copy(cp, p.segments)
	return cp
}
