package pdbsource

import "github.com/katalvlaran/strucalign/protein"

// RegionFilter restricts a ProteinSource to one chain/domain region: residues
// of ChainLabel between StartResidueID and StopResidueID inclusive. A parser
// honouring an empty []RegionFilter returns every chain in its input.
type RegionFilter struct {
	ChainLabel     byte
	StartResidueID int
	StopResidueID  int
}

// ProteinSource is the contract the core expects of a PDB/DSSP parser: given
// a raw structure file and an optional list of region filters (one per
// requested chain/domain; nil or empty means "every chain"), it returns one
// protein.Protein per requested region. No implementation of this interface
// ships here: PDB/DSSP parsing is an upstream collaborator's job, not the
// core's. FakeSource below exists only so the rest of the module can be
// tested against the contract without a real parser.
type ProteinSource interface {
	Read(data []byte, regions []RegionFilter) ([]protein.Protein, error)
}

// FakeSource is a ProteinSource test double that ignores its input bytes and
// returns a fixed, pre-built list of proteins, optionally filtering by the
// chain labels named in Regions (StartResidueID/StopResidueID are ignored;
// a real parser would honour them against the byte stream's residue
// numbering, which FakeSource has no input bytes to consult).
type FakeSource struct {
	Proteins []protein.Protein
	// ChainOf maps each entry of Proteins to the chain label it represents,
	// by index. If nil, Read ignores regions and returns every protein.
	ChainOf []byte
	Err     error
}

// Read implements ProteinSource.
func (f FakeSource) Read(_ []byte, regions []RegionFilter) ([]protein.Protein, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	if len(regions) == 0 || f.ChainOf == nil {
		out := make([]protein.Protein, len(f.Proteins))
		copy(out, f.Proteins)
		return out, nil
	}

	wanted := make(map[byte]bool, len(regions))
	for _, r := range regions {
		wanted[r.ChainLabel] = true
	}
	var out []protein.Protein
	for i, p := range f.Proteins {
		if i < len(f.ChainOf) && wanted[f.ChainOf[i]] {
			out = append(out, p)
		}
	}
	return out, nil
}
