package residue

import "github.com/biogo/biogo/alphabet"

// AminoAcid is a one-letter amino-acid identity code. NonProper marks
// HETATM-like records that are not one of the twenty standard acids.
type AminoAcid byte

// NonProper marks a residue whose identity is not one of the twenty
// standard amino acids (e.g. a HETATM-derived record that survived upstream
// filtering).
const NonProper AminoAcid = 'X'

// ParseAminoAcid validates code against biogo's protein alphabet and
// returns the corresponding AminoAcid, or NonProper for the conventional
// "unknown residue" code 'X'. Any other code not recognised by the protein
// alphabet fails with ErrUnknownAminoAcid.
func ParseAminoAcid(code byte) (AminoAcid, error) {
	if code == byte(NonProper) {
		return NonProper, nil
	}
	letter := alphabet.Letter(code)
	if !alphabet.Protein.IsValid(letter) {
		return 0, ErrUnknownAminoAcid
	}
	return AminoAcid(code), nil
}

// IsProper reports whether a is one of the twenty standard amino acids.
func (a AminoAcid) IsProper() bool {
	return a != NonProper && alphabet.Protein.IsValid(alphabet.Letter(byte(a)))
}

// Byte returns the one-letter code as a byte.
func (a AminoAcid) Byte() byte { return byte(a) }

// String returns the one-letter code as a string.
func (a AminoAcid) String() string { return string(rune(a)) }
