package fingerprint

import (
	"encoding/binary"
	"encoding/hex"
	"math"

	"lukechampine.com/blake3"

	"github.com/katalvlaran/strucalign/protein"
)

// version prefixes every fingerprint so a future change to the encoding
// below cannot be silently confused with a prior one.
const version = "fp1"

func appendFloat(buf []byte, v float64) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], math.Float64bits(v))
	return append(buf, tmp[:]...)
}

// OfProtein hashes a protein's residue backbone coordinates and amino-acid
// identities into a stable content fingerprint.
func OfProtein(p *protein.Protein) string {
	var buf []byte
	for _, r := range p.Residues() {
		buf = appendFloat(buf, r.N.X)
		buf = appendFloat(buf, r.N.Y)
		buf = appendFloat(buf, r.N.Z)
		buf = appendFloat(buf, r.CA.X)
		buf = appendFloat(buf, r.CA.Y)
		buf = appendFloat(buf, r.CA.Z)
		buf = appendFloat(buf, r.C.X)
		buf = appendFloat(buf, r.C.Y)
		buf = appendFloat(buf, r.C.Z)
		buf = append(buf, r.AminoAcid.Byte())
	}
	sum := blake3.Sum256(buf)
	return version + "_" + hex.EncodeToString(sum[:])
}

// RowSource is the minimal shape this package needs from an alignment row
// to compute a fingerprint, avoiding an import cycle with package alignment.
type RowSource interface {
	// EntryCount returns the number of entries (structures) in the alignment.
	EntryCount() int
	// RowCount returns the number of rows.
	RowCount() int
	// PositionAt returns the position of entry e at row r, and whether it is
	// present (false for a gap).
	PositionAt(row, entry int) (pos int, present bool)
}

// OfAlignment hashes an alignment's rows into a stable content fingerprint.
func OfAlignment(a RowSource) string {
	var buf []byte
	entries := a.EntryCount()
	for row := 0; row < a.RowCount(); row++ {
		for e := 0; e < entries; e++ {
			pos, present := a.PositionAt(row, e)
			if !present {
				buf = append(buf, 0xFF)
				continue
			}
			var tmp [8]byte
			binary.LittleEndian.PutUint64(tmp[:], uint64(pos))
			buf = append(buf, tmp[:]...)
		}
	}
	sum := blake3.Sum256(buf)
	return version + "_" + hex.EncodeToString(sum[:])
}
