package residue

import "github.com/katalvlaran/strucalign/geom"

// ID identifies a residue within its chain by a (chain-label, sequence
// number, insertion-code) triple, matching PDB residue numbering.
type ID struct {
	ChainLabel     byte
	SequenceNumber int
	InsertionCode  byte
}

// cBetaOffsetInFrame is the standard Cα→Cβ direction expressed in a
// residue's own local frame (frame x-axis along Cα→N, per
// geom.RotationToXAxisAndXYPlane), scaled to the typical 1.53 Å Cα-Cβ bond
// length. Used to predict Cβ for glycine, which has none.
var cBetaOffsetInFrame = geom.Coord{X: -0.53, Y: 0.78, Z: -1.21}

// Residue is a single protein residue: backbone/side-chain coordinates, its
// local frame, amino-acid identity, secondary-structure class, backbone
// dihedrals, and accessibility.
type Residue struct {
	ID ID

	N, CA, C, O Coord3
	hasN, hasCA, hasC bool

	// CBeta is given for non-glycine residues and predicted for glycine
	// from CA and Frame via cBetaOffsetInFrame.
	CBeta Coord3

	// Frame is the right-handed orthonormal rotation derived from N, CA, C.
	Frame geom.Rotation

	AminoAcid AminoAcid
	SecStruc  SecondaryStructureClass

	// Phi and Psi are in (0, 2π], undefined (zero value) across chain breaks.
	Phi, Psi geom.Angle

	Accessibility float64
}

// Coord3 is an alias for geom.Coord, kept distinct at the residue API
// surface so backbone atom fields read clearly as coordinates rather than
// generic vectors.
type Coord3 = geom.Coord

// BackboneComplete reports whether N, Cα and C are all present.
func (r Residue) BackboneComplete() bool {
	return r.hasN && r.hasCA && r.hasC
}

// NewBuilder starts construction of a Residue, requiring backbone
// completeness to be established explicitly via WithBackbone before the
// frame and Cβ can be derived.
type Builder struct {
	r   Residue
	err error
}

// NewBuilder returns a Builder for the residue identified by id.
func NewBuilder(id ID, aa AminoAcid, class SecondaryStructureClass) *Builder {
	return &Builder{r: Residue{ID: id, AminoAcid: aa, SecStruc: class}}
}

// WithBackbone sets the backbone N, Cα, C, O coordinates.
func (b *Builder) WithBackbone(n, ca, c, o Coord3) *Builder {
	b.r.N, b.r.CA, b.r.C, b.r.O = n, ca, c, o
	b.r.hasN, b.r.hasCA, b.r.hasC = true, true, true
	return b
}

// WithAccessibility sets the solvent accessibility value.
func (b *Builder) WithAccessibility(a float64) *Builder {
	b.r.Accessibility = a
	return b
}

// WithDihedrals sets phi/psi, left zero-valued (undefined) across chain
// breaks by the caller simply not calling this method.
func (b *Builder) WithDihedrals(phi, psi geom.Angle) *Builder {
	b.r.Phi, b.r.Psi = phi, psi
	return b
}

// WithExplicitCBeta sets Cβ directly (non-glycine residues).
func (b *Builder) WithExplicitCBeta(cb Coord3) *Builder {
	b.r.CBeta = cb
	return b
}

// Build derives the local frame from N, Cα, C (if backbone-complete),
// predicts Cβ for glycine when no explicit Cβ was set, and returns the
// finished Residue. Fails with ErrIncompleteBackbone if backbone atoms are
// missing.
func (b *Builder) Build() (Residue, error) {
	if b.err != nil {
		return Residue{}, b.err
	}
	if !b.r.BackboneComplete() {
		return Residue{}, ErrIncompleteBackbone
	}

	frame, err := geom.RotationToXAxisAndXYPlane(
		b.r.N.Sub(b.r.CA),
		b.r.C.Sub(b.r.CA),
	)
	if err != nil {
		return Residue{}, err
	}
	b.r.Frame = frame

	if b.r.CBeta == (Coord3{}) {
		// Glycine (or any residue lacking an explicit Cβ): predict from the
		// local frame's inverse (transpose) applied to the standard offset.
		b.r.CBeta = b.r.CA.Add(frame.Transpose().Apply(cBetaOffsetInFrame))
	}

	return b.r, nil
}
