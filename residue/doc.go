// Package residue models a single protein residue: its backbone/side-chain
// coordinates, local frame, backbone dihedral angles, secondary-structure
// class, and amino-acid identity.
package residue
