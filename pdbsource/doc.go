// Package pdbsource defines the core's external-collaborator interfaces:
// the protein-source contract the core expects from a PDB/DSSP parser it
// does not itself implement, plus readers and writers for the three plain-
// text auxiliary formats named in the core's external interfaces: SSAP-
// scores files, CATH legacy pairwise alignment files, and FASTA alignment
// output.
package pdbsource
