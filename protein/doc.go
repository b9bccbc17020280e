// Package protein models an ordered chain of residues and its canonical
// secondary-structure segments, fitted by principal-axis regression over
// runs of consecutive residues of one non-coil class.
package protein
