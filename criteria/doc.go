// Package criteria parses and represents the match criteria a residue-pair
// scan applies: maximum view-vector distance, maximum relative-frame
// rotation, maximum phi/psi differences, a direction constraint, and a
// minimum sequence separation.
package criteria
