package superpose

import (
	"fmt"

	"github.com/katalvlaran/strucalign/geom"
	"github.com/katalvlaran/strucalign/multialign"
	"github.com/katalvlaran/strucalign/protein"
	"github.com/katalvlaran/strucalign/spantree"
	"github.com/katalvlaran/strucalign/xerrors"
)

// ComposeAlongTree fits a Transform for every entry in g's alignment into
// the reference frame of root, by walking tree in breadth-first order from
// root and composing each branch's pairwise fit with its parent's already
// composed transform. root's own transform is the identity.
//
// Ambiguity in how an N-structure superposition is built when several
// paths between two entries would give different answers is resolved by
// this single tree-path composition rule: there is exactly one path from
// root to every other entry in a tree, so the result does not depend on
// evaluation order.
func ComposeAlongTree(proteins []*protein.Protein, g *multialign.Group, tree []spantree.Edge, root int) (map[int]Transform, error) {
	if !g.HasEntry(root) {
		return nil, ErrUnknownRoot
	}

	branches, err := spantree.GlueOrder(tree, root)
	if err != nil {
		return nil, err
	}

	result := map[int]Transform{root: IdentityTransform()}
	for _, br := range branches {
		parentTr, ok := result[br.EntryAlready]
		if !ok {
			return nil, fmt.Errorf("superpose: branch visits %d before its parent %d: %w", br.EntryNew, br.EntryAlready, xerrors.Runtime)
		}

		childPts, parentPts, err := sharedCoordinates(proteins, g, br.EntryNew, br.EntryAlready)
		if err != nil {
			return nil, err
		}
		pairTr, _, err := Fit(childPts, parentPts)
		if err != nil {
			return nil, fmt.Errorf("superpose: fitting entry %d onto %d: %w", br.EntryNew, br.EntryAlready, err)
		}

		result[br.EntryNew] = parentTr.Compose(pairTr)
	}

	return result, nil
}

// sharedCoordinates extracts the Cα coordinates of entryA and entryB at the
// rows where g's alignment gives both a position, in row order.
func sharedCoordinates(proteins []*protein.Protein, g *multialign.Group, entryA, entryB int) ([]geom.Coord, []geom.Coord, error) {
	entries := g.Entries()
	colA, colB := -1, -1
	for idx, e := range entries {
		if e == entryA {
			colA = idx
		}
		if e == entryB {
			colB = idx
		}
	}
	if colA < 0 || colB < 0 {
		return nil, nil, fmt.Errorf("superpose: entry not in group: %w", xerrors.InvalidArgument)
	}

	aln := g.Alignment()
	var ptsA, ptsB []geom.Coord
	for row := 0; row < aln.RowCount(); row++ {
		pA, okA := aln.PositionAt(row, colA)
		pB, okB := aln.PositionAt(row, colB)
		if !okA || !okB {
			continue
		}
		resA, err := proteins[entryA].Residue(pA)
		if err != nil {
			return nil, nil, err
		}
		resB, err := proteins[entryB].Residue(pB)
		if err != nil {
			return nil, nil, err
		}
		ptsA = append(ptsA, resA.CA)
		ptsB = append(ptsB, resB.CA)
	}
	if len(ptsA) == 0 {
		return nil, nil, fmt.Errorf("superpose: entries %d,%d: %w", entryA, entryB, errNoSharedPositions)
	}
	return ptsA, ptsB, nil
}
