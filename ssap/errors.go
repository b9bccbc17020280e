package ssap

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/strucalign/xerrors"
)

var (
	// ErrEmptyProtein means one of the two proteins given to Align has no
	// residues.
	ErrEmptyProtein = fmt.Errorf("ssap: empty protein: %w", xerrors.InvalidArgument)

	// ErrNoCompatiblePairs means the outer loop found no residue-pair anchor
	// compatible across the two proteins, so no score matrix could be built.
	ErrNoCompatiblePairs = fmt.Errorf("ssap: no compatible outer pairs: %w", xerrors.Runtime)

	// ErrRefinementDiverged means iterative refinement hit its iteration cap
	// without converging or detecting a two-cycle.
	ErrRefinementDiverged = fmt.Errorf("ssap: refinement did not converge: %w", xerrors.Runtime)

	errBadConfig = errors.New("ssap: invalid configuration")
)
