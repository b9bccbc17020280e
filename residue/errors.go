package residue

import (
	"fmt"

	"github.com/katalvlaran/strucalign/xerrors"
)

// ErrIncompleteBackbone is returned when a residue claims backbone-complete
// status but is missing one of N, Cα, or C.
var ErrIncompleteBackbone = fmt.Errorf("residue: backbone-complete requires N, Cα and C: %w", xerrors.InvalidArgument)

// ErrUnknownAminoAcid is returned when an amino-acid one-letter code is
// neither one of the twenty proper acids nor the non-proper marker.
var ErrUnknownAminoAcid = fmt.Errorf("residue: unrecognised amino-acid code: %w", xerrors.InvalidArgument)
