package protein

import (
	"fmt"

	"github.com/katalvlaran/strucalign/xerrors"
)

// ErrEmptyResidueList is returned when constructing a Protein with no residues.
var ErrEmptyResidueList = fmt.Errorf("protein: residue list must be non-empty: %w", xerrors.InvalidArgument)

// ErrSegmentOutOfRange is returned when a segment's start/stop indices do
// not refer to valid residue indices.
var ErrSegmentOutOfRange = fmt.Errorf("protein: segment endpoints out of range: %w", xerrors.OutOfRange)

// ErrIndexOutOfRange is returned by Residue(i) when i is outside [0,N).
var ErrIndexOutOfRange = fmt.Errorf("protein: residue index out of range: %w", xerrors.OutOfRange)
