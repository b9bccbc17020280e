package scanindex

import (
	"fmt"

	"github.com/katalvlaran/strucalign/xerrors"
)

// ErrBadCellWidth is returned by Build when cellWidth is not positive.
var ErrBadCellWidth = fmt.Errorf("scanindex: cell width must be positive: %w", xerrors.InvalidArgument)

// ErrBadSeparation is returned by Build when minSeqSep is negative.
var ErrBadSeparation = fmt.Errorf("scanindex: minimum sequence separation must be >= 0: %w", xerrors.InvalidArgument)

// ErrEmptyCovering is returned by NearestIndex when the covering has no
// quaternions to search.
var ErrEmptyCovering = fmt.Errorf("scanindex: empty orientation covering: %w", xerrors.InvalidArgument)
