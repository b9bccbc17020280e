package multialign

import (
	"fmt"

	"github.com/katalvlaran/strucalign/xerrors"
)

// ErrEntryNotInGroup is returned when a glue operation names an entry the
// group does not contain.
var ErrEntryNotInGroup = fmt.Errorf("multialign: entry not present in group: %w", xerrors.InvalidArgument)

// ErrDuplicateEntry is returned when gluing in an entry the group already
// contains.
var ErrDuplicateEntry = fmt.Errorf("multialign: entry already present in group: %w", xerrors.InvalidArgument)

// ErrIncompatibleEntryCounts is returned when a pairwise alignment passed to
// a glue operation does not have exactly two entries.
var ErrIncompatibleEntryCounts = fmt.Errorf("multialign: pairwise alignment must have exactly two entries: %w", xerrors.InvalidArgument)

// ErrSelfGlue is returned when a glue operation is asked to join an entry
// to itself.
var ErrSelfGlue = fmt.Errorf("multialign: cannot glue an entry to itself: %w", xerrors.InvalidArgument)
