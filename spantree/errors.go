package spantree

import (
	"fmt"

	"github.com/katalvlaran/strucalign/xerrors"
)

// ErrNoEntries is returned when a similarity graph is requested over an
// empty entry set.
var ErrNoEntries = fmt.Errorf("spantree: no entries given: %w", xerrors.InvalidArgument)

// ErrUnknownEntry is returned when a score references an entry not in the
// declared entry set.
var ErrUnknownEntry = fmt.Errorf("spantree: score references an unknown entry: %w", xerrors.InvalidArgument)

// ErrDisconnected is returned when no spanning tree covers every entry.
var ErrDisconnected = fmt.Errorf("spantree: similarity graph is disconnected: %w", xerrors.Runtime)

// ErrNotATree is returned by Validate when the given edge set is not
// exactly a spanning tree over the given entries (wrong edge count, a
// cycle, or a disconnected component).
var ErrNotATree = fmt.Errorf("spantree: edge set is not a spanning tree: %w", xerrors.Runtime)
