package alignment

import (
	"fmt"

	"github.com/katalvlaran/strucalign/xerrors"
)

// ErrBadEntryCount is returned when a row's position slice does not have
// one element per entry.
var ErrBadEntryCount = fmt.Errorf("alignment: row entry count mismatch: %w", xerrors.InvalidArgument)

// ErrNotMonotone is returned when appending a row would make an entry's
// positions non-increasing.
var ErrNotMonotone = fmt.Errorf("alignment: positions must strictly increase per entry: %w", xerrors.InvalidArgument)

// ErrEmptyAlignment is returned by operations that require at least one row
// or one entry.
var ErrEmptyAlignment = fmt.Errorf("alignment: alignment is empty: %w", xerrors.InvalidArgument)

// ErrIndexOutOfRange is returned when a row or entry index is out of bounds.
var ErrIndexOutOfRange = fmt.Errorf("alignment: index out of range: %w", xerrors.OutOfRange)

// ErrBadPermutation is returned when Permute is given a slice that is not a
// permutation of [0, EntryCount()).
var ErrBadPermutation = fmt.Errorf("alignment: not a valid permutation: %w", xerrors.InvalidArgument)

// ErrDuplicateEntry is returned when an operation is given the same entry
// index twice where two distinct entries were required.
var ErrDuplicateEntry = fmt.Errorf("alignment: duplicate entry index: %w", xerrors.InvalidArgument)
