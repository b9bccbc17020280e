package criteria

import (
	"fmt"

	"github.com/katalvlaran/strucalign/xerrors"
)

// ErrMalformedTerm is returned by Parse when a comma-separated term is not
// of the form key=value.
var ErrMalformedTerm = fmt.Errorf("criteria: malformed term, want key=value: %w", xerrors.InvalidArgument)

// ErrUnknownKey is returned by Parse when a term's key is not one of the
// recognised criteria keys.
var ErrUnknownKey = fmt.Errorf("criteria: unknown key: %w", xerrors.InvalidArgument)

// ErrBadValue is returned by Parse when a term's value cannot be parsed as
// the numeric or enum type its key expects.
var ErrBadValue = fmt.Errorf("criteria: bad value for key: %w", xerrors.InvalidArgument)
