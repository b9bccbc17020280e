package converters

import (
	"fmt"

	"github.com/katalvlaran/strucalign/xerrors"
)

// ErrNilGraph is returned when a nil *core.Graph is passed for conversion.
var ErrNilGraph = fmt.Errorf("converters: graph is nil: %w", xerrors.InvalidArgument)

// ErrNonIntegerVertexID is returned when a core.Graph vertex ID cannot be
// parsed as the integer entry index gonum's Node requires.
var ErrNonIntegerVertexID = fmt.Errorf("converters: vertex ID is not an integer entry index: %w", xerrors.InvalidArgument)
