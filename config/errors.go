package config

import (
	"fmt"

	"github.com/katalvlaran/strucalign/xerrors"
)

// ErrUnknownFormula marks a distance_score_formula value other than
// "classical" or "linear".
var ErrUnknownFormula = fmt.Errorf("config: unknown distance_score_formula: %w", xerrors.InvalidArgument)

// ErrUnknownGlueStyle marks an aln_glue_style value outside the three the
// multi-alignment builder supports.
var ErrUnknownGlueStyle = fmt.Errorf("config: unknown aln_glue_style: %w", xerrors.InvalidArgument)

// ErrUnknownCovering marks an orientation_covering value other than
// "octahedral48" or "icosahedral120".
var ErrUnknownCovering = fmt.Errorf("config: unknown orientation_covering: %w", xerrors.InvalidArgument)
