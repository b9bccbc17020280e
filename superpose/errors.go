package superpose

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/strucalign/xerrors"
)

// ErrTooFewPoints is returned by Fit when fewer than three correspondences
// are given: one point cannot fix orientation and two leave a rotational
// degree of freedom undetermined around the axis joining them.
var ErrTooFewPoints = fmt.Errorf("superpose: fewer than 3 point correspondences: %w", xerrors.InvalidArgument)

// ErrSVDFailed is returned when the cross-covariance matrix's SVD does not
// converge, which in practice only happens for degenerate (collinear or
// coincident) point sets.
var ErrSVDFailed = fmt.Errorf("superpose: SVD did not converge: %w", xerrors.Runtime)

// ErrUnknownRoot is returned by ComposeAlongTree when root is not among the
// group's entries.
var ErrUnknownRoot = fmt.Errorf("superpose: root not in tree: %w", xerrors.InvalidArgument)

// errNoSharedPositions is a package-local sentinel, not wrapped in the
// shared taxonomy since it is always paired with entry/count context by its
// caller before being surfaced.
var errNoSharedPositions = errors.New("superpose: no shared aligned positions")
