package geom

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/strucalign/xerrors"
)

// ErrZeroVector is returned when a coordinate with zero length is normalised.
var ErrZeroVector = fmt.Errorf("geom: cannot normalise zero-length vector: %w", xerrors.InvalidArgument)

// ErrZeroQuaternion is returned when a quaternion with zero norm is normalised.
var ErrZeroQuaternion = fmt.Errorf("geom: cannot normalise zero-norm quaternion: %w", xerrors.InvalidArgument)

// ErrAngleExceedsSeparation is returned by FromFirstTowardSecondAtAngle when
// the requested angle exceeds the angular separation between the inputs.
var ErrAngleExceedsSeparation = fmt.Errorf("geom: requested angle exceeds separation: %w", xerrors.InvalidArgument)

// ErrDegenerateFrame is returned when RotationToXAxisAndXYPlane is given
// collinear or zero input vectors and cannot construct a right-handed frame.
var ErrDegenerateFrame = fmt.Errorf("geom: degenerate input vectors for frame construction: %w", xerrors.InvalidArgument)

// ErrFractionOutOfRange is returned when an interpolation fraction falls
// outside [0,1].
var ErrFractionOutOfRange = fmt.Errorf("geom: interpolation fraction outside [0,1]: %w", xerrors.InvalidArgument)

// Is reports whether err ultimately wraps target, delegating to errors.Is.
func Is(err, target error) bool { return errors.Is(err, target) }
