package rotation

import "errors"

var (
	// ErrBadSequence is returned for an empty rotation order or an axis
	// letter other than X, Y or Z.
	ErrBadSequence = errors.New("rotation: invalid axis sequence")

	// ErrAngleCount is returned when the number of angles does not match the
	// number of axes in a sequence.
	ErrAngleCount = errors.New("rotation: angle count does not match sequence")

	// ErrNotRotation is returned for a matrix that is not orthonormal with
	// determinant +1 within the configured epsilon.
	ErrNotRotation = errors.New("rotation: not a proper rotation matrix")
)
