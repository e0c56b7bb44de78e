package rotation

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/rbd/matrix"
)

// mathgl works with active rotations (R·v turns the vector v), while the
// matrices in this package are passive (C·N_r re-expresses N_r in F). The
// two are transposes of each other: R = Cᵀ.

// ToQuat returns the unit quaternion of the rotation matrix c.
// The quaternion describes the active rotation turning triad N onto F, so
// ToQuat(AboutX(θ)) equals mgl64.QuatRotate(θ, x̂) up to sign.
func ToQuat(c matrix.Mat3) mgl64.Quat {
	return mgl64.Mat4ToQuat(c.T().ToMgl().Mat4()).Normalize()
}

// FromQuat returns the rotation matrix of the unit quaternion q.
// q is normalised first; the zero quaternion yields the identity.
func FromQuat(q mgl64.Quat) matrix.Mat3 {
	if q.Len() == 0 {
		return matrix.Identity()
	}

	return matrix.FromMgl(q.Normalize().Mat4().Mat3()).T()
}

// Slerp interpolates between two orientations along the shortest arc:
// t = 0 gives a, t = 1 gives b.
func Slerp(a, b matrix.Mat3, t float64) matrix.Mat3 {
	qa, qb := ToQuat(a), ToQuat(b)
	if qa.Dot(qb) < 0 {
		qb = qb.Scale(-1) // q and −q are the same rotation; take the short way
	}

	return FromQuat(mgl64.QuatSlerp(qa, qb, t))
}
