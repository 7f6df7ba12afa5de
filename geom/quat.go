package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Quat is a rotation quaternion.
type Quat = mgl64.Quat

// QuatIdent returns the identity rotation.
func QuatIdent() Quat { return mgl64.QuatIdent() }

// QuatAxisAngle returns the rotation of angle radians about axis.
// The axis does not need to be normalized; a zero axis yields NaN.
func QuatAxisAngle(angle float64, axis Vector3) Quat {
	return mgl64.QuatRotate(angle, Normalize(axis))
}

// QuatBetween returns the shortest rotation that turns direction a into b.
func QuatBetween(a, b Vector3) Quat {
	return mgl64.QuatBetweenVectors(Normalize(a), Normalize(b))
}

// QuatAngle returns the rotation angle of q in [0, 2π].
func QuatAngle(q Quat) float64 {
	return 2 * math.Acos(mgl64.Clamp(q.W, -1, 1))
}

// QuatAxis returns the unit rotation axis of q. The identity rotation has no
// axis; UnitZ is returned for it.
func QuatAxis(q Quat) Vector3 {
	s := q.V.Len()
	if s < 1e-12 {
		return UnitZ
	}
	return q.V.Mul(1 / s)
}

// Slerp interpolates spherically from a to b.
//
// Unlike mgl64.QuatSlerp it never negates b to take the shorter arc, so
// interpolating from the identity to a rotation of more than π keeps
// sweeping in the same direction.
func Slerp(a, b Quat, t float64) Quat {
	cos := mgl64.Clamp(a.Dot(b), -1, 1)
	theta := math.Acos(cos)
	sin := math.Sin(theta)
	if sin < 1e-9 {
		return a.Scale(1 - t).Add(b.Scale(t)).Normalize()
	}
	wa := math.Sin((1-t)*theta) / sin
	wb := math.Sin(t*theta) / sin
	return a.Scale(wa).Add(b.Scale(wb))
}
