package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector2 is a point or direction in drawing space.
type Vector2 = mgl64.Vec2

// Vector3 is a point or direction in world space.
type Vector3 = mgl64.Vec3

// Vector4 is a homogeneous coordinate.
type Vector4 = mgl64.Vec4

// V2 returns the 2D vector (x, y).
func V2(x, y float64) Vector2 { return Vector2{x, y} }

// V3 returns the 3D vector (x, y, z).
func V3(x, y, z float64) Vector3 { return Vector3{x, y, z} }

// Common world space directions.
var (
	Zero3 = Vector3{}
	UnitX = Vector3{1, 0, 0}
	UnitY = Vector3{0, 1, 0}
	UnitZ = Vector3{0, 0, 1}
)

// Normalize returns v scaled to unit length.
// A zero-length vector produces NaN components.
func Normalize(v Vector3) Vector3 {
	l := 1.0 / v.Len()
	return Vector3{v[0] * l, v[1] * l, v[2] * l}
}

// IsNaN reports whether any component of v is NaN.
func IsNaN(v Vector3) bool {
	return math.IsNaN(v[0]) || math.IsNaN(v[1]) || math.IsNaN(v[2])
}

// Distance2 returns the Euclidean distance between two drawing space points.
func Distance2(a, b Vector2) float64 {
	return math.Hypot(b[0]-a[0], b[1]-a[1])
}

// Extend moves v by amount along its own direction.
func Extend(v Vector3, amount float64) Vector3 {
	return v.Add(Normalize(v).Mul(amount))
}

// ProjectOnto returns the component of v parallel to onto.
func ProjectOnto(v, onto Vector3) Vector3 {
	return onto.Mul(v.Dot(onto) / onto.Dot(onto))
}

// ScalarProjection returns the signed length of v along onto.
func ScalarProjection(v, onto Vector3) float64 {
	return v.Dot(onto) / onto.Len()
}

// ProjectOntoPlane removes the component of v along the plane normal.
func ProjectOntoPlane(v, normal Vector3) Vector3 {
	return v.Sub(ProjectOnto(v, normal))
}

// ArbitraryOrthogonal returns a unit vector perpendicular to v.
// The zero vector yields NaN.
func ArbitraryOrthogonal(v Vector3) Vector3 {
	ax, ay, az := math.Abs(v[0]), math.Abs(v[1]), math.Abs(v[2])
	var other Vector3
	switch {
	case ax <= ay && ax <= az:
		other = UnitX
	case ay <= az:
		other = UnitY
	default:
		other = UnitZ
	}
	return Normalize(v.Cross(other))
}

// AngleBetween returns the signed angle in radians that rotates a onto b
// about normal, in the range (-π, π].
func AngleBetween(a, b, normal Vector3) float64 {
	angle := math.Atan2(a.Cross(b).Len(), a.Dot(b))
	if a.Cross(b).Dot(normal) < 0 {
		return -angle
	}
	return angle
}

// NormalFromClockwise returns the unit normal of the triangle a, b, c whose
// vertices are listed clockwise when seen from the side the normal points to.
func NormalFromClockwise(a, b, c Vector3) Vector3 {
	return Normalize(c.Sub(a).Cross(b.Sub(a)))
}

// RotateVector rotates v about the origin by q.
func RotateVector(v Vector3, q Quat) Vector3 {
	return q.Rotate(v)
}

// RotateAbout rotates v by q about pivot.
func RotateAbout(v Vector3, q Quat, pivot Vector3) Vector3 {
	return q.Rotate(v.Sub(pivot)).Add(pivot)
}

// RotateAxis rotates v by angle radians about the line through pivot with
// direction axis (Rodrigues' rotation formula).
func RotateAxis(v Vector3, angle float64, axis, pivot Vector3) Vector3 {
	k := Normalize(axis)
	p := v.Sub(pivot)
	sin, cos := math.Sincos(angle)
	r := p.Mul(cos).
		Add(k.Cross(p).Mul(sin)).
		Add(k.Mul(k.Dot(p) * (1 - cos)))
	return r.Add(pivot)
}

// Perp returns v rotated a quarter turn counter-clockwise.
func Perp(v Vector2) Vector2 {
	return Vector2{-v[1], v[0]}
}

// Cross2 returns the z component of the cross product of a and b.
func Cross2(a, b Vector2) float64 {
	return a[0]*b[1] - a[1]*b[0]
}

// Lerp2 interpolates linearly between a and b.
func Lerp2(a, b Vector2, t float64) Vector2 {
	return a.Add(b.Sub(a).Mul(t))
}

// Polar returns the point at angle radians and distance r from center.
func Polar(center Vector2, r, angle float64) Vector2 {
	sin, cos := math.Sincos(angle)
	return Vector2{center[0] + r*cos, center[1] + r*sin}
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 { return mgl64.DegToRad(deg) }

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 { return mgl64.RadToDeg(rad) }
