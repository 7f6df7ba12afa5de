package geom

import "math"

// Ray is a half line in world space. Direction is expected to be of unit
// length.
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// At returns the point at distance t along r.
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// ClosestPoint returns the point on the infinite line through r that is
// nearest to p.
func (r Ray) ClosestPoint(p Vector3) Vector3 {
	return r.At(p.Sub(r.Origin).Dot(r.Direction))
}

// DistanceTo returns the distance from p to the infinite line through r.
func (r Ray) DistanceTo(p Vector3) float64 {
	return p.Sub(r.ClosestPoint(p)).Len()
}

// IntersectPlane returns where r hits the plane through planePoint with the
// given normal. It reports false when r runs parallel to the plane or the
// plane lies behind the origin.
func (r Ray) IntersectPlane(normal, planePoint Vector3) (Vector3, bool) {
	denom := normal.Dot(r.Direction)
	if math.Abs(denom) <= 1e-6 {
		return Vector3{}, false
	}
	t := planePoint.Sub(r.Origin).Dot(normal) / denom
	if t < 0 {
		return Vector3{}, false
	}
	return r.At(t), true
}
