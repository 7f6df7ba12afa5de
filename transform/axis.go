package transform

import "github.com/gogpu/sketch/geom"

// AxisAligned is an orthographic projection onto one of the coordinate
// planes. It ignores the canvas size and has no camera.
type AxisAligned struct {
	Plane geom.AxisPlane
}

var _ Transformer = AxisAligned{}

// NewAxisAligned returns the projection onto plane.
func NewAxisAligned(plane geom.AxisPlane) AxisAligned {
	return AxisAligned{Plane: plane}
}

// Apply drops the axis perpendicular to the plane.
func (t AxisAligned) Apply(p geom.Vector3, _ geom.Vector2) geom.Vector2 {
	return t.Plane.Project(p)
}

// Unapply is not implemented for axis-aligned views and always returns
// ErrUnsupported.
func (t AxisAligned) Unapply(geom.Vector2, geom.Vector2) (geom.Ray, error) {
	return geom.Ray{}, ErrUnsupported
}

// CameraDirection returns (0,0,-1) for XY, (0,1,0) for XZ and (1,0,0) for YZ.
func (t AxisAligned) CameraDirection() geom.Vector3 {
	switch t.Plane {
	case geom.PlaneXZ:
		return geom.UnitY
	case geom.PlaneYZ:
		return geom.UnitX
	default:
		return geom.V3(0, 0, -1)
	}
}

// IsTopDownOrthographic reports true only for the XY plan view.
func (t AxisAligned) IsTopDownOrthographic() bool {
	return t.Plane == geom.PlaneXY
}
