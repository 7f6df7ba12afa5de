package transform

import "github.com/gogpu/sketch/geom"

// Offset moves world points by Delta before handing them to Parent.
type Offset struct {
	Parent Transformer
	Delta  geom.Vector3
}

var _ Transformer = Offset{}

// NewOffset wraps parent with a translation.
func NewOffset(parent Transformer, delta geom.Vector3) Offset {
	return Offset{Parent: parent, Delta: delta}
}

// Apply projects p + Delta through Parent.
func (t Offset) Apply(p geom.Vector3, size geom.Vector2) geom.Vector2 {
	return t.Parent.Apply(p.Add(t.Delta), size)
}

// Unapply moves the parent's ray back by Delta.
func (t Offset) Unapply(p geom.Vector2, size geom.Vector2) (geom.Ray, error) {
	r, err := t.Parent.Unapply(p, size)
	if err != nil {
		return geom.Ray{}, err
	}
	r.Origin = r.Origin.Sub(t.Delta)
	return r, nil
}

// CameraDirection returns Parent's camera direction.
func (t Offset) CameraDirection() geom.Vector3 { return t.Parent.CameraDirection() }

// IsTopDownOrthographic returns Parent's answer.
func (t Offset) IsTopDownOrthographic() bool { return t.Parent.IsTopDownOrthographic() }

// Flip rotates world points by Angle radians about the line through Pivot
// with direction Axis before handing them to Parent. Rotating by π about an
// axis in a mirror plane draws the mirrored copy of a shape.
type Flip struct {
	Parent Transformer
	Axis   geom.Vector3
	Angle  float64
	Pivot  geom.Vector3
}

var _ Transformer = Flip{}

// NewFlip wraps parent with a rotation about a line.
func NewFlip(parent Transformer, axis geom.Vector3, angle float64, pivot geom.Vector3) Flip {
	return Flip{Parent: parent, Axis: axis, Angle: angle, Pivot: pivot}
}

// Apply projects the rotated point through Parent.
func (t Flip) Apply(p geom.Vector3, size geom.Vector2) geom.Vector2 {
	return t.Parent.Apply(geom.RotateAxis(p, t.Angle, t.Axis, t.Pivot), size)
}

// Unapply rotates the parent's ray back.
func (t Flip) Unapply(p geom.Vector2, size geom.Vector2) (geom.Ray, error) {
	r, err := t.Parent.Unapply(p, size)
	if err != nil {
		return geom.Ray{}, err
	}
	return geom.Ray{
		Origin:    geom.RotateAxis(r.Origin, -t.Angle, t.Axis, t.Pivot),
		Direction: geom.RotateAxis(r.Direction, -t.Angle, t.Axis, geom.Zero3),
	}, nil
}

// CameraDirection returns Parent's camera direction.
func (t Flip) CameraDirection() geom.Vector3 { return t.Parent.CameraDirection() }

// IsTopDownOrthographic returns Parent's answer.
func (t Flip) IsTopDownOrthographic() bool { return t.Parent.IsTopDownOrthographic() }
