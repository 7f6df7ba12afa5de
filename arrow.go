package sketch

import (
	"math"

	"github.com/gogpu/sketch/geom"
)

// Arrow head proportions.
const (
	arrowWingRatio = 0.15
	arrowWingAngle = 170 * math.Pi / 180
)

// Arrow is a line from From to To with a two-winged head at To. The wings
// are 15% of the arrow's length and lie in the plane facing the camera.
type Arrow struct {
	From, To geom.Vector3
}

// Draw implements Shape. Zero-length arrows draw nothing.
func (a Arrow) Draw(ctx RenderContext) {
	v := a.To.Sub(a.From)
	length := v.Len()
	if length == 0 {
		return
	}

	axis := ctx.Transform3D.CameraDirection()
	if v.Cross(axis).Len() < 1e-9*length {
		axis = geom.UnitZ
	}
	wing := geom.Normalize(v).Mul(length * arrowWingRatio)
	left := geom.RotateAxis(wing, arrowWingAngle, axis, geom.Zero3)
	right := geom.RotateAxis(wing, -arrowWingAngle, axis, geom.Zero3)

	tip := ctx.Transform(a.To)
	ctx.Target.BeginPath()
	ctx.Target.MoveTo(ctx.Transform(a.From))
	ctx.Target.LineTo(tip)
	ctx.Target.LineTo(ctx.Transform(a.To.Add(right)))
	ctx.Target.MoveTo(tip)
	ctx.Target.LineTo(ctx.Transform(a.To.Add(left)))
	ctx.Target.StrokePath()
}

// TextString draws Text at a world position. Size is in drawing units.
type TextString struct {
	At   geom.Vector3
	Text string
	Size float64
}

// Draw implements Shape.
func (t TextString) Draw(ctx RenderContext) {
	ctx.Target.Text(t.Text, ctx.Transform(t.At), t.Size)
}
