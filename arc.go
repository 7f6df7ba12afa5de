package sketch

import (
	"math"

	"github.com/gogpu/sketch/geom"
)

// MarkerRadius is the drawing space radius of Point and Dot markers.
const MarkerRadius = 2.0

// Arc is a circular arc around Center in the plane perpendicular to Normal
// (+Z when zero). It runs from StartAngle to EndAngle, counter-clockwise
// about Normal when EndAngle is larger. Angle zero lies along +X projected
// onto the plane.
type Arc struct {
	Center     geom.Vector3
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Normal     geom.Vector3
}

func (a Arc) orbit() AxisOrbitCounterClockwise {
	n := planeNormal(a.Normal)
	lever := planeLever(n).Mul(a.Radius)
	return AxisOrbitCounterClockwise{
		Pivot: a.Center,
		Point: geom.RotateAbout(a.Center.Add(lever), geom.QuatAxisAngle(a.StartAngle, n), a.Center),
		Angle: a.EndAngle - a.StartAngle,
		Axis:  n,
	}
}

// Draw implements Shape.
func (a Arc) Draw(ctx RenderContext) { a.orbit().Draw(ctx) }

// DrawPart implements PathPart.
func (a Arc) DrawPart(ctx RenderContext) { a.orbit().DrawPart(ctx) }

// Circle is a full circle around Center in the plane perpendicular to
// Normal (+Z when zero).
type Circle struct {
	Center geom.Vector3
	Radius float64
	Normal geom.Vector3
}

func (c Circle) arc() Arc {
	return Arc{Center: c.Center, Radius: c.Radius, EndAngle: 2 * math.Pi, Normal: c.Normal}
}

// Draw implements Shape.
func (c Circle) Draw(ctx RenderContext) { c.arc().Draw(ctx) }

// DrawPart implements PathPart.
func (c Circle) DrawPart(ctx RenderContext) { c.arc().DrawPart(ctx) }

// Point marks a world position with a small stroked circle whose size does
// not depend on the projection.
type Point struct {
	At geom.Vector3
}

// Draw implements Shape.
func (p Point) Draw(ctx RenderContext) {
	ctx.Target.BeginPath()
	ctx.Target.Circle(ctx.Transform(p.At), MarkerRadius)
	ctx.Target.StrokePath()
}

// Dot marks a world position with a small filled disc. Targets that can
// only stroke reject it.
type Dot struct {
	At geom.Vector3
	// Radius in drawing units; zero means MarkerRadius.
	Radius float64
}

// Draw implements Shape.
func (d Dot) Draw(ctx RenderContext) {
	r := d.Radius
	if r <= 0 {
		r = MarkerRadius
	}
	ctx.Target.BeginPath()
	ctx.Target.Circle(ctx.Transform(d.At), r)
	ctx.Target.FillPath()
}
