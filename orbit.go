package sketch

import (
	"math"

	"github.com/gogpu/sketch/geom"
)

// DefaultArcResolution is the world space arc length between samples when
// a sweep is drawn as a polyline.
const DefaultArcResolution = 0.3

// maxSweepSamples bounds the polyline of a single sweep.
const maxSweepSamples = 1 << 14

// sweep is a point rotated about the line through pivot along axis.
//
// When the axis points straight at the viewer the projected sweep is a true
// circular arc and is sent to the target as one; otherwise it is sampled
// into line segments. Both strategies end on the same projected point.
type sweep struct {
	pivot, point geom.Vector3
	axis         geom.Vector3
	angle        float64
	resolution   float64
}

func (s sweep) radius() float64 {
	return s.point.Sub(s.pivot).Len()
}

func (s sweep) at(angle float64) geom.Vector3 {
	return geom.RotateAbout(s.point, geom.QuatAxisAngle(angle, s.axis), s.pivot)
}

func (s sweep) end() geom.Vector3 {
	return s.at(s.angle)
}

// degenerate reports sweeps that draw nothing.
func (s sweep) degenerate() bool {
	return s.angle == 0 || s.radius() == 0 || s.axis.Len() == 0
}

// draw adds the sweep to the current path. With connect set the start point
// is joined to the current point by a line, otherwise a new subpath starts
// there.
func (s sweep) draw(ctx RenderContext, connect bool) {
	if s.degenerate() {
		return
	}
	start := ctx.Transform(s.point)
	if connect {
		ctx.Target.LineTo(start)
	} else {
		ctx.Target.MoveTo(start)
	}
	if s.faceOn(ctx) {
		s.drawArc(ctx)
	} else {
		s.drawPoints(ctx)
	}
}

// faceOn reports whether the sweep's plane is seen face on, so that its
// projection is an undistorted circle.
func (s sweep) faceOn(ctx RenderContext) bool {
	if !ctx.Transform2D.IsConformal() {
		return false
	}
	axis := geom.Normalize(s.axis)
	if math.Abs(axis.Dot(ctx.Transform3D.CameraDirection())) < 1-1e-9 {
		return false
	}
	c := ctx.Transform(s.pivot)
	r := geom.Distance2(c, ctx.Transform(s.point))
	if r == 0 {
		return false
	}
	tip := ctx.Transform(s.pivot.Add(axis.Mul(s.radius())))
	return geom.Distance2(c, tip) <= 1e-6*r
}

func (s sweep) drawArc(ctx RenderContext) {
	c := ctx.Transform(s.pivot)
	p0 := ctx.Transform(s.point)
	r := geom.Distance2(c, p0)

	if math.Abs(s.angle) >= 2*math.Pi-1e-9 {
		ctx.Target.Circle(c, r)
		ctx.Target.MoveTo(ctx.Transform(s.end()))
		return
	}

	// The screen winding depends on which way the axis faces the viewer and
	// on mirroring in the post-transform, so read it off the projection.
	mid := ctx.Transform(s.at(s.angle / 2))
	ccw := geom.Cross2(p0.Sub(c), mid.Sub(c)) > 0

	a0 := math.Atan2(p0[1]-c[1], p0[0]-c[0])
	a1 := a0 - math.Abs(s.angle)
	if ccw {
		a1 = a0 + math.Abs(s.angle)
	}
	ctx.Target.Arc(c, r, a0, a1, ccw)
}

func (s sweep) drawPoints(ctx RenderContext) {
	res := s.resolution
	if res <= 0 {
		res = DefaultArcResolution
	}
	steps := int(math.Ceil(math.Abs(s.angle) * s.radius() / res))
	steps = max(1, min(steps, maxSweepSamples))
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		ctx.Target.LineTo(ctx.Transform(s.at(s.angle * t)))
	}
}

// AxisOrbit sweeps Point about the line through Pivot along Axis by Angle
// radians (counter-clockwise looking against Axis). Inside a path it joins
// its start point to the current point with a line.
type AxisOrbit struct {
	Pivot, Point geom.Vector3
	Angle        float64
	Axis         geom.Vector3
	// Resolution is the sampling step; zero means DefaultArcResolution.
	Resolution float64
}

func (o AxisOrbit) sweep() sweep {
	return sweep{pivot: o.Pivot, point: o.Point, axis: o.Axis, angle: o.Angle, resolution: o.Resolution}
}

// End returns the world position where the sweep stops.
func (o AxisOrbit) End() geom.Vector3 { return o.sweep().end() }

// Draw implements Shape.
func (o AxisOrbit) Draw(ctx RenderContext) {
	ctx.Target.BeginPath()
	o.sweep().draw(ctx, false)
	ctx.Target.StrokePath()
}

// DrawPart implements PathPart.
func (o AxisOrbit) DrawPart(ctx RenderContext) {
	o.sweep().draw(ctx, true)
}

// AxisOrbitCounterClockwise is an AxisOrbit that always starts a new
// subpath at its start point.
type AxisOrbitCounterClockwise struct {
	Pivot, Point geom.Vector3
	Angle        float64
	Axis         geom.Vector3
	Resolution   float64
}

func (o AxisOrbitCounterClockwise) sweep() sweep {
	return sweep{pivot: o.Pivot, point: o.Point, axis: o.Axis, angle: o.Angle, resolution: o.Resolution}
}

// End returns the world position where the sweep stops.
func (o AxisOrbitCounterClockwise) End() geom.Vector3 { return o.sweep().end() }

// Draw implements Shape.
func (o AxisOrbitCounterClockwise) Draw(ctx RenderContext) {
	ctx.Target.BeginPath()
	o.DrawPart(ctx)
	ctx.Target.StrokePath()
}

// DrawPart implements PathPart.
func (o AxisOrbitCounterClockwise) DrawPart(ctx RenderContext) {
	o.sweep().draw(ctx, false)
}

// Orbit sweeps Point about Pivot by Rotation. The sweep follows the
// rotation's own angle in [0, 2π] about its axis; a quaternion cannot tell a
// full turn from no turn, use AxisOrbit for full circles.
type Orbit struct {
	Pivot, Point geom.Vector3
	Rotation     geom.Quat
	// Spokes draws faint lines from the pivot to points along the sweep and
	// marks the pivot and the start point.
	Spokes     bool
	Resolution float64
}

// NewOrbitArc returns the orbit drawing an arc of the given radius around
// center in the plane with the given normal, from startAngle to endAngle.
func NewOrbitArc(center geom.Vector3, radius, startAngle, endAngle float64, normal geom.Vector3) Orbit {
	lever := planeLever(normal).Mul(radius)
	return Orbit{
		Pivot:    center,
		Point:    geom.RotateAbout(center.Add(lever), geom.QuatAxisAngle(startAngle, normal), center),
		Rotation: geom.QuatAxisAngle(endAngle-startAngle, normal),
	}
}

func (o Orbit) sweep() sweep {
	return sweep{
		pivot:      o.Pivot,
		point:      o.Point,
		axis:       geom.QuatAxis(o.Rotation),
		angle:      geom.QuatAngle(o.Rotation),
		resolution: o.Resolution,
	}
}

// End returns where the sweep finishes.
func (o Orbit) End() geom.Vector3 { return o.sweep().end() }

// Draw implements Shape.
func (o Orbit) Draw(ctx RenderContext) {
	ctx.Target.BeginPath()
	o.DrawPart(ctx)
	ctx.Target.StrokePath()

	if !o.Spokes {
		return
	}
	ctx.Target.SetStrokeColor(ctx.Color.Opacity(0.1))
	lever := o.Point.Sub(o.Pivot)
	for i := 0; i <= 10; i++ {
		rot := geom.Slerp(geom.QuatIdent(), o.Rotation, float64(i)/10)
		ctx.Target.BeginPath()
		ctx.Target.MoveTo(ctx.Transform(o.Pivot))
		ctx.Target.LineTo(ctx.Transform(o.Pivot.Add(rot.Rotate(lever))))
		ctx.Target.StrokePath()
	}
	ctx.Target.SetStrokeColor(ctx.Color)

	normal := geom.QuatAxis(o.Rotation)
	Circle{Center: o.Pivot, Radius: 1, Normal: normal}.Draw(ctx)
	Circle{Center: o.Point, Radius: 1, Normal: normal}.Draw(ctx)
}

// DrawPart implements PathPart.
func (o Orbit) DrawPart(ctx RenderContext) {
	o.sweep().draw(ctx, false)
}

// planeLever returns the unit vector of angle zero in the plane with the
// given normal: +X projected onto the plane, or +Y when the normal is X.
func planeLever(normal geom.Vector3) geom.Vector3 {
	if normal.Len() == 0 {
		return geom.UnitX
	}
	n := geom.Normalize(normal)
	x := geom.ProjectOntoPlane(geom.UnitX, n)
	if x.Len() < 1e-9 {
		x = geom.ProjectOntoPlane(geom.UnitY, n)
	}
	return geom.Normalize(x)
}

// planeNormal defaults the zero vector to +Z.
func planeNormal(n geom.Vector3) geom.Vector3 {
	if n.Len() == 0 {
		return geom.UnitZ
	}
	return n
}
