package sketch

import "github.com/gogpu/sketch/geom"

// RenderTarget receives drawing commands in drawing space.
//
// BeginPath starts a new current path. MoveTo, LineTo, Arc and Circle append
// to it and ClosePath adds a segment back to the start of the current
// subpath. StrokePath and FillPath flush the path to the target and clear
// it. What flushing means is up to the target: raster targets draw
// immediately, document targets buffer path data or CAD entities.
//
// Arc angles are in radians; the point at angle a is
// center + radius*(cos a, sin a). A counter-clockwise arc runs from
// startAngle towards increasing angles, a clockwise one towards decreasing
// angles. After Arc the current point is the arc's end point.
//
// Targets are single-owner accumulators and are not safe for concurrent use.
type RenderTarget interface {
	BeginPath()
	MoveTo(p geom.Vector2)
	LineTo(p geom.Vector2)
	Arc(center geom.Vector2, radius, startAngle, endAngle float64, counterClockwise bool)
	Circle(center geom.Vector2, radius float64)
	ClosePath()
	StrokePath()
	FillPath()

	SetStrokeColor(c Color)
	SetLineWidth(w float64)
	SetLineStyle(s LineStyle)

	// Text draws s with its baseline starting at p. Layout is up to the
	// target.
	Text(s string, p geom.Vector2, size float64)

	// AddComment records a note in targets whose format can carry one.
	AddComment(s string)
}
