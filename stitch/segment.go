package stitch

import (
	"math"

	"github.com/gogpu/sketch/geom"
)

// Kind discriminates segment geometry.
type Kind int

const (
	// Line is a straight segment from Start to End.
	Line Kind = iota
	// Arc is a circular arc around Center.
	Arc
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Line:
		return "line"
	case Arc:
		return "arc"
	default:
		return "unknown"
	}
}

// Segment is one piece of a chain in drawing space.
//
// For arcs Start and End are the points at StartAngle and EndAngle. A
// counter-clockwise arc runs towards increasing angles.
type Segment struct {
	Kind       Kind
	Start, End geom.Vector2

	Center           geom.Vector2
	Radius           float64
	StartAngle       float64
	EndAngle         float64
	CounterClockwise bool
}

// LineSegment returns a straight segment.
func LineSegment(start, end geom.Vector2) Segment {
	return Segment{Kind: Line, Start: start, End: end}
}

// ArcSegment returns an arc segment and computes its end points.
func ArcSegment(center geom.Vector2, radius, startAngle, endAngle float64, counterClockwise bool) Segment {
	return Segment{
		Kind:             Arc,
		Start:            geom.Polar(center, radius, startAngle),
		End:              geom.Polar(center, radius, endAngle),
		Center:           center,
		Radius:           radius,
		StartAngle:       startAngle,
		EndAngle:         endAngle,
		CounterClockwise: counterClockwise,
	}
}

// Reversed returns the segment traversed the other way.
func (s Segment) Reversed() Segment {
	s.Start, s.End = s.End, s.Start
	if s.Kind == Arc {
		s.StartAngle, s.EndAngle = s.EndAngle, s.StartAngle
		s.CounterClockwise = !s.CounterClockwise
	}
	return s
}

// Sweep returns the signed angle an arc turns through, positive when
// counter-clockwise, at most one full turn. Lines have no sweep.
func (s Segment) Sweep() float64 {
	if s.Kind != Arc {
		return 0
	}
	return geom.ArcSweep(s.StartAngle, s.EndAngle, s.CounterClockwise)
}

// Bulge returns the DXF bulge of the segment starting at Start: the tangent
// of a quarter of the sweep. Lines have bulge zero.
func (s Segment) Bulge() float64 {
	return math.Tan(s.Sweep() / 4)
}

// split returns the two halves of an arc.
func (s Segment) split() (Segment, Segment) {
	mid := s.StartAngle + s.Sweep()/2
	first := ArcSegment(s.Center, s.Radius, s.StartAngle, mid, s.CounterClockwise)
	second := ArcSegment(s.Center, s.Radius, mid, s.EndAngle, s.CounterClockwise)
	first.Start = s.Start
	second.End = s.End
	return first, second
}
