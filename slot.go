package sketch

import (
	"math"

	"github.com/gogpu/sketch/geom"
)

// RelievedSlot is the outline of a slot from Start to End, 2*|Width| wide,
// with dog-bone relief pockets in its four corners so a round cutter can
// reach them. Width is the vector from the centre line to one side.
type RelievedSlot struct {
	Start, End   geom.Vector3
	Width        geom.Vector3
	ReliefDepth  float64
	ReliefRadius float64
}

// Draw implements Shape.
func (s RelievedSlot) Draw(ctx RenderContext) {
	ctx.Target.BeginPath()
	s.DrawPart(ctx)
	ctx.Target.StrokePath()
}

// DrawPart implements PathPart.
func (s RelievedSlot) DrawPart(ctx RenderContext) {
	s.outline().DrawPart(ctx)
}

func (s RelievedSlot) outline() Path {
	dir := geom.Normalize(s.End.Sub(s.Start))
	side := geom.Normalize(s.Width)
	axis := side.Cross(dir)

	depth := side.Mul(s.ReliefDepth)
	r := dir.Mul(s.ReliefRadius)
	d := dir.Mul(2 * s.ReliefRadius)

	startLeft := s.Start.Add(s.Width)
	endLeft := s.End.Add(s.Width)
	endRight := s.End.Sub(s.Width)
	startRight := s.Start.Sub(s.Width)

	pocket := func(pivot, point geom.Vector3) AxisOrbit {
		return AxisOrbit{Pivot: pivot, Point: point, Angle: math.Pi, Axis: axis}
	}

	return NewPath(
		MoveTo{s.Start},
		LineTo{startLeft.Add(depth)},
		pocket(startLeft.Add(depth).Add(r), startLeft.Add(depth)),
		LineTo{startLeft.Add(d)},
		LineTo{endLeft.Sub(d)},
		LineTo{endLeft.Sub(d).Add(depth)},
		pocket(endLeft.Sub(r).Add(depth), endLeft.Sub(d).Add(depth)),
		LineTo{endRight.Sub(depth)},
		pocket(endRight.Sub(depth).Sub(r), endRight.Sub(depth)),
		LineTo{endRight.Sub(d)},
		LineTo{startRight.Add(d)},
		LineTo{startRight.Add(d).Sub(depth)},
		pocket(startRight.Add(r).Sub(depth), startRight.Add(d).Sub(depth)),
		LineTo{s.Start},
	)
}
