package sketch

import "github.com/gogpu/sketch/geom"

// Path strokes or fills the segments contributed by its parts.
//
// Inside another path a Path only contributes its parts (and its closing
// segment when Closed is set); the outer path decides how it is painted.
type Path struct {
	Closed bool
	Filled bool
	Parts  PathPart
}

// NewPath returns an open stroked path of the given parts.
func NewPath(parts ...PathPart) Path {
	return Path{Parts: partList(parts)}
}

// ClosedPath returns a closed stroked path of the given parts.
func ClosedPath(parts ...PathPart) Path {
	return Path{Closed: true, Parts: partList(parts)}
}

// Draw implements Shape.
func (p Path) Draw(ctx RenderContext) {
	ctx.Target.BeginPath()
	p.DrawPart(ctx)
	if p.Filled {
		ctx.Target.FillPath()
	} else {
		ctx.Target.StrokePath()
	}
}

// DrawPart implements PathPart.
func (p Path) DrawPart(ctx RenderContext) {
	if p.Parts != nil {
		p.Parts.DrawPart(ctx)
	}
	if p.Closed {
		ctx.Target.ClosePath()
	}
}

type partList []PathPart

func (l partList) DrawPart(ctx RenderContext) {
	for _, part := range l {
		part.DrawPart(ctx)
	}
}

// MoveTo starts a new subpath at Point.
type MoveTo struct {
	Point geom.Vector3
}

// DrawPart implements PathPart.
func (m MoveTo) DrawPart(ctx RenderContext) {
	ctx.Target.MoveTo(ctx.Transform(m.Point))
}

// LineTo adds a line from the current point to Point.
type LineTo struct {
	Point geom.Vector3
}

// DrawPart implements PathPart.
func (l LineTo) DrawPart(ctx RenderContext) {
	ctx.Target.LineTo(ctx.Transform(l.Point))
}

// LineSection is a single line from From to To.
type LineSection struct {
	From, To geom.Vector3
}

// Draw implements Shape.
func (l LineSection) Draw(ctx RenderContext) {
	ctx.Target.BeginPath()
	l.DrawPart(ctx)
	ctx.Target.StrokePath()
}

// DrawPart implements PathPart.
func (l LineSection) DrawPart(ctx RenderContext) {
	ctx.Target.MoveTo(ctx.Transform(l.From))
	ctx.Target.LineTo(ctx.Transform(l.To))
}

// Polygon connects Vertices in order, returning to the first one when Closed
// is set.
type Polygon struct {
	Vertices []geom.Vector3
	Closed   bool
}

// Draw implements Shape.
func (p Polygon) Draw(ctx RenderContext) {
	if len(p.Vertices) < 2 {
		return
	}
	ctx.Target.BeginPath()
	p.DrawPart(ctx)
	ctx.Target.StrokePath()
}

// DrawPart implements PathPart.
func (p Polygon) DrawPart(ctx RenderContext) {
	if len(p.Vertices) == 0 {
		return
	}
	ctx.Target.MoveTo(ctx.Transform(p.Vertices[0]))
	for _, v := range p.Vertices[1:] {
		ctx.Target.LineTo(ctx.Transform(v))
	}
	if p.Closed {
		ctx.Target.ClosePath()
	}
}
