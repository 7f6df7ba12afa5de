package sketch

import (
	"github.com/gogpu/sketch/geom"
	"github.com/gogpu/sketch/transform"
)

// RenderContext carries everything a shape needs to draw itself: the
// target, the current style, the projection and the canvas size.
//
// RenderContext is a small value. Scopes that change the style or the
// projection copy it with one of the With methods and hand the copy to their
// children; the parent's context is never modified.
type RenderContext struct {
	Target      RenderTarget
	Color       Color
	LineWidth   float64
	LineStyle   LineStyle
	Transform2D geom.Affine
	Transform3D transform.Transformer
	CanvasSize  geom.Vector2
}

// Transform projects a world point into drawing space: Transform3D first,
// then Transform2D.
func (c RenderContext) Transform(p geom.Vector3) geom.Vector2 {
	return c.Transform2D.Apply(c.Transform3D.Apply(p, c.CanvasSize))
}

// Unapply returns the world space ray under a drawing space point.
func (c RenderContext) Unapply(p geom.Vector2) (geom.Ray, error) {
	return c.Transform3D.Unapply(c.Transform2D.Invert().Apply(p), c.CanvasSize)
}

// WithColor returns a copy of c with a different color.
func (c RenderContext) WithColor(col Color) RenderContext {
	c.Color = col
	return c
}

// WithLineWidth returns a copy of c with a different line width.
func (c RenderContext) WithLineWidth(w float64) RenderContext {
	c.LineWidth = w
	return c
}

// WithLineStyle returns a copy of c with a different line style.
func (c RenderContext) WithLineStyle(s LineStyle) RenderContext {
	c.LineStyle = s
	return c
}

// WithTransformer returns a copy of c projecting through t.
func (c RenderContext) WithTransformer(t transform.Transformer) RenderContext {
	c.Transform3D = t
	return c
}

// WithTransform2D returns a copy of c with a different post-transform.
func (c RenderContext) WithTransform2D(m geom.Affine) RenderContext {
	c.Transform2D = m
	return c
}
