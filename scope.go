package sketch

import (
	"github.com/gogpu/sketch/geom"
	"github.com/gogpu/sketch/transform"
)

// Offset draws its content moved by Delta in world space.
type Offset struct {
	Delta   geom.Vector3
	Content Shape
}

// Draw implements Shape.
func (o Offset) Draw(ctx RenderContext) {
	if o.Content == nil {
		return
	}
	o.Content.Draw(ctx.WithTransformer(transform.NewOffset(ctx.Transform3D, o.Delta)))
}

// Flip draws its content rotated by Angle radians about the line through
// Pivot along Axis. Half a turn about an axis in a mirror plane draws the
// mirrored copy of the content.
type Flip struct {
	Pivot   geom.Vector3
	Axis    geom.Vector3
	Angle   float64
	Content Shape
}

// Draw implements Shape.
func (f Flip) Draw(ctx RenderContext) {
	if f.Content == nil {
		return
	}
	f.Content.Draw(ctx.WithTransformer(transform.NewFlip(ctx.Transform3D, f.Axis, f.Angle, f.Pivot)))
}

// Pattern draws its content Count times, the i-th copy moved by Spacing*i.
type Pattern struct {
	Spacing geom.Vector3
	Count   int
	Content Shape
}

// Draw implements Shape.
func (p Pattern) Draw(ctx RenderContext) {
	if p.Content == nil {
		return
	}
	for i := range p.Count {
		delta := p.Spacing.Mul(float64(i))
		p.Content.Draw(ctx.WithTransformer(transform.NewOffset(ctx.Transform3D, delta)))
	}
}
