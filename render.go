package sketch

import (
	"github.com/gogpu/sketch/geom"
	"github.com/gogpu/sketch/transform"
)

// NewRenderContext returns the root context of a frame. The initial style is
// not sent to the target; Render does that.
func NewRenderContext(target RenderTarget, tr transform.Transformer, size geom.Vector2, opts ...Option) RenderContext {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return RenderContext{
		Target:      target,
		Color:       o.color,
		LineWidth:   o.lineWidth,
		LineStyle:   o.lineStyle,
		Transform2D: o.transform2D,
		Transform3D: tr,
		CanvasSize:  size,
	}
}

// Render draws content onto target for a canvas of the given size.
//
// The initial style is sent to the target first, then content draws itself
// in order. Later shapes overlap earlier ones, and stitching targets see
// segments in the same order.
func Render(target RenderTarget, tr transform.Transformer, size geom.Vector2, content Shape, opts ...Option) {
	ctx := NewRenderContext(target, tr, size, opts...)

	Logger().Debug("sketch: render",
		"width", size[0],
		"height", size[1],
		"topDown", tr.IsTopDownOrthographic())

	target.SetStrokeColor(ctx.Color)
	target.SetLineWidth(ctx.LineWidth)
	target.SetLineStyle(ctx.LineStyle)

	if content != nil {
		content.Draw(ctx)
	}
}
