package sketch

import "github.com/gogpu/sketch/geom"

// Option configures the initial RenderContext of a Render call.
//
// Example:
//
//	sketch.Render(target, tr, size, scene,
//	    sketch.WithColor(sketch.Blue),
//	    sketch.WithTransform2D(geom.Translate(200, 150)))
type Option func(*renderOptions)

// renderOptions holds the initial style and post-transform.
type renderOptions struct {
	color       Color
	lineWidth   float64
	lineStyle   LineStyle
	transform2D geom.Affine
}

// defaultOptions returns black one-unit solid lines and no post-transform.
func defaultOptions() renderOptions {
	return renderOptions{
		color:       Black,
		lineWidth:   1,
		lineStyle:   Solid(),
		transform2D: geom.Identity(),
	}
}

// WithColor sets the initial stroke color.
func WithColor(c Color) Option {
	return func(o *renderOptions) {
		o.color = c
	}
}

// WithLineWidth sets the initial line width.
func WithLineWidth(w float64) Option {
	return func(o *renderOptions) {
		o.lineWidth = w
	}
}

// WithLineStyle sets the initial line style.
func WithLineStyle(s LineStyle) Option {
	return func(o *renderOptions) {
		o.lineStyle = s
	}
}

// WithTransform2D sets the affine transform applied after projection, for
// example the zoom and pan of an interactive view.
func WithTransform2D(m geom.Affine) Option {
	return func(o *renderOptions) {
		o.transform2D = m
	}
}
