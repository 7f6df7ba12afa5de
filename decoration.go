package sketch

// Decoration draws its content with a different color, line width or line
// style, or hides it.
//
// Only settings that differ from the inherited context are sent to the
// target, and after the content is drawn exactly those settings are set back
// to the inherited values, most recent first.
type Decoration struct {
	content   Shape
	color     *Color
	lineWidth *float64
	lineStyle *LineStyle
	hidden    bool
}

// Decorate returns a Decoration of content that changes nothing yet.
func Decorate(content Shape) Decoration {
	return Decoration{content: content}
}

// WithColor returns d drawing in color c.
func (d Decoration) WithColor(c Color) Decoration {
	d.color = &c
	return d
}

// WithLineWidth returns d drawing with line width w.
func (d Decoration) WithLineWidth(w float64) Decoration {
	d.lineWidth = &w
	return d
}

// WithLineStyle returns d drawing with line style s.
func (d Decoration) WithLineStyle(s LineStyle) Decoration {
	d.lineStyle = &s
	return d
}

// Hidden returns d drawing nothing when hidden is set.
func (d Decoration) Hidden(hidden bool) Decoration {
	d.hidden = hidden
	return d
}

// Draw implements Shape.
func (d Decoration) Draw(ctx RenderContext) {
	if d.hidden || d.content == nil {
		return
	}
	target := ctx.Target
	inner := ctx

	if d.color != nil && *d.color != ctx.Color {
		target.SetStrokeColor(*d.color)
		inner.Color = *d.color
		defer target.SetStrokeColor(ctx.Color)
	}
	if d.lineWidth != nil && *d.lineWidth != ctx.LineWidth {
		target.SetLineWidth(*d.lineWidth)
		inner.LineWidth = *d.lineWidth
		defer target.SetLineWidth(ctx.LineWidth)
	}
	if d.lineStyle != nil && !d.lineStyle.Equal(ctx.LineStyle) {
		target.SetLineStyle(*d.lineStyle)
		inner.LineStyle = *d.lineStyle
		defer target.SetLineStyle(ctx.LineStyle)
	}

	d.content.Draw(inner)
}
