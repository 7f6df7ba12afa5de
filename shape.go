package sketch

// Shape is anything that can draw itself onto a RenderContext.
type Shape interface {
	Draw(ctx RenderContext)
}

// PathPart contributes segments to the path currently being built on
// ctx.Target. It must not begin, stroke or fill the path.
type PathPart interface {
	DrawPart(ctx RenderContext)
}

// Shapes draws its elements in order.
type Shapes []Shape

// Draw implements Shape.
func (s Shapes) Draw(ctx RenderContext) {
	for _, shape := range s {
		shape.Draw(ctx)
	}
}

// Builder produces shapes at draw time. It is called on every draw, so the
// shapes may depend on state that changes between frames.
type Builder func() []Shape

// Draw implements Shape.
func (b Builder) Draw(ctx RenderContext) {
	if b == nil {
		return
	}
	Shapes(b()).Draw(ctx)
}

// Parts produces path parts at draw time.
type Parts func() []PathPart

// DrawPart implements PathPart.
func (p Parts) DrawPart(ctx RenderContext) {
	if p == nil {
		return
	}
	for _, part := range p() {
		part.DrawPart(ctx)
	}
}

// Composite is implemented by user types that describe themselves as a list
// of shapes.
type Composite interface {
	Children() []Shape
}

// Compose adapts a Composite to a Shape that asks for the children on every
// draw.
func Compose(c Composite) Shape {
	return Builder(c.Children)
}

// Nothing draws nothing. It stands in where a shape is required but none is
// wanted.
type Nothing struct{}

// Draw implements Shape.
func (Nothing) Draw(RenderContext) {}

// DrawPart implements PathPart.
func (Nothing) DrawPart(RenderContext) {}

// Comment passes a note to the target.
type Comment struct {
	Text string
}

// Draw implements Shape.
func (c Comment) Draw(ctx RenderContext) { ctx.Target.AddComment(c.Text) }

// DrawPart implements PathPart.
func (c Comment) DrawPart(ctx RenderContext) { ctx.Target.AddComment(c.Text) }

// CodeBlock runs arbitrary code at its position in the tree.
type CodeBlock struct {
	Fn func(ctx RenderContext)
}

// Draw implements Shape.
func (c CodeBlock) Draw(ctx RenderContext) {
	if c.Fn != nil {
		c.Fn(ctx)
	}
}

// DrawPart implements PathPart.
func (c CodeBlock) DrawPart(ctx RenderContext) { c.Draw(ctx) }
