package sketch

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/sketch/geom"
	"github.com/gogpu/sketch/transform"
)

var (
	plan       = transform.NewAxisAligned(geom.PlaneXY)
	canvasSize = geom.V2(200, 200)
	origin     = geom.V3(0, 0, 0)
	x10        = geom.V3(10, 0, 0)
)

// call is one command received by a recorder.
type call struct {
	name   string
	points []geom.Vector2
	values []float64
	color  Color
	style  LineStyle
	text   string
	ccw    bool
}

// recorder is a RenderTarget that remembers every command.
type recorder struct {
	calls []call
}

var _ RenderTarget = (*recorder)(nil)

func (r *recorder) add(c call) { r.calls = append(r.calls, c) }

func (r *recorder) BeginPath()            { r.add(call{name: "BeginPath"}) }
func (r *recorder) MoveTo(p geom.Vector2) { r.add(call{name: "MoveTo", points: []geom.Vector2{p}}) }
func (r *recorder) LineTo(p geom.Vector2) { r.add(call{name: "LineTo", points: []geom.Vector2{p}}) }
func (r *recorder) ClosePath()            { r.add(call{name: "ClosePath"}) }
func (r *recorder) StrokePath()           { r.add(call{name: "StrokePath"}) }
func (r *recorder) FillPath()             { r.add(call{name: "FillPath"}) }

func (r *recorder) Arc(c geom.Vector2, radius, start, end float64, ccw bool) {
	r.add(call{name: "Arc", points: []geom.Vector2{c}, values: []float64{radius, start, end}, ccw: ccw})
}

func (r *recorder) Circle(c geom.Vector2, radius float64) {
	r.add(call{name: "Circle", points: []geom.Vector2{c}, values: []float64{radius}})
}

func (r *recorder) SetStrokeColor(c Color)   { r.add(call{name: "SetStrokeColor", color: c}) }
func (r *recorder) SetLineWidth(w float64)   { r.add(call{name: "SetLineWidth", values: []float64{w}}) }
func (r *recorder) SetLineStyle(s LineStyle) { r.add(call{name: "SetLineStyle", style: s}) }

func (r *recorder) Text(s string, p geom.Vector2, size float64) {
	r.add(call{name: "Text", text: s, points: []geom.Vector2{p}, values: []float64{size}})
}

func (r *recorder) AddComment(s string) { r.add(call{name: "AddComment", text: s}) }

func (r *recorder) names() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.name
	}
	return out
}

func (r *recorder) find(name string) []call {
	var out []call
	for _, c := range r.calls {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

// last returns the point of the last MoveTo or LineTo.
func (r *recorder) last() geom.Vector2 {
	for i := len(r.calls) - 1; i >= 0; i-- {
		if n := r.calls[i].name; n == "MoveTo" || n == "LineTo" {
			return r.calls[i].points[0]
		}
	}
	return geom.Vector2{}
}

// draw renders s without the initial style commands.
func draw(s Shape, opts ...Option) *recorder {
	rec := &recorder{}
	s.Draw(NewRenderContext(rec, plan, canvasSize, opts...))
	return rec
}

func assertVec2(t *testing.T, want, got geom.Vector2, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want[0], got[0], 1e-6, msgAndArgs...)
	assert.InDelta(t, want[1], got[1], 1e-6, msgAndArgs...)
}

func TestRenderSendsInitialStyle(t *testing.T) {
	rec := &recorder{}
	Render(rec, plan, canvasSize, LineSection{From: origin, To: x10},
		WithColor(Red), WithLineWidth(2), WithLineStyle(Dashed(0, 4, 2)))

	require.Equal(t, []string{
		"SetStrokeColor", "SetLineWidth", "SetLineStyle",
		"BeginPath", "MoveTo", "LineTo", "StrokePath",
	}, rec.names())
	assert.Equal(t, Red, rec.calls[0].color)
	assert.Equal(t, []float64{2}, rec.calls[1].values)
	assert.True(t, rec.calls[2].style.Equal(Dashed(0, 4, 2)))
	assertVec2(t, geom.V2(0, 0), rec.calls[4].points[0])
	assertVec2(t, geom.V2(10, 0), rec.calls[5].points[0])
}

func TestRenderDefaults(t *testing.T) {
	rec := &recorder{}
	Render(rec, plan, canvasSize, nil)

	require.Len(t, rec.calls, 3)
	assert.Equal(t, Black, rec.calls[0].color)
	assert.Equal(t, []float64{1}, rec.calls[1].values)
	assert.False(t, rec.calls[2].style.IsDashed())
}

func TestRenderContextTransform2D(t *testing.T) {
	rec := draw(LineSection{From: origin, To: x10}, WithTransform2D(geom.Translate(5, 5)))
	assertVec2(t, geom.V2(5, 5), rec.find("MoveTo")[0].points[0])
	assertVec2(t, geom.V2(15, 5), rec.find("LineTo")[0].points[0])
}

func TestRenderContextUnapplyUnsupported(t *testing.T) {
	ctx := NewRenderContext(&recorder{}, plan, canvasSize)
	_, err := ctx.Unapply(geom.V2(1, 1))
	assert.True(t, errors.Is(err, errors.ErrUnsupported))
}

func TestRenderContextUnapplyCamera(t *testing.T) {
	cam := transform.NewCameraOrthographic(transform.LookFrom(geom.V3(0, -50, 0), geom.UnitY))
	ctx := NewRenderContext(&recorder{}, cam, canvasSize, WithTransform2D(geom.Translate(3, -2)))

	world := geom.V3(4, 0, 7)
	ray, err := ctx.Unapply(ctx.Transform(world))
	require.NoError(t, err)
	assert.InDelta(t, 0, ray.DistanceTo(world), 1e-6)
}

func TestDecorationRestoresInReverseOrder(t *testing.T) {
	inner := Decorate(LineSection{From: origin, To: x10}).WithColor(Blue).WithLineWidth(3)
	outer := Decorate(inner).WithColor(Red)

	rec := draw(outer)

	require.Equal(t, []string{
		"SetStrokeColor", // red
		"SetStrokeColor", // blue
		"SetLineWidth",   // 3
		"BeginPath", "MoveTo", "LineTo", "StrokePath",
		"SetLineWidth",   // 1
		"SetStrokeColor", // red
		"SetStrokeColor", // black
	}, rec.names())
	colors := rec.find("SetStrokeColor")
	assert.Equal(t, []Color{Red, Blue, Red, Black},
		[]Color{colors[0].color, colors[1].color, colors[2].color, colors[3].color})
	widths := rec.find("SetLineWidth")
	assert.Equal(t, []float64{3}, widths[0].values)
	assert.Equal(t, []float64{1}, widths[1].values)
}

func TestDecorationSkipsUnchangedSettings(t *testing.T) {
	rec := draw(Decorate(LineSection{From: origin, To: x10}).
		WithColor(Black).
		WithLineWidth(1).
		WithLineStyle(Solid()))
	assert.Equal(t, []string{"BeginPath", "MoveTo", "LineTo", "StrokePath"}, rec.names())
}

func TestDecorationLineStyle(t *testing.T) {
	rec := draw(Decorate(LineSection{From: origin, To: x10}).WithLineStyle(Dashed(1, 4, 2)))
	styles := rec.find("SetLineStyle")
	require.Len(t, styles, 2)
	assert.True(t, styles[0].style.Equal(Dashed(1, 4, 2)))
	assert.False(t, styles[1].style.IsDashed())
}

func TestDecorationHidden(t *testing.T) {
	rec := draw(Decorate(LineSection{From: origin, To: x10}).WithColor(Red).Hidden(true))
	assert.Empty(t, rec.calls)
}

func TestDecorationContextSeenByChildren(t *testing.T) {
	var seen RenderContext
	rec := draw(Decorate(CodeBlock{Fn: func(ctx RenderContext) { seen = ctx }}).
		WithColor(Yellow).
		WithLineWidth(0.5))
	assert.Equal(t, Yellow, seen.Color)
	assert.Equal(t, 0.5, seen.LineWidth)
	assert.Len(t, rec.calls, 4)
}

func TestDecorationDeepNesting(t *testing.T) {
	var s Shape = LineSection{From: origin, To: x10}
	palette := []Color{Red, Green, Blue, Cyan, Pink}
	for _, c := range palette {
		s = Decorate(s).WithColor(c)
	}
	rec := draw(s)

	colors := rec.find("SetStrokeColor")
	require.Len(t, colors, 2*len(palette))
	// Outermost first on the way in, innermost first on the way out.
	for i := range palette {
		assert.Equal(t, palette[len(palette)-1-i], colors[i].color, "set %d", i)
	}
	for i := range palette {
		want := Black
		if i < len(palette)-1 {
			want = palette[i+1]
		}
		assert.Equal(t, want, colors[len(palette)+i].color, "restore %d", i)
	}
}

func TestShapesDrawInOrder(t *testing.T) {
	rec := draw(Shapes{
		Comment{Text: "first"},
		Nothing{},
		Builder(func() []Shape { return []Shape{Comment{Text: "second"}} }),
		Comment{Text: "third"},
	})
	var texts []string
	for _, c := range rec.find("AddComment") {
		texts = append(texts, c.text)
	}
	assert.Equal(t, []string{"first", "second", "third"}, texts)
}

type counter struct{ n *int }

func (c counter) Children() []Shape {
	*c.n++
	return []Shape{Comment{Text: fmt.Sprint(*c.n)}}
}

func TestComposeRebuildsOnEachDraw(t *testing.T) {
	n := 0
	s := Compose(counter{&n})
	draw(s)
	rec := draw(s)
	assert.Equal(t, 2, n)
	assert.Equal(t, "2", rec.calls[0].text)
}

func TestNilBuilderDrawsNothing(t *testing.T) {
	var b Builder
	assert.Empty(t, draw(b).calls)
}
