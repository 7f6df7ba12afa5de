package ezdxf

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/geom"
	"github.com/gogpu/sketch/stitch"
)

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{-1e-9, "0"},
		{5, "5"},
		{-2.5, "-2.5"},
		{0.1, "0.1"},
		{1.0 / 3, "0.333333"},
		{2.0 / 3, "0.666667"},
		{123456.7, "123456.7"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Num(tt.in), "Num(%v)", tt.in)
	}
}

func TestLayerFor(t *testing.T) {
	tests := []struct {
		name  string
		color sketch.Color
		style sketch.LineStyle
		want  Layer
	}{
		{"black", sketch.Black, sketch.Solid(), Cut},
		{"red", sketch.Red, sketch.Solid(), Cut},
		{"yellow", sketch.Yellow, sketch.Solid(), Etch},
		{"dashed", sketch.Black, sketch.Dashed(0, 4, 2), Dash},
		{"dashed yellow", sketch.Yellow, sketch.Dashed(0, 4, 2), Dash},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LayerFor(tt.color, tt.style))
		})
	}
}

func TestLayerNames(t *testing.T) {
	assert.Equal(t, "cut", Cut.Name())
	assert.Equal(t, "BLACK", Cut.Color())
	assert.Equal(t, "CONTINUOUS", Cut.Linetype())
	assert.Equal(t, "etch", Etch.String())
	assert.Equal(t, "YELLOW", Etch.Color())
	assert.Equal(t, "CONTINUOUS", Etch.Linetype())
	assert.Equal(t, "dash", Dash.Name())
	assert.Equal(t, "RED", Dash.Color())
	assert.Equal(t, "DASHED", Dash.Linetype())
}

func TestPolyline(t *testing.T) {
	var s Script
	s.Polyline(Cut, []geom.Vector2{{0, 0}, {10, 0}, {10, 5.5}})
	assert.Equal(t,
		`msp.add_lwpolyline([(0, 0), (10, 0), (10, 5.5)], dxfattribs={"layer": "cut", "linetype": "CONTINUOUS"})`+"\n",
		s.body.String())
	assert.Equal(t, 1, s.Entities())
}

func TestBulgePolyline(t *testing.T) {
	var s Script
	s.BulgePolyline(Etch, stitch.Polyline{
		Vertices: []stitch.Vertex{{Point: geom.V2(5, 0), Bulge: 1}, {Point: geom.V2(-5, 0), Bulge: 1}},
		Closed:   true,
	})
	s.BulgePolyline(Dash, stitch.Polyline{
		Vertices: []stitch.Vertex{{Point: geom.V2(0, 0)}, {Point: geom.V2(1, 0)}},
	})
	lines := strings.Split(strings.TrimSpace(s.body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		`msp.add_lwpolyline([(5, 0, 1), (-5, 0, 1)], format="xyb", close=True, dxfattribs={"layer": "etch", "linetype": "CONTINUOUS"})`,
		lines[0])
	assert.Equal(t,
		`msp.add_lwpolyline([(0, 0, 0), (1, 0, 0)], format="xyb", dxfattribs={"layer": "dash", "linetype": "DASHED"})`,
		lines[1])
}

func TestArcAndCircle(t *testing.T) {
	var s Script
	s.Arc(Cut, geom.V2(1, 2), 3, 0, math.Pi/2, true)
	s.Circle(Dash, geom.V2(0, 0), 5)
	want := "arc = ConstructionArc(center=(1, 2), radius=3, start_angle=0, end_angle=90, is_counter_clockwise=True)\n" +
		`arc.add_to_layout(msp, dxfattribs={"layer": "cut", "linetype": "CONTINUOUS"})` + "\n" +
		`msp.add_circle(center=(0, 0), radius=5, dxfattribs={"layer": "dash", "linetype": "DASHED"})` + "\n"
	assert.Equal(t, want, s.body.String())
	assert.Equal(t, 2, s.Entities())
}

func TestClockwiseArc(t *testing.T) {
	var s Script
	s.Arc(Cut, geom.V2(0, 0), 1, math.Pi, 0, false)
	assert.Contains(t, s.body.String(), "start_angle=180, end_angle=0, is_counter_clockwise=False")
}

func TestComment(t *testing.T) {
	var s Script
	s.Comment("two\nlines")
	assert.Equal(t, "#two lines\n", s.body.String())
	assert.Equal(t, 0, s.Entities())
}

func TestDocument(t *testing.T) {
	var s Script
	s.Circle(Cut, geom.V2(0, 0), 1)
	doc := string(s.Document(Output{}))

	assert.True(t, strings.HasPrefix(doc, "import ezdxf\n"))
	assert.Contains(t, doc, `doc = ezdxf.new("AC1027", setup=True)`)
	assert.Contains(t, doc, "doc.units = units.MM\n")
	for _, l := range Layers {
		assert.Contains(t, doc, `shapeLayer = doc.layers.add("`+l.Name()+`")`)
		assert.Contains(t, doc, "shapeLayer.color = ezdxf.colors."+l.Color())
	}
	assert.Contains(t, doc, "msp.add_circle(")
	assert.Contains(t, doc, `doc.saveas("drawing.dxf")`)
	assert.NotContains(t, doc, "pymupdf.PyMuPdfBackend()")

	// Entities follow the layer setup and precede validation.
	layer := strings.Index(doc, `doc.layers.add("dash")`)
	circle := strings.Index(doc, "msp.add_circle(")
	validate := strings.Index(doc, "doc.validate()")
	assert.Less(t, layer, circle)
	assert.Less(t, circle, validate)
}

func TestDocumentPDF(t *testing.T) {
	var s Script
	doc := string(s.Document(Output{DXF: "part.dxf", PDF: "part.pdf"}))
	assert.Contains(t, doc, `doc.saveas("part.dxf")`)
	assert.Contains(t, doc, "backend = pymupdf.PyMuPdfBackend()\n")
	assert.Contains(t, doc, "page = layout.Page(210, 297, layout.Units.mm, margins=layout.Margins.all(20))\n")
	assert.Contains(t, doc, `with open("part.pdf", "wb") as fp:`)
	assert.Less(t, strings.Index(doc, "doc.saveas("), strings.Index(doc, "RenderContext(doc)"))
}

func TestReset(t *testing.T) {
	var s Script
	s.Circle(Cut, geom.V2(0, 0), 1)
	s.Reset()
	assert.Equal(t, 0, s.Entities())
	assert.NotContains(t, string(s.Document(Output{})), "add_circle")
}
