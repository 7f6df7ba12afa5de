// Package ezdxf writes Python scripts that build DXF drawings with the
// ezdxf library.
//
// Entities are collected in a Script and wrapped by Document into a
// complete program: imports, document setup, one layer per Layer value,
// the entity statements, validation, saveas and an optional block that
// renders the drawing to PDF.
package ezdxf

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/geom"
	"github.com/gogpu/sketch/stitch"
)

// Precision is the number of fraction digits kept for coordinates.
const Precision = 6

// DefaultFilename is the DXF file the script saves when none is given.
const DefaultFilename = "drawing.dxf"

// Layer is a CAD layer selected from the stroke state.
type Layer int

const (
	Cut Layer = iota
	Etch
	Dash
)

// Layers lists every layer in the order the script creates them.
var Layers = []Layer{Cut, Etch, Dash}

// LayerFor picks the layer for a stroke: dashed strokes go to Dash, yellow
// ones to Etch and everything else to Cut.
func LayerFor(c sketch.Color, s sketch.LineStyle) Layer {
	switch {
	case s.IsDashed():
		return Dash
	case c == sketch.Yellow:
		return Etch
	default:
		return Cut
	}
}

// Name returns the layer name used in the drawing.
func (l Layer) Name() string {
	switch l {
	case Etch:
		return "etch"
	case Dash:
		return "dash"
	default:
		return "cut"
	}
}

// Color returns the ezdxf.colors constant of the layer.
func (l Layer) Color() string {
	switch l {
	case Etch:
		return "YELLOW"
	case Dash:
		return "RED"
	default:
		return "BLACK"
	}
}

// Linetype returns the DXF linetype of the layer.
func (l Layer) Linetype() string {
	if l == Dash {
		return "DASHED"
	}
	return "CONTINUOUS"
}

func (l Layer) String() string { return l.Name() }

func (l Layer) attribs() string {
	return fmt.Sprintf(`dxfattribs={"layer": "%s", "linetype": "%s"}`, l.Name(), l.Linetype())
}

// Num formats v rounded to Precision fraction digits in the shortest form.
func Num(v float64) string {
	v = mgl64.Round(v, Precision)
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Point formats p as a Python tuple.
func Point(p geom.Vector2) string {
	return "(" + Num(p[0]) + ", " + Num(p[1]) + ")"
}

// Script collects entity statements.
type Script struct {
	body     bytes.Buffer
	entities int
}

// Reset discards all statements.
func (s *Script) Reset() {
	s.body.Reset()
	s.entities = 0
}

// Entities returns the number of entity statements written.
func (s *Script) Entities() int { return s.entities }

// Polyline writes an lwpolyline through pts.
func (s *Script) Polyline(l Layer, pts []geom.Vector2) {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = Point(p)
	}
	fmt.Fprintf(&s.body, "msp.add_lwpolyline([%s], %s)\n", strings.Join(parts, ", "), l.attribs())
	s.entities++
}

// BulgePolyline writes an lwpolyline with bulge-encoded arcs. Closed
// polylines get close=True.
func (s *Script) BulgePolyline(l Layer, p stitch.Polyline) {
	parts := make([]string, len(p.Vertices))
	for i, v := range p.Vertices {
		parts[i] = "(" + Num(v.Point[0]) + ", " + Num(v.Point[1]) + ", " + Num(v.Bulge) + ")"
	}
	fmt.Fprintf(&s.body, `msp.add_lwpolyline([%s], format="xyb"`, strings.Join(parts, ", "))
	if p.Closed {
		s.body.WriteString(", close=True")
	}
	fmt.Fprintf(&s.body, ", %s)\n", l.attribs())
	s.entities++
}

// Arc writes a ConstructionArc added to the modelspace. Angles are in
// radians and written in degrees.
func (s *Script) Arc(l Layer, center geom.Vector2, radius, startAngle, endAngle float64, counterClockwise bool) {
	ccw := "False"
	if counterClockwise {
		ccw = "True"
	}
	fmt.Fprintf(&s.body, "arc = ConstructionArc(center=%s, radius=%s, start_angle=%s, end_angle=%s, is_counter_clockwise=%s)\n",
		Point(center), Num(radius), Num(geom.RadToDeg(startAngle)), Num(geom.RadToDeg(endAngle)), ccw)
	fmt.Fprintf(&s.body, "arc.add_to_layout(msp, %s)\n", l.attribs())
	s.entities++
}

// Circle writes a circle entity.
func (s *Script) Circle(l Layer, center geom.Vector2, radius float64) {
	fmt.Fprintf(&s.body, "msp.add_circle(center=%s, radius=%s, %s)\n", Point(center), Num(radius), l.attribs())
	s.entities++
}

// Comment writes a Python comment line.
func (s *Script) Comment(text string) {
	text = strings.NewReplacer("\r", " ", "\n", " ").Replace(text)
	fmt.Fprintf(&s.body, "#%s\n", text)
}

// Output names the files the finished script writes.
type Output struct {
	// DXF is the drawing file. Empty means DefaultFilename.
	DXF string

	// PDF, when set, adds a block that renders the modelspace to this file
	// on an A4 page.
	PDF string
}

// Document returns the complete script.
func (s *Script) Document(out Output) []byte {
	dxf := out.DXF
	if dxf == "" {
		dxf = DefaultFilename
	}

	var b bytes.Buffer
	b.WriteString("import ezdxf\n")
	b.WriteString("from ezdxf.addons.drawing import Frontend, RenderContext, pymupdf, layout, config\n")
	b.WriteString("from ezdxf.math import ConstructionArc\n")
	b.WriteString("from ezdxf import units\n\n")
	b.WriteString("doc = ezdxf.new(\"AC1027\", setup=True)\n")
	b.WriteString("doc.units = units.MM\n")
	b.WriteString("msp = doc.modelspace()\n")
	for _, l := range Layers {
		fmt.Fprintf(&b, "shapeLayer = doc.layers.add(%q)\n", l.Name())
		fmt.Fprintf(&b, "shapeLayer.color = ezdxf.colors.%s\n", l.Color())
		fmt.Fprintf(&b, "shapeLayer.linetype = %q\n", l.Linetype())
	}
	b.WriteString("\n")
	b.Write(s.body.Bytes())
	b.WriteString("\ndoc.validate()\n")
	fmt.Fprintf(&b, "doc.saveas(%q)\n", dxf)

	if out.PDF != "" {
		b.WriteString("\ncontext = RenderContext(doc)\n")
		b.WriteString("backend = pymupdf.PyMuPdfBackend()\n")
		b.WriteString("cfg = config.Configuration(background_policy=config.BackgroundPolicy.WHITE)\n")
		b.WriteString("frontend = Frontend(context, backend, config=cfg)\n")
		b.WriteString("frontend.draw_layout(msp)\n")
		b.WriteString("page = layout.Page(210, 297, layout.Units.mm, margins=layout.Margins.all(20))\n")
		b.WriteString("pdf_bytes = backend.get_pdf_bytes(page)\n")
		fmt.Fprintf(&b, "with open(%q, \"wb\") as fp:\n", out.PDF)
		b.WriteString("    fp.write(pdf_bytes)\n")
	}
	return b.Bytes()
}
