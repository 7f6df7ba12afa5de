// Package svg provides a backend that writes drawings as SVG documents.
//
// Drawing space has +y up, so every y coordinate is negated on output and
// the viewBox spans "0 -height width height". Paths are written with M, L
// and Z commands only; arcs and circles are flattened into line segments.
// Numbers carry up to eight fraction digits (see WithPrecision) and at
// least one.
package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/backend"
	"github.com/gogpu/sketch/geom"
)

func init() {
	backend.Register("svg", func() backend.Backend {
		return New()
	})
}

const (
	// DefaultPrecision is the default number of fraction digits.
	DefaultPrecision = 8

	arcStep = math.Pi / 90
)

// Option configures a Backend.
type Option func(*Backend)

// WithPrecision sets the largest number of fraction digits written for a
// coordinate. Values below one are raised to one.
func WithPrecision(digits int) Option {
	return func(b *Backend) {
		b.precision = max(1, digits)
	}
}

// Backend accumulates SVG elements. It implements backend.Backend and
// backend.WriterBackend.
type Backend struct {
	precision int

	width, height int
	body          bytes.Buffer
	doc           []byte

	d       strings.Builder
	current bool

	color     sketch.Color
	lineWidth float64
	style     sketch.LineStyle
}

var (
	_ backend.Backend       = (*Backend)(nil)
	_ backend.WriterBackend = (*Backend)(nil)
)

// New returns an SVG backend.
func New(opts ...Option) *Backend {
	b := &Backend{precision: DefaultPrecision}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin starts a new document.
func (b *Backend) Begin(width, height int) error {
	b.width, b.height = width, height
	b.body.Reset()
	b.doc = nil
	b.d.Reset()
	b.current = false
	b.color = sketch.Black
	b.lineWidth = 1
	b.style = sketch.Solid()
	return nil
}

// End closes the document.
func (b *Backend) End() error {
	var out bytes.Buffer
	out.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&out, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 %d %d %d">`+"\n",
		b.width, b.height, -b.height, b.width, b.height)
	out.Write(b.body.Bytes())
	out.WriteString("</svg>\n")
	b.doc = out.Bytes()
	sketch.Logger().Debug("svg: end", "bytes", len(b.doc))
	return nil
}

// Bytes returns the finished document.
func (b *Backend) Bytes() []byte { return b.doc }

// WriteTo writes the finished document.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.doc)
	return int64(n), err
}

// num formats v with at most precision fraction digits and at least one.
func (b *Backend) num(v float64) string {
	s := strconv.FormatFloat(v, 'f', b.precision, 64)
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	if s == "-0.0" {
		s = "0.0"
	}
	return s
}

func (b *Backend) command(op byte, p geom.Vector2) {
	if b.d.Len() > 0 {
		b.d.WriteByte(' ')
	}
	b.d.WriteByte(op)
	b.d.WriteString(b.num(p[0]))
	b.d.WriteByte(' ')
	b.d.WriteString(b.num(-p[1]))
}

// BeginPath discards the current path data.
func (b *Backend) BeginPath() {
	b.d.Reset()
	b.current = false
}

// MoveTo starts a subpath.
func (b *Backend) MoveTo(p geom.Vector2) {
	b.command('M', p)
	b.current = true
}

// LineTo adds a line, or starts a subpath when there is no current point.
func (b *Backend) LineTo(p geom.Vector2) {
	if !b.current {
		b.MoveTo(p)
		return
	}
	b.command('L', p)
}

// Arc adds a flattened arc joined to the current point.
func (b *Backend) Arc(center geom.Vector2, radius, startAngle, endAngle float64, counterClockwise bool) {
	pts := geom.FlattenArc(center, radius, startAngle, endAngle, counterClockwise, arcStep)
	b.LineTo(pts[0])
	for _, p := range pts[1:] {
		b.command('L', p)
	}
}

// Circle adds a flattened circle as a closed subpath.
func (b *Backend) Circle(center geom.Vector2, radius float64) {
	pts := geom.FlattenArc(center, radius, 0, 2*math.Pi, true, arcStep)
	b.MoveTo(pts[0])
	for _, p := range pts[1 : len(pts)-1] {
		b.command('L', p)
	}
	b.ClosePath()
}

// ClosePath closes the current subpath. Without one it does nothing.
func (b *Backend) ClosePath() {
	if !b.current {
		return
	}
	b.d.WriteString(" Z")
}

// StrokePath writes the path as an outline.
func (b *Backend) StrokePath() {
	if b.d.Len() == 0 {
		return
	}
	fmt.Fprintf(&b.body, `<path d="%s" fill="none" stroke="%s" stroke-width="%s"`,
		b.d.String(), b.color.HexString(), b.num(b.lineWidth))
	if b.color.A < 1 {
		fmt.Fprintf(&b.body, ` stroke-opacity="%s"`, b.num(b.color.A))
	}
	if b.style.IsDashed() {
		dashes := make([]string, len(b.style.Lengths))
		for i, l := range b.style.Lengths {
			dashes[i] = strconv.Itoa(int(math.Round(l)))
		}
		fmt.Fprintf(&b.body, ` stroke-dasharray="%s"`, strings.Join(dashes, ","))
		if b.style.Phase != 0 {
			fmt.Fprintf(&b.body, ` stroke-dashoffset="%s"`, b.num(b.style.Phase))
		}
	}
	b.body.WriteString("/>\n")
	b.BeginPath()
}

// FillPath writes the path as a filled area.
func (b *Backend) FillPath() {
	if b.d.Len() == 0 {
		return
	}
	fmt.Fprintf(&b.body, `<path d="%s" fill="%s" stroke="none"`, b.d.String(), b.color.HexString())
	if b.color.A < 1 {
		fmt.Fprintf(&b.body, ` fill-opacity="%s"`, b.num(b.color.A))
	}
	b.body.WriteString("/>\n")
	b.BeginPath()
}

// SetStrokeColor sets the color of later paths and text.
func (b *Backend) SetStrokeColor(c sketch.Color) { b.color = c }

// SetLineWidth sets the stroke width of later paths.
func (b *Backend) SetLineWidth(w float64) { b.lineWidth = w }

// SetLineStyle sets the dash pattern of later paths.
func (b *Backend) SetLineStyle(s sketch.LineStyle) { b.style = s }

// Text writes a text element with its baseline starting at p.
func (b *Backend) Text(s string, p geom.Vector2, size float64) {
	fmt.Fprintf(&b.body, `<text x="%s" y="%s" font-size="%s" fill="%s">`,
		b.num(p[0]), b.num(-p[1]), b.num(size), b.color.HexString())
	_ = xml.EscapeText(&b.body, []byte(s))
	b.body.WriteString("</text>\n")
}

// AddComment writes an XML comment.
func (b *Backend) AddComment(s string) {
	// "--" may not appear inside an XML comment.
	s = strings.ReplaceAll(s, "--", "- -")
	fmt.Fprintf(&b.body, "<!-- %s -->\n", s)
}
