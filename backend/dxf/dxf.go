// Package dxf provides a backend that writes drawings as ezdxf scripts.
//
// Every stroked run of lines becomes one lwpolyline, every arc a
// ConstructionArc and every circle a circle entity. The entity layer is
// taken from the stroke state: dashed strokes go to "dash", yellow ones to
// "etch" and the rest to "cut". Line widths and text are not carried.
//
// Register the backend by importing the package:
//
//	import _ "github.com/gogpu/sketch/backend/dxf"
package dxf

import (
	"io"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/backend"
	"github.com/gogpu/sketch/geom"
	"github.com/gogpu/sketch/internal/ezdxf"
)

func init() {
	backend.Register("dxf", func() backend.Backend {
		return New()
	})
}

// Option configures a Backend.
type Option func(*Backend)

// WithFilename sets the DXF file the script saves.
func WithFilename(name string) Option {
	return func(b *Backend) {
		b.out.DXF = name
	}
}

// WithPDF makes the script also render the drawing to the named PDF file.
func WithPDF(name string) Option {
	return func(b *Backend) {
		b.out.PDF = name
	}
}

// Backend accumulates ezdxf statements. It implements backend.Backend and
// backend.WriterBackend.
type Backend struct {
	out    ezdxf.Output
	script ezdxf.Script
	doc    []byte

	run []geom.Vector2

	color sketch.Color
	style sketch.LineStyle
}

var (
	_ backend.Backend       = (*Backend)(nil)
	_ backend.WriterBackend = (*Backend)(nil)
)

// New returns a DXF script backend.
func New(opts ...Option) *Backend {
	b := &Backend{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin starts a new script. The canvas size is not used.
func (b *Backend) Begin(width, height int) error {
	b.script.Reset()
	b.doc = nil
	b.run = b.run[:0]
	b.color = sketch.Black
	b.style = sketch.Solid()
	return nil
}

// End finishes the script.
func (b *Backend) End() error {
	b.flush()
	b.doc = b.script.Document(b.out)
	sketch.Logger().Debug("dxf: end", "entities", b.script.Entities(), "bytes", len(b.doc))
	return nil
}

// Bytes returns the finished script.
func (b *Backend) Bytes() []byte { return b.doc }

// WriteTo writes the finished script.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.doc)
	return int64(n), err
}

func (b *Backend) layer() ezdxf.Layer { return ezdxf.LayerFor(b.color, b.style) }

// flush writes the pending run as a polyline.
func (b *Backend) flush() {
	if len(b.run) >= 2 {
		b.script.Polyline(b.layer(), b.run)
	}
	b.run = b.run[:0]
}

// BeginPath discards the pending run.
func (b *Backend) BeginPath() { b.run = b.run[:0] }

// MoveTo writes the pending run and starts a new one at p.
func (b *Backend) MoveTo(p geom.Vector2) {
	b.flush()
	b.run = append(b.run, p)
}

// LineTo extends the pending run.
func (b *Backend) LineTo(p geom.Vector2) { b.run = append(b.run, p) }

// Arc writes the pending run, joined to the arc's start point, and the
// arc. A new run starts at the arc's end point.
func (b *Backend) Arc(center geom.Vector2, radius, startAngle, endAngle float64, counterClockwise bool) {
	start := geom.Polar(center, radius, startAngle)
	end := geom.Polar(center, radius, endAngle)
	if n := len(b.run); n > 0 && ezdxf.Point(b.run[n-1]) != ezdxf.Point(start) {
		b.run = append(b.run, start)
	}
	b.flush()
	if ezdxf.Point(start) != ezdxf.Point(end) {
		b.script.Arc(b.layer(), center, radius, startAngle, endAngle, counterClockwise)
	}
	b.run = append(b.run, end)
}

// Circle writes a circle entity.
func (b *Backend) Circle(center geom.Vector2, radius float64) {
	b.script.Circle(b.layer(), center, radius)
}

// ClosePath repeats the first point of the pending run.
func (b *Backend) ClosePath() {
	if len(b.run) == 0 {
		return
	}
	b.run = append(b.run, b.run[0])
}

// StrokePath writes the pending run.
func (b *Backend) StrokePath() { b.flush() }

// FillPath is not supported by CAD output and panics.
func (b *Backend) FillPath() {
	panic("dxf: FillPath is not supported")
}

// SetStrokeColor selects the layer of later entities.
func (b *Backend) SetStrokeColor(c sketch.Color) {
	b.flush()
	b.color = c
}

// SetLineWidth is ignored.
func (b *Backend) SetLineWidth(float64) {}

// SetLineStyle selects the layer of later entities.
func (b *Backend) SetLineStyle(s sketch.LineStyle) {
	b.flush()
	b.style = s
}

// Text is ignored.
func (b *Backend) Text(s string, _ geom.Vector2, _ float64) {
	sketch.Logger().Debug("dxf: text dropped", "text", s)
}

// AddComment writes a script comment.
func (b *Backend) AddComment(s string) { b.script.Comment(s) }
