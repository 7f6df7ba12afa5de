// Package dxfstitch provides a backend that welds stroked segments into
// maximal polylines before writing them as an ezdxf script.
//
// Each layer ("cut", "etch", "dash") has its own stitch.Engine. Stroked
// lines and arcs are fed to the engine of the layer selected at stroke
// time, and End writes one lwpolyline per chain with arcs encoded as
// bulges. Closed chains get close=True.
//
// Register the backend by importing the package:
//
//	import _ "github.com/gogpu/sketch/backend/dxfstitch"
package dxfstitch

import (
	"io"
	"math"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/backend"
	"github.com/gogpu/sketch/geom"
	"github.com/gogpu/sketch/internal/ezdxf"
	"github.com/gogpu/sketch/stitch"
)

func init() {
	backend.Register("dxf-stitched", func() backend.Backend {
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

// WithPDF appends a block that renders the drawing to the named PDF file.
func WithPDF(name string) Option {
	return func(b *Backend) {
		b.out.PDF = name
	}
}

// WithThreshold sets the distance at which endpoints are welded.
func WithThreshold(t float64) Option {
	return func(b *Backend) {
		b.stitchOpts = append(b.stitchOpts, stitch.WithThreshold(t))
	}
}

// Backend stitches segments per layer. It implements backend.Backend and
// backend.WriterBackend.
type Backend struct {
	out        ezdxf.Output
	stitchOpts []stitch.Option

	engines map[ezdxf.Layer]*stitch.Engine
	script  ezdxf.Script
	doc     []byte

	pending    []stitch.Segment
	current    geom.Vector2
	start      geom.Vector2
	hasCurrent bool

	color sketch.Color
	style sketch.LineStyle
}

var (
	_ backend.Backend       = (*Backend)(nil)
	_ backend.WriterBackend = (*Backend)(nil)
)

// New returns a stitching DXF script backend.
func New(opts ...Option) *Backend {
	b := &Backend{}
	for _, opt := range opts {
		opt(b)
	}
	b.reset()
	return b
}

func (b *Backend) reset() {
	b.engines = make(map[ezdxf.Layer]*stitch.Engine, len(ezdxf.Layers))
	for _, l := range ezdxf.Layers {
		b.engines[l] = stitch.New(b.stitchOpts...)
	}
	b.script.Reset()
	b.doc = nil
	b.pending = b.pending[:0]
	b.hasCurrent = false
	b.color = sketch.Black
	b.style = sketch.Solid()
}

// Begin starts a new session with empty engines. The canvas size is not
// used.
func (b *Backend) Begin(width, height int) error {
	b.reset()
	return nil
}

// End writes every chain of every layer and finishes the script.
func (b *Backend) End() error {
	b.pending = b.pending[:0]
	for _, l := range ezdxf.Layers {
		for _, c := range b.engines[l].Chains() {
			b.script.BulgePolyline(l, c.Polyline())
		}
	}
	b.doc = b.script.Document(b.out)
	sketch.Logger().Debug("dxfstitch: end",
		"segments", b.Len(),
		"open", b.OpenCount(),
		"closed", b.ClosedCount(),
		"frozen", b.FrozenCount(),
		"bytes", len(b.doc))
	return nil
}

// Bytes returns the finished script.
func (b *Backend) Bytes() []byte { return b.doc }

// WriteTo writes the finished script.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.doc)
	return int64(n), err
}

// Engine returns the stitching engine of layer l.
func (b *Backend) Engine(l ezdxf.Layer) *stitch.Engine { return b.engines[l] }

// Freeze stops the open chains of every layer from accepting more
// segments. They are still written as open polylines.
func (b *Backend) Freeze() {
	for _, e := range b.engines {
		e.Freeze()
	}
}

func (b *Backend) sum(f func(*stitch.Engine) int) int {
	n := 0
	for _, e := range b.engines {
		n += f(e)
	}
	return n
}

// OpenCount returns the number of open chains over all layers.
func (b *Backend) OpenCount() int { return b.sum((*stitch.Engine).OpenCount) }

// ClosedCount returns the number of closed chains over all layers.
func (b *Backend) ClosedCount() int { return b.sum((*stitch.Engine).ClosedCount) }

// FrozenCount returns the number of frozen chains over all layers.
func (b *Backend) FrozenCount() int { return b.sum((*stitch.Engine).FrozenCount) }

// Len returns the number of stitched segments over all layers.
func (b *Backend) Len() int { return b.sum((*stitch.Engine).Len) }

// BeginPath discards unstroked segments and the current point.
func (b *Backend) BeginPath() {
	b.pending = b.pending[:0]
	b.hasCurrent = false
}

// MoveTo starts a subpath at p.
func (b *Backend) MoveTo(p geom.Vector2) {
	b.current, b.start = p, p
	b.hasCurrent = true
}

// LineTo records a line from the current point. It panics when there is no
// current point.
func (b *Backend) LineTo(p geom.Vector2) {
	if !b.hasCurrent {
		panic("dxfstitch: LineTo without a current point")
	}
	b.pending = append(b.pending, stitch.LineSegment(b.current, p))
	b.current = p
}

// Arc records an arc, joined to the current point by a line when it does
// not start there.
func (b *Backend) Arc(center geom.Vector2, radius, startAngle, endAngle float64, counterClockwise bool) {
	arc := stitch.ArcSegment(center, radius, startAngle, endAngle, counterClockwise)
	if !b.hasCurrent {
		b.MoveTo(arc.Start)
	}
	b.pending = append(b.pending, stitch.LineSegment(b.current, arc.Start), arc)
	b.current = arc.End
}

// Circle records a full circle. The current point is unchanged.
func (b *Backend) Circle(center geom.Vector2, radius float64) {
	b.pending = append(b.pending, stitch.ArcSegment(center, radius, 0, 2*math.Pi, true))
}

// ClosePath records a line back to the start of the subpath. Without a
// current point it does nothing.
func (b *Backend) ClosePath() {
	if !b.hasCurrent {
		return
	}
	b.pending = append(b.pending, stitch.LineSegment(b.current, b.start))
	b.current = b.start
}

// StrokePath feeds the recorded segments to the engine of the current
// layer.
func (b *Backend) StrokePath() {
	e := b.engines[ezdxf.LayerFor(b.color, b.style)]
	for _, s := range b.pending {
		e.Add(s)
	}
	b.BeginPath()
}

// FillPath is not supported by CAD output and panics.
func (b *Backend) FillPath() {
	panic("dxfstitch: FillPath is not supported")
}

// SetStrokeColor selects the layer of later strokes.
func (b *Backend) SetStrokeColor(c sketch.Color) { b.color = c }

// SetLineWidth is ignored.
func (b *Backend) SetLineWidth(float64) {}

// SetLineStyle selects the layer of later strokes.
func (b *Backend) SetLineStyle(s sketch.LineStyle) { b.style = s }

// Text is ignored.
func (b *Backend) Text(s string, _ geom.Vector2, _ float64) {
	sketch.Logger().Debug("dxfstitch: text dropped", "text", s)
}

// AddComment writes a script comment ahead of the entities.
func (b *Backend) AddComment(s string) { b.script.Comment(s) }
