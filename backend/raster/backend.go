// Package raster provides an immediate raster backend built on gg.Context.
//
// Drawing space has +y up; the backend flips it so that drawing point
// (x, y) lands on pixel (x, height-y). Arcs are flattened into line
// segments, circles use gg's cubic approximation. Text is drawn with the Go
// Regular font at the requested size. Comments have no place in a bitmap and
// are only logged.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/sketch/backend/raster"
//
//	b, _ := backend.NewBackend("raster")
//
//	// Or create directly
//	b := raster.New(raster.WithBackground(sketch.White))
//
//	backend.Export(b, 400, 300, tr, scene)
//	b.SaveToFile("output.png")
package raster

import (
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/backend"
	"github.com/gogpu/sketch/geom"
)

func init() {
	backend.Register("raster", func() backend.Backend {
		return New()
	})
}

// arcStep is the largest angle between two samples of a flattened arc.
const arcStep = math.Pi / 90

// Option configures a Backend.
type Option func(*Backend)

// WithBackground sets the color the canvas is cleared to in Begin.
// The default is white.
func WithBackground(c sketch.Color) Option {
	return func(b *Backend) {
		b.background = c
	}
}

// Backend renders to a pixel image using gg.Context.
// It implements backend.Backend, backend.WriterBackend and
// backend.FileBackend.
type Backend struct {
	ctx        *gg.Context
	width      int
	height     int
	background sketch.Color

	current bool

	fonts *text.FontSource
	faces map[float64]text.Face
}

// Ensure Backend implements all required interfaces.
var (
	_ backend.Backend       = (*Backend)(nil)
	_ backend.WriterBackend = (*Backend)(nil)
	_ backend.FileBackend   = (*Backend)(nil)
)

// New creates a new raster backend.
// The backend must be initialized with Begin before use.
func New(opts ...Option) *Backend {
	b := &Backend{background: sketch.White}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin creates a canvas of the given size cleared to the background.
func (b *Backend) Begin(width, height int) error {
	b.width = width
	b.height = height
	b.ctx = gg.NewContext(width, height)
	b.ctx.ClearWithColor(gg.RGBA{R: b.background.R, G: b.background.G, B: b.background.B, A: b.background.A})
	b.ctx.SetLineCap(gg.LineCapRound)
	b.ctx.SetLineJoin(gg.LineJoinRound)
	b.ctx.SetColor(sketch.Black.NRGBA())
	b.ctx.SetLineWidth(1)
	b.current = false
	sketch.Logger().Debug("raster: begin", "width", width, "height", height)
	return nil
}

// End finalizes the rendering.
// After End is called, output methods (WriteTo, SaveToFile) can be used.
func (b *Backend) End() error {
	return nil
}

// Close releases the canvas and the font source.
func (b *Backend) Close() error {
	if b.fonts != nil {
		_ = b.fonts.Close()
		b.fonts = nil
		b.faces = nil
	}
	if b.ctx == nil {
		return nil
	}
	err := b.ctx.Close()
	b.ctx = nil
	return err
}

func (b *Backend) device(p geom.Vector2) (float64, float64) {
	return p[0], float64(b.height) - p[1]
}

// BeginPath discards the current path.
func (b *Backend) BeginPath() {
	b.ctx.ClearPath()
	b.current = false
}

// MoveTo starts a new subpath.
func (b *Backend) MoveTo(p geom.Vector2) {
	b.ctx.MoveTo(b.device(p))
	b.current = true
}

// LineTo adds a line, or starts a subpath when there is no current point.
func (b *Backend) LineTo(p geom.Vector2) {
	if !b.current {
		b.MoveTo(p)
		return
	}
	b.ctx.LineTo(b.device(p))
}

// Arc adds a flattened arc, joined to the current point by a line.
func (b *Backend) Arc(center geom.Vector2, radius, startAngle, endAngle float64, counterClockwise bool) {
	pts := geom.FlattenArc(center, radius, startAngle, endAngle, counterClockwise, arcStep)
	b.LineTo(pts[0])
	for _, p := range pts[1:] {
		b.ctx.LineTo(b.device(p))
	}
}

// Circle adds a closed circle as a subpath of its own.
func (b *Backend) Circle(center geom.Vector2, radius float64) {
	x, y := b.device(center)
	b.ctx.DrawCircle(x, y, radius)
	b.current = true
}

// ClosePath closes the current subpath.
func (b *Backend) ClosePath() {
	b.ctx.ClosePath()
}

// StrokePath strokes and clears the current path.
func (b *Backend) StrokePath() {
	if err := b.ctx.Stroke(); err != nil {
		sketch.Logger().Warn("raster: stroke failed", "err", err)
	}
	b.current = false
}

// FillPath fills and clears the current path.
func (b *Backend) FillPath() {
	if err := b.ctx.Fill(); err != nil {
		sketch.Logger().Warn("raster: fill failed", "err", err)
	}
	b.current = false
}

// SetStrokeColor sets the color of later strokes, fills and text.
func (b *Backend) SetStrokeColor(c sketch.Color) {
	b.ctx.SetRGBA(c.R, c.G, c.B, c.A)
}

// SetLineWidth sets the stroke width in pixels.
func (b *Backend) SetLineWidth(w float64) {
	b.ctx.SetLineWidth(w)
}

// SetLineStyle sets or clears the dash pattern.
func (b *Backend) SetLineStyle(s sketch.LineStyle) {
	if s.IsDashed() {
		b.ctx.SetDash(s.Lengths...)
		b.ctx.SetDashOffset(s.Phase)
	} else {
		b.ctx.ClearDash()
	}
}

// Text draws s with its baseline starting at p.
func (b *Backend) Text(s string, p geom.Vector2, size float64) {
	face := b.face(size)
	if face == nil {
		return
	}
	b.ctx.SetFont(face)
	x, y := b.device(p)
	b.ctx.DrawString(s, x, y)
}

// face returns the cached Go Regular face for size.
func (b *Backend) face(size float64) text.Face {
	if f, ok := b.faces[size]; ok {
		return f
	}
	if b.fonts == nil {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			sketch.Logger().Warn("raster: font unavailable", "err", err)
			return nil
		}
		b.fonts = src
		b.faces = make(map[float64]text.Face)
	}
	f := b.fonts.Face(size)
	b.faces[size] = f
	return f
}

// AddComment logs s; bitmaps cannot carry notes.
func (b *Backend) AddComment(s string) {
	sketch.Logger().Debug("raster: comment", "text", s)
}

// WriteTo writes the rendered content as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := b.ctx.EncodePNG(cw)
	return cw.n, err
}

// SaveToFile saves the rendered content as PNG to a file.
func (b *Backend) SaveToFile(path string) error {
	return b.ctx.SavePNG(path)
}

// Image returns the rendered image.
func (b *Backend) Image() image.Image {
	return b.ctx.Image()
}

// Width returns the backend width.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the backend height.
func (b *Backend) Height() int {
	return b.height
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
