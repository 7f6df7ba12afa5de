package sketch

import (
	"math"
	"strconv"

	"github.com/gogpu/sketch/geom"
)

// glyphFrame places glyph coordinates: x runs along side, y along down, both
// in units of scale, starting at corner.
type glyphFrame struct {
	corner, side, down geom.Vector3
	scale              float64
}

func (g glyphFrame) at(x, y float64) geom.Vector3 {
	return g.corner.Add(g.side.Mul(x * g.scale)).Add(g.down.Mul(y * g.scale))
}

func (g glyphFrame) axis() geom.Vector3 {
	return g.side.Cross(g.down)
}

// lever returns the vector of length r*scale along side rotated by angle.
func (g glyphFrame) lever(angle, r float64) geom.Vector3 {
	return geom.RotateAxis(g.side.Mul(r*g.scale), angle, g.axis(), geom.Zero3)
}

func (g glyphFrame) orbit(pivot, point geom.Vector3, angle float64) AxisOrbit {
	return AxisOrbit{Pivot: pivot, Point: point, Angle: angle, Axis: g.axis()}
}

// PathNumber draws the decimal digits of Number as glyphs built from lines
// and arcs. Each glyph is Scale wide and tall; glyph i starts at
// TopCorner + Side*Scale*i and grows along Side and Down, which are expected
// to be unit vectors.
type PathNumber struct {
	Number     int
	TopCorner  geom.Vector3
	Side, Down geom.Vector3
	Scale      float64
}

// Draw implements Shape.
func (n PathNumber) Draw(ctx RenderContext) {
	for i, r := range strconv.Itoa(n.Number) {
		g := glyphFrame{
			corner: n.TopCorner.Add(n.Side.Mul(n.Scale * float64(i))),
			side:   n.Side,
			down:   n.Down,
			scale:  n.Scale,
		}
		pathGlyph(g, r).Draw(ctx)
	}
}

func pathGlyph(g glyphFrame, r rune) Path {
	switch r {
	case '0':
		top, bottom := g.at(0.5, 0.25), g.at(0.5, 0.75)
		return NewPath(
			Comment{"zero"},
			MoveTo{g.at(0.25, 0.25)},
			g.orbit(top, g.at(0.25, 0.25), math.Pi),
			LineTo{g.at(0.75, 0.75)},
			g.orbit(bottom, g.at(0.75, 0.75), math.Pi),
			LineTo{g.at(0.25, 0.25)},
		)
	case '1':
		top := g.at(0.53, 0)
		return NewPath(
			Comment{"one"},
			MoveTo{top.Add(g.lever(0.7*math.Pi, 0.2))},
			LineTo{top},
			LineTo{g.at(0.47, 1)},
		)
	case '2':
		return NewPath(
			Comment{"two"},
			MoveTo{g.at(0.25, 0.25)},
			g.orbit(g.at(0.5, 0.25), g.at(0.25, 0.25), 1.2*math.Pi),
			LineTo{g.at(0.25, 1)},
			LineTo{g.at(0.75, 1)},
		)
	case '3':
		pivot := g.at(0.5, 0.75)
		curve := pivot.Add(g.lever(-0.6*math.Pi, 0.25))
		return NewPath(
			Comment{"three"},
			MoveTo{g.at(0.25, 0)},
			LineTo{g.at(0.75, 0)},
			LineTo{curve},
			g.orbit(pivot, curve, 1.5*math.Pi),
		)
	case '4':
		return NewPath(
			Comment{"four"},
			MoveTo{g.at(0.35, 0)},
			LineTo{g.at(0.25, 0.5)},
			LineTo{g.at(0.75, 0.5)},
			MoveTo{g.at(0.75, 0)},
			LineTo{g.at(0.65, 1)},
		)
	case '5':
		pivot := g.at(0.5, 0.75)
		curve := pivot.Add(g.lever(-0.7*math.Pi, 0.25))
		return NewPath(
			Comment{"five"},
			MoveTo{g.at(0.75, 0)},
			LineTo{g.at(0.45, 0)},
			LineTo{curve},
			g.orbit(pivot, curve, 1.5*math.Pi),
		)
	case '6':
		pivot := g.at(0.5, 0.75)
		curve := pivot.Add(g.lever(-0.9*math.Pi, 0.25))
		return NewPath(
			Comment{"six"},
			MoveTo{g.at(0.45, 0)},
			LineTo{curve},
			g.orbit(pivot, curve, 2*math.Pi),
		)
	case '7':
		return NewPath(
			Comment{"seven"},
			MoveTo{g.at(0.25, 0)},
			LineTo{g.at(0.75, 0)},
			LineTo{g.at(0.4, 1)},
		)
	case '8':
		waist := g.at(0.5, 0.5)
		return NewPath(
			Comment{"eight"},
			MoveTo{waist},
			g.orbit(g.at(0.5, 0.25), waist, 2*math.Pi),
			g.orbit(g.at(0.5, 0.75), waist, 2*math.Pi),
		)
	case '9':
		pivot := g.at(0.5, 0.25)
		curve := pivot.Add(g.lever(0.1*math.Pi, 0.25))
		return NewPath(
			Comment{"nine"},
			MoveTo{g.at(0.55, 1)},
			LineTo{curve},
			g.orbit(pivot, curve, 2*math.Pi),
		)
	case '-':
		return NewPath(
			Comment{"minus"},
			MoveTo{g.at(0.25, 0.5)},
			LineTo{g.at(0.75, 0.5)},
		)
	}
	Logger().Warn("sketch: no glyph", "rune", string(r))
	return NewPath()
}

// StrokeNumber draws the decimal digits of Number as open polylines. Glyph
// i occupies Side*i .. Side*(i+0.7) scaled by Scale from TopCorner and
// grows along Down.
type StrokeNumber struct {
	Number     int
	TopCorner  geom.Vector3
	Side, Down geom.Vector3
	Scale      float64
}

// Draw implements Shape.
func (n StrokeNumber) Draw(ctx RenderContext) {
	for i, r := range strconv.Itoa(n.Number) {
		coords := strokeGlyphs[r]
		if len(coords) == 0 {
			continue
		}
		vertices := make([]geom.Vector3, len(coords))
		for j, c := range coords {
			offset := n.Side.Mul(float64(i)).
				Add(n.Side.Mul(c[0] * 0.7)).
				Add(n.Down.Mul(c[1]))
			vertices[j] = n.TopCorner.Add(offset.Mul(n.Scale))
		}
		Polygon{Vertices: vertices}.Draw(ctx)
	}
}

// strokeGlyphs holds polyline glyphs in a unit box, x right, y down.
var strokeGlyphs = map[rune][][2]float64{
	'0': {{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}},
	'1': {{0.5, 0}, {0.5, 1}},
	'2': {{0, 0}, {1, 0}, {1, 0.3}, {0, 0.6}, {0, 1}, {1, 1}},
	'3': {{0, 0}, {1, 0}, {0.6, 0.6}, {1, 0.6}, {1, 1}, {0, 1}},
	'4': {{0.7, 1}, {0.7, 0}, {0, 0.5}, {1, 0.5}},
	'5': {{1, 0}, {0, 0}, {0, 0.3}, {1, 0.6}, {1, 1}, {0, 1}},
	'6': {{0, 0}, {0, 1}, {1, 1}, {1, 0.6}, {0, 0.5}},
	'7': {{0, 0}, {1, 0}, {1, 0.3}, {0, 1}},
	'8': {{0, 0.4}, {0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0.4}, {1, 0.4}},
	'9': {{1, 1}, {1, 0}, {0, 0}, {0, 0.5}, {1, 0.6}},
	'-': {{0.2, 0.5}, {0.8, 0.5}},
}
