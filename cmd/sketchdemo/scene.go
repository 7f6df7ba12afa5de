package main

import (
	"math"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/geom"
)

// plateThickness separates the bottom and top outline of the demo plate.
const plateThickness = 6

// scene returns the demo part: a plate with a hole pattern, a relieved slot,
// mirrored corner arcs, etched numbers and dashed centre lines. cad leaves
// out filled and construction-only shapes that CAD output cannot carry.
func scene(cad bool) sketch.Shape {
	outline := sketch.Polygon{
		Vertices: []geom.Vector3{{-150, -90, 0}, {150, -90, 0}, {150, 90, 0}, {-150, 90, 0}},
		Closed:   true,
	}
	corner := sketch.Arc{Center: geom.V3(-130, -70, 0), Radius: 12, StartAngle: math.Pi, EndAngle: 1.5 * math.Pi}

	shapes := sketch.Shapes{
		sketch.Comment{Text: "plate"},
		outline,
		sketch.Offset{Delta: geom.V3(0, 0, plateThickness), Content: outline},

		sketch.Comment{Text: "holes"},
		sketch.Pattern{
			Spacing: geom.V3(60, 0, 0),
			Count:   5,
			Content: sketch.Circle{Center: geom.V3(-120, 60, 0), Radius: 8},
		},

		sketch.Comment{Text: "slot"},
		sketch.RelievedSlot{
			Start:        geom.V3(-80, -20, 0),
			End:          geom.V3(80, -20, 0),
			Width:        geom.V3(0, 10, 0),
			ReliefDepth:  2,
			ReliefRadius: 3,
		},

		sketch.Comment{Text: "corners"},
		corner,
		sketch.Flip{Axis: geom.UnitY, Angle: math.Pi, Content: corner},

		sketch.Comment{Text: "etch"},
		sketch.Decorate(sketch.Shapes{
			sketch.StrokeNumber{Number: 2026, TopCorner: geom.V3(60, -50, 0), Side: geom.UnitX, Down: geom.V3(0, -1, 0), Scale: 12},
			sketch.PathNumber{Number: 42, TopCorner: geom.V3(-140, -50, 0), Side: geom.UnitX, Down: geom.V3(0, -1, 0), Scale: 12},
		}).WithColor(sketch.Yellow).WithLineWidth(0.5),

		sketch.Decorate(sketch.Shapes{
			sketch.LineSection{From: geom.V3(-160, 0, 0), To: geom.V3(160, 0, 0)},
			sketch.LineSection{From: geom.V3(0, -100, 0), To: geom.V3(0, 100, 0)},
		}).WithLineStyle(sketch.Dashed(0, 6, 3)),
	}
	if cad {
		return shapes
	}

	return append(shapes,
		sketch.Comment{Text: "annotations"},
		sketch.Decorate(sketch.Shapes{
			sketch.Arrow{From: geom.V3(0, 0, 0), To: geom.V3(0, 0, 40)},
			sketch.Arrow{From: geom.V3(0, 0, 0), To: geom.V3(40, 0, 0)},
			sketch.Orbit{
				Pivot:    geom.V3(100, 20, 0),
				Point:    geom.V3(125, 20, 0),
				Rotation: geom.QuatAxisAngle(1.5*math.Pi, geom.UnitZ),
				Spokes:   true,
			},
			sketch.Point{At: geom.V3(-150, -90, 0)},
			sketch.Dot{At: geom.V3(150, 90, 0)},
		}).WithColor(sketch.Blue),
		sketch.TextString{Text: "sketch demo", At: geom.V3(-140, 100, 0), Size: 14},
	)
}

// frame outlines the canvas in drawing space, independent of the view.
func frame(width, height float64) sketch.Shape {
	return sketch.CodeBlock{Fn: func(ctx sketch.RenderContext) {
		t := ctx.Target
		t.BeginPath()
		t.MoveTo(geom.V2(1, 1))
		t.LineTo(geom.V2(width-1, 1))
		t.LineTo(geom.V2(width-1, height-1))
		t.LineTo(geom.V2(1, height-1))
		t.ClosePath()
		t.StrokePath()
	}}
}
