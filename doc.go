// Package sketch is a declarative vector drawing engine.
//
// # Overview
//
// Callers describe a scene as a tree of shapes in 3D world coordinates.
// Rendering walks the tree, projects every point through a
// [transform.Transformer] and an optional 2D post-transform, and sends the
// resulting drawing commands to a [RenderTarget]. Targets either draw
// immediately (raster) or buffer the commands and serialize them (SVG, DXF
// scripts). Backends live under the backend/ directory.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/sketch"
//	    "github.com/gogpu/sketch/backend"
//	    _ "github.com/gogpu/sketch/backend/svg"
//	    "github.com/gogpu/sketch/geom"
//	    "github.com/gogpu/sketch/transform"
//	)
//
//	scene := sketch.Shapes{
//	    sketch.Circle{Center: geom.V3(0, 0, 0), Radius: 50},
//	    sketch.Decorate(sketch.LineSection{From: geom.V3(-60, 0, 0), To: geom.V3(60, 0, 0)}).
//	        WithColor(sketch.Red).
//	        WithLineStyle(sketch.Dashed(0, 4, 2)),
//	}
//
//	b := backend.MustBackend("svg")
//	_ = backend.Export(b, 400, 400, transform.NewAxisAligned(geom.PlaneXY), scene)
//
// # Shapes and path parts
//
// A [Shape] draws itself given a [RenderContext]. A [PathPart] contributes
// segments to the path currently being built. Many shapes are both:
// [LineSection] strokes a line on its own but only adds a move and a line
// when it appears inside a [Path].
//
// Shapes keep only their parameters and recompute their geometry on every
// draw. A [Builder] defers building children until draw time, so state the
// closure captures may change between frames.
//
// # Styles
//
// [Decoration] scopes a color, line width or line style over its content. It
// sends only the settings that differ from the inherited context to the
// target and undoes exactly those settings when the content is drawn.
//
// # Coordinate System
//
// World space is right handed. Drawing space has +Y up; backends whose
// native space points down (SVG) negate Y themselves. Angles are in radians,
// 0 along +X, increasing counter-clockwise.
package sketch
