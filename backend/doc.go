// Package backend turns a RenderTarget into an export session with a
// lifecycle and an output.
//
// A Backend is a sketch.RenderTarget that is started with Begin and
// finished with End. After End, backends that produce a document or an
// image implement WriterBackend, FileBackend or both.
//
// # Backend Registration
//
// Concrete backends register themselves by name from init(), following the
// database/sql driver pattern. Importing a backend package for its side
// effect makes it available:
//
//	import _ "github.com/gogpu/sketch/backend/svg"
//
//	b, err := backend.NewBackend("svg")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := backend.Export(b, 400, 300, transform.NewAxisAligned(geom.PlaneXY), scene); err != nil {
//		log.Fatal(err)
//	}
//	if err := backend.Save(b, "scene.svg"); err != nil {
//		log.Fatal(err)
//	}
//
// The registered names are "raster", "svg", "dxf" and "dxf-stitched".
package backend
