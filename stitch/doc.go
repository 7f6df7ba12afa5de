// Package stitch welds a stream of line and arc segments into maximal
// polylines for CAD export.
//
// Segments arrive one at a time in drawing space. Each one becomes a chain
// of its own and is joined greedily to the first open chain that has an
// endpoint within the snapping threshold, reversing it when needed. A chain
// whose two ends meet is closed and takes no further part in joining.
//
//	e := stitch.New()
//	e.AddLine(geom.V2(0, 0), geom.V2(10, 0))
//	e.AddLine(geom.V2(10, 0), geom.V2(10, 10))
//	e.AddLine(geom.V2(0, 0), geom.V2(10, 10))
//	for _, c := range e.Chains() {
//	    pl := c.Polyline() // one closed triangle
//	}
//
// The engine is not safe for concurrent use.
package stitch
