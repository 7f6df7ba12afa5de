// Package transform projects world space points into 2D drawing space.
//
// A [Transformer] is a pure mapping from a 3D point and a canvas size to a
// drawing space point, plus the inverse mapping from a drawing space point
// back to a world space [geom.Ray] for hit testing. Strategies:
//
//   - [AxisAligned]: drops one world axis (plan, front and side views)
//   - [CameraOrthographic]: parallel projection along a camera's view
//   - [CameraPerspective]: perspective projection from a camera's position
//
// [Offset] and [Flip] decorate another transformer, moving or rotating the
// world point before delegating to it.
//
// Camera transforms produce drawing space coordinates with the origin at the
// centre of the canvas and +Y pointing up. Orthographic views map one world
// unit to one drawing unit.
package transform

import (
	"errors"
	"fmt"

	"github.com/gogpu/sketch/geom"
)

// ErrUnsupported is returned by Unapply on transformers that cannot invert
// their projection.
var ErrUnsupported = fmt.Errorf("transform: unapply: %w", errors.ErrUnsupported)

// Transformer maps world space to drawing space.
type Transformer interface {
	// Apply projects p onto a canvas of the given size.
	Apply(p geom.Vector3, size geom.Vector2) geom.Vector2

	// Unapply returns the world space ray whose points all project onto p.
	// Transformers that cannot invert their projection return ErrUnsupported.
	Unapply(p geom.Vector2, size geom.Vector2) (geom.Ray, error)

	// CameraDirection returns the world space viewing direction.
	CameraDirection() geom.Vector3

	// IsTopDownOrthographic reports whether the view looks straight down.
	IsTopDownOrthographic() bool
}

// Camera is a read-only camera pose supplied by the caller.
type Camera interface {
	Position() geom.Vector3
	Rotation() geom.Quat
}

// Pose is a fixed Camera.
type Pose struct {
	Pos geom.Vector3
	Rot geom.Quat
}

// Position implements Camera.
func (p Pose) Position() geom.Vector3 { return p.Pos }

// Rotation implements Camera.
func (p Pose) Rotation() geom.Quat { return p.Rot }

// LookFrom returns a pose at position looking along direction. Cameras look
// along +Y in their own frame; the rotation is the shortest one turning +Y
// onto direction.
func LookFrom(position, direction geom.Vector3) Pose {
	return Pose{Pos: position, Rot: geom.QuatBetween(geom.UnitY, direction)}
}

var topDown = geom.V3(0, -1, 0)

// isTopDown reports whether dir is exactly the straight-down direction.
func isTopDown(dir geom.Vector3) bool {
	return dir.Dot(topDown) == 1
}
