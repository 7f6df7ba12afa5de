package transform

import (
	"math"

	"github.com/gogpu/sketch/geom"
)

// Default clip planes and field of view of camera transforms.
const (
	DefaultNear        = 10.0
	DefaultFar         = 200.0
	DefaultFieldOfView = 0.8 * math.Pi
)

// CameraOption configures a camera transform.
type CameraOption func(*cameraOptions)

type cameraOptions struct {
	near, far, fovY float64
}

func defaultCameraOptions() cameraOptions {
	return cameraOptions{
		near: DefaultNear,
		far:  DefaultFar,
		fovY: DefaultFieldOfView,
	}
}

// WithNear sets the near clip plane distance.
func WithNear(near float64) CameraOption {
	return func(o *cameraOptions) {
		o.near = near
	}
}

// WithFar sets the far clip plane distance.
func WithFar(far float64) CameraOption {
	return func(o *cameraOptions) {
		o.far = far
	}
}

// WithFieldOfView sets the vertical field of view in radians. Only
// perspective transforms use it.
func WithFieldOfView(fovY float64) CameraOption {
	return func(o *cameraOptions) {
		o.fovY = fovY
	}
}

// cameraTransform holds what the two camera projections share. The view and
// projection matrices are rebuilt on every call so a moving camera is always
// seen at its current pose.
type cameraTransform struct {
	camera Camera
	opts   cameraOptions
}

func newCameraTransform(camera Camera, opts []CameraOption) cameraTransform {
	o := defaultCameraOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return cameraTransform{camera: camera, opts: o}
}

func (c cameraTransform) view() geom.Mat4 {
	return geom.ViewMatrix(c.camera.Position(), c.camera.Rotation())
}

func (c cameraTransform) CameraDirection() geom.Vector3 {
	return geom.Forward(c.camera.Rotation())
}

func (c cameraTransform) IsTopDownOrthographic() bool {
	return isTopDown(c.CameraDirection())
}

// toDrawing scales normalized device coordinates to drawing space.
func toDrawing(ndc geom.Vector3, size geom.Vector2) geom.Vector2 {
	return geom.V2(ndc[0]*size[0]/2, ndc[1]*size[1]/2)
}

// unproject inverts viewProjection at the drawing space point p by taking
// the points on the near and far planes that project onto p.
func unproject(viewProjection geom.Mat4, p, size geom.Vector2) geom.Ray {
	inv := viewProjection.Inv()
	x, y := 2*p[0]/size[0], 2*p[1]/size[1]
	near := geom.TransformHomogeneous(inv, geom.V3(x, y, -1))
	far := geom.TransformHomogeneous(inv, geom.V3(x, y, 1))
	return geom.Ray{Origin: near, Direction: geom.Normalize(far.Sub(near))}
}

// CameraOrthographic is a parallel projection along the camera's viewing
// direction.
type CameraOrthographic struct {
	cameraTransform
}

var _ Transformer = CameraOrthographic{}

// NewCameraOrthographic returns an orthographic projection seen from camera.
func NewCameraOrthographic(camera Camera, opts ...CameraOption) CameraOrthographic {
	return CameraOrthographic{newCameraTransform(camera, opts)}
}

func (t CameraOrthographic) viewProjection(size geom.Vector2) geom.Mat4 {
	proj := geom.OrthographicProjection(size, t.opts.near, t.opts.far)
	return proj.Mul4(t.view())
}

// Apply projects p without perspective division.
func (t CameraOrthographic) Apply(p geom.Vector3, size geom.Vector2) geom.Vector2 {
	clip := t.viewProjection(size).Mul4x1(p.Vec4(1))
	return toDrawing(clip.Vec3(), size)
}

// Unapply returns the viewing ray through p. All rays of an orthographic
// view are parallel to CameraDirection.
func (t CameraOrthographic) Unapply(p geom.Vector2, size geom.Vector2) (geom.Ray, error) {
	return unproject(t.viewProjection(size), p, size), nil
}

// CameraPerspective is a perspective projection from the camera's position.
// Points behind the camera are not clipped and project to mirrored
// positions.
type CameraPerspective struct {
	cameraTransform
}

var _ Transformer = CameraPerspective{}

// NewCameraPerspective returns a perspective projection seen from camera.
func NewCameraPerspective(camera Camera, opts ...CameraOption) CameraPerspective {
	return CameraPerspective{newCameraTransform(camera, opts)}
}

func (t CameraPerspective) viewProjection(size geom.Vector2) geom.Mat4 {
	proj := geom.PerspectiveProjection(size, t.opts.near, t.opts.far, t.opts.fovY)
	return proj.Mul4(t.view())
}

// Apply projects p and divides by the homogeneous w.
func (t CameraPerspective) Apply(p geom.Vector3, size geom.Vector2) geom.Vector2 {
	ndc := geom.TransformHomogeneous(t.viewProjection(size), p)
	return toDrawing(ndc, size)
}

// Unapply returns the ray from the near plane through p.
func (t CameraPerspective) Unapply(p geom.Vector2, size geom.Vector2) (geom.Ray, error) {
	return unproject(t.viewProjection(size), p, size), nil
}
