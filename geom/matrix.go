package geom

import "github.com/go-gl/mathgl/mgl64"

// Mat4 is a column-major 4x4 matrix.
type Mat4 = mgl64.Mat4

// TranslationMatrix returns the matrix translating by v.
func TranslationMatrix(v Vector3) Mat4 {
	return mgl64.Translate3D(v[0], v[1], v[2])
}

// Forward returns the viewing direction of a camera with the given
// rotation. Cameras look along +Y in their own frame.
func Forward(rotation Quat) Vector3 {
	return rotation.Rotate(UnitY)
}

// Up returns the up direction of a camera with the given rotation.
func Up(rotation Quat) Vector3 {
	return rotation.Rotate(UnitZ)
}

// ViewMatrix returns the world-to-eye matrix of a camera at eye with the
// given rotation. Eye space follows the OpenGL convention: x right, y up,
// looking down -z.
func ViewMatrix(eye Vector3, rotation Quat) Mat4 {
	return mgl64.LookAtV(eye, eye.Add(Forward(rotation)), Up(rotation))
}

// OrthographicProjection returns a projection that maps one eye space unit
// to one drawing unit on a canvas of the given size.
func OrthographicProjection(size Vector2, near, far float64) Mat4 {
	w, h := size[0]/2, size[1]/2
	return mgl64.Ortho(-w, w, -h, h, near, far)
}

// PerspectiveProjection returns a perspective projection with vertical field
// of view fovY (radians) and the aspect ratio of size.
func PerspectiveProjection(size Vector2, near, far, fovY float64) Mat4 {
	return mgl64.Perspective(fovY, size[0]/size[1], near, far)
}

// TransformHomogeneous applies m to p with w = 1 and performs the
// perspective divide.
func TransformHomogeneous(m Mat4, p Vector3) Vector3 {
	v := m.Mul4x1(p.Vec4(1))
	return v.Vec3().Mul(1 / v[3])
}
