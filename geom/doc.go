// Package geom provides the vector, quaternion and matrix math used by the
// projection pipeline.
//
// Vectors, quaternions and 4x4 matrices are the double precision types of
// github.com/go-gl/mathgl/mgl64, re-exported as aliases so callers do not
// need to import mathgl directly. The helpers in this package add the
// operations a drawing engine needs on top of them: rotation about a pivot,
// signed angles, plane projection, rays, view/projection matrices and a 2D
// affine post-transform.
//
// Degenerate inputs are not trapped. Normalizing a zero-length vector yields
// NaN components, and so does every helper built on it; callers that may
// pass such vectors check with [IsNaN] or guard before calling.
package geom
