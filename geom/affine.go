package geom

import "math"

// Affine is a 2D affine transformation applied to drawing space after
// projection. It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation.
func Identity() Affine {
	return Affine{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation.
func Translate(x, y float64) Affine {
	return Affine{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling.
func Scale(x, y float64) Affine {
	return Affine{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation (angle in radians).
func Rotate(angle float64) Affine {
	sin, cos := math.Sincos(angle)
	return Affine{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Multiply returns m * other: other is applied first.
func (m Affine) Multiply(other Affine) Affine {
	return Affine{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Apply transforms a point.
func (m Affine) Apply(p Vector2) Vector2 {
	return Vector2{
		m.A*p[0] + m.B*p[1] + m.C,
		m.D*p[0] + m.E*p[1] + m.F,
	}
}

// ApplyVector transforms a direction (no translation).
func (m Affine) ApplyVector(p Vector2) Vector2 {
	return Vector2{
		m.A*p[0] + m.B*p[1],
		m.D*p[0] + m.E*p[1],
	}
}

// Determinant returns the determinant of the linear part. A negative value
// means the transformation mirrors.
func (m Affine) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// ScaleFactor returns the length of the transformed unit x vector. Radii of
// arcs drawn through m are multiplied by it.
func (m Affine) ScaleFactor() float64 {
	return math.Hypot(m.A, m.D)
}

// Invert returns the inverse transformation.
// Returns the identity if m is not invertible.
func (m Affine) Invert() Affine {
	det := m.Determinant()
	if math.Abs(det) < 1e-10 {
		return Identity()
	}

	invDet := 1.0 / det
	return Affine{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
}

// IsIdentity returns true if m is the identity.
func (m Affine) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// IsConformal reports whether m preserves angles (rotation, uniform scale,
// mirroring and translation only), so circles stay circles.
func (m Affine) IsConformal() bool {
	const eps = 1e-9
	sx := m.A*m.A + m.D*m.D
	sy := m.B*m.B + m.E*m.E
	dot := m.A*m.B + m.D*m.E
	return math.Abs(sx-sy) <= eps*math.Max(sx, 1) && math.Abs(dot) <= eps*math.Max(sx, 1)
}
