package geom

import "fmt"

// Axis names one of the world coordinate axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Vector returns the unit vector along a.
func (a Axis) Vector() Vector3 {
	switch a {
	case AxisX:
		return UnitX
	case AxisY:
		return UnitY
	default:
		return UnitZ
	}
}

// String returns "x", "y" or "z".
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// AxisPlane is a coordinate plane used to flatten world points by dropping
// one axis.
type AxisPlane int

const (
	PlaneXY AxisPlane = iota
	PlaneXZ
	PlaneYZ
)

// Project drops the axis that p is perpendicular to.
func (p AxisPlane) Project(v Vector3) Vector2 {
	switch p {
	case PlaneXZ:
		return Vector2{v[0], v[2]}
	case PlaneYZ:
		return Vector2{v[1], v[2]}
	default:
		return Vector2{v[0], v[1]}
	}
}

// Normal returns the axis that p drops.
func (p AxisPlane) Normal() Axis {
	switch p {
	case PlaneXZ:
		return AxisY
	case PlaneYZ:
		return AxisX
	default:
		return AxisZ
	}
}

// String returns "xy", "xz" or "yz".
func (p AxisPlane) String() string {
	switch p {
	case PlaneXY:
		return "xy"
	case PlaneXZ:
		return "xz"
	case PlaneYZ:
		return "yz"
	default:
		return fmt.Sprintf("AxisPlane(%d)", int(p))
	}
}

// ParseAxisPlane parses "xy", "xz" or "yz".
func ParseAxisPlane(s string) (AxisPlane, error) {
	switch s {
	case "xy":
		return PlaneXY, nil
	case "xz":
		return PlaneXZ, nil
	case "yz":
		return PlaneYZ, nil
	}
	return PlaneXY, fmt.Errorf("geom: unknown axis plane %q", s)
}
