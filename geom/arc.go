package geom

import "math"

// ArcSweep returns the signed angle from startAngle to endAngle going
// counter-clockwise (positive) or clockwise (negative), at most one turn.
func ArcSweep(startAngle, endAngle float64, counterClockwise bool) float64 {
	d := endAngle - startAngle
	if counterClockwise {
		if d < 0 {
			d = math.Mod(d, 2*math.Pi) + 2*math.Pi
		}
		return math.Min(d, 2*math.Pi)
	}
	if d > 0 {
		d = math.Mod(d, 2*math.Pi) - 2*math.Pi
	}
	return math.Max(d, -2*math.Pi)
}

// FlattenArc samples a circular arc so that consecutive points are at most
// maxStep radians apart. The result starts at startAngle and ends at the
// end of the sweep; it always holds at least two points.
func FlattenArc(center Vector2, radius, startAngle, endAngle float64, counterClockwise bool, maxStep float64) []Vector2 {
	sweep := ArcSweep(startAngle, endAngle, counterClockwise)
	n := 1
	if maxStep > 0 {
		n = max(1, int(math.Ceil(math.Abs(sweep)/maxStep)))
	}
	pts := make([]Vector2, n+1)
	for i := range pts {
		pts[i] = Polar(center, radius, startAngle+sweep*float64(i)/float64(n))
	}
	return pts
}
