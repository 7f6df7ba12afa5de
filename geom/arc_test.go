package geom

import (
	"math"
	"testing"
)

func TestArcSweep(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		ccw        bool
		want       float64
	}{
		{"ccw", 0, 1, true, 1},
		{"cw", 0, -1, false, -1},
		{"ccw wraps", 3 * math.Pi / 2, 0, true, math.Pi / 2},
		{"cw wraps", 0, math.Pi / 2, false, -3 * math.Pi / 2},
		{"full ccw", 0, 2 * math.Pi, true, 2 * math.Pi},
		{"over a turn", 0, 5 * math.Pi, true, 2 * math.Pi},
		{"empty", 1, 1, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ArcSweep(tt.start, tt.end, tt.ccw); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("ArcSweep(%v, %v, %v) = %v, want %v", tt.start, tt.end, tt.ccw, got, tt.want)
			}
		})
	}
}

func TestFlattenArc(t *testing.T) {
	c := V2(1, 2)
	pts := FlattenArc(c, 3, 0, math.Pi/2, true, math.Pi/8)
	if len(pts) != 5 {
		t.Fatalf("got %d points, want 5", len(pts))
	}
	if d := Distance2(pts[0], V2(4, 2)); d > 1e-12 {
		t.Errorf("first point = %v", pts[0])
	}
	if d := Distance2(pts[4], V2(1, 5)); d > 1e-12 {
		t.Errorf("last point = %v", pts[4])
	}
	for i, p := range pts {
		if r := Distance2(p, c); math.Abs(r-3) > 1e-12 {
			t.Errorf("point %d at radius %v", i, r)
		}
	}

	cw := FlattenArc(c, 3, 0, math.Pi/2, false, 0)
	if len(cw) != 2 {
		t.Fatalf("got %d points without a step, want 2", len(cw))
	}
	if d := Distance2(cw[1], V2(1, 5)); d > 1e-12 {
		t.Errorf("clockwise end = %v", cw[1])
	}
}
