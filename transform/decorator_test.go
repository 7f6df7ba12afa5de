package transform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/sketch/geom"
)

func TestOffsetApply(t *testing.T) {
	tr := NewOffset(NewAxisAligned(geom.PlaneXY), geom.V3(10, -5, 99))
	assert.Equal(t, geom.V2(11, -3), tr.Apply(geom.V3(1, 2, 3), canvas))
	assert.Equal(t, geom.V3(0, 0, -1), tr.CameraDirection())
	assert.True(t, tr.IsTopDownOrthographic())
}

func TestOffsetUnapply(t *testing.T) {
	assertRoundTrip(t, NewOffset(NewCameraPerspective(frontCamera), geom.V3(3, 4, -2)))

	_, err := NewOffset(NewAxisAligned(geom.PlaneXY), geom.V3(1, 0, 0)).Unapply(geom.V2(0, 0), canvas)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestFlipApply(t *testing.T) {
	// Half a turn about the Y axis mirrors X in the plan view.
	tr := NewFlip(NewAxisAligned(geom.PlaneXY), geom.UnitY, math.Pi, geom.Zero3)
	got := tr.Apply(geom.V3(1, 2, 0), canvas)
	assert.InDelta(t, -1, got[0], 1e-9)
	assert.InDelta(t, 2, got[1], 1e-9)

	// Mirror about x = 5.
	tr = NewFlip(NewAxisAligned(geom.PlaneXY), geom.UnitY, math.Pi, geom.V3(5, 0, 0))
	got = tr.Apply(geom.V3(7, 1, 0), canvas)
	assert.InDelta(t, 3, got[0], 1e-9)
	assert.InDelta(t, 1, got[1], 1e-9)

	assert.True(t, tr.IsTopDownOrthographic())
	assert.Equal(t, geom.V3(0, 0, -1), tr.CameraDirection())
}

func TestFlipUnapply(t *testing.T) {
	tr := NewFlip(NewCameraPerspective(frontCamera), geom.V3(1, 0, 1), 0.7, geom.V3(2, 3, 4))
	assertRoundTrip(t, tr)

	_, err := NewFlip(NewAxisAligned(geom.PlaneXZ), geom.UnitZ, 1, geom.Zero3).Unapply(geom.V2(0, 0), canvas)
	require.Error(t, err)
}

func TestNestedDecorators(t *testing.T) {
	base := NewAxisAligned(geom.PlaneXY)
	tr := NewOffset(NewOffset(base, geom.V3(1, 0, 0)), geom.V3(0, 2, 0))
	assert.Equal(t, geom.V2(1, 2), tr.Apply(geom.Zero3, canvas))
}
