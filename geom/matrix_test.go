package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewMatrixIdentityCamera(t *testing.T) {
	view := ViewMatrix(Zero3, QuatIdent())

	// The identity camera looks along +Y with +Z up.
	assertVec3(t, V3(0, 0, -5), TransformHomogeneous(view, V3(0, 5, 0)))
	assertVec3(t, V3(2, 3, -5), TransformHomogeneous(view, V3(2, 5, 3)))
}

func TestViewMatrixTranslatedCamera(t *testing.T) {
	view := ViewMatrix(V3(0, -10, 0), QuatIdent())
	assertVec3(t, V3(0, 0, -10), TransformHomogeneous(view, Zero3))
}

func TestOrthographicProjection(t *testing.T) {
	proj := OrthographicProjection(V2(200, 100), 10, 200)
	ndc := TransformHomogeneous(proj, V3(50, 25, -20))
	assert.InDelta(t, 0.5, ndc[0], tolerance)
	assert.InDelta(t, 0.5, ndc[1], tolerance)
}

func TestPerspectiveProjection(t *testing.T) {
	proj := PerspectiveProjection(V2(200, 100), 10, 200, 0.8*math.Pi)
	onAxis := TransformHomogeneous(proj, V3(0, 0, -20))
	assert.InDelta(t, 0, onAxis[0], tolerance)
	assert.InDelta(t, 0, onAxis[1], tolerance)

	near := TransformHomogeneous(proj, V3(1, 1, -20))
	far := TransformHomogeneous(proj, V3(1, 1, -40))
	assert.Greater(t, near[0], far[0], "farther points project closer to the centre")
}

func TestTranslationMatrix(t *testing.T) {
	m := TranslationMatrix(V3(1, 2, 3))
	assertVec3(t, V3(2, 3, 4), TransformHomogeneous(m, V3(1, 1, 1)))
}

func TestForwardUp(t *testing.T) {
	assertVec3(t, UnitY, Forward(QuatIdent()))
	assertVec3(t, UnitZ, Up(QuatIdent()))
	down := QuatAxisAngle(math.Pi, UnitZ)
	assertVec3(t, V3(0, -1, 0), Forward(down))
}
