package camera

import (
	"math"
	"testing"

	"github.com/oxyview/gnomon/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// transformPoint applies a column-major 4x4 matrix to a point (w=1).
func transformPoint(m [16]float32, x, y, z float32) (float32, float32, float32, float32) {
	return m[0]*x + m[4]*y + m[8]*z + m[12],
		m[1]*x + m[5]*y + m[9]*z + m[13],
		m[2]*x + m[6]*y + m[10]*z + m[14],
		m[3]*x + m[7]*y + m[11]*z + m[15]
}

func newTestCamera(t *testing.T) (Camera, OrbitController) {
	t.Helper()
	ctrl := NewOrbitController()
	cam := NewCamera(
		WithController(ctrl),
		WithAspect(16.0/9.0),
		WithFov(float32(45.0*math.Pi/180.0)),
		WithNear(0.1),
		WithFar(100),
	)
	return cam, ctrl
}

func TestCameraDefaultPoseViewMatrix(t *testing.T) {
	cam, _ := newTestCamera(t)

	// default orbit pose: eye (0,0,5) facing the origin
	v := cam.ViewMatrix()
	x, y, z, w := transformPoint(v, 0, 0, 0)
	assert.InDelta(t, 0.0, float64(x), 1e-5)
	assert.InDelta(t, 0.0, float64(y), 1e-5)
	assert.InDelta(t, -5.0, float64(z), 1e-5)
	assert.InDelta(t, 1.0, float64(w), 1e-5)
}

func TestCameraProjectionNonSingular(t *testing.T) {
	cam, _ := newTestCamera(t)

	p := cam.ProjectionMatrix()
	inv := cam.InverseProjectionMatrix()

	var roundTrip [16]float32
	common.Mul4(roundTrip[:], p[:], inv[:])
	var id [16]float32
	common.Identity(id[:])
	for i := range id {
		assert.InDelta(t, float64(id[i]), float64(roundTrip[i]), 1e-4)
	}
}

func TestCameraViewProjectionComposition(t *testing.T) {
	cam, _ := newTestCamera(t)

	v := cam.ViewMatrix()
	p := cam.ProjectionMatrix()
	var want [16]float32
	common.Mul4(want[:], p[:], v[:])

	got := cam.ViewProjectionMatrix()
	for i := range want {
		assert.InDelta(t, float64(want[i]), float64(got[i]), 1e-6)
	}
}

func TestCameraUpdateTracksController(t *testing.T) {
	cam, ctrl := newTestCamera(t)
	before := cam.ViewMatrix()

	ctrl.Begin(common.Vec2{})
	ctrl.End(common.Vec2{X: 0.5})
	cam.Update()

	after := cam.ViewMatrix()
	assert.NotEqual(t, before, after)

	// the pivot stays on the view axis at the same depth through an orbit
	_, _, z, _ := transformPoint(after, 0, 0, 0)
	assert.InDelta(t, -5.0, float64(z), 1e-4)
}

func TestCameraAspectChangeRecomputesProjection(t *testing.T) {
	cam, _ := newTestCamera(t)
	before := cam.ProjectionMatrix()
	cam.SetAspect(4.0 / 3.0)
	after := cam.ProjectionMatrix()
	assert.NotEqual(t, before[0], after[0])
	assert.Equal(t, before[5], after[5], "vertical scale is aspect-independent")
}

func TestNewCameraValidation(t *testing.T) {
	require.Panics(t, func() { NewCamera(WithNear(-1)) })
	require.Panics(t, func() { NewCamera(WithNear(10), WithFar(5)) })
	require.Panics(t, func() { NewCamera(WithAspect(0)) })
	require.Panics(t, func() { NewCamera(WithFov(0)) })
	require.Panics(t, func() { NewCamera(WithFov(float32(math.Pi))) })
}

func TestCameraWithoutController(t *testing.T) {
	cam := NewCamera()
	var id [16]float32
	common.Identity(id[:])
	assert.Equal(t, id, [16]float32(cam.ViewMatrix()))
	cam.Update() // no controller attached; must not panic
}

func TestGPUCameraUniformLayout(t *testing.T) {
	u := GPUCameraUniform{}
	u.View[0] = 1.5
	u.Proj[0] = 2.5
	require.Equal(t, 128, u.Size())

	buf := u.Marshal()
	require.Len(t, buf, 128)
	assert.Equal(t, math.Float32bits(1.5), uint32(buf[0])|uint32(buf[1])<<8|uint32(buf[2])<<16|uint32(buf[3])<<24)
	assert.Equal(t, math.Float32bits(2.5), uint32(buf[64])|uint32(buf[65])<<8|uint32(buf[66])<<16|uint32(buf[67])<<24)
}
