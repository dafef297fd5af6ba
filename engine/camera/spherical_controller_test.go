package camera

import (
	"math"
	"testing"

	"github.com/oxyview/gnomon/common"
	"github.com/stretchr/testify/assert"
)

func TestSphericalPositionFromAngles(t *testing.T) {
	sc := NewSphericalController(
		WithRadius(5),
		WithAzimuth(float32(math.Pi/2)),
		WithElevation(0),
	)
	// azimuth pi/2 at zero elevation sits on the +Z axis
	vecNear(t, common.Vec3{Z: 5}, sc.Position(), 1e-5)
}

func TestSphericalFacesPivot(t *testing.T) {
	pivot := common.Vec3{X: 1, Y: -2, Z: 3}
	sc := NewSphericalController(
		WithSphericalPivot(pivot),
		WithRadius(4),
		WithAzimuth(1.2),
		WithElevation(0.4),
	)

	forward := sc.Rotation().Rotate(CanonicalForward)
	wantForward := pivot.Sub(sc.Position()).Normalize()
	vecNear(t, wantForward, forward, 1e-5)
}

func TestSphericalOrbitStepsAdjustAngles(t *testing.T) {
	sc := NewSphericalController(WithOrbitSpeed(0.1), WithElevation(0))
	az := sc.Azimuth()

	sc.OrbitRight()
	assert.InDelta(t, float64(az+0.1), float64(sc.Azimuth()), 1e-6)
	sc.OrbitLeft()
	sc.OrbitLeft()
	assert.InDelta(t, float64(az-0.1), float64(sc.Azimuth()), 1e-6)

	sc.OrbitUp()
	assert.InDelta(t, 0.1, float64(sc.Elevation()), 1e-6)
}

func TestSphericalElevationClamped(t *testing.T) {
	sc := NewSphericalController(WithElevationBounds(-1, 1))
	sc.SetElevation(5)
	assert.Equal(t, float32(1), sc.Elevation())
	sc.SetElevation(-5)
	assert.Equal(t, float32(-1), sc.Elevation())
}

func TestSphericalZoomClampsRadius(t *testing.T) {
	sc := NewSphericalController(WithRadiusBounds(2, 8), WithRadius(5), WithZoomSpeed(1))
	sc.Zoom(10)
	assert.Equal(t, float32(2), sc.Radius())
	sc.Zoom(-20)
	assert.Equal(t, float32(8), sc.Radius())
	assert.InDelta(t, 8.0, float64(sc.Position().Sub(sc.Pivot()).Length()), 1e-4)
}

func TestSphericalSetPositionRoundTrips(t *testing.T) {
	sc := NewSphericalController()
	want := common.Vec3{X: 3, Y: 1, Z: -2}
	sc.SetPosition(want)
	vecNear(t, want, sc.Position(), 1e-4)
}

func TestSphericalPivotMovesPosition(t *testing.T) {
	sc := NewSphericalController(WithRadius(5), WithAzimuth(0), WithElevation(0))
	base := sc.Position()
	sc.SetPivot(common.Vec3{X: 10})
	vecNear(t, base.Add(common.Vec3{X: 10}), sc.Position(), 1e-5)
}
