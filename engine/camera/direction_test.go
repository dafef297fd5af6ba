package camera

import (
	"math"
	"testing"

	"github.com/oxyview/gnomon/common"
	"github.com/stretchr/testify/assert"
)

func TestSphericalDirectionVector(t *testing.T) {
	d := NewSphericalDirection(0, 0)
	vecNear(t, common.Vec3{X: 1}, d.Vector(), 1e-6)

	d.SetPhi(float32(math.Pi / 2))
	vecNear(t, common.Vec3{Z: 1}, d.Vector(), 1e-6)

	d.SetTheta(float32(math.Pi / 2))
	vecNear(t, common.Vec3{Y: 1}, d.Vector(), 1e-6)
}

func TestSphericalDirectionPhiWraps(t *testing.T) {
	d := NewSphericalDirection(0, 0)
	d.SetPhi(float32(2*math.Pi) + 0.5)
	assert.InDelta(t, 0.5, float64(d.Phi()), 1e-5)

	d.Adjust(-1.0, 0)
	assert.InDelta(t, 2*math.Pi-0.5, float64(d.Phi()), 1e-5)
}

func TestSphericalDirectionThetaClamps(t *testing.T) {
	d := NewSphericalDirection(0, 10)
	assert.Equal(t, float32(math.Pi/2), d.Theta())

	d.Adjust(0, -100)
	assert.Equal(t, float32(-math.Pi/2), d.Theta())
}

func TestSphericalDirectionOrientation(t *testing.T) {
	d := NewSphericalDirection(1.1, -0.3)
	got := d.Orientation().Rotate(CanonicalForward)
	vecNear(t, d.Vector(), got, 1e-5)
}
