package camera

import (
	"math"
	"sync"

	"github.com/oxyview/gnomon/common"
)

type sphericalDirectionImpl struct {
	mu    *sync.Mutex
	phi   float32
	theta float32
}

// SphericalDirection is a user-steerable direction on the unit sphere,
// expressed as azimuth (phi) and elevation (theta). It drives the orientation
// of direction-driven scene objects: the object's canonical +Z axis is
// rotated onto the direction vector. Phi wraps into [0, 2π); theta clamps to
// [-π/2, π/2].
type SphericalDirection interface {
	// Phi returns the azimuth angle in radians.
	//
	// Returns:
	//   - float32: azimuth in [0, 2π)
	Phi() float32

	// Theta returns the elevation angle in radians.
	//
	// Returns:
	//   - float32: elevation in [-π/2, π/2]
	Theta() float32

	// SetPhi sets the azimuth, wrapped into [0, 2π).
	//
	// Parameters:
	//   - phi: azimuth in radians
	SetPhi(phi float32)

	// SetTheta sets the elevation, clamped to [-π/2, π/2].
	//
	// Parameters:
	//   - theta: elevation in radians
	SetTheta(theta float32)

	// Adjust offsets both angles, applying the same wrap/clamp rules.
	//
	// Parameters:
	//   - dPhi: azimuth offset in radians
	//   - dTheta: elevation offset in radians
	Adjust(dPhi, dTheta float32)

	// Vector returns the unit direction vector for the current angles.
	//
	// Returns:
	//   - common.Vec3: the unit direction
	Vector() common.Vec3

	// Orientation returns the rotation carrying the canonical forward axis
	// onto the current direction.
	//
	// Returns:
	//   - common.Quaternion: the orientation quaternion
	Orientation() common.Quaternion
}

var _ SphericalDirection = &sphericalDirectionImpl{}

// NewSphericalDirection creates a direction with the given initial angles.
//
// Parameters:
//   - phi: azimuth in radians
//   - theta: elevation in radians
//
// Returns:
//   - SphericalDirection: the newly created direction
func NewSphericalDirection(phi, theta float32) SphericalDirection {
	d := &sphericalDirectionImpl{mu: &sync.Mutex{}}
	d.phi = wrapPhi(phi)
	d.theta = clampTheta(theta)
	return d
}

func (d *sphericalDirectionImpl) Phi() float32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.phi
}

func (d *sphericalDirectionImpl) Theta() float32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.theta
}

func (d *sphericalDirectionImpl) SetPhi(phi float32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.phi = wrapPhi(phi)
}

func (d *sphericalDirectionImpl) SetTheta(theta float32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.theta = clampTheta(theta)
}

func (d *sphericalDirectionImpl) Adjust(dPhi, dTheta float32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.phi = wrapPhi(d.phi + dPhi)
	d.theta = clampTheta(d.theta + dTheta)
}

func (d *sphericalDirectionImpl) Vector() common.Vec3 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return common.SphericalToCartesian(d.phi, d.theta, 1)
}

func (d *sphericalDirectionImpl) Orientation() common.Quaternion {
	return common.RotationBetween(CanonicalForward, d.Vector())
}

func wrapPhi(phi float32) float32 {
	twoPi := float32(2 * math.Pi)
	phi = float32(math.Mod(float64(phi), float64(twoPi)))
	if phi < 0 {
		phi += twoPi
	}
	return phi
}

func clampTheta(theta float32) float32 {
	halfPi := float32(math.Pi / 2)
	if theta < -halfPi {
		return -halfPi
	}
	if theta > halfPi {
		return halfPi
	}
	return theta
}
