package camera

import (
	"math"
	"sync"

	"github.com/oxyview/gnomon/common"
)

// sphericalControllerImpl keeps the pose as spherical coordinates around the
// pivot and recomputes position/rotation whenever an angle or the radius
// changes. The rotation always faces the pivot.
type sphericalControllerImpl struct {
	mu *sync.Mutex

	pivot common.Vec3

	radius    float32
	azimuth   float32 // horizontal angle in the XZ plane, 0 = +X
	elevation float32 // vertical angle from the XZ plane

	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32

	orbitSpeed float32
	zoomSpeed  float32

	// derived pose
	position common.Vec3
	rotation common.Quaternion
}

// SphericalController is the absolute-angle camera input adapter: the pose is
// defined by azimuth/elevation/radius around the pivot rather than by drag
// gestures. Suited to keyboard or slider-style input.
type SphericalController interface {
	CameraController

	// OrbitLeft rotates the camera left around the pivot by one orbit speed step.
	OrbitLeft()

	// OrbitRight rotates the camera right around the pivot by one orbit speed step.
	OrbitRight()

	// OrbitUp tilts the camera upward by one orbit speed step, clamped to max elevation.
	OrbitUp()

	// OrbitDown tilts the camera downward by one orbit speed step, clamped to min elevation.
	OrbitDown()

	// Radius returns the current distance from the pivot.
	//
	// Returns:
	//   - float32: current distance from the pivot
	Radius() float32

	// SetRadius sets the distance from the pivot, clamped to min/max bounds.
	//
	// Parameters:
	//   - radius: new distance from the pivot
	SetRadius(radius float32)

	// Azimuth returns the current horizontal angle around the Y axis.
	//
	// Returns:
	//   - float32: azimuth in radians
	Azimuth() float32

	// SetAzimuth sets the horizontal angle directly and recomputes the pose.
	//
	// Parameters:
	//   - azimuth: new horizontal angle in radians
	SetAzimuth(azimuth float32)

	// Elevation returns the current vertical angle from the horizontal plane.
	//
	// Returns:
	//   - float32: elevation in radians
	Elevation() float32

	// SetElevation sets the vertical angle directly, clamped to min/max bounds.
	//
	// Parameters:
	//   - elevation: new vertical angle in radians
	SetElevation(elevation float32)

	// OrbitSpeed returns the keyboard orbit speed in radians per step.
	//
	// Returns:
	//   - float32: radians per orbit call
	OrbitSpeed() float32
}

var _ SphericalController = &sphericalControllerImpl{}

// NewSphericalController creates a spherical controller with sensible
// defaults: radius 5, slight elevation, orbiting the origin.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - SphericalController: the newly created controller
func NewSphericalController(options ...SphericalControllerOption) SphericalController {
	sc := &sphericalControllerImpl{
		mu: &sync.Mutex{},

		radius:    5.0,
		azimuth:   float32(math.Pi / 2), // start on the +Z axis
		elevation: float32(math.Pi / 6),

		minRadius:    0.5,
		maxRadius:    50.0,
		minElevation: float32(-math.Pi/2 + 0.05),
		maxElevation: float32(math.Pi/2 - 0.05),

		orbitSpeed: 0.03,
		zoomSpeed:  1.0,
	}
	for _, option := range options {
		option(sc)
	}
	sc.updatePose()
	return sc
}

// updatePose recomputes position and rotation from the spherical coordinates.
// Caller must hold the mutex.
func (sc *sphericalControllerImpl) updatePose() {
	offset := common.SphericalToCartesian(sc.azimuth, sc.elevation, sc.radius)
	sc.position = sc.pivot.Add(offset)
	sc.rotation = common.RotationBetween(CanonicalForward, offset.Scale(-1))
}

func (sc *sphericalControllerImpl) Position() common.Vec3 {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.position
}

func (sc *sphericalControllerImpl) Rotation() common.Quaternion {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.rotation
}

func (sc *sphericalControllerImpl) Pivot() common.Vec3 {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.pivot
}

// SetPosition re-derives the spherical coordinates from the given position so
// later orbit steps continue from it.
func (sc *sphericalControllerImpl) SetPosition(position common.Vec3) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	offset := position.Sub(sc.pivot)
	r := offset.Length()
	if r == 0 {
		return
	}
	sc.radius = sc.clampRadius(r)
	sc.elevation = sc.clampElevation(float32(math.Asin(float64(offset.Y / r))))
	sc.azimuth = float32(math.Atan2(float64(offset.Z), float64(offset.X)))
	sc.updatePose()
}

// SetRotation is a no-op: the spherical controller always faces the pivot.
func (sc *sphericalControllerImpl) SetRotation(rotation common.Quaternion) {}

func (sc *sphericalControllerImpl) SetPivot(pivot common.Vec3) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.pivot = pivot
	sc.updatePose()
}

func (sc *sphericalControllerImpl) Zoom(delta float32) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.radius = sc.clampRadius(sc.radius - delta*sc.zoomSpeed)
	sc.updatePose()
}

func (sc *sphericalControllerImpl) OrbitLeft() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.azimuth -= sc.orbitSpeed
	sc.updatePose()
}

func (sc *sphericalControllerImpl) OrbitRight() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.azimuth += sc.orbitSpeed
	sc.updatePose()
}

func (sc *sphericalControllerImpl) OrbitUp() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.elevation = sc.clampElevation(sc.elevation + sc.orbitSpeed)
	sc.updatePose()
}

func (sc *sphericalControllerImpl) OrbitDown() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.elevation = sc.clampElevation(sc.elevation - sc.orbitSpeed)
	sc.updatePose()
}

func (sc *sphericalControllerImpl) Radius() float32 {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.radius
}

func (sc *sphericalControllerImpl) SetRadius(radius float32) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.radius = sc.clampRadius(radius)
	sc.updatePose()
}

func (sc *sphericalControllerImpl) Azimuth() float32 {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.azimuth
}

func (sc *sphericalControllerImpl) SetAzimuth(azimuth float32) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.azimuth = azimuth
	sc.updatePose()
}

func (sc *sphericalControllerImpl) Elevation() float32 {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.elevation
}

func (sc *sphericalControllerImpl) SetElevation(elevation float32) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.elevation = sc.clampElevation(elevation)
	sc.updatePose()
}

func (sc *sphericalControllerImpl) OrbitSpeed() float32 {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.orbitSpeed
}

func (sc *sphericalControllerImpl) clampRadius(r float32) float32 {
	if r < sc.minRadius {
		return sc.minRadius
	}
	if r > sc.maxRadius {
		return sc.maxRadius
	}
	return r
}

func (sc *sphericalControllerImpl) clampElevation(e float32) float32 {
	if e < sc.minElevation {
		return sc.minElevation
	}
	if e > sc.maxElevation {
		return sc.maxElevation
	}
	return e
}
