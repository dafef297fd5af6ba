package camera

import (
	"github.com/oxyview/gnomon/common"
)

// SphericalControllerOption is a functional option for configuring a SphericalController.
type SphericalControllerOption func(*sphericalControllerImpl)

// WithRadius sets the initial distance from the pivot.
//
// Parameters:
//   - radius: distance from the pivot
//
// Returns:
//   - SphericalControllerOption: functional option to set the radius
func WithRadius(radius float32) SphericalControllerOption {
	return func(sc *sphericalControllerImpl) {
		sc.radius = radius
	}
}

// WithAzimuth sets the initial horizontal angle around the Y axis.
//
// Parameters:
//   - azimuth: horizontal angle in radians (0 = +X axis, pi/2 = +Z axis)
//
// Returns:
//   - SphericalControllerOption: functional option to set the azimuth
func WithAzimuth(azimuth float32) SphericalControllerOption {
	return func(sc *sphericalControllerImpl) {
		sc.azimuth = azimuth
	}
}

// WithElevation sets the initial vertical angle from the horizontal plane.
//
// Parameters:
//   - elevation: vertical angle in radians (0 = horizontal)
//
// Returns:
//   - SphericalControllerOption: functional option to set the elevation
func WithElevation(elevation float32) SphericalControllerOption {
	return func(sc *sphericalControllerImpl) {
		sc.elevation = elevation
	}
}

// WithSphericalPivot sets the orbit pivot point.
//
// Parameters:
//   - pivot: world-space pivot coordinates
//
// Returns:
//   - SphericalControllerOption: functional option to set the pivot
func WithSphericalPivot(pivot common.Vec3) SphericalControllerOption {
	return func(sc *sphericalControllerImpl) {
		sc.pivot = pivot
	}
}

// WithRadiusBounds sets the minimum and maximum orbit radius.
//
// Parameters:
//   - min: minimum zoom distance
//   - max: maximum zoom distance
//
// Returns:
//   - SphericalControllerOption: functional option to set radius bounds
func WithRadiusBounds(min, max float32) SphericalControllerOption {
	return func(sc *sphericalControllerImpl) {
		sc.minRadius = min
		sc.maxRadius = max
	}
}

// WithElevationBounds sets the minimum and maximum elevation angles.
//
// Parameters:
//   - min: minimum vertical angle in radians
//   - max: maximum vertical angle in radians (prevents flipping over the pole)
//
// Returns:
//   - SphericalControllerOption: functional option to set elevation bounds
func WithElevationBounds(min, max float32) SphericalControllerOption {
	return func(sc *sphericalControllerImpl) {
		sc.minElevation = min
		sc.maxElevation = max
	}
}

// WithOrbitSpeed sets the keyboard orbit speed.
//
// Parameters:
//   - speed: radians per orbit call
//
// Returns:
//   - SphericalControllerOption: functional option to set orbit speed
func WithOrbitSpeed(speed float32) SphericalControllerOption {
	return func(sc *sphericalControllerImpl) {
		sc.orbitSpeed = speed
	}
}

// WithZoomSpeed sets the zoom speed multiplier.
//
// Parameters:
//   - speed: multiplier for zoom input
//
// Returns:
//   - SphericalControllerOption: functional option to set zoom speed
func WithZoomSpeed(speed float32) SphericalControllerOption {
	return func(sc *sphericalControllerImpl) {
		sc.zoomSpeed = speed
	}
}
