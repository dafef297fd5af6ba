package camera

import (
	"github.com/oxyview/gnomon/common"
)

// OrbitControllerOption is a functional option for configuring an OrbitController.
type OrbitControllerOption func(*orbitControllerImpl)

// WithPose sets the initial camera position and orientation.
//
// Parameters:
//   - position: world-space camera position
//   - rotation: orientation quaternion (normalized after all options apply)
//
// Returns:
//   - OrbitControllerOption: functional option to set the pose
func WithPose(position common.Vec3, rotation common.Quaternion) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.position = position
		oc.rotation = rotation
	}
}

// WithPivot sets the world-space orbit pivot.
//
// Parameters:
//   - pivot: the pivot point
//
// Returns:
//   - OrbitControllerOption: functional option to set the pivot
func WithPivot(pivot common.Vec3) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.pivot = pivot
	}
}

// WithSensitivity sets the orbit sensitivity in radians per normalized device
// unit of pointer travel.
//
// Parameters:
//   - sensitivity: the sensitivity multiplier
//
// Returns:
//   - OrbitControllerOption: functional option to set the sensitivity
func WithSensitivity(sensitivity float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.sensitivity = sensitivity
	}
}

// WithOrbitZoomSpeed sets the zoom speed multiplier.
//
// Parameters:
//   - speed: multiplier for zoom input
//
// Returns:
//   - OrbitControllerOption: functional option to set zoom speed
func WithOrbitZoomSpeed(speed float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.zoomSpeed = speed
	}
}

// WithDistanceBounds sets the minimum and maximum camera distance from the
// pivot for zooming.
//
// Parameters:
//   - min: minimum zoom distance
//   - max: maximum zoom distance
//
// Returns:
//   - OrbitControllerOption: functional option to set distance bounds
func WithDistanceBounds(min, max float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.minDistance = min
		oc.maxDistance = max
	}
}
