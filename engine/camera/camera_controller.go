package camera

import (
	"github.com/oxyview/gnomon/common"
)

// CameraController owns the camera pose: a world-space position, an
// orientation quaternion, and the pivot point the camera moves around.
// The Camera reads the pose and derives its view matrix; input adapters
// (OrbitController, SphericalController) mutate it.
type CameraController interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - common.Vec3: world-space camera position
	Position() common.Vec3

	// Rotation returns the camera's orientation. Applying it to the canonical
	// forward axis yields the view direction.
	//
	// Returns:
	//   - common.Quaternion: the orientation quaternion (unit length)
	Rotation() common.Quaternion

	// Pivot returns the world-space point the camera orbits around.
	//
	// Returns:
	//   - common.Vec3: the pivot point
	Pivot() common.Vec3

	// SetPosition sets the camera's world-space position directly.
	//
	// Parameters:
	//   - position: world-space coordinates
	SetPosition(position common.Vec3)

	// SetRotation sets the camera's orientation directly. The quaternion is
	// normalized before storing.
	//
	// Parameters:
	//   - rotation: the orientation quaternion
	SetRotation(rotation common.Quaternion)

	// SetPivot sets the world-space orbit pivot.
	//
	// Parameters:
	//   - pivot: world-space coordinates
	SetPivot(pivot common.Vec3)

	// Zoom adjusts the camera's distance from the pivot, clamped to the
	// controller's distance bounds. Positive delta zooms in.
	//
	// Parameters:
	//   - delta: zoom amount scaled by the controller's zoom speed
	Zoom(delta float32)
}
