package camera

import (
	"sync"

	"github.com/oxyview/gnomon/common"
)

// canonicalRight is the camera-local right axis in the canonical frame
// (forward +Z, up +Y): right = forward × up = -X.
var canonicalRight = common.Vec3{X: -1}

// worldUp is the fixed yaw axis for orbit gestures.
var worldUp = common.Vec3{Y: 1}

type orbitControllerImpl struct {
	mu *sync.Mutex

	position common.Vec3
	rotation common.Quaternion
	pivot    common.Vec3

	sensitivity float32
	zoomSpeed   float32
	minDistance float32
	maxDistance float32

	// drag-start snapshot; valid only while dragging
	dragging      bool
	startPointer  common.Vec2
	startPosition common.Vec3
	startRotation common.Quaternion
	startRight    common.Vec3
}

// OrbitController is the pointer-driven camera input adapter. A drag gesture
// rotates the camera pose around the pivot: horizontal pointer movement yaws
// around the world up axis, vertical movement pitches around the camera's
// right axis captured when the drag began. Rotation and position change
// together, so the camera keeps facing the pivot throughout the gesture.
//
// Each Drag recomputes the pose from the drag-start snapshot, so the gesture
// is driven by absolute pointer positions rather than accumulated deltas.
type OrbitController interface {
	CameraController

	// Begin starts a drag gesture at the given pointer position, snapshotting
	// the current pose. Calling Begin during an active drag restarts the
	// gesture from the current pose.
	//
	// Parameters:
	//   - pointer: pointer position in normalized device coordinates
	Begin(pointer common.Vec2)

	// Drag updates the pose from the pointer's offset relative to the drag
	// start. No-op when no drag is active.
	//
	// Parameters:
	//   - pointer: pointer position in normalized device coordinates
	Drag(pointer common.Vec2)

	// End finishes the drag gesture, applying one final Drag at the given
	// pointer position. No-op when no drag is active.
	//
	// Parameters:
	//   - pointer: pointer position in normalized device coordinates
	End(pointer common.Vec2)

	// Dragging reports whether a drag gesture is active.
	//
	// Returns:
	//   - bool: true while between Begin and End
	Dragging() bool

	// Sensitivity returns the orbit sensitivity in radians per normalized
	// device unit of pointer travel.
	//
	// Returns:
	//   - float32: the sensitivity
	Sensitivity() float32
}

var _ OrbitController = &orbitControllerImpl{}

// NewOrbitController creates an orbit controller with the default pose:
// camera at (0, 0, 5) facing the origin pivot.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - OrbitController: the newly created controller
func NewOrbitController(options ...OrbitControllerOption) OrbitController {
	oc := &orbitControllerImpl{
		mu:       &sync.Mutex{},
		position: common.Vec3{Z: 5},
		// 180° yaw turns the canonical +Z forward toward the origin
		rotation: common.Quaternion{Y: 1},

		sensitivity: 1.0,
		zoomSpeed:   1.0,
		minDistance: 0.5,
		maxDistance: 50.0,
	}
	for _, option := range options {
		option(oc)
	}
	oc.rotation = oc.rotation.Normalize()
	return oc
}

func (oc *orbitControllerImpl) Position() common.Vec3 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.position
}

func (oc *orbitControllerImpl) Rotation() common.Quaternion {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.rotation
}

func (oc *orbitControllerImpl) Pivot() common.Vec3 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.pivot
}

func (oc *orbitControllerImpl) SetPosition(position common.Vec3) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.position = position
}

func (oc *orbitControllerImpl) SetRotation(rotation common.Quaternion) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.rotation = rotation.Normalize()
}

func (oc *orbitControllerImpl) SetPivot(pivot common.Vec3) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.pivot = pivot
}

func (oc *orbitControllerImpl) Begin(pointer common.Vec2) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.dragging = true
	oc.startPointer = pointer
	oc.startPosition = oc.position
	oc.startRotation = oc.rotation
	oc.startRight = oc.rotation.Rotate(canonicalRight)
}

func (oc *orbitControllerImpl) Drag(pointer common.Vec2) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.drag(pointer)
}

func (oc *orbitControllerImpl) End(pointer common.Vec2) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	if !oc.dragging {
		return
	}
	oc.drag(pointer)
	oc.dragging = false
}

func (oc *orbitControllerImpl) Dragging() bool {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.dragging
}

func (oc *orbitControllerImpl) Sensitivity() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.sensitivity
}

func (oc *orbitControllerImpl) Zoom(delta float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	if oc.dragging {
		return
	}
	offset := oc.position.Sub(oc.pivot)
	dist := offset.Length()
	if dist == 0 {
		return
	}
	newDist := dist - delta*oc.zoomSpeed
	if newDist < oc.minDistance {
		newDist = oc.minDistance
	}
	if newDist > oc.maxDistance {
		newDist = oc.maxDistance
	}
	oc.position = oc.pivot.Add(offset.Scale(newDist / dist))
}

// drag recomputes the pose from the drag-start snapshot. Caller must hold
// the mutex.
func (oc *orbitControllerImpl) drag(pointer common.Vec2) {
	if !oc.dragging {
		return
	}
	delta := pointer.Sub(oc.startPointer)

	yaw := common.FromAxisAngle(worldUp, delta.X*oc.sensitivity)
	pitch := common.FromAxisAngle(oc.startRight, delta.Y*oc.sensitivity)
	incremental := yaw.Mul(pitch)

	oc.rotation = incremental.Mul(oc.startRotation).Normalize()
	oc.position = oc.pivot.Add(incremental.Rotate(oc.startPosition.Sub(oc.pivot)))
}
