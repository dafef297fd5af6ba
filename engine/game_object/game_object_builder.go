package game_object

import (
	"github.com/oxyview/gnomon/common"
	"github.com/oxyview/gnomon/engine/camera"
	"github.com/oxyview/gnomon/engine/mesh"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithObjectName sets the object's display name.
//
// Parameters:
//   - name: the display name
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithObjectName(name string) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.name = name
	}
}

// WithMesh assigns the Mesh this object renders with.
//
// Parameters:
//   - m: the mesh to assign
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithMesh(m mesh.Mesh) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.msh = m
	}
}

// WithPosition sets the object's initial world position.
//
// Parameters:
//   - position: the initial position
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithPosition(position common.Vec3) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.position = position
	}
}

// WithScale sets the object's initial scale factors.
//
// Parameters:
//   - scale: the initial scale
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithScale(scale common.Vec3) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.scale = scale
	}
}

// WithRotation sets a fixed orientation for the object. An attached direction
// takes precedence over the fixed rotation.
//
// Parameters:
//   - rotation: the fixed rotation, normalized on assignment
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithRotation(rotation common.Quaternion) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.rotation = rotation.Normalize()
	}
}

// WithDirectionDriven marks the object as oriented by the scene's per-frame
// direction input. Each PrepareFrame the scene attaches its FrameInput
// Direction to the object, which then re-orients to follow it. An optional
// initial direction can be supplied for the frames before the first input.
//
// Parameters:
//   - initial: the initial direction, or nil
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithDirectionDriven(initial camera.SphericalDirection) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.directionDriven = true
		g.direction = initial
	}
}

// WithSpinSpeed sets the spin rate about the object's forward axis in radians
// per second. Zero disables spinning.
//
// Parameters:
//   - speed: the spin speed
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithSpinSpeed(speed float32) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.spinSpeed = speed
	}
}
