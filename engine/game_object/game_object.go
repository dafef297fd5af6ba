package game_object

import (
	"sync"
	"sync/atomic"

	"github.com/oxyview/gnomon/common"
	"github.com/oxyview/gnomon/engine/camera"
	"github.com/oxyview/gnomon/engine/mesh"
	"github.com/oxyview/gnomon/engine/renderer/bind_group_provider"
)

type gameObject struct {
	mu sync.RWMutex

	id      uint64
	enabled atomic.Bool
	name    string

	msh      mesh.Mesh
	provider bind_group_provider.BindGroupProvider

	position common.Vec3
	scale    common.Vec3
	rotation common.Quaternion

	// directionDriven marks the object as oriented by the scene's per-frame
	// direction input rather than its fixed rotation.
	directionDriven bool
	// direction steers the object's orientation when set; rotation is ignored
	// while a direction is attached.
	direction camera.SphericalDirection

	spinSpeed float32
	spinAngle float32
}

// GameObject defines the interface for a scene entity carrying a Mesh and a transform.
// Orientation comes from one of two sources: a fixed rotation quaternion, or an attached
// SphericalDirection that can be steered at runtime. Objects with a non-zero spin speed
// additionally revolve about their own forward axis, advanced by Update each frame.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Enabled returns whether this object is enabled for rendering.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Name returns the object's display name, falling back to the mesh name when unset.
	//
	// Returns:
	//   - string: the object name
	Name() string

	// Mesh returns the Mesh associated with this object, or nil if not set.
	//
	// Returns:
	//   - mesh.Mesh: the associated mesh or nil
	Mesh() mesh.Mesh

	// BindGroupProvider returns the provider holding this object's per-object GPU
	// uniform resources, or nil before the object is added to a Scene.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the provider or nil
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// Position returns the object's world position.
	//
	// Returns:
	//   - common.Vec3: the position
	Position() common.Vec3

	// Scale returns the object's scale factors.
	//
	// Returns:
	//   - common.Vec3: the scale
	Scale() common.Vec3

	// Rotation returns the object's effective orientation: the attached direction's
	// orientation when one is set, otherwise the fixed rotation, with the current
	// spin applied about the object's forward axis in either case.
	//
	// Returns:
	//   - common.Quaternion: the effective orientation
	Rotation() common.Quaternion

	// Direction returns the attached SphericalDirection, or nil when the object
	// uses a fixed rotation.
	//
	// Returns:
	//   - camera.SphericalDirection: the direction or nil
	Direction() camera.SphericalDirection

	// DirectionDriven returns whether the scene should feed its per-frame
	// direction input to this object.
	//
	// Returns:
	//   - bool: true if direction-driven
	DirectionDriven() bool

	// SpinSpeed returns the spin rate about the object's forward axis in radians per second.
	//
	// Returns:
	//   - float32: the spin speed
	SpinSpeed() float32

	// Update advances the object's spin angle by the elapsed time.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last frame in seconds
	Update(deltaTime float32)

	// ModelMatrix composes the object's current model matrix from its position,
	// effective orientation, and scale.
	//
	// Parameters:
	//   - out: destination for the column-major 4x4 matrix, must have length >= 16
	ModelMatrix(out []float32)

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// SetEnabled sets whether the object is enabled for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetBindGroupProvider assigns the per-object uniform provider.
	// Called by the Scene when the object is added.
	//
	// Parameters:
	//   - provider: the provider to assign
	SetBindGroupProvider(provider bind_group_provider.BindGroupProvider)

	// SetPosition updates the object's world position.
	//
	// Parameters:
	//   - position: the new position
	SetPosition(position common.Vec3)

	// SetScale updates the object's scale factors.
	//
	// Parameters:
	//   - scale: the new scale
	SetScale(scale common.Vec3)

	// SetRotation updates the object's fixed rotation. Has no visible effect while
	// a direction is attached.
	//
	// Parameters:
	//   - rotation: the new rotation, normalized on assignment
	SetRotation(rotation common.Quaternion)

	// SetDirection attaches or detaches a steerable direction. Pass nil to fall
	// back to the fixed rotation.
	//
	// Parameters:
	//   - direction: the direction to attach, or nil
	SetDirection(direction camera.SphericalDirection)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject configured with the given options.
// Objects default to scale (1,1,1), identity rotation, and enabled.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		scale:    common.Vec3{X: 1, Y: 1, Z: 1},
		rotation: common.QuaternionIdentity(),
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.id
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Name() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.name != "" {
		return g.name
	}
	if g.msh != nil {
		return g.msh.Name()
	}
	return ""
}

func (g *gameObject) Mesh() mesh.Mesh {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.msh
}

func (g *gameObject) BindGroupProvider() bind_group_provider.BindGroupProvider {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.provider
}

func (g *gameObject) Position() common.Vec3 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.position
}

func (g *gameObject) Scale() common.Vec3 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.scale
}

func (g *gameObject) Rotation() common.Quaternion {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.effectiveRotation()
}

// effectiveRotation composes the orientation source with the accumulated spin.
// Caller must hold g.mu.
func (g *gameObject) effectiveRotation() common.Quaternion {
	base := g.rotation
	if g.direction != nil {
		base = g.direction.Orientation()
	}
	if g.spinAngle == 0 {
		return base
	}
	spin := common.FromAxisAngle(camera.CanonicalForward, g.spinAngle)
	return base.Mul(spin)
}

func (g *gameObject) Direction() camera.SphericalDirection {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.direction
}

func (g *gameObject) DirectionDriven() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.directionDriven
}

func (g *gameObject) SpinSpeed() float32 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.spinSpeed
}

func (g *gameObject) Update(deltaTime float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.spinAngle += g.spinSpeed * deltaTime
}

func (g *gameObject) ModelMatrix(out []float32) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	common.ComposeTRS(out, g.position, g.effectiveRotation(), g.scale)
}

func (g *gameObject) SetID(id uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetBindGroupProvider(provider bind_group_provider.BindGroupProvider) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.provider = provider
}

func (g *gameObject) SetPosition(position common.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.position = position
}

func (g *gameObject) SetScale(scale common.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scale = scale
}

func (g *gameObject) SetRotation(rotation common.Quaternion) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rotation = rotation.Normalize()
}

func (g *gameObject) SetDirection(direction camera.SphericalDirection) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.direction = direction
}
