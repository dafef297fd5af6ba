package scene

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oxyview/gnomon/common"
	"github.com/oxyview/gnomon/engine/camera"
	"github.com/oxyview/gnomon/engine/game_object"
	"github.com/oxyview/gnomon/engine/renderer"
	"github.com/oxyview/gnomon/engine/renderer/bind_group_provider"
	"github.com/oxyview/gnomon/engine/renderer/pipeline"
	"github.com/oxyview/gnomon/engine/renderer/shader"
)

// modelUniformSize is the byte size of the per-object model matrix uniform (mat4x4<f32>).
const modelUniformSize = 64

// cameraBinding and modelBinding are the group(0) binding indices shared by all
// object bind groups: the camera uniform at binding 0 and the model matrix at binding 1.
const (
	cameraBinding = 0
	modelBinding  = 1
)

// FrameInput is the per-frame context handed to PrepareFrame. It carries the
// elapsed time, the current pointer state used to drive the camera's orbit
// gesture, and an optional steering direction for direction-driven objects.
type FrameInput struct {
	// DeltaTime is the elapsed time since the last frame in seconds.
	DeltaTime float32

	// Pointer is the cursor position in aspect-scaled normalized device coordinates.
	Pointer common.Vec2

	// PointerDown reports whether the orbit button is currently held. Edges in
	// this flag across consecutive frames begin and end the orbit gesture.
	PointerDown bool

	// Direction, when non-nil, is attached to every direction-driven object
	// before matrices are rebuilt.
	Direction camera.SphericalDirection
}

// Scene manages a registry of GameObjects with a Camera and Renderer for rendering.
// Each object added to the scene gets its render pipeline registered, its mesh
// buffers uploaded, and a group(0) bind group created holding the shared camera
// uniform and a per-object model matrix uniform.
// Scenes can be hot-swapped via the Active flag to switch between different views.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// SetCamera replaces the scene's camera.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam camera.Camera)

	// Renderer returns the scene's renderer.
	Renderer() renderer.Renderer

	// SetRenderer replaces the scene's renderer.
	//
	// Parameters:
	//   - r: the new renderer
	SetRenderer(r renderer.Renderer)

	// Count returns the number of GameObjects in the scene's registry.
	//
	// Returns:
	//   - int: count of GameObjects in the registry
	Count() int

	// Add adds a GameObject to the scene. The object must carry a Mesh. The scene
	// registers the mesh's render pipeline (skipping keys already registered),
	// uploads the mesh's vertex and index buffers, and creates the object's
	// group(0) bind group: the shared camera uniform at binding 0 and the
	// per-object model matrix at binding 1. The camera uniform buffer is created
	// once for the first object and shared by every subsequent bind group.
	//
	// Panics if the object has no Mesh or GPU initialization fails.
	//
	// Parameters:
	//   - obj: the GameObject to add
	//   - vertexShader: the vertex shader for the object's render pipeline
	//   - fragmentShader: the fragment shader for the object's render pipeline
	//   - pipelineOpts: optional pipeline builder options (e.g. topology, blending, culling)
	//
	// Returns:
	//   - uint64: the assigned object ID
	Add(obj game_object.GameObject, vertexShader, fragmentShader shader.Shader, pipelineOpts ...pipeline.PipelineBuilderOption) uint64

	// Get retrieves a GameObject by its ID.
	// Returns nil if not found.
	//
	// Parameters:
	//   - id: the object's unique ID
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	Get(id uint64) game_object.GameObject

	// Remove removes a GameObject from the registry by ID.
	// Does not release GPU resources.
	//
	// Parameters:
	//   - id: the object's unique ID
	Remove(id uint64)

	// Clear removes all objects from the scene.
	// Does not release GPU resources.
	Clear()

	// PrepareFrame consumes the frame's input, drives the camera's orbit gesture
	// from pointer edges, steers direction-driven objects, updates camera
	// matrices, rebuilds per-object model matrices in parallel, and uploads the
	// coalesced uniform writes to the GPU. Must be called before BeginFrame on
	// the renderer each frame.
	//
	// Parameters:
	//   - in: the frame input
	PrepareFrame(in FrameInput)

	// DrawCalls issues a draw call for each enabled object in insertion order.
	// Must be called within a BeginFrame/EndFrame block on the renderer.
	//
	// Returns:
	//   - error: error if a draw call fails
	DrawCalls() error
}

// sceneEntry pairs a registered object with its per-frame matrix scratch space.
// The matrix array is written by the parallel prep phase and read as raw bytes
// during the coalesced upload, so it must stay stable across both phases.
type sceneEntry struct {
	obj    game_object.GameObject
	matrix [16]float32
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	registry map[uint64]*sceneEntry
	order    []uint64 // insertion order for deterministic draws
	nextID   uint64

	cam camera.Camera
	r   renderer.Renderer

	// cameraProvider is the bind group provider owning the shared camera uniform
	// buffer (the first object added). Camera writes target this provider.
	cameraProvider bind_group_provider.BindGroupProvider

	// pointerWasDown tracks the previous frame's pointer state so PrepareFrame
	// can detect press and release edges for the orbit gesture.
	pointerWasDown bool

	// Pre-allocated slice reused each frame to avoid per-frame allocations.
	writePool []bind_group_provider.BufferWrite

	// framePool manages a bounded set of reusable goroutines for the parallel
	// model matrix rebuild in PrepareFrame. Workers persist across frames,
	// avoiding per-frame goroutine spawn/teardown overhead.
	framePool    worker.DynamicWorkerPool
	frameWorkers int // stored so we can log/inspect the configured count
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene with the given camera and renderer. Both are
// required and NewScene panics if either is nil.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to attach (must not be nil)
//   - r: the renderer to attach (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, r renderer.Renderer, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}
	if r == nil {
		panic("scene: NewScene requires a non-nil Renderer")
	}

	s := &scene{
		mu:           &sync.RWMutex{},
		name:         name,
		active:       false,
		cam:          cam,
		r:            r,
		registry:     make(map[uint64]*sceneEntry),
		nextID:       1,
		frameWorkers: max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(s)
	}

	// Initialize the frame pool after options so WithFrameWorkers can override the default.
	// Queue size of 256 accommodates typical object counts with headroom.
	s.framePool = worker.NewDynamicWorkerPool(s.frameWorkers, 256, 1*time.Second)

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *scene) Renderer() renderer.Renderer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r
}

func (s *scene) SetRenderer(r renderer.Renderer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r = r
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) Add(obj game_object.GameObject, vertexShader, fragmentShader shader.Shader, pipelineOpts ...pipeline.PipelineBuilderOption) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	msh := obj.Mesh()
	if msh == nil {
		panic("scene: Add requires a GameObject with a Mesh")
	}

	// Register the render pipeline for the mesh's key if not already cached.
	if s.r.Pipeline(msh.PipelineKey()) == nil {
		renderOpts := append([]pipeline.PipelineBuilderOption{
			pipeline.WithVertexShader(vertexShader),
			pipeline.WithFragmentShader(fragmentShader),
		}, pipelineOpts...)
		rp := pipeline.NewPipeline(msh.PipelineKey(), renderOpts...)
		if err := s.r.RegisterPipelines(rp); err != nil {
			panic(fmt.Sprintf("scene: failed to register render pipeline %q: %v", msh.PipelineKey(), err))
		}
	}

	// Upload mesh geometry once per mesh.
	if msh.Provider() == nil {
		meshBGP := bind_group_provider.NewBindGroupProvider(msh.Name() + "_mesh")
		if err := s.r.InitMeshBuffers(meshBGP, msh.VertexData(), msh.IndexData(), msh.VertexCount(), msh.IndexCount()); err != nil {
			panic(fmt.Sprintf("scene: failed to init mesh buffers for %q: %v", msh.Name(), err))
		}
		msh.SetProvider(meshBGP)
	}

	// Create the object's group(0) bind group: shared camera uniform at binding 0,
	// per-object model matrix at binding 1. The camera buffer is created by the
	// first object's InitBindGroup and pre-set on every later provider so the
	// renderer reuses it instead of allocating a new one.
	objBGP := bind_group_provider.NewBindGroupProvider(obj.Name() + "_uniforms")
	if s.cameraProvider != nil {
		objBGP.SetBuffer(cameraBinding, s.cameraProvider.Buffer(cameraBinding))
	}
	sizeOverrides := map[int]uint64{
		cameraBinding: uint64((&camera.GPUCameraUniform{}).Size()),
		modelBinding:  modelUniformSize,
	}
	if err := s.r.InitBindGroup(objBGP, vertexShader.BindGroupLayoutDescriptor(0), nil, sizeOverrides); err != nil {
		panic(fmt.Sprintf("scene: failed to init bind group for %q: %v", obj.Name(), err))
	}
	obj.SetBindGroupProvider(objBGP)
	if s.cameraProvider == nil {
		s.cameraProvider = objBGP
	}

	if obj.ID() == 0 {
		obj.SetID(s.nextID)
		s.nextID++
	}
	s.registry[obj.ID()] = &sceneEntry{obj: obj}
	s.order = append(s.order, obj.ID())

	return obj.ID()
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if entry, exists := s.registry[id]; exists {
		return entry.obj
	}
	return nil
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.registry[id]; !exists {
		return
	}
	delete(s.registry, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.registry = make(map[uint64]*sceneEntry)
	s.order = nil
}

func (s *scene) PrepareFrame(in FrameInput) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.r == nil {
		return
	}

	// Drive the orbit gesture from pointer edges. A press begins the gesture,
	// held frames drag it, and a release ends it with one final drag.
	if s.cam != nil {
		if oc, ok := s.cam.Controller().(camera.OrbitController); ok {
			switch {
			case in.PointerDown && !s.pointerWasDown:
				oc.Begin(in.Pointer)
			case in.PointerDown:
				oc.Drag(in.Pointer)
			case s.pointerWasDown:
				oc.End(in.Pointer)
			}
		}
	}
	s.pointerWasDown = in.PointerDown

	// Steer direction-driven objects from the frame's direction input.
	if in.Direction != nil {
		for _, entry := range s.registry {
			if entry.obj.DirectionDriven() {
				entry.obj.SetDirection(in.Direction)
			}
		}
	}

	// Update camera matrices once per frame.
	if s.cam != nil {
		s.cam.Update()
	}

	// Phase 1: parallel CPU prep — submit each object's spin advance and model
	// matrix rebuild to the frame pool. Workers are reused across frames (no
	// goroutine spawn overhead). A WaitGroup provides per-frame barrier sync
	// since pool.Wait() blocks until workers idle-exit, which is unsuitable
	// for frame-rate workloads.
	var wg sync.WaitGroup
	taskID := 0
	for _, id := range s.order {
		entry := s.registry[id]
		if entry == nil || !entry.obj.Enabled() {
			continue
		}

		wg.Add(1)
		eCap := entry // capture for closure
		dt := in.DeltaTime
		s.framePool.SubmitTask(worker.Task{
			ID: taskID,
			Do: func() (any, error) {
				defer wg.Done()
				eCap.obj.Update(dt)
				eCap.obj.ModelMatrix(eCap.matrix[:])
				return nil, nil
			},
		})
		taskID++
	}
	wg.Wait()

	// Phase 2: coalesced GPU submission — the camera uniform plus every object's
	// model matrix in a single WriteBuffers call. This reduces mutex acquisitions
	// on the renderer from N to 1 for writes.
	allWrites := s.writePool[:0]
	if s.cam != nil && s.cameraProvider != nil {
		camUniform := camera.GPUCameraUniform{
			View: s.cam.ViewMatrix(),
			Proj: s.cam.ProjectionMatrix(),
		}
		allWrites = append(allWrites, bind_group_provider.BufferWrite{
			Provider: s.cameraProvider,
			Binding:  cameraBinding,
			Offset:   0,
			Data:     camUniform.Marshal(),
		})
	}
	for _, id := range s.order {
		entry := s.registry[id]
		if entry == nil || !entry.obj.Enabled() {
			continue
		}
		if entry.obj.BindGroupProvider() == nil {
			continue
		}
		allWrites = append(allWrites, bind_group_provider.BufferWrite{
			Provider: entry.obj.BindGroupProvider(),
			Binding:  modelBinding,
			Offset:   0,
			Data:     common.SliceToBytes(entry.matrix[:]),
		})
	}
	s.writePool = allWrites

	if len(allWrites) > 0 {
		s.r.WriteBuffers(allWrites)
	}
}

func (s *scene) DrawCalls() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.r == nil {
		return fmt.Errorf("scene %q has no renderer attached", s.name)
	}

	for _, id := range s.order {
		entry := s.registry[id]
		if entry == nil || !entry.obj.Enabled() {
			continue
		}

		msh := entry.obj.Mesh()
		if msh == nil || msh.Provider() == nil {
			continue
		}
		objBGP := entry.obj.BindGroupProvider()
		if objBGP == nil {
			continue
		}

		bindGroups := []bind_group_provider.BindGroupProvider{objBGP}
		if err := s.r.DrawCall(msh.PipelineKey(), msh.Provider(), 1, bindGroups); err != nil {
			return fmt.Errorf("draw call failed for object %q in scene %q: %w", entry.obj.Name(), s.name, err)
		}
	}

	return nil
}

// CameraLayoutEntries returns the group(0) bind group layout entries shared by
// every object bind group: the camera uniform at binding 0 and the model matrix
// at binding 1, both vertex-stage visible. Intended for feeding
// shader.WithBindGroupLayout when declaring vertex shaders.
//
// Returns:
//   - []wgpu.BindGroupLayoutEntry: the layout entries
func CameraLayoutEntries() []wgpu.BindGroupLayoutEntry {
	return []wgpu.BindGroupLayoutEntry{
		{
			Binding:    cameraBinding,
			Visibility: wgpu.ShaderStageVertex,
			Buffer: wgpu.BufferBindingLayout{
				Type:           wgpu.BufferBindingTypeUniform,
				MinBindingSize: uint64((&camera.GPUCameraUniform{}).Size()),
			},
		},
		{
			Binding:    modelBinding,
			Visibility: wgpu.ShaderStageVertex,
			Buffer: wgpu.BufferBindingLayout{
				Type:           wgpu.BufferBindingTypeUniform,
				MinBindingSize: modelUniformSize,
			},
		},
	}
}
