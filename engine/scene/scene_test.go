package scene

import (
	"sync"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxyview/gnomon/common"
	"github.com/oxyview/gnomon/engine/camera"
	"github.com/oxyview/gnomon/engine/game_object"
	"github.com/oxyview/gnomon/engine/mesh"
	"github.com/oxyview/gnomon/engine/renderer"
	"github.com/oxyview/gnomon/engine/renderer/bind_group_provider"
	"github.com/oxyview/gnomon/engine/renderer/pipeline"
	"github.com/oxyview/gnomon/engine/renderer/shader"
)

const testWGSL = `
@vertex fn vs_main() -> @builtin(position) vec4<f32> { return vec4<f32>(0.0); }
@fragment fn fs_main() -> @location(0) vec4<f32> { return vec4<f32>(1.0); }
`

// stubRenderer records GPU interactions without touching a device.
type stubRenderer struct {
	mu        sync.Mutex
	pipelines map[string]pipeline.Pipeline
	meshInits int
	bindInits int
	writes    [][]bind_group_provider.BufferWrite
	draws     []string
}

var _ renderer.Renderer = &stubRenderer{}

func newStubRenderer() *stubRenderer {
	return &stubRenderer{pipelines: make(map[string]pipeline.Pipeline)}
}

func (s *stubRenderer) Pipeline(key string) pipeline.Pipeline {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pipelines[key]
}

func (s *stubRenderer) Pipelines() map[string]pipeline.Pipeline {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make(map[string]pipeline.Pipeline, len(s.pipelines))
	for k, v := range s.pipelines {
		cp[k] = v
	}
	return cp
}

func (s *stubRenderer) RegisterPipelines(pipelines ...pipeline.Pipeline) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range pipelines {
		s.pipelines[p.PipelineKey()] = p
	}
	return nil
}

func (s *stubRenderer) SetPipeline(key string, p pipeline.Pipeline) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pipelines[key] = p
}

func (s *stubRenderer) SetPipelines(pipelines map[string]pipeline.Pipeline) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pipelines = pipelines
}

func (s *stubRenderer) Resize(width, height int) {}

func (s *stubRenderer) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, vertexCount, indexCount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meshInits++
	provider.SetVertexCount(vertexCount)
	provider.SetIndexCount(indexCount)
	return nil
}

func (s *stubRenderer) InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, bufferUsageOverrides map[int]wgpu.BufferUsage, bufferSizeOverrides map[int]uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bindInits++
	return nil
}

func (s *stubRenderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]bind_group_provider.BufferWrite, len(writes))
	copy(cp, writes)
	s.writes = append(s.writes, cp)
}

func (s *stubRenderer) BeginFrame() error { return nil }

func (s *stubRenderer) DrawCall(pipelineKey string, meshProvider bind_group_provider.BindGroupProvider, instanceCount uint32, bindGroups []bind_group_provider.BindGroupProvider) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draws = append(s.draws, pipelineKey)
	return nil
}

func (s *stubRenderer) EndFrame() {}

func (s *stubRenderer) Present() {}

func (s *stubRenderer) SetPresentMode(mode renderer.PresentMode) {}

func testCamera() camera.Camera {
	return camera.NewCamera(
		camera.WithAspect(16.0/9.0),
		camera.WithController(camera.NewOrbitController()),
	)
}

func testShaders() (shader.Shader, shader.Shader) {
	vs := shader.NewShader("test_vert", shader.ShaderTypeVertex,
		shader.WithSource(testWGSL),
		shader.WithBindGroupLayout(0, "camera_model", CameraLayoutEntries()),
	)
	fs := shader.NewShader("test_frag", shader.ShaderTypeFragment,
		shader.WithSource(testWGSL),
	)
	return vs, fs
}

func TestNewSceneRequiresCameraAndRenderer(t *testing.T) {
	assert.Panics(t, func() { NewScene("s", nil, newStubRenderer()) })
	assert.Panics(t, func() { NewScene("s", testCamera(), nil) })
}

func TestSceneAddAssignsIDsAndRegistersPipelineOnce(t *testing.T) {
	r := newStubRenderer()
	sc := NewScene("s", testCamera(), r)
	vs, fs := testShaders()

	a := game_object.NewGameObject(game_object.WithMesh(mesh.NewCubeMesh("cube", 0.5)))
	b := game_object.NewGameObject(game_object.WithMesh(mesh.NewCubeMesh("cube", 0.5)))

	idA := sc.Add(a, vs, fs)
	idB := sc.Add(b, vs, fs)

	assert.Equal(t, uint64(1), idA)
	assert.Equal(t, uint64(2), idB)
	assert.Equal(t, 2, sc.Count())
	assert.Equal(t, a, sc.Get(idA))
	assert.Equal(t, b, sc.Get(idB))

	// Shared pipeline key registers once, mesh buffers and bind groups per object.
	assert.Len(t, r.pipelines, 1)
	assert.Equal(t, 2, r.meshInits)
	assert.Equal(t, 2, r.bindInits)
	assert.NotNil(t, a.BindGroupProvider())
	assert.NotNil(t, b.BindGroupProvider())
}

func TestSceneAddPanicsWithoutMesh(t *testing.T) {
	sc := NewScene("s", testCamera(), newStubRenderer())
	vs, fs := testShaders()
	assert.Panics(t, func() { sc.Add(game_object.NewGameObject(), vs, fs) })
}

func TestSceneRemoveAndClear(t *testing.T) {
	sc := NewScene("s", testCamera(), newStubRenderer())
	vs, fs := testShaders()

	id := sc.Add(game_object.NewGameObject(game_object.WithMesh(mesh.NewCubeMesh("cube", 0.5))), vs, fs)
	sc.Add(game_object.NewGameObject(game_object.WithMesh(mesh.NewCubeMesh("cube", 0.5))), vs, fs)

	sc.Remove(id)
	assert.Equal(t, 1, sc.Count())
	assert.Nil(t, sc.Get(id))

	sc.Clear()
	assert.Equal(t, 0, sc.Count())
}

func TestScenePrepareFrameDrivesOrbitGesture(t *testing.T) {
	cam := testCamera()
	sc := NewScene("s", cam, newStubRenderer())
	oc := cam.Controller().(camera.OrbitController)

	// Press edge begins the gesture.
	sc.PrepareFrame(FrameInput{DeltaTime: 0.016, Pointer: common.Vec2{}, PointerDown: true})
	assert.True(t, oc.Dragging())

	// Held pointer drags.
	sc.PrepareFrame(FrameInput{DeltaTime: 0.016, Pointer: common.Vec2{X: 0.2}, PointerDown: true})
	assert.True(t, oc.Dragging())

	// Release edge ends it.
	sc.PrepareFrame(FrameInput{DeltaTime: 0.016, Pointer: common.Vec2{X: 0.2}, PointerDown: false})
	assert.False(t, oc.Dragging())
}

func TestScenePrepareFrameSteersDirectionDrivenObjects(t *testing.T) {
	r := newStubRenderer()
	sc := NewScene("s", testCamera(), r)
	vs, fs := testShaders()

	driven := game_object.NewGameObject(
		game_object.WithMesh(mesh.NewCubeMesh("cube", 0.5)),
		game_object.WithDirectionDriven(nil),
	)
	fixed := game_object.NewGameObject(game_object.WithMesh(mesh.NewCubeMesh("cube", 0.5)))
	sc.Add(driven, vs, fs)
	sc.Add(fixed, vs, fs)

	dir := camera.NewSphericalDirection(0, 0)
	sc.PrepareFrame(FrameInput{DeltaTime: 0.016, Direction: dir})

	assert.Equal(t, dir, driven.Direction())
	assert.Nil(t, fixed.Direction())
}

func TestScenePrepareFrameUploadsUniforms(t *testing.T) {
	r := newStubRenderer()
	sc := NewScene("s", testCamera(), r)
	vs, fs := testShaders()

	enabled := game_object.NewGameObject(game_object.WithMesh(mesh.NewCubeMesh("cube", 0.5)))
	disabled := game_object.NewGameObject(game_object.WithMesh(mesh.NewCubeMesh("cube", 0.5)))
	disabled.SetEnabled(false)
	sc.Add(enabled, vs, fs)
	sc.Add(disabled, vs, fs)

	sc.PrepareFrame(FrameInput{DeltaTime: 0.016})

	require.Len(t, r.writes, 1)
	writes := r.writes[0]
	// One camera write plus one model write for the enabled object.
	require.Len(t, writes, 2)
	assert.Equal(t, cameraBinding, writes[0].Binding)
	assert.Len(t, writes[0].Data, (&camera.GPUCameraUniform{}).Size())
	assert.Equal(t, modelBinding, writes[1].Binding)
	assert.Len(t, writes[1].Data, modelUniformSize)
	assert.Equal(t, enabled.BindGroupProvider(), writes[1].Provider)
}

func TestSceneDrawCallsSkipDisabled(t *testing.T) {
	r := newStubRenderer()
	sc := NewScene("s", testCamera(), r)
	vs, fs := testShaders()

	sc.Add(game_object.NewGameObject(game_object.WithMesh(mesh.NewGnomonMesh("gnomon", 1))), vs, fs)
	cube := game_object.NewGameObject(game_object.WithMesh(mesh.NewCubeMesh("cube", 0.5)))
	sc.Add(cube, vs, fs)
	off := game_object.NewGameObject(game_object.WithMesh(mesh.NewCubeMesh("cube", 0.5)))
	off.SetEnabled(false)
	sc.Add(off, vs, fs)

	require.NoError(t, sc.DrawCalls())

	// Insertion order, disabled object skipped.
	assert.Equal(t, []string{"gnomon", "cube"}, r.draws)
}

func TestSceneActiveFlag(t *testing.T) {
	sc := NewScene("s", testCamera(), newStubRenderer(), WithActive(true))
	assert.True(t, sc.Active())
	sc.SetActive(false)
	assert.False(t, sc.Active())
}
