package mesh

import (
	"github.com/oxyview/gnomon/common"
	"github.com/oxyview/gnomon/engine/renderer/bind_group_provider"
)

// mesh is the implementation of the Mesh interface.
type mesh struct {
	name        string
	pipelineKey string
	provider    bind_group_provider.BindGroupProvider

	vertexData  []byte
	indexData   []byte
	vertexCount int
	indexCount  int
}

// Mesh defines the interface for a GPU-ready piece of static geometry.
// A Mesh holds raw vertex/index bytes plus the pipeline key it renders with;
// its BindGroupProvider is populated by the Scene when the owning object is
// added. Meshes without index data are drawn as non-indexed geometry
// (e.g. line lists).
type Mesh interface {
	// Name retrieves the mesh identifier.
	//
	// Returns:
	//   - string: the mesh name
	Name() string

	// PipelineKey returns the key of the render pipeline this mesh draws with.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string

	// Provider retrieves the BindGroupProvider holding GPU resources for this
	// mesh, or nil before the mesh is registered with a scene.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the provider or nil
	Provider() bind_group_provider.BindGroupProvider

	// SetProvider assigns the BindGroupProvider for this mesh.
	//
	// Parameters:
	//   - provider: the provider to assign
	SetProvider(provider bind_group_provider.BindGroupProvider)

	// VertexData returns the raw vertex bytes.
	//
	// Returns:
	//   - []byte: the vertex data
	VertexData() []byte

	// IndexData returns the raw index bytes, or nil for non-indexed meshes.
	//
	// Returns:
	//   - []byte: the index data or nil
	IndexData() []byte

	// VertexCount returns the number of vertices.
	//
	// Returns:
	//   - int: the vertex count
	VertexCount() int

	// IndexCount returns the number of indices, or 0 for non-indexed meshes.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int
}

var _ Mesh = &mesh{}

// NewMesh creates a new Mesh instance with the specified options applied.
//
// Parameters:
//   - options: a variadic list of MeshBuilderOption functions to configure the Mesh
//
// Returns:
//   - Mesh: a new instance of Mesh configured with the provided options
func NewMesh(options ...MeshBuilderOption) Mesh {
	m := &mesh{}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// NewGnomonMesh creates the coordinate-axis gnomon as a non-indexed line
// mesh bound to the given pipeline key.
//
// Parameters:
//   - pipelineKey: the line pipeline to render with
//   - size: length of each axis line
//
// Returns:
//   - Mesh: the gnomon mesh
func NewGnomonMesh(pipelineKey string, size float32) Mesh {
	vertices := Gnomon(size)
	return NewMesh(
		WithName("gnomon"),
		WithPipelineKey(pipelineKey),
		WithVertices(common.SliceToBytes(vertices), len(vertices)),
	)
}

// NewCubeMesh creates the shaded cube as an indexed triangle mesh bound to
// the given pipeline key.
//
// Parameters:
//   - pipelineKey: the mesh pipeline to render with
//   - halfExtent: half the cube's edge length
//
// Returns:
//   - Mesh: the cube mesh
func NewCubeMesh(pipelineKey string, halfExtent float32) Mesh {
	vertices, indices := Cube(halfExtent)
	return NewMesh(
		WithName("cube"),
		WithPipelineKey(pipelineKey),
		WithVertices(common.SliceToBytes(vertices), len(vertices)),
		WithIndices(common.SliceToBytes(indices), len(indices)),
	)
}

func (m *mesh) Name() string {
	return m.name
}

func (m *mesh) PipelineKey() string {
	return m.pipelineKey
}

func (m *mesh) Provider() bind_group_provider.BindGroupProvider {
	return m.provider
}

func (m *mesh) SetProvider(provider bind_group_provider.BindGroupProvider) {
	m.provider = provider
}

func (m *mesh) VertexData() []byte {
	return m.vertexData
}

func (m *mesh) IndexData() []byte {
	return m.indexData
}

func (m *mesh) VertexCount() int {
	return m.vertexCount
}

func (m *mesh) IndexCount() int {
	return m.indexCount
}
