package mesh

// MeshBuilderOption is a functional option for configuring a Mesh.
type MeshBuilderOption func(*mesh)

// WithName sets the mesh identifier.
//
// Parameters:
//   - name: the mesh name
//
// Returns:
//   - MeshBuilderOption: functional option to set the name
func WithName(name string) MeshBuilderOption {
	return func(m *mesh) {
		m.name = name
	}
}

// WithPipelineKey sets the render pipeline key for this mesh.
//
// Parameters:
//   - key: the pipeline key
//
// Returns:
//   - MeshBuilderOption: functional option to set the pipeline key
func WithPipelineKey(key string) MeshBuilderOption {
	return func(m *mesh) {
		m.pipelineKey = key
	}
}

// WithVertices sets the raw vertex bytes and vertex count.
//
// Parameters:
//   - data: the vertex bytes
//   - count: the number of vertices in data
//
// Returns:
//   - MeshBuilderOption: functional option to set the vertex data
func WithVertices(data []byte, count int) MeshBuilderOption {
	return func(m *mesh) {
		m.vertexData = data
		m.vertexCount = count
	}
}

// WithIndices sets the raw index bytes and index count. Omit for non-indexed
// meshes.
//
// Parameters:
//   - data: the index bytes (uint32 little-endian)
//   - count: the number of indices in data
//
// Returns:
//   - MeshBuilderOption: functional option to set the index data
func WithIndices(data []byte, count int) MeshBuilderOption {
	return func(m *mesh) {
		m.indexData = data
		m.indexCount = count
	}
}
