package shader

import "github.com/cogentcore/webgpu/wgpu"

// ShaderBuilderOption is a functional option used to configure a Shader during construction.
type ShaderBuilderOption func(*shader)

// WithSource sets the WGSL source code for this shader. Typically fed from a go:embed
// string so shader assets ship inside the binary.
//
// Parameters:
//   - source: the WGSL source code
//
// Returns:
//   - ShaderBuilderOption: a function that sets the source for this shader
func WithSource(source string) ShaderBuilderOption {
	return func(s *shader) {
		s.source = source
	}
}

// WithEntryPoint overrides the default entry point name ("vs_main" for vertex shaders,
// "fs_main" for fragment shaders).
//
// Parameters:
//   - entryPoint: the entry point function name in the WGSL source
//
// Returns:
//   - ShaderBuilderOption: a function that sets the entry point for this shader
func WithEntryPoint(entryPoint string) ShaderBuilderOption {
	return func(s *shader) {
		s.entryPoint = entryPoint
	}
}

// WithVertexLayout declares the vertex buffer layout for a buffer slot. Only meaningful
// on vertex shaders.
//
// Parameters:
//   - slot: the vertex buffer slot index
//   - layout: the vertex buffer layouts bound at this slot
//
// Returns:
//   - ShaderBuilderOption: a function that sets the vertex layout for this shader
func WithVertexLayout(slot int, layout []wgpu.VertexBufferLayout) ShaderBuilderOption {
	return func(s *shader) {
		s.vertexLayouts[slot] = layout
	}
}

// WithBindGroupLayout declares the bind group layout entries for a group index.
// Entries whose Visibility is left unset default to the shader's own stage.
//
// Parameters:
//   - group: the bind group index
//   - label: the debug label for the layout descriptor
//   - entries: the layout entries for this group
//
// Returns:
//   - ShaderBuilderOption: a function that sets the bind group layout for this shader
func WithBindGroupLayout(group int, label string, entries []wgpu.BindGroupLayoutEntry) ShaderBuilderOption {
	return func(s *shader) {
		s.bindGroupLayoutDescriptors[group] = wgpu.BindGroupLayoutDescriptor{
			Label:   label,
			Entries: entries,
		}
	}
}
