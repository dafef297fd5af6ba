package shader

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWGSL = `
@vertex fn vs_main() -> @builtin(position) vec4<f32> { return vec4<f32>(0.0); }
@fragment fn fs_main() -> @location(0) vec4<f32> { return vec4<f32>(1.0); }
`

func TestNewShaderDefaultEntryPoints(t *testing.T) {
	vs := NewShader("vs", ShaderTypeVertex, WithSource(testWGSL))
	fs := NewShader("fs", ShaderTypeFragment, WithSource(testWGSL))

	assert.Equal(t, "vs_main", vs.EntryPoint())
	assert.Equal(t, "fs_main", fs.EntryPoint())
	assert.Equal(t, ShaderTypeVertex, vs.ShaderType())
	assert.Equal(t, ShaderTypeFragment, fs.ShaderType())
}

func TestNewShaderEntryPointOverride(t *testing.T) {
	s := NewShader("vs", ShaderTypeVertex, WithSource(testWGSL), WithEntryPoint("main"))
	assert.Equal(t, "main", s.EntryPoint())
}

func TestNewShaderPanicsWithoutSource(t *testing.T) {
	assert.Panics(t, func() {
		NewShader("empty", ShaderTypeVertex)
	})
}

func TestNewShaderModuleCarriesSource(t *testing.T) {
	s := NewShader("vs", ShaderTypeVertex, WithSource(testWGSL))
	require.NotNil(t, s.Module())
	require.NotNil(t, s.Module().WGSLDescriptor)
	assert.Equal(t, testWGSL, s.Module().WGSLDescriptor.Code)
	assert.Equal(t, "vs", s.Module().Label)
}

func TestShaderVertexLayoutRoundTrip(t *testing.T) {
	layout := []wgpu.VertexBufferLayout{{
		ArrayStride: 24,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
		},
	}}
	s := NewShader("vs", ShaderTypeVertex,
		WithSource(testWGSL),
		WithVertexLayout(0, layout),
	)

	assert.Equal(t, layout, s.VertexLayout(0))
	assert.Nil(t, s.VertexLayout(1))
	assert.Len(t, s.VertexLayouts(), 1)
}

func TestShaderDefaultVisibilityStamping(t *testing.T) {
	entries := []wgpu.BindGroupLayoutEntry{
		{Binding: 0, Buffer: wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform}},
		{Binding: 1, Visibility: wgpu.ShaderStageFragment, Buffer: wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform}},
	}
	s := NewShader("vs", ShaderTypeVertex,
		WithSource(testWGSL),
		WithBindGroupLayout(0, "uniforms", entries),
	)

	desc := s.BindGroupLayoutDescriptor(0)
	require.Len(t, desc.Entries, 2)
	// Unset visibility defaults to the shader's own stage.
	assert.Equal(t, wgpu.ShaderStageVertex, desc.Entries[0].Visibility)
	// Explicit visibility is preserved.
	assert.Equal(t, wgpu.ShaderStageFragment, desc.Entries[1].Visibility)
	assert.Equal(t, "uniforms", desc.Label)
}

func TestShaderFragmentVisibilityDefault(t *testing.T) {
	entries := []wgpu.BindGroupLayoutEntry{
		{Binding: 0, Buffer: wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform}},
	}
	s := NewShader("fs", ShaderTypeFragment,
		WithSource(testWGSL),
		WithBindGroupLayout(0, "uniforms", entries),
	)

	desc := s.BindGroupLayoutDescriptor(0)
	require.Len(t, desc.Entries, 1)
	assert.Equal(t, wgpu.ShaderStageFragment, desc.Entries[0].Visibility)
}
