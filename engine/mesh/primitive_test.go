package mesh

import (
	"testing"

	"github.com/oxyview/gnomon/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGnomonGeometry(t *testing.T) {
	verts := Gnomon(2)
	require.Len(t, verts, 6)

	// three lines, each starting at the origin
	for i := 0; i < 6; i += 2 {
		assert.Equal(t, [3]float32{0, 0, 0}, verts[i].Position)
		assert.Equal(t, verts[i].Color, verts[i+1].Color, "line endpoints share a color")
	}

	assert.Equal(t, [3]float32{2, 0, 0}, verts[1].Position)
	assert.Equal(t, [3]float32{1, 0, 0}, verts[1].Color, "+X axis is red")
	assert.Equal(t, [3]float32{0, 2, 0}, verts[3].Position)
	assert.Equal(t, [3]float32{0, 1, 0}, verts[3].Color, "+Y axis is green")
	assert.Equal(t, [3]float32{0, 0, 2}, verts[5].Position)
	assert.Equal(t, [3]float32{0, 0, 1}, verts[5].Color, "+Z axis is blue")
}

func TestCubeGeometry(t *testing.T) {
	verts, indices := Cube(0.5)
	require.Len(t, verts, 24)
	require.Len(t, indices, 36)

	for i, v := range verts {
		p := common.Vec3{X: v.Position[0], Y: v.Position[1], Z: v.Position[2]}
		n := common.Vec3{X: v.Normal[0], Y: v.Normal[1], Z: v.Normal[2]}
		assert.InDelta(t, 1.0, float64(n.Length()), 1e-6, "vertex %d normal is unit", i)
		// each vertex lies on the face its normal points out of
		assert.InDelta(t, 0.5, float64(p.Dot(n)), 1e-6, "vertex %d on its face plane", i)
	}
	for _, idx := range indices {
		assert.Less(t, idx, uint32(24))
	}
}

func TestCubeWindingIsOutwardCCW(t *testing.T) {
	verts, indices := Cube(1)
	for tri := 0; tri < len(indices); tri += 3 {
		a := verts[indices[tri]]
		b := verts[indices[tri+1]]
		c := verts[indices[tri+2]]

		av := common.Vec3{X: a.Position[0], Y: a.Position[1], Z: a.Position[2]}
		bv := common.Vec3{X: b.Position[0], Y: b.Position[1], Z: b.Position[2]}
		cv := common.Vec3{X: c.Position[0], Y: c.Position[1], Z: c.Position[2]}
		n := common.Vec3{X: a.Normal[0], Y: a.Normal[1], Z: a.Normal[2]}

		face := bv.Sub(av).Cross(cv.Sub(av))
		assert.Greater(t, face.Dot(n), float32(0), "triangle %d faces outward", tri/3)
	}
}

func TestMeshBuilders(t *testing.T) {
	gnomon := NewGnomonMesh("line", 1)
	assert.Equal(t, "gnomon", gnomon.Name())
	assert.Equal(t, "line", gnomon.PipelineKey())
	assert.Equal(t, 6, gnomon.VertexCount())
	assert.Equal(t, 0, gnomon.IndexCount())
	assert.Nil(t, gnomon.IndexData())
	assert.Len(t, gnomon.VertexData(), 6*24)

	cube := NewCubeMesh("mesh", 0.5)
	assert.Equal(t, "cube", cube.Name())
	assert.Equal(t, 24, cube.VertexCount())
	assert.Equal(t, 36, cube.IndexCount())
	assert.Len(t, cube.VertexData(), 24*24)
	assert.Len(t, cube.IndexData(), 36*4)
}

func TestVertexSizes(t *testing.T) {
	lv := GPULineVertex{}
	mv := GPUMeshVertex{}
	assert.Equal(t, 24, lv.Size())
	assert.Equal(t, 24, mv.Size())
	assert.Len(t, lv.Marshal(), 24)
	assert.Len(t, mv.Marshal(), 24)
}
