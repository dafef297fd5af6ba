package mesh

import (
	"github.com/oxyview/gnomon/common"
)

// Gnomon builds the coordinate-axis line geometry: three lines from the
// origin along +X, +Y, and +Z, colored red, green, and blue. The result is
// 6 vertices forming a line list (no index buffer).
//
// Parameters:
//   - size: length of each axis line
//
// Returns:
//   - []GPULineVertex: the 6 line-list vertices
func Gnomon(size float32) []GPULineVertex {
	red := [3]float32{1, 0, 0}
	green := [3]float32{0, 1, 0}
	blue := [3]float32{0, 0, 1}
	return []GPULineVertex{
		{Position: [3]float32{0, 0, 0}, Color: red},
		{Position: [3]float32{size, 0, 0}, Color: red},
		{Position: [3]float32{0, 0, 0}, Color: green},
		{Position: [3]float32{0, size, 0}, Color: green},
		{Position: [3]float32{0, 0, 0}, Color: blue},
		{Position: [3]float32{0, 0, size}, Color: blue},
	}
}

// cubeFaces pairs each face normal with the in-plane basis (u, v) chosen so
// that u × v points along the normal. Corners wound from (-u,-v) counter-
// clockwise are then front-facing when viewed from outside.
var cubeFaces = [6]struct {
	normal, u, v common.Vec3
}{
	{common.Vec3{X: 1}, common.Vec3{Y: 1}, common.Vec3{Z: 1}},
	{common.Vec3{X: -1}, common.Vec3{Z: 1}, common.Vec3{Y: 1}},
	{common.Vec3{Y: 1}, common.Vec3{Z: 1}, common.Vec3{X: 1}},
	{common.Vec3{Y: -1}, common.Vec3{X: 1}, common.Vec3{Z: 1}},
	{common.Vec3{Z: 1}, common.Vec3{X: 1}, common.Vec3{Y: 1}},
	{common.Vec3{Z: -1}, common.Vec3{Y: 1}, common.Vec3{X: 1}},
}

// Cube builds an axis-aligned cube centered on the origin with per-face
// normals: 4 vertices per face (24 total) and 36 indices, CCW winding viewed
// from outside.
//
// Parameters:
//   - halfExtent: half the cube's edge length
//
// Returns:
//   - []GPUMeshVertex: the 24 vertices
//   - []uint32: the 36 triangle-list indices
func Cube(halfExtent float32) ([]GPUMeshVertex, []uint32) {
	vertices := make([]GPUMeshVertex, 0, 24)
	indices := make([]uint32, 0, 36)

	for _, face := range cubeFaces {
		n := face.normal.Scale(halfExtent)
		u := face.u.Scale(halfExtent)
		v := face.v.Scale(halfExtent)

		base := uint32(len(vertices))
		for _, corner := range [4]common.Vec3{
			n.Sub(u).Sub(v),
			n.Add(u).Sub(v),
			n.Add(u).Add(v),
			n.Sub(u).Add(v),
		} {
			vertices = append(vertices, GPUMeshVertex{
				Position: [3]float32{corner.X, corner.Y, corner.Z},
				Normal:   [3]float32{face.normal.X, face.normal.Y, face.normal.Z},
			})
		}
		indices = append(indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
	return vertices, indices
}
