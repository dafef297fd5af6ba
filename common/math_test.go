package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// transformPoint applies a column-major 4x4 matrix to a point (w=1) and
// returns the resulting homogeneous coordinates.
func transformPoint(m []float32, x, y, z float32) (float32, float32, float32, float32) {
	return m[0]*x + m[4]*y + m[8]*z + m[12],
		m[1]*x + m[5]*y + m[9]*z + m[13],
		m[2]*x + m[6]*y + m[10]*z + m[14],
		m[3]*x + m[7]*y + m[11]*z + m[15]
}

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = float32(i)
	}
	Identity(m)
	x, y, z, w := transformPoint(m, 1, 2, 3)
	assert.Equal(t, float32(1), x)
	assert.Equal(t, float32(2), y)
	assert.Equal(t, float32(3), z)
	assert.Equal(t, float32(1), w)
}

func TestMul4AgainstIdentity(t *testing.T) {
	a := make([]float32, 16)
	id := make([]float32, 16)
	out := make([]float32, 16)
	for i := range a {
		a[i] = float32(i) * 0.5
	}
	Identity(id)

	Mul4(out, a, id)
	assert.Equal(t, a, out)
	Mul4(out, id, a)
	assert.Equal(t, a, out)
}

func TestMul4AliasedOutput(t *testing.T) {
	a := make([]float32, 16)
	b := make([]float32, 16)
	want := make([]float32, 16)
	for i := range a {
		a[i] = float32(i)
		b[i] = float32(16 - i)
	}
	Mul4(want, a, b)

	// writing into one of the operands must not corrupt the product
	Mul4(a, a, b)
	assert.Equal(t, want, a)
}

func TestPerspectiveDepthRange(t *testing.T) {
	near, far := float32(0.1), float32(100.0)
	p := make([]float32, 16)
	Perspective(p, float32(math.Pi)/4, 16.0/9.0, near, far)

	// a view-space point at depth near lands on clip z = 0
	_, _, z, w := transformPoint(p, 0, 0, -near)
	assert.InDelta(t, 0.0, z/w, 1e-5)

	// a view-space point at depth far lands on clip z = 1
	_, _, z, w = transformPoint(p, 0, 0, -far)
	assert.InDelta(t, 1.0, z/w, 1e-4)
}

func TestPerspectiveInvertible(t *testing.T) {
	p := make([]float32, 16)
	inv := make([]float32, 16)
	Perspective(p, float32(math.Pi)/4, 16.0/9.0, 0.1, 100)
	require.True(t, Invert4(inv, p))

	roundTrip := make([]float32, 16)
	Mul4(roundTrip, p, inv)
	id := make([]float32, 16)
	Identity(id)
	for i := range id {
		assert.InDelta(t, id[i], roundTrip[i], 1e-4)
	}
}

func TestInvert4Singular(t *testing.T) {
	m := make([]float32, 16) // all zeros
	out := make([]float32, 16)
	out[3] = 42
	assert.False(t, Invert4(out, m))
	assert.Equal(t, float32(42), out[3], "singular input must leave out untouched")
}

func TestLookAtOriginDepth(t *testing.T) {
	v := make([]float32, 16)
	LookAt(v, 0, 0, 5, 0, 0, 0, 0, 1, 0)

	// the origin ends up on the view axis, 5 units in front of the camera
	x, y, z, w := transformPoint(v, 0, 0, 0)
	assert.InDelta(t, 0.0, x, 1e-6)
	assert.InDelta(t, 0.0, y, 1e-6)
	assert.InDelta(t, -5.0, z, 1e-6)
	assert.InDelta(t, 1.0, w, 1e-6)

	// the eye maps to the view-space origin
	x, y, z, _ = transformPoint(v, 0, 0, 5)
	assert.InDelta(t, 0.0, x, 1e-6)
	assert.InDelta(t, 0.0, y, 1e-6)
	assert.InDelta(t, 0.0, z, 1e-6)
}

func TestLookAtDegenerateUp(t *testing.T) {
	v := make([]float32, 16)
	// looking straight down with up = +Y: forward is parallel to up
	LookAt(v, 0, 5, 0, 0, 0, 0, 0, 1, 0)

	for i, f := range v {
		assert.False(t, math.IsNaN(float64(f)), "element %d is NaN", i)
	}

	// the basis must still be orthonormal: origin lands at depth 5
	_, _, z, _ := transformPoint(v, 0, 0, 0)
	assert.InDelta(t, -5.0, z, 1e-5)
}

func TestComposeTRS(t *testing.T) {
	out := make([]float32, 16)
	rot := FromAxisAngle(Vec3{Y: 1}, float32(math.Pi)/2)
	ComposeTRS(out, Vec3{X: 1, Y: 2, Z: 3}, rot, Vec3{X: 2, Y: 2, Z: 2})

	// +X scaled by 2, rotated 90° about Y (to -Z), then translated
	x, y, z, _ := transformPoint(out, 1, 0, 0)
	assert.InDelta(t, 1.0, x, 1e-5)
	assert.InDelta(t, 2.0, y, 1e-5)
	assert.InDelta(t, 1.0, z, 1e-5)
}

func TestSliceToBytesRoundTrip(t *testing.T) {
	data := []float32{1.5, -2.25, 3.75}
	b := SliceToBytes(data)
	require.Len(t, b, 12)

	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	assert.Equal(t, float32(1.5), math.Float32frombits(bits))
}
