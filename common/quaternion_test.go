package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quatLength(q Quaternion) float64 {
	return math.Sqrt(float64(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z))
}

func assertVecNear(t *testing.T, want, got Vec3, delta float64) {
	t.Helper()
	assert.InDelta(t, float64(want.X), float64(got.X), delta)
	assert.InDelta(t, float64(want.Y), float64(got.Y), delta)
	assert.InDelta(t, float64(want.Z), float64(got.Z), delta)
}

func TestRotationBetweenSameVector(t *testing.T) {
	for _, v := range []Vec3{
		{X: 1},
		{Y: 1},
		{X: 0.3, Y: -0.8, Z: 0.5},
	} {
		q := RotationBetween(v, v)
		assert.InDelta(t, 1.0, float64(q.W), 1e-5)
		assert.InDelta(t, 0.0, float64(q.X), 1e-5)
		assert.InDelta(t, 0.0, float64(q.Y), 1e-5)
		assert.InDelta(t, 0.0, float64(q.Z), 1e-5)
	}
}

func TestRotationBetweenCarriesFromOntoTo(t *testing.T) {
	tests := []struct {
		name     string
		from, to Vec3
	}{
		{"x to y", Vec3{X: 1}, Vec3{Y: 1}},
		{"z to diagonal", Vec3{Z: 1}, Vec3{X: 1, Y: 1, Z: 1}},
		{"skew pair", Vec3{X: 0.2, Y: 0.9, Z: -0.4}, Vec3{X: -0.7, Y: 0.1, Z: 0.7}},
		{"antiparallel x", Vec3{X: 1}, Vec3{X: -1}},
		{"antiparallel z", Vec3{Z: 1}, Vec3{Z: -1}},
		{"antiparallel skew", Vec3{X: 0.6, Y: -0.3, Z: 0.74}, Vec3{X: -0.6, Y: 0.3, Z: -0.74}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := RotationBetween(tt.from, tt.to)
			require.False(t, math.IsNaN(float64(q.W)))
			assert.InDelta(t, 1.0, quatLength(q), 1e-5)

			got := q.Rotate(tt.from.Normalize())
			assertVecNear(t, tt.to.Normalize(), got, 1e-5)

			// the matrix derivation must agree with Rotate
			m := make([]float32, 16)
			q.RotationMatrix(m)
			f := tt.from.Normalize()
			mx, my, mz, _ := transformPoint(m, f.X, f.Y, f.Z)
			assertVecNear(t, got, Vec3{X: mx, Y: my, Z: mz}, 1e-5)
		})
	}
}

func TestRotationBetweenAntiparallelDeterministic(t *testing.T) {
	a := RotationBetween(Vec3{X: 1}, Vec3{X: -1})
	b := RotationBetween(Vec3{X: 1}, Vec3{X: -1})
	assert.Equal(t, a, b)
}

func TestFromAxisAngle(t *testing.T) {
	q := FromAxisAngle(Vec3{Y: 1}, float32(math.Pi)/2)
	got := q.Rotate(Vec3{X: 1})
	assertVecNear(t, Vec3{Z: -1}, got, 1e-6)

	assert.Equal(t, QuaternionIdentity(), FromAxisAngle(Vec3{}, 1.2))
}

func TestMulComposes(t *testing.T) {
	yaw := FromAxisAngle(Vec3{Y: 1}, float32(math.Pi)/2)
	pitch := FromAxisAngle(Vec3{X: 1}, float32(math.Pi)/2)

	// yaw.Mul(pitch) applies pitch first: +Z pitches to -Y, unaffected by yaw
	got := yaw.Mul(pitch).Rotate(Vec3{Z: 1})
	assertVecNear(t, Vec3{Y: -1}, got, 1e-6)

	// pitch.Mul(yaw) applies yaw first: +Z yaws to +X, then pitches to... +X
	got = pitch.Mul(yaw).Rotate(Vec3{Z: 1})
	assertVecNear(t, Vec3{X: 1}, got, 1e-6)
}

func TestNormalizeZeroQuaternion(t *testing.T) {
	assert.Equal(t, QuaternionIdentity(), Quaternion{}.Normalize())
}

func TestRotationMatrixNormalizesInput(t *testing.T) {
	q := Quaternion{W: 2} // unnormalized identity
	m := make([]float32, 16)
	q.RotationMatrix(m)
	x, y, z, _ := transformPoint(m, 1, 2, 3)
	assert.InDelta(t, 1.0, float64(x), 1e-6)
	assert.InDelta(t, 2.0, float64(y), 1e-6)
	assert.InDelta(t, 3.0, float64(z), 1e-6)
}
