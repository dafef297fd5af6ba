package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSphericalToCartesianAxes(t *testing.T) {
	halfPi := float32(math.Pi) / 2
	tests := []struct {
		name       string
		phi, theta float32
		want       Vec3
	}{
		{"zero angles point along +X", 0, 0, Vec3{X: 1}},
		{"quarter azimuth points along +Z", halfPi, 0, Vec3{Z: 1}},
		{"half azimuth points along -X", float32(math.Pi), 0, Vec3{X: -1}},
		{"full elevation points along +Y", 0, halfPi, Vec3{Y: 1}},
		{"negative elevation points along -Y", 0, -halfPi, Vec3{Y: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SphericalToCartesian(tt.phi, tt.theta, 1)
			assertVecNear(t, tt.want, got, 1e-6)
		})
	}
}

func TestSphericalToCartesianRadius(t *testing.T) {
	for _, r := range []float32{0.5, 1, 5, 100} {
		got := SphericalToCartesian(1.1, 0.4, r)
		assert.InDelta(t, float64(r), float64(got.Length()), 1e-3)
	}
}

func TestVec3CrossRightHanded(t *testing.T) {
	got := Vec3{X: 1}.Cross(Vec3{Y: 1})
	assertVecNear(t, Vec3{Z: 1}, got, 0)
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{X: 3, Y: 4}.Normalize()
	assert.InDelta(t, 1.0, float64(v.Length()), 1e-6)
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
}
