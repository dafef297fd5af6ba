package game_object

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxyview/gnomon/common"
	"github.com/oxyview/gnomon/engine/camera"
	"github.com/oxyview/gnomon/engine/mesh"
)

func TestNewGameObjectDefaults(t *testing.T) {
	obj := NewGameObject()

	assert.True(t, obj.Enabled())
	assert.Equal(t, common.Vec3{X: 1, Y: 1, Z: 1}, obj.Scale())
	assert.Equal(t, common.QuaternionIdentity(), obj.Rotation())
	assert.Zero(t, obj.SpinSpeed())
	assert.False(t, obj.DirectionDriven())
	assert.Nil(t, obj.Direction())
}

func TestGameObjectNameFallsBackToMesh(t *testing.T) {
	obj := NewGameObject(WithMesh(mesh.NewCubeMesh("cube_mesh", 0.5)))
	assert.Equal(t, "cube", obj.Name())

	named := NewGameObject(
		WithObjectName("hero"),
		WithMesh(mesh.NewCubeMesh("cube_mesh", 0.5)),
	)
	assert.Equal(t, "hero", named.Name())
}

func TestGameObjectSpinAdvancesWithUpdate(t *testing.T) {
	obj := NewGameObject(WithSpinSpeed(float32(math.Pi)))

	// Half a second at π rad/s is a quarter turn about the forward axis.
	obj.Update(0.5)
	want := common.FromAxisAngle(camera.CanonicalForward, float32(math.Pi/2))
	got := obj.Rotation()

	assert.InDelta(t, float64(want.W), float64(got.W), 1e-5)
	assert.InDelta(t, float64(want.Z), float64(got.Z), 1e-5)
}

func TestGameObjectZeroSpinLeavesRotationUntouched(t *testing.T) {
	rot := common.FromAxisAngle(common.Vec3{Y: 1}, 0.7)
	obj := NewGameObject(WithRotation(rot))

	obj.Update(1.0)
	assert.Equal(t, rot.Normalize(), obj.Rotation())
}

func TestGameObjectDirectionOverridesRotation(t *testing.T) {
	fixed := common.FromAxisAngle(common.Vec3{X: 1}, 1.2)
	dir := camera.NewSphericalDirection(0, 0)
	obj := NewGameObject(
		WithRotation(fixed),
		WithDirectionDriven(dir),
	)

	require.True(t, obj.DirectionDriven())
	assert.Equal(t, dir.Orientation(), obj.Rotation())

	// Detaching the direction restores the fixed rotation.
	obj.SetDirection(nil)
	assert.Equal(t, fixed.Normalize(), obj.Rotation())
}

func TestGameObjectDirectionSteering(t *testing.T) {
	dir := camera.NewSphericalDirection(0, 0)
	obj := NewGameObject(WithDirectionDriven(dir))

	before := obj.Rotation()
	dir.Adjust(float32(math.Pi/2), 0)
	after := obj.Rotation()

	assert.NotEqual(t, before, after)
	assert.Equal(t, dir.Orientation(), after)
}

func TestGameObjectModelMatrixTranslation(t *testing.T) {
	obj := NewGameObject(WithPosition(common.Vec3{X: 1, Y: 2, Z: 3}))

	var m [16]float32
	obj.ModelMatrix(m[:])

	// Column-major: translation lives in column 3.
	assert.InDelta(t, 1.0, float64(m[12]), 1e-6)
	assert.InDelta(t, 2.0, float64(m[13]), 1e-6)
	assert.InDelta(t, 3.0, float64(m[14]), 1e-6)
	assert.InDelta(t, 1.0, float64(m[15]), 1e-6)
}

func TestGameObjectModelMatrixScale(t *testing.T) {
	obj := NewGameObject(WithScale(common.Vec3{X: 2, Y: 3, Z: 4}))

	var m [16]float32
	obj.ModelMatrix(m[:])

	assert.InDelta(t, 2.0, float64(m[0]), 1e-6)
	assert.InDelta(t, 3.0, float64(m[5]), 1e-6)
	assert.InDelta(t, 4.0, float64(m[10]), 1e-6)
}

func TestGameObjectEnabledToggle(t *testing.T) {
	obj := NewGameObject()
	obj.SetEnabled(false)
	assert.False(t, obj.Enabled())
	obj.SetEnabled(true)
	assert.True(t, obj.Enabled())
}
