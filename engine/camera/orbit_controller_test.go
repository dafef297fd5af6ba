package camera

import (
	"math"
	"testing"

	"github.com/oxyview/gnomon/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quatNear(t *testing.T, want, got common.Quaternion, delta float64) {
	t.Helper()
	// q and -q encode the same rotation
	if want.W*got.W+want.X*got.X+want.Y*got.Y+want.Z*got.Z < 0 {
		got = common.Quaternion{W: -got.W, X: -got.X, Y: -got.Y, Z: -got.Z}
	}
	assert.InDelta(t, float64(want.W), float64(got.W), delta)
	assert.InDelta(t, float64(want.X), float64(got.X), delta)
	assert.InDelta(t, float64(want.Y), float64(got.Y), delta)
	assert.InDelta(t, float64(want.Z), float64(got.Z), delta)
}

func vecNear(t *testing.T, want, got common.Vec3, delta float64) {
	t.Helper()
	assert.InDelta(t, float64(want.X), float64(got.X), delta)
	assert.InDelta(t, float64(want.Y), float64(got.Y), delta)
	assert.InDelta(t, float64(want.Z), float64(got.Z), delta)
}

func TestOrbitDefaultPoseFacesPivot(t *testing.T) {
	oc := NewOrbitController()
	forward := oc.Rotation().Rotate(CanonicalForward)
	vecNear(t, common.Vec3{Z: -1}, forward, 1e-6)
	vecNear(t, common.Vec3{Z: 5}, oc.Position(), 0)
}

func TestOrbitZeroDeltaDragIsNoOp(t *testing.T) {
	oc := NewOrbitController()
	startPos := oc.Position()
	startRot := oc.Rotation()

	p := common.Vec2{X: 0.25, Y: -0.4}
	oc.Begin(p)
	oc.Drag(p)

	vecNear(t, startPos, oc.Position(), 1e-6)
	quatNear(t, startRot, oc.Rotation(), 1e-6)
}

func TestOrbitEndAfterDragAppliesOnce(t *testing.T) {
	start := common.Vec2{X: 0.1, Y: 0.1}
	end := common.Vec2{X: 0.6, Y: -0.2}

	a := NewOrbitController()
	a.Begin(start)
	a.Drag(end)
	a.End(end)

	b := NewOrbitController()
	b.Begin(start)
	b.Drag(end)

	vecNear(t, b.Position(), a.Position(), 1e-6)
	quatNear(t, b.Rotation(), a.Rotation(), 1e-6)
}

func TestOrbitEndWithoutDragAppliesFinalDrag(t *testing.T) {
	start := common.Vec2{}
	end := common.Vec2{X: 0.3}

	a := NewOrbitController()
	a.Begin(start)
	a.End(end)

	b := NewOrbitController()
	b.Begin(start)
	b.Drag(end)

	vecNear(t, b.Position(), a.Position(), 1e-6)
	quatNear(t, b.Rotation(), a.Rotation(), 1e-6)
}

func TestOrbitIdleDragIsIgnored(t *testing.T) {
	oc := NewOrbitController()
	startPos := oc.Position()
	startRot := oc.Rotation()

	oc.Drag(common.Vec2{X: 1})
	oc.End(common.Vec2{X: 1})

	assert.Equal(t, startPos, oc.Position())
	assert.Equal(t, startRot, oc.Rotation())
	assert.False(t, oc.Dragging())
}

func TestOrbitPreservesPivotDistance(t *testing.T) {
	oc := NewOrbitController()
	oc.Begin(common.Vec2{})
	oc.Drag(common.Vec2{X: 0.8, Y: 0.5})
	oc.End(common.Vec2{X: 1.2, Y: -0.3})

	dist := oc.Position().Sub(oc.Pivot()).Length()
	assert.InDelta(t, 5.0, float64(dist), 1e-4)
}

func TestOrbitKeepsFacingPivot(t *testing.T) {
	oc := NewOrbitController()
	oc.Begin(common.Vec2{})
	oc.Drag(common.Vec2{X: 0.7, Y: 0.4})

	forward := oc.Rotation().Rotate(CanonicalForward)
	wantForward := oc.Pivot().Sub(oc.Position()).Normalize()
	vecNear(t, wantForward, forward, 1e-5)
}

func TestOrbitRotationStaysUnit(t *testing.T) {
	oc := NewOrbitController()
	p := common.Vec2{}
	for range 50 {
		oc.Begin(p)
		p.X += 0.31
		p.Y -= 0.17
		oc.Drag(p)
		oc.End(p)
	}
	q := oc.Rotation()
	n := math.Sqrt(float64(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z))
	assert.InDelta(t, 1.0, n, 1e-4)
}

func TestOrbitYawMatchesSensitivity(t *testing.T) {
	oc := NewOrbitController(WithSensitivity(0.5))
	oc.Begin(common.Vec2{})
	oc.End(common.Vec2{X: 1}) // 0.5 radians of yaw about +Y

	pos := oc.Position()
	wantX := 5 * float32(math.Sin(0.5))
	wantZ := 5 * float32(math.Cos(0.5))
	vecNear(t, common.Vec3{X: wantX, Z: wantZ}, pos, 1e-5)
}

func TestOrbitZoomClampsDistance(t *testing.T) {
	oc := NewOrbitController(WithDistanceBounds(1, 10), WithOrbitZoomSpeed(1))

	oc.Zoom(100)
	assert.InDelta(t, 1.0, float64(oc.Position().Sub(oc.Pivot()).Length()), 1e-5)

	oc.Zoom(-100)
	assert.InDelta(t, 10.0, float64(oc.Position().Sub(oc.Pivot()).Length()), 1e-5)
}

func TestOrbitZoomIgnoredWhileDragging(t *testing.T) {
	oc := NewOrbitController()
	oc.Begin(common.Vec2{})
	before := oc.Position()
	oc.Zoom(1)
	assert.Equal(t, before, oc.Position())
	oc.End(common.Vec2{})
}

func TestOrbitBeginRestartsGesture(t *testing.T) {
	oc := NewOrbitController()
	oc.Begin(common.Vec2{})
	oc.Drag(common.Vec2{X: 0.4})
	mid := oc.Position()

	// restarting the gesture re-snapshots at the current pose
	oc.Begin(common.Vec2{X: 0.4})
	oc.Drag(common.Vec2{X: 0.4})
	assert.Equal(t, mid, oc.Position())

	require.True(t, oc.Dragging())
	oc.End(common.Vec2{X: 0.4})
	require.False(t, oc.Dragging())
}

func TestOrbitCustomPivot(t *testing.T) {
	pivot := common.Vec3{X: 2, Y: 1, Z: -3}
	oc := NewOrbitController(
		WithPivot(pivot),
		WithPose(pivot.Add(common.Vec3{Z: 4}), common.Quaternion{Y: 1}),
	)
	oc.Begin(common.Vec2{})
	oc.End(common.Vec2{X: 0.5, Y: 0.2})

	dist := oc.Position().Sub(pivot).Length()
	assert.InDelta(t, 4.0, float64(dist), 1e-4)
}
