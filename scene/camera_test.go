package scene

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbit-viewer/core"
	reMath "orbit-viewer/math"
)

const eps = 1e-5

func newTestController() *CameraController {
	return NewCameraController(DefaultCameraSettings())
}

func TestNewCameraControllerInitialState(t *testing.T) {
	c := newTestController()

	assert.Equal(t, reMath.Vec3{X: 0, Y: 0, Z: 5}, c.Position)
	assert.Equal(t, reMath.Vec3{X: 0, Y: 0, Z: -1}, c.Forward)
	assert.Equal(t, reMath.Vec3{X: 0, Y: 1, Z: 0}, c.Up)
	assert.Zero(t, c.Yaw)
	assert.Zero(t, c.Pitch)
	assert.Equal(t, ModeIdle, c.Mode())

	x, y := c.LastCursor()
	assert.Equal(t, float32(400), x)
	assert.Equal(t, float32(300), y)
}

func TestModeTransitions(t *testing.T) {
	c := newTestController()

	c.PressButton(core.MouseLeft)
	assert.Equal(t, ModeOrbiting, c.Mode())

	// Right press while orbiting switches to dolly
	c.PressButton(core.MouseRight)
	assert.Equal(t, ModeDollying, c.Mode())

	// Releasing the button that does not own the mode changes nothing
	c.ReleaseButton(core.MouseLeft)
	assert.Equal(t, ModeDollying, c.Mode())

	c.ReleaseButton(core.MouseRight)
	assert.Equal(t, ModeIdle, c.Mode())

	c.PressButton(core.MouseMiddle)
	assert.Equal(t, ModeIdle, c.Mode())

	c.ReleaseButton(core.MouseMiddle)
	assert.Equal(t, ModeIdle, c.Mode())
}

func TestIdleIgnoresMotion(t *testing.T) {
	c := newTestController()
	before := *c

	c.Motion(10, 10)
	c.Motion(700, 20)

	assert.Equal(t, before, *c)
}

func TestOrbitFirstMotionSnaps(t *testing.T) {
	c := newTestController()
	c.PressButton(core.MouseLeft)

	// Far from the assumed centre: no jump
	c.Motion(5, 590)

	assert.Zero(t, c.Yaw)
	assert.Zero(t, c.Pitch)

	// Forward is placed on the orbit sphere at the unchanged angles
	want := OrbitPoint(0, 0, c.Settings().OrbitRadius)
	assert.True(t, c.Forward.ApproxEqual(want, eps), "forward %v, want %v", c.Forward, want)
	assert.True(t, c.Forward.ApproxEqual(reMath.Vec3{X: 10}, eps), "forward %v", c.Forward)

	x, y := c.LastCursor()
	assert.Equal(t, float32(5), x)
	assert.Equal(t, float32(590), y)
}

func TestOrbitSingleHorizontalDrag(t *testing.T) {
	c := newTestController()
	sensitivity := c.Settings().Sensitivity

	c.PressButton(core.MouseLeft)
	c.Motion(100, 200)
	c.Motion(110, 200)

	assert.InDelta(t, 10*sensitivity, c.Yaw, eps)
	assert.Zero(t, c.Pitch)
}

func TestOrbitAccumulatesAndMatchesClosedForm(t *testing.T) {
	c := newTestController()
	s := c.Settings()

	c.PressButton(core.MouseLeft)
	c.Motion(300, 300)

	moves := [][2]float32{{310, 295}, {330, 280}, {320, 310}, {250, 400}}
	var wantYaw, wantPitch float32
	lastX, lastY := float32(300), float32(300)
	for _, m := range moves {
		wantYaw += (m[0] - lastX) * s.Sensitivity
		wantPitch += (lastY - m[1]) * s.Sensitivity
		lastX, lastY = m[0], m[1]
		c.Motion(m[0], m[1])
	}

	assert.InDelta(t, wantYaw, c.Yaw, eps)
	assert.InDelta(t, wantPitch, c.Pitch, eps)

	yaw, pitch := float64(c.Yaw), float64(c.Pitch)
	want := reMath.Vec3{
		X: float32(10 * stdmath.Cos(yaw)),
		Y: float32(10 * stdmath.Sin(pitch)),
		Z: float32(stdmath.Sin(yaw) * stdmath.Cos(pitch) * 10),
	}
	assert.True(t, c.Forward.ApproxEqual(want, 1e-4), "forward %v, want %v", c.Forward, want)
}

func TestOrbitAnglesDoNotWrap(t *testing.T) {
	c := newTestController()
	c.PressButton(core.MouseLeft)
	c.Motion(0, 0)

	for i := 1; i <= 20; i++ {
		c.Motion(float32(i*100), 0)
	}

	// 2000 px * 0.05 = 100 rad, well past 2*pi
	assert.InDelta(t, 100, c.Yaw, 1e-3)
}

func TestOrbitUsesConfiguredRadius(t *testing.T) {
	s := DefaultCameraSettings()
	s.OrbitRadius = 3
	c := NewCameraController(s)

	c.PressButton(core.MouseLeft)
	c.Motion(0, 0)
	c.Motion(0, 0)

	// yaw = pitch = 0 puts the eye on +X at the radius
	assert.True(t, c.Forward.ApproxEqual(reMath.Vec3{X: 3}, eps), "forward %v", c.Forward)
}

func TestRearmingSnapsAgain(t *testing.T) {
	c := newTestController()

	c.PressButton(core.MouseLeft)
	c.Motion(100, 100)
	c.Motion(120, 100)
	yaw := c.Yaw

	c.ReleaseButton(core.MouseLeft)
	c.Motion(500, 500)

	c.PressButton(core.MouseLeft)
	c.Motion(10, 10)
	assert.Equal(t, yaw, c.Yaw)
}

func TestDollyFirstMotionSnaps(t *testing.T) {
	c := newTestController()
	c.PressButton(core.MouseRight)

	c.Motion(50, 20)

	assert.Equal(t, reMath.Vec3{X: 0, Y: 0, Z: 5}, c.Position)
	_, y := c.LastCursor()
	assert.Equal(t, float32(20), y)
}

func TestDollyComparesOffsetWithLastY(t *testing.T) {
	c := newTestController()
	speed := c.Settings().Speed

	c.PressButton(core.MouseRight)
	c.Motion(0, 200)

	// Cursor moves up by 10px: offset 0.5 is below lastY (190), so the
	// camera steps back along Forward.
	c.Motion(0, 190)
	want := reMath.Vec3{X: 0, Y: 0, Z: 5}.Sub(c.Forward.Mul(speed))
	assert.True(t, c.Position.ApproxEqual(want, eps), "position %v, want %v", c.Position, want)

	// Moving down also steps back while lastY stays positive.
	c.Motion(0, 250)
	want = want.Sub(c.Forward.Mul(speed))
	assert.True(t, c.Position.ApproxEqual(want, eps), "position %v, want %v", c.Position, want)
}

func TestDollyStepsForwardAboveWindow(t *testing.T) {
	c := newTestController()
	speed := c.Settings().Speed

	c.PressButton(core.MouseRight)
	c.Motion(0, 0)

	// Negative Y (cursor dragged above the window): offset 0.5 > -10
	c.Motion(0, -10)
	want := reMath.Vec3{X: 0, Y: 0, Z: 5}.Add(c.Forward.Mul(speed))
	assert.True(t, c.Position.ApproxEqual(want, eps), "position %v, want %v", c.Position, want)
}

func TestDollyDoesNotChangeOrbit(t *testing.T) {
	c := newTestController()

	c.PressButton(core.MouseLeft)
	c.Motion(0, 0)
	c.Motion(20, 0)
	forward := c.Forward

	c.PressButton(core.MouseRight)
	c.Motion(0, 100)
	c.Motion(0, 80)

	assert.Equal(t, forward, c.Forward)
	assert.NotEqual(t, reMath.Vec3{X: 0, Y: 0, Z: 5}, c.Position)
}

func TestViewMatrixUsesForwardAsEye(t *testing.T) {
	c := newTestController()

	view := c.ViewMatrix()
	require.Equal(t, reMath.Mat4LookAt(c.Forward, c.Position, c.Up), view)

	// The eye maps to the origin of view space
	eye := view.MulVec3(c.Forward)
	assert.True(t, eye.ApproxEqual(reMath.Vec3Zero, 1e-4), "eye in view space %v", eye)

	// Repeated calls with unchanged state are identical
	assert.Equal(t, view, c.ViewMatrix())
}

func TestOrbitPoint(t *testing.T) {
	p := OrbitPoint(0, 0, 10)
	assert.True(t, p.ApproxEqual(reMath.Vec3{X: 10}, eps))

	p = OrbitPoint(float32(stdmath.Pi/2), 0, 10)
	assert.True(t, p.ApproxEqual(reMath.Vec3{Z: 10}, 1e-4), "got %v", p)

	p = OrbitPoint(0, float32(stdmath.Pi/2), 10)
	assert.True(t, p.ApproxEqual(reMath.Vec3{X: 10, Y: 10}, 1e-4), "got %v", p)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "idle", ModeIdle.String())
	assert.Equal(t, "orbiting", ModeOrbiting.String())
	assert.Equal(t, "dollying", ModeDollying.String())
	assert.Equal(t, "unknown", Mode(42).String())
}
