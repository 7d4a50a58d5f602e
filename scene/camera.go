package scene

import (
	stdmath "math"

	"orbit-viewer/core"
	reMath "orbit-viewer/math"
)

// Mode is the input mode armed by the most recent mouse button press.
type Mode int

const (
	ModeIdle Mode = iota
	ModeOrbiting
	ModeDollying
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeOrbiting:
		return "orbiting"
	case ModeDollying:
		return "dollying"
	default:
		return "unknown"
	}
}

type CameraSettings struct {
	// Sensitivity scales cursor deltas in pixels to radians (orbit) or
	// dolly offsets.
	Sensitivity float32
	// Speed is the distance moved along Forward per dolly event.
	Speed float32
	// OrbitRadius is the radius of the sphere Forward is placed on.
	OrbitRadius float32
}

func DefaultCameraSettings() CameraSettings {
	return CameraSettings{
		Sensitivity: 0.05,
		Speed:       0.05,
		OrbitRadius: 10,
	}
}

var (
	defaultCameraPosition = reMath.Vec3{X: 0, Y: 0, Z: 5}
	defaultCameraForward  = reMath.Vec3Back

	// Cursor starts out assumed at the centre of an 800x600 window.
	defaultLastX = float32(400)
	defaultLastY = float32(300)
)

// CameraController owns the camera state and mutates it from mouse
// events. It is not safe for concurrent use; all calls come from the
// event loop thread.
//
// The view is built with Forward as the eye and Position as the target:
// orbiting swings the eye around a sphere of OrbitRadius while dollying
// slides the target along Forward.
type CameraController struct {
	Position reMath.Vec3
	Forward  reMath.Vec3
	Up       reMath.Vec3
	Yaw      float32
	Pitch    float32

	settings    CameraSettings
	mode        Mode
	lastX       float32
	lastY       float32
	firstMotion bool
}

func NewCameraController(settings CameraSettings) *CameraController {
	return &CameraController{
		Position: defaultCameraPosition,
		Forward:  defaultCameraForward,
		Up:       reMath.Vec3Up,
		settings: settings,
		mode:     ModeIdle,
		lastX:    defaultLastX,
		lastY:    defaultLastY,
	}
}

func (c *CameraController) Mode() Mode {
	return c.mode
}

func (c *CameraController) Settings() CameraSettings {
	return c.settings
}

// LastCursor returns the cursor position the next delta is measured from.
func (c *CameraController) LastCursor() (x, y float32) {
	return c.lastX, c.lastY
}

// PressButton arms orbiting (left) or dollying (right). Pressing a button
// while the other mode is active switches modes. Other buttons are ignored.
func (c *CameraController) PressButton(button core.MouseButton) {
	switch button {
	case core.MouseLeft:
		c.arm(ModeOrbiting)
	case core.MouseRight:
		c.arm(ModeDollying)
	}
}

// ReleaseButton returns to idle when the released button owns the active
// mode.
func (c *CameraController) ReleaseButton(button core.MouseButton) {
	if owner, ok := modeOwner(c.mode); ok && owner == button {
		c.mode = ModeIdle
	}
}

func (c *CameraController) arm(mode Mode) {
	c.mode = mode
	c.firstMotion = true
}

func modeOwner(mode Mode) (core.MouseButton, bool) {
	switch mode {
	case ModeOrbiting:
		return core.MouseLeft, true
	case ModeDollying:
		return core.MouseRight, true
	default:
		return 0, false
	}
}

// Motion feeds one cursor event to the active mode. The first event after
// a mode is armed is measured from its own position, so it carries a zero
// delta.
func (c *CameraController) Motion(x, y float32) {
	switch c.mode {
	case ModeOrbiting:
		c.orbit(x, y)
	case ModeDollying:
		c.dolly(y)
	}
}

func (c *CameraController) orbit(x, y float32) {
	if c.firstMotion {
		c.lastX, c.lastY = x, y
		c.firstMotion = false
	}

	xOffset := (x - c.lastX) * c.settings.Sensitivity
	yOffset := (c.lastY - y) * c.settings.Sensitivity
	c.lastX, c.lastY = x, y

	c.Yaw += xOffset
	c.Pitch += yOffset

	c.Forward = OrbitPoint(c.Yaw, c.Pitch, c.settings.OrbitRadius)
}

// dolly compares the scaled offset with the updated last Y coordinate
// rather than with zero, so the direction depends on where the cursor is
// on screen as much as on which way it moved.
func (c *CameraController) dolly(y float32) {
	if c.firstMotion {
		c.lastY = y
		c.firstMotion = false
		return
	}

	yOffset := c.lastY - y
	c.lastY = y
	yOffset *= c.settings.Sensitivity

	step := c.Forward.Mul(c.settings.Speed)
	if yOffset > c.lastY {
		c.Position = c.Position.Add(step)
	}
	if yOffset < c.lastY {
		c.Position = c.Position.Sub(step)
	}
}

// OrbitPoint places a point on a sphere of the given radius from yaw and
// pitch in radians.
func OrbitPoint(yaw, pitch, radius float32) reMath.Vec3 {
	y, p := float64(yaw), float64(pitch)
	return reMath.Vec3{
		X: radius * float32(stdmath.Cos(y)),
		Y: radius * float32(stdmath.Sin(p)),
		Z: float32(stdmath.Sin(y)) * float32(stdmath.Cos(p)) * radius,
	}
}

// ViewMatrix is recomputed from the current state on every call.
func (c *CameraController) ViewMatrix() reMath.Mat4 {
	return reMath.Mat4LookAt(c.Forward, c.Position, c.Up)
}
