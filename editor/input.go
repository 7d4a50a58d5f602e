package editor

import (
	"github.com/rs/zerolog"

	"orbit-viewer/core"
	"orbit-viewer/scene"
)

// InputRouter forwards window mouse events to the camera controller in
// arrival order.
type InputRouter struct {
	camera *scene.CameraController
	log    zerolog.Logger

	// cursor position of the latest motion event
	mouseX, mouseY float64
}

func NewInputRouter(camera *scene.CameraController, logger zerolog.Logger) *InputRouter {
	return &InputRouter{
		camera: camera,
		log:    logger,
	}
}

// MouseButton handles press and release events. Repeats are ignored.
func (r *InputRouter) MouseButton(button core.MouseButton, action core.Action) {
	before := r.camera.Mode()

	switch action {
	case core.Press:
		r.camera.PressButton(button)
	case core.Release:
		r.camera.ReleaseButton(button)
	default:
		return
	}

	if after := r.camera.Mode(); after != before || action == core.Press {
		r.log.Debug().
			Stringer("button", button).
			Stringer("from", before).
			Stringer("to", after).
			Float64("x", r.mouseX).
			Float64("y", r.mouseY).
			Msg("camera mode")
	}
}

// Cursor returns the position of the latest motion event.
func (r *InputRouter) Cursor() (x, y float64) {
	return r.mouseX, r.mouseY
}

// CursorMoved handles a motion event in window coordinates.
func (r *InputRouter) CursorMoved(x, y float64) {
	r.mouseX, r.mouseY = x, y
	r.camera.Motion(float32(x), float32(y))
}
