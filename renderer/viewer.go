package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"orbit-viewer/core"
	"orbit-viewer/scene"
)

// Backend draws a frame with the given uniforms. The OpenGL renderer is the
// production implementation.
type Backend interface {
	SetViewport(width, height int)
	DrawFrame(uniforms FrameUniforms)
	Destroy()
}

// Surface is the window the loop presents to.
type Surface interface {
	ShouldClose() bool
	PollEvents()
	SwapBuffers()
	SetTitle(title string)
}

type Options struct {
	Projection ProjectionSettings
	Title      string
	ShowFPS    bool

	// ModelBounds enables a per-frame visibility check; transitions are
	// logged at debug level. Nil disables it.
	ModelBounds *scene.AABB
}

func DefaultOptions() Options {
	return Options{
		Projection: DefaultProjectionSettings(),
		Title:      "Modern OpenGL",
		ShowFPS:    true,
	}
}

// Viewer drives the render loop: it owns the camera controller and the
// viewport and hands each frame's uniforms to the backend.
type Viewer struct {
	backend  Backend
	camera   *scene.CameraController
	viewport core.Viewport
	options  Options
	log      zerolog.Logger

	last    FrameUniforms
	frames  uint64
	closed  bool
	visible bool

	// FPS title bookkeeping
	now        func() time.Time
	fpsFrames  int
	fpsLastAt  time.Time
	currentFPS int
}

// NewViewer sets the backend viewport to the initial size.
func NewViewer(backend Backend, camera *scene.CameraController, viewport core.Viewport, options Options, logger zerolog.Logger) *Viewer {
	v := &Viewer{
		backend:  backend,
		camera:   camera,
		viewport: viewport,
		options:  options,
		log:      logger,
		now:      time.Now,
	}
	backend.SetViewport(viewport.Width, viewport.Height)
	return v
}

func (v *Viewer) Camera() *scene.CameraController {
	return v.camera
}

func (v *Viewer) Viewport() core.Viewport {
	return v.viewport
}

// Resize stores the new size and applies it to the backend. The next
// frame's projection uses the new aspect ratio.
func (v *Viewer) Resize(width, height int) {
	v.viewport = core.Viewport{Width: width, Height: height}
	v.backend.SetViewport(width, height)
	v.log.Debug().Int("width", width).Int("height", height).Msg("viewport resized")
}

// RenderFrame computes this frame's uniforms and draws.
func (v *Viewer) RenderFrame() FrameUniforms {
	u := ComputeFrame(v.camera, v.viewport, v.options.Projection)
	v.backend.DrawFrame(u)
	v.trackVisibility(u)
	v.last = u
	v.frames++
	return u
}

func (v *Viewer) trackVisibility(u FrameUniforms) {
	if v.options.ModelBounds == nil {
		return
	}
	visible := u.ModelVisible(*v.options.ModelBounds)
	if v.frames == 0 || visible != v.visible {
		v.log.Debug().Bool("visible", visible).Uint64("frame", v.frames).Msg("model visibility")
	}
	v.visible = visible
}

// ModelVisible reports whether the model was inside the view frustum on the
// last frame. Always false when Options.ModelBounds is nil.
func (v *Viewer) ModelVisible() bool {
	return v.visible
}

// LastFrame returns the uniforms of the most recent frame.
func (v *Viewer) LastFrame() FrameUniforms {
	return v.last
}

func (v *Viewer) Frames() uint64 {
	return v.frames
}

// FPS returns the frame count of the last completed one-second window.
func (v *Viewer) FPS() int {
	return v.currentFPS
}

// Run redraws continuously until the surface asks to close or ctx is done.
func (v *Viewer) Run(ctx context.Context, surface Surface) error {
	v.log.Info().
		Int("width", v.viewport.Width).
		Int("height", v.viewport.Height).
		Msg("starting render loop")

	v.fpsLastAt = v.now()
	for !surface.ShouldClose() {
		select {
		case <-ctx.Done():
			v.log.Info().Err(ctx.Err()).Uint64("frames", v.frames).Msg("render loop interrupted")
			return nil
		default:
		}

		surface.PollEvents()
		v.RenderFrame()
		surface.SwapBuffers()
		v.tickFPS(surface)
	}

	v.log.Info().Uint64("frames", v.frames).Msg("window closed")
	return nil
}

func (v *Viewer) tickFPS(surface Surface) {
	v.fpsFrames++
	now := v.now()
	if now.Sub(v.fpsLastAt) < time.Second {
		return
	}
	v.currentFPS = v.fpsFrames
	v.fpsFrames = 0
	v.fpsLastAt = now
	if v.options.ShowFPS {
		surface.SetTitle(fmt.Sprintf("%s - FPS: %d", v.options.Title, v.currentFPS))
	}
	v.log.Trace().Int("fps", v.currentFPS).Msg("frame rate")
}

// Close releases the backend's GPU resources. Safe to call twice.
func (v *Viewer) Close() {
	if v.closed {
		return
	}
	v.closed = true
	v.backend.Destroy()
}
