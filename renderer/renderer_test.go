package renderer

import (
	"context"
	"io"
	stdmath "math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbit-viewer/core"
	"orbit-viewer/math"
	"orbit-viewer/scene"
)

type fakeBackend struct {
	viewports [][2]int
	frames    []FrameUniforms
	destroyed int
}

func (b *fakeBackend) SetViewport(width, height int) {
	b.viewports = append(b.viewports, [2]int{width, height})
}

func (b *fakeBackend) DrawFrame(u FrameUniforms) {
	b.frames = append(b.frames, u)
}

func (b *fakeBackend) Destroy() {
	b.destroyed++
}

// fakeSurface closes after a fixed number of ShouldClose checks.
type fakeSurface struct {
	openFor int
	polls   int
	swaps   int
	titles  []string
	onPoll  func(n int)
}

func (s *fakeSurface) ShouldClose() bool {
	if s.openFor <= 0 {
		return true
	}
	s.openFor--
	return false
}

func (s *fakeSurface) PollEvents() {
	s.polls++
	if s.onPoll != nil {
		s.onPoll(s.polls)
	}
}

func (s *fakeSurface) SwapBuffers()          { s.swaps++ }
func (s *fakeSurface) SetTitle(title string) { s.titles = append(s.titles, title) }

func newTestViewer(t *testing.T) (*Viewer, *fakeBackend) {
	t.Helper()
	backend := &fakeBackend{}
	camera := scene.NewCameraController(scene.DefaultCameraSettings())
	v := NewViewer(backend, camera, core.Viewport{Width: 800, Height: 600}, DefaultOptions(), zerolog.New(io.Discard))
	return v, backend
}

func assertMatchesMGL(t *testing.T, ref mgl32.Mat4, m math.Mat4) {
	t.Helper()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.InDelta(t, ref[i*4+j], m[i][j], 1e-4, "element [%d][%d]", i, j)
		}
	}
}

func TestNewViewerSetsInitialViewport(t *testing.T) {
	_, backend := newTestViewer(t)
	assert.Equal(t, [][2]int{{800, 600}}, backend.viewports)
}

func TestInitialFrameMatchesReference(t *testing.T) {
	v, backend := newTestViewer(t)

	u := v.RenderFrame()
	require.Len(t, backend.frames, 1)
	assert.Equal(t, u, backend.frames[0])

	model := mgl32.HomogRotate3D(mgl32.DegToRad(45), mgl32.Vec3{0, 1, 0}).Mul4(mgl32.Scale3D(2, 2, 2))
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(45), 800.0/600.0, 0.1, 100)

	assertMatchesMGL(t, model, u.Model)
	assertMatchesMGL(t, view, u.View)
	assertMatchesMGL(t, proj, u.Projection)
	assertMatchesMGL(t, proj.Mul4(view).Mul4(model), u.MVP())
}

func TestFramesAreStableWithoutInput(t *testing.T) {
	v, backend := newTestViewer(t)

	for i := 0; i < 3; i++ {
		v.RenderFrame()
	}

	require.Len(t, backend.frames, 3)
	assert.Equal(t, backend.frames[0], backend.frames[1])
	assert.Equal(t, backend.frames[1], backend.frames[2])
	assert.Equal(t, uint64(3), v.Frames())
	assert.Equal(t, backend.frames[2], v.LastFrame())
}

func TestViewFollowsCameraState(t *testing.T) {
	v, _ := newTestViewer(t)
	camera := v.Camera()

	first := v.RenderFrame()

	camera.PressButton(core.MouseLeft)
	camera.Motion(0, 0)
	camera.Motion(30, -12)

	second := v.RenderFrame()
	assert.NotEqual(t, first.View, second.View)
	assert.Equal(t, first.Model, second.Model)
	assert.Equal(t, first.Projection, second.Projection)
	assert.Equal(t, camera.ViewMatrix(), second.View)

	// Holding state constant gives the same view again
	assert.Equal(t, second.View, v.RenderFrame().View)
}

func TestResizeUpdatesViewportAndAspect(t *testing.T) {
	v, backend := newTestViewer(t)

	v.Resize(1000, 250)

	assert.Equal(t, [2]int{1000, 250}, backend.viewports[len(backend.viewports)-1])
	assert.Equal(t, core.Viewport{Width: 1000, Height: 250}, v.Viewport())

	u := v.RenderFrame()
	assertMatchesMGL(t, mgl32.Perspective(mgl32.DegToRad(45), 4, 0.1, 100), u.Projection)
}

func TestResizeToZeroHeight(t *testing.T) {
	v, _ := newTestViewer(t)

	v.Resize(640, 0)
	u := v.RenderFrame()

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.False(t, stdmath.IsNaN(float64(u.Projection[i][j])), "NaN at [%d][%d]", i, j)
			assert.False(t, stdmath.IsInf(float64(u.Projection[i][j]), 0), "Inf at [%d][%d]", i, j)
		}
	}
}

func TestMinimisedViewportStaysFinite(t *testing.T) {
	backend := &fakeBackend{}
	camera := scene.NewCameraController(scene.DefaultCameraSettings())
	bounds := scene.NewModelMesh().LocalAABB
	opts := DefaultOptions()
	opts.ModelBounds = &bounds
	v := NewViewer(backend, camera, core.Viewport{Width: 800, Height: 600}, opts, zerolog.New(io.Discard))

	v.Resize(0, 0)
	u := v.RenderFrame()

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.False(t, stdmath.IsNaN(float64(u.Projection[i][j])), "NaN at [%d][%d]", i, j)
			assert.False(t, stdmath.IsInf(float64(u.Projection[i][j]), 0), "Inf at [%d][%d]", i, j)
		}
	}
	assert.True(t, v.ModelVisible())
}

func TestRunLoopsUntilClose(t *testing.T) {
	v, backend := newTestViewer(t)
	surface := &fakeSurface{openFor: 5}

	require.NoError(t, v.Run(context.Background(), surface))

	assert.Equal(t, 5, surface.polls)
	assert.Equal(t, 5, surface.swaps)
	assert.Len(t, backend.frames, 5)
}

func TestRunProcessesInputBeforeDrawing(t *testing.T) {
	v, backend := newTestViewer(t)
	camera := v.Camera()

	surface := &fakeSurface{openFor: 3}
	surface.onPoll = func(n int) {
		switch n {
		case 1:
			camera.PressButton(core.MouseLeft)
			camera.Motion(100, 100)
		case 2:
			camera.Motion(140, 100)
		}
	}

	require.NoError(t, v.Run(context.Background(), surface))
	require.Len(t, backend.frames, 3)

	assert.NotEqual(t, backend.frames[0].View, backend.frames[1].View)
	assert.Equal(t, backend.frames[1].View, backend.frames[2].View)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	v, backend := newTestViewer(t)
	ctx, cancel := context.WithCancel(context.Background())

	surface := &fakeSurface{openFor: 1000}
	surface.onPoll = func(n int) {
		if n == 2 {
			cancel()
		}
	}

	require.NoError(t, v.Run(ctx, surface))
	assert.Len(t, backend.frames, 2)
}

func TestRunUpdatesFPSTitle(t *testing.T) {
	v, _ := newTestViewer(t)

	clock := time.Unix(0, 0)
	v.now = func() time.Time {
		clock = clock.Add(250 * time.Millisecond)
		return clock
	}

	surface := &fakeSurface{openFor: 8}
	require.NoError(t, v.Run(context.Background(), surface))

	require.NotEmpty(t, surface.titles)
	assert.Equal(t, "Modern OpenGL - FPS: 4", surface.titles[0])
	assert.Equal(t, 4, v.FPS())
}

func TestRunWithoutFPSTitle(t *testing.T) {
	backend := &fakeBackend{}
	camera := scene.NewCameraController(scene.DefaultCameraSettings())
	opts := DefaultOptions()
	opts.ShowFPS = false
	v := NewViewer(backend, camera, core.Viewport{Width: 10, Height: 10}, opts, zerolog.New(io.Discard))

	clock := time.Unix(0, 0)
	v.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	surface := &fakeSurface{openFor: 3}
	require.NoError(t, v.Run(context.Background(), surface))
	assert.Empty(t, surface.titles)
	assert.Equal(t, 1, v.FPS())
}

func TestCloseDestroysOnce(t *testing.T) {
	v, backend := newTestViewer(t)

	v.Close()
	v.Close()

	assert.Equal(t, 1, backend.destroyed)
}

func TestModelVisibility(t *testing.T) {
	backend := &fakeBackend{}
	camera := scene.NewCameraController(scene.DefaultCameraSettings())
	bounds := scene.NewModelMesh().LocalAABB
	opts := DefaultOptions()
	opts.ModelBounds = &bounds
	v := NewViewer(backend, camera, core.Viewport{Width: 800, Height: 600}, opts, zerolog.New(io.Discard))

	v.RenderFrame()
	assert.True(t, v.ModelVisible(), "model should be in view at startup")

	// Eye well past the model, looking further away from it
	camera.Forward = math.Vec3{X: 0, Y: 0, Z: -20}
	camera.Position = math.Vec3{X: 0, Y: 0, Z: -40}
	v.RenderFrame()
	assert.False(t, v.ModelVisible())

	camera.Forward = math.Vec3{X: 0, Y: 0, Z: -20}
	camera.Position = math.Vec3Zero
	v.RenderFrame()
	assert.True(t, v.ModelVisible())
}

func TestModelVisibilityDisabled(t *testing.T) {
	v, _ := newTestViewer(t)
	v.RenderFrame()
	assert.False(t, v.ModelVisible())
}
