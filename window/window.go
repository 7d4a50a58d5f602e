package window

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"orbit-viewer/core"
)

// GLFW and the GL context must stay on the main thread.
func init() {
	runtime.LockOSThread()
}

type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string

	onResize      func(width, height int)
	onMouseButton func(button core.MouseButton, action core.Action)
	onCursorMove  func(x, y float64)
}

type Config struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
	VSync     bool
}

func DefaultConfig() Config {
	return Config{
		Width:     800,
		Height:    600,
		Title:     "Modern OpenGL",
		Resizable: true,
		VSync:     false,
	}
}

// New creates the window, makes its OpenGL 3.3 core context current and
// installs the event callbacks. Handlers registered later with OnResize,
// OnMouseButton and OnCursorMove receive the events.
func New(config Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	handle.MakeContextCurrent()
	glfw.SwapInterval(boolToInt(config.VSync))

	// Framebuffer size differs from the window size on HiDPI displays.
	fbWidth, fbHeight := handle.GetFramebufferSize()

	window := &Window{
		Handle: handle,
		Width:  fbWidth,
		Height: fbHeight,
		Title:  config.Title,
	}

	handle.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		window.Width = width
		window.Height = height
		if window.onResize != nil {
			window.onResize(width, height)
		}
	})

	handle.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if window.onMouseButton != nil {
			window.onMouseButton(core.MouseButton(button), core.Action(action))
		}
	})

	handle.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		if window.onCursorMove != nil {
			window.onCursorMove(x, y)
		}
	})

	handle.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	return window, nil
}

func (w *Window) OnResize(fn func(width, height int)) {
	w.onResize = fn
}

func (w *Window) OnMouseButton(fn func(button core.MouseButton, action core.Action)) {
	w.onMouseButton = fn
}

func (w *Window) OnCursorMove(fn func(x, y float64)) {
	w.onCursorMove = fn
}

func (w *Window) Viewport() core.Viewport {
	return core.Viewport{Width: w.Width, Height: w.Height}
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

func (w *Window) SetTitle(title string) {
	w.Handle.SetTitle(title)
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
