package opengl

import (
	"errors"
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/rs/zerolog"

	"orbit-viewer/core"
	"orbit-viewer/renderer"
	"orbit-viewer/scene"
)

var (
	ErrShaderCompile = errors.New("shader compile failed")
	ErrShaderLink    = errors.New("shader link failed")
)

// Renderer is the OpenGL backend: one program, one VAO/VBO pair holding
// the model, drawn as plain triangles.
type Renderer struct {
	program uint32
	vao     uint32
	vbo     uint32

	modelLoc      int32
	viewLoc       int32
	projectionLoc int32

	vertexCount int32
	clearColor  core.Color
	log         zerolog.Logger
}

// NewRenderer initialises OpenGL, builds the shader program and uploads
// the mesh. Must be called after the window's context is made current.
func NewRenderer(mesh *scene.Mesh, clearColor core.Color, logger zerolog.Logger) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info().
		Str("version", gl.GoStr(gl.GetString(gl.VERSION))).
		Str("renderer", gl.GoStr(gl.GetString(gl.RENDERER))).
		Msg("OpenGL initialized")

	prog, err := newProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		program:    prog,
		clearColor: clearColor,
		log:        logger,
	}
	r.modelLoc = r.uniform(uniformModel)
	r.viewLoc = r.uniform(uniformView)
	r.projectionLoc = r.uniform(uniformProjection)

	r.upload(mesh)

	gl.Enable(gl.DEPTH_TEST)
	gl.UseProgram(r.program)
	gl.ClearColor(clearColor.R, clearColor.G, clearColor.B, clearColor.A)

	return r, nil
}

// SetViewport resizes the OpenGL viewport.
func (r *Renderer) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// DrawFrame clears, uploads the three matrices and draws the model.
func (r *Renderer) DrawFrame(u renderer.FrameUniforms) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)
	gl.BindVertexArray(r.vao)

	// Mat4 is column-major, pass directly (transpose=false).
	gl.UniformMatrix4fv(r.modelLoc, 1, false, u.Model.Ptr())
	gl.UniformMatrix4fv(r.viewLoc, 1, false, u.View.Ptr())
	gl.UniformMatrix4fv(r.projectionLoc, 1, false, u.Projection.Ptr())

	gl.DrawArrays(gl.TRIANGLES, 0, r.vertexCount)

	gl.BindVertexArray(0)
}

// Destroy releases the buffers and the program.
func (r *Renderer) Destroy() {
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteProgram(r.program)
	r.log.Debug().Msg("GPU resources released")
}

func (r *Renderer) uniform(name string) int32 {
	loc := gl.GetUniformLocation(r.program, gl.Str(cString(name)))
	if loc < 0 {
		r.log.Warn().Str("uniform", name).Msg("uniform not found in program")
	}
	return loc
}

// upload creates the VAO/VBO pair and describes the interleaved layout.
func (r *Renderer) upload(mesh *scene.Mesh) {
	r.vertexCount = int32(mesh.VertexCount())

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER,
		mesh.VertexCount()*core.VertexStride,
		gl.Ptr(mesh.Vertices),
		gl.STATIC_DRAW)

	// location 0: position (vec3)
	gl.VertexAttribPointer(positionLocation, 3, gl.FLOAT, false, core.VertexStride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(positionLocation)

	// location 1: colour (vec3)
	gl.VertexAttribPointer(colorLocation, 3, gl.FLOAT, false, core.VertexStride, gl.PtrOffset(core.VertexColorOffset))
	gl.EnableVertexAttribArray(colorLocation)

	gl.BindVertexArray(0)

	r.log.Debug().
		Str("mesh", mesh.Name).
		Int("vertices", mesh.VertexCount()).
		Int("triangles", mesh.TriangleCount()).
		Msg("mesh uploaded")
}

// ── shader helpers ────────────────────────────────────────────────────────────

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vert)
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("%w: %s", ErrShaderLink, trimInfoLog(log))
	}

	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(cString(src))
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%w: %s", ErrShaderCompile, trimInfoLog(log))
	}
	return shader, nil
}

// cString appends the NUL terminator the gl string helpers require.
func cString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// trimInfoLog drops the NUL padding and trailing whitespace from a GL info log.
func trimInfoLog(log string) string {
	if i := strings.IndexByte(log, 0); i >= 0 {
		log = log[:i]
	}
	return strings.TrimSpace(log)
}

var _ renderer.Backend = (*Renderer)(nil)
