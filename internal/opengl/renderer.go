package opengl

import (
	"fmt"
	"log/slog"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"sculpt-editor/core"
	"sculpt-editor/math"
	"sculpt-editor/winged"
)

// Renderer draws the sculpted mesh as a wireframe together with the brush
// cursor.
type Renderer struct {
	program  uint32
	mvpLoc   int32
	colorLoc int32

	mesh   buffers
	cursor buffers
	lines  buffers

	viewportW int32
	viewportH int32
}

// buffers is one vertex array with a position buffer and an optional index
// buffer.
type buffers struct {
	VAO uint32
	VBO uint32
	EBO uint32
}

const vertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;

uniform mat4 mvp;

void main() {
    gl_Position = mvp * vec4(inPosition, 1.0);
}
` + "\x00"

const fragSrc = `
#version 410 core
uniform vec4 color;
out vec4 outColor;

void main() {
    outColor = color;
}
` + "\x00"

// NewRenderer initialises OpenGL.
// Must be called after the GLFW window context is made current.
func NewRenderer(logger *slog.Logger) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	prog, err := newProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, fmt.Errorf("wireframe shader compile: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)

	r := &Renderer{
		program:  prog,
		mvpLoc:   gl.GetUniformLocation(prog, gl.Str("mvp\x00")),
		colorLoc: gl.GetUniformLocation(prog, gl.Str("color\x00")),
	}
	r.mesh = newBuffers(true)
	r.cursor = newBuffers(false)
	r.lines = newBuffers(false)
	return r, nil
}

func newBuffers(indexed bool) buffers {
	var b buffers
	gl.GenVertexArrays(1, &b.VAO)
	gl.GenBuffers(1, &b.VBO)
	gl.BindVertexArray(b.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, b.VBO)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, int32(unsafe.Sizeof(math.Vec3{})), gl.PtrOffset(0))

	if indexed {
		gl.GenBuffers(1, &b.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.EBO)
	}
	gl.BindVertexArray(0)
	return b
}

func (b buffers) destroy() {
	gl.DeleteVertexArrays(1, &b.VAO)
	gl.DeleteBuffers(1, &b.VBO)
	if b.EBO != 0 {
		gl.DeleteBuffers(1, &b.EBO)
	}
}

// SetViewport resizes the OpenGL viewport.
func (r *Renderer) SetViewport(width, height int) {
	r.viewportW = int32(width)
	r.viewportH = int32(height)
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (r *Renderer) Clear(c core.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *Renderer) use(viewProj math.Mat4, c core.Color) {
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.mvpLoc, 1, false, (*float32)(unsafe.Pointer(&viewProj[0][0])))
	gl.Uniform4f(r.colorLoc, c.R, c.G, c.B, c.A)
}

// DrawMesh uploads the current buffers of m and draws its triangles as lines.
// The buffers are streamed every frame because sculpting rewrites them.
func (r *Renderer) DrawMesh(m *winged.Mesh, viewProj math.Mat4, c core.Color) {
	positions, indices := m.Positions(), m.Indices()
	if len(positions) == 0 || len(indices) == 0 {
		return
	}

	gl.BindVertexArray(r.mesh.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.mesh.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*int(unsafe.Sizeof(math.Vec3{})), gl.Ptr(positions), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.mesh.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STREAM_DRAW)

	r.use(viewProj, c)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	gl.DrawElements(gl.TRIANGLES, int32(len(indices)), gl.UNSIGNED_INT, nil)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.BindVertexArray(0)
}

// DrawCursor draws the brush outline as a circle lying on the surface.
func (r *Renderer) DrawCursor(center, normal math.Vec3, radius float32, viewProj math.Mat4, c core.Color) {
	points := Circle(center, normal, radius, cursorSegments)

	gl.BindVertexArray(r.cursor.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cursor.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(points)*int(unsafe.Sizeof(math.Vec3{})), gl.Ptr(points), gl.STREAM_DRAW)

	r.use(viewProj, c)
	gl.DrawArrays(gl.LINE_LOOP, 0, int32(len(points)))
	gl.BindVertexArray(0)
}

// DrawGrid draws a reference grid.
func (r *Renderer) DrawGrid(g GridLines, viewProj math.Mat4) {
	r.drawLines(g.Lines, viewProj, g.Colors.Lines)
	r.drawLines(g.XAxis[:], viewProj, g.Colors.XAxis)
	r.drawLines(g.ZAxis[:], viewProj, g.Colors.ZAxis)
}

func (r *Renderer) drawLines(points []math.Vec3, viewProj math.Mat4, c core.Color) {
	if len(points) < 2 {
		return
	}
	gl.BindVertexArray(r.lines.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lines.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(points)*int(unsafe.Sizeof(math.Vec3{})), gl.Ptr(points), gl.STREAM_DRAW)

	r.use(viewProj, c)
	gl.DrawArrays(gl.LINES, 0, int32(len(points)))
	gl.BindVertexArray(0)
}

// Destroy releases all GPU resources.
func (r *Renderer) Destroy() {
	r.mesh.destroy()
	r.cursor.destroy()
	r.lines.destroy()
	gl.DeleteProgram(r.program)
}

// ── Shader helpers ────────────────────────────────────────────────────────────

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %v", log)
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
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
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}
