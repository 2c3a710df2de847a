// Package opengl provides an OpenGL 4.1 backend for the dui package.
package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/debugtools/dui"
)

// Renderer implements dui.Renderer over OpenGL. Offscreen surfaces are
// framebuffer objects with a texture color attachment; the window is
// framebuffer zero.
type Renderer struct {
	shader     uint32
	vao, vbo   uint32
	projLoc    int32
	texLoc     int32
	useTexLoc  int32
	isRGBALoc  int32
	colorLoc   int32
	fontTex    uint32
	fontTexW   float32
	fontTexH   float32
	width      int
	height     int
	surfaces   map[dui.SurfaceID]*surface
	nextID     dui.SurfaceID
	target     dui.SurfaceID
	scratch    [24]float32
}

type surface struct {
	fbo, tex uint32
	w, h     int
}

// Vertex shader source
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;

out vec2 TexCoord;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
}
` + "\x00"

// Fragment shader source
// Supports two texture modes:
// - Alpha-only (R-channel): the built-in bitmap font
// - RGBA: panel surface textures composited during PanelEnd
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;

out vec4 FragColor;

uniform sampler2D tex;
uniform bool useTexture;
uniform bool isRGBATexture;
uniform vec4 drawColor;

void main() {
    if (useTexture) {
        vec4 texColor = texture(tex, TexCoord);
        if (isRGBATexture) {
            FragColor = texColor * drawColor;
        } else {
            // Alpha-only font: R channel is alpha, drawColor supplies RGB
            FragColor = vec4(drawColor.rgb, drawColor.a * texColor.r);
        }
    } else {
        FragColor = drawColor;
    }
}
` + "\x00"

// NewRenderer creates an OpenGL renderer for a window of the given pixel
// size. An OpenGL 4.1 context must be current.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:    width,
		height:   height,
		surfaces: make(map[dui.SurfaceID]*surface),
		nextID:   1,
	}

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("tex\x00"))
	r.useTexLoc = gl.GetUniformLocation(r.shader, gl.Str("useTexture\x00"))
	r.isRGBALoc = gl.GetUniformLocation(r.shader, gl.Str("isRGBATexture\x00"))
	r.colorLoc = gl.GetUniformLocation(r.shader, gl.Str("drawColor\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// Vertex layout: Pos (2 floats) + TexCoord (2 floats)
	stride := int32(4 * 4)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 8)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	r.fontTex = createFontTexture()
	r.fontTexW = 128
	r.fontTexH = 48

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	return r, nil
}

// Size returns the window size in pixels.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Resize updates the window size. Surfaces keep their original size;
// recreate the dui.Context to match a resized window.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// CreateSurface implements dui.Renderer.
func (r *Renderer) CreateSurface(width, height int) (dui.SurfaceID, error) {
	s := &surface{w: width, h: height}

	gl.GenTextures(1, &s.tex)
	gl.BindTexture(gl.TEXTURE_2D, s.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenFramebuffers(1, &s.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, s.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, s.tex, 0)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		gl.DeleteFramebuffers(1, &s.fbo)
		gl.DeleteTextures(1, &s.tex)
		return 0, fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}

	id := r.nextID
	r.nextID++
	r.surfaces[id] = s
	return id, nil
}

// DestroySurface implements dui.Renderer.
func (r *Renderer) DestroySurface(id dui.SurfaceID) {
	s, ok := r.surfaces[id]
	if !ok {
		return
	}
	gl.DeleteFramebuffers(1, &s.fbo)
	gl.DeleteTextures(1, &s.tex)
	delete(r.surfaces, id)
}

// SetTarget implements dui.Renderer.
func (r *Renderer) SetTarget(id dui.SurfaceID) {
	r.target = id
	if s, ok := r.surfaces[id]; ok {
		gl.BindFramebuffer(gl.FRAMEBUFFER, s.fbo)
		gl.Viewport(0, 0, int32(s.w), int32(s.h))
		return
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(r.width), int32(r.height))
}

// Clear implements dui.Renderer.
func (r *Renderer) Clear(color uint32) {
	cr, cg, cb, ca := unpackf(color)
	gl.ClearColor(cr, cg, cb, ca)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// FillRect implements dui.Renderer.
func (r *Renderer) FillRect(rect dui.Rect, color uint32) {
	v := r.scratch[:24]
	quad(v, rect.X, rect.Y, rect.W, rect.H, 0, 0, 0, 0)
	r.draw(gl.TRIANGLES, 6, v, color, 0, false)
}

// StrokeRect implements dui.Renderer.
func (r *Renderer) StrokeRect(rect dui.Rect, color uint32) {
	// Offset to pixel centers so single-pixel lines land where expected.
	x0, y0 := rect.X+0.5, rect.Y+0.5
	x1, y1 := rect.X+rect.W-0.5, rect.Y+rect.H-0.5
	v := r.scratch[:16]
	copy(v, []float32{
		x0, y0, 0, 0,
		x1, y0, 0, 0,
		x1, y1, 0, 0,
		x0, y1, 0, 0,
	})
	r.draw(gl.LINE_LOOP, 4, v, color, 0, false)
}

// DrawGlyph implements dui.Renderer.
func (r *Renderer) DrawGlyph(src, dst dui.Rect, color uint32) {
	u0 := src.X / r.fontTexW
	v0 := src.Y / r.fontTexH
	u1 := (src.X + src.W) / r.fontTexW
	v1 := (src.Y + src.H) / r.fontTexH

	v := r.scratch[:24]
	quad(v, dst.X, dst.Y, dst.W, dst.H, u0, v0, u1, v1)
	r.draw(gl.TRIANGLES, 6, v, color, r.fontTex, false)
}

// Composite implements dui.Renderer. The surface texture rows are bottom-up
// in GL convention, so the quad samples with V flipped.
func (r *Renderer) Composite(id dui.SurfaceID) {
	s, ok := r.surfaces[id]
	if !ok {
		return
	}

	v := r.scratch[:24]
	quad(v, 0, 0, float32(s.w), float32(s.h), 0, 1, 1, 0)
	r.draw(gl.TRIANGLES, 6, v, dui.ColorWhite, s.tex, true)
}

// Flush implements dui.Renderer. Presentation happens in Window.Swap.
func (r *Renderer) Flush() {
	gl.Flush()
}

// Delete releases all OpenGL resources.
func (r *Renderer) Delete() {
	for id := range r.surfaces {
		r.DestroySurface(id)
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

// draw uploads verts and issues one draw call with the current target's
// projection.
func (r *Renderer) draw(mode uint32, count int32, verts []float32, color uint32, tex uint32, isRGBA bool) {
	gl.UseProgram(r.shader)

	w, h := r.width, r.height
	if s, ok := r.surfaces[r.target]; ok {
		w, h = s.w, s.h
	}
	proj := orthoMatrix(0, float32(w), float32(h), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	cr, cg, cb, ca := unpackf(color)
	gl.Uniform4f(r.colorLoc, cr, cg, cb, ca)

	if tex != 0 {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, tex)
		gl.Uniform1i(r.texLoc, 0)
		gl.Uniform1i(r.useTexLoc, 1)
		if isRGBA {
			gl.Uniform1i(r.isRGBALoc, 1)
		} else {
			gl.Uniform1i(r.isRGBALoc, 0)
		}
	} else {
		gl.Uniform1i(r.useTexLoc, 0)
	}

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STREAM_DRAW)
	gl.DrawArrays(mode, 0, count)
	gl.BindVertexArray(0)
}

// quad fills v with two triangles covering the rectangle, with the given
// texture coordinates at the corners.
func quad(v []float32, x, y, w, h, u0, v0, u1, v1 float32) {
	copy(v, []float32{
		x, y, u0, v0,
		x + w, y, u1, v0,
		x + w, y + h, u1, v1,

		x, y, u0, v0,
		x + w, y + h, u1, v1,
		x, y + h, u0, v1,
	})
}

// unpackf converts a packed RGBA color to normalized floats.
func unpackf(c uint32) (r, g, b, a float32) {
	cr, cg, cb, ca := dui.UnpackRGBA(c)
	return float32(cr) / 255, float32(cg) / 255, float32(cb) / 255, float32(ca) / 255
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader := gl.CreateShader(gl.VERTEX_SHADER)
	csource, free := gl.Strs(vertexSource)
	gl.ShaderSource(vertexShader, 1, csource, nil)
	free()
	gl.CompileShader(vertexShader)

	var status int32
	gl.GetShaderiv(vertexShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(vertexShader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(vertexShader, logLength, nil, &log[0])
		return 0, fmt.Errorf("vertex shader compilation failed: %s", string(log))
	}

	fragmentShader := gl.CreateShader(gl.FRAGMENT_SHADER)
	csource, free = gl.Strs(fragmentSource)
	gl.ShaderSource(fragmentShader, 1, csource, nil)
	free()
	gl.CompileShader(fragmentShader)

	gl.GetShaderiv(fragmentShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(fragmentShader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(fragmentShader, logLength, nil, &log[0])
		return 0, fmt.Errorf("fragment shader compilation failed: %s", string(log))
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
