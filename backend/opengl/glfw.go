package opengl

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/debugtools/dui"
)

func init() {
	// GLFW event handling must run on the main thread.
	runtime.LockOSThread()
}

// Window wraps a GLFW window with an OpenGL 4.1 context and per-frame
// pointer sampling for the UI.
type Window struct {
	window *glfw.Window
	input  dui.Input
}

// NewWindow initializes GLFW, opens a window, and makes its OpenGL
// context current. Call Close when done.
func NewWindow(title string, width, height int) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	return &Window{window: window}, nil
}

// PollInput pumps GLFW events and samples the pointer once, producing the
// input snapshot for this frame.
func (w *Window) PollInput() dui.Input {
	glfw.PollEvents()

	x, y := w.window.GetCursorPos()
	down := w.window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press
	w.input.Sample(float32(x), float32(y), down)

	return w.input
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

// Swap presents the frame.
func (w *Window) Swap() {
	w.window.SwapBuffers()
}

// Size returns the framebuffer size in pixels.
func (w *Window) Size() (int, int) {
	return w.window.GetFramebufferSize()
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.window.Destroy()
	glfw.Terminate()
}
