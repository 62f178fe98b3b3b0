// Package gl wraps the windowing and OpenGL APIs used by the viewer.
package gl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/seqsense/partviewer/input"
)

// Window is a glfw window with a current OpenGL 4.1 core context.
// All methods must be called from the main thread.
type Window struct {
	w        *glfw.Window
	bindings Bindings
}

// NewWindow initializes glfw, opens a window and loads the GL functions.
// The cursor is captured so that pointer motion is unbounded.
func NewWindow(width, height int, title string, bindings Bindings) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initializing glfw: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	w, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("creating window: %w", err)
	}
	w.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		w.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}
	glfw.SwapInterval(1)
	w.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})
	fw, fh := w.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fw), int32(fh))
	gl.Enable(gl.DEPTH_TEST)

	return &Window{w: w, bindings: bindings}, nil
}

// Keys returns the pressed state of all bound actions.
func (w *Window) Keys() input.Keys {
	var k input.Keys
	for a, key := range w.bindings {
		if w.w.GetKey(key) == glfw.Press {
			k.Press(a)
		}
	}
	return k
}

func (w *Window) FramebufferSize() (int, int) {
	return w.w.GetFramebufferSize()
}

func (w *Window) SetShouldClose(v bool) {
	w.w.SetShouldClose(v)
}

func (w *Window) ShouldClose() bool {
	return w.w.ShouldClose()
}

// OnCursorPos registers a callback receiving absolute cursor positions.
// It is called from PollEvents.
func (w *Window) OnCursorPos(cb func(x, y float64)) {
	w.w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		cb(x, y)
	})
}

// OnFocus registers a callback called when the window gains or loses
// input focus.
func (w *Window) OnFocus(cb func(focused bool)) {
	w.w.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		cb(focused)
	})
}

// SwapBuffers presents the frame and processes pending events.
func (w *Window) SwapBuffers() {
	w.w.SwapBuffers()
	glfw.PollEvents()
}

// Time returns seconds since glfw was initialized.
func Time() float64 {
	return glfw.GetTime()
}

func (w *Window) Destroy() {
	w.w.Destroy()
	glfw.Terminate()
}

func Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}
