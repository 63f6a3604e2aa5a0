package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/triangle"
)

// Platform implements triangle.Platform with GLFW.
// GLFW must be driven from the main thread; callers lock it in init.
type Platform struct{}

// NewPlatform creates a GLFW platform.
func NewPlatform() *Platform {
	return &Platform{}
}

// Init initializes the GLFW library.
func (p *Platform) Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	return nil
}

// CreateWindow creates a window with a core-profile context and makes the
// context current.
func (p *Platform) CreateWindow(cfg triangle.WindowConfig) (triangle.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.True)
	}

	w, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	w.MakeContextCurrent()

	return &Window{window: w}, nil
}

// Terminate releases every remaining GLFW resource.
func (p *Platform) Terminate() {
	glfw.Terminate()
}

// Window adapts a GLFW window to triangle.Window.
type Window struct {
	window *glfw.Window
}

// ShouldClose reports whether the window system requested a close.
func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

// KeyPressed reports whether key is currently held down.
func (w *Window) KeyPressed(key triangle.Key) bool {
	k, ok := glfwKey(key)
	if !ok {
		return false
	}
	return w.window.GetKey(k) == glfw.Press
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

// PollEvents processes pending window system events.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Device loads OpenGL function pointers for the current context.
func (w *Window) Device() (triangle.Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	return &Device{}, nil
}

// Destroy destroys the window and its context.
func (w *Window) Destroy() {
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
}

// glfwKey maps a triangle key to the GLFW key.
func glfwKey(key triangle.Key) (glfw.Key, bool) {
	switch key {
	case triangle.KeyEscape:
		return glfw.KeyEscape, true
	default:
		return glfw.KeyUnknown, false
	}
}
