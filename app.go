package triangle

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

// Platform is the windowing system: library lifetime and window creation.
type Platform interface {
	Init() error
	CreateWindow(cfg WindowConfig) (Window, error)
	Terminate()
}

// WindowConfig describes the window and the GL context it carries.
type WindowConfig struct {
	Width, Height    int
	Title            string
	GLMajor, GLMinor int
	Hidden           bool
}

// Window is a window whose GL context is current on the calling thread.
type Window interface {
	ShouldClose() bool
	KeyPressed(key Key) bool
	SwapBuffers()
	PollEvents()
	// Device loads GL function pointers for the window's context.
	Device() (Device, error)
	Destroy()
}

// Device issues GPU commands against the current context.
type Device interface {
	Version() string
	Viewport(x, y, width, height int)
	BuildProgram(vertexSource, fragmentSource string) (Program, error)
	UploadGeometry(g Geometry) (Mesh, error)
	Clear(color mgl32.Vec4)
	UseProgram(p Program)
	Draw(m Mesh)
	ReadPixels(width, height int) (*image.RGBA, error)
	DeleteProgram(p Program)
	DeleteMesh(m Mesh)
}

// App runs the setup-then-loop program against a Platform.
type App struct {
	platform Platform
	logger   *slog.Logger
	stdout   io.Writer

	vertexSource   string
	fragmentSource string
	maxFrames      int
	drawCall       bool
	hidden         bool
	observers      []FrameObserver

	loop loop
}

// New creates an App with the fixed window, shaders and geometry.
func New(platform Platform, opts ...Option) *App {
	a := &App{
		platform:       platform,
		logger:         slog.New(slog.NewTextHandler(os.Stderr, nil)),
		stdout:         os.Stdout,
		vertexSource:   VertexShaderSource,
		fragmentSource: FragmentShaderSource,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Run initializes the platform, builds the program, uploads the triangle
// and loops until the window closes or escape is pressed.
// Everything acquired is released before Run returns, on every path.
// Use ExitCode to turn the result into a process exit code.
func (a *App) Run() error {
	a.loop = loop{}

	if err := a.platform.Init(); err != nil {
		return fmt.Errorf("%w: %w", ErrPlatformInit, err)
	}
	defer a.platform.Terminate()

	window, err := a.platform.CreateWindow(a.windowConfig())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWindowCreate, err)
	}
	defer window.Destroy()
	a.logger.Debug("window created", "width", WindowWidth, "height", WindowHeight, "title", WindowTitle)

	device, err := window.Device()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoader, err)
	}
	fmt.Fprintln(a.stdout, device.Version())
	device.Viewport(0, 0, WindowWidth, WindowHeight)

	program, err := device.BuildProgram(a.vertexSource, a.fragmentSource)
	if err != nil {
		return fmt.Errorf("build shader program: %w", err)
	}
	defer device.DeleteProgram(program)
	a.logger.Debug("shader program linked", "program", uint32(program))

	mesh, err := device.UploadGeometry(Triangle())
	if err != nil {
		return fmt.Errorf("upload geometry: %w", err)
	}
	defer device.DeleteMesh(mesh)
	a.logger.Debug("geometry uploaded", "vertices", mesh.Count)

	for a.loop.running() {
		if err := a.frame(window, device, program, mesh); err != nil {
			a.logger.Error("frame failed", "frame", a.loop.frames, "err", err)
			return err
		}
	}

	a.logger.Info("closing", "frames", a.loop.frames, "reason", a.loop.reason.String())
	return nil
}

// frame runs one loop iteration.
func (a *App) frame(window Window, device Device, program Program, mesh Mesh) error {
	if window.ShouldClose() {
		a.loop.close(CloseRequested)
		return nil
	}
	// Escape ends the loop before anything of this frame is rendered.
	if window.KeyPressed(KeyEscape) {
		a.loop.close(CloseEscape)
		return nil
	}

	device.Clear(ClearColor)
	device.UseProgram(program)
	if a.drawCall {
		device.Draw(mesh)
	}
	a.loop.frames++

	for _, observe := range a.observers {
		if err := observe(a.loop.frames, device); err != nil {
			a.loop.close(CloseError)
			return fmt.Errorf("frame %d: %w", a.loop.frames, err)
		}
	}

	window.SwapBuffers()
	window.PollEvents()

	if a.maxFrames > 0 && a.loop.frames >= a.maxFrames {
		a.loop.close(CloseFrameLimit)
	}
	return nil
}

func (a *App) windowConfig() WindowConfig {
	return WindowConfig{
		Width:   WindowWidth,
		Height:  WindowHeight,
		Title:   WindowTitle,
		GLMajor: GLMajor,
		GLMinor: GLMinor,
		Hidden:  a.hidden,
	}
}

// State returns the loop state.
func (a *App) State() LoopState {
	return a.loop.state
}

// Reason returns why the loop closed, or CloseNone while running.
func (a *App) Reason() CloseReason {
	return a.loop.reason
}

// Frames returns the number of frames rendered by the last Run.
func (a *App) Frames() int {
	return a.loop.frames
}
