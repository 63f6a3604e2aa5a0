package triangle

import (
	"io"
	"log/slog"
)

// Option configures an App.
type Option func(*App)

// FrameObserver is called once per rendered frame, after the frame is
// drawn and before the buffers are swapped. frame counts from 1.
// Returning an error stops the loop and makes Run fail.
type FrameObserver func(frame int, d Device) error

// WithLogger sets the structured logger. The default writes text records
// at info level to stderr.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithOutput sets where the GL version line is printed. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		if w != nil {
			a.stdout = w
		}
	}
}

// WithShaderSources replaces the built-in shader sources.
// Trailing NUL terminators are optional and ignored.
func WithShaderSources(vertex, fragment string) Option {
	return func(a *App) {
		a.vertexSource = vertex
		a.fragmentSource = fragment
	}
}

// WithMaxFrames stops the loop after n frames. n <= 0 means no limit.
func WithMaxFrames(n int) Option {
	return func(a *App) { a.maxFrames = n }
}

// WithDrawCall issues the triangle draw call every frame.
//
// Off by default: the loop binds the program but never draws, and the
// window stays gray. Turning it on changes what ends up on screen.
func WithDrawCall(enabled bool) Option {
	return func(a *App) { a.drawCall = enabled }
}

// WithFrameObserver adds a per-frame callback.
func WithFrameObserver(fn FrameObserver) Option {
	return func(a *App) {
		if fn != nil {
			a.observers = append(a.observers, fn)
		}
	}
}

// WithHidden requests an invisible window.
func WithHidden(hidden bool) Option {
	return func(a *App) { a.hidden = hidden }
}
