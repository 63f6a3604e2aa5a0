/*
Package triangle opens a window, builds a fixed shader program, uploads a
single hard-coded triangle to the GPU and runs a clear/swap loop until the
window is closed or escape is pressed.

# Overview

The package holds everything that does not need a GPU: the vertex data,
the shader sources, the render loop state machine, the error taxonomy and
its exit codes. The platform itself (GLFW window, OpenGL calls) sits behind
three small interfaces, [Platform], [Window] and [Device], implemented by
the backend/opengl package.

# Quick Start

	func init() {
	    runtime.LockOSThread()
	}

	func main() {
	    app := triangle.New(opengl.NewPlatform())
	    err := app.Run()
	    if err != nil {
	        fmt.Println(err)
	    }
	    os.Exit(triangle.ExitCode(err))
	}

# Render Loop

The loop has two states, [StateRunning] and [StateClosing]. Every
iteration while running:

	poll input (escape?)    -> StateClosing, CloseEscape
	clear to ClearColor
	use the shader program
	swap buffers
	poll window events      -> StateClosing, CloseRequested on next check

No draw call is issued unless [WithDrawCall] is set, so the window stays
uniformly gray.

Teardown runs on every exit path, escape included: the mesh, the program,
the window and finally the GLFW library are released in reverse order.

# Exit Codes

	0   window closed normally, or escape pressed
	-1  platform init, window creation, GL loader, shader compile or link failure

Use [ExitCode] to map the error returned by [App.Run].
*/
package triangle
