// Command triangle opens a 1000x750 window, builds the fixed shader program,
// uploads one triangle and clears the window to gray until it is closed or
// escape is pressed.
//
// Building needs cgo and the OpenGL/X11 development headers:
//
//	go run ./cmd/triangle/
//
// Exit status is 0 on close or escape and -1 on any setup failure.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/triangle"
	"github.com/go-theft-auto/triangle/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	err := triangle.New(opengl.NewPlatform()).Run()
	if err != nil {
		fmt.Println(err)
	}
	os.Exit(triangle.ExitCode(err))
}
