// Command gen runs the program in a hidden window for a few frames, reads
// back the framebuffer and saves JPEG captures to doc/imgs/.
//
// The default capture must be uniformly gray: the loop binds its program
// but issues no draw call. A second capture enables the draw call to show
// what the triangle would look like.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-theft-auto/triangle"
	"github.com/go-theft-auto/triangle/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// capture defines a single framebuffer capture.
type capture struct {
	name    string // filename without extension
	draw    bool   // issue the triangle draw call
	uniform bool   // every pixel must be the clear color
}

// captureFrames is how many frames render before the readback.
const captureFrames = 2

func run() error {
	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	captures := []capture{
		{name: "clear_only", uniform: true},
		{name: "with_draw_call", draw: true},
	}

	for _, c := range captures {
		if err := take(c, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", c.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", c.name, triangle.WindowWidth, triangle.WindowHeight)
	}

	fmt.Printf("\nGenerated %d captures in %s/\n", len(captures), outDir)
	return nil
}

func take(c capture, outDir string) error {
	var img *image.RGBA
	app := triangle.New(opengl.NewPlatform(),
		triangle.WithHidden(true),
		triangle.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))),
		triangle.WithOutput(io.Discard),
		triangle.WithMaxFrames(captureFrames),
		triangle.WithDrawCall(c.draw),
		triangle.WithFrameObserver(func(frame int, d triangle.Device) error {
			if frame < captureFrames {
				return nil
			}
			var err error
			img, err = d.ReadPixels(triangle.WindowWidth, triangle.WindowHeight)
			return err
		}),
	)
	if err := app.Run(); err != nil {
		return err
	}
	if img == nil {
		return fmt.Errorf("no frame captured")
	}

	if c.uniform {
		if ok, at := triangle.Uniform(img, triangle.ClearRGBA(), 1); !ok {
			return fmt.Errorf("pixel %v is %v, want clear color %v", at, img.RGBAAt(at.X, at.Y), triangle.ClearRGBA())
		}
	}

	return writeJPEG(filepath.Join(outDir, c.name+".jpg"), img)
}

// writeJPEG encodes img to path and reports close errors too.
func writeJPEG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
