package triangle

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// ClearRGBA returns ClearColor as 8-bit RGBA.
func ClearRGBA() color.RGBA {
	return toRGBA(ClearColor)
}

func toRGBA(c mgl32.Vec4) color.RGBA {
	ch := func(f float32) uint8 {
		f = mgl32.Clamp(f, 0, 1)
		return uint8(f*255 + 0.5)
	}
	return color.RGBA{R: ch(c[0]), G: ch(c[1]), B: ch(c[2]), A: ch(c[3])}
}

// Uniform reports whether every pixel of img is within tolerance of want
// on each channel. When it is not, the first mismatching point is returned.
func Uniform(img *image.RGBA, want color.RGBA, tolerance uint8) (bool, image.Point) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			got := img.RGBAAt(x, y)
			if !near(got.R, want.R, tolerance) || !near(got.G, want.G, tolerance) ||
				!near(got.B, want.B, tolerance) || !near(got.A, want.A, tolerance) {
				return false, image.Pt(x, y)
			}
		}
	}
	return true, image.Point{}
}

func near(a, b, tolerance uint8) bool {
	if a > b {
		return a-b <= tolerance
	}
	return b-a <= tolerance
}
