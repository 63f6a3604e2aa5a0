// Package opengl implements the triangle platform with GLFW and OpenGL 3.3 core.
package opengl

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/triangle"
)

// Device implements triangle.Device on the current OpenGL context.
type Device struct{}

// Version returns the GL_VERSION string.
func (d *Device) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Viewport sets the viewport rectangle.
func (d *Device) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// BuildProgram compiles both stages and links them.
// The shader objects are deleted before returning, whatever the outcome.
func (d *Device) BuildProgram(vertexSource, fragmentSource string) (triangle.Program, error) {
	program, err := createShaderProgram(vertexSource, fragmentSource)
	if err != nil {
		return 0, err
	}
	return triangle.Program(program), nil
}

// UploadGeometry copies g into a new static buffer and describes it as
// attribute 0: Components floats, not normalized, tightly packed.
func (d *Device) UploadGeometry(g triangle.Geometry) (triangle.Mesh, error) {
	data := g.Floats()
	if len(data) == 0 {
		return triangle.Mesh{}, fmt.Errorf("empty geometry")
	}

	var m triangle.Mesh
	m.Count = g.Count()

	// Core profile needs a bound VAO to record the attribute layout.
	gl.GenVertexArrays(1, &m.VAO)
	gl.BindVertexArray(m.VAO)

	gl.GenBuffers(1, &m.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, g.Size(), gl.Ptr(data), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, g.Components(), gl.FLOAT, false, g.Stride(), 0)
	gl.EnableVertexAttribArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		d.DeleteMesh(m)
		return triangle.Mesh{}, fmt.Errorf("vertex upload: gl error 0x%x", code)
	}

	return m, nil
}

// Clear clears the color buffer.
func (d *Device) Clear(c mgl32.Vec4) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// UseProgram makes p the current program.
func (d *Device) UseProgram(p triangle.Program) {
	gl.UseProgram(uint32(p))
}

// Draw draws m as triangles with the current program.
func (d *Device) Draw(m triangle.Mesh) {
	gl.BindVertexArray(m.VAO)
	gl.DrawArrays(gl.TRIANGLES, 0, m.Count)
}

// ReadPixels reads the back buffer into an image with a top-left origin.
func (d *Device) ReadPixels(width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid read size %dx%d", width, height)
	}

	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	if code := gl.GetError(); code != gl.NO_ERROR {
		return nil, fmt.Errorf("read pixels: gl error 0x%x", code)
	}

	// OpenGL origin is bottom-left
	flipRows(pixels, width*4, height)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)
	return img, nil
}

// DeleteProgram releases p.
func (d *Device) DeleteProgram(p triangle.Program) {
	if p != 0 {
		gl.DeleteProgram(uint32(p))
	}
}

// DeleteMesh releases the buffer and vertex array of m.
func (d *Device) DeleteMesh(m triangle.Mesh) {
	if m.VBO != 0 {
		gl.DeleteBuffers(1, &m.VBO)
	}
	if m.VAO != 0 {
		gl.DeleteVertexArrays(1, &m.VAO)
	}
}

// flipRows reverses the row order of a tightly packed pixel buffer in place.
func flipRows(pixels []byte, rowLen, rows int) {
	tmp := make([]byte, rowLen)
	for y := 0; y < rows/2; y++ {
		top := y * rowLen
		bot := (rows - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}
}
