package triangle

import "github.com/go-gl/mathgl/mgl32"

// Window and context parameters. These are compiled in; nothing reads them
// from flags, files or the environment.
const (
	WindowWidth  = 1000
	WindowHeight = 750
	WindowTitle  = "CUDA pending..."

	GLMajor = 3
	GLMinor = 3
)

// ClearColor is the gray every frame is cleared to.
var ClearColor = mgl32.Vec4{0.5, 0.5, 0.5, 1.0}

// triangleVertices is the canonical vertex data. Never hand this slice out.
var triangleVertices = [3]mgl32.Vec3{
	{-0.5, -0.5, 0.0},
	{0.5, -0.5, 0.0},
	{0.0, 0.5, 0.0},
}

// Geometry is vertex position data for a single attribute slot.
// Memory layout of Floats matches a tightly packed vec3 attribute.
type Geometry struct {
	Vertices []mgl32.Vec3
}

// Triangle returns a fresh copy of the fixed triangle.
func Triangle() Geometry {
	v := make([]mgl32.Vec3, len(triangleVertices))
	copy(v, triangleVertices[:])
	return Geometry{Vertices: v}
}

// Floats flattens the vertices into x, y, z triples.
func (g Geometry) Floats() []float32 {
	out := make([]float32, 0, len(g.Vertices)*3)
	for _, v := range g.Vertices {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}

// Components is the number of floats per vertex.
func (g Geometry) Components() int32 { return 3 }

// Stride is the byte distance between consecutive vertices.
func (g Geometry) Stride() int32 { return g.Components() * 4 }

// Count is the number of vertices.
func (g Geometry) Count() int32 { return int32(len(g.Vertices)) }

// Size is the byte size of the flattened data.
func (g Geometry) Size() int { return int(g.Count() * g.Stride()) }

// Program is an opaque linked shader program handle.
type Program uint32

// Mesh is an uploaded vertex buffer together with its attribute layout.
type Mesh struct {
	VAO   uint32 // Vertex array object holding the attribute layout
	VBO   uint32 // Vertex buffer object holding the floats
	Count int32  // Number of vertices
}
