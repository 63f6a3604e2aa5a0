package opengl

import (
	"errors"
	"testing"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/triangle"
)

// withContext runs f on the main thread with a current GL 3.3 context in
// a hidden window. f must not call t.Fatal or t.Skip.
func withContext(t *testing.T, f func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("needs a display and an OpenGL 3.3 context")
	}

	var skip error
	onMain(func() {
		p := NewPlatform()
		if err := p.Init(); err != nil {
			skip = err
			return
		}
		defer p.Terminate()

		w, err := p.CreateWindow(triangle.WindowConfig{
			Width: 64, Height: 64, Title: "shader test",
			GLMajor: triangle.GLMajor, GLMinor: triangle.GLMinor,
			Hidden: true,
		})
		if err != nil {
			skip = err
			return
		}
		defer w.Destroy()

		if _, err := w.Device(); err != nil {
			skip = err
			return
		}
		f()
	})
	if skip != nil {
		t.Skipf("no usable GL context: %v", skip)
	}
}

func TestShaderSourceStripsTerminators(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"void main() {}\x00", "void main() {}"},
		{"void main() {}", "void main() {}"},
		{"\x00\x00", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := shaderSource(tt.in); got != tt.want {
			t.Errorf("shaderSource(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCompileShaderRejectsEmptySource(t *testing.T) {
	// Rejected before any GL call, so no context is needed.
	for _, src := range []string{"", "\x00"} {
		_, err := compileShader(triangle.StageFragment, src)

		var serr *triangle.ShaderError
		if !errors.As(err, &serr) {
			t.Fatalf("compileShader(%q) error = %v, want *ShaderError", src, err)
		}
		if serr.Stage != triangle.StageFragment {
			t.Errorf("stage = %v, want fragment", serr.Stage)
		}
	}
}

func TestCreateShaderProgramReleasesShaders(t *testing.T) {
	noMain := "#version 330 core\nout vec4 colour;\nvoid helper() { colour = vec4(1.0); }"
	badFragment := "#version 330 core\nout vec4 c;\nvoid main() { c = 1.0 +; }"

	tests := []struct {
		name     string
		vertex   string
		fragment string
		wantErr  error
		created  int
	}{
		{"linked", triangle.VertexShaderSource, triangle.FragmentShaderSource, nil, 2},
		{"link failure", triangle.VertexShaderSource, noMain, triangle.ErrProgramLink, 2},
		{"fragment compile failure", triangle.VertexShaderSource, badFragment, triangle.ErrShaderCompile, 2},
		{"vertex compile failure", "#version 330 core\nvoid main() {", triangle.FragmentShaderSource, triangle.ErrShaderCompile, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withContext(t, func() {
				var shaders []uint32
				trackShader = func(s uint32) { shaders = append(shaders, s) }
				defer func() { trackShader = func(uint32) {} }()

				program, err := createShaderProgram(tt.vertex, tt.fragment)
				if tt.wantErr == nil && err != nil {
					t.Errorf("createShaderProgram() error = %v", err)
					return
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("createShaderProgram() error = %v, want %v", err, tt.wantErr)
				}

				if len(shaders) != tt.created {
					t.Errorf("created %d shaders, want %d", len(shaders), tt.created)
				}
				for _, s := range shaders {
					if gl.IsShader(s) {
						t.Errorf("shader %d still alive", s)
					}
				}

				if program != 0 {
					var attached int32
					gl.GetProgramiv(program, gl.ATTACHED_SHADERS, &attached)
					if attached != 0 {
						t.Errorf("program has %d attached shaders, want 0", attached)
					}
					gl.DeleteProgram(program)
				}
			})
		})
	}
}

func TestCompileUnterminatedSource(t *testing.T) {
	// No trailing NUL: the driver must only see len(source) bytes.
	withContext(t, func() {
		_, err := compileShader(triangle.StageVertex, "#version 330 core\nvoid main() { gl_Position = vec4(; }")

		var serr *triangle.ShaderError
		if !errors.As(err, &serr) || serr.Stage != triangle.StageVertex {
			t.Errorf("compileShader() error = %v, want vertex *ShaderError", err)
		}

		shader, err := compileShader(triangle.StageVertex, "#version 330 core\nvoid main() { gl_Position = vec4(0.0); }")
		if err != nil {
			t.Errorf("compileShader() valid unterminated source: %v", err)
			return
		}
		gl.DeleteShader(shader)
	})
}
