package opengl

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/triangle"
)

// trackShader sees every shader object right after creation.
var trackShader = func(shader uint32) {}

// createShaderProgram compiles and links a shader program.
// No shader object outlives the call.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(triangle.StageVertex, vertexSource)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(triangle.StageFragment, fragmentSource)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	return linkProgram(vertexShader, fragmentShader)
}

// linkProgram links both shaders and deletes them, whatever the outcome.
func linkProgram(vertexShader, fragmentShader uint32) (uint32, error) {
	defer gl.DeleteShader(vertexShader)
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, &triangle.LinkError{Log: string(log)}
	}

	// Detached, the deferred deletes free the shaders right away.
	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)

	return program, nil
}

func compileShader(stage triangle.ShaderStage, source string) (uint32, error) {
	source = shaderSource(source)
	if source == "" {
		return 0, &triangle.ShaderError{Stage: stage, Log: "empty source"}
	}

	shader := gl.CreateShader(shaderType(stage))
	trackShader(shader)

	// gl.Strs does not terminate the copy, so the length is passed explicitly.
	length := int32(len(source))
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, &length)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, &triangle.ShaderError{Stage: stage, Log: string(log)}
	}

	return shader, nil
}

// shaderSource drops trailing NUL terminators; the length goes to GL instead.
func shaderSource(source string) string {
	return strings.TrimRight(source, "\x00")
}

func shaderType(stage triangle.ShaderStage) uint32 {
	if stage == triangle.StageFragment {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}
