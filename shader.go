package triangle

// VertexShaderSource passes the single vec3 attribute at location 0 through.
const VertexShaderSource = `
#version 330 core
layout (location = 0) in vec3 vertexPosition;

void main() {
    gl_Position = vec4(vertexPosition.x, vertexPosition.y, vertexPosition.z, 1.0);
}
`

// FragmentShaderSource paints every fragment orange.
const FragmentShaderSource = `
#version 330 core
out vec4 colour;

void main() {
    colour = vec4(1.0, 0.5, 0.2, 1.0);
}
`
