package opengl

// Attribute locations shared by the shaders and the vertex layout.
const (
	positionLocation = 0
	colorLocation    = 1
)

// Uniform names looked up once after linking.
const (
	uniformModel      = "model"
	uniformView       = "view"
	uniformProjection = "projection"
)

// vertex shader: projection * view * model, per-vertex colour passthrough
const vertSrc = `
#version 330 core
layout(location = 0) in vec3 position;
layout(location = 1) in vec3 color;

out vec3 mobileColor;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

void main() {
    gl_Position = projection * view * model * vec4(position, 1.0);
    mobileColor = color;
}
`

// fragment shader: interpolated colour, opaque
const fragSrc = `
#version 330 core
in vec3 mobileColor;

out vec4 gpuColor;

void main() {
    gpuColor = vec4(mobileColor, 1.0);
}
`
