// Package shader compiles the scene's GLSL program.
package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Attribute locations shared by every mesh.
const (
	AttribPosition = 0
	AttribTexCoord = 1
)

// Scene shader: flat color, optionally modulated by a texture.
const (
	sceneVertex = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aTexCoord;

uniform mat4 uMVP;

out vec2 vTexCoord;

void main() {
	gl_Position = uMVP * vec4(aPos, 1.0);
	vTexCoord = aTexCoord;
}
`

	sceneFragment = `
#version 410 core

in vec2 vTexCoord;
out vec4 FragColor;

uniform vec4 uColor;
uniform bool uTextured;
uniform sampler2D uTex;

void main() {
	vec4 c = uColor;
	if (uTextured) {
		c *= texture(uTex, vTexCoord);
	}
	FragColor = c;
}
`
)

// Scene is the linked scene program with its uniform locations.
type Scene struct {
	Program  uint32
	MVP      int32
	Color    int32
	Textured int32
	Tex      int32
}

// NewScene compiles and links the scene program.
func NewScene() (*Scene, error) {
	prog, err := CompileProgram(sceneVertex, sceneFragment)
	if err != nil {
		return nil, fmt.Errorf("scene program: %w", err)
	}
	s := &Scene{
		Program:  prog,
		MVP:      MustGetUniform(prog, "uMVP"),
		Color:    MustGetUniform(prog, "uColor"),
		Textured: MustGetUniform(prog, "uTextured"),
		Tex:      MustGetUniform(prog, "uTex"),
	}
	return s, nil
}

// Use binds the program and points the sampler at texture unit 0.
func (s *Scene) Use() {
	gl.UseProgram(s.Program)
	gl.Uniform1i(s.Tex, 0)
}

// Delete frees the program.
func (s *Scene) Delete() {
	if s.Program != 0 {
		gl.DeleteProgram(s.Program)
		s.Program = 0
	}
}

// CompileProgram compiles vertex and fragment shaders and links them into a program.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.BindAttribLocation(program, AttribPosition, gl.Str("aPos\x00"))
	gl.BindAttribLocation(program, AttribTexCoord, gl.Str("aTexCoord\x00"))
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		msg := infoLog(program, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", msg)
	}

	return program, nil
}

func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		msg := infoLog(shader, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, msg)
	}

	return shader, nil
}

func infoLog(id uint32, getiv func(uint32, uint32, *int32), getLog func(uint32, int32, *int32, *uint8)) string {
	var logLen int32
	getiv(id, gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return "no log"
	}
	log := make([]byte, logLen)
	getLog(id, logLen, nil, &log[0])
	return string(log[:logLen-1])
}

// MustGetUniform returns the uniform location for the given name.
// Panics if the uniform is not found or inactive.
func MustGetUniform(program uint32, name string) int32 {
	loc := gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	if loc < 0 {
		panic(fmt.Sprintf("uniform %q not found in program %d", name, program))
	}
	return loc
}
