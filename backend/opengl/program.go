// Package opengl implements the glstart programs on OpenGL 3.3 core and GLFW.
// It is the only package that talks to the driver.
package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// maxInfoLog caps how much of a driver info log is kept.
const maxInfoLog = 512

// Stage identifies the step of program creation that failed.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
	StageLink
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageLink:
		return "link"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// CompileError reports a shader stage that failed to compile or a program
// that failed to link, with the driver's info log.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	if e.Stage == StageLink {
		return fmt.Sprintf("shader program linking failed: %s", e.Log)
	}
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}

// Program is a linked vertex + fragment shader program.
type Program struct {
	id uint32
}

// NewProgram compiles both stages and links them into a program.
// The stage objects are released once linking has been attempted.
func NewProgram(vertexSource, fragmentSource string) (*Program, error) {
	vertex, err := compileShader(vertexSource, gl.VERTEX_SHADER, StageVertex)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertex)

	fragment, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER, StageFragment)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragment)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := make([]byte, maxInfoLog)
		var n int32
		gl.GetProgramInfoLog(program, maxInfoLog, &n, &log[0])
		gl.DeleteProgram(program)
		return nil, &CompileError{Stage: StageLink, Log: string(log[:n])}
	}

	gl.DetachShader(program, vertex)
	gl.DetachShader(program, fragment)

	return &Program{id: program}, nil
}

// compileShader compiles a single shader stage.
func compileShader(source string, shaderType uint32, stage Stage) (uint32, error) {
	if strings.IndexByte(source, 0) >= 0 {
		return 0, &CompileError{Stage: stage, Log: "source contains a NUL byte"}
	}

	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		log := make([]byte, maxInfoLog)
		var n int32
		gl.GetShaderInfoLog(shader, maxInfoLog, &n, &log[0])
		gl.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, Log: string(log[:n])}
	}

	return shader, nil
}

// ID returns the driver handle.
func (p *Program) ID() uint32 {
	return p.id
}

// Use makes p the active program for subsequent draws.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// The setters below look the uniform up in p and write it into the active
// program. Call Use first. Unknown names resolve to -1, which the driver ignores.

// SetBool sets a bool uniform.
func (p *Program) SetBool(u Uniform, value bool) {
	var v int32
	if value {
		v = 1
	}
	gl.Uniform1i(p.location(u), v)
}

// SetInt sets an int or sampler uniform.
func (p *Program) SetInt(u Uniform, value int32) {
	gl.Uniform1i(p.location(u), value)
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(u Uniform, value float32) {
	gl.Uniform1f(p.location(u), value)
}

// SetVec4 sets a vec4 uniform.
func (p *Program) SetVec4(u Uniform, value mgl32.Vec4) {
	gl.Uniform4f(p.location(u), value[0], value[1], value[2], value[3])
}

// SetMat4 sets a mat4 uniform. mgl32 matrices are column-major like GLSL.
func (p *Program) SetMat4(u Uniform, value mgl32.Mat4) {
	gl.UniformMatrix4fv(p.location(u), 1, false, &value[0])
}

// location resolves u on every call; nothing is cached.
func (p *Program) location(u Uniform) int32 {
	return gl.GetUniformLocation(p.id, u.cstr())
}

// Delete releases the program.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// Uniform is a uniform name prepared for driver lookups.
// Build uniforms once, typically as package-level variables.
type Uniform struct {
	name string // NUL-terminated
}

// NewUniform returns a Uniform for name.
// It panics if name is empty or contains a NUL byte.
func NewUniform(name string) Uniform {
	if name == "" || strings.IndexByte(name, 0) >= 0 {
		panic(fmt.Sprintf("opengl: invalid uniform name %q", name))
	}
	return Uniform{name: name + "\x00"}
}

// Name returns the uniform name without the terminator.
func (u Uniform) Name() string {
	return strings.TrimSuffix(u.name, "\x00")
}

func (u Uniform) cstr() *uint8 {
	if u.name == "" {
		return gl.Str("\x00")
	}
	return gl.Str(u.name)
}
