package gl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Program is a linked shader program.
// A program whose compilation or linking failed is still usable; the
// failure is reported by NewProgram alongside the program.
type Program struct {
	handle   uint32
	uniforms map[string]int32
}

// NewProgram compiles and links a vertex and a fragment shader.
// The returned program is never nil. The error carries the driver's info
// log of every stage that failed.
func NewProgram(vertexSource, fragmentSource string) (*Program, error) {
	var errs []string

	vs, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		errs = append(errs, fmt.Sprintf("vertex shader: %v", err))
	}
	fs, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		errs = append(errs, fmt.Sprintf("fragment shader: %v", err))
	}

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vs)
	gl.AttachShader(handle, fs)
	gl.LinkProgram(handle)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(handle, logLength, nil, gl.Str(msg))
		errs = append(errs, fmt.Sprintf("link: %s", strings.TrimRight(msg, "\x00")))
	}
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	p := &Program{handle: handle, uniforms: make(map[string]int32)}
	if len(errs) > 0 {
		return p, fmt.Errorf("%s", strings.Join(errs, "\n"))
	}
	return p, nil
}

func compileShader(src string, typ uint32) (uint32, error) {
	handle := gl.CreateShader(typ)

	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)

		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(msg))
		return handle, fmt.Errorf("failed to compile: %s", strings.TrimRight(msg, "\x00"))
	}
	return handle, nil
}

func (p *Program) Use() {
	gl.UseProgram(p.handle)
}

func (p *Program) location(name string) int32 {
	if l, ok := p.uniforms[name]; ok {
		return l
	}
	l := gl.GetUniformLocation(p.handle, gl.Str(name+"\x00"))
	p.uniforms[name] = l
	return l
}

// The setters below act on the program in use.

func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.location(name), v)
}

func (p *Program) SetVec3(name string, v [3]float32) {
	gl.Uniform3f(p.location(name), v[0], v[1], v[2])
}

func (p *Program) SetMat4(name string, m [16]float32) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &m[0])
}
