package glbackend

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Driver is the slice of the GL API a Program needs. Every method must be
// called on the thread that owns the current context.
type Driver interface {
	CreateShader(stage Stage) uint32
	// CompileShader uploads src and compiles it, returning the compile status
	// and the full info log.
	CompileShader(shader uint32, src string) (ok bool, infoLog string)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	// LinkProgram links and returns the link status and the full info log.
	LinkProgram(program uint32) (ok bool, infoLog string)
	LinkStatus(program uint32) bool
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	CurrentProgram() uint32

	UniformLocation(program uint32, name string) int32
	Uniform1i(loc int32, v int32)
	Uniform1f(loc int32, v float32)
	Uniform3f(loc int32, x, y, z float32)
	Uniform3fv(loc int32, v *[3]float32)
	UniformMatrix4fv(loc int32, m *[16]float32)
	UniformFloat(program uint32, loc int32) float32
}

// NewDriver returns the Driver backed by the process-wide GL bindings.
// gl.Init must have run on a current context first.
func NewDriver() Driver { return glDriver{} }

type glDriver struct{}

func (glDriver) CreateShader(stage Stage) uint32 { return gl.CreateShader(uint32(stage)) }

func (glDriver) CompileShader(sh uint32, src string) (bool, string) {
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}
	var logLen int32
	gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return false, ""
	}
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
	return false, strings.TrimRight(log, "\x00")
}

func (glDriver) DeleteShader(sh uint32) { gl.DeleteShader(sh) }

func (glDriver) CreateProgram() uint32        { return gl.CreateProgram() }
func (glDriver) AttachShader(prog, sh uint32) { gl.AttachShader(prog, sh) }
func (glDriver) DeleteProgram(prog uint32)    { gl.DeleteProgram(prog) }
func (glDriver) UseProgram(prog uint32)       { gl.UseProgram(prog) }

func (glDriver) programiv(prog, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(prog, pname, &v)
	return v
}

func (d glDriver) LinkStatus(prog uint32) bool { return d.programiv(prog, gl.LINK_STATUS) == gl.TRUE }

func (d glDriver) LinkProgram(prog uint32) (bool, string) {
	gl.LinkProgram(prog)
	if d.LinkStatus(prog) {
		return true, ""
	}
	logLen := d.programiv(prog, gl.INFO_LOG_LENGTH)
	if logLen <= 0 {
		return false, ""
	}
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
	return false, strings.TrimRight(log, "\x00")
}

func (glDriver) CurrentProgram() uint32 {
	var id int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &id)
	return uint32(id)
}

func (glDriver) UniformLocation(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}

func (glDriver) Uniform1i(loc int32, v int32)         { gl.Uniform1i(loc, v) }
func (glDriver) Uniform1f(loc int32, v float32)       { gl.Uniform1f(loc, v) }
func (glDriver) Uniform3f(loc int32, x, y, z float32) { gl.Uniform3f(loc, x, y, z) }
func (glDriver) Uniform3fv(loc int32, v *[3]float32)  { gl.Uniform3fv(loc, 1, &v[0]) }

func (glDriver) UniformMatrix4fv(loc int32, m *[16]float32) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

func (glDriver) UniformFloat(prog uint32, loc int32) float32 {
	var v float32
	gl.GetUniformfv(prog, loc, &v)
	return v
}
