package glbackend

import (
	"fmt"
	"log"
	"math"
	"os"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/lighting/engine/assets"
	"github.com/hubastard/lighting/engine/profiler"
)

// infoLogSize bounds the compiler and linker diagnostics that are kept.
const infoLogSize = 512

var logger = log.New(os.Stdout, "", log.LstdFlags)

// SetLogger redirects shader build diagnostics. A nil logger restores stdout.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(os.Stdout, "", log.LstdFlags)
	}
	logger = l
}

// Stage identifies a programmable pipeline stage.
type Stage uint32

const (
	VertexStage   Stage = gl.VERTEX_SHADER
	FragmentStage Stage = gl.FRAGMENT_SHADER
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return fmt.Sprintf("Stage(%#x)", uint32(s))
	}
}

// Program is a linked vertex + fragment shader program. It owns the driver
// object: use it through the pointer returned by NewProgram and call Delete
// when done. Copying a Program value would create a second owner.
//
// Uniform setters write to the driver's current program, so they are only
// well-defined right after Activate on the same Program, on the context thread.
type Program struct {
	drv Driver
	id  uint32
}

// NewProgram reads, compiles and links the two shader files.
//
// Every failure is logged as it happens and the build carries on to the end
// (an unreadable file compiles as empty source), so one call reports all
// diagnostics. The first failure is returned as a *BuildError and the
// partially built program is released.
func NewProgram(drv Driver, vertexPath, fragmentPath string) (*Program, error) {
	defer profiler.Start("Program.New")()

	var first error
	read := func(stage Stage, path string) string {
		defer profiler.Start("Program.read")()
		src, err := assets.ReadSource(path)
		if err != nil {
			logger.Printf("ERROR::SHADER::FILE_NOT_SUCCESSFULLY_READ\n%v", err)
			if first == nil {
				first = &BuildError{Kind: FileRead, Stage: stage, Path: path, Err: err}
			}
		}
		return src
	}
	vsSrc := read(VertexStage, vertexPath)
	fsSrc := read(FragmentStage, fragmentPath)
	return build(drv, vsSrc, fsSrc, first)
}

// NewProgramFromSource compiles and links in-memory shader sources.
func NewProgramFromSource(drv Driver, vsSrc, fsSrc string) (*Program, error) {
	return build(drv, vsSrc, fsSrc, nil)
}

func build(drv Driver, vsSrc, fsSrc string, first error) (*Program, error) {
	keep := func(err error) {
		if first == nil && err != nil {
			first = err
		}
	}

	vs, err := compile(drv, VertexStage, vsSrc)
	keep(err)
	fs, err := compile(drv, FragmentStage, fsSrc)
	keep(err)

	endLink := profiler.Start("Program.link")
	prog := drv.CreateProgram()
	drv.AttachShader(prog, vs)
	drv.AttachShader(prog, fs)
	ok, info := drv.LinkProgram(prog)
	endLink()

	// the program keeps what it needs; the stage objects go either way
	drv.DeleteShader(vs)
	drv.DeleteShader(fs)

	if !ok {
		info = truncateLog(info)
		logger.Printf("ERROR::SHADER::PROGRAM::LINKING_FAILED\n%s", info)
		keep(&BuildError{Kind: Link, Log: info})
	}
	if first != nil {
		drv.DeleteProgram(prog)
		return nil, first
	}
	return &Program{drv: drv, id: prog}, nil
}

// compile always returns the shader object so a failed stage can still be
// attached and the link step runs.
func compile(drv Driver, stage Stage, src string) (uint32, error) {
	defer profiler.Start("Program.compile")()
	sh := drv.CreateShader(stage)
	ok, info := drv.CompileShader(sh, src)
	if ok {
		return sh, nil
	}
	info = truncateLog(info)
	logger.Printf("ERROR::SHADER::%s::COMPILATION_FAILED\n%s", strings.ToUpper(stage.String()), info)
	return sh, &BuildError{Kind: Compile, Stage: stage, Log: info}
}

func truncateLog(s string) string {
	if len(s) > infoLogSize-1 {
		s = s[:infoLogSize-1]
	}
	return strings.TrimRight(s, "\x00 \t\r\n")
}

// ID returns the driver's program name, or 0 after Delete.
func (p *Program) ID() uint32 { return p.id }

// Linked queries the driver's link status for the program.
func (p *Program) Linked() bool { return p.id != 0 && p.drv.LinkStatus(p.id) }

// Activate makes this the program used by subsequent draw calls.
func (p *Program) Activate() { p.drv.UseProgram(p.id) }

// Active reports whether the driver's current program is this one.
func (p *Program) Active() bool { return p.id != 0 && p.drv.CurrentProgram() == p.id }

// Delete releases the program object. Further calls are no-ops.
func (p *Program) Delete() {
	if p.id == 0 {
		return
	}
	if p.Active() {
		p.drv.UseProgram(0)
	}
	p.drv.DeleteProgram(p.id)
	p.id = 0
}

// Location resolves a uniform name on every call; -1 means the name is not
// an active uniform of the program.
func (p *Program) Location(name string) int32 {
	if p.id == 0 {
		return -1
	}
	return p.drv.UniformLocation(p.id, name)
}

func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	p.SetInt(name, i)
}

func (p *Program) SetInt(name string, v int32) {
	if loc := p.Location(name); loc >= 0 {
		p.drv.Uniform1i(loc, v)
	}
}

func (p *Program) SetFloat(name string, v float32) {
	if loc := p.Location(name); loc >= 0 {
		p.drv.Uniform1f(loc, v)
	}
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	if loc := p.Location(name); loc >= 0 {
		p.drv.Uniform3fv(loc, (*[3]float32)(&v))
	}
}

func (p *Program) SetVec3f(name string, x, y, z float32) {
	if loc := p.Location(name); loc >= 0 {
		p.drv.Uniform3f(loc, x, y, z)
	}
}

// SetMat4 uploads m as-is; mgl32 matrices are already column-major.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	if loc := p.Location(name); loc >= 0 {
		p.drv.UniformMatrix4fv(loc, (*[16]float32)(&m))
	}
}

// SetUniform dispatches on the dynamic type of value. Unknown names are
// ignored like in the typed setters; only an unsupported type or an int that
// does not fit in int32 is an error.
func (p *Program) SetUniform(name string, value any) error {
	switch v := value.(type) {
	case bool:
		p.SetBool(name, v)
	case int:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return fmt.Errorf("uniform %q: %d: %w", name, v, ErrUniformRange)
		}
		p.SetInt(name, int32(v))
	case int32:
		p.SetInt(name, v)
	case float32:
		p.SetFloat(name, v)
	case float64:
		p.SetFloat(name, float32(v))
	case mgl32.Vec3:
		p.SetVec3(name, v)
	case [3]float32:
		p.SetVec3(name, mgl32.Vec3(v))
	case mgl32.Mat4:
		p.SetMat4(name, v)
	case [16]float32:
		p.SetMat4(name, mgl32.Mat4(v))
	default:
		return fmt.Errorf("uniform %q: %T: %w", name, value, ErrUnsupportedUniform)
	}
	return nil
}

// Float reads a float uniform back from the driver.
func (p *Program) Float(name string) (float32, bool) {
	loc := p.Location(name)
	if loc < 0 {
		return 0, false
	}
	return p.drv.UniformFloat(p.id, loc), true
}
