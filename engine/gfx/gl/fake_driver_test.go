package glbackend

import (
	"regexp"
	"sort"
	"strings"
)

var (
	uniformDecl = regexp.MustCompile(`uniform\s+\w+\s+(\w+)\s*;`)
	varyingDecl = regexp.MustCompile(`\b(in|out)\s+\w+\s+(\w+)\s*;`)
)

type fakeShader struct {
	stage    Stage
	src      string
	compiled bool
	deleted  bool
}

type fakeProgram struct {
	shaders  []uint32
	linked   bool
	deleted  bool
	uniforms map[string]int32
	values   map[int32]any
}

// fakeDriver mimics the GL object model closely enough to exercise Program:
// sources compile when they have a main and balanced brackets, programs link
// when both attached stages compiled, and uniform writes land on the current
// program. A fragment input with no matching vertex output fails the link.
type fakeDriver struct {
	next     uint32
	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram
	current  uint32

	compileLog string
	linkLog    string

	writes       int // uniform writes that reached a program
	strayWrites  int // writes with no current program or a foreign location
	programFrees int
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		shaders:  map[uint32]*fakeShader{},
		programs: map[uint32]*fakeProgram{},
	}
}

func (f *fakeDriver) id() uint32 {
	f.next++
	return f.next
}

func (f *fakeDriver) CreateShader(stage Stage) uint32 {
	id := f.id()
	f.shaders[id] = &fakeShader{stage: stage}
	return id
}

func balanced(src string) bool {
	var depth [2]int
	for _, r := range src {
		switch r {
		case '(':
			depth[0]++
		case ')':
			depth[0]--
		case '{':
			depth[1]++
		case '}':
			depth[1]--
		}
		if depth[0] < 0 || depth[1] < 0 {
			return false
		}
	}
	return depth[0] == 0 && depth[1] == 0
}

func (f *fakeDriver) CompileShader(sh uint32, src string) (bool, string) {
	s := f.shaders[sh]
	s.src = src
	s.compiled = strings.Contains(src, "void main()") && balanced(src)
	if s.compiled {
		return true, ""
	}
	if f.compileLog != "" {
		return false, f.compileLog
	}
	return false, "0:1(1): error: syntax error, unexpected end of file\n"
}

func (f *fakeDriver) DeleteShader(sh uint32) { f.shaders[sh].deleted = true }

func (f *fakeDriver) CreateProgram() uint32 {
	id := f.id()
	f.programs[id] = &fakeProgram{}
	return id
}

func (f *fakeDriver) AttachShader(prog, sh uint32) {
	p := f.programs[prog]
	p.shaders = append(p.shaders, sh)
}

func (f *fakeDriver) LinkProgram(prog uint32) (bool, string) {
	p := f.programs[prog]
	var names []string
	stages := map[Stage]bool{}
	ok := true
	for _, id := range p.shaders {
		s := f.shaders[id]
		if !s.compiled {
			ok = false
		}
		stages[s.stage] = true
		for _, m := range uniformDecl.FindAllStringSubmatch(s.src, -1) {
			names = append(names, m[1])
		}
	}
	if !ok || !stages[VertexStage] || !stages[FragmentStage] {
		if f.linkLog != "" {
			return false, f.linkLog
		}
		return false, "error: linking with uncompiled/unspecialized shader\n"
	}
	if name := unmatchedInput(f.shaders, p.shaders); name != "" {
		return false, "error: fragment shader input `" + name + "' has no matching vertex shader output\n"
	}
	sort.Strings(names)
	p.uniforms = map[string]int32{}
	p.values = map[int32]any{}
	for _, n := range names {
		if _, dup := p.uniforms[n]; !dup {
			p.uniforms[n] = int32(len(p.uniforms))
		}
	}
	p.linked = true
	return true, ""
}

func unmatchedInput(shaders map[uint32]*fakeShader, attached []uint32) string {
	outs := map[string]bool{}
	var ins []string
	for _, id := range attached {
		s := shaders[id]
		for _, m := range varyingDecl.FindAllStringSubmatch(s.src, -1) {
			switch {
			case s.stage == VertexStage && m[1] == "out":
				outs[m[2]] = true
			case s.stage == FragmentStage && m[1] == "in":
				ins = append(ins, m[2])
			}
		}
	}
	for _, n := range ins {
		if !outs[n] {
			return n
		}
	}
	return ""
}

func (f *fakeDriver) LinkStatus(prog uint32) bool {
	p, ok := f.programs[prog]
	return ok && !p.deleted && p.linked
}

func (f *fakeDriver) DeleteProgram(prog uint32) {
	f.programs[prog].deleted = true
	f.programFrees++
}

func (f *fakeDriver) UseProgram(prog uint32) { f.current = prog }

func (f *fakeDriver) CurrentProgram() uint32 { return f.current }

func (f *fakeDriver) UniformLocation(prog uint32, name string) int32 {
	p, ok := f.programs[prog]
	if !ok || !p.linked {
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (f *fakeDriver) store(loc int32, v any) {
	p, ok := f.programs[f.current]
	if !ok || !p.linked || loc < 0 || int(loc) >= len(p.uniforms) {
		f.strayWrites++
		return
	}
	p.values[loc] = v
	f.writes++
}

func (f *fakeDriver) Uniform1i(loc int32, v int32)         { f.store(loc, v) }
func (f *fakeDriver) Uniform1f(loc int32, v float32)       { f.store(loc, v) }
func (f *fakeDriver) Uniform3f(loc int32, x, y, z float32) { f.store(loc, [3]float32{x, y, z}) }
func (f *fakeDriver) Uniform3fv(loc int32, v *[3]float32)  { f.store(loc, *v) }

func (f *fakeDriver) UniformMatrix4fv(loc int32, m *[16]float32) { f.store(loc, *m) }

func (f *fakeDriver) UniformFloat(prog uint32, loc int32) float32 {
	v, _ := f.programs[prog].values[loc].(float32)
	return v
}

// value returns what the last write stored for a named uniform.
func (f *fakeDriver) value(prog uint32, name string) any {
	p := f.programs[prog]
	loc, ok := p.uniforms[name]
	if !ok {
		return nil
	}
	return p.values[loc]
}
