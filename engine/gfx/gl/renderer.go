package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/lighting/engine/core"
)

type glMesh struct {
	vao   uint32
	vbo   uint32
	count int32
}

// RendererGL implements core.Renderer on a GL 3.3 core context.
type RendererGL struct {
	win    core.Window
	drv    Driver
	meshes map[core.Mesh]*glMesh
	nextID core.Mesh
}

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{win: win}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	r.drv = NewDriver()
	r.meshes = make(map[core.Mesh]*glMesh)
	gl.Enable(gl.DEPTH_TEST)
	return nil
}

// Driver returns the driver programs for this renderer should be built with.
func (r *RendererGL) Driver() Driver { return r.drv }

func (r *RendererGL) Shutdown() {
	for id := range r.meshes {
		r.DestroyMesh(id)
	}
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *RendererGL) GPUVendor() string   { return gl.GoStr(gl.GetString(gl.VENDOR)) }
func (r *RendererGL) GPURenderer() string { return gl.GoStr(gl.GetString(gl.RENDERER)) }
func (r *RendererGL) GPUVersion() string  { return gl.GoStr(gl.GetString(gl.VERSION)) }

// CreateMesh uploads an interleaved, non-indexed triangle list.
func (r *RendererGL) CreateMesh(desc core.MeshDesc) (core.Mesh, error) {
	n := desc.VertexCount()
	if n == 0 {
		return 0, fmt.Errorf("create mesh: no vertices (stride %d, %d floats)", desc.Layout.Stride, len(desc.Vertices))
	}
	m := &glMesh{count: int32(n)}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(desc.Vertices)*4, gl.Ptr(desc.Vertices), gl.STATIC_DRAW)

	for _, a := range desc.Layout.Attributes {
		if a.Type != core.AttribFloat32 {
			gl.BindVertexArray(0)
			r.deleteMesh(m)
			return 0, fmt.Errorf("create mesh: attribute %d: unsupported type %d", a.Location, a.Type)
		}
		loc := uint32(a.Location)
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointerWithOffset(loc, int32(a.Size), gl.FLOAT, false, int32(desc.Layout.Stride), uintptr(a.Offset))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.nextID++
	r.meshes[r.nextID] = m
	return r.nextID, nil
}

// DrawMesh draws with whatever program is currently active.
func (r *RendererGL) DrawMesh(id core.Mesh) {
	m, ok := r.meshes[id]
	if !ok {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	gl.BindVertexArray(0)
}

func (r *RendererGL) DestroyMesh(id core.Mesh) {
	m, ok := r.meshes[id]
	if !ok {
		return
	}
	r.deleteMesh(m)
	delete(r.meshes, id)
}

func (r *RendererGL) deleteMesh(m *glMesh) {
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
}
