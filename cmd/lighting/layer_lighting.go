package main

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/lighting/engine/config"
	"github.com/hubastard/lighting/engine/core"
	glbackend "github.com/hubastard/lighting/engine/gfx/gl"
	"github.com/hubastard/lighting/engine/profiler"
	"github.com/hubastard/lighting/engine/scene"
)

// LayerLighting draws a Phong-lit cube and a small lamp cube at the light.
type LayerLighting struct {
	cfg  config.Config
	drv  glbackend.Driver
	lit  *glbackend.Program
	lamp *glbackend.Program
	cube core.Mesh

	cam  *scene.PerspectiveCamera
	ctrl *scene.FlyController

	lightPos mgl32.Vec3
	blinn    bool
	t        float32
}

func newLayerLighting(cfg config.Config, drv glbackend.Driver) *LayerLighting {
	return &LayerLighting{
		cfg:      cfg,
		drv:      drv,
		lightPos: mgl32.Vec3(cfg.Scene.LightPosition),
	}
}

func (l *LayerLighting) OnAttach(e *core.Engine) {
	sh := l.cfg.Shaders
	var err error
	l.lit, err = glbackend.NewProgram(l.drv, sh.Path(sh.LitVertex), sh.Path(sh.LitFragment))
	if err != nil {
		panic(err)
	}
	l.lamp, err = glbackend.NewProgram(l.drv, sh.Path(sh.LampVertex), sh.Path(sh.LampFragment))
	if err != nil {
		panic(err)
	}

	l.cube, err = e.Renderer.CreateMesh(core.MeshDesc{Vertices: cubeVertices, Layout: cubeLayout})
	if err != nil {
		panic(err)
	}

	w, h := e.Window.FramebufferSize()
	l.cam = scene.NewPerspective(w, h, l.cfg.Scene.FOV, mgl32.Vec3(l.cfg.Scene.CameraPosition))
	l.ctrl = scene.NewFlyController(l.cam)
	log.Printf("lighting: programs lit=%d lamp=%d", l.lit.ID(), l.lamp.ID())
}

func (l *LayerLighting) OnDetach(e *core.Engine) {
	l.lit.Delete()
	l.lamp.Delete()
	e.Renderer.DestroyMesh(l.cube)
}

func (l *LayerLighting) OnUpdate(e *core.Engine, dt float64) {
	l.ctrl.Update(e.Input, float32(dt))
	l.t += float32(dt)

	if l.cfg.Scene.OrbitLight {
		// keep the configured height and radius, circle around Y
		p := l.cfg.Scene.LightPosition
		r := float32(math.Hypot(float64(p[0]), float64(p[2])))
		s, c := math.Sincos(float64(l.t * 0.8))
		l.lightPos = mgl32.Vec3{r * float32(c), p[1], r * float32(s)}
	}
}

func (l *LayerLighting) OnRender(e *core.Engine, alpha float64) {
	defer profiler.Start("LayerLighting.OnRender")()

	sc := l.cfg.Scene
	view, proj := l.cam.View(), l.cam.Projection()

	l.lit.Activate()
	l.lit.SetMat4("projection", proj)
	l.lit.SetMat4("view", view)
	l.lit.SetMat4("model", mgl32.HomogRotate3DY(l.t*0.3))
	l.lit.SetVec3("objectColor", sc.ObjectColor.RGB())
	l.lit.SetVec3("lightColor", sc.LightColor.RGB())
	l.lit.SetVec3("lightPos", l.lightPos)
	l.lit.SetVec3("viewPos", l.cam.Position)
	l.lit.SetBool("blinn", l.blinn)
	for name, v := range map[string]any{
		"ambientStrength":  sc.AmbientStrength,
		"specularStrength": sc.SpecularStrength,
		"shininess":        sc.Shininess,
	} {
		if err := l.lit.SetUniform(name, v); err != nil {
			log.Printf("lighting: %v", err)
		}
	}
	e.Renderer.DrawMesh(l.cube)

	l.lamp.Activate()
	l.lamp.SetMat4("projection", proj)
	l.lamp.SetMat4("view", view)
	l.lamp.SetMat4("model", mgl32.Translate3D(l.lightPos[0], l.lightPos[1], l.lightPos[2]).Mul4(mgl32.Scale3D(0.2, 0.2, 0.2)))
	lc := sc.LightColor
	l.lamp.SetVec3f("lampColor", lc[0], lc[1], lc[2])
	e.Renderer.DrawMesh(l.cube)
}

func (l *LayerLighting) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventKey:
		if v.Down && v.Key == core.KeySpace {
			l.blinn = !l.blinn
			log.Printf("lighting: blinn-phong=%v", l.blinn)
			return true
		}
	case core.EventResize:
		l.cam.SetViewportPixels(v.W, v.H)
	}
	return false
}
