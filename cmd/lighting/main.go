package main

import (
	"flag"
	"log"

	"github.com/hubastard/lighting/engine/config"
	"github.com/hubastard/lighting/engine/core"
	glbackend "github.com/hubastard/lighting/engine/gfx/gl"
	"github.com/hubastard/lighting/engine/platform"
	"github.com/hubastard/lighting/engine/profiler"
)

type App struct {
	cfg config.Config
	gl  *glbackend.RendererGL
}

func (a *App) OnStart(e *core.Engine) {
	e.Layers.Push(newLayerLighting(a.cfg, a.gl.Driver()))
	e.Layers.Push(&LayerStats{title: a.cfg.Window.Title})
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	if e.Input.IsKeyDown(core.KeyEscape) {
		e.Window.RequestClose()
	}
}

func (a *App) OnRender(e *core.Engine, alpha float64) {}
func (a *App) OnEvent(e *core.Engine, ev core.Event)  {}
func (a *App) OnShutdown(e *core.Engine)              {}

func main() {
	cfgPath := flag.String("config", "", "TOML config file (defaults are used when empty)")
	writeDefault := flag.String("write-config", "", "write the default config to this path and exit")
	flag.Parse()

	if *writeDefault != "" {
		if err := config.Write(*writeDefault, config.Default()); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *writeDefault)
		return
	}

	profiler.Init(1 << 16)

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			log.Fatal(err)
		}
	}
	app := &App{cfg: cfg}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		r, err := glbackend.NewRendererGL(win, cfg)
		if err != nil {
			return nil, err
		}
		app.gl = r
		return r, nil
	}

	if err := core.Run(app, cfg.Engine(), newWindow, newRenderer); err != nil {
		log.Fatal(err)
	}
	platform.Terminate()
}
