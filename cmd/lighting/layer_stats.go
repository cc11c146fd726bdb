package main

import (
	"fmt"
	"log"

	"github.com/hubastard/lighting/engine/core"
	"github.com/hubastard/lighting/engine/profiler"
)

// LayerStats reports frame timing and runtime stats in the window title.
// Ctrl+P dumps the profiler trace when built with -tags profile.
type LayerStats struct {
	title   string
	frames  int
	elapsed float64
	last    float64
}

func (l *LayerStats) OnAttach(e *core.Engine) {
	log.Printf("GPU: %s / %s / %s", e.Renderer.GPUVendor(), e.Renderer.GPURenderer(), e.Renderer.GPUVersion())
	log.Printf("CPU: %d cores", profiler.NumCPU())
	l.last = e.Uptime().Seconds()
}

func (l *LayerStats) OnDetach(e *core.Engine) {}

func (l *LayerStats) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerStats) OnRender(e *core.Engine, alpha float64) {
	now := e.Uptime().Seconds()
	l.elapsed += now - l.last
	l.last = now
	l.frames++

	if l.elapsed < 0.5 {
		return
	}
	ms := l.elapsed * 1000 / float64(l.frames)
	e.Window.SetTitle(statsTitle(l.title, ms, profiler.MemoryUsage(), profiler.NumGoroutine()))
	l.frames, l.elapsed = 0, 0
}

func statsTitle(title string, ms float64, heap uint64, goroutines int) string {
	return fmt.Sprintf("%s | %2.3f ms (%.1f FPS) | %.1f MB | %d goroutines",
		title, ms, 1000/ms, float64(heap)/(1<<20), goroutines)
}

func (l *LayerStats) OnEvent(e *core.Engine, ev core.Event) bool {
	k, ok := ev.(core.EventKey)
	if !ok || !k.Down || k.Key != core.KeyP || k.Mods&core.ModCtrl == 0 {
		return false
	}
	if !profiler.Enabled {
		log.Println("profiler: rebuild with -tags profile to record scopes")
		return true
	}
	if path, err := profiler.OpenGraph(); err != nil {
		log.Println("profiler dump error:", err)
	} else {
		log.Println("speedscope dump:", path)
	}
	return true
}
