package main

import (
	"path/filepath"
	"regexp"
	"testing"

	"github.com/hubastard/lighting/engine/assets"
	"github.com/hubastard/lighting/engine/config"
	"github.com/hubastard/lighting/engine/core"
)

func TestCubeMesh(t *testing.T) {
	d := core.MeshDesc{Vertices: cubeVertices, Layout: cubeLayout}
	if n := d.VertexCount(); n != 36 {
		t.Fatalf("cube has %d vertices, want 36", n)
	}
	for i := 0; i < len(cubeVertices); i += 6 {
		nx, ny, nz := cubeVertices[i+3], cubeVertices[i+4], cubeVertices[i+5]
		if nx*nx+ny*ny+nz*nz != 1 {
			t.Fatalf("vertex %d normal (%v,%v,%v) is not unit length", i/6, nx, ny, nz)
		}
	}
}

// The layer sets these by name; a typo would silently no-op at runtime.
func TestShippedShadersDeclareUniforms(t *testing.T) {
	sh := config.Default().Shaders
	sh.Dir = filepath.Join("..", "..", "assets", "shaders")

	want := map[string][]string{
		sh.LitVertex:    {"model", "view", "projection"},
		sh.LitFragment:  {"lightPos", "viewPos", "lightColor", "objectColor", "ambientStrength", "specularStrength", "shininess", "blinn"},
		sh.LampVertex:   {"model", "view", "projection"},
		sh.LampFragment: {"lampColor"},
	}
	for file, names := range want {
		src, err := assets.ReadSource(sh.Path(file))
		if err != nil {
			t.Fatal(err)
		}
		for _, n := range names {
			re := regexp.MustCompile(`uniform\s+\w+\s+` + n + `\s*;`)
			if !re.MatchString(src) {
				t.Errorf("%s does not declare uniform %s", file, n)
			}
		}
	}
}

func TestStatsTitle(t *testing.T) {
	got := statsTitle("Lighting", 10, 3<<20, 4)
	want := "Lighting | 10.000 ms (100.0 FPS) | 3.0 MB | 4 goroutines"
	if got != want {
		t.Fatalf("statsTitle = %q, want %q", got, want)
	}
}

func TestStatsIgnoresPlainP(t *testing.T) {
	l := &LayerStats{}
	if l.OnEvent(nil, core.EventKey{Key: core.KeyP, Down: true}) {
		t.Fatal("P without Ctrl was consumed")
	}
	if l.OnEvent(nil, core.EventKey{Key: core.KeyW, Down: true, Mods: core.ModCtrl}) {
		t.Fatal("Ctrl+W was consumed")
	}
}
