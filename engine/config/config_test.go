package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hubastard/lighting/engine/colors"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lighting.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, `
[window]
title = "Test"
width = 640
hidden = true

[shaders]
dir = "testdata/shaders"

[scene]
light_color = [1.0, 0.5, 0.25, 1.0]
shininess = 64
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg.Window.Title != "Test" || cfg.Window.Width != 640 || !cfg.Window.Hidden {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Window.Height != def.Window.Height {
		t.Errorf("height = %d, want default %d", cfg.Window.Height, def.Window.Height)
	}
	if cfg.Scene.LightColor != (colors.Color{1, 0.5, 0.25, 1}) {
		t.Errorf("light_color = %v", cfg.Scene.LightColor)
	}
	if cfg.Scene.Shininess != 64 || cfg.Scene.FOV != def.Scene.FOV {
		t.Errorf("scene = %+v", cfg.Scene)
	}
	if got, want := cfg.Shaders.Path(cfg.Shaders.LitVertex), filepath.Join("testdata", "shaders", "lit.vert"); got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}

	eng := cfg.Engine()
	if eng.Title != "Test" || eng.Width != 640 || !eng.Hidden || eng.ClearColor != def.Window.ClearColor {
		t.Errorf("Engine() = %+v", eng)
	}
}

func TestLoadRejects(t *testing.T) {
	cases := []struct {
		name, body, want string
	}{
		{"unknown key", "[window]\ntitel = \"x\"\n", "unknown keys"},
		{"bad size", "[window]\nwidth = 0\n", "must be positive"},
		{"empty shader", "[shaders]\nlamp_fragment = \"\"\n", "shaders.lamp_fragment is empty"},
		{"bad fov", "[scene]\nfov = 190.0\n", "scene.fov"},
		{"fov past camera limit", "[scene]\nfov = 120.0\n", "scene.fov 120 out of range [1, 90]"},
		{"syntax", "[window\n", "load config"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load(writeFile(t, c.body))
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Fatalf("err = %v, want %q", err, c.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want fs.ErrNotExist", err)
	}
}

func TestWriteThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "lighting.toml")
	cfg := Default()
	cfg.Window.Title = "Written"
	cfg.Scene.OrbitLight = false
	if err := Write(path, cfg); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Window.Title != "Written" || got.Scene.OrbitLight {
		t.Fatalf("loaded %+v", got)
	}
}
