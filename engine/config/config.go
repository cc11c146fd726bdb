// Package config loads the lighting demo's TOML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/hubastard/lighting/engine/assets"
	"github.com/hubastard/lighting/engine/colors"
	"github.com/hubastard/lighting/engine/core"
	"github.com/hubastard/lighting/engine/scene"
)

type Window struct {
	Title      string       `toml:"title"`
	Width      int          `toml:"width"`
	Height     int          `toml:"height"`
	VSync      bool         `toml:"vsync"`
	Hidden     bool         `toml:"hidden"`
	ClearColor colors.Color `toml:"clear_color"`
}

// Shaders names the two programs' source files, relative to Dir.
type Shaders struct {
	Dir          string `toml:"dir"`
	LitVertex    string `toml:"lit_vertex"`
	LitFragment  string `toml:"lit_fragment"`
	LampVertex   string `toml:"lamp_vertex"`
	LampFragment string `toml:"lamp_fragment"`
}

type Scene struct {
	LightPosition    [3]float32   `toml:"light_position"`
	LightColor       colors.Color `toml:"light_color"`
	ObjectColor      colors.Color `toml:"object_color"`
	OrbitLight       bool         `toml:"orbit_light"`
	AmbientStrength  float32      `toml:"ambient_strength"`
	SpecularStrength float32      `toml:"specular_strength"`
	Shininess        int          `toml:"shininess"`
	CameraPosition   [3]float32   `toml:"camera_position"`
	FOV              float32      `toml:"fov"` // degrees
}

type Config struct {
	Window  Window  `toml:"window"`
	Shaders Shaders `toml:"shaders"`
	Scene   Scene   `toml:"scene"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Title:      "Lighting",
			Width:      1280,
			Height:     720,
			VSync:      true,
			ClearColor: colors.DarkGray,
		},
		Shaders: Shaders{
			Dir:          assets.DefaultShaderDir,
			LitVertex:    "lit.vert",
			LitFragment:  "lit.frag",
			LampVertex:   "lamp.vert",
			LampFragment: "lamp.frag",
		},
		Scene: Scene{
			LightPosition:    [3]float32{1.2, 1.0, 2.0},
			LightColor:       colors.White,
			ObjectColor:      colors.Coral,
			OrbitLight:       true,
			AmbientStrength:  0.1,
			SpecularStrength: 0.5,
			Shininess:        32,
			CameraPosition:   [3]float32{0, 0, 3},
			FOV:              45,
		},
	}
}

// Load overlays the TOML file at path on Default. Keys the file sets that no
// field takes are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %q: %w", path, err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		return Config{}, fmt.Errorf("load config %q: unknown keys %v", path, und)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %q: %w", path, err)
	}
	return cfg, nil
}

// Write encodes cfg to path, creating the parent directory if needed.
func Write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("write config %q: %w", path, err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config %q: %w", path, err)
	}
	return nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	for key, name := range map[string]string{
		"lit_vertex":    c.Shaders.LitVertex,
		"lit_fragment":  c.Shaders.LitFragment,
		"lamp_vertex":   c.Shaders.LampVertex,
		"lamp_fragment": c.Shaders.LampFragment,
	} {
		if name == "" {
			errs = append(errs, fmt.Errorf("shaders.%s is empty", key))
		}
	}
	if c.Scene.FOV < scene.MinFOV || c.Scene.FOV > scene.MaxFOV {
		errs = append(errs, fmt.Errorf("scene.fov %v out of range [%v, %v]", c.Scene.FOV, scene.MinFOV, scene.MaxFOV))
	}
	return errors.Join(errs...)
}

// Engine returns the runtime window settings.
func (c Config) Engine() core.Config {
	return core.Config{
		Title:      c.Window.Title,
		Width:      c.Window.Width,
		Height:     c.Window.Height,
		VSync:      c.Window.VSync,
		Hidden:     c.Window.Hidden,
		ClearColor: c.Window.ClearColor,
	}
}

// Path resolves a shader file name against Dir.
func (s Shaders) Path(name string) string { return assets.ShaderPath(s.Dir, name) }
