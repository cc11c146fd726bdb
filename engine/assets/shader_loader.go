package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultShaderDir is where shader sources live relative to the working directory.
var DefaultShaderDir = filepath.Join("assets", "shaders")

// ShaderPath resolves a shader file name against dir, falling back to
// DefaultShaderDir when dir is empty. Absolute names are returned unchanged.
func ShaderPath(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	if dir == "" {
		dir = DefaultShaderDir
	}
	return filepath.Join(dir, name)
}

// ReadSource reads a shader file in full. The returned text is not
// null-terminated; the GL driver does that when it uploads the source.
func ReadSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read shader source %q: %w", path, err)
	}
	return string(b), nil
}

// LoadShader reads a GLSL file from the default shader directory.
func LoadShader(name string) (string, error) {
	return ReadSource(ShaderPath("", name))
}
