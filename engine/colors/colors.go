package colors

import "github.com/go-gl/mathgl/mgl32"

type Color [4]float32

var (
	White     = Color{1, 1, 1, 1}
	Red       = Color{1, 0, 0, 1}
	Green     = Color{0, 1, 0, 1}
	Blue      = Color{0, 0, 1, 1}
	Black     = Color{0, 0, 0, 1}
	Coral     = Color{1, 0.5, 0.31, 1}
	Gray      = Color{0.5, 0.5, 0.5, 1}
	DarkGray  = Color{0.08, 0.10, 0.12, 1}
	WarmWhite = Color{1, 0.95, 0.85, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// RGB drops alpha, for vec3 colour uniforms.
func (c Color) RGB() mgl32.Vec3 { return mgl32.Vec3{c[0], c[1], c[2]} }

// Scale multiplies the RGB channels by k and keeps alpha.
func (c Color) Scale(k float32) Color {
	return Color{c[0] * k, c[1] * k, c[2] * k, c[3]}
}
