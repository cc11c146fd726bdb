package colors

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRGB(t *testing.T) {
	if got := Coral.WithAlpha(0.2).RGB(); got != (mgl32.Vec3{1, 0.5, 0.31}) {
		t.Fatalf("RGB = %v", got)
	}
}

func TestScale(t *testing.T) {
	got := White.WithAlpha(0.5).Scale(0.25)
	if got != (Color{0.25, 0.25, 0.25, 0.5}) {
		t.Fatalf("Scale = %v", got)
	}
}
