package platform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/lighting/engine/core"
)

func TestTranslateKey(t *testing.T) {
	cases := []struct {
		in   glfw.Key
		want core.Key
	}{
		{glfw.KeyEscape, core.KeyEscape},
		{glfw.KeyW, core.KeyW},
		{glfw.KeyQ, core.KeyQ},
		{glfw.KeyE, core.KeyE},
		{glfw.KeyP, core.KeyP},
		{glfw.KeyF1, core.KeyUnknown},
	}
	for _, c := range cases {
		if got := translateKey(c.in); got != c.want {
			t.Errorf("translateKey(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestTranslateMods(t *testing.T) {
	got := translateMods(glfw.ModShift | glfw.ModControl)
	if got != core.ModShift|core.ModCtrl {
		t.Fatalf("translateMods = %b", got)
	}
	if translateMods(0) != core.ModNone {
		t.Fatal("no modifiers should map to ModNone")
	}
}
