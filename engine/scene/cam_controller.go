package scene

import "github.com/hubastard/lighting/engine/core"

// FlyController: WASD move, Q/E turn, scroll zooms the field of view.
type FlyController struct {
	MoveSpeed float32 // units per second
	TurnSpeed float32 // degrees per second
	ZoomStep  float32 // degrees per scroll notch
	Camera    *PerspectiveCamera
}

func NewFlyController(cam *PerspectiveCamera) *FlyController {
	return &FlyController{
		MoveSpeed: 2.5,
		TurnSpeed: 90,
		ZoomStep:  2,
		Camera:    cam,
	}
}

func (fc *FlyController) Update(in *core.Input, dt float32) {
	speed := fc.MoveSpeed * dt

	if in.IsKeyDown(core.KeyW) {
		fc.Camera.MoveForward(speed)
	}
	if in.IsKeyDown(core.KeyS) {
		fc.Camera.MoveForward(-speed)
	}
	if in.IsKeyDown(core.KeyA) {
		fc.Camera.MoveRight(-speed)
	}
	if in.IsKeyDown(core.KeyD) {
		fc.Camera.MoveRight(speed)
	}
	if in.IsKeyDown(core.KeyQ) {
		fc.Camera.Rotate(-fc.TurnSpeed*dt, 0)
	}
	if in.IsKeyDown(core.KeyE) {
		fc.Camera.Rotate(fc.TurnSpeed*dt, 0)
	}
	if s := in.TakeScroll(); s != 0 {
		fc.Camera.SetFOV(fc.Camera.FOV - float32(s)*fc.ZoomStep)
	}
}
