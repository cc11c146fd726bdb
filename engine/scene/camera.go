package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// PerspectiveCamera is a yaw/pitch fly camera. Angles are in degrees.
type PerspectiveCamera struct {
	Position   mgl32.Vec3
	Yaw, Pitch float32
	FOV        float32
	Aspect     float32
	Near, Far  float32
	view, proj mgl32.Mat4
	dirty      bool
}

var worldUp = mgl32.Vec3{0, 1, 0}

// Field of view limits in degrees, shared by the camera and config validation.
const (
	MinFOV float32 = 1
	MaxFOV float32 = 90
)

// NewPerspective looks down -Z from pos. fov is clamped like SetFOV.
func NewPerspective(width, height int, fov float32, pos mgl32.Vec3) *PerspectiveCamera {
	c := &PerspectiveCamera{
		Position: pos,
		Yaw:      -90,
		Near:     0.1,
		Far:      100,
	}
	c.SetFOV(fov)
	c.SetViewportPixels(width, height)
	c.Recalculate()
	return c
}

func (c *PerspectiveCamera) SetViewportPixels(w, h int) {
	if w < 1 || h < 1 {
		return
	}
	c.Aspect = float32(w) / float32(h)
	c.dirty = true
}

func (c *PerspectiveCamera) Move(d mgl32.Vec3) {
	c.Position = c.Position.Add(d)
	c.dirty = true
}

// MoveForward moves along the view direction, MoveRight perpendicular to it.
func (c *PerspectiveCamera) MoveForward(d float32) { c.Move(c.Front().Mul(d)) }
func (c *PerspectiveCamera) MoveRight(d float32)   { c.Move(c.Right().Mul(d)) }

// Rotate turns the camera; pitch stays within ±89° so the view never flips.
func (c *PerspectiveCamera) Rotate(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch = mgl32.Clamp(c.Pitch+dPitch, -89, 89)
	c.dirty = true
}

func (c *PerspectiveCamera) SetFOV(deg float32) {
	c.FOV = mgl32.Clamp(deg, MinFOV, MaxFOV)
	c.dirty = true
}

func (c *PerspectiveCamera) Front() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	return mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
}

func (c *PerspectiveCamera) Right() mgl32.Vec3 { return c.Front().Cross(worldUp).Normalize() }

func (c *PerspectiveCamera) View() mgl32.Mat4 {
	if c.dirty {
		c.Recalculate()
	}
	return c.view
}

func (c *PerspectiveCamera) Projection() mgl32.Mat4 {
	if c.dirty {
		c.Recalculate()
	}
	return c.proj
}

func (c *PerspectiveCamera) Recalculate() {
	c.view = mgl32.LookAtV(c.Position, c.Position.Add(c.Front()), worldUp)
	c.proj = mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
	c.dirty = false
}
