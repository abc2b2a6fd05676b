package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera handles the view and projection matrices for the fixed viewer in
// front of the wall.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3

	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
}

func NewCamera(width, height int) *Camera {
	return &Camera{
		Position:    mgl32.Vec3{0, 0, 10},
		Target:      mgl32.Vec3{0, 0, 0},
		AspectRatio: float32(width) / float32(height),
		FOV:         50.0,
		NearPlane:   0.1,
		FarPlane:    100.0,
	}
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, mgl32.Vec3{0, 1, 0})
}

// SetViewport updates the aspect ratio for a new drawable size.
func (c *Camera) SetViewport(width, height int) {
	c.AspectRatio = float32(width) / float32(height)
}
