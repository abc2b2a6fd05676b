package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Picker converts cursor positions in window pixels into world-space rays by
// unprojecting through the current view and projection matrices.
type Picker struct {
	view mgl32.Mat4
	proj mgl32.Mat4
}

func NewPicker(view, proj mgl32.Mat4) *Picker {
	return &Picker{view: view, proj: proj}
}

// SetMatrices updates the matrices the picker unprojects through. Called when
// the viewport resizes or the view camera moves.
func (pk *Picker) SetMatrices(view, proj mgl32.Mat4) {
	pk.view = view
	pk.proj = proj
}

// PointerRay builds a ray from the view camera through the cursor position.
// xpos/ypos are window pixel coordinates with a top-left origin, as GLFW
// reports them.
func (pk *Picker) PointerRay(xpos, ypos float64, width, height int) Ray {
	ndcX := 2.0*float32(xpos)/float32(width) - 1.0
	ndcY := 1.0 - 2.0*float32(ypos)/float32(height)
	return pk.NDCRay(ndcX, ndcY)
}

// NDCRay builds a ray through the given normalized device coordinates.
func (pk *Picker) NDCRay(ndcX, ndcY float32) Ray {
	inv := pk.proj.Mul4(pk.view).Inv()

	near := inv.Mul4x1(mgl32.Vec4{ndcX, ndcY, -1, 1})
	far := inv.Mul4x1(mgl32.Vec4{ndcX, ndcY, 1, 1})
	near = near.Mul(1.0 / near.W())
	far = far.Mul(1.0 / far.W())

	origin := near.Vec3()
	dir := far.Vec3().Sub(origin).Normalize()

	return Ray{Origin: origin, Direction: dir}
}

// AimTarget derives the look target the camera heads orient toward from a
// tracking-plane hit point. The vertical exaggeration applies only here; the
// displayed cursor keeps the unscaled hit position.
func AimTarget(hit mgl32.Vec3, yScale float32) mgl32.Vec3 {
	return mgl32.Vec3{hit.X(), hit.Y() * yScale, hit.Z()}
}
