package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// Grid dimensions of the camera wall
	GridRows = 7
	GridCols = 7

	// Spacing between neighbouring camera mounts, world units
	GridSpacing = 1.2

	// Depth of the head pivot in front of the wall plane
	HeadOffset = 0.35

	// Depth of the invisible pointer-tracking plane in front of the wall
	PlaneDepth = 3.0
)

// Unit is a single wall-mounted camera: a fixed base and a head that
// reorients toward the shared aim target. Position is the head pivot and
// never changes after construction.
type Unit struct {
	Position    mgl32.Vec3
	Orientation mgl32.Quat
}

// HeadTransform returns the model matrix for the unit's rotatable head.
func (u *Unit) HeadTransform() mgl32.Mat4 {
	return mgl32.Translate3D(u.Position.X(), u.Position.Y(), u.Position.Z()).
		Mul4(u.Orientation.Mat4())
}

// BaseTransform returns the model matrix for the unit's fixed wall mount.
func (u *Unit) BaseTransform() mgl32.Mat4 {
	return mgl32.Translate3D(u.Position.X(), u.Position.Y(), u.Position.Z()-HeadOffset)
}

// Rig is the full grid of camera units. All heads always aim at the same
// instantaneous target; there is no per-unit state beyond position.
type Rig struct {
	Units  []Unit
	Target mgl32.Vec3
}

// NewRig lays out a GridRows x GridCols rig centered on the wall origin,
// every head initially facing straight out along +Z.
func NewRig() *Rig {
	r := &Rig{Units: make([]Unit, 0, GridRows*GridCols)}

	originX := -float32(GridCols-1) * GridSpacing / 2
	originY := -float32(GridRows-1) * GridSpacing / 2

	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			pos := mgl32.Vec3{
				originX + float32(col)*GridSpacing,
				originY + float32(row)*GridSpacing,
				HeadOffset,
			}
			r.Units = append(r.Units, Unit{
				Position:    pos,
				Orientation: lookAt(pos, pos.Add(mgl32.Vec3{0, 0, 1})),
			})
		}
	}

	r.Target = mgl32.Vec3{0, 0, PlaneDepth}
	return r
}

// Aim reorients every head toward target. Each unit computes its own look-at
// from its own fixed position, so one shared target still yields 49 distinct
// orientations.
func (r *Rig) Aim(target mgl32.Vec3) {
	r.Target = target
	for i := range r.Units {
		u := &r.Units[i]
		u.Orientation = lookAt(u.Position, target)
	}
}

// lookAt returns the orientation rotating the model's -Z forward axis from
// eye toward center. Goes through the inverted view matrix; QuatLookAtV's
// composed shortest-arc rotations leave the forward axis off the aim
// direction once the up correction kicks in.
func lookAt(eye, center mgl32.Vec3) mgl32.Quat {
	return mgl32.Mat4ToQuat(mgl32.LookAtV(eye, center, mgl32.Vec3{0, 1, 0}).Inv())
}

// HeadTransforms collects the per-unit head model matrices in grid order,
// ready for an instanced draw.
func (r *Rig) HeadTransforms() []mgl32.Mat4 {
	out := make([]mgl32.Mat4, len(r.Units))
	for i := range r.Units {
		out[i] = r.Units[i].HeadTransform()
	}
	return out
}

// BaseTransforms collects the per-unit base model matrices in grid order.
func (r *Rig) BaseTransforms() []mgl32.Mat4 {
	out := make([]mgl32.Mat4, len(r.Units))
	for i := range r.Units {
		out[i] = r.Units[i].BaseTransform()
	}
	return out
}
