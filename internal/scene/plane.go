package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a world-space ray with a normalized direction
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// TrackingPlane is the invisible collision surface the pointer ray is resolved
// against. It never renders; it only exists to turn a 2D cursor position into
// a 3D point.
type TrackingPlane struct {
	Point  mgl32.Vec3 // any point on the plane
	Normal mgl32.Vec3 // unit normal
}

// NewTrackingPlane creates a plane facing the viewer at the given depth
func NewTrackingPlane(depth float32) TrackingPlane {
	return TrackingPlane{
		Point:  mgl32.Vec3{0, 0, depth},
		Normal: mgl32.Vec3{0, 0, 1},
	}
}

// IntersectRay returns the intersection point of the ray with the plane.
// ok is false when the ray is parallel to the plane or the hit lies behind
// the ray origin.
func (p TrackingPlane) IntersectRay(r Ray) (mgl32.Vec3, bool) {
	denom := p.Normal.Dot(r.Direction)
	if math.Abs(float64(denom)) < 1e-7 {
		return mgl32.Vec3{}, false
	}

	t := p.Normal.Dot(p.Point.Sub(r.Origin)) / denom
	if t < 0 {
		return mgl32.Vec3{}, false
	}

	return r.Origin.Add(r.Direction.Mul(t)), true
}
