package scene_test

import (
	"testing"

	"camwall/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

func TestPlaneIntersection(t *testing.T) {
	plane := scene.NewTrackingPlane(3.0)

	// Ray straight down the view axis from in front of the plane
	ray := scene.Ray{
		Origin:    mgl32.Vec3{0, 0, 10},
		Direction: mgl32.Vec3{0, 0, -1},
	}

	hit, ok := plane.IntersectRay(ray)
	if !ok {
		t.Fatalf("Expected hit, got miss")
	}
	if !hit.ApproxEqualThreshold(mgl32.Vec3{0, 0, 3}, 1e-5) {
		t.Errorf("Expected hit at {0,0,3}, got %v", hit)
	}

	// Oblique ray still lands at the plane depth
	rayOblique := scene.Ray{
		Origin:    mgl32.Vec3{0, 0, 10},
		Direction: mgl32.Vec3{1, 1, -1}.Normalize(),
	}
	hitOblique, ok := plane.IntersectRay(rayOblique)
	if !ok {
		t.Fatalf("Expected oblique hit, got miss")
	}
	if diff := hitOblique.Z() - 3.0; diff > 1e-5 || diff < -1e-5 {
		t.Errorf("Expected hit at plane depth 3, got z=%f", hitOblique.Z())
	}
	if !hitOblique.ApproxEqualThreshold(mgl32.Vec3{7, 7, 3}, 1e-4) {
		t.Errorf("Expected hit at {7,7,3}, got %v", hitOblique)
	}
}

func TestPlaneMissesBehindOrigin(t *testing.T) {
	plane := scene.NewTrackingPlane(3.0)

	// Ray pointing away from the plane
	ray := scene.Ray{
		Origin:    mgl32.Vec3{0, 0, 10},
		Direction: mgl32.Vec3{0, 0, 1},
	}
	if _, ok := plane.IntersectRay(ray); ok {
		t.Errorf("Expected miss for ray pointing away from plane")
	}

	// Ray parallel to the plane
	rayParallel := scene.Ray{
		Origin:    mgl32.Vec3{0, 0, 10},
		Direction: mgl32.Vec3{1, 0, 0},
	}
	if _, ok := plane.IntersectRay(rayParallel); ok {
		t.Errorf("Expected miss for ray parallel to plane")
	}
}
