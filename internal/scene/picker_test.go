package scene_test

import (
	"testing"

	"camwall/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

func defaultMatrices() (mgl32.Mat4, mgl32.Mat4) {
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(50), 900.0/600.0, 0.1, 100.0)
	return view, proj
}

func TestCenterNDCHitsPlaneCenter(t *testing.T) {
	view, proj := defaultMatrices()
	pk := scene.NewPicker(view, proj)
	plane := scene.NewTrackingPlane(scene.PlaneDepth)

	ray := pk.NDCRay(0, 0)

	// The center ray must run straight down the view axis
	if !ray.Direction.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-4) {
		t.Fatalf("Expected center ray along -Z, got %v", ray.Direction)
	}

	hit, ok := plane.IntersectRay(ray)
	if !ok {
		t.Fatalf("Expected center ray to hit tracking plane")
	}
	if !hit.ApproxEqualThreshold(mgl32.Vec3{0, 0, scene.PlaneDepth}, 1e-4) {
		t.Errorf("Expected hit at plane center {0,0,%v}, got %v", float32(scene.PlaneDepth), hit)
	}
}

func TestPointerRayMatchesNDCConversion(t *testing.T) {
	view, proj := defaultMatrices()
	pk := scene.NewPicker(view, proj)

	// Window center in pixels must produce the same ray as NDC (0,0)
	width, height := 900, 600
	fromPixels := pk.PointerRay(450, 300, width, height)
	fromNDC := pk.NDCRay(0, 0)

	if !fromPixels.Direction.ApproxEqualThreshold(fromNDC.Direction, 1e-6) {
		t.Errorf("Pixel-center ray %v does not match NDC-center ray %v",
			fromPixels.Direction, fromNDC.Direction)
	}

	// Top-left pixel maps to NDC (-1, +1): the ray must head up and left
	corner := pk.PointerRay(0, 0, width, height)
	if corner.Direction.X() >= 0 || corner.Direction.Y() <= 0 {
		t.Errorf("Expected top-left ray heading up-left, got %v", corner.Direction)
	}
}

func TestAimTargetScalesOnlyY(t *testing.T) {
	hit := mgl32.Vec3{2, 4, scene.PlaneDepth}

	target := scene.AimTarget(hit, 1.5)

	if target.X() != hit.X() || target.Z() != hit.Z() {
		t.Errorf("Expected X/Z untouched, got %v", target)
	}
	if target.Y() != 6 {
		t.Errorf("Expected Y scaled to 6, got %f", target.Y())
	}

	// The hit itself must stay unscaled: it is what the cursor mesh uses
	if hit.Y() != 4 {
		t.Errorf("AimTarget mutated its input: %v", hit)
	}
}
