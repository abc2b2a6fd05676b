package scene_test

import (
	"testing"

	"camwall/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRigLayout(t *testing.T) {
	rig := scene.NewRig()

	if len(rig.Units) != scene.GridRows*scene.GridCols {
		t.Fatalf("Expected %d units, got %d", scene.GridRows*scene.GridCols, len(rig.Units))
	}

	// Positions must be unique and symmetric about the wall origin
	var sum mgl32.Vec3
	seen := make(map[mgl32.Vec3]bool)
	for _, u := range rig.Units {
		if seen[u.Position] {
			t.Errorf("Duplicate unit position %v", u.Position)
		}
		seen[u.Position] = true
		sum = sum.Add(u.Position)
	}
	center := sum.Mul(1.0 / float32(len(rig.Units)))
	if !center.ApproxEqualThreshold(mgl32.Vec3{0, 0, scene.HeadOffset}, 1e-4) {
		t.Errorf("Expected grid centered at {0,0,%v}, got %v", float32(scene.HeadOffset), center)
	}
}

func TestAimSharedTargetDistinctOrientations(t *testing.T) {
	rig := scene.NewRig()
	target := mgl32.Vec3{0.8, 1.2, scene.PlaneDepth}

	rig.Aim(target)

	if rig.Target != target {
		t.Fatalf("Expected rig target %v, got %v", target, rig.Target)
	}

	// Every head's orientation must equal the look-at computed from its own
	// fixed position toward the one shared target.
	up := mgl32.Vec3{0, 1, 0}
	orientations := make(map[[4]float32]int)
	for i, u := range rig.Units {
		want := mgl32.Mat4ToQuat(mgl32.LookAtV(u.Position, target, up).Inv())
		if !u.Orientation.ApproxEqualThreshold(want, 1e-5) {
			t.Errorf("Unit %d: orientation %v, want look-at %v", i, u.Orientation, want)
		}
		key := [4]float32{u.Orientation.W, u.Orientation.X(), u.Orientation.Y(), u.Orientation.Z()}
		orientations[key]++
	}

	// Distinct positions imply distinct orientations toward one point
	if len(orientations) != len(rig.Units) {
		t.Errorf("Expected %d distinct orientations, got %d", len(rig.Units), len(orientations))
	}
}

func TestAimRotatesHeadTowardTarget(t *testing.T) {
	rig := scene.NewRig()
	target := mgl32.Vec3{2, 3, scene.PlaneDepth}
	rig.Aim(target)

	for i, u := range rig.Units {
		// Rotating the forward axis by the head orientation must point at the
		// target. Heads face -Z in model space.
		forward := u.Orientation.Rotate(mgl32.Vec3{0, 0, -1})
		want := target.Sub(u.Position).Normalize()
		if !forward.ApproxEqualThreshold(want, 1e-4) {
			t.Fatalf("Unit %d: forward %v, want %v", i, forward, want)
		}
	}
}

func TestHeadTransformsTranslateToUnitPositions(t *testing.T) {
	rig := scene.NewRig()
	rig.Aim(mgl32.Vec3{-1, 0.5, scene.PlaneDepth})

	mats := rig.HeadTransforms()
	if len(mats) != len(rig.Units) {
		t.Fatalf("Expected %d matrices, got %d", len(rig.Units), len(mats))
	}
	for i, m := range mats {
		origin := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
		if !origin.ApproxEqualThreshold(rig.Units[i].Position, 1e-5) {
			t.Errorf("Unit %d: transform origin %v, want %v", i, origin, rig.Units[i].Position)
		}
	}
}
