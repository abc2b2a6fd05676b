package graphics_test

import (
	"testing"

	"camwall/internal/graphics"
)

func TestSetViewportUpdatesAspectExactly(t *testing.T) {
	c := graphics.NewCamera(900, 600)

	if c.AspectRatio != 900.0/600.0 {
		t.Fatalf("Expected initial aspect 1.5, got %f", c.AspectRatio)
	}

	c.SetViewport(1280, 720)
	if c.AspectRatio != float32(1280)/float32(720) {
		t.Errorf("Expected aspect 1280/720, got %f", c.AspectRatio)
	}

	c.SetViewport(600, 900)
	if c.AspectRatio != float32(600)/float32(900) {
		t.Errorf("Expected aspect 600/900, got %f", c.AspectRatio)
	}
}

func TestProjectionMatrixTracksAspect(t *testing.T) {
	c := graphics.NewCamera(800, 600)
	before := c.GetProjectionMatrix()

	c.SetViewport(1600, 600)
	after := c.GetProjectionMatrix()

	// Horizontal scale halves when the aspect ratio doubles
	ratio := before.At(0, 0) / after.At(0, 0)
	if ratio < 1.999 || ratio > 2.001 {
		t.Errorf("Expected m00 ratio 2.0 after doubling aspect, got %f", ratio)
	}
}
