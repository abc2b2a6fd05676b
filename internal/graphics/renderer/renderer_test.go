package renderer

import "testing"

func TestOutputSizeSurvivesZeroSizedResize(t *testing.T) {
	r := &Renderer{width: 800, height: 600}

	if w, h := r.OutputSize(); w != 800 || h != 600 {
		t.Fatalf("Expected output size (800, 600), got (%d, %d)", w, h)
	}

	// Minimized windows report a zero-sized drawable; the render targets
	// must keep their last real size.
	if err := r.UpdateViewport(0, 600); err != nil {
		t.Fatalf("Zero-width resize returned error: %v", err)
	}
	if err := r.UpdateViewport(800, 0); err != nil {
		t.Fatalf("Zero-height resize returned error: %v", err)
	}

	if w, h := r.OutputSize(); w != 800 || h != 600 {
		t.Errorf("Expected output size unchanged after zero-sized resizes, got (%d, %d)", w, h)
	}
}
