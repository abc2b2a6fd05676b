package input_test

import (
	"testing"

	"camwall/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestKeyEdgeDetection(t *testing.T) {
	im := input.NewInputManager()

	im.HandleKey(glfw.KeyTab, glfw.Press)
	if !im.IsDown(input.ActionTogglePanel) {
		t.Fatalf("Expected panel action down after press")
	}
	if !im.JustPressed(input.ActionTogglePanel) {
		t.Fatalf("Expected just-pressed edge after press")
	}

	// Edge flags clear at frame end, held state stays
	im.PostUpdate()
	if im.JustPressed(input.ActionTogglePanel) {
		t.Errorf("Expected just-pressed cleared by PostUpdate")
	}
	if !im.IsDown(input.ActionTogglePanel) {
		t.Errorf("Expected action still held after PostUpdate")
	}

	im.HandleKey(glfw.KeyTab, glfw.Release)
	if im.IsDown(input.ActionTogglePanel) {
		t.Errorf("Expected action up after release")
	}
	if !im.JustReleased(input.ActionTogglePanel) {
		t.Errorf("Expected just-released edge after release")
	}
}

func TestRepeatPressIsNotAnEdge(t *testing.T) {
	im := input.NewInputManager()

	im.HandleKey(glfw.KeyF12, glfw.Press)
	im.PostUpdate()

	// OS key repeat delivers another press while held
	im.HandleKey(glfw.KeyF12, glfw.Press)
	if im.JustPressed(input.ActionScreenshot) {
		t.Errorf("Expected no edge for repeated press while held")
	}
}

func TestMouseButtonMapping(t *testing.T) {
	im := input.NewInputManager()

	im.HandleMouseButton(glfw.MouseButtonLeft, glfw.Press)
	if !im.JustPressed(input.ActionMouseLeft) {
		t.Errorf("Expected left-mouse edge after press")
	}

	im.HandleMouseButton(glfw.MouseButtonLeft, glfw.Release)
	if im.IsDown(input.ActionMouseLeft) {
		t.Errorf("Expected left mouse up after release")
	}
}
