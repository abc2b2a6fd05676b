package panel

import "testing"

func TestToggleVisibleFlipsState(t *testing.T) {
	p := New(nil, nil)

	if !p.Visible() {
		t.Fatal("Expected panel visible after construction")
	}
	p.ToggleVisible()
	if p.Visible() {
		t.Error("Expected panel hidden after toggle")
	}
	p.ToggleVisible()
	if !p.Visible() {
		t.Error("Expected panel visible after second toggle")
	}
}

func TestHiddenPanelConsumesNoInput(t *testing.T) {
	p := New(nil, nil)

	// Press inside the first slider's track
	x, y := float64(panelX+20), float64(panelY+42)

	p.ToggleVisible()
	if p.Update(x, y, true) {
		t.Error("Expected hidden panel to ignore the pointer")
	}
	p.Update(x, y, false)

	p.ToggleVisible()
	if !p.Update(x, y, true) {
		t.Error("Expected visible panel to consume a press on a widget")
	}
}
