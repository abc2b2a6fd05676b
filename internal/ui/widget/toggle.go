package widget

import (
	"camwall/internal/graphics"
	"camwall/internal/graphics/renderables/overlay"

	"github.com/go-gl/mathgl/mgl32"
)

type Toggle struct {
	BaseComponent
	Label    string
	IsOn     bool
	OnToggle func(isOn bool)

	hovered bool
}

func NewToggle(label string, x, y, w, h float32, initial bool, onToggle func(isOn bool)) *Toggle {
	return &Toggle{
		BaseComponent: BaseComponent{X: x, Y: y, W: w, H: h},
		Label:         label,
		IsOn:          initial,
		OnToggle:      onToggle,
	}
}

func (t *Toggle) HandleInput(ptr PointerState) bool {
	t.hovered = t.contains(ptr.X, ptr.Y)
	if t.hovered && ptr.JustPressed {
		t.IsOn = !t.IsOn
		if t.OnToggle != nil {
			t.OnToggle(t.IsOn)
		}
		return true
	}
	return false
}

func (t *Toggle) Render(o *overlay.Overlay, fr *graphics.FontRenderer) {
	bgColor := mgl32.Vec3{0.5, 0.2, 0.2}
	if t.IsOn {
		bgColor = mgl32.Vec3{0.2, 0.5, 0.2}
	}
	if t.hovered {
		bgColor = bgColor.Mul(1.2)
	}

	o.DrawFilledRect(t.X, t.Y, t.W, t.H, bgColor, 0.85)

	if fr != nil {
		fr.Render(t.Label, t.X+t.W+10, t.Y+t.H-4, 1.0, mgl32.Vec3{1, 1, 1})
	}
}
