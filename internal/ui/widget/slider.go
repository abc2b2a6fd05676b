package widget

import (
	"fmt"

	"camwall/internal/graphics"
	"camwall/internal/graphics/renderables/overlay"

	"github.com/go-gl/mathgl/mgl32"
)

// Slider edits a float value in [Min, Max] by dragging a thumb.
type Slider struct {
	BaseComponent
	Label    string
	Min, Max float32
	Value    float32
	OnChange func(val float32)

	dragging bool
	hovered  bool
}

func NewSlider(label string, x, y, w, h float32, min, max, initial float32, onChange func(val float32)) *Slider {
	return &Slider{
		BaseComponent: BaseComponent{X: x, Y: y, W: w, H: h},
		Label:         label,
		Min:           min,
		Max:           max,
		Value:         initial,
		OnChange:      onChange,
	}
}

func (s *Slider) HandleInput(ptr PointerState) bool {
	s.hovered = s.contains(ptr.X, ptr.Y)

	if ptr.JustPressed && s.hovered {
		s.dragging = true
	}
	if !ptr.Down {
		s.dragging = false
	}
	if !s.dragging {
		return false
	}

	ratio := (ptr.X - s.X) / s.W
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	val := s.Min + ratio*(s.Max-s.Min)
	if val != s.Value {
		s.Value = val
		if s.OnChange != nil {
			s.OnChange(val)
		}
	}
	return true
}

func (s *Slider) Render(o *overlay.Overlay, fr *graphics.FontRenderer) {
	// Track
	trackColor := mgl32.Vec3{0.3, 0.3, 0.3}
	if s.hovered || s.dragging {
		trackColor = mgl32.Vec3{0.38, 0.38, 0.38}
	}
	o.DrawFilledRect(s.X, s.Y, s.W, s.H, trackColor, 0.85)

	// Thumb
	ratio := (s.Value - s.Min) / (s.Max - s.Min)
	thumbW := float32(10)
	thumbX := s.X + ratio*s.W - thumbW/2
	o.DrawFilledRect(thumbX, s.Y-2, thumbW, s.H+4, mgl32.Vec3{0.85, 0.85, 0.85}, 0.95)

	if fr != nil {
		fr.Render(s.Label, s.X, s.Y-8, 1.0, mgl32.Vec3{1, 1, 1})

		// Value readout right-aligned against the track end
		value := fmt.Sprintf("%.2f", s.Value)
		valueW, _ := fr.Measure(value, 1.0)
		fr.Render(value, s.X+s.W-valueW, s.Y-8, 1.0, mgl32.Vec3{0.8, 0.8, 0.8})
	}
}
