package panel

import (
	"camwall/internal/config"
	"camwall/internal/graphics"
	"camwall/internal/graphics/renderables/overlay"
	"camwall/internal/profiling"
	"camwall/internal/ui/widget"

	"github.com/go-gl/mathgl/mgl32"
)

// Panel is the debug parameter panel. It exists only when CAMWALL_DEBUG is
// set and touches core state exclusively through the config accessors.
type Panel struct {
	overlay *overlay.Overlay
	font    *graphics.FontRenderer

	components []widget.Component
	visible    bool

	lastDown bool
}

const (
	panelX = 16
	panelY = 16
	panelW = 300
)

// New builds the panel with sliders bound to the tunable render parameters.
func New(ov *overlay.Overlay, fr *graphics.FontRenderer) *Panel {
	p := &Panel{overlay: ov, font: fr, visible: true}

	x := float32(panelX + 12)
	w := float32(panelW - 24)
	y := float32(panelY + 40)
	step := float32(48)

	p.components = append(p.components,
		widget.NewSlider("Bloom threshold", x, y, w, 12,
			0, 4, config.GetBloomThreshold(), config.SetBloomThreshold))
	y += step
	p.components = append(p.components,
		widget.NewSlider("Bloom strength", x, y, w, 12,
			0, 2, config.GetBloomStrength(), config.SetBloomStrength))
	y += step
	p.components = append(p.components,
		widget.NewSlider("Aim Y scale", x, y, w, 12,
			0.5, 3, config.GetAimYScale(), config.SetAimYScale))
	y += step
	p.components = append(p.components,
		widget.NewToggle("Cap 60 FPS", x, y, 24, 16,
			config.GetFPSLimit() == 60, func(on bool) {
				if on {
					config.SetFPSLimit(60)
				} else {
					config.SetFPSLimit(0)
				}
			}))

	return p
}

// ToggleVisible flips panel visibility.
func (p *Panel) ToggleVisible() {
	p.visible = !p.visible
}

// Visible reports whether the panel is currently drawn.
func (p *Panel) Visible() bool {
	return p.visible
}

// Update feeds the current mouse state to the widgets. Returns true when the
// panel consumed the pointer.
func (p *Panel) Update(mx, my float64, mouseDown bool) bool {
	if !p.visible {
		p.lastDown = mouseDown
		return false
	}

	ptr := widget.PointerState{
		X:           float32(mx),
		Y:           float32(my),
		Down:        mouseDown,
		JustPressed: mouseDown && !p.lastDown,
	}
	p.lastDown = mouseDown

	consumed := false
	for _, c := range p.components {
		if c.HandleInput(ptr) {
			consumed = true
		}
	}
	return consumed
}

// Render draws the panel on top of the composited frame.
func (p *Panel) Render() {
	if !p.visible {
		return
	}

	height := float32(64 + 48*len(p.components))
	p.overlay.DrawFilledRect(panelX, panelY, panelW, height, mgl32.Vec3{0.05, 0.05, 0.05}, 0.75)

	p.font.Render("camwall debug", panelX+12, panelY+22, 1.0, mgl32.Vec3{1, 1, 1})

	for _, c := range p.components {
		c.Render(p.overlay, p.font)
	}

	// Frame-time breakdown of the worst offenders
	p.font.Render(profiling.TopN(3), panelX+12, panelY+height-12, 0.8, mgl32.Vec3{0.7, 0.7, 0.7})
}

// SetViewport is forwarded to the drawing helpers by the renderer; nothing to
// do here since panel geometry is anchored to the top-left corner.
func (p *Panel) SetViewport(width, height int) {}
