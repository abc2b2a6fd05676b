package widget

import (
	"camwall/internal/graphics"
	"camwall/internal/graphics/renderables/overlay"
)

// PointerState is the per-frame mouse state widgets react to, in pixels.
type PointerState struct {
	X, Y        float32
	Down        bool
	JustPressed bool
}

type Component interface {
	Render(o *overlay.Overlay, fr *graphics.FontRenderer)
	HandleInput(ptr PointerState) bool
	SetPosition(x, y float32)
	GetSize() (float32, float32)
}

type BaseComponent struct {
	X, Y, W, H float32
}

func (b *BaseComponent) SetPosition(x, y float32)    { b.X, b.Y = x, y }
func (b *BaseComponent) GetSize() (float32, float32) { return b.W, b.H }

func (b *BaseComponent) contains(x, y float32) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}
