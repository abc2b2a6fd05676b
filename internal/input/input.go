package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical application action, not a physical key
type Action int

const (
	ActionQuit Action = iota
	ActionTogglePanel
	ActionScreenshot
	ActionMouseLeft
	ActionCount // Sentinel value for array sizing
)

// InputManager maps physical keys and buttons to logical actions and tracks
// per-frame pressed/released edges.
type InputManager struct {
	mu sync.RWMutex

	keyToActions         map[glfw.Key][]Action
	mouseButtonToActions map[glfw.MouseButton][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
}

// NewInputManager creates an InputManager with the default bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}

	im.BindKey(glfw.KeyEscape, ActionQuit)
	im.BindKey(glfw.KeyTab, ActionTogglePanel)
	im.BindKey(glfw.KeyF12, ActionScreenshot)
	im.BindMouseButton(glfw.MouseButtonLeft, ActionMouseLeft)

	return im
}

// BindKey maps a key to an action
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// BindMouseButton maps a mouse button to an action
func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.mouseButtonToActions[button] = append(im.mouseButtonToActions[button], action)
}

// HandleKey processes a GLFW key event
func (im *InputManager) HandleKey(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	for _, a := range im.keyToActions[key] {
		switch action {
		case glfw.Press:
			if !im.currentState[a] {
				im.justPressed[a] = true
			}
			im.currentState[a] = true
		case glfw.Release:
			if im.currentState[a] {
				im.justReleased[a] = true
			}
			im.currentState[a] = false
		}
	}
}

// HandleMouseButton processes a GLFW mouse button event
func (im *InputManager) HandleMouseButton(button glfw.MouseButton, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	for _, a := range im.mouseButtonToActions[button] {
		switch action {
		case glfw.Press:
			if !im.currentState[a] {
				im.justPressed[a] = true
			}
			im.currentState[a] = true
		case glfw.Release:
			if im.currentState[a] {
				im.justReleased[a] = true
			}
			im.currentState[a] = false
		}
	}
}

// IsDown reports whether the action is currently held
func (im *InputManager) IsDown(a Action) bool {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.currentState[a]
}

// JustPressed reports whether the action was pressed this frame
func (im *InputManager) JustPressed(a Action) bool {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justPressed[a]
}

// JustReleased reports whether the action was released this frame
func (im *InputManager) JustReleased(a Action) bool {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justReleased[a]
}

// PostUpdate clears the per-frame edge flags. Call once at the end of each frame.
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()
	for i := range im.justPressed {
		im.justPressed[i] = false
		im.justReleased[i] = false
	}
}
