package main

import (
	"camwall/internal/app"
	"camwall/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupInputHandlers(window *glfw.Window, a *app.App, im *input.InputManager) {
	// Pointer tracking: every cursor event re-aims the rig
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		a.OnCursorMoved(xpos, ypos)
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButton(button, action)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKey(key, action)
	})

	// Resize updates the drawable synchronously, no debouncing
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		a.OnResize(width, height)
	})
}
