package main

import (
	"context"
	"runtime"

	"camwall/internal/app"
	"camwall/internal/input"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	// Window setup
	window, err := setupWindow()
	if err != nil {
		panic(err)
	}

	if err := gl.Init(); err != nil {
		panic(err)
	}

	inputManager := input.NewInputManager()

	a, err := app.New(context.Background(), window, inputManager, "assets")
	if err != nil {
		panic(err)
	}

	// Release GL resources on normal exit and on SIGINT
	closer.Bind(a.Teardown)
	defer closer.Close()

	setupInputHandlers(window, a, inputManager)

	a.Run()
}
