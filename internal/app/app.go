package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"camwall/internal/assets"
	"camwall/internal/config"
	"camwall/internal/graphics"
	"camwall/internal/graphics/renderables/camgrid"
	"camwall/internal/graphics/renderables/cursor"
	"camwall/internal/graphics/renderables/overlay"
	"camwall/internal/graphics/renderables/sky"
	"camwall/internal/graphics/renderables/wall"
	"camwall/internal/graphics/renderer"
	"camwall/internal/input"
	"camwall/internal/profiling"
	"camwall/internal/scene"
	"camwall/internal/ui/panel"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const fontFile = "assets/fonts/IBMPlexMono-Regular.otf"

// App owns all scene state and ties it to an explicit init/teardown pair.
// Event handlers receive it by reference; nothing lives at package level.
type App struct {
	window       *glfw.Window
	inputManager *input.InputManager

	renderer *renderer.Renderer
	rig      *scene.Rig
	plane    scene.TrackingPlane
	picker   *scene.Picker

	camGrid   *camgrid.CamGrid
	cursorObj *cursor.Cursor

	// Debug-only overlay stack; all nil unless CAMWALL_DEBUG is set
	overlayUI  *overlay.Overlay
	fontRender *graphics.FontRenderer
	debugPanel *panel.Panel

	fpsLimiter *FPSLimiter
	lastTime   time.Time

	winW, winH int // window coordinates, for pointer math
	fbW, fbH   int // drawable pixels, for render targets

	frames       int
	lastFPSCheck time.Time

	torndown bool
}

// New loads all assets, builds the rendering pipeline and wires the scene.
// It must run on the main thread with the GL context current. A failed asset
// load aborts construction; there is no partial scene.
func New(ctx context.Context, window *glfw.Window, im *input.InputManager, assetsDir string) (*App, error) {
	a := &App{
		window:       window,
		inputManager: im,
		rig:          scene.NewRig(),
		plane:        scene.NewTrackingPlane(scene.PlaneDepth),
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
		lastFPSCheck: time.Now(),
	}
	a.winW, a.winH = window.GetSize()
	a.fbW, a.fbH = window.GetFramebufferSize()

	bundle, err := assets.LoadBundle(ctx, assetsDir)
	if err != nil {
		return nil, err
	}

	// GPU uploads happen here, after the load barrier, on the main thread
	envTex := graphics.UploadEnvironment(bundle.Env)

	a.camGrid = camgrid.NewCamGrid(bundle.CamBase, bundle.CamHead, a.rig)
	a.cursorObj = cursor.NewCursor(bundle.Cursor)

	a.renderer, err = renderer.NewRenderer(a.fbW, a.fbH, envTex,
		sky.NewSky(),
		wall.NewWall(bundle.Wall),
		a.camGrid,
		a.cursorObj,
	)
	if err != nil {
		return nil, fmt.Errorf("init renderer: %w", err)
	}

	cam := a.renderer.GetCamera()
	a.picker = scene.NewPicker(cam.GetViewMatrix(), cam.GetProjectionMatrix())

	if config.DebugPanelEnabled() {
		if err := a.initDebugPanel(); err != nil {
			return nil, fmt.Errorf("init debug panel: %w", err)
		}
	}

	return a, nil
}

func (a *App) initDebugPanel() error {
	a.overlayUI = overlay.NewOverlay(a.winW, a.winH)
	if err := a.overlayUI.Init(); err != nil {
		return err
	}

	atlas, err := graphics.BuildFontAtlas(fontFile, 14)
	if err != nil {
		return err
	}
	a.fontRender, err = graphics.NewFontRenderer(atlas, a.winW, a.winH)
	if err != nil {
		return err
	}

	a.debugPanel = panel.New(a.overlayUI, a.fontRender)
	return nil
}

// Run drives the frame loop until the window closes.
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	// Pointer and resize handlers fire inside PollEvents; aiming is
	// event-driven, not recomputed per frame.
	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	a.handleActions()

	if a.debugPanel != nil {
		mx, my := a.window.GetCursorPos()
		a.debugPanel.Update(mx, my, a.inputManager.IsDown(input.ActionMouseLeft))
	}

	func() { defer profiling.Track("renderer.Render")(); a.renderer.Render(dt) }()
	if a.debugPanel != nil {
		a.debugPanel.Render()
	}

	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	frameDur := time.Since(now)
	if frameDur > 33*time.Millisecond {
		log.Printf("Slow frame: %v (glfw %v). Top tasks: %s",
			frameDur, profiling.SumWithPrefix("glfw."), profiling.TopN(5))
	}

	a.frames++
	if time.Since(a.lastFPSCheck) >= time.Second {
		if a.debugPanel != nil && a.debugPanel.Visible() {
			fmt.Println("FPS: ", a.frames)
		}
		a.frames = 0
		a.lastFPSCheck = time.Now()
	}

	a.inputManager.PostUpdate()
	a.fpsLimiter.Wait()
}

func (a *App) handleActions() {
	if a.inputManager.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	if a.debugPanel != nil && a.inputManager.JustPressed(input.ActionTogglePanel) {
		a.debugPanel.ToggleVisible()
	}
	if a.inputManager.JustPressed(input.ActionScreenshot) {
		// The renderer ignores zero-sized resizes, so its output size is the
		// drawable actually on screen
		name, err := graphics.CaptureScreenshot(a.renderer.OutputSize())
		if err != nil {
			log.Printf("screenshot failed: %v", err)
		} else {
			log.Printf("screenshot saved: %s", name)
		}
	}
}

// OnCursorMoved projects the pointer onto the tracking plane and re-aims the
// rig. Runs once per cursor event. The cursor mesh keeps the unscaled hit;
// only the aim target gets the Y exaggeration.
func (a *App) OnCursorMoved(xpos, ypos float64) {
	ray := a.picker.PointerRay(xpos, ypos, a.winW, a.winH)
	hit, ok := a.plane.IntersectRay(ray)
	if !ok {
		return
	}

	a.cursorObj.SetPosition(hit)
	a.rig.Aim(scene.AimTarget(hit, config.GetAimYScale()))
	a.camGrid.MarkAimed()
}

// OnResize updates every size-dependent resource synchronously.
func (a *App) OnResize(width, height int) {
	a.winW, a.winH = a.window.GetSize()
	a.fbW, a.fbH = width, height

	if err := a.renderer.UpdateViewport(width, height); err != nil {
		log.Printf("resize failed: %v", err)
		return
	}

	cam := a.renderer.GetCamera()
	a.picker.SetMatrices(cam.GetViewMatrix(), cam.GetProjectionMatrix())

	if a.overlayUI != nil {
		a.overlayUI.SetViewport(a.winW, a.winH)
	}
	if a.fontRender != nil {
		a.fontRender.SetViewport(a.winW, a.winH)
	}
}

// Teardown releases GL resources. Safe to call more than once.
func (a *App) Teardown() {
	if a.torndown {
		return
	}
	a.torndown = true

	if a.fontRender != nil {
		a.fontRender.Dispose()
	}
	if a.overlayUI != nil {
		a.overlayUI.Dispose()
	}
	if a.renderer != nil {
		a.renderer.Dispose()
	}
}
