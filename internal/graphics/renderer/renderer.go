package renderer

import (
	"camwall/internal/graphics"
	"camwall/internal/graphics/post"
	"camwall/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates the scene renderables and the post-processing chain.
// The scene draws into an HDR framebuffer; the bloom chain resolves it to the
// default framebuffer.
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera

	sceneFB *graphics.Framebuffer
	bloom   *post.Bloom

	envTex uint32
	width  int
	height int
}

// NewRenderer creates a renderer drawing at the given drawable size.
func NewRenderer(width, height int, envTex uint32, rs ...Renderable) (*Renderer, error) {
	// Configure OpenGL
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	sceneFB, err := graphics.NewFramebuffer(width, height, true)
	if err != nil {
		return nil, err
	}

	bloom, err := post.NewBloom(width, height)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		renderables: rs,
		camera:      graphics.NewCamera(width, height),
		sceneFB:     sceneFB,
		bloom:       bloom,
		envTex:      envTex,
		width:       width,
		height:      height,
	}

	// Initialize all renderables
	for _, renderable := range rs {
		if err := renderable.Init(); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Render draws one frame: scene pass into the HDR target, then the bloom
// chain onto the default framebuffer.
func (r *Renderer) Render(dt float64) {
	r.sceneFB.Bind()
	gl.ClearColor(0.02, 0.02, 0.03, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Camera: r.camera,
		DT:     dt,
		View:   r.camera.GetViewMatrix(),
		Proj:   r.camera.GetProjectionMatrix(),
		EnvTex: r.envTex,
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}

	func() {
		defer profiling.Track("post.Bloom")()
		r.bloom.Apply(r.sceneFB.Color, r.width, r.height)
	}()
}

// GetCamera returns the camera instance
func (r *Renderer) GetCamera() *graphics.Camera {
	return r.camera
}

// OutputSize returns the current drawable size the renderer targets.
func (r *Renderer) OutputSize() (int, int) {
	return r.width, r.height
}

// UpdateViewport resizes every render target to the new drawable size.
// Called synchronously from the framebuffer-size callback.
func (r *Renderer) UpdateViewport(width, height int) error {
	if width == 0 || height == 0 {
		return nil // minimized
	}
	r.width, r.height = width, height
	r.camera.SetViewport(width, height)

	if err := r.sceneFB.Resize(width, height); err != nil {
		return err
	}
	if err := r.bloom.Resize(width, height); err != nil {
		return err
	}
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
	return nil
}

// Dispose cleans up all renderables in reverse order, then the post chain.
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.bloom.Dispose()
	r.sceneFB.Dispose()
	if r.envTex != 0 {
		gl.DeleteTextures(1, &r.envTex)
	}
}
