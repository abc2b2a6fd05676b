package overlay

import (
	"path/filepath"

	"camwall/internal/graphics"
	"camwall/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	ShadersDir = "assets/shaders/overlay"
)

var (
	VertShader = filepath.Join(ShadersDir, "overlay.vert")
	FragShader = filepath.Join(ShadersDir, "overlay.frag")
)

// Overlay draws screen-space rectangles in pixel coordinates on top of the
// composited frame. The debug panel is its only client.
type Overlay struct {
	shader     *graphics.Shader
	projection mgl32.Mat4
	vao        uint32
	vbo        uint32
}

// NewOverlay creates the 2D overlay renderable for the given drawable size
func NewOverlay(width, height int) *Overlay {
	return &Overlay{
		projection: mgl32.Ortho(0, float32(width), float32(height), 0, 0, 1),
	}
}

// Init compiles the shader and prepares a dynamic quad buffer
func (o *Overlay) Init() error {
	var err error
	o.shader, err = graphics.NewShader(VertShader, FragShader)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 6*2*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return nil
}

// Render is a no-op: the panel drives the overlay directly after the post
// chain so its rectangles land on the final framebuffer.
func (o *Overlay) Render(ctx renderer.RenderContext) {}

// DrawFilledRect draws a translucent rectangle in pixel coordinates.
func (o *Overlay) DrawFilledRect(x, y, w, h float32, color mgl32.Vec3, alpha float32) {
	verts := []float32{
		x, y,
		x + w, y,
		x + w, y + h,
		x, y,
		x + w, y + h,
		x, y + h,
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	o.shader.Use()
	o.shader.SetMat4("projection", o.projection)
	o.shader.SetVec3("color", color)
	o.shader.SetFloat("alpha", alpha)

	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// SetViewport updates the pixel projection for a new drawable size.
func (o *Overlay) SetViewport(width, height int) {
	o.projection = mgl32.Ortho(0, float32(width), float32(height), 0, 0, 1)
}

// Dispose cleans up OpenGL resources
func (o *Overlay) Dispose() {
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
	}
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
	}
	o.shader.Delete()
}
