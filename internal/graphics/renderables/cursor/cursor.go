package cursor

import (
	"path/filepath"
	"sync"

	"camwall/internal/assets"
	"camwall/internal/graphics"
	"camwall/internal/graphics/renderer"
	"camwall/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	ShadersDir = "assets/shaders/cursor"
)

var (
	VertShader = filepath.Join(ShadersDir, "cursor.vert")
	FragShader = filepath.Join(ShadersDir, "cursor.frag")
)

// Cursor draws the emissive marker that follows the pointer's projection on
// the tracking plane. It keeps the unscaled hit position; only the rig's aim
// target gets the vertical exaggeration.
type Cursor struct {
	data   *assets.MeshData
	mesh   *graphics.Mesh
	shader *graphics.Shader

	mu       sync.Mutex
	position mgl32.Vec3
}

// NewCursor creates the cursor renderable
func NewCursor(data *assets.MeshData) *Cursor {
	return &Cursor{
		data:     data,
		position: mgl32.Vec3{0, 0, scene.PlaneDepth},
	}
}

// Init compiles the shader and uploads the mesh
func (c *Cursor) Init() error {
	var err error
	c.shader, err = graphics.NewShader(VertShader, FragShader)
	if err != nil {
		return err
	}

	c.mesh = graphics.UploadMesh(c.data)
	c.data = nil
	return nil
}

// SetPosition moves the cursor to a tracking-plane hit point. Called from
// the cursor-pos event handler.
func (c *Cursor) SetPosition(p mgl32.Vec3) {
	c.mu.Lock()
	c.position = p
	c.mu.Unlock()
}

// Position returns the current cursor world position.
func (c *Cursor) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

// Render draws the cursor with an over-unity emissive color so the bloom
// bright pass picks it up.
func (c *Cursor) Render(ctx renderer.RenderContext) {
	pos := c.Position()

	c.shader.Use()
	c.shader.SetMat4("view", ctx.View)
	c.shader.SetMat4("projection", ctx.Proj)
	c.shader.SetMat4("model", mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()))
	c.shader.SetVec3("emissive", mgl32.Vec3{2.5, 0.6, 0.5})

	gl.Disable(gl.CULL_FACE)
	c.mesh.Draw()
	gl.Enable(gl.CULL_FACE)
}

// Dispose cleans up OpenGL resources
func (c *Cursor) Dispose() {
	if c.mesh != nil {
		c.mesh.Dispose()
	}
	c.shader.Delete()
}

// SetViewport is a no-op for the cursor.
func (c *Cursor) SetViewport(width, height int) {}
