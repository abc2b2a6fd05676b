package wall

import (
	"path/filepath"

	"camwall/internal/assets"
	"camwall/internal/graphics"
	"camwall/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	ShadersDir = "assets/shaders/wall"
)

var (
	VertShader = filepath.Join(ShadersDir, "wall.vert")
	FragShader = filepath.Join(ShadersDir, "wall.frag")
)

// Wall draws the static mounting wall behind the camera grid. It never
// moves; the model matrix stays identity.
type Wall struct {
	data   *assets.MeshData
	mesh   *graphics.Mesh
	shader *graphics.Shader
}

// NewWall creates the wall renderable from decoded mesh data
func NewWall(data *assets.MeshData) *Wall {
	return &Wall{data: data}
}

// Init compiles the shader and uploads the mesh
func (w *Wall) Init() error {
	var err error
	w.shader, err = graphics.NewShader(VertShader, FragShader)
	if err != nil {
		return err
	}

	w.mesh = graphics.UploadMesh(w.data)
	w.data = nil // decoded copy no longer needed
	return nil
}

// Render draws the wall lit by the environment map.
func (w *Wall) Render(ctx renderer.RenderContext) {
	w.shader.Use()
	w.shader.SetMat4("view", ctx.View)
	w.shader.SetMat4("projection", ctx.Proj)
	w.shader.SetMat4("model", mgl32.Ident4())
	w.shader.SetVec3("cameraPos", ctx.Camera.Position)
	w.shader.SetInt("envMap", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, ctx.EnvTex)

	w.mesh.Draw()
}

// Dispose cleans up OpenGL resources
func (w *Wall) Dispose() {
	if w.mesh != nil {
		w.mesh.Dispose()
	}
	w.shader.Delete()
}

// SetViewport is a no-op for the wall.
func (w *Wall) SetViewport(width, height int) {}
