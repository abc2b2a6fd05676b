package camgrid

import (
	"path/filepath"

	"camwall/internal/assets"
	"camwall/internal/graphics"
	"camwall/internal/graphics/renderer"
	"camwall/internal/profiling"
	"camwall/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	ShadersDir = "assets/shaders/prop"
)

var (
	VertShader = filepath.Join(ShadersDir, "prop.vert")
	FragShader = filepath.Join(ShadersDir, "prop.frag")
)

// CamGrid draws the full grid of camera props: one instanced draw for the
// fixed wall mounts and one for the rotatable heads. The head instance
// matrices re-upload only when the rig re-aims, which happens on pointer
// events rather than per frame.
type CamGrid struct {
	baseData *assets.MeshData
	headData *assets.MeshData
	rig      *scene.Rig

	baseMesh *graphics.Mesh
	headMesh *graphics.Mesh
	shader   *graphics.Shader

	headsDirty bool
}

// NewCamGrid creates the camera grid renderable from the two mesh templates
// every unit is cloned from.
func NewCamGrid(base, head *assets.MeshData, rig *scene.Rig) *CamGrid {
	return &CamGrid{baseData: base, headData: head, rig: rig, headsDirty: true}
}

// Init compiles the shader and uploads both template meshes with instance
// buffers sized for the rig.
func (c *CamGrid) Init() error {
	var err error
	c.shader, err = graphics.NewShader(VertShader, FragShader)
	if err != nil {
		return err
	}

	count := len(c.rig.Units)

	c.baseMesh = graphics.UploadMesh(c.baseData)
	c.baseMesh.EnableInstancing(count)
	c.baseMesh.SetInstanceTransforms(c.rig.BaseTransforms())

	c.headMesh = graphics.UploadMesh(c.headData)
	c.headMesh.EnableInstancing(count)
	c.headMesh.SetInstanceTransforms(c.rig.HeadTransforms())

	c.baseData, c.headData = nil, nil
	c.headsDirty = false
	return nil
}

// MarkAimed flags the head instance matrices for re-upload before the next
// draw. Called from the cursor-pos handler after Rig.Aim.
func (c *CamGrid) MarkAimed() {
	c.headsDirty = true
}

// Render draws mounts and heads.
func (c *CamGrid) Render(ctx renderer.RenderContext) {
	defer profiling.Track("camgrid.Render")()

	if c.headsDirty {
		c.headMesh.SetInstanceTransforms(c.rig.HeadTransforms())
		c.headsDirty = false
	}

	c.shader.Use()
	c.shader.SetMat4("view", ctx.View)
	c.shader.SetMat4("projection", ctx.Proj)
	c.shader.SetVec3("cameraPos", ctx.Camera.Position)
	c.shader.SetInt("envMap", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, ctx.EnvTex)

	// Lens LEDs on the heads glow into the bloom pass
	c.shader.SetFloat("emissiveBoost", 0.0)
	c.baseMesh.DrawInstanced()
	c.shader.SetFloat("emissiveBoost", 2.5)
	c.headMesh.DrawInstanced()
}

// Dispose cleans up OpenGL resources
func (c *CamGrid) Dispose() {
	if c.headMesh != nil {
		c.headMesh.Dispose()
	}
	if c.baseMesh != nil {
		c.baseMesh.Dispose()
	}
	c.shader.Delete()
}

// SetViewport is a no-op for the grid.
func (c *CamGrid) SetViewport(width, height int) {}
