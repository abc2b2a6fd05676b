package sky

import (
	"path/filepath"

	"camwall/internal/graphics"
	"camwall/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	ShadersDir = "assets/shaders/sky"
)

var (
	VertShader = filepath.Join(ShadersDir, "sky.vert")
	FragShader = filepath.Join(ShadersDir, "sky.frag")
)

// Sky draws the equirectangular environment map as the scene background by
// reconstructing a view direction per fragment from the inverse
// view-projection matrix.
type Sky struct {
	shader *graphics.Shader
	vao    uint32
}

// NewSky creates the environment background renderable
func NewSky() *Sky {
	return &Sky{}
}

// Init compiles the sky shader. The fullscreen triangle is generated from
// gl_VertexID, so no vertex buffer is needed.
func (s *Sky) Init() error {
	var err error
	s.shader, err = graphics.NewShader(VertShader, FragShader)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &s.vao)
	return nil
}

// Render draws the background behind everything already rendered.
func (s *Sky) Render(ctx renderer.RenderContext) {
	// Depth func LEQUAL lets the far-plane background pass where nothing drew
	gl.DepthFunc(gl.LEQUAL)
	gl.DepthMask(false)

	s.shader.Use()
	s.shader.SetMat4("invViewProj", ctx.Proj.Mul4(ctx.View).Inv())
	s.shader.SetVec3("cameraPos", ctx.Camera.Position)
	s.shader.SetInt("envMap", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, ctx.EnvTex)

	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)

	gl.DepthMask(true)
	gl.DepthFunc(gl.LESS)
}

// Dispose cleans up OpenGL resources
func (s *Sky) Dispose() {
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
	}
	s.shader.Delete()
}

// SetViewport is a no-op; the sky covers whatever the target size is.
func (s *Sky) SetViewport(width, height int) {}
