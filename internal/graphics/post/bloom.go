package post

import (
	"fmt"
	"path/filepath"

	"camwall/internal/config"
	"camwall/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	ShadersDir = "assets/shaders/post"

	// Half-kernel taps for the separable blur, mirrored in the shader
	blurTaps  = 9
	blurSigma = 4.0

	// Ping-pong passes; even count so the final blur lands in pingFB[0]
	blurPasses = 8
)

var (
	FullscreenVert = filepath.Join(ShadersDir, "fullscreen.vert")
	BrightFrag     = filepath.Join(ShadersDir, "bright.frag")
	BlurFrag       = filepath.Join(ShadersDir, "blur.frag")
	CompositeFrag  = filepath.Join(ShadersDir, "composite.frag")
)

var quadVertices = []float32{
	// pos      uv
	-1, -1, 0, 0,
	1, -1, 1, 0,
	1, 1, 1, 1,
	-1, -1, 0, 0,
	1, 1, 1, 1,
	-1, 1, 0, 1,
}

// Bloom is the post-processing chain: bright-pass threshold, separable
// Gaussian blur ping-ponged at half resolution, additive composite with
// tone mapping onto the default framebuffer.
type Bloom struct {
	bright    *graphics.Shader
	blur      *graphics.Shader
	composite *graphics.Shader

	pingFB [2]*graphics.Framebuffer

	quadVAO uint32
	quadVBO uint32
}

// NewBloom builds the chain for the given drawable size.
func NewBloom(width, height int) (*Bloom, error) {
	b := &Bloom{}

	var err error
	if b.bright, err = graphics.NewShader(FullscreenVert, BrightFrag); err != nil {
		return nil, err
	}
	if b.blur, err = graphics.NewShader(FullscreenVert, BlurFrag); err != nil {
		return nil, err
	}
	if b.composite, err = graphics.NewShader(FullscreenVert, CompositeFrag); err != nil {
		return nil, err
	}

	for i := range b.pingFB {
		b.pingFB[i], err = graphics.NewFramebuffer(blurSize(width), blurSize(height), false)
		if err != nil {
			return nil, fmt.Errorf("bloom target %d: %w", i, err)
		}
	}

	b.setupQuad()

	// Blur weights never change at runtime
	b.blur.Use()
	kernel := GaussianKernel(blurTaps, blurSigma)
	for i, w := range kernel {
		b.blur.SetFloat(fmt.Sprintf("weights[%d]", i), w)
	}

	return b, nil
}

// Apply resolves the HDR scene texture to the default framebuffer.
func (b *Bloom) Apply(sceneTex uint32, width, height int) {
	gl.Disable(gl.DEPTH_TEST)
	defer gl.Enable(gl.DEPTH_TEST)

	gl.BindVertexArray(b.quadVAO)
	gl.ActiveTexture(gl.TEXTURE0)

	// Bright pass: scene -> ping[0]
	b.pingFB[0].Bind()
	b.bright.Use()
	b.bright.SetInt("sceneTex", 0)
	b.bright.SetFloat("threshold", config.GetBloomThreshold())
	gl.BindTexture(gl.TEXTURE_2D, sceneTex)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	// Separable blur, alternating direction each pass
	b.blur.Use()
	b.blur.SetInt("sourceTex", 0)
	for i := 0; i < blurPasses; i++ {
		src := b.pingFB[i%2]
		dst := b.pingFB[(i+1)%2]
		dst.Bind()
		horizontal := int32(0)
		if i%2 == 0 {
			horizontal = 1
		}
		b.blur.SetInt("horizontal", horizontal)
		gl.BindTexture(gl.TEXTURE_2D, src.Color)
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
	}

	// Composite onto the default framebuffer
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(width), int32(height))
	b.composite.Use()
	b.composite.SetInt("sceneTex", 0)
	b.composite.SetInt("bloomTex", 1)
	b.composite.SetFloat("bloomStrength", config.GetBloomStrength())
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, sceneTex)
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, b.pingFB[0].Color)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(0)
}

// Resize recreates the blur targets for a new drawable size.
func (b *Bloom) Resize(width, height int) error {
	for i := range b.pingFB {
		if err := b.pingFB[i].Resize(blurSize(width), blurSize(height)); err != nil {
			return err
		}
	}
	return nil
}

// Dispose releases shaders, targets and the quad geometry.
func (b *Bloom) Dispose() {
	for i := range b.pingFB {
		if b.pingFB[i] != nil {
			b.pingFB[i].Dispose()
		}
	}
	if b.quadVBO != 0 {
		gl.DeleteBuffers(1, &b.quadVBO)
	}
	if b.quadVAO != 0 {
		gl.DeleteVertexArrays(1, &b.quadVAO)
	}
	b.bright.Delete()
	b.blur.Delete()
	b.composite.Delete()
}

func (b *Bloom) setupQuad() {
	gl.GenVertexArrays(1, &b.quadVAO)
	gl.BindVertexArray(b.quadVAO)

	gl.GenBuffers(1, &b.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)

	gl.BindVertexArray(0)
}

// blurSize halves the drawable size for the blur targets; bloom is low
// frequency and the smaller targets keep the blur cheap.
func blurSize(v int) int {
	half := v / 2
	if half < 1 {
		half = 1
	}
	return half
}
