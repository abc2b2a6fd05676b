package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Framebuffer is an offscreen render target with a float color attachment,
// used by the post-processing chain.
type Framebuffer struct {
	FBO     uint32
	Color   uint32
	depth   uint32
	Width   int
	Height  int
	hasZBuf bool
}

// NewFramebuffer creates an RGBA16F render target. withDepth attaches a depth
// renderbuffer for scene rendering; blur targets skip it.
func NewFramebuffer(width, height int, withDepth bool) (*Framebuffer, error) {
	f := &Framebuffer{Width: width, Height: height, hasZBuf: withDepth}

	gl.GenFramebuffers(1, &f.FBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, f.FBO)

	gl.GenTextures(1, &f.Color)
	gl.BindTexture(gl.TEXTURE_2D, f.Color)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA16F, int32(width), int32(height), 0, gl.RGBA, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, f.Color, 0)

	if withDepth {
		gl.GenRenderbuffers(1, &f.depth)
		gl.BindRenderbuffer(gl.RENDERBUFFER, f.depth)
		gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, int32(width), int32(height))
		gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, f.depth)
	}

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		f.Dispose()
		return nil, fmt.Errorf("framebuffer incomplete: status 0x%x", status)
	}

	return f, nil
}

// Bind makes this framebuffer the render target and sets its viewport.
func (f *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, f.FBO)
	gl.Viewport(0, 0, int32(f.Width), int32(f.Height))
}

// Resize recreates the attachments at a new size.
func (f *Framebuffer) Resize(width, height int) error {
	withDepth := f.hasZBuf
	f.Dispose()

	fresh, err := NewFramebuffer(width, height, withDepth)
	if err != nil {
		return err
	}
	*f = *fresh
	return nil
}

// Dispose releases the GL objects.
func (f *Framebuffer) Dispose() {
	if f.depth != 0 {
		gl.DeleteRenderbuffers(1, &f.depth)
		f.depth = 0
	}
	if f.Color != 0 {
		gl.DeleteTextures(1, &f.Color)
		f.Color = 0
	}
	if f.FBO != 0 {
		gl.DeleteFramebuffers(1, &f.FBO)
		f.FBO = 0
	}
}
