package graphics

import (
	"camwall/internal/assets"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// UploadEnvironment creates a float RGB texture from a decoded
// equirectangular environment map. Linear filtering, clamped vertically so
// the poles do not bleed.
func UploadEnvironment(env *assets.EnvironmentMap) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGB32F,
		int32(env.Width),
		int32(env.Height),
		0,
		gl.RGB,
		gl.FLOAT,
		gl.Ptr(env.Pixels),
	)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}
