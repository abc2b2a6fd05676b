package graphics

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"os"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const fontShadersDir = "assets/shaders/text"

// Glyph describes a single character's placement and metrics within the atlas
type Glyph struct {
	// Pixel coordinates of the glyph in the atlas texture (top-left origin)
	AtlasX float32
	AtlasY float32
	// Glyph bitmap size in pixels
	Width  float32
	Height float32
	// Bearing (offset from baseline) in pixels
	BearingX float32
	BearingY float32
	// Advance in pixels
	Advance int
}

// FontAtlas contains the OpenGL texture and per-glyph metadata
type FontAtlas struct {
	TextureID uint32
	AtlasW    int
	AtlasH    int
	Glyphs    map[rune]Glyph
}

// BuildFontAtlas loads an OpenType font file and bakes the printable ASCII
// set into an OpenGL texture atlas. sizePixels is the target glyph size.
func BuildFontAtlas(fontPath string, sizePixels int) (*FontAtlas, error) {
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	f, err := opentype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(sizePixels), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	const atlasW, atlasH, padding = 512, 512, 1
	atlasImg := image.NewAlpha(image.Rect(0, 0, atlasW, atlasH))
	glyphs := make(map[rune]Glyph)

	// Row-pack the printable ASCII range into the atlas canvas
	offsetX, offsetY, rowHeight := 0, 0, 0
	for r := rune(32); r <= rune(126); r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok || mask == nil {
			continue
		}
		gw, gh := dr.Dx(), dr.Dy()
		adv := int(math.Round(float64(advance) / 64.0))

		if gw == 0 || gh == 0 {
			// Space or non-drawable glyph; still record advance
			glyphs[r] = Glyph{Advance: adv}
			continue
		}

		if offsetX+gw > atlasW {
			offsetX = 0
			offsetY += rowHeight + padding
			rowHeight = 0
		}
		if offsetY+gh > atlasH {
			return nil, fmt.Errorf("font atlas overflow at glyph %q", r)
		}

		draw.Draw(atlasImg, image.Rect(offsetX, offsetY, offsetX+gw, offsetY+gh), mask, maskp, draw.Src)

		glyphs[r] = Glyph{
			AtlasX:   float32(offsetX),
			AtlasY:   float32(offsetY),
			Width:    float32(gw),
			Height:   float32(gh),
			BearingX: float32(dr.Min.X),
			BearingY: float32(-dr.Min.Y),
			Advance:  adv,
		}

		offsetX += gw + padding
		if gh > rowHeight {
			rowHeight = gh
		}
	}

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	// Tight byte alignment for the single-channel upload
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, atlasW, atlasH, 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(atlasImg.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)

	return &FontAtlas{TextureID: texture, AtlasW: atlasW, AtlasH: atlasH, Glyphs: glyphs}, nil
}

// FontRenderer renders ASCII text strings using a prebuilt atlas
type FontRenderer struct {
	atlas      *FontAtlas
	shader     *Shader
	projection mgl32.Mat4
	vao        uint32
	vbo        uint32
}

// NewFontRenderer creates the renderer and loads the text shader from assets
func NewFontRenderer(atlas *FontAtlas, width, height int) (*FontRenderer, error) {
	if atlas == nil || len(atlas.Glyphs) == 0 {
		return nil, fmt.Errorf("invalid font atlas")
	}
	shader, err := NewShader(
		filepath.Join(fontShadersDir, "text.vert"),
		filepath.Join(fontShadersDir, "text.frag"),
	)
	if err != nil {
		return nil, err
	}
	fr := &FontRenderer{
		atlas:      atlas,
		shader:     shader,
		projection: mgl32.Ortho(0, float32(width), float32(height), 0, 0, 1),
	}

	gl.GenVertexArrays(1, &fr.vao)
	gl.GenBuffers(1, &fr.vbo)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, 4*4, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return fr, nil
}

// SetViewport updates the orthographic projection for a new drawable size.
func (fr *FontRenderer) SetViewport(width, height int) {
	fr.projection = mgl32.Ortho(0, float32(width), float32(height), 0, 0, 1)
}

// Render draws the given text at pixel position (x,y) with an RGB color.
// y is the text baseline.
func (fr *FontRenderer) Render(text string, x, y, scale float32, color mgl32.Vec3) {
	verts := fr.buildVertices([]rune(text), x, y, scale)
	if len(verts) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	fr.shader.Use()
	fr.shader.SetVec3("textColor", color)
	fr.shader.SetMat4("projection", fr.projection)
	fr.shader.SetInt("atlas", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fr.atlas.TextureID)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)

	// Orphan the buffer to avoid stalling on dynamic updates
	size := len(verts) * 4
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(verts))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)/4))

	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// Measure returns the approximate pixel width and height of text at scale.
func (fr *FontRenderer) Measure(text string, scale float32) (float32, float32) {
	var width, maxH float32
	for _, r := range text {
		g, ok := fr.atlas.Glyphs[r]
		if !ok {
			g = fr.atlas.Glyphs[' ']
		}
		width += float32(g.Advance) * scale
		if g.Height*scale > maxH {
			maxH = g.Height * scale
		}
	}
	return width, maxH
}

// Dispose releases the GL objects.
func (fr *FontRenderer) Dispose() {
	if fr.vbo != 0 {
		gl.DeleteBuffers(1, &fr.vbo)
	}
	if fr.vao != 0 {
		gl.DeleteVertexArrays(1, &fr.vao)
	}
	if fr.atlas != nil && fr.atlas.TextureID != 0 {
		gl.DeleteTextures(1, &fr.atlas.TextureID)
	}
	fr.shader.Delete()
}

func (fr *FontRenderer) buildVertices(chars []rune, x, y, scale float32) []float32 {
	vertices := make([]float32, 0, len(chars)*6*4)
	for _, r := range chars {
		g, ok := fr.atlas.Glyphs[r]
		if !ok {
			x += float32(fr.atlas.Glyphs[' '].Advance) * scale
			continue
		}
		if g.Width > 0 {
			vertices = append(vertices, fr.buildGlyphVertices(g, x, y, scale)...)
		}
		x += float32(g.Advance) * scale
	}
	return vertices
}

func (fr *FontRenderer) buildGlyphVertices(g Glyph, x, y, scale float32) []float32 {
	xPos := x + g.BearingX*scale
	yPos := y - g.BearingY*scale
	w := g.Width * scale
	h := g.Height * scale

	u0 := g.AtlasX / float32(fr.atlas.AtlasW)
	v0 := g.AtlasY / float32(fr.atlas.AtlasH)
	u1 := (g.AtlasX + g.Width) / float32(fr.atlas.AtlasW)
	v1 := (g.AtlasY + g.Height) / float32(fr.atlas.AtlasH)

	return []float32{
		xPos, yPos + h, u0, v1,
		xPos, yPos, u0, v0,
		xPos + w, yPos, u1, v0,

		xPos, yPos + h, u0, v1,
		xPos + w, yPos, u1, v0,
		xPos + w, yPos + h, u1, v1,
	}
}
