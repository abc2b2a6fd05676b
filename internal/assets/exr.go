package assets

import (
	"fmt"
	"os"

	"github.com/mokiat/goexr/exr"
)

// loadEnvironment decodes an equirectangular OpenEXR image into linear RGB
// float32 pixels for the HDR environment texture.
func loadEnvironment(path string) (*EnvironmentMap, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open exr file: %w", err)
	}
	defer file.Close()

	img, err := exr.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("could not decode exr image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	env := &EnvironmentMap{
		Width:  width,
		Height: height,
		Pixels: make([]float32, 0, width*height*3),
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			switch c := img.At(x, y).(type) {
			case exr.RGBAColor:
				env.Pixels = append(env.Pixels, c.R, c.G, c.B)
			default:
				// LDR fallback keeps odd channel layouts usable
				r, g, b, _ := c.RGBA()
				env.Pixels = append(env.Pixels,
					float32(r)/0xffff,
					float32(g)/0xffff,
					float32(b)/0xffff,
				)
			}
		}
	}

	return env, nil
}
