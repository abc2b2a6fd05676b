package graphics

import (
	"fmt"
	"image"
	"os"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// CaptureScreenshot reads the back buffer and writes it as a lossless WebP
// next to the binary. Debug tooling; called from the key handler.
func CaptureScreenshot(width, height int) (string, error) {
	pixels := make([]uint8, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// GL rows run bottom-up; image.RGBA expects top-down
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowLen := width * 4
	for y := 0; y < height; y++ {
		src := pixels[(height-1-y)*rowLen : (height-y)*rowLen]
		copy(img.Pix[y*img.Stride:y*img.Stride+rowLen], src)
	}

	name := fmt.Sprintf("camwall-%s.webp", time.Now().Format("20060102-150405"))
	file, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("could not create screenshot file: %w", err)
	}
	defer file.Close()

	if err := nativewebp.Encode(file, img, nil); err != nil {
		return "", fmt.Errorf("could not encode screenshot: %w", err)
	}
	return name, nil
}
