package core

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"os"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// NewTexture loads a PNG from disk into a repeating 2D texture. A load
// failure is reported back to the caller, who typically logs it and
// renders untextured rather than aborting.
func NewTexture(path string) (uint32, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open texture %s: %v", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return 0, fmt.Errorf("decode texture %s: %v", path, err)
	}

	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, image.Point{}, draw.Src)

	return uploadTexture(rgba.Pix, rgba.Rect.Size().X, rgba.Rect.Size().Y), nil
}

// NewCarpetTexture synthesizes a 64x64 dark carpet texture: grayscale
// with deterministic grain, no checker pattern.
func NewCarpetTexture() uint32 {
	const texSize = 64
	pixels := make([]uint8, texSize*texSize*4)

	for y := 0; y < texSize; y++ {
		for x := 0; x < texSize; x++ {
			idx := (y*texSize + x) * 4
			grain := ((x*37 + y*91 + (x*y)*11) % 17) - 8
			wave := ((x*3 + y*5) % 9) - 4
			shade := 122 + grain + wave
			if shade < 0 {
				shade = 0
			}
			if shade > 255 {
				shade = 255
			}
			pixels[idx+0] = uint8(shade)
			pixels[idx+1] = uint8(shade)
			pixels[idx+2] = uint8(shade)
			pixels[idx+3] = 255
		}
	}
	return uploadTexture(pixels, texSize, texSize)
}

func uploadTexture(pixels []uint8, width, height int) uint32 {
	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texID
}
