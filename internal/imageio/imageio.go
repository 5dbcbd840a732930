// Package imageio converts between image files and the interleaved RGBA
// float32 pixel layout the segmentation engine consumes.
package imageio

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Load decodes an image file into interleaved RGBA float32 pixels with
// values in 0-255, applying EXIF auto-orientation.
func Load(path string) ([]float32, int, int, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("opening image: %w", err)
	}
	data, w, h := FromImage(img)
	return data, w, h, nil
}

// FromImage converts a decoded image into interleaved RGBA float32 pixels.
func FromImage(img image.Image) ([]float32, int, int) {
	nrgba := imaging.Clone(img)
	w := nrgba.Rect.Dx()
	h := nrgba.Rect.Dy()

	data := make([]float32, w*h*4)
	for y := 0; y < h; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
		for i, v := range row {
			data[y*w*4+i] = float32(v)
		}
	}
	return data, w, h
}

// ToImage converts interleaved RGBA float32 pixels back into an image,
// clamping components to 0-255.
func ToImage(data []float32, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height*4; i++ {
		v := data[i]
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		img.Pix[i] = uint8(v + 0.5)
	}
	return img
}

// Save encodes pixels to an image file; the format follows the extension.
func Save(path string, data []float32, width, height int) error {
	if err := imaging.Save(ToImage(data, width, height), path); err != nil {
		return fmt.Errorf("saving image: %w", err)
	}
	return nil
}
