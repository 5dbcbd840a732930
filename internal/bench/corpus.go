// Package bench provides benchmarking utilities for segmentation inference.
package bench

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/jamesainslie/go-segnet/internal/imageio"
)

// Frame is a decoded benchmark image.
type Frame struct {
	ID     string // filename without extension
	Image  image.Image
	Width  int
	Height int
}

// LoadFrame loads and decodes one image file.
func LoadFrame(path string) (*Frame, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}

	base := filepath.Base(path)
	id := strings.TrimSuffix(base, filepath.Ext(base))

	return &Frame{
		ID:     id,
		Image:  img,
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
	}, nil
}

// Pixels returns the frame's pixels at the given dimensions as interleaved
// RGBA float32, resampling when the dimensions differ from the original.
func (f *Frame) Pixels(width, height int) []float32 {
	img := f.Image
	if width != f.Width || height != f.Height {
		img = imaging.Resize(img, width, height, imaging.Lanczos)
	}
	data, _, _ := imageio.FromImage(img)
	return data
}

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// LoadCorpus loads all image files from a directory.
func LoadCorpus(dir string) ([]*Frame, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var frames []*Frame
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !imageExts[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		frame, err := LoadFrame(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		frames = append(frames, frame)
	}

	return frames, nil
}
