//go:build ignore

// Generate synthetic test-pattern images for the benchmark corpus.
// Usage: go run ./scripts/gen-testcards.go
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
)

const (
	outDir = "testdata/corpus"
	width  = 640
	height = 480
)

func main() {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
		os.Exit(1)
	}

	cards := map[string]func(x, y int) color.NRGBA{
		"gradient": func(x, y int) color.NRGBA {
			return color.NRGBA{
				R: uint8(x * 255 / width),
				G: uint8(y * 255 / height),
				B: uint8((x + y) * 255 / (width + height)),
				A: 255,
			}
		},
		"checkerboard": func(x, y int) color.NRGBA {
			if (x/40+y/40)%2 == 0 {
				return color.NRGBA{R: 230, G: 230, B: 230, A: 255}
			}
			return color.NRGBA{R: 30, G: 30, B: 30, A: 255}
		},
		"rings": func(x, y int) color.NRGBA {
			dx := float64(x - width/2)
			dy := float64(y - height/2)
			r := math.Sqrt(dx*dx + dy*dy)
			v := uint8(127.5 + 127.5*math.Sin(r/12))
			return color.NRGBA{R: v, G: uint8(255 - v), B: v / 2, A: 255}
		},
	}

	for name, fn := range cards {
		img := image.NewNRGBA(image.Rect(0, 0, width, height))
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				img.SetNRGBA(x, y, fn(x, y))
			}
		}

		path := filepath.Join(outDir, name+".png")
		f, err := os.Create(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "create %s: %v\n", path, err)
			os.Exit(1)
		}
		if err := png.Encode(f, img); err != nil {
			_ = f.Close()
			fmt.Fprintf(os.Stderr, "encode %s: %v\n", path, err)
			os.Exit(1)
		}
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "close %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", path)
	}
}
