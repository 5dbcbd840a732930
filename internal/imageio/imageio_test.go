package imageio

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 17 % 256),
				G: uint8(y * 31 % 256),
				B: uint8((x + y) % 256),
				A: 255,
			})
		}
	}

	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating test image: %v", err)
	}
	defer func() { _ = f.Close() }()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTestPNG(t, 8, 6)

	data, w, h, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if w != 8 || h != 6 {
		t.Errorf("dimensions %dx%d, want 8x6", w, h)
	}
	if len(data) != 8*6*4 {
		t.Errorf("got %d elements, want %d", len(data), 8*6*4)
	}

	// Pixel (2,3): R=2*17=34, G=3*31=93, B=5, A=255
	p := (3*8 + 2) * 4
	want := [4]float32{34, 93, 5, 255}
	got := [4]float32{data[p], data[p+1], data[p+2], data[p+3]}
	if got != want {
		t.Errorf("pixel (2,3) = %v, want %v", got, want)
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, _, _, err := Load("nonexistent/image.png")
	if err == nil {
		t.Error("expected error for missing image")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	const w, h = 5, 4
	data := make([]float32, w*h*4)
	for i := range data {
		data[i] = float32((i * 11) % 256)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := Save(path, data, w, h); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, lw, lh, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if lw != w || lh != h {
		t.Fatalf("dimensions %dx%d, want %dx%d", lw, lh, w, h)
	}
	for i := range data {
		if loaded[i] != data[i] {
			t.Fatalf("loaded[%d] = %v, want %v", i, loaded[i], data[i])
		}
	}
}

func TestToImage_Clamps(t *testing.T) {
	data := []float32{-20, 300, 128, 255}
	img := ToImage(data, 1, 1)

	if img.Pix[0] != 0 {
		t.Errorf("negative component clamped to %d, want 0", img.Pix[0])
	}
	if img.Pix[1] != 255 {
		t.Errorf("overflowing component clamped to %d, want 255", img.Pix[1])
	}
	if img.Pix[2] != 128 {
		t.Errorf("in-range component = %d, want 128", img.Pix[2])
	}
}
