package engine

import (
	"errors"
	"os"
	"strings"
	"testing"
)

const testModelPath = "../testdata/fcn_resnet18.onnx"

func TestNewSession_NoModelPath(t *testing.T) {
	_, err := NewSession(Config{})
	if err == nil {
		t.Error("expected error for empty model path")
	}
}

func TestNewSession_ModelNotFound(t *testing.T) {
	_, err := NewSession(Config{ModelPath: "../testdata/nonexistent.onnx"})
	if err == nil {
		t.Error("expected error for non-existent model")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got: %v", err)
	}
}

func TestNewSession_BadLabels(t *testing.T) {
	model := writeFile(t, "model.onnx", "not a real model")

	_, err := NewSession(Config{
		ModelPath:  model,
		LabelsPath: "nonexistent/classes.txt",
	})
	if err == nil {
		t.Error("expected error for missing labels file")
	}
	if !strings.Contains(err.Error(), "labels") {
		t.Errorf("expected labels error, got: %v", err)
	}
}

func TestNewSession_MissingColorsTolerated(t *testing.T) {
	// A colors path that doesn't exist falls back to the generated palette;
	// only a malformed file is an error. Uses a fake model so the test stops
	// at session creation, not metadata loading.
	model := writeFile(t, "model.onnx", "not a real model")

	_, err := NewSession(Config{
		ModelPath:  model,
		ColorsPath: "nonexistent/colors.txt",
	})
	if err != nil && strings.Contains(err.Error(), "colors") {
		t.Errorf("missing colors file should not fail construction: %v", err)
	}
}

func TestConfig_WithDefaults(t *testing.T) {
	cfg := Config{ModelPath: "m.onnx"}.withDefaults()
	if cfg.InputName != defaultInputName {
		t.Errorf("InputName = %q, want %q", cfg.InputName, defaultInputName)
	}
	if cfg.OutputName != defaultOutputName {
		t.Errorf("OutputName = %q, want %q", cfg.OutputName, defaultOutputName)
	}
	if cfg.Alpha != DefaultAlpha {
		t.Errorf("Alpha = %v, want %v", cfg.Alpha, DefaultAlpha)
	}

	cfg = Config{ModelPath: "m.onnx", InputName: "data", Alpha: 42}.withDefaults()
	if cfg.InputName != "data" || cfg.Alpha != 42 {
		t.Errorf("explicit values clobbered: %+v", cfg)
	}
}

func TestSession_EnsureColors(t *testing.T) {
	s := &Session{colors: [][4]float32{{1, 2, 3, 255}}}

	s.ensureColors(5)
	if len(s.colors) != 5 {
		t.Fatalf("got %d colors, want 5", len(s.colors))
	}
	// Loaded entries are preserved
	if s.colors[0] != [4]float32{1, 2, 3, 255} {
		t.Errorf("loaded color clobbered: %v", s.colors[0])
	}
	// Generated entries match the palette
	pal := Palette(5)
	for i := 1; i < 5; i++ {
		if s.colors[i] != pal[i] {
			t.Errorf("colors[%d] = %v, want %v", i, s.colors[i], pal[i])
		}
	}

	// No shrinking
	s.ensureColors(2)
	if len(s.colors) != 5 {
		t.Errorf("ensureColors shrank the table to %d", len(s.colors))
	}
}

func TestSession_RenderBeforeProcess(t *testing.T) {
	s := &Session{colors: Palette(2), alpha: DefaultAlpha}
	img := make([]float32, 4*4*4)

	if err := s.Overlay(img, 4, 4); err == nil {
		t.Error("expected error for Overlay before Process")
	}
	if err := s.Mask(img, 4, 4); err == nil {
		t.Error("expected error for Mask before Process")
	}
}

// skipIfNoModel skips the test if the ONNX model is not available.
func skipIfNoModel(t *testing.T) {
	t.Helper()
	if _, err := os.Stat(testModelPath); err != nil {
		t.Skipf("Skipping: ONNX model not available at %s", testModelPath)
	}
}

// isORTUnavailableError checks if the error indicates ONNX Runtime is not
// available on this machine.
func isORTUnavailableError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "onnxruntime") ||
		strings.Contains(errStr, "shared library") ||
		strings.Contains(errStr, "dylib") ||
		strings.Contains(errStr, ".so") ||
		strings.Contains(errStr, ".dll") ||
		strings.Contains(errStr, "not found") ||
		strings.Contains(errStr, "cannot open") ||
		strings.Contains(errStr, "initializing ONNX runtime")
}

func TestSession_ProcessOverlayMask(t *testing.T) {
	skipIfNoModel(t)

	session, err := NewSession(Config{ModelPath: testModelPath})
	if err != nil {
		if isORTUnavailableError(err) {
			t.Skipf("Skipping: ONNX runtime not available: %v", err)
		}
		t.Fatalf("NewSession failed: %v", err)
	}
	defer func() { _ = session.Close() }()

	const w, h = 320, 240
	img := make([]float32, w*h*4)
	for i := range img {
		img[i] = float32((i * 7) % 256)
	}

	if err := session.Process(img, w, h); err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if session.classMap == nil {
		t.Fatal("expected class map after Process")
	}
	if session.gridW < 1 || session.gridH < 1 {
		t.Errorf("unexpected grid %dx%d", session.gridW, session.gridH)
	}

	if err := session.Overlay(img, w, h); err != nil {
		t.Errorf("Overlay failed: %v", err)
	}
	if err := session.Mask(img, w, h); err != nil {
		t.Errorf("Mask failed: %v", err)
	}
}

func TestSession_Close_Idempotent(t *testing.T) {
	skipIfNoModel(t)

	session, err := NewSession(Config{ModelPath: testModelPath})
	if err != nil {
		if isORTUnavailableError(err) {
			t.Skipf("Skipping: ONNX runtime not available: %v", err)
		}
		t.Fatalf("NewSession failed: %v", err)
	}

	if err := session.Close(); err != nil {
		t.Errorf("first Close failed: %v", err)
	}
	if err := session.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}

	// Operations fail on a closed session
	img := make([]float32, 16*16*4)
	if err := session.Process(img, 16, 16); err == nil {
		t.Error("expected error when calling Process on closed session")
	}
}
