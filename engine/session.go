// Package engine provides the ONNX Runtime-backed segmentation engine.
package engine

import (
	"errors"
	"fmt"
	"os"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

var (
	ortEnvOnce sync.Once
	ortEnvErr  error
)

// initORT initializes the ONNX Runtime environment once.
func initORT() error {
	ortEnvOnce.Do(func() {
		ortEnvErr = ort.InitializeEnvironment()
	})
	return ortEnvErr
}

// Session wraps an ONNX Runtime session for a fully convolutional
// segmentation network. Process stores the computed class map in the
// session; Overlay and Mask render from it.
type Session struct {
	session    *ort.DynamicAdvancedSession
	inputName  string
	outputName string

	classes []string
	colors  [][4]float32
	alpha   float32

	mu     sync.Mutex
	closed bool

	// Last Process result: class index per grid cell, row major.
	classMap   []uint8
	gridW      int
	gridH      int
	numClasses int

	// Scratch tensor data reused across Process calls.
	chw []float32
}

// NewSession creates an engine session from the given configuration.
func NewSession(cfg Config) (*Session, error) {
	cfg = cfg.withDefaults()

	if cfg.ModelPath == "" {
		return nil, errors.New("no model path given")
	}
	if _, err := os.Stat(cfg.ModelPath); err != nil {
		return nil, fmt.Errorf("model file: %w", err)
	}

	var classes []string
	if cfg.LabelsPath != "" {
		var err error
		classes, err = LoadLabels(cfg.LabelsPath)
		if err != nil {
			return nil, fmt.Errorf("loading labels: %w", err)
		}
	}

	var colors [][4]float32
	if cfg.ColorsPath != "" {
		var err error
		colors, err = LoadColors(cfg.ColorsPath)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading colors: %w", err)
		}
	}

	if err := initORT(); err != nil {
		return nil, fmt.Errorf("initializing ONNX runtime: %w", err)
	}

	options, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("creating session options: %w", err)
	}
	defer func() { _ = options.Destroy() }() // Cleanup error doesn't affect success

	session, err := ort.NewDynamicAdvancedSession(
		cfg.ModelPath,
		[]string{cfg.InputName},
		[]string{cfg.OutputName},
		options,
	)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	return &Session{
		session:    session,
		inputName:  cfg.InputName,
		outputName: cfg.OutputName,
		classes:    classes,
		colors:     colors,
		alpha:      cfg.Alpha,
	}, nil
}

// Process runs segmentation inference on a frame of interleaved RGBA float32
// pixels and stores the resulting class map for Overlay and Mask.
func (s *Session) Process(img []float32, width, height int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errors.New("session is closed")
	}

	s.chw = toCHW(img, width, height, s.chw)

	inputTensor, err := ort.NewTensor(
		ort.NewShape(1, 3, int64(height), int64(width)),
		s.chw,
	)
	if err != nil {
		return fmt.Errorf("creating input tensor: %w", err)
	}
	defer func() { _ = inputTensor.Destroy() }()

	inputs := []ort.Value{inputTensor}

	// Nil entry is allocated by Run
	outputs := []ort.Value{nil}

	if err := s.session.Run(inputs, outputs); err != nil {
		return fmt.Errorf("running inference: %w", err)
	}
	if outputs[0] == nil {
		return errors.New("no output produced")
	}
	defer func() { _ = outputs[0].Destroy() }()

	logitsTensor, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return errors.New("unexpected output tensor type")
	}

	shape := logitsTensor.GetShape()
	if len(shape) != 4 || shape[0] != 1 {
		return fmt.Errorf("unexpected output shape %v", shape)
	}
	numClasses := int(shape[1])
	gridH := int(shape[2])
	gridW := int(shape[3])
	if numClasses < 1 || numClasses > 255 || gridW < 1 || gridH < 1 {
		return fmt.Errorf("unexpected output shape %v", shape)
	}

	if cap(s.classMap) < gridW*gridH {
		s.classMap = make([]uint8, gridW*gridH)
	}
	s.classMap = s.classMap[:gridW*gridH]
	classIndices(logitsTensor.GetData(), numClasses, gridW, gridH, s.classMap)

	s.gridW = gridW
	s.gridH = gridH
	s.numClasses = numClasses
	s.ensureColors(numClasses)

	return nil
}

// Overlay blends the last processed frame's class colors over the supplied
// pixels in place.
func (s *Session) Overlay(img []float32, width, height int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.renderable(); err != nil {
		return err
	}
	overlayInto(img, width, height, s.classMap, s.gridW, s.gridH, s.colors, s.alpha/255)
	return nil
}

// Mask writes the last processed frame's raw class colors into the supplied
// pixels in place, without blending.
func (s *Session) Mask(img []float32, width, height int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.renderable(); err != nil {
		return err
	}
	maskInto(img, width, height, s.classMap, s.gridW, s.gridH, s.colors)
	return nil
}

func (s *Session) renderable() error {
	if s.closed {
		return errors.New("session is closed")
	}
	if s.classMap == nil {
		return errors.New("no processed frame to render")
	}
	return nil
}

// Classes returns the class labels loaded with the network, or nil when no
// labels file was given.
func (s *Session) Classes() []string {
	return s.classes
}

// ensureColors extends the color table to cover n classes, generating
// palette entries where the colors file left gaps.
func (s *Session) ensureColors(n int) {
	if len(s.colors) >= n {
		return
	}
	pal := Palette(n)
	s.colors = append(s.colors, pal[len(s.colors):]...)
}

// Close releases the ONNX session. Idempotent.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	if s.session != nil {
		return s.session.Destroy()
	}
	return nil
}
