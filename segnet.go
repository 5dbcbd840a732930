package segnet

import (
	"fmt"
	"log/slog"

	"github.com/jamesainslie/go-segnet/engine"
)

// Engine is the native segmentation engine a SegNet drives. Process computes
// the per-pixel class map for a frame and holds it as engine state; Overlay
// and Mask render from that state into the supplied pixels in place.
//
// The bundled implementation is engine.Session. Alternative backends can be
// attached with NewWithEngine.
type Engine interface {
	Process(img []float32, width, height int) error
	Overlay(img []float32, width, height int) error
	Mask(img []float32, width, height int) error
	Close() error
}

// Segmentation is the lightweight result record for a processed frame.
type Segmentation struct {
	// ImageBytes is the size in bytes of the processed frame's pixel data.
	ImageBytes uint32
}

// SegNet segments images using a native inference engine. The zero value is
// an invalid instance; use New or NewWithEngine.
//
// A SegNet is not safe for concurrent use; callers serialize access.
type SegNet struct {
	engine Engine
	logger *slog.Logger
}

// New creates a SegNet from the given configuration. A non-nil cfg.Args list
// takes precedence over cfg.Network; see Config.
func New(cfg Config, opts ...Option) (*SegNet, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ecfg, err := cfg.resolve(o.networksDir, o.alpha)
	if err != nil {
		return nil, err
	}

	if cfg.Args != nil {
		o.logger.Debug("loading network from argument tokens", "args", cfg.Args)
	} else {
		name := cfg.Network
		if name == "" {
			name = DefaultNetwork
		}
		o.logger.Debug("loading built-in network", "network", name)
	}

	sess, err := engine.NewSession(ecfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEngineInit, err)
	}

	o.logger.Info("segmentation network loaded", "model", ecfg.ModelPath)
	return &SegNet{engine: sess, logger: o.logger}, nil
}

// NewWithEngine wraps an already-constructed engine. The engine's lifetime
// passes to the returned SegNet; Close closes it.
func NewWithEngine(e Engine, opts ...Option) (*SegNet, error) {
	if e == nil {
		return nil, ErrInvalidInstance
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &SegNet{engine: e, logger: o.logger}, nil
}

// Process runs segmentation inference on a frame. The class map it computes
// stays in the engine and is consumed by subsequent Overlay and Mask calls;
// no image data is returned. The buffer is read for the duration of the call
// only.
func (s *SegNet) Process(img *Buffer, width, height int) (Segmentation, error) {
	pixels, err := s.prepare(img, width, height)
	if err != nil {
		return Segmentation{}, err
	}

	if err := s.engine.Process(pixels, width, height); err != nil {
		return Segmentation{}, fmt.Errorf("%w: %w", ErrProcess, err)
	}

	return Segmentation{ImageBytes: uint32(width * height * channels * 4)}, nil
}

// Overlay renders the last processed frame's segmentation into the supplied
// pixels in place: a blended class overlay by default, or the raw class mask
// when mask is true. Process must have run on compatible data first.
func (s *SegNet) Overlay(img *Buffer, width, height int, mask bool) error {
	pixels, err := s.prepare(img, width, height)
	if err != nil {
		return err
	}

	if mask {
		err = s.engine.Mask(pixels, width, height)
	} else {
		err = s.engine.Overlay(pixels, width, height)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	return nil
}

// Mask renders the raw class mask; shorthand for Overlay with mask set.
func (s *SegNet) Mask(img *Buffer, width, height int) error {
	return s.Overlay(img, width, height, true)
}

// prepare runs the argument checks shared by all operations. The engine is
// never invoked when any of them fails.
func (s *SegNet) prepare(img *Buffer, width, height int) ([]float32, error) {
	if s == nil || s.engine == nil {
		return nil, ErrInvalidInstance
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return img.resolve(width, height)
}

// Close releases the engine. The handle is an invalid instance afterwards;
// Close is idempotent.
func (s *SegNet) Close() error {
	if s == nil || s.engine == nil {
		return nil
	}
	err := s.engine.Close()
	s.engine = nil
	return err
}
