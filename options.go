package segnet

import (
	"log/slog"

	"github.com/jamesainslie/go-segnet/engine"
)

// Option configures a SegNet.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	networksDir string
	alpha       float32
}

func defaultOptions() options {
	return options{
		logger:      slog.Default(),
		networksDir: "networks",
		alpha:       engine.DefaultAlpha,
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithNetworksDir sets the directory holding built-in network files
// (default: "networks").
func WithNetworksDir(dir string) Option {
	return func(o *options) {
		if dir != "" {
			o.networksDir = dir
		}
	}
}

// WithOverlayAlpha sets the overlay blending value in 0-255
// (default: engine.DefaultAlpha). Values outside the range are ignored.
// An --alpha argument token takes precedence over this option.
func WithOverlayAlpha(a float32) Option {
	return func(o *options) {
		if a >= 0 && a <= 255 {
			o.alpha = a
		}
	}
}
