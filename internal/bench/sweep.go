package bench

import (
	"errors"
	"time"

	segnet "github.com/jamesainslie/go-segnet"
)

// Size is an input resolution for the sweep.
type Size struct {
	W int
	H int
}

// SweepResult holds metrics for one input resolution.
type SweepResult struct {
	Size    Size
	Metrics Metrics
}

// SweepSizes scales a base resolution by each factor, keeping dimensions
// even and at least 16 pixels.
func SweepSizes(base Size, scales []float64) []Size {
	sizes := make([]Size, 0, len(scales))
	for _, s := range scales {
		w := int(float64(base.W)*s) &^ 1
		h := int(float64(base.H)*s) &^ 1
		if w < 16 || h < 16 {
			continue
		}
		sizes = append(sizes, Size{W: w, H: h})
	}
	return sizes
}

// Sweep measures inference latency at each input resolution. Frames are
// resampled to every size; fully convolutional networks scale their work
// with the input, so this exposes the latency/resolution trade-off.
func Sweep(net *segnet.SegNet, frames []*Frame, sizes []Size, cfg Config) ([]SweepResult, error) {
	if len(frames) == 0 {
		return nil, errors.New("empty corpus")
	}

	var results []SweepResult
	for _, size := range sizes {
		buffers := make([][]float32, len(frames))
		for i, f := range frames {
			buffers[i] = f.Pixels(size.W, size.H)
		}

		var samples []time.Duration
		total := cfg.Warmup + cfg.Runs
		for pass := 0; pass < total; pass++ {
			timed := pass >= cfg.Warmup
			for _, data := range buffers {
				buf := &segnet.Buffer{Data: data}
				start := time.Now()
				if _, err := net.Process(buf, size.W, size.H); err != nil {
					return nil, err
				}
				if timed {
					samples = append(samples, time.Since(start))
				}
			}
		}

		results = append(results, SweepResult{
			Size:    size,
			Metrics: Summarize(samples),
		})
	}

	return results, nil
}
