package bench

import (
	"errors"
	"time"

	segnet "github.com/jamesainslie/go-segnet"
)

// Result holds measured latency for the inference stage and, when requested,
// the rendering stage.
type Result struct {
	Process Metrics
	Render  Metrics
}

// Run measures per-frame latency over the corpus at each frame's native
// resolution.
func Run(net *segnet.SegNet, frames []*Frame, cfg Config) (Result, error) {
	if len(frames) == 0 {
		return Result{}, errors.New("empty corpus")
	}

	type prepared struct {
		data []float32
		w, h int
	}
	buffers := make([]prepared, len(frames))
	for i, f := range frames {
		buffers[i] = prepared{data: f.Pixels(f.Width, f.Height), w: f.Width, h: f.Height}
	}

	// Rendering mutates pixels in place, so timed calls work on an untimed
	// scratch copy to keep every pass's input identical.
	var scratch []float32

	var procSamples, renderSamples []time.Duration

	total := cfg.Warmup + cfg.Runs
	for pass := 0; pass < total; pass++ {
		timed := pass >= cfg.Warmup
		for _, b := range buffers {
			pixels := b.data
			if cfg.Render {
				if cap(scratch) < len(b.data) {
					scratch = make([]float32, len(b.data))
				}
				scratch = scratch[:len(b.data)]
				copy(scratch, b.data)
				pixels = scratch
			}
			buf := &segnet.Buffer{Data: pixels}

			start := time.Now()
			if _, err := net.Process(buf, b.w, b.h); err != nil {
				return Result{}, err
			}
			if timed {
				procSamples = append(procSamples, time.Since(start))
			}

			if !cfg.Render {
				continue
			}
			start = time.Now()
			if err := net.Overlay(buf, b.w, b.h, cfg.Mask); err != nil {
				return Result{}, err
			}
			if timed {
				renderSamples = append(renderSamples, time.Since(start))
			}
		}
	}

	return Result{
		Process: Summarize(procSamples),
		Render:  Summarize(renderSamples),
	}, nil
}
