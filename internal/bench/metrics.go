package bench

import (
	"sort"
	"time"
)

// Config holds measurement parameters.
type Config struct {
	Runs   int  // timed passes over the corpus
	Warmup int  // untimed passes before measurement
	Render bool // also time the rendering stage
	Mask   bool // render the raw class mask instead of the overlay
}

// DefaultConfig returns default measurement configuration.
func DefaultConfig() Config {
	return Config{
		Runs:   10,
		Warmup: 2,
	}
}

// Metrics holds latency statistics over a set of samples.
type Metrics struct {
	Samples int
	Mean    time.Duration
	Min     time.Duration
	Max     time.Duration
	P50     time.Duration
	P95     time.Duration
	FPS     float64
}

// Summarize computes latency statistics from raw samples.
func Summarize(samples []time.Duration) Metrics {
	if len(samples) == 0 {
		return Metrics{}
	}

	sorted := make([]time.Duration, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, s := range sorted {
		total += s
	}
	mean := total / time.Duration(len(sorted))

	m := Metrics{
		Samples: len(sorted),
		Mean:    mean,
		Min:     sorted[0],
		Max:     sorted[len(sorted)-1],
		P50:     percentile(sorted, 0.50),
		P95:     percentile(sorted, 0.95),
	}
	if mean > 0 {
		m.FPS = float64(time.Second) / float64(mean)
	}
	return m
}

// percentile reads the p-th percentile from sorted samples using
// nearest-rank.
func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(p*float64(len(sorted))+0.5) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
