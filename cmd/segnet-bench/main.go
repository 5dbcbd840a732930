package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	segnet "github.com/jamesainslie/go-segnet"
	"github.com/jamesainslie/go-segnet/internal/bench"
)

func main() {
	var (
		network     = flag.String("network", segnet.DefaultNetwork, "Built-in network name")
		networksDir = flag.String("networks-dir", "networks", "Directory holding built-in network files")
		model       = flag.String("model", "", "Path to a custom ONNX model (overrides -network)")
		labels      = flag.String("labels", "", "Path to class labels file (with -model)")
		corpusDir   = flag.String("corpus", "testdata/corpus", "Directory containing benchmark images")
		runs        = flag.Int("runs", 10, "Timed passes over the corpus")
		warmup      = flag.Int("warmup", 2, "Untimed warmup passes")
		render      = flag.Bool("render", false, "Also time the rendering stage")
		mask        = flag.Bool("mask", false, "Render the raw class mask instead of the overlay")
		sweep       = flag.Bool("sweep", false, "Run a resolution sweep")
		sweepScales = flag.String("sweep-scales", "0.25,0.5,1.0,1.5,2.0", "Comma-separated scale factors for the sweep")
	)
	flag.Parse()

	frames, err := bench.LoadCorpus(*corpusDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading corpus: %v\n", err)
		os.Exit(1)
	}
	if len(frames) == 0 {
		fmt.Fprintf(os.Stderr, "no images in %s\n", *corpusDir)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d frames from %s\n\n", len(frames), *corpusDir)

	cfg := segnet.Config{Network: *network}
	if *model != "" {
		args := []string{"--model=" + *model}
		if *labels != "" {
			args = append(args, "--labels="+*labels)
		}
		cfg = segnet.Config{Args: args}
	}

	net, err := segnet.New(cfg, segnet.WithNetworksDir(*networksDir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating network: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = net.Close() }()

	bcfg := bench.Config{
		Runs:   *runs,
		Warmup: *warmup,
		Render: *render,
		Mask:   *mask,
	}

	if *sweep {
		runSweep(net, frames, bcfg, *sweepScales)
		return
	}
	runSingle(net, frames, bcfg)
}

func runSingle(net *segnet.SegNet, frames []*bench.Frame, cfg bench.Config) {
	result, err := bench.Run(net, frames, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error during benchmark: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Stage     Mean      P50       P95       Max       FPS")
	fmt.Println(strings.Repeat("-", 58))
	printRow("process", result.Process)
	if cfg.Render {
		printRow("render", result.Render)
	}
}

func runSweep(net *segnet.SegNet, frames []*bench.Frame, cfg bench.Config, scaleList string) {
	scales, err := parseScales(scaleList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error parsing scales: %v\n", err)
		os.Exit(1)
	}

	base := bench.Size{W: frames[0].Width, H: frames[0].Height}
	sizes := bench.SweepSizes(base, scales)

	results, err := bench.Sweep(net, frames, sizes, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error during sweep: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Resolution Sweep Results")
	fmt.Println(strings.Repeat("-", 58))
	fmt.Printf("%-12s %-9s %-9s %-9s %-8s\n", "Size", "Mean", "P50", "P95", "FPS")
	for _, r := range results {
		fmt.Printf("%-12s %-9v %-9v %-9v %-8.1f\n",
			fmt.Sprintf("%dx%d", r.Size.W, r.Size.H),
			round(r.Metrics.Mean), round(r.Metrics.P50), round(r.Metrics.P95), r.Metrics.FPS)
	}
}

func printRow(stage string, m bench.Metrics) {
	fmt.Printf("%-9s %-9v %-9v %-9v %-9v %.1f\n",
		stage, round(m.Mean), round(m.P50), round(m.P95), round(m.Max), m.FPS)
}

func round(d time.Duration) time.Duration {
	return d.Round(10 * time.Microsecond)
}

func parseScales(list string) ([]float64, error) {
	var scales []float64
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		s, err := strconv.ParseFloat(field, 64)
		if err != nil || s <= 0 {
			return nil, fmt.Errorf("bad scale %q", field)
		}
		scales = append(scales, s)
	}
	return scales, nil
}
