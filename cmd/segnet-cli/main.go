package main

import (
	"flag"
	"fmt"
	"os"

	segnet "github.com/jamesainslie/go-segnet"
	"github.com/jamesainslie/go-segnet/internal/imageio"
)

func main() {
	network := flag.String("network", segnet.DefaultNetwork, "Built-in network name")
	networksDir := flag.String("networks-dir", "networks", "Directory holding built-in network files")
	model := flag.String("model", "", "Path to a custom ONNX model (overrides -network)")
	labels := flag.String("labels", "", "Path to class labels file (with -model)")
	colors := flag.String("colors", "", "Path to class colors file (with -model)")
	alpha := flag.Float64("alpha", 120, "Overlay blending value, 0-255")
	mask := flag.Bool("mask", false, "Render the raw class mask instead of the overlay")
	output := flag.String("out", "", "Output image path (required)")

	flag.Parse()

	if flag.NArg() != 1 || *output == "" {
		fmt.Fprintln(os.Stderr, "Usage: segnet-cli [OPTIONS] -out OUTPUT INPUT")
		flag.PrintDefaults()
		os.Exit(1)
	}
	input := flag.Arg(0)

	// A custom model goes through the argument-token path, the same way the
	// engine's own command line would configure it.
	cfg := segnet.Config{Network: *network}
	if *model != "" {
		args := []string{"--model=" + *model}
		if *labels != "" {
			args = append(args, "--labels="+*labels)
		}
		if *colors != "" {
			args = append(args, "--colors="+*colors)
		}
		cfg = segnet.Config{Args: args}
	}

	net, err := segnet.New(cfg,
		segnet.WithNetworksDir(*networksDir),
		segnet.WithOverlayAlpha(float32(*alpha)),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating network: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = net.Close() }() // Cleanup error ignored in CLI

	data, width, height, err := imageio.Load(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", input, err)
		os.Exit(1)
	}
	buf := &segnet.Buffer{Data: data}

	seg, err := net.Process(buf, width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error processing: %v\n", err)
		os.Exit(1)
	}

	if err := net.Overlay(buf, width, height, *mask); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering: %v\n", err)
		os.Exit(1)
	}

	if err := imageio.Save(*output, data, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving %s: %v\n", *output, err)
		os.Exit(1)
	}

	modeName := "overlay"
	if *mask {
		modeName = "mask"
	}
	fmt.Printf("Input:  %s (%dx%d, %d bytes)\n", input, width, height, seg.ImageBytes)
	fmt.Printf("Output: %s (%s)\n", *output, modeName)
}
