package engine

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// LoadLabels reads a class labels file: one label per line, blank lines
// skipped.
func LoadLabels(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("labels file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var labels []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		labels = append(labels, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan labels: %w", err)
	}
	return labels, nil
}

// LoadColors reads a class colors file: one "R G B" or "R G B A" line per
// class, components in 0-255. Blank lines are skipped; alpha defaults to 255.
func LoadColors(path string) ([][4]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("colors file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var colors [][4]float32
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 && len(fields) != 4 {
			return nil, fmt.Errorf("colors file line %d: expected 3 or 4 components, got %d", lineNum, len(fields))
		}

		color := [4]float32{0, 0, 0, 255}
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 32)
			if err != nil || v < 0 || v > 255 {
				return nil, fmt.Errorf("colors file line %d: bad component %q", lineNum, field)
			}
			color[i] = float32(v)
		}
		colors = append(colors, color)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan colors: %w", err)
	}
	return colors, nil
}

// Palette returns a deterministic n-entry class color table. Class 0 is
// black (conventionally background); the rest walk the hue circle by the
// golden angle so neighboring class indices stay visually distinct.
func Palette(n int) [][4]float32 {
	colors := make([][4]float32, n)
	if n == 0 {
		return colors
	}
	colors[0] = [4]float32{0, 0, 0, 255}

	for i := 1; i < n; i++ {
		hue := math.Mod(float64(i)*137.507764, 360)
		r, g, b := colorful.Hsv(hue, 0.7, 0.95).RGB255()
		colors[i] = [4]float32{float32(r), float32(g), float32(b), 255}
	}
	return colors
}
