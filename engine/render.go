package engine

// classIndices argmaxes planar CxHxW logits into a class index per cell.
// dst must hold gridW*gridH elements.
func classIndices(logits []float32, numClasses, gridW, gridH int, dst []uint8) {
	plane := gridW * gridH
	for i := 0; i < plane; i++ {
		best := 0
		bestScore := logits[i]
		for c := 1; c < numClasses; c++ {
			if score := logits[c*plane+i]; score > bestScore {
				best = c
				bestScore = score
			}
		}
		dst[i] = uint8(best)
	}
}

// cellAt nearest-samples the class grid at output pixel (x, y).
func cellAt(classMap []uint8, gridW, gridH, width, height, x, y int) uint8 {
	gx := x * gridW / width
	gy := y * gridH / height
	return classMap[gy*gridW+gx]
}

// overlayInto blends class colors over interleaved RGBA pixels in place.
// alpha is the blend factor in 0-1; the pixel alpha channel is left as-is.
func overlayInto(img []float32, width, height int, classMap []uint8, gridW, gridH int, colors [][4]float32, alpha float32) {
	inv := 1 - alpha
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cls := cellAt(classMap, gridW, gridH, width, height, x, y)
			color := colors[cls]
			p := (y*width + x) * 4
			img[p+0] = img[p+0]*inv + color[0]*alpha
			img[p+1] = img[p+1]*inv + color[1]*alpha
			img[p+2] = img[p+2]*inv + color[2]*alpha
		}
	}
}

// maskInto writes raw class colors into interleaved RGBA pixels in place.
func maskInto(img []float32, width, height int, classMap []uint8, gridW, gridH int, colors [][4]float32) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cls := cellAt(classMap, gridW, gridH, width, height, x, y)
			color := colors[cls]
			p := (y*width + x) * 4
			img[p+0] = color[0]
			img[p+1] = color[1]
			img[p+2] = color[2]
			img[p+3] = color[3]
		}
	}
}
