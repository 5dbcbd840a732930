package engine

// ImageNet channel statistics used to normalize network input, matching the
// training-time preprocessing of the FCN networks.
var (
	chanMean = [3]float32{0.485, 0.456, 0.406}
	chanStd  = [3]float32{0.229, 0.224, 0.225}
)

// toCHW converts interleaved RGBA float32 pixels (values 0-255) into a
// normalized planar 3xHxW tensor layout. The alpha channel is dropped.
// scratch is reused when large enough; the filled slice is returned.
func toCHW(img []float32, width, height int, scratch []float32) []float32 {
	plane := width * height
	if cap(scratch) < 3*plane {
		scratch = make([]float32, 3*plane)
	}
	out := scratch[:3*plane]

	for c := 0; c < 3; c++ {
		mean := chanMean[c]
		std := chanStd[c]
		dst := out[c*plane : (c+1)*plane]
		for i := 0; i < plane; i++ {
			dst[i] = (img[i*4+c]/255 - mean) / std
		}
	}
	return out
}
