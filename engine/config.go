package engine

// DefaultAlpha is the default overlay blending value, in 0-255.
const DefaultAlpha = 120

// Default model input and output names, matching the exported FCN networks.
const (
	defaultInputName  = "input_0"
	defaultOutputName = "output_0"
)

// Config locates the model and class metadata for a Session.
type Config struct {
	// ModelPath is the ONNX model file. Required.
	ModelPath string

	// LabelsPath is a text file with one class label per line. Optional;
	// without it classes are reported by index only.
	LabelsPath string

	// ColorsPath is a text file with one "R G B [A]" line per class,
	// components in 0-255. Optional; without it a deterministic palette is
	// generated.
	ColorsPath string

	// InputName and OutputName are the model's tensor names
	// (default "input_0" and "output_0").
	InputName  string
	OutputName string

	// Alpha is the overlay blending value in 0-255; zero selects
	// DefaultAlpha.
	Alpha float32
}

func (c Config) withDefaults() Config {
	if c.InputName == "" {
		c.InputName = defaultInputName
	}
	if c.OutputName == "" {
		c.OutputName = defaultOutputName
	}
	if c.Alpha == 0 {
		c.Alpha = DefaultAlpha
	}
	return c
}
