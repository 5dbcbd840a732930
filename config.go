package segnet

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jamesainslie/go-segnet/engine"
)

// DefaultNetwork is the built-in network used when Config.Network is empty.
const DefaultNetwork = "aerial-fpv"

// Config holds the construction inputs for a SegNet.
//
// A non-nil Args list takes precedence over Network and configures the engine
// from raw argument tokens. A non-nil empty Args list is rejected as invalid
// configuration. When Args is nil, Network selects a built-in network
// (DefaultNetwork when empty).
type Config struct {
	// Network is the name of a built-in network, e.g. "voc" or "cityscapes".
	Network string

	// Args configures the engine from argument tokens instead of a built-in
	// network name. Recognized tokens, in --key=value or --key value form:
	//
	//	--network      built-in network to start from
	//	--model        path to the ONNX model file
	//	--labels       path to the class labels file
	//	--colors       path to the class colors file
	//	--input-blob   name of the model input
	//	--output-blob  name of the model output
	//	--alpha        overlay blending value, 0-255
	Args []string
}

// builtinNetwork locates a built-in network's files relative to the networks
// directory.
type builtinNetwork struct {
	dir   string
	model string
}

var builtins = map[string]builtinNetwork{
	"aerial-fpv": {dir: "fcn-alexnet-aerial-fpv", model: "fcn_alexnet.onnx"},
	"cityscapes": {dir: "fcn-resnet18-cityscapes", model: "fcn_resnet18.onnx"},
	"deepscene":  {dir: "fcn-resnet18-deepscene", model: "fcn_resnet18.onnx"},
	"mhp":        {dir: "fcn-resnet18-mhp", model: "fcn_resnet18.onnx"},
	"voc":        {dir: "fcn-resnet18-voc", model: "fcn_resnet18.onnx"},
	"sun":        {dir: "fcn-resnet18-sun", model: "fcn_resnet18.onnx"},
}

// Long-form names accepted for compatibility with the native engine's CLI.
var networkAliases = map[string]string{
	"fcn-alexnet-aerial-fpv-720p": "aerial-fpv",
	"fcn-resnet18-cityscapes":     "cityscapes",
	"fcn-resnet18-deepscene":      "deepscene",
	"fcn-resnet18-mhp":            "mhp",
	"fcn-resnet18-voc":            "voc",
	"fcn-resnet18-sun":            "sun",
}

// Networks returns the names of the built-in networks.
func Networks() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	return names
}

func lookupNetwork(name, networksDir string) (engine.Config, error) {
	key := strings.ToLower(name)
	if canonical, ok := networkAliases[key]; ok {
		key = canonical
	}
	b, ok := builtins[key]
	if !ok {
		return engine.Config{}, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
	}

	dir := filepath.Join(networksDir, b.dir)
	return engine.Config{
		ModelPath:  filepath.Join(dir, b.model),
		LabelsPath: filepath.Join(dir, "classes.txt"),
		ColorsPath: filepath.Join(dir, "colors.txt"),
	}, nil
}

// resolve turns the construction inputs into an engine configuration.
func (c Config) resolve(networksDir string, alpha float32) (engine.Config, error) {
	if c.Args != nil {
		if len(c.Args) == 0 {
			return engine.Config{}, fmt.Errorf("%w: argument list is empty", ErrInvalidConfig)
		}
		return parseArgs(c.Args, networksDir, alpha)
	}

	name := c.Network
	if name == "" {
		name = DefaultNetwork
	}
	ecfg, err := lookupNetwork(name, networksDir)
	if err != nil {
		return engine.Config{}, err
	}
	ecfg.Alpha = alpha
	return ecfg, nil
}

// parseArgs marshals raw argument tokens into an engine configuration.
func parseArgs(args []string, networksDir string, alpha float32) (engine.Config, error) {
	ecfg := engine.Config{Alpha: alpha}

	for i := 0; i < len(args); i++ {
		tok := args[i]
		if !strings.HasPrefix(tok, "--") {
			return engine.Config{}, fmt.Errorf("%w: unexpected token %q", ErrInvalidConfig, tok)
		}

		key, value, hasValue := strings.Cut(tok[2:], "=")
		if !hasValue {
			i++
			if i >= len(args) {
				return engine.Config{}, fmt.Errorf("%w: option --%s is missing a value", ErrInvalidConfig, key)
			}
			value = args[i]
		}
		if key == "" || value == "" {
			return engine.Config{}, fmt.Errorf("%w: malformed token %q", ErrInvalidConfig, tok)
		}

		switch key {
		case "network":
			base, err := lookupNetwork(value, networksDir)
			if err != nil {
				return engine.Config{}, err
			}
			// Paths given before --network are not clobbered.
			if ecfg.ModelPath == "" {
				ecfg.ModelPath = base.ModelPath
			}
			if ecfg.LabelsPath == "" {
				ecfg.LabelsPath = base.LabelsPath
			}
			if ecfg.ColorsPath == "" {
				ecfg.ColorsPath = base.ColorsPath
			}
		case "model":
			ecfg.ModelPath = value
		case "labels":
			ecfg.LabelsPath = value
		case "colors":
			ecfg.ColorsPath = value
		case "input-blob":
			ecfg.InputName = value
		case "output-blob":
			ecfg.OutputName = value
		case "alpha":
			a, err := strconv.ParseFloat(value, 32)
			if err != nil || a < 0 || a > 255 {
				return engine.Config{}, fmt.Errorf("%w: invalid alpha %q", ErrInvalidConfig, value)
			}
			ecfg.Alpha = float32(a)
		default:
			return engine.Config{}, fmt.Errorf("%w: unrecognized option --%s", ErrInvalidConfig, key)
		}
	}

	if ecfg.ModelPath == "" {
		return engine.Config{}, fmt.Errorf("%w: no model given (use --model or --network)", ErrInvalidConfig)
	}
	return ecfg, nil
}
