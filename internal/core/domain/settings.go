package domain

import "time"

const (
	// DefaultConfigFile is the configuration file name looked up in the working directory.
	DefaultConfigFile = "hdrview.yaml"
	// DefaultImageInput is the image directory used when none is configured.
	DefaultImageInput = "img"
	// DefaultDebounce is the quiet period after which file events are delivered.
	DefaultDebounce = 100 * time.Millisecond
	// DefaultFrameInterval is the period of the frame loop.
	DefaultFrameInterval = 16 * time.Millisecond
	// DefaultShader is the shader shown when none is configured.
	DefaultShader = "shaders/linear.wgsl"
)

// LutDesc describes a one-dimensional lookup table generated by a compute shader.
type LutDesc struct {
	Name       string
	Width      uint32
	ShaderPath string
}

// Settings is the resolved configuration of a viewer run.
type Settings struct {
	// AssetRoot is the absolute directory that "/"-prefixed includes resolve against.
	AssetRoot string
	// Images is a file or directory of images.
	Images string
	// Shaders lists the logical paths of display shaders, in cycling order.
	Shaders []string
	// LUTs lists compute-generated lookup tables.
	LUTs []LutDesc
	// Postamble is appended after every fragment shader's chunks when non-empty.
	Postamble string
	// Debounce is the watch debounce window.
	Debounce time.Duration
	// FrameInterval is the frame loop period.
	FrameInterval time.Duration
	// Eviction names the cache eviction policy ("retain" or "refcount").
	Eviction string
	// JSONLogs switches the logger to JSON output.
	JSONLogs bool
	// EV is the exposure value passed to shaders as input_ev.
	EV float32
}

// DefaultSettings returns settings for rootDir with every optional value defaulted.
func DefaultSettings(rootDir string) *Settings {
	return &Settings{
		AssetRoot:     rootDir,
		Images:        DefaultImageInput,
		Shaders:       []string{DefaultShader},
		Debounce:      DefaultDebounce,
		FrameInterval: DefaultFrameInterval,
		Eviction:      "retain",
	}
}
