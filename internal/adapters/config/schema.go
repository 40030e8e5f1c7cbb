package config

import "time"

// File is the structure of hdrview.yaml.
type File struct {
	AssetRoot     string        `yaml:"asset_root"`
	Images        string        `yaml:"images"`
	Shaders       []string      `yaml:"shaders"`
	LUTs          []LutDTO      `yaml:"luts"`
	Postamble     string        `yaml:"postamble"`
	Watch         WatchDTO      `yaml:"watch"`
	FrameInterval time.Duration `yaml:"frame_interval"`
	Cache         CacheDTO      `yaml:"cache"`
	Log           LogDTO        `yaml:"log"`
	EV            *float32      `yaml:"ev"`
}

// LutDTO describes one lookup table.
type LutDTO struct {
	Name   string `yaml:"name"`
	Width  uint32 `yaml:"width"`
	Shader string `yaml:"shader"`
}

// WatchDTO configures file watching.
type WatchDTO struct {
	Debounce time.Duration `yaml:"debounce"`
}

// CacheDTO configures the artifact cache.
type CacheDTO struct {
	Eviction string `yaml:"eviction"`
}

// LogDTO configures log output.
type LogDTO struct {
	Format string `yaml:"format"`
}
