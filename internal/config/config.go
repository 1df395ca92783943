// Package config provides YAML-based configuration loading for gridcast.
package config

// Config contains all gridcast settings.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Scan    ScanConfig    `yaml:"scan"`
	Regions RegionsConfig `yaml:"regions"`
	Render  RenderConfig  `yaml:"render"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// ScanConfig controls parallel scans.
type ScanConfig struct {
	Workers int `yaml:"workers"` // 0 = GOMAXPROCS
}

// RegionsConfig controls region analysis.
type RegionsConfig struct {
	Connectivity string `yaml:"connectivity"` // "4" or "8"
}

// RenderConfig defines terminal colours. Values are lipgloss colour strings
// (ANSI index or hex).
type RenderConfig struct {
	Highlight string   `yaml:"highlight"`
	Origin    string   `yaml:"origin"`
	Bold      bool     `yaml:"bold"`
	Palette   []string `yaml:"palette"`
}
