package config

import (
	_ "embed"
)

//go:embed defaults/gridcast.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:     LogConfig{Level: "info"},
		Scan:    ScanConfig{Workers: 0},
		Regions: RegionsConfig{Connectivity: "4"},
		Render: RenderConfig{
			Highlight: "205",
			Origin:    "86",
			Bold:      true,
			Palette:   []string{"39", "208", "76", "170", "220", "45", "203", "141"},
		},
	}
}
