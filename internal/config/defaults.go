package config

import (
	_ "embed"
)

//go:embed defaults/sketch.yaml
var defaultSketchYAML []byte

// Default returns the default editor configuration.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			DefaultTool: "pen",
			PenColor:    "bright-white",
		},
		Boundary: BoundaryConfig{
			Enabled: true,
			X:       4,
			Y:       2,
			Width:   64,
			Height:  18,
			Style: BoundaryStyle{
				Outline: "cyan",
				Tint:    "gray",
			},
		},
	}
}
