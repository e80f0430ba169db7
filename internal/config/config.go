// Package config provides YAML-based configuration for the sketch editor,
// including the boundary region that constrains drawing. The region's
// invariants (positive width and height) are validated here, once, at the
// configuration boundary; the geometry layer trusts them.
package config

import (
	"fmt"

	"github.com/ravkin/tui-sketch/internal/geom"
)

// Config is the top-level editor configuration.
type Config struct {
	Editor   EditorConfig   `yaml:"editor"`
	Boundary BoundaryConfig `yaml:"boundary"`
}

// EditorConfig defines general editor parameters.
type EditorConfig struct {
	DefaultTool string `yaml:"default_tool"` // Tool selected at startup
	PenColor    string `yaml:"pen_color"`    // Freehand stroke color name
}

// BoundaryConfig defines the drawing constraint region and its visual style.
type BoundaryConfig struct {
	Enabled bool          `yaml:"enabled"`
	X       float64       `yaml:"x"`
	Y       float64       `yaml:"y"`
	Width   float64       `yaml:"width"`
	Height  float64       `yaml:"height"`
	Style   BoundaryStyle `yaml:"style"`
}

// BoundaryStyle defines how the boundary collaborator renders the region.
type BoundaryStyle struct {
	Outline string `yaml:"outline"` // Frame color name
	Tint    string `yaml:"tint"`    // Exterior tint color name
}

// Region returns the boundary as a geometry region.
// Only meaningful when the boundary is enabled and validated.
func (b BoundaryConfig) Region() geom.Region {
	return geom.Region{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// Validate checks the configuration invariants. A degenerate enabled region
// is rejected here so geometry calls never see one.
func (c Config) Validate() error {
	if c.Boundary.Enabled {
		if c.Boundary.Width <= 0 {
			return fmt.Errorf("config: boundary width must be positive, got %v", c.Boundary.Width)
		}
		if c.Boundary.Height <= 0 {
			return fmt.Errorf("config: boundary height must be positive, got %v", c.Boundary.Height)
		}
	}
	return nil
}
