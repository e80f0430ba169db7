package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Editor.DefaultTool != "pen" {
		t.Errorf("DefaultTool = %q, want pen", cfg.Editor.DefaultTool)
	}
	if !cfg.Boundary.Enabled {
		t.Error("default boundary should be enabled")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultSketchYAML, &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default %+v differs from hardcoded %+v", cfg, Default())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "zero width",
			mutate:  func(c *Config) { c.Boundary.Width = 0 },
			wantErr: "width",
		},
		{
			name:    "negative width",
			mutate:  func(c *Config) { c.Boundary.Width = -10 },
			wantErr: "width",
		},
		{
			name:    "zero height",
			mutate:  func(c *Config) { c.Boundary.Height = 0 },
			wantErr: "height",
		},
		{
			name:    "negative height",
			mutate:  func(c *Config) { c.Boundary.Height = -1 },
			wantErr: "height",
		},
		{
			name: "degenerate but disabled",
			mutate: func(c *Config) {
				c.Boundary.Enabled = false
				c.Boundary.Width = 0
				c.Boundary.Height = -5
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestRegion(t *testing.T) {
	b := BoundaryConfig{X: 4, Y: 2, Width: 64, Height: 18}
	r := b.Region()

	if r.X != 4 || r.Y != 2 || r.Width != 64 || r.Height != 18 {
		t.Errorf("Region() = %+v", r)
	}
	if r.MaxX() != 68 || r.MaxY() != 20 {
		t.Errorf("MaxX/MaxY = %v/%v, want 68/20", r.MaxX(), r.MaxY())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sketch.yaml")

	content := `
editor:
  default_tool: rect
  pen_color: cyan
boundary:
  enabled: true
  x: 10
  y: 5
  width: 40
  height: 12
  style:
    outline: green
    tint: gray
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Editor.DefaultTool != "rect" {
		t.Errorf("DefaultTool = %q, want rect", cfg.Editor.DefaultTool)
	}
	if cfg.Boundary.X != 10 || cfg.Boundary.Width != 40 {
		t.Errorf("boundary = %+v", cfg.Boundary)
	}
	if cfg.Boundary.Style.Outline != "green" {
		t.Errorf("outline = %q, want green", cfg.Boundary.Style.Outline)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() of a missing explicit path should fail")
	}
}

func TestLoadCustomPathInvalidRegion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sketch.yaml")

	content := `
boundary:
  enabled: true
  width: 0
  height: 10
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject an enabled boundary with zero width")
	}
}

func TestLoadCustomPathMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sketch.yaml")

	if err := os.WriteFile(path, []byte("boundary: ["), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}
}
