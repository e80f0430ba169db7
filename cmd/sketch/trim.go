package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ravkin/tui-sketch/internal/config"
	"github.com/ravkin/tui-sketch/internal/storage"
)

var trimCmd = &cobra.Command{
	Use:   "trim <name>",
	Short: "Re-trim a stored sketch to the configured boundary",
	Long: `Load a sketch, clip its strokes to the boundary from the editor
config, drop shapes that fall entirely outside it, and save the result.

Useful after shrinking the boundary in the config: stored sketches keep
whatever was inside the old boundary until they are trimmed again.

Examples:
  sketch trim my-plan
  sketch trim my-plan --config ./sketch.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runTrim,
}

func runTrim(cmd *cobra.Command, args []string) {
	name := args[0]

	appCfg, err := config.Load(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := appCfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}
	if !appCfg.Boundary.Enabled {
		fmt.Fprintln(os.Stderr, "Error: no boundary enabled in config, nothing to trim against")
		os.Exit(1)
	}
	region := appCfg.Boundary.Region()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sketches database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	doc, err := store.LoadSketch(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading sketch: %v\n", err)
		os.Exit(1)
	}
	if doc == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown sketch %q\n", name)
		fmt.Fprintln(os.Stderr, "Run 'sketch list' to see stored sketches.")
		os.Exit(1)
	}

	strokesBefore := len(doc.Strokes)
	shapesBefore := len(doc.Shapes)

	// Clip every stroke; strokes trimmed to nothing are dropped.
	kept := doc.Strokes[:0]
	for _, s := range doc.Strokes {
		trimmed := region.ClipStroke(s.Path)
		if len(trimmed) == 0 {
			continue
		}
		s.Path.Points = trimmed
		kept = append(kept, s)
	}
	doc.Strokes = kept

	// Drop shapes with no overlap with the boundary.
	shapes := doc.Shapes[:0]
	for _, s := range doc.Shapes {
		if !region.Overlaps(s.Bounds()) {
			continue
		}
		shapes = append(shapes, s)
	}
	doc.Shapes = shapes

	doc.SetBoundary(region)

	if _, err := store.SaveSketch(doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving sketch: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Trimmed %q to boundary (%.0f, %.0f) %gx%g\n",
		name, region.X, region.Y, region.Width, region.Height)
	fmt.Printf("  Strokes: %d -> %d\n", strokesBefore, len(doc.Strokes))
	fmt.Printf("  Shapes:  %d -> %d\n", shapesBefore, len(doc.Shapes))
}
