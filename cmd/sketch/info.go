package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ravkin/tui-sketch/internal/storage"
)

var infoCmd = &cobra.Command{
	Use:   "info <name>",
	Short: "Show details for a sketch",
	Long: `Display metadata and content stats for the specified sketch.

Examples:
  sketch info my-plan`,
	Args: cobra.ExactArgs(1),
	Run:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) {
	name := args[0]

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sketches database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	info, err := store.SketchInfoByName(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading sketch: %v\n", err)
		os.Exit(1)
	}
	if info == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown sketch %q\n", name)
		fmt.Fprintln(os.Stderr, "Run 'sketch list' to see stored sketches.")
		os.Exit(1)
	}

	doc, err := store.LoadSketch(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading sketch: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sketch: %s\n", info.Name)
	fmt.Println()
	fmt.Printf("  Strokes:  %d\n", info.Strokes)
	fmt.Printf("  Shapes:   %d\n", info.Shapes)
	fmt.Printf("  Created:  %s\n", info.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("  Updated:  %s\n", info.UpdatedAt.Format("2006-01-02 15:04"))

	// Overall extent of the drawing, from stroke and shape bounds
	if doc != nil && (len(doc.Strokes) > 0 || len(doc.Shapes) > 0) {
		var minX, minY, maxX, maxY float64
		first := true
		extend := func(bMinX, bMinY, bMaxX, bMaxY float64) {
			if first {
				minX, minY, maxX, maxY = bMinX, bMinY, bMaxX, bMaxY
				first = false
				return
			}
			if bMinX < minX {
				minX = bMinX
			}
			if bMinY < minY {
				minY = bMinY
			}
			if bMaxX > maxX {
				maxX = bMaxX
			}
			if bMaxY > maxY {
				maxY = bMaxY
			}
		}
		for _, s := range doc.Strokes {
			if len(s.Path.Points) == 0 {
				continue
			}
			b := s.Path.Bounds()
			extend(b.MinX, b.MinY, b.MaxX, b.MaxY)
		}
		for _, s := range doc.Shapes {
			b := s.Bounds()
			extend(b.MinX, b.MinY, b.MaxX, b.MaxY)
		}
		if !first {
			fmt.Printf("  Extent:   (%.0f, %.0f) .. (%.0f, %.0f)\n", minX, minY, maxX, maxY)
		}
	}
}
