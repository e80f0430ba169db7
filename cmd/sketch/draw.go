package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ravkin/tui-sketch/internal/canvas"
	"github.com/ravkin/tui-sketch/internal/config"
	"github.com/ravkin/tui-sketch/internal/core"
	"github.com/ravkin/tui-sketch/internal/platform/tui"
	"github.com/ravkin/tui-sketch/internal/storage"
)

var drawCmd = &cobra.Command{
	Use:   "draw [name]",
	Short: "Open the editor on a sketch",
	Long: `Open the sketch editor. With a name, loads that sketch from the
database (creating it on first save); without one, starts an unnamed
scratch sketch.

Controls:
  Mouse drag  - Draw with the active tool
  P/R/L/M/E   - Pick pen, rect, line, move, erase
  B           - Toggle the drawing boundary
  S           - Save
  Q/Ctrl+C    - Quit

Examples:
  sketch draw
  sketch draw my-plan
  sketch draw my-plan --config ./sketch.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDraw,
}

func runDraw(cmd *cobra.Command, args []string) {
	// Load editor config (boundary, default tool)
	appCfg, err := config.Load(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := appCfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	// Open sketch storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sketches database: %v\n", err)
		// Continue without storage - editing still works
		store = nil
	}

	name := "scratch"
	if len(args) == 1 {
		name = args[0]
	}

	doc := canvas.New(name)
	if store != nil && len(args) == 1 {
		loaded, loadErr := store.LoadSketch(name)
		if loadErr != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error loading sketch: %v\n", loadErr)
			os.Exit(1)
		}
		if loaded != nil {
			doc = loaded
		}
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
	}

	runErr := tui.RunEditor(doc, store, cfg, appCfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running editor: %v\n", runErr)
		os.Exit(1)
	}
}
